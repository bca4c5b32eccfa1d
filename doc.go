// Package daavisual is the backend of an interactive shortest-path
// visualizer: it records Dijkstra and Bellman-Ford runs as replayable step
// traces and serves them to a browser front-end.
//
// 🚀 What is in the box?
//
//	• Graph model: labeled nodes, weighted directed edges, mirrored pairs
//	  for undirected mode, circular layout of new nodes
//	• Traced engines: Dijkstra and Bellman-Ford emitting Visit / Relax / Done
//	• Results: distance and predecessor maps, shortest-path tree, table rows
//	• Playback: step, play on a ticker, pause, rewind and reset per run
//	• Service: gin HTTP API, WebSocket playback stream, Prometheus metrics
//
// Packages:
//
//	core/          Graph, Snapshot, Node, Edge, ID generators & layout
//	trace/         Step, Trace, Result, path reconstruction & tables
//	dijkstra/      traced Dijkstra over a Snapshot
//	bellmanford/   traced Bellman-Ford over a Snapshot
//	builder/       random graph generator and fixtures (path, cycle, star, complete)
//	playback/      per-run replay cursor and views
//	internal/      workspace, HTTP API, WebSocket stream, config, logging, metrics
//	cmd/daa-visual `serve` and `run` commands
//
// Quick ASCII example:
//
//	    A──2──►B──3──►C
//	    └─────10──────┘
//
// Dijkstra from A visits A, B, C and highlights A→B, B→C (total 5).
//
//	go run ./cmd/daa-visual run --algo dijkstra --source A --directed \
//	    --nodes A,B,C --edge A:B:2 --edge B:C:3 --edge A:C:10
package daavisual
