// Package core provides the mutable graph model behind the visualizer and the
// immutable Snapshot that the shortest-path engines consume.
//
// The Graph G = (V,E) is deliberately small:
//
//   - Nodes carry an opaque ID, a display label and a canvas Position.
//   - Edges are always directed (From→To) with a real-valued Weight;
//     negative weights are allowed.
//   - Undirected mode is emulated: AddEdge(a,b,w) also stores b→a with the
//     same weight and a distinct ID. The mode is a policy for new edges only.
//   - Nodes and edges keep insertion order; engines iterate that order and
//     tie-breaks depend on it.
//   - Invalid input (blank label, missing endpoint, self-loop) is a silent
//     no-op, never an error.
//
// Configuration Options (GraphOption):
//
//	– WithDirected(bool)          mirror policy for new edges (default false).
//	– WithIDGenerator(IDGenerator) SequentialIDs (default) or UUIDGenerator.
//	– WithLayout(CircleLayout)    placement of new nodes (default 1200×700 canvas).
//
// Snapshots:
//
//	s := g.Snapshot()   // O(V+E) value copy under a read lock
//	s.Outgoing(u)       // u's edges in edge order
//	s.FirstEdge(a, b)   // first a→b edge in edge order
//
// A Snapshot is never affected by later edits to its Graph, so a trace
// computed from it stays valid while the user keeps editing.
//
// Concurrency:
//
//	Graph guards its state with a single sync.RWMutex; every accessor returns
//	copies. Snapshot is immutable and safe to share between goroutines.
package core
