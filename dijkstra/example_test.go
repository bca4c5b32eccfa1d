// Package dijkstra_test provides runnable examples for the traced engine.
package dijkstra_test

import (
	"fmt"

	"github.com/abbykyun/daa-visual/core"
	"github.com/abbykyun/daa-visual/dijkstra"
)

// ExampleRun replays the trace of the classic three-node chain.
func ExampleRun() {
	// 1) Directed graph A→B(2), B→C(3), A→C(10).
	g := core.NewGraph(core.WithDirected(true))
	a, _ := g.AddNode("A")
	b, _ := g.AddNode("B")
	c, _ := g.AddNode("C")
	g.AddEdge(a, b, 2)
	g.AddEdge(b, c, 3)
	g.AddEdge(a, c, 10)

	// 2) Run from A on a snapshot.
	snap := g.Snapshot()
	run, err := dijkstra.Run(snap, a)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 3) Print each step, then the distances.
	for _, s := range run.Trace {
		switch s.Kind.String() {
		case "visit":
			fmt.Println("visit", snap.Label(s.Node))
		case "relax":
			e, _ := snap.Edge(s.Edge)
			fmt.Printf("relax %s→%s\n", snap.Label(e.From), snap.Label(e.To))
		case "done":
			fmt.Println("done", s.Paths)
		}
	}
	fmt.Println(run.Result.Dist(a), run.Result.Dist(b), run.Result.Dist(c))
	// Output:
	// visit A
	// relax A→B
	// relax A→C
	// visit B
	// relax B→C
	// visit C
	// done [e1 e2]
	// 0 2 5
}

// ExampleRun_cityRoute finds the fastest drive across six intersections. The
// closed road C–D is modelled with a prohibitive travel time.
//
//	      [A]
//	     /   \
//	  4 /     \ 2
//	   /       \
//	 [B]---1---[C]      C–D closed
//	  |          \ 10
//	5 |          [E]
//	  |            \ 3
//	 [D]----6-----[F]
func ExampleRun_cityRoute() {
	// 1) Undirected roads: every AddEdge stores both directions.
	g := core.NewGraph()
	id := map[string]core.NodeID{}
	for _, l := range []string{"A", "B", "C", "D", "E", "F"} {
		id[l], _ = g.AddNode(l)
	}
	roads := []struct {
		u, v string
		t    float64
	}{
		{"A", "B", 4},
		{"A", "C", 2},
		{"B", "C", 1},
		{"B", "D", 5},
		{"C", "D", 1e9}, // closed
		{"C", "E", 10},
		{"D", "F", 6},
		{"E", "F", 3},
	}
	for _, r := range roads {
		g.AddEdge(id[r.u], id[r.v], r.t)
	}

	// 2) Run from A.
	snap := g.Snapshot()
	run, err := dijkstra.Run(snap, id["A"])
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 3) Walk the predecessors back from F.
	path, ok := run.Result.PathTo(snap, id["A"], id["F"])
	if !ok {
		fmt.Println("no route")
		return
	}
	fmt.Println("Fastest route from A to F:")
	for i := 0; i+1 < len(path); i++ {
		u, v := path[i], path[i+1]
		fmt.Printf("  %s → %s : %g min\n", snap.Label(u), snap.Label(v), run.Result.Dist(v)-run.Result.Dist(u))
	}
	fmt.Printf("Total travel time: %g minutes\n", run.Result.Dist(id["F"]))
	// Output:
	// Fastest route from A to F:
	//   A → C : 2 min
	//   C → B : 1 min
	//   B → D : 5 min
	//   D → F : 6 min
	// Total travel time: 14 minutes
}
