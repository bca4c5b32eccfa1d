package core_test

import (
	"fmt"

	"github.com/abbykyun/daa-visual/core"
)

// ExampleGraph_AddEdge shows mirrored edges in undirected mode.
func ExampleGraph_AddEdge() {
	g := core.NewGraph() // undirected: every edge gets a mirror
	a, _ := g.AddNode("A")
	b, _ := g.AddNode("B")

	ids := g.AddEdge(a, b, 2)
	fmt.Println(ids)
	for _, e := range g.Edges() {
		fmt.Printf("%s: %s→%s w=%g\n", e.ID, g.Snapshot().Label(e.From), g.Snapshot().Label(e.To), e.Weight)
	}

	// Output:
	// [e1 e2]
	// e1: A→B w=2
	// e2: B→A w=2
}

// ExampleGraph_AddEdge_rejected shows that invalid edges are silently dropped.
func ExampleGraph_AddEdge_rejected() {
	g := core.NewGraph(core.WithDirected(true))
	a, _ := g.AddNode("A")

	fmt.Println(g.AddEdge(a, a, 1), g.AddEdge(a, "missing", 1), g.EdgeCount())

	// Output:
	// [] [] 0
}
