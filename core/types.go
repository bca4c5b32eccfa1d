// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Node, Edge, Position, Graph and construction options.
// Policy:
//   - Nodes and edges are stored in insertion order; that order is part of the contract
//     (engines iterate it, tie-breaks depend on it).
//   - Edges are always directed. Undirected mode is emulated by mirrored edge pairs.
//   - The directed flag is a construction policy for new edges only.

package core

import "sync"

// NodeID is the opaque identity of a Node inside one Graph.
type NodeID string

// EdgeID is the opaque identity of an Edge inside one Graph.
type EdgeID string

// Position is a 2D coordinate on the drawing canvas.
// It is presentation data; no algorithm reads it.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Node is a labeled vertex.
//
// ID identifies the node; Label is display-only and need not be unique.
type Node struct {
	ID       NodeID   `json:"id"`
	Label    string   `json:"label"`
	Position Position `json:"position"`
}

// Edge is a weighted directed connection From→To.
// Weight may be negative; no sign policy is enforced here.
type Edge struct {
	ID     EdgeID  `json:"id"`
	From   NodeID  `json:"from"`
	To     NodeID  `json:"to"`
	Weight float64 `json:"weight"`
}

// GraphOption configures a Graph before first use.
type GraphOption func(g *Graph)

// WithDirected sets the mode for new edges (true = single edge, false = mirrored pair).
func WithDirected(directed bool) GraphOption {
	return func(g *Graph) { g.directed = directed }
}

// WithIDGenerator replaces the default sequential ID source.
// Panics on nil: option constructors validate their arguments.
func WithIDGenerator(gen IDGenerator) GraphOption {
	if gen == nil {
		panic("core: WithIDGenerator(nil)")
	}
	return func(g *Graph) { g.ids = gen }
}

// WithLayout replaces the default circular layout used to place new nodes.
func WithLayout(l CircleLayout) GraphOption {
	return func(g *Graph) { g.layout = l }
}

// Graph is the mutable, long-lived graph model.
//
// mu guards every field below it. nodeIdx and edgeIdx map an ID to its
// position in nodes/edges and are rebuilt whenever a removal shifts the slices.
type Graph struct {
	mu sync.RWMutex

	// Configuration
	directed bool         // mirror policy for new edges
	ids      IDGenerator  // node/edge ID source
	layout   CircleLayout // placement of new nodes

	// Storage (insertion order)
	nodes   []Node
	edges   []Edge
	nodeIdx map[NodeID]int
	edgeIdx map[EdgeID]int
}

// NewGraph creates an empty Graph. By default the graph is undirected
// (new edges are mirrored), uses sequential IDs and DefaultLayout.
// Complexity: O(len(opts)).
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		ids:     NewSequentialIDs(),
		layout:  DefaultLayout(),
		nodeIdx: make(map[NodeID]int),
		edgeIdx: make(map[EdgeID]int),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
