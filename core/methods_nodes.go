// SPDX-License-Identifier: MIT
//
// File: methods_nodes.go
// Role: Node lifecycle and queries.
//
// Determinism:
//   - Nodes() returns nodes in insertion order.
//
// Concurrency:
//   - All methods lock g.mu; returned slices are copies.

package core

import "strings"

// AddNode inserts a node with the given display label and returns its fresh ID.
//
// Implementation:
//   - Stage 1: Trim the label; a blank label is rejected as a silent no-op.
//   - Stage 2: Under the write lock, draw a new ID, place the node with the
//     layout at ordinal len(nodes), append it and index it.
//
// Returns:
//   - NodeID, true on success; "", false when the label is blank.
//
// Complexity:
//   - Time O(1) amortized, Space O(1) amortized.
func (g *Graph) AddNode(label string) (NodeID, bool) {
	label = strings.TrimSpace(label)
	if label == "" {
		return "", false
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	n := Node{
		ID:       g.ids.NodeID(),
		Label:    label,
		Position: g.layout.Place(len(g.nodes)),
	}
	g.nodeIdx[n.ID] = len(g.nodes)
	g.nodes = append(g.nodes, n)

	return n.ID, true
}

// RemoveNode deletes the node and every edge incident to it.
//
// The cascade keeps the endpoint invariant: after return no edge references id.
// Returns false if the node does not exist.
//
// Complexity: O(V+E) (slices are compacted and indexes rebuilt).
func (g *Graph) RemoveNode(id NodeID) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	i, ok := g.nodeIdx[id]
	if !ok {
		return false
	}
	g.nodes = append(g.nodes[:i], g.nodes[i+1:]...)

	// Drop incident edges in place, preserving the order of the survivors.
	kept := g.edges[:0]
	for _, e := range g.edges {
		if e.From == id || e.To == id {
			continue
		}
		kept = append(kept, e)
	}
	g.edges = kept
	g.reindex()

	return true
}

// HasNode reports whether a node with this ID exists.
// Complexity: O(1).
func (g *Graph) HasNode(id NodeID) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.nodeIdx[id]

	return ok
}

// Node returns a copy of the node with this ID.
func (g *Graph) Node(id NodeID) (Node, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	i, ok := g.nodeIdx[id]
	if !ok {
		return Node{}, false
	}

	return g.nodes[i], true
}

// Nodes returns a copy of all nodes in insertion order.
// Complexity: O(V).
func (g *Graph) Nodes() []Node {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return append([]Node(nil), g.nodes...)
}

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.nodes)
}

// reindex rebuilds nodeIdx and edgeIdx from the slices. Caller holds g.mu.
func (g *Graph) reindex() {
	g.nodeIdx = make(map[NodeID]int, len(g.nodes))
	for i, n := range g.nodes {
		g.nodeIdx[n.ID] = i
	}
	g.edgeIdx = make(map[EdgeID]int, len(g.edges))
	for i, e := range g.edges {
		g.edgeIdx[e.ID] = i
	}
}
