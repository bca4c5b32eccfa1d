// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Edge creation and queries.
//
// Determinism:
//   - Edges() returns edges in insertion order; a mirrored pair is stored
//     forward edge first.
//
// Concurrency:
//   - All methods lock g.mu; returned slices are copies.

package core

import "math"

// AddEdge creates the edge from→to with the given weight and returns the IDs
// of every edge created by this call.
//
// Implementation:
//   - Stage 1: Reject (nil result) when either endpoint is missing, from == to,
//     or the weight is NaN or ±Inf.
//   - Stage 2: Append the forward edge.
//   - Stage 3: In undirected mode, append the mirror edge to→from with the same
//     weight and a distinct ID, under the same lock (atomic for readers).
//
// Behavior highlights:
//   - Invalid input is a silent no-op, never an error.
//   - Parallel edges are allowed; each call creates new edges.
//
// Complexity:
//   - Time O(1) amortized, Space O(1) amortized.
func (g *Graph) AddEdge(from, to NodeID, weight float64) []EdgeID {
	if from == "" || to == "" || from == to {
		return nil
	}
	if math.IsNaN(weight) || math.IsInf(weight, 0) {
		return nil
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.nodeIdx[from]; !ok {
		return nil
	}
	if _, ok := g.nodeIdx[to]; !ok {
		return nil
	}

	ids := make([]EdgeID, 0, 2)
	ids = append(ids, g.appendEdge(from, to, weight))
	if !g.directed {
		ids = append(ids, g.appendEdge(to, from, weight))
	}

	return ids
}

// appendEdge stores a new edge. Caller holds g.mu and has validated endpoints.
func (g *Graph) appendEdge(from, to NodeID, weight float64) EdgeID {
	e := Edge{ID: g.ids.EdgeID(), From: from, To: to, Weight: weight}
	g.edgeIdx[e.ID] = len(g.edges)
	g.edges = append(g.edges, e)

	return e.ID
}

// Edge returns a copy of the edge with this ID.
func (g *Graph) Edge(id EdgeID) (Edge, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	i, ok := g.edgeIdx[id]
	if !ok {
		return Edge{}, false
	}

	return g.edges[i], true
}

// Edges returns a copy of all edges in insertion order.
// Complexity: O(E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return append([]Edge(nil), g.edges...)
}

// EdgeCount returns the number of stored (directed) edges.
// A mirrored pair counts as two.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// Directed reports the current mode for new edges.
func (g *Graph) Directed() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.directed
}

// SetDirected changes the mode for new edges. Existing edges are untouched:
// switching to directed keeps already mirrored pairs, switching to undirected
// does not add mirrors retroactively.
func (g *Graph) SetDirected(directed bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.directed = directed
}
