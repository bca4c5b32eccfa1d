// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only summary facade.
// Policy:
//   - No algorithms or hidden state here.
//   - Stats() is an O(E) snapshot; use it for diagnostics and gauges.

package core

// GraphStats is a point-in-time summary of a Graph.
type GraphStats struct {
	Directed      bool `json:"directed"`
	NodeCount     int  `json:"node_count"`
	EdgeCount     int  `json:"edge_count"`
	NegativeEdges int  `json:"negative_edges"` // edges with Weight < 0
}

// Stats produces a deterministic summary of mode, sizes and negative-weight
// edges.
//
// Implementation:
//   - Stage 1: Acquire the read lock and copy mode and sizes.
//   - Stage 2: Scan edges once to count negative weights.
//
// Notes:
//   - NegativeEdges > 0 means Dijkstra results are outside its correctness
//     guarantee; Bellman-Ford still applies.
//
// Complexity:
//   - Time O(E), Space O(1).
func (g *Graph) Stats() GraphStats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	st := GraphStats{
		Directed:  g.directed,
		NodeCount: len(g.nodes),
		EdgeCount: len(g.edges),
	}
	for _, e := range g.edges {
		if e.Weight < 0 {
			st.NegativeEdges++
		}
	}

	return st
}
