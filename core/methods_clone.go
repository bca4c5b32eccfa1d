// SPDX-License-Identifier: MIT
//
// File: methods_clone.go
// Role: Cloning and clearing graph instances.
// Determinism:
//   - Clone shares the ID generator, so IDs created on either copy never collide.
// Concurrency:
//   - Read lock on the source while copying; write lock for Clear.

package core

// Clone returns an independent deep copy of the Graph: mode, layout, nodes and
// edges in the same order. The clone draws IDs from the same generator.
//
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := &Graph{
		directed: g.directed,
		ids:      g.ids,
		layout:   g.layout,
		nodes:    append([]Node(nil), g.nodes...),
		edges:    append([]Edge(nil), g.edges...),
	}
	out.reindex()

	return out
}

// Clear removes every node and edge. The directed flag, layout and ID
// generator are kept; IDs issued before Clear are never reissued.
//
// Complexity: O(1) (storage is released to the GC).
func (g *Graph) Clear() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.nodes = nil
	g.edges = nil
	g.nodeIdx = make(map[NodeID]int)
	g.edgeIdx = make(map[EdgeID]int)
}
