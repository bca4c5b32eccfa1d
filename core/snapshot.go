// SPDX-License-Identifier: MIT
//
// File: snapshot.go
// Role: Immutable value view of a Graph consumed by the shortest-path engines.
// Determinism:
//   - Nodes and Edges keep the graph's insertion order.
//   - Outgoing(u) lists u's edges in edge order.
// Concurrency:
//   - A Snapshot never changes after construction and is safe to share.
//     Later edits to the source Graph are not visible through it.

package core

// Snapshot is a point-in-time copy of a Graph.
//
// The exported slices must be treated as read-only. The lookup indexes are
// built by NewSnapshot/Graph.Snapshot; a Snapshot decoded from JSON has no
// indexes and falls back to linear scans.
type Snapshot struct {
	Directed bool   `json:"directed"`
	Nodes    []Node `json:"nodes"`
	Edges    []Edge `json:"edges"`

	nodeIdx map[NodeID]int
	edgeIdx map[EdgeID]int
	out     map[NodeID][]int // node → indexes into Edges, ascending
}

// Snapshot copies the current graph state under a read lock.
// Complexity: O(V + E).
func (g *Graph) Snapshot() Snapshot {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return NewSnapshot(g.directed, g.nodes, g.edges)
}

// NewSnapshot builds a Snapshot from the given nodes and edges. Both slices are
// copied. Edges whose endpoints are not among nodes are kept in Edges but are
// unreachable through Outgoing.
func NewSnapshot(directed bool, nodes []Node, edges []Edge) Snapshot {
	s := Snapshot{
		Directed: directed,
		Nodes:    append([]Node(nil), nodes...),
		Edges:    append([]Edge(nil), edges...),
		nodeIdx:  make(map[NodeID]int, len(nodes)),
		edgeIdx:  make(map[EdgeID]int, len(edges)),
		out:      make(map[NodeID][]int, len(nodes)),
	}
	for i, n := range s.Nodes {
		s.nodeIdx[n.ID] = i
	}
	for i, e := range s.Edges {
		s.edgeIdx[e.ID] = i
		if _, ok := s.nodeIdx[e.From]; ok {
			s.out[e.From] = append(s.out[e.From], i)
		}
	}

	return s
}

// indexed reports whether lookup indexes are present.
func (s Snapshot) indexed() bool { return s.nodeIdx != nil }

// NodeCount returns |V|.
func (s Snapshot) NodeCount() int { return len(s.Nodes) }

// EdgeCount returns |E|.
func (s Snapshot) EdgeCount() int { return len(s.Edges) }

// NodeIndex returns the insertion ordinal of the node.
func (s Snapshot) NodeIndex(id NodeID) (int, bool) {
	if s.indexed() {
		i, ok := s.nodeIdx[id]
		return i, ok
	}
	for i, n := range s.Nodes {
		if n.ID == id {
			return i, true
		}
	}

	return -1, false
}

// HasNode reports whether id is a node of the snapshot.
func (s Snapshot) HasNode(id NodeID) bool {
	_, ok := s.NodeIndex(id)
	return ok
}

// Node returns the node with this ID.
func (s Snapshot) Node(id NodeID) (Node, bool) {
	i, ok := s.NodeIndex(id)
	if !ok {
		return Node{}, false
	}

	return s.Nodes[i], true
}

// Label returns the node's label, or the raw ID when the node is unknown.
func (s Snapshot) Label(id NodeID) string {
	if n, ok := s.Node(id); ok {
		return n.Label
	}

	return string(id)
}

// Edge returns the edge with this ID.
func (s Snapshot) Edge(id EdgeID) (Edge, bool) {
	if s.indexed() {
		i, ok := s.edgeIdx[id]
		if !ok {
			return Edge{}, false
		}
		return s.Edges[i], true
	}
	for _, e := range s.Edges {
		if e.ID == id {
			return e, true
		}
	}

	return Edge{}, false
}

// Outgoing returns the edges leaving u, in edge order.
// Complexity: O(deg⁺(u)) when indexed, O(E) otherwise.
func (s Snapshot) Outgoing(u NodeID) []Edge {
	if !s.indexed() {
		var res []Edge
		for _, e := range s.Edges {
			if e.From == u {
				res = append(res, e)
			}
		}
		return res
	}
	idx := s.out[u]
	res := make([]Edge, len(idx))
	for i, k := range idx {
		res[i] = s.Edges[k]
	}

	return res
}

// FirstEdge returns the first edge in edge order with the given endpoints.
// With parallel edges this is not necessarily the lightest one.
func (s Snapshot) FirstEdge(from, to NodeID) (Edge, bool) {
	for _, e := range s.Outgoing(from) {
		if e.To == to {
			return e, true
		}
	}

	return Edge{}, false
}
