// Package graphtest holds graph fixtures and a brute-force shortest-path
// oracle shared by the engine tests.
package graphtest

import (
	"math"
	"math/rand"

	"github.com/abbykyun/daa-visual/core"
	"github.com/abbykyun/daa-visual/trace"
)

// IDs maps fixture labels to the node IDs the graph assigned.
type IDs map[string]core.NodeID

// Build adds the labeled nodes, then one AddEdge per triple (from, to, w).
func Build(directed bool, labels []string, edges ...Triple) (*core.Graph, IDs) {
	g := core.NewGraph(core.WithDirected(directed))
	ids := make(IDs, len(labels))
	for _, l := range labels {
		id, _ := g.AddNode(l)
		ids[l] = id
	}
	for _, e := range edges {
		g.AddEdge(ids[e.From], ids[e.To], e.Weight)
	}

	return g, ids
}

// Triple is a labeled edge for Build.
type Triple struct {
	From, To string
	Weight   float64
}

// Chain is the directed A→B(2), B→C(3), A→C(10) graph plus an isolated D.
func Chain() (*core.Graph, IDs) {
	return Build(true, []string{"A", "B", "C", "D"},
		Triple{"A", "B", 2},
		Triple{"B", "C", 3},
		Triple{"A", "C", 10},
	)
}

// Random returns a graph of n nodes where each ordered pair (i<j) gets an edge
// with probability p and an integer weight in [minW, maxW].
func Random(rng *rand.Rand, n int, p float64, minW, maxW int, directed bool) *core.Graph {
	g := core.NewGraph(core.WithDirected(directed))
	ids := make([]core.NodeID, n)
	for i := 0; i < n; i++ {
		ids[i], _ = g.AddNode(string(rune('A' + i)))
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j || (!directed && j < i) {
				continue
			}
			if rng.Float64() < p {
				w := minW + rng.Intn(maxW-minW+1)
				g.AddEdge(ids[i], ids[j], float64(w))
			}
		}
	}

	return g
}

// RandomDAG is a directed graph with edges only from lower to higher insertion
// index, so negative weights can never form a cycle.
func RandomDAG(rng *rand.Rand, n int, p float64, minW, maxW int) *core.Graph {
	g := core.NewGraph(core.WithDirected(true))
	ids := make([]core.NodeID, n)
	for i := 0; i < n; i++ {
		ids[i], _ = g.AddNode(string(rune('A' + i)))
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if rng.Float64() < p {
				w := minW + rng.Intn(maxW-minW+1)
				g.AddEdge(ids[i], ids[j], float64(w))
			}
		}
	}

	return g
}

// BruteForce enumerates every simple path from source and returns the
// minimum weight per node (+Inf when unreachable). Exponential; keep n small.
// Valid as an oracle whenever no negative cycle is reachable.
func BruteForce(s core.Snapshot, source core.NodeID) map[core.NodeID]float64 {
	best := make(map[core.NodeID]float64, s.NodeCount())
	for _, n := range s.Nodes {
		best[n.ID] = math.Inf(1)
	}
	if !s.HasNode(source) {
		return best
	}

	onPath := map[core.NodeID]bool{source: true}
	var dfs func(u core.NodeID, d float64)
	dfs = func(u core.NodeID, d float64) {
		if d < best[u] {
			best[u] = d
		}
		for _, e := range s.Outgoing(u) {
			if onPath[e.To] {
				continue
			}
			onPath[e.To] = true
			dfs(e.To, d+e.Weight)
			onPath[e.To] = false
		}
	}
	dfs(source, 0)

	return best
}

// TreeEdges lists, for every node other than source that has a predecessor p,
// the first edge p→node in edge order. It scans the edge list directly so it
// can check trace.Reconstruct without sharing its lookups.
func TreeEdges(s core.Snapshot, source core.NodeID, r *trace.Result) []core.EdgeID {
	var out []core.EdgeID
	for _, n := range s.Nodes {
		p, ok := r.Pred(n.ID)
		if !ok || n.ID == source {
			continue
		}
		for _, e := range s.Edges {
			if e.From == p && e.To == n.ID {
				out = append(out, e.ID)
				break
			}
		}
	}

	return out
}
