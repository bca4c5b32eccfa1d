package trace

import "github.com/abbykyun/daa-visual/core"

// Reconstruct collects the shortest-path tree edges rooted at source.
//
// For every node (in snapshot order) other than source that has a
// predecessor, the predecessor chain is walked back towards source. Each hop
// cur ← pred[cur] contributes the first edge in edge order with
// From == pred[cur] and To == cur. Edge IDs keep first-appearance order and
// are not repeated.
//
// The walk from one node is bounded to |V| hops. A walk that exceeds the
// bound follows a predecessor cycle (only possible with a reachable negative
// cycle); it is discarded and counted in truncated.
//
// Complexity: O(V · (V + deg)) worst case; tiny for interactive graphs.
func Reconstruct(s core.Snapshot, source core.NodeID, r *Result) (paths []core.EdgeID, truncated int) {
	paths = []core.EdgeID{}
	seen := make(map[core.EdgeID]bool)
	limit := s.NodeCount()

	var walk []core.EdgeID
	for _, n := range s.Nodes {
		if n.ID == source {
			continue
		}
		if _, ok := r.Pred(n.ID); !ok {
			continue
		}

		walk = walk[:0]
		cur, hops, closed := n.ID, 0, true
		for {
			p, ok := r.Pred(cur)
			if !ok || cur == source {
				break
			}
			if hops >= limit {
				closed = false
				break
			}
			if e, ok := s.FirstEdge(p, cur); ok {
				walk = append(walk, e.ID)
			}
			cur = p
			hops++
		}
		if !closed {
			truncated++
			continue
		}
		for _, id := range walk {
			if !seen[id] {
				seen[id] = true
				paths = append(paths, id)
			}
		}
	}

	return paths, truncated
}
