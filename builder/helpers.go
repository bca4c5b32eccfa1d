// Package builder provides internal helper functions used by Constructor
// implementations.
package builder

import (
	"fmt"

	"github.com/abbykyun/daa-visual/core"
)

// addLabeledNodes inserts n nodes labelled cfg.labelFn(0..n-1) and returns
// their IDs in index order.
// Complexity: O(n) time and space.
func addLabeledNodes(method string, g *core.Graph, cfg builderConfig, n int) ([]core.NodeID, error) {
	ids := make([]core.NodeID, n)
	for i := 0; i < n; i++ {
		label := cfg.labelFn(i)
		id, ok := g.AddNode(label)
		if !ok {
			return nil, fmt.Errorf("%s: AddNode(%q) rejected: %w", method, label, ErrConstructFailed)
		}
		ids[i] = id
	}

	return ids, nil
}

// addWeightedEdge adds u→v with weight w; the graph mirrors it when undirected.
func addWeightedEdge(method string, g *core.Graph, u, v core.NodeID, w float64) error {
	if len(g.AddEdge(u, v, w)) == 0 {
		return fmt.Errorf("%s: AddEdge(%s→%s, w=%g) rejected: %w", method, u, v, w, ErrConstructFailed)
	}

	return nil
}
