// SPDX-License-Identifier: MIT
// Package: daa-visual/builder
//
// impl_path.go - implementation of Path(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Adds nodes via cfg.labelFn in ascending index order (0..n-1).
//   - Emits edges (i-1) → i for i=1..n-1 in increasing order.
//   - Weights: cfg.weightFn, default DefaultWeightFn.
//
// Complexity:
//   - Time: O(n) nodes + O(n-1) edges.
//   - Space: O(n).

package builder

import (
	"fmt"

	"github.com/abbykyun/daa-visual/core"
)

// Path returns a Constructor that builds a simple path P_n.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < MinPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, MinPathNodes, ErrTooFewVertices)
		}

		ids, err := addLabeledNodes(methodPath, g, cfg, n)
		if err != nil {
			return err
		}

		weight := cfg.weightFor(DefaultWeightFn)
		for i := 1; i < n; i++ {
			if err = addWeightedEdge(methodPath, g, ids[i-1], ids[i], weight(cfg.rng)); err != nil {
				return err
			}
		}

		return nil
	}
}
