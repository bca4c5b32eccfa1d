// SPDX-License-Identifier: MIT
// Package: daa-visual/builder
//
// impl_complete.go - implementation of Complete(n) constructor.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - For each pair i<j (i asc, j asc) emits i→j; on a directed graph it also
//     emits j→i right after, so both modes end with every ordered pair.
//   - Weights: cfg.weightFn, default DefaultWeightFn. One draw per edge.
//
// Complexity: O(n²) time, O(n) space.

package builder

import (
	"fmt"

	"github.com/abbykyun/daa-visual/core"
)

// Complete returns a Constructor that builds K_n.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < MinCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, MinCompleteNodes, ErrTooFewVertices)
		}

		ids, err := addLabeledNodes(methodComplete, g, cfg, n)
		if err != nil {
			return err
		}

		weight := cfg.weightFor(DefaultWeightFn)
		directed := g.Directed()
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err = addWeightedEdge(methodComplete, g, ids[i], ids[j], weight(cfg.rng)); err != nil {
					return err
				}
				if !directed {
					continue
				}
				if err = addWeightedEdge(methodComplete, g, ids[j], ids[i], weight(cfg.rng)); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
