// SPDX-License-Identifier: MIT
// Package: daa-visual/builder
//
// impl_star.go - implementation of Star(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Node 0 is the hub; nodes 1..n-1 are leaves.
//   - Emits spokes hub → leaf[i] in increasing leaf order. Undirected graphs
//     mirror them; directed graphs get outward spokes only.
//   - Weights: cfg.weightFn, default DefaultWeightFn.
//
// Complexity: O(n) time, O(n) space.

package builder

import (
	"fmt"

	"github.com/abbykyun/daa-visual/core"
)

// Star returns a Constructor that builds a star with n-1 leaves.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < MinStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, MinStarNodes, ErrTooFewVertices)
		}

		ids, err := addLabeledNodes(methodStar, g, cfg, n)
		if err != nil {
			return err
		}

		weight := cfg.weightFor(DefaultWeightFn)
		hub := ids[0]
		for _, leaf := range ids[1:] {
			if err = addWeightedEdge(methodStar, g, hub, leaf, weight(cfg.rng)); err != nil {
				return err
			}
		}

		return nil
	}
}
