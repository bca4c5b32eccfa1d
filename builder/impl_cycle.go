// SPDX-License-Identifier: MIT
// Package: daa-visual/builder
//
// impl_cycle.go - implementation of Cycle(n) constructor.
//
// Contract:
//   - n ≥ 3 (else ErrTooFewVertices).
//   - Emits i → (i+1) mod n for i=0..n-1; the closing edge (n-1)→0 comes last.
//   - Weights: cfg.weightFn, default DefaultWeightFn.
//
// Complexity: O(n) time, O(n) space.

package builder

import (
	"fmt"

	"github.com/abbykyun/daa-visual/core"
)

// Cycle returns a Constructor that builds the ring C_n.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < MinCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, MinCycleNodes, ErrTooFewVertices)
		}

		ids, err := addLabeledNodes(methodCycle, g, cfg, n)
		if err != nil {
			return err
		}

		weight := cfg.weightFor(DefaultWeightFn)
		for i := 0; i < n; i++ {
			if err = addWeightedEdge(methodCycle, g, ids[i], ids[(i+1)%n], weight(cfg.rng)); err != nil {
				return err
			}
		}

		return nil
	}
}
