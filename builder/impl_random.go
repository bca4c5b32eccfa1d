// SPDX-License-Identifier: MIT
// Package: daa-visual/builder
//
// impl_random.go - implementation of Random(n) constructor.
//
// Model (the visualizer's "random graph" button):
//   1. Clear g (mode, layout and ID counters are kept).
//   2. Add n nodes labelled cfg.labelFn(0..n-1).
//   3. For each node i asc: draw other = rng.Intn(n); if other != i, add i→other.
//   4. For each pair i<j: with probability cfg.probability add i→j.
//   Steps 3 and 4 can produce parallel edges; they are kept.
//
// Contract:
//   - n ≥ MinRandomNodes (else ErrTooFewVertices).
//   - cfg.probability in [0,1] (else ErrInvalidProbability).
//   - cfg.rng must be non-nil (else ErrNeedRandSource).
//   - Weights: cfg.weightFn, default UniformIntWeightFn(1, cfg.maxWeight).
//   - Edges go through g.AddEdge, so undirected graphs get mirrored pairs.
//
// Complexity:
//   - Time: O(n) nodes + O(n²) Bernoulli trials.
//   - Space: O(n) for the ID slice.
//
// Determinism:
//   - Fixed draw order: the n "other" draws (each followed by its weight draw
//     when an edge is added), then pair trials i asc, j asc.

package builder

import (
	"fmt"

	"github.com/abbykyun/daa-visual/core"
)

// Random returns a Constructor that replaces g's content with a random graph
// over n nodes.
func Random(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		// 1) Validate parameters early (zero side-effects on invalid input).
		if n < MinRandomNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodRandom, n, MinRandomNodes, ErrTooFewVertices)
		}
		p := cfg.probability
		if p < minProbability || p > maxProbability {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandom, p, minProbability, maxProbability, ErrInvalidProbability)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: rng is required: %w", methodRandom, ErrNeedRandSource)
		}

		// 2) Reset and add nodes.
		g.Clear()
		ids, err := addLabeledNodes(methodRandom, g, cfg, n)
		if err != nil {
			return err
		}

		rng := cfg.rng
		weight := cfg.weightFor(UniformIntWeightFn(1, cfg.maxWeight))

		// 3) One random outgoing edge per node (skipped when it would self-loop).
		for i := 0; i < n; i++ {
			other := rng.Intn(n)
			if other == i {
				continue
			}
			if err = addWeightedEdge(methodRandom, g, ids[i], ids[other], weight(rng)); err != nil {
				return err
			}
		}

		// 4) Extra edges per unordered pair, lower index → higher index.
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if rng.Float64() >= p {
					continue
				}
				if err = addWeightedEdge(methodRandom, g, ids[i], ids[j], weight(rng)); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
