// SPDX-License-Identifier: MIT
// Package: daa-visual/builder
//
// options.go - functional options for the builder package.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors themselves MUST NOT panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import (
	"fmt"
	"math/rand"
)

// BuilderOption customizes the behavior of a constructor by mutating a
// builderConfig instance before graph construction begins.
type BuilderOption func(*builderConfig)

// WithLabelScheme sets the node label generator: idx -> label.
// Panics on nil.
func WithLabelScheme(fn LabelFn) BuilderOption {
	if fn == nil {
		panic("builder: WithLabelScheme(nil)")
	}
	return func(c *builderConfig) {
		c.labelFn = fn
	}
}

// WithRand provides an explicit RNG for stochastic builders.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithWeightFn overrides the per-edge weight generator. Panics on nil.
func WithWeightFn(fn WeightFn) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}
	return func(c *builderConfig) {
		c.weightFn = fn
	}
}

// WithProbability sets the pair edge probability used by Random.
// Panics unless 0 ≤ p ≤ 1.
func WithProbability(p float64) BuilderOption {
	if p < minProbability || p > maxProbability {
		panic(fmt.Sprintf("builder: WithProbability(%g) not in [0,1]", p))
	}
	return func(c *builderConfig) {
		c.probability = p
	}
}

// WithMaxWeight sets the upper bound of Random's default 1..max weights.
// Panics if max < 1.
func WithMaxWeight(max int) BuilderOption {
	if max < 1 {
		panic(fmt.Sprintf("builder: WithMaxWeight(%d) < 1", max))
	}
	return func(c *builderConfig) {
		c.maxWeight = max
	}
}
