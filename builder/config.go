// SPDX-License-Identifier: MIT
// Package: daa-visual/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • labelFn     = ExcelColumnLabel    ("A".."Z","AA",...)
//   • rng         = nil                 (pure/deterministic unless seeded)
//   • weightFn    = nil                 (per-constructor default, see weightFor)
//   • probability = DefaultProbability  (0.35, Random only)
//   • maxWeight   = DefaultMaxWeight    (9, Random only)

package builder

import (
	"math/rand"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	// Node label strategy: index -> label (deterministic).
	labelFn LabelFn
	// RNG for stochastic choices; nil means “no randomness”.
	rng *rand.Rand
	// Weight generator; nil selects the constructor's default.
	weightFn WeightFn

	// Random graph controls.
	probability float64 // pair edge probability in [0,1]
	maxWeight   int     // Random default weights are 1..maxWeight
}

// Deterministic defaults (named, no magic numbers).
const (
	// DefaultProbability is the chance of an extra edge per pair in Random.
	DefaultProbability = 0.35
	// DefaultMaxWeight bounds the integer weights drawn by Random.
	DefaultMaxWeight = 9
)

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order (later overrides earlier).
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		labelFn:     ExcelColumnLabel,
		probability: DefaultProbability,
		maxWeight:   DefaultMaxWeight,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// weightFor returns the configured weight function, or fallback when none
// was set.
func (c builderConfig) weightFor(fallback WeightFn) WeightFn {
	if c.weightFn != nil {
		return c.weightFn
	}

	return fallback
}
