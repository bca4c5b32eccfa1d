// Package builder provides internal helper functions and types
// for configuring edge-weight distributions in graph constructors.
package builder

import (
	"fmt"
	"math/rand"
)

// DefaultEdgeWeight is the weight fixtures use when no WeightFn is set.
const DefaultEdgeWeight float64 = 1

// WeightFn produces an edge weight given an optional *rand.Rand source.
// It must be deterministic for a given RNG seed.
type WeightFn func(rng *rand.Rand) float64

// DefaultWeightFn always returns DefaultEdgeWeight.
func DefaultWeightFn(_ *rand.Rand) float64 {
	return DefaultEdgeWeight
}

// ConstantWeightFn returns a WeightFn that always yields value.
// Negative values are allowed; Bellman-Ford fixtures need them.
func ConstantWeightFn(value float64) WeightFn {
	return func(_ *rand.Rand) float64 {
		return value
	}
}

// UniformIntWeightFn samples an integer uniformly in [min, max] inclusive.
// Panics if max < min. With a nil rng it yields min.
func UniformIntWeightFn(min, max int) WeightFn {
	if max < min {
		panic(fmt.Sprintf("UniformIntWeightFn: require min ≤ max, got min=%d, max=%d", min, max))
	}
	return func(rng *rand.Rand) float64 {
		if rng == nil || max == min {
			return float64(min)
		}
		return float64(min + rng.Intn(max-min+1))
	}
}

// UniformWeightFn samples uniformly in [min, max).
// Panics if max < min. With a nil rng it yields min.
func UniformWeightFn(min, max float64) WeightFn {
	if max < min {
		panic(fmt.Sprintf("UniformWeightFn: require min ≤ max, got min=%g, max=%g", min, max))
	}
	return func(rng *rand.Rand) float64 {
		if rng == nil || max == min {
			return min
		}
		return min + rng.Float64()*(max-min)
	}
}

// WithConstantWeight sets a fixed edge weight via ConstantWeightFn.
func WithConstantWeight(w float64) BuilderOption {
	return WithWeightFn(ConstantWeightFn(w))
}

// WithUniformIntWeight sets integer weights ∼ U{min..max}.
func WithUniformIntWeight(min, max int) BuilderOption {
	return WithWeightFn(UniformIntWeightFn(min, max))
}
