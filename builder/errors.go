// SPDX-License-Identifier: MIT
// Package: daa-visual/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context with `%w`, prefixed by the method name.
//   • Validation panics are confined to option constructors (WithX...).

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter is smaller than the
// allowed minimum for the requested constructor.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor requires a non-nil
// *rand.Rand in the resolved builderConfig (WithSeed/WithRand must be set).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates that the graph rejected an insertion the
// constructor relied on (blank label, missing endpoint) or that the input
// was structurally unusable (nil graph, nil constructor).
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrUnknownPreset indicates an unsupported preset name in Preset.
var ErrUnknownPreset = errors.New("builder: unknown preset")
