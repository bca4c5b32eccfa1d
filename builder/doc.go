// Package builder provides “functional-options”-style graph constructors for
// the visualizer: the seeded random graph behind the "random" button and a
// handful of deterministic fixtures used by tests, presets and the CLI.
//
// The package offers the following key components:
//
//   - Entry points:
//     – BuildGraph:   new graph, options, constructors applied in order.
//     – Apply:        the same against an existing (workspace) graph.
//     – Preset:       name → Constructor ("random", "path", "cycle", ...).
//   - Constructors:
//     – Random(n):    one random edge per node plus pair edges with p=0.35.
//     – Path, Cycle, Star, Complete.
//   - Label schemes (LabelFn):
//     – ExcelColumnLabel (default): "A".."Z","AA",…
//     – DecimalLabel, PrefixLabel.
//   - Edge-weight distributions (WeightFn):
//     – DefaultWeightFn, ConstantWeightFn, UniformIntWeightFn, UniformWeightFn.
//
// Guarantees:
//
//   - Determinism: identical options, seed and constructor order produce
//     identical node labels, edge order and weights. Node/edge IDs come from
//     the graph's own generator.
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Constructor failures are sentinel errors wrapped with the method name
//     ("Random: rng is required: builder: rng is required").
package builder
