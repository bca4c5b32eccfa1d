// SPDX-License-Identifier: MIT
// Package: daa-visual/builder
//
// api.go - public entry-points for the builder package.
//
// Design contract:
//   - BuildGraph(gopts, bopts, cons...) creates g, resolves cfg, runs cons in order.
//   - Apply(g, bopts, cons...) does the same against a caller-owned graph.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig.
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.
//   - Safety: constructors never panic; they return wrapped sentinel errors.

package builder

import (
	"fmt"

	"github.com/abbykyun/daa-visual/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Add edges through core.Graph.AddEdge so the graph's mirror policy applies.
//   - Preserve determinism for the same config and call order.
//
// Complexity (this type): O(1) to pass; actual cost is in the closure body.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new core.Graph with graph options gopts, resolves the
// builder configuration from bopts, and applies all constructors in order.
// Any constructor error is wrapped with "BuildGraph: %w" and returned
// immediately; no partial cleanup is attempted.
//
// Complexity:
//   - Resolving options: O(len(bopts)).
//   - Applying K constructors: Σ cost of each constructor.
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)
	if err := run(g, newBuilderConfig(bopts...), cons); err != nil {
		return nil, fmt.Errorf("BuildGraph: %w", err)
	}

	return g, nil
}

// Apply runs constructors against an existing graph, e.g. the long-lived
// workspace graph. The graph keeps its ID generator, layout and mode.
// On error the graph may hold a partial result.
func Apply(g *core.Graph, bopts []BuilderOption, cons ...Constructor) error {
	if g == nil {
		return fmt.Errorf("Apply: nil graph: %w", ErrConstructFailed)
	}
	if err := run(g, newBuilderConfig(bopts...), cons); err != nil {
		return fmt.Errorf("Apply: %w", err)
	}

	return nil
}

// run applies cons in order, rejecting nil constructors.
func run(g *core.Graph, cfg builderConfig, cons []Constructor) error {
	for i, fn := range cons {
		if fn == nil {
			return fmt.Errorf("nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return err
		}
	}

	return nil
}

// =============================================================================
// Topology factories (declarations) - implemented in impl_*.go
// =============================================================================
//
// Each factory returns a Constructor closure. The closure MUST:
//   - Add nodes labelled via cfg.labelFn in ascending index order.
//   - Emit edges in a stable, documented order.
//   - Return only sentinel errors; NEVER panic at runtime.

// Random clears g and builds the interactive "random graph": n nodes, one
// random outgoing edge per node, then each pair i<j with probability p.
// Requires cfg.rng (WithSeed / WithRand).
//func Random(n int) Constructor

// Path builds a simple path P_n (n ≥ 2).
//func Path(n int) Constructor

// Cycle builds an n-node cycle C_n (n ≥ 3).
//func Cycle(n int) Constructor

// Star builds a star with hub label(0) and n-1 leaves (n ≥ 2).
//func Star(n int) Constructor

// Complete builds K_n (n ≥ 1).
//func Complete(n int) Constructor
