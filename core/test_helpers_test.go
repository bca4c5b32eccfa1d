// SPDX-License-Identifier: MIT
// Package core_test contains test helpers for daa-visual/core.
//
// Purpose:
//   - Provide small, deterministic fixtures for core.Graph.
//   - Keep label/weight literals out of test bodies.

package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/abbykyun/daa-visual/core"
)

// Common labels used across core tests.
const (
	LabelA = "A"
	LabelB = "B"
	LabelC = "C"
	LabelD = "D"
)

// Common weights used across core tests.
const (
	Weight2  = 2.0
	Weight3  = 3.0
	Weight10 = 10.0
)

// mustAddNodes adds one node per label and returns the IDs in the same order.
func mustAddNodes(t *testing.T, g *core.Graph, labels ...string) []core.NodeID {
	t.Helper()
	ids := make([]core.NodeID, 0, len(labels))
	for _, l := range labels {
		id, ok := g.AddNode(l)
		require.Truef(t, ok, "AddNode(%q) rejected", l)
		ids = append(ids, id)
	}

	return ids
}
