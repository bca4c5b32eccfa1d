// SPDX-License-Identifier: MIT
//
// File: ids.go
// Role: Node and edge identifier sources.
// Determinism:
//   - SequentialIDs yields "n1","n2",... and "e1","e2",...; stable across runs.
//   - UUIDGenerator yields opaque random IDs; use it where IDs leave the process.

package core

import (
	"strconv"
	"sync/atomic"

	"github.com/google/uuid"
)

const (
	nodeIDPrefix = 'n'
	edgeIDPrefix = 'e'
)

// IDGenerator produces fresh, never-repeating identifiers.
// Implementations must be safe for concurrent use.
type IDGenerator interface {
	NodeID() NodeID
	EdgeID() EdgeID
}

// SequentialIDs is a monotonic counter-backed IDGenerator.
// Counters are never reset, not even by Graph.Clear, so an ID is never reused
// within one generator's lifetime.
type SequentialIDs struct {
	nextNode uint64
	nextEdge uint64
}

// NewSequentialIDs returns a counter starting at 1 for both kinds.
func NewSequentialIDs() *SequentialIDs { return &SequentialIDs{} }

// NodeID returns the next "n<k>" identifier.
func (s *SequentialIDs) NodeID() NodeID {
	return NodeID(formatSeq(nodeIDPrefix, atomic.AddUint64(&s.nextNode, 1)))
}

// EdgeID returns the next "e<k>" identifier.
func (s *SequentialIDs) EdgeID() EdgeID {
	return EdgeID(formatSeq(edgeIDPrefix, atomic.AddUint64(&s.nextEdge, 1)))
}

// formatSeq renders prefix+decimal without fmt to keep AddNode/AddEdge allocation-light.
func formatSeq(prefix byte, n uint64) string {
	buf := make([]byte, 0, 1+20) // prefix + up to 20 digits for uint64
	buf = append(buf, prefix)
	buf = strconv.AppendUint(buf, n, 10)

	return string(buf)
}

// UUIDGenerator issues "n-<uuid>" / "e-<uuid>" identifiers.
type UUIDGenerator struct{}

// NodeID returns a random node identifier.
func (UUIDGenerator) NodeID() NodeID { return NodeID("n-" + uuid.NewString()) }

// EdgeID returns a random edge identifier.
func (UUIDGenerator) EdgeID() EdgeID { return EdgeID("e-" + uuid.NewString()) }
