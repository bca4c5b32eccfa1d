// Package trace defines the replayable output of a shortest-path run: the
// ordered Step sequence (visit / relax / done), the final Result maps, and the
// shared shortest-path-tree reconstruction.
//
// A Trace is valid when replayed strictly in order: no step depends on
// anything except earlier steps and the final Result.
//
// Errors (sentinel, from Validate):
//
//	ErrEmptyTrace      - the trace has no steps.
//	ErrMissingDone     - the last step is not a Done step.
//	ErrStepAfterDone   - a Done step appears before the end.
//	ErrDuplicateVisit  - the same node is visited twice.
//	ErrUnknownKind     - a step has no valid kind.
package trace

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/abbykyun/daa-visual/core"
)

// Sentinel errors reported by Trace.Validate and step decoding.
var (
	ErrEmptyTrace     = errors.New("trace: trace is empty")
	ErrMissingDone    = errors.New("trace: last step is not done")
	ErrStepAfterDone  = errors.New("trace: step after done")
	ErrDuplicateVisit = errors.New("trace: node visited twice")
	ErrUnknownKind    = errors.New("trace: unknown step kind")
)

// Kind discriminates the three step variants.
type Kind uint8

const (
	// KindVisit: a node left the frontier (was settled) in this iteration.
	KindVisit Kind = iota + 1
	// KindRelax: an edge produced a strictly shorter distance to its To node.
	KindRelax
	// KindDone: terminal step carrying the shortest-path tree edges.
	KindDone
)

var kindNames = map[Kind]string{
	KindVisit: "visit",
	KindRelax: "relax",
	KindDone:  "done",
}

// String returns the wire name of the kind.
func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}

	return fmt.Sprintf("kind(%d)", uint8(k))
}

// ParseKind maps a wire name back to a Kind.
func ParseKind(s string) (Kind, error) {
	for k, name := range kindNames {
		if name == s {
			return k, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// Step is one trace event. Exactly one payload field is meaningful per Kind:
// Node for visit, Edge for relax, Paths for done.
type Step struct {
	Kind  Kind
	Node  core.NodeID
	Edge  core.EdgeID
	Paths []core.EdgeID
}

// Visit builds a visit step.
func Visit(n core.NodeID) Step { return Step{Kind: KindVisit, Node: n} }

// Relax builds a relax step.
func Relax(e core.EdgeID) Step { return Step{Kind: KindRelax, Edge: e} }

// Done builds the terminal step. A nil paths slice is normalised to empty.
func Done(paths []core.EdgeID) Step {
	if paths == nil {
		paths = []core.EdgeID{}
	}

	return Step{Kind: KindDone, Paths: paths}
}

// wireStep is the JSON shape: {"type":"visit","node":...} etc.
type wireStep struct {
	Type  string        `json:"type"`
	Node  core.NodeID   `json:"node,omitempty"`
	Edge  core.EdgeID   `json:"edge,omitempty"`
	Paths []core.EdgeID `json:"paths,omitempty"`
}

// MarshalJSON encodes the step in its tagged wire form.
func (s Step) MarshalJSON() ([]byte, error) {
	w := wireStep{Type: s.Kind.String()}
	switch s.Kind {
	case KindVisit:
		w.Node = s.Node
	case KindRelax:
		w.Edge = s.Edge
	case KindDone:
		// Done always carries a (possibly empty) paths array.
		return json.Marshal(struct {
			Type  string        `json:"type"`
			Paths []core.EdgeID `json:"paths"`
		}{Type: w.Type, Paths: Done(s.Paths).Paths})
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, s.Kind)
	}

	return json.Marshal(w)
}

// UnmarshalJSON decodes the tagged wire form.
func (s *Step) UnmarshalJSON(b []byte) error {
	var w wireStep
	if err := json.Unmarshal(b, &w); err != nil {
		return err
	}
	k, err := ParseKind(w.Type)
	if err != nil {
		return err
	}
	switch k {
	case KindVisit:
		*s = Visit(w.Node)
	case KindRelax:
		*s = Relax(w.Edge)
	case KindDone:
		*s = Done(w.Paths)
	}

	return nil
}

// Algorithm names a shortest-path engine.
type Algorithm string

// Supported algorithms.
const (
	Dijkstra    Algorithm = "dijkstra"
	BellmanFord Algorithm = "bellman-ford"
)

// ErrUnknownAlgorithm is returned by ParseAlgorithm.
var ErrUnknownAlgorithm = errors.New("trace: unknown algorithm")

// ParseAlgorithm accepts the canonical names plus "bellman" and "bellmanford".
func ParseAlgorithm(s string) (Algorithm, error) {
	switch s {
	case string(Dijkstra):
		return Dijkstra, nil
	case string(BellmanFord), "bellman", "bellmanford":
		return BellmanFord, nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
}

// Run is the complete output of one engine invocation. A new Run replaces the
// previous one; nothing else references it.
//
// TruncatedWalks counts the predecessor walks Reconstruct dropped because they
// looped; non-zero only when a negative cycle is reachable.
type Run struct {
	Algorithm      Algorithm     `json:"algorithm"`
	Source         core.NodeID   `json:"source"`
	Snapshot       core.Snapshot `json:"graph"`
	Trace          Trace         `json:"trace"`
	Result         *Result       `json:"result"`
	TruncatedWalks int           `json:"truncated_walks"`
}
