package trace

import (
	"fmt"

	"github.com/abbykyun/daa-visual/core"
)

// Trace is the ordered step sequence of one run.
type Trace []Step

// Counts tallies a trace by kind.
type Counts struct {
	Visits  int `json:"visits"`
	Relaxes int `json:"relaxes"`
	Done    int `json:"done"`
}

// Counts returns the per-kind totals.
// Complexity: O(len(t)).
func (t Trace) Counts() Counts {
	var c Counts
	for _, s := range t {
		switch s.Kind {
		case KindVisit:
			c.Visits++
		case KindRelax:
			c.Relaxes++
		case KindDone:
			c.Done++
		}
	}

	return c
}

// Final returns the terminal Done step, if the trace ends with one.
func (t Trace) Final() (Step, bool) {
	if len(t) == 0 || t[len(t)-1].Kind != KindDone {
		return Step{}, false
	}

	return t[len(t)-1], true
}

// Validate checks the replay contract:
//   - the trace is non-empty and ends with exactly one Done step;
//   - every step has a known kind;
//   - no node is visited twice.
//
// Errors are the package sentinels wrapped with the offending index.
func (t Trace) Validate() error {
	if len(t) == 0 {
		return ErrEmptyTrace
	}
	visited := make(map[core.NodeID]bool)
	last := len(t) - 1
	for i, s := range t {
		switch s.Kind {
		case KindVisit:
			if visited[s.Node] {
				return fmt.Errorf("%w: step %d node %q", ErrDuplicateVisit, i, s.Node)
			}
			visited[s.Node] = true
		case KindRelax:
		case KindDone:
			if i != last {
				return fmt.Errorf("%w: done at step %d of %d", ErrStepAfterDone, i, len(t))
			}
		default:
			return fmt.Errorf("%w: step %d", ErrUnknownKind, i)
		}
	}
	if t[last].Kind != KindDone {
		return ErrMissingDone
	}

	return nil
}

// Recorder accumulates steps for an engine. The zero value is ready to use.
type Recorder struct {
	steps Trace
}

// Visit records a visit step.
func (r *Recorder) Visit(n core.NodeID) { r.steps = append(r.steps, Visit(n)) }

// Relax records a relax step.
func (r *Recorder) Relax(e core.EdgeID) { r.steps = append(r.steps, Relax(e)) }

// Done records the terminal step and returns the finished trace.
// The Recorder must not be used afterwards.
func (r *Recorder) Done(paths []core.EdgeID) Trace {
	r.steps = append(r.steps, Done(paths))
	out := r.steps
	r.steps = nil

	return out
}
