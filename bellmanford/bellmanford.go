// Package bellmanford implements a traced Bellman-Ford shortest-path run over
// a core.Snapshot.
//
// Bellman-Ford has no notion of settlement, so the trace holds only Relax
// steps followed by the terminal Done step. Negative weights are supported.
//
// Complexity:
//
//   - Time:  O(V · E) worst case; a round that relaxes nothing ends the run.
//   - Space: O(V) for the distance and predecessor maps.
//
// Negative cycles are not detected. With a negative cycle reachable from the
// source the distances are understated and the cycle's predecessor walks are
// dropped from Done.paths by the reconstruction bound.
package bellmanford

import (
	"fmt"

	"github.com/abbykyun/daa-visual/core"
	"github.com/abbykyun/daa-visual/trace"
)

// Run computes shortest distances from source over |V|-1 rounds of edge
// relaxation in edge insertion order and records every improving relaxation.
//
// A missing source without WithStrictSource produces every distance +Inf and
// a trace of a single Done step with empty paths.
func Run(snap core.Snapshot, source core.NodeID, opts ...Option) (*trace.Run, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if !snap.HasNode(source) && cfg.StrictSource {
		return nil, fmt.Errorf("%w: %q", ErrSourceNotFound, source)
	}

	r := &runner{snap: snap, res: trace.NewResult(snap)}
	if snap.HasNode(source) {
		r.res.Distance[source] = 0
		r.process()
	}

	paths, truncated := trace.Reconstruct(snap, source, r.res)

	return &trace.Run{
		Algorithm:      trace.BellmanFord,
		Source:         source,
		Snapshot:       snap,
		Trace:          r.rec.Done(paths),
		Result:         r.res,
		TruncatedWalks: truncated,
	}, nil
}

// runner holds the mutable state for a single Bellman-Ford execution.
type runner struct {
	snap core.Snapshot
	res  *trace.Result
	rec  trace.Recorder
}

// process runs up to |V|-1 rounds, stopping after the first quiet round.
// A quiet round leaves the state unchanged, so later rounds would be quiet too.
func (r *runner) process() {
	rounds := r.snap.NodeCount() - 1
	for i := 0; i < rounds; i++ {
		if !r.round() {
			return
		}
	}
}

// round relaxes every edge once and reports whether anything changed.
func (r *runner) round() bool {
	changed := false
	for _, e := range r.snap.Edges {
		if r.res.TryRelax(e) {
			r.rec.Relax(e.ID)
			changed = true
		}
	}

	return changed
}
