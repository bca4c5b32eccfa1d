// Package dijkstra implements a traced Dijkstra shortest-path run over a
// core.Snapshot.
//
// Every settlement is recorded as a Visit step and every strictly improving
// relaxation as a Relax step. The run ends with a single Done step carrying
// the shortest-path tree.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Each node is settled at most once: V extractions from the heap.
//   - Each relaxation may push a new entry: up to E pushes.
//   - Space: O(V + E)
//   - O(V) for the distance and predecessor maps.
//   - O(E) worst-case heap entries under “lazy decrease-key”.
//
// Notes on implementation choices:
//
//   - The heap is keyed by (distance, node order). The node popped is exactly
//     the first minimum a linear scan over the unsettled nodes would find, so
//     the trace does not depend on the data structure.
//   - Weights are not checked unless WithRejectNegative is given. With
//     negative weights a settled node may still be relaxed (and a Relax step
//     emitted), but it is never visited again.
//   - A node whose distance is +Inf is never selected; the run stops there.
package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/abbykyun/daa-visual/core"
	"github.com/abbykyun/daa-visual/trace"
)

// Run computes shortest distances from source to every node of snap and
// records the step trace.
//
// Returns:
//
//   - run: algorithm, source, the snapshot it ran on, the trace and the final
//     distance/predecessor maps.
//   - err: only with WithStrictSource (ErrSourceNotFound) or
//     WithRejectNegative (ErrNegativeWeight).
//
// A missing source without WithStrictSource produces every distance +Inf and
// a trace of a single Done step with empty paths.
func Run(snap core.Snapshot, source core.NodeID, opts ...Option) (*trace.Run, error) {
	// 1) Build Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Source existence
	if !snap.HasNode(source) && cfg.StrictSource {
		return nil, fmt.Errorf("%w: %q", ErrSourceNotFound, source)
	}

	// 3) Optional negative-weight pre-scan
	if cfg.RejectNegative {
		for _, e := range snap.Edges {
			if e.Weight < 0 {
				return nil, fmt.Errorf("%w: edge %s %s→%s weight=%g", ErrNegativeWeight, e.ID, e.From, e.To, e.Weight)
			}
		}
	}

	r := &runner{
		snap:    snap,
		source:  source,
		res:     trace.NewResult(snap),
		settled: make(map[core.NodeID]bool, snap.NodeCount()),
		pq:      make(nodePQ, 0, snap.NodeCount()),
	}

	// 4) Main loop, skipped entirely for a missing source
	if snap.HasNode(source) {
		r.init()
		r.process()
	}

	// 5) Shortest-path tree
	paths, truncated := trace.Reconstruct(snap, source, r.res)

	return &trace.Run{
		Algorithm:      trace.Dijkstra,
		Source:         source,
		Snapshot:       snap,
		Trace:          r.rec.Done(paths),
		Result:         r.res,
		TruncatedWalks: truncated,
	}, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	snap    core.Snapshot        // Read-only input.
	source  core.NodeID          // Start node, present in snap.
	res     *trace.Result        // Distance and predecessor maps.
	settled map[core.NodeID]bool // Nodes whose distance is final.
	pq      nodePQ               // Lazy min-heap of (dist, order).
	rec     trace.Recorder       // Step sink.
}

// init sets dist[source]=0 and seeds the heap.
func (r *runner) init() {
	r.res.Distance[r.source] = 0
	heap.Init(&r.pq)
	r.push(r.source, 0)
}

// process settles nodes in (distance, order) order until the heap is empty.
func (r *runner) process() {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		u := item.id

		// Skip settled nodes and entries superseded by a later push.
		if r.settled[u] || item.dist != r.res.Dist(u) {
			continue
		}

		r.settled[u] = true
		r.rec.Visit(u)
		r.relax(u)
	}
}

// relax tries every outgoing edge of u in edge order.
func (r *runner) relax(u core.NodeID) {
	for _, e := range r.snap.Outgoing(u) {
		if !r.res.TryRelax(e) {
			continue
		}
		r.rec.Relax(e.ID)

		// A settled node keeps its improved distance but is not revisited.
		if !r.settled[e.To] {
			r.push(e.To, r.res.Dist(e.To))
		}
	}
}

func (r *runner) push(id core.NodeID, d float64) {
	if math.IsInf(d, 1) {
		return
	}
	order, _ := r.snap.NodeIndex(id)
	heap.Push(&r.pq, &nodeItem{id: id, dist: d, order: order})
}

// nodeItem is a heap entry: a node and the distance it was pushed with.
type nodeItem struct {
	id    core.NodeID
	dist  float64
	order int // snapshot node index, the tie-break
}

// nodePQ is a min-heap of *nodeItem ordered by (dist, order).
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less orders by distance, then by node insertion order.
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].order < pq[j].order
}

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds x; called by heap.Push.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes the last element; called by heap.Pop.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
