// Package dijkstra provides a traced implementation of Dijkstra's
// single-source shortest-path algorithm for step-by-step visualization.
//
// Overview:
//
//   - Run takes an immutable core.Snapshot and a source node and returns a
//     *trace.Run: the ordered Visit/Relax/Done steps plus the final distance
//     and predecessor maps.
//   - The trace is a pure function of (snapshot, source). Two runs on the same
//     input produce identical steps and results.
//
// Selection policy:
//
//   - The unsettled node with the smallest distance is settled next. Ties go to
//     the node inserted first. A min-heap keyed by (distance, node order)
//     reproduces that choice exactly, so the Visit order is the same one a
//     plain O(V²) scan would give.
//   - Nodes at +Inf distance are never settled, so unreachable nodes produce no
//     Visit step.
//
// Weights:
//
//   - Non-negative weights are assumed but not enforced. With negative weights
//     the distances may be wrong, which is a documented limitation; use the
//     bellmanford package instead, or pass WithRejectNegative to fail fast.
//
// Error handling (sentinel errors):
//
//   - ErrSourceNotFound:
//     Returned only with WithStrictSource when the source is not a node of the
//     snapshot. Without it the run degrades to all +Inf and a lone Done step.
//   - ErrNegativeWeight:
//     Returned only with WithRejectNegative when any edge weight is negative.
//
// API reference:
//
//	func Run(
//	    snap core.Snapshot,
//	    source core.NodeID,
//	    opts ...Option,
//	) (*trace.Run, error)
package dijkstra
