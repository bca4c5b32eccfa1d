// Package dijkstra_test contains unit tests for the traced Dijkstra engine.
// They cover the exact step sequence on small fixtures, tie-breaking, missing
// sources, the opt-in validations, and agreement with a brute-force oracle.
package dijkstra_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abbykyun/daa-visual/core"
	"github.com/abbykyun/daa-visual/dijkstra"
	"github.com/abbykyun/daa-visual/internal/graphtest"
	"github.com/abbykyun/daa-visual/trace"
)

// ------------------------------------------------------------------------
// 1. Reference scenarios
// ------------------------------------------------------------------------

func TestRun_DirectedChain(t *testing.T) {
	g, id := graphtest.Chain()
	run, err := dijkstra.Run(g.Snapshot(), id["A"])
	require.NoError(t, err)

	// Edge IDs follow insertion: e1=A→B, e2=B→C, e3=A→C.
	want := trace.Trace{
		trace.Visit(id["A"]),
		trace.Relax("e1"),
		trace.Relax("e3"),
		trace.Visit(id["B"]),
		trace.Relax("e2"),
		trace.Visit(id["C"]),
		trace.Done([]core.EdgeID{"e1", "e2"}),
	}
	assert.Equal(t, want, run.Trace)
	assert.Equal(t, trace.Dijkstra, run.Algorithm)
	assert.Zero(t, run.TruncatedWalks)

	res := run.Result
	assert.Equal(t, 0.0, res.Dist(id["A"]))
	assert.Equal(t, 2.0, res.Dist(id["B"]))
	assert.Equal(t, 5.0, res.Dist(id["C"]))
	pb, _ := res.Pred(id["B"])
	pc, _ := res.Pred(id["C"])
	assert.Equal(t, id["A"], pb)
	assert.Equal(t, id["B"], pc)
}

func TestRun_DisconnectedNodeStaysInfinite(t *testing.T) {
	g, id := graphtest.Chain()
	run, err := dijkstra.Run(g.Snapshot(), id["A"])
	require.NoError(t, err)

	assert.True(t, math.IsInf(run.Result.Dist(id["D"]), 1))
	_, ok := run.Result.Pred(id["D"])
	assert.False(t, ok)
	for _, s := range run.Trace {
		assert.NotEqual(t, id["D"], s.Node, "unreachable node must not be visited")
	}
	final, _ := run.Trace.Final()
	assert.NotContains(t, final.Paths, core.EdgeID(""))
	assert.Len(t, final.Paths, 2)
}

func TestRun_UndirectedMirrors(t *testing.T) {
	g, id := graphtest.Build(false, []string{"A", "B", "C"},
		graphtest.Triple{From: "A", To: "B", Weight: 2},
		graphtest.Triple{From: "B", To: "C", Weight: 3},
		graphtest.Triple{From: "A", To: "C", Weight: 10},
	)
	require.Equal(t, 6, g.EdgeCount())

	run, err := dijkstra.Run(g.Snapshot(), id["C"])
	require.NoError(t, err)
	assert.Equal(t, 5.0, run.Result.Dist(id["A"]))
	assert.Equal(t, 3.0, run.Result.Dist(id["B"]))

	// From C: A is reached via B→A (e2), B via C→B (e4).
	final, _ := run.Trace.Final()
	assert.Equal(t, []core.EdgeID{"e2", "e4"}, final.Paths)
}

// ------------------------------------------------------------------------
// 2. Selection policy
// ------------------------------------------------------------------------

func TestRun_TieBreakFollowsNodeOrder(t *testing.T) {
	// C is inserted before B, but A→B is relaxed first.
	g, id := graphtest.Build(true, []string{"A", "C", "B"},
		graphtest.Triple{From: "A", To: "B", Weight: 1},
		graphtest.Triple{From: "A", To: "C", Weight: 1},
	)
	run, err := dijkstra.Run(g.Snapshot(), id["A"])
	require.NoError(t, err)

	var visits []core.NodeID
	for _, s := range run.Trace {
		if s.Kind == trace.KindVisit {
			visits = append(visits, s.Node)
		}
	}
	assert.Equal(t, []core.NodeID{id["A"], id["C"], id["B"]}, visits)
}

func TestRun_NegativeEdgeRelaxesSettledNode(t *testing.T) {
	// Outside the correctness guarantee, but the trace must stay well formed.
	g, id := graphtest.Build(true, []string{"A", "B", "C"},
		graphtest.Triple{From: "A", To: "B", Weight: 1},
		graphtest.Triple{From: "A", To: "C", Weight: 2},
		graphtest.Triple{From: "C", To: "B", Weight: -5},
	)
	run, err := dijkstra.Run(g.Snapshot(), id["A"])
	require.NoError(t, err)

	want := trace.Trace{
		trace.Visit(id["A"]),
		trace.Relax("e1"),
		trace.Relax("e2"),
		trace.Visit(id["B"]),
		trace.Visit(id["C"]),
		trace.Relax("e3"),
		trace.Done([]core.EdgeID{"e3", "e2"}),
	}
	assert.Equal(t, want, run.Trace)
	assert.NoError(t, run.Trace.Validate())
	assert.Equal(t, -3.0, run.Result.Dist(id["B"]))
}

// ------------------------------------------------------------------------
// 3. Source handling and options
// ------------------------------------------------------------------------

func TestRun_MissingSourceDegrades(t *testing.T) {
	g, _ := graphtest.Chain()
	run, err := dijkstra.Run(g.Snapshot(), "ghost")
	require.NoError(t, err)

	assert.Equal(t, trace.Trace{trace.Done(nil)}, run.Trace)
	for _, n := range g.Nodes() {
		assert.True(t, math.IsInf(run.Result.Dist(n.ID), 1))
	}
	assert.Empty(t, run.Result.Predecessor)
}

func TestRun_StrictSource(t *testing.T) {
	g, _ := graphtest.Chain()
	_, err := dijkstra.Run(g.Snapshot(), "ghost", dijkstra.WithStrictSource())
	assert.ErrorIs(t, err, dijkstra.ErrSourceNotFound)
}

func TestRun_RejectNegative(t *testing.T) {
	g, id := graphtest.Build(true, []string{"A", "B"},
		graphtest.Triple{From: "A", To: "B", Weight: -1},
	)
	_, err := dijkstra.Run(g.Snapshot(), id["A"], dijkstra.WithRejectNegative())
	assert.ErrorIs(t, err, dijkstra.ErrNegativeWeight)

	_, err = dijkstra.Run(g.Snapshot(), id["A"])
	assert.NoError(t, err, "weights are unchecked by default")
}

func TestRun_EmptyGraph(t *testing.T) {
	run, err := dijkstra.Run(core.NewGraph().Snapshot(), "n1")
	require.NoError(t, err)
	assert.Equal(t, trace.Trace{trace.Done(nil)}, run.Trace)
}

func TestRun_SnapshotIsolation(t *testing.T) {
	g, id := graphtest.Chain()
	snap := g.Snapshot()
	run, err := dijkstra.Run(snap, id["A"])
	require.NoError(t, err)

	g.AddEdge(id["A"], id["D"], 1)
	assert.Equal(t, 3, run.Snapshot.EdgeCount(), "later edits are not visible to the run")
}

// ------------------------------------------------------------------------
// 4. Properties on random graphs
// ------------------------------------------------------------------------

func TestRun_MatchesBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 200; i++ {
		directed := i%2 == 0
		g := graphtest.Random(rng, 2+rng.Intn(5), 0.4, 0, 9, directed)
		snap := g.Snapshot()
		src := snap.Nodes[rng.Intn(snap.NodeCount())].ID

		run, err := dijkstra.Run(snap, src)
		require.NoError(t, err)
		require.NoError(t, run.Trace.Validate())

		want := graphtest.BruteForce(snap, src)
		for _, n := range snap.Nodes {
			assert.Equalf(t, want[n.ID], run.Result.Dist(n.ID), "graph %d node %s", i, n.ID)
		}

		// One visit per reachable node, none otherwise.
		reachable := 0
		for _, n := range snap.Nodes {
			if run.Result.Reachable(n.ID) {
				reachable++
				path, ok := run.Result.PathTo(snap, src, n.ID)
				require.True(t, ok)
				assert.LessOrEqual(t, len(path)-1, snap.NodeCount()-1)
			}
		}
		assert.Equal(t, reachable, run.Trace.Counts().Visits)
		assert.Equal(t, 1, run.Trace.Counts().Done)

		// Done carries exactly one tree edge per reached node.
		final, ok := run.Trace.Final()
		require.True(t, ok)
		assert.ElementsMatchf(t, graphtest.TreeEdges(snap, src, run.Result), final.Paths, "graph %d", i)
		assert.Len(t, final.Paths, reachable-1)
	}
}

func TestRun_Deterministic(t *testing.T) {
	g := graphtest.Random(rand.New(rand.NewSource(7)), 6, 0.5, 1, 9, false)
	snap := g.Snapshot()
	src := snap.Nodes[0].ID

	a, err := dijkstra.Run(snap, src)
	require.NoError(t, err)
	b, err := dijkstra.Run(snap, src)
	require.NoError(t, err)

	assert.Equal(t, a.Trace, b.Trace)
	assert.Equal(t, a.Result, b.Result)
}
