package bellmanford_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abbykyun/daa-visual/bellmanford"
	"github.com/abbykyun/daa-visual/core"
	"github.com/abbykyun/daa-visual/dijkstra"
	"github.com/abbykyun/daa-visual/internal/graphtest"
	"github.com/abbykyun/daa-visual/trace"
)

func TestRun_NegativeChain(t *testing.T) {
	g, id := graphtest.Build(true, []string{"A", "B", "C"},
		graphtest.Triple{From: "A", To: "B", Weight: -1},
		graphtest.Triple{From: "B", To: "C", Weight: -1},
	)
	run, err := bellmanford.Run(g.Snapshot(), id["A"])
	require.NoError(t, err)

	assert.Equal(t, trace.BellmanFord, run.Algorithm)
	assert.Equal(t, 0.0, run.Result.Dist(id["A"]))
	assert.Equal(t, -1.0, run.Result.Dist(id["B"]))
	assert.Equal(t, -2.0, run.Result.Dist(id["C"]))
	assert.Equal(t, trace.Trace{
		trace.Relax("e1"),
		trace.Relax("e2"),
		trace.Done([]core.EdgeID{"e1", "e2"}),
	}, run.Trace)
}

func TestRun_DirectedChainHasNoVisits(t *testing.T) {
	g, id := graphtest.Chain()
	run, err := bellmanford.Run(g.Snapshot(), id["A"])
	require.NoError(t, err)

	c := run.Trace.Counts()
	assert.Zero(t, c.Visits)
	assert.Equal(t, 2, c.Relaxes, "A→C(10) never beats the 5 found through B")
	assert.Equal(t, 5.0, run.Result.Dist(id["C"]))
	assert.True(t, math.IsInf(run.Result.Dist(id["D"]), 1))
}

func TestRun_EdgeOrderNeedsSecondRound(t *testing.T) {
	// B→C is listed before A→B, so C is only reached in round two.
	g, id := graphtest.Build(true, []string{"A", "B", "C"},
		graphtest.Triple{From: "B", To: "C", Weight: 1},
		graphtest.Triple{From: "A", To: "B", Weight: 1},
	)
	run, err := bellmanford.Run(g.Snapshot(), id["A"])
	require.NoError(t, err)

	assert.Equal(t, trace.Trace{
		trace.Relax("e2"),
		trace.Relax("e1"),
		trace.Done([]core.EdgeID{"e2", "e1"}),
	}, run.Trace)
	assert.Equal(t, 2.0, run.Result.Dist(id["C"]))
}

func TestRun_NegativeCycleTerminates(t *testing.T) {
	g, id := graphtest.Build(true, []string{"A", "B", "C"},
		graphtest.Triple{From: "A", To: "B", Weight: 1},
		graphtest.Triple{From: "B", To: "C", Weight: -3},
		graphtest.Triple{From: "C", To: "B", Weight: 1},
	)
	run, err := bellmanford.Run(g.Snapshot(), id["A"])
	require.NoError(t, err)
	require.NoError(t, run.Trace.Validate())

	// Two rounds of relaxations around the cycle, then an empty tree:
	// both predecessor walks loop between B and C.
	assert.Equal(t, trace.Trace{
		trace.Relax("e1"), trace.Relax("e2"), trace.Relax("e3"),
		trace.Relax("e2"), trace.Relax("e3"),
		trace.Done(nil),
	}, run.Trace)

	assert.Equal(t, 2, run.TruncatedWalks)
}

func TestRun_MissingSource(t *testing.T) {
	g, _ := graphtest.Chain()

	run, err := bellmanford.Run(g.Snapshot(), "ghost")
	require.NoError(t, err)
	assert.Equal(t, trace.Trace{trace.Done(nil)}, run.Trace)

	_, err = bellmanford.Run(g.Snapshot(), "ghost", bellmanford.WithStrictSource())
	assert.ErrorIs(t, err, bellmanford.ErrSourceNotFound)
}

func TestRun_SingleNode(t *testing.T) {
	g, id := graphtest.Build(true, []string{"A"})
	run, err := bellmanford.Run(g.Snapshot(), id["A"])
	require.NoError(t, err)
	assert.Equal(t, trace.Trace{trace.Done(nil)}, run.Trace)
	assert.Equal(t, 0.0, run.Result.Dist(id["A"]))
}

func TestRun_MatchesBruteForceOnDAGs(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	for i := 0; i < 200; i++ {
		g := graphtest.RandomDAG(rng, 2+rng.Intn(5), 0.5, -5, 9)
		snap := g.Snapshot()
		src := snap.Nodes[rng.Intn(snap.NodeCount())].ID

		run, err := bellmanford.Run(snap, src)
		require.NoError(t, err)
		require.NoError(t, run.Trace.Validate())
		assert.Zero(t, run.Trace.Counts().Visits)

		want := graphtest.BruteForce(snap, src)
		for _, n := range snap.Nodes {
			assert.Equalf(t, want[n.ID], run.Result.Dist(n.ID), "graph %d node %s", i, n.ID)
			if run.Result.Reachable(n.ID) {
				_, ok := run.Result.PathTo(snap, src, n.ID)
				assert.True(t, ok)
			}
		}

		// Done carries exactly one tree edge per reached node.
		final, ok := run.Trace.Final()
		require.True(t, ok)
		assert.ElementsMatchf(t, graphtest.TreeEdges(snap, src, run.Result), final.Paths, "graph %d", i)
		assert.Zero(t, run.TruncatedWalks)
	}
}

func TestRun_AgreesWithDijkstraOnNonNegative(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 100; i++ {
		g := graphtest.Random(rng, 2+rng.Intn(6), 0.35, 1, 9, i%2 == 1)
		snap := g.Snapshot()
		src := snap.Nodes[0].ID

		bf, err := bellmanford.Run(snap, src)
		require.NoError(t, err)
		dj, err := dijkstra.Run(snap, src)
		require.NoError(t, err)

		assert.Equal(t, dj.Result.Distance, bf.Result.Distance)
	}
}

func TestRun_Deterministic(t *testing.T) {
	g := graphtest.RandomDAG(rand.New(rand.NewSource(11)), 6, 0.6, -3, 9)
	snap := g.Snapshot()

	a, err := bellmanford.Run(snap, snap.Nodes[0].ID)
	require.NoError(t, err)
	b, err := bellmanford.Run(snap, snap.Nodes[0].ID)
	require.NoError(t, err)
	assert.Equal(t, a.Trace, b.Trace)
	assert.Equal(t, a.Result, b.Result)
}
