package session_test

import (
	"math"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abbykyun/daa-visual/builder"
	"github.com/abbykyun/daa-visual/core"
	"github.com/abbykyun/daa-visual/internal/session"
	"github.com/abbykyun/daa-visual/trace"
)

func testLogger() *logrus.Logger {
	l := logrus.New()
	l.SetLevel(logrus.ErrorLevel)

	return l
}

func newWorkspace(opts ...session.Option) *session.Workspace {
	opts = append([]session.Option{session.WithIDGenerator(core.NewSequentialIDs())}, opts...)
	return session.New(testLogger(), opts...)
}

func TestWorkspace_UUIDsByDefault(t *testing.T) {
	w := session.New(testLogger())
	id, err := w.AddNode("A")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(id), "n-"))
}

func TestWorkspace_Editing(t *testing.T) {
	w := newWorkspace(session.WithDirected(true))

	_, err := w.AddNode("   ")
	assert.ErrorIs(t, err, session.ErrBlankLabel)

	a, err := w.AddNode("A")
	require.NoError(t, err)
	b, err := w.AddNode("B")
	require.NoError(t, err)

	ids, err := w.AddEdge(a, b, 2)
	require.NoError(t, err)
	assert.Equal(t, []core.EdgeID{"e1"}, ids)

	_, err = w.AddEdge(a, a, 1)
	assert.ErrorIs(t, err, session.ErrInvalidEdge)
	_, err = w.AddEdge(a, "ghost", 1)
	assert.ErrorIs(t, err, session.ErrInvalidEdge)
	_, err = w.AddEdge(a, b, math.NaN())
	assert.ErrorIs(t, err, session.ErrInvalidEdge)

	w.SetDirected(false)
	ids, err = w.AddEdge(b, a, 1)
	require.NoError(t, err)
	assert.Len(t, ids, 2)
	assert.Equal(t, 3, w.Stats().EdgeCount)

	require.NoError(t, w.RemoveNode(a))
	assert.ErrorIs(t, w.RemoveNode(a), session.ErrNodeNotFound)
	assert.Zero(t, w.Snapshot().EdgeCount(), "removal cascades")
}

func TestWorkspace_RunAndCurrent(t *testing.T) {
	w := newWorkspace(session.WithDirected(true))
	a, _ := w.AddNode("A")
	b, _ := w.AddNode("B")
	c, _ := w.AddNode("C")
	_, _ = w.AddEdge(a, b, 2)
	_, _ = w.AddEdge(b, c, 3)
	_, _ = w.AddEdge(a, c, 10)

	_, err := w.Current()
	assert.ErrorIs(t, err, session.ErrNoRun)

	run, err := w.Run(trace.Dijkstra, a)
	require.NoError(t, err)
	assert.Equal(t, 5.0, run.Result.Dist(c))

	cur, err := w.Current()
	require.NoError(t, err)
	assert.Same(t, run, cur)

	// Edits after the run do not touch it.
	d, _ := w.AddNode("D")
	_, _ = w.AddEdge(a, d, 1)
	cur, _ = w.Current()
	assert.Equal(t, 3, cur.Snapshot.NodeCount())

	bf, err := w.Run(trace.BellmanFord, a)
	require.NoError(t, err)
	assert.Equal(t, trace.BellmanFord, bf.Algorithm)
	assert.Equal(t, 1.0, bf.Result.Dist(d))

	assert.True(t, w.Reset())
	assert.False(t, w.Reset())
	_, err = w.Current()
	assert.ErrorIs(t, err, session.ErrNoRun)
}

func TestWorkspace_RunErrors(t *testing.T) {
	w := newWorkspace()
	a, _ := w.AddNode("A")

	_, err := w.Run(trace.Dijkstra, "ghost")
	assert.ErrorIs(t, err, session.ErrSourceNotFound)
	_, err = w.Run(trace.BellmanFord, "ghost")
	assert.ErrorIs(t, err, session.ErrSourceNotFound)
	_, err = w.Run("floyd", a)
	assert.ErrorIs(t, err, trace.ErrUnknownAlgorithm)

	_, err = w.Current()
	assert.ErrorIs(t, err, session.ErrNoRun, "failed runs are not loaded")
}

func TestWorkspace_RunReportsTruncatedWalks(t *testing.T) {
	log, hook := logtest.NewNullLogger()
	w := session.New(log, session.WithIDGenerator(core.NewSequentialIDs()), session.WithDirected(true))
	a, _ := w.AddNode("A")
	b, _ := w.AddNode("B")
	c, _ := w.AddNode("C")
	_, _ = w.AddEdge(a, b, 1)
	_, _ = w.AddEdge(b, c, -3)
	_, _ = w.AddEdge(c, b, 1)

	run, err := w.Run(trace.BellmanFord, a)
	require.NoError(t, err)
	assert.Equal(t, 2, run.TruncatedWalks)

	var warned bool
	for _, e := range hook.AllEntries() {
		if e.Level == logrus.WarnLevel {
			warned = true
			assert.Equal(t, 2, e.Data["truncated_walks"])
		}
	}
	assert.True(t, warned, "a looping predecessor walk is logged")

	hook.Reset()
	w.Clear()
	a, _ = w.AddNode("A")
	run, err = w.Run(trace.Dijkstra, a)
	require.NoError(t, err)
	assert.Zero(t, run.TruncatedWalks)
	for _, e := range hook.AllEntries() {
		assert.NotEqual(t, logrus.WarnLevel, e.Level)
	}
}

func TestWorkspace_Layout(t *testing.T) {
	l := core.CircleLayout{Width: 400, Height: 400, RadiusDivisor: 4}
	w := newWorkspace(session.WithLayout(l))
	_, _ = w.AddNode("A")

	n := w.Snapshot().Nodes[0]
	assert.Equal(t, l.Place(0), n.Position)
	assert.InDelta(t, 300.0, n.Position.X, 1e-9)
	assert.InDelta(t, 200.0, n.Position.Y, 1e-9)

	require.NoError(t, w.Randomize(3, 1))
	assert.Equal(t, l.Place(2), w.Snapshot().Nodes[2].Position, "generated graphs keep the canvas")
}

func TestWorkspace_Randomize(t *testing.T) {
	w1 := newWorkspace()
	w2 := newWorkspace()
	require.NoError(t, w1.Randomize(6, 42))
	require.NoError(t, w2.Randomize(6, 42))

	s1, s2 := w1.Snapshot(), w2.Snapshot()
	assert.Equal(t, 6, s1.NodeCount())
	assert.Equal(t, s1.Edges, s2.Edges)
	assert.Equal(t, "A", s1.Nodes[0].Label)

	a := s1.Nodes[0].ID
	_, err := w1.Run(trace.Dijkstra, a)
	require.NoError(t, err)
	require.NoError(t, w1.Randomize(4, 1))
	_, err = w1.Current()
	assert.ErrorIs(t, err, session.ErrNoRun, "a new graph drops the run")

	assert.ErrorIs(t, w1.Randomize(0, 1), builder.ErrTooFewVertices)
	assert.Equal(t, 4, w1.Snapshot().NodeCount(), "failed randomize keeps the graph")
}

func TestWorkspace_Preset(t *testing.T) {
	w := newWorkspace(session.WithDirected(true))
	_, _ = w.AddNode("old")

	require.NoError(t, w.Preset("path", 4, 7))
	s := w.Snapshot()
	assert.Equal(t, 4, s.NodeCount())
	assert.Equal(t, 3, s.EdgeCount())
	for _, e := range s.Edges {
		assert.GreaterOrEqual(t, e.Weight, 1.0)
		assert.LessOrEqual(t, e.Weight, float64(builder.DefaultMaxWeight))
	}

	assert.ErrorIs(t, w.Preset("hexagon", 4, 7), builder.ErrUnknownPreset)
	assert.ErrorIs(t, w.Preset("cycle", 1, 7), builder.ErrTooFewVertices)
	assert.Equal(t, 4, w.Snapshot().NodeCount(), "failed preset keeps the graph")
}

func TestWorkspace_Clear(t *testing.T) {
	w := newWorkspace()
	a, _ := w.AddNode("A")
	_, err := w.Run(trace.Dijkstra, a)
	require.NoError(t, err)

	w.Clear()
	assert.Zero(t, w.Stats().NodeCount)
	_, err = w.Current()
	assert.ErrorIs(t, err, session.ErrNoRun)
}

func TestWithRandomDefaults_Panics(t *testing.T) {
	assert.Panics(t, func() { session.WithRandomDefaults(2, 9) })
	assert.Panics(t, func() { session.WithRandomDefaults(0.5, 0) })
}
