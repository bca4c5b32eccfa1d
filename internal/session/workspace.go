// Package session holds the long-lived editing workspace behind the HTTP API:
// one graph and the most recent run over it.
package session

import (
	"errors"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/abbykyun/daa-visual/bellmanford"
	"github.com/abbykyun/daa-visual/builder"
	"github.com/abbykyun/daa-visual/core"
	"github.com/abbykyun/daa-visual/dijkstra"
	"github.com/abbykyun/daa-visual/internal/metrics"
	"github.com/abbykyun/daa-visual/trace"
)

// Options configures a Workspace.
type Options struct {
	Directed    bool
	IDs         core.IDGenerator
	Probability float64 // random generator edge probability
	MaxWeight   int     // random generator weight bound
	Layout      core.CircleLayout
}

// Option mutates Options.
type Option func(*Options)

// WithDirected sets the initial edge mode.
func WithDirected(directed bool) Option {
	return func(o *Options) { o.Directed = directed }
}

// WithIDGenerator replaces the UUID identifier source.
func WithIDGenerator(gen core.IDGenerator) Option {
	if gen == nil {
		panic("session: WithIDGenerator(nil)")
	}
	return func(o *Options) { o.IDs = gen }
}

// WithLayout sets the canvas new nodes are placed on.
func WithLayout(l core.CircleLayout) Option {
	return func(o *Options) { o.Layout = l }
}

// WithRandomDefaults sets the probability and weight bound used by Randomize
// and Preset.
func WithRandomDefaults(p float64, maxWeight int) Option {
	if p < 0 || p > 1 || maxWeight < 1 {
		panic(fmt.Sprintf("session: WithRandomDefaults(%g, %d) out of range", p, maxWeight))
	}
	return func(o *Options) {
		o.Probability = p
		o.MaxWeight = maxWeight
	}
}

// DefaultOptions returns an undirected workspace with UUID identifiers.
func DefaultOptions() Options {
	return Options{
		IDs:         core.UUIDGenerator{},
		Probability: builder.DefaultProbability,
		MaxWeight:   builder.DefaultMaxWeight,
		Layout:      core.DefaultLayout(),
	}
}

// Workspace is safe for concurrent use. Runs hold their own snapshot, so graph
// edits never change a loaded run.
type Workspace struct {
	mu    sync.Mutex
	graph *core.Graph
	run   *trace.Run
	opts  Options
	log   *logrus.Logger
}

// New returns an empty workspace.
func New(log *logrus.Logger, opts ...Option) *Workspace {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	w := &Workspace{
		graph: core.NewGraph(
			core.WithDirected(o.Directed),
			core.WithIDGenerator(o.IDs),
			core.WithLayout(o.Layout),
		),
		opts:  o,
		log:   log,
	}
	w.observe()

	return w
}

// Snapshot returns a copy of the current graph.
func (w *Workspace) Snapshot() core.Snapshot {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.graph.Snapshot()
}

// Stats summarizes the current graph.
func (w *Workspace) Stats() core.GraphStats {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.graph.Stats()
}

// AddNode adds a labeled node.
func (w *Workspace) AddNode(label string) (core.NodeID, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	id, ok := w.graph.AddNode(label)
	if !ok {
		return "", ErrBlankLabel
	}
	w.observe()

	return id, nil
}

// RemoveNode deletes a node and its incident edges.
func (w *Workspace) RemoveNode(id core.NodeID) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.graph.RemoveNode(id) {
		return fmt.Errorf("%w: %q", ErrNodeNotFound, id)
	}
	w.observe()

	return nil
}

// AddEdge adds from→to (and its mirror when undirected) and returns the new
// edge IDs.
func (w *Workspace) AddEdge(from, to core.NodeID, weight float64) ([]core.EdgeID, error) {
	if math.IsNaN(weight) || math.IsInf(weight, 0) {
		return nil, fmt.Errorf("%w: weight %g", ErrInvalidEdge, weight)
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	ids := w.graph.AddEdge(from, to, weight)
	if len(ids) == 0 {
		return nil, fmt.Errorf("%w: %q→%q", ErrInvalidEdge, from, to)
	}
	w.observe()

	return ids, nil
}

// SetDirected changes the mode for edges added from now on.
func (w *Workspace) SetDirected(directed bool) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.graph.SetDirected(directed)
}

// Clear removes every node and edge and drops the run.
func (w *Workspace) Clear() {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.graph.Clear()
	w.run = nil
	w.observe()
}

// Randomize replaces the graph with a random one over n nodes drawn from seed.
func (w *Workspace) Randomize(n int, seed int64) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	err := builder.Apply(w.graph, []builder.BuilderOption{
		builder.WithSeed(seed),
		builder.WithProbability(w.opts.Probability),
		builder.WithMaxWeight(w.opts.MaxWeight),
	}, builder.Random(n))
	if err != nil {
		return err
	}
	w.run = nil
	w.observe()
	w.log.WithFields(logrus.Fields{"nodes": n, "seed": seed, "edges": w.graph.EdgeCount()}).Info("graph randomized")

	return nil
}

// Preset replaces the graph with a named fixture over n nodes. Weights are
// drawn from seed in [1, MaxWeight].
func (w *Workspace) Preset(kind string, n int, seed int64) error {
	cons, err := builder.Preset(kind, n)
	if err != nil {
		return err
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	// Build aside so a failing constructor leaves the graph untouched.
	next := w.graph.Clone()
	next.Clear()
	err = builder.Apply(next, []builder.BuilderOption{
		builder.WithSeed(seed),
		builder.WithProbability(w.opts.Probability),
		builder.WithMaxWeight(w.opts.MaxWeight),
		builder.WithUniformIntWeight(1, w.opts.MaxWeight),
	}, cons)
	if err != nil {
		return err
	}
	w.graph = next
	w.run = nil
	w.observe()
	w.log.WithFields(logrus.Fields{"preset": kind, "nodes": n, "edges": next.EdgeCount()}).Info("graph preset loaded")

	return nil
}

// Run executes algorithm from source on a snapshot of the graph and makes it
// the current run.
func (w *Workspace) Run(algorithm trace.Algorithm, source core.NodeID) (*trace.Run, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	snap := w.graph.Snapshot()
	start := time.Now()

	var (
		run *trace.Run
		err error
	)
	switch algorithm {
	case trace.Dijkstra:
		run, err = dijkstra.Run(snap, source, dijkstra.WithStrictSource())
	case trace.BellmanFord:
		run, err = bellmanford.Run(snap, source, bellmanford.WithStrictSource())
	default:
		return nil, fmt.Errorf("%w: %q", trace.ErrUnknownAlgorithm, algorithm)
	}
	if errors.Is(err, dijkstra.ErrSourceNotFound) || errors.Is(err, bellmanford.ErrSourceNotFound) {
		return nil, fmt.Errorf("%w: %q", ErrSourceNotFound, source)
	}
	if err != nil {
		return nil, err
	}

	elapsed := time.Since(start)
	metrics.RunsTotal.WithLabelValues(string(algorithm)).Inc()
	metrics.RunDuration.WithLabelValues(string(algorithm)).Observe(elapsed.Seconds())
	metrics.TraceSteps.WithLabelValues(string(algorithm)).Observe(float64(len(run.Trace)))

	c := run.Trace.Counts()
	entry := w.log.WithFields(logrus.Fields{
		"algorithm": algorithm,
		"source":    source,
		"nodes":     snap.NodeCount(),
		"edges":     snap.EdgeCount(),
		"visits":    c.Visits,
		"relaxes":   c.Relaxes,
		"duration":  elapsed.String(),
	})
	if run.TruncatedWalks > 0 {
		entry.WithField("truncated_walks", run.TruncatedWalks).
			Warn("shortest-path tree incomplete: predecessor cycle reachable from source")
	}
	entry.Info("run recorded")

	w.run = run

	return run, nil
}

// Current returns the loaded run.
func (w *Workspace) Current() (*trace.Run, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.run == nil {
		return nil, ErrNoRun
	}

	return w.run, nil
}

// Reset drops the loaded run. It reports whether there was one.
func (w *Workspace) Reset() bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	had := w.run != nil
	w.run = nil

	return had
}

// observe refreshes the graph gauges. Caller holds w.mu (or owns w).
func (w *Workspace) observe() {
	metrics.NodeCount.Set(float64(w.graph.NodeCount()))
	metrics.EdgeCount.Set(float64(w.graph.EdgeCount()))
}
