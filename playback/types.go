// Package playback replays a trace.Run one step at a time, on demand or on a
// fixed interval, and describes what a renderer should show after each step.
//
// A Player is built fresh for every run and owns all replay state (cursor,
// play loop). Nothing is shared between players.
//
// Errors (sentinel):
//
//	ErrNoRun           - the player has no trace (nil run or after Reset).
//	ErrAlreadyPlaying  - Play was called while a play loop is running.
//	ErrIndexOutOfRange - Seek outside [-1, len(trace)-1].
package playback

import (
	"errors"
	"fmt"
	"time"

	"github.com/abbykyun/daa-visual/core"
	"github.com/abbykyun/daa-visual/trace"
)

// Sentinel errors.
var (
	ErrNoRun           = errors.New("playback: no run loaded")
	ErrAlreadyPlaying  = errors.New("playback: already playing")
	ErrIndexOutOfRange = errors.New("playback: step index out of range")
)

// DefaultInterval is the delay between steps during Play.
const DefaultInterval = 800 * time.Millisecond

// Status lines shown next to the canvas.
const (
	StatusVisiting = "Visiting node..."
	StatusRelaxing = "Relaxing edge..."
	StatusFinished = "Algorithm finished. Shortest paths highlighted."
	StatusReset    = "Reset complete."
	StatusNoRun    = "No run loaded."
)

// StatusReady is the status before the first step, e.g. "dijkstra ready.".
func StatusReady(a trace.Algorithm) string {
	return fmt.Sprintf("%s ready.", a)
}

// View is the render state after applying the step at Index. Highlights are
// not cumulative: each view shows only its own step.
type View struct {
	Index         int           `json:"index"` // -1: nothing applied yet
	Total         int           `json:"total"`
	Kind          string        `json:"kind,omitempty"`
	VisitedNode   core.NodeID   `json:"visited_node,omitempty"`
	HighlightEdge core.EdgeID   `json:"highlight_edge,omitempty"`
	PathEdges     []core.EdgeID `json:"path_edges,omitempty"`
	Status        string        `json:"status"`
	Finished      bool          `json:"finished"`
	Table         []trace.Row   `json:"table,omitempty"`
}

// Options configures a Player.
type Options struct {
	Interval time.Duration
}

// Option represents a functional option for configuring a Player.
type Option func(*Options)

// WithInterval sets the Play tick interval. Panics if d <= 0.
func WithInterval(d time.Duration) Option {
	if d <= 0 {
		panic("playback: WithInterval(d<=0)")
	}
	return func(o *Options) {
		o.Interval = d
	}
}

// DefaultOptions returns the 800ms default.
func DefaultOptions() Options {
	return Options{Interval: DefaultInterval}
}
