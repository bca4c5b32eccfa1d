// Package dijkstra defines configuration options and sentinel errors for the
// traced Dijkstra engine.
//
// Options:
//
//	– WithStrictSource():   a source that is not in the snapshot is an error
//	                        instead of a trivial all-infinite run.
//	– WithRejectNegative(): a negative edge weight is an error instead of
//	                        running outside the correctness guarantee.
//
// Errors (sentinel):
//
//	– ErrSourceNotFound  if the source is missing and WithStrictSource is set.
//	– ErrNegativeWeight  if a negative weight is found and WithRejectNegative is set.
package dijkstra

import "errors"

// Sentinel errors returned by Run.
var (
	// ErrSourceNotFound indicates that the source node is not in the snapshot.
	ErrSourceNotFound = errors.New("dijkstra: source node not found in graph")

	// ErrNegativeWeight indicates that a negative edge weight was detected.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")
)

// Options configures Run.
//
// StrictSource   – fail with ErrSourceNotFound on a missing source.
// RejectNegative – fail with ErrNegativeWeight when any edge weight is < 0.
type Options struct {
	StrictSource   bool
	RejectNegative bool
}

// Option represents a functional option for configuring Run.
type Option func(*Options)

// WithStrictSource makes a missing source a hard error.
func WithStrictSource() Option {
	return func(o *Options) {
		o.StrictSource = true
	}
}

// WithRejectNegative enables the O(E) negative-weight pre-scan.
func WithRejectNegative() Option {
	return func(o *Options) {
		o.RejectNegative = true
	}
}

// DefaultOptions returns the permissive defaults: a missing source yields a
// trivial run and weights are not checked.
func DefaultOptions() Options {
	return Options{}
}
