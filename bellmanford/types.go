package bellmanford

import "errors"

// ErrSourceNotFound indicates that the source node is not in the snapshot.
// Returned only with WithStrictSource.
var ErrSourceNotFound = errors.New("bellmanford: source node not found in graph")

// Options configures Run.
type Options struct {
	// StrictSource fails with ErrSourceNotFound on a missing source.
	StrictSource bool
}

// Option represents a functional option for configuring Run.
type Option func(*Options)

// WithStrictSource makes a missing source a hard error.
func WithStrictSource() Option {
	return func(o *Options) {
		o.StrictSource = true
	}
}

// DefaultOptions returns the permissive defaults.
func DefaultOptions() Options {
	return Options{}
}
