package session

import "errors"

var (
	// ErrBlankLabel is returned by AddNode for an empty or whitespace label.
	ErrBlankLabel = errors.New("session: blank node label")

	// ErrNodeNotFound is returned when an ID names no node of the graph.
	ErrNodeNotFound = errors.New("session: node not found")

	// ErrInvalidEdge is returned when an edge endpoint is missing or both
	// endpoints are the same node.
	ErrInvalidEdge = errors.New("session: invalid edge")

	// ErrSourceNotFound is returned by Run when the source is not in the graph.
	ErrSourceNotFound = errors.New("session: source not found")

	// ErrNoRun is returned when no run is loaded.
	ErrNoRun = errors.New("session: no run")
)
