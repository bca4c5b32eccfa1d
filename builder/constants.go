// Package builder defines shared constants used by graph builders, ensuring
// consistent validation across all topology constructors.
package builder

//-----------------------------------------------------------------------------
// Builder Method Name Constants
//   used to prefix errors with the constructor name for context.
//-----------------------------------------------------------------------------

const (
	methodRandom   = "Random"
	methodPath     = "Path"
	methodCycle    = "Cycle"
	methodStar     = "Star"
	methodComplete = "Complete"
	methodPreset   = "Preset"
)

//-----------------------------------------------------------------------------
// Minimum Node Counts
//-----------------------------------------------------------------------------

const (
	// MinRandomNodes is the smallest node count Random accepts.
	MinRandomNodes = 1
	// MinPathNodes: a path of fewer than 2 nodes has no edges.
	MinPathNodes = 2
	// MinCycleNodes: fewer than 3 nodes cannot form a ring without self-loops.
	MinCycleNodes = 3
	// MinStarNodes: one hub plus at least one leaf.
	MinStarNodes = 2
	// MinCompleteNodes: K_1 is a single node.
	MinCompleteNodes = 1
)

//-----------------------------------------------------------------------------
// Probability Bounds
//-----------------------------------------------------------------------------

const (
	minProbability = 0.0
	maxProbability = 1.0
)
