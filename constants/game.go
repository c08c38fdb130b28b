package constants

import "time"

// Game Loop Timing Constants
const (
	// DefaultTickInterval is the simulation step interval.
	// One alive cycle advances one grid cell per tick.
	DefaultTickInterval = 66 * time.Millisecond

	// MinTickInterval bounds the -tick flag so the loop stays schedulable
	MinTickInterval = 10 * time.Millisecond
)

// Arena Defaults
const (
	// DefaultGridWidth / DefaultGridHeight are used when the terminal
	// size cannot be determined or the arena is forced via flags
	DefaultGridWidth  = 60
	DefaultGridHeight = 30

	// MinGridWidth / MinGridHeight keep the two starting columns apart
	MinGridWidth  = 8
	MinGridHeight = 4
)

// AI Tuning
const (
	// AIStraightBias is how many times the current heading is entered
	// into the safe-candidate pool, modeling momentum
	AIStraightBias = 3

	// AIMaxLookahead caps the clearance scan distance per candidate
	AIMaxLookahead = 32
)
