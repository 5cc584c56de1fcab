package lifecycle

import "errors"

var (
	// ErrInvalidArgument marks a call whose inputs break a documented
	// precondition (coordinates outside the grid, weights not summing to 100).
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrRunning is returned when an edit that requires a paused simulation is
	// attempted while it is running.
	ErrRunning = errors.New("simulation is running")
)
