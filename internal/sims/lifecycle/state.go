// Package lifecycle implements a four-state ageing automaton on a bounded
// square grid. Cells are born Young, mature into Adults, age into Elders and
// die back to Off depending on how many neighbours of each stage surround them.
//
// The engine functions (Step, Toggle, Reset, Seed, Adjust) are pure: they take
// a value and return a new one. Sim wraps them into the stateful driver used by
// the GUI and CLI front ends.
package lifecycle

import (
	"fmt"
	"strings"
)

// State is the life-cycle stage of a single cell.
type State uint8

const (
	Off State = iota
	Young
	Adult
	Elder
)

// States lists every valid state in the fixed order used for sampling,
// toggling and weight redistribution.
var States = [...]State{Off, Young, Adult, Elder}

var stateNames = [...]string{"off", "young", "adult", "elder"}

// Valid reports whether s is one of the four known states.
func (s State) Valid() bool { return s <= Elder }

func (s State) String() string {
	if !s.Valid() {
		return fmt.Sprintf("state(%d)", uint8(s))
	}
	return stateNames[s]
}

// Next returns the state that follows s in the toggle cycle
// Off -> Young -> Adult -> Elder -> Off. Unknown values restart the cycle at Off.
func (s State) Next() State {
	if !s.Valid() {
		return Off
	}
	return (s + 1) % State(len(States))
}

// ParseState resolves a case-insensitive state name.
func ParseState(name string) (State, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for i, n := range stateNames {
		if n == key {
			return State(i), nil
		}
	}
	return Off, fmt.Errorf("%w: unknown state %q", ErrInvalidArgument, name)
}
