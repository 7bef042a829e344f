// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package runners

import "fmt"

// State_e is one step of the per-map pipeline driver (§4 "State
// machines"). Each state reads only its predecessors' outputs; there are
// no cycles, and Failed is reachable from any state.
type State_e int

const (
	Idle State_e = iota
	Parsing
	Mapping
	Rebasing
	Snapping
	Emitting
	Packaging
	Done
	Failed
)

var stateNames = map[State_e]string{
	Idle:      "Idle",
	Parsing:   "Parsing",
	Mapping:   "Mapping",
	Rebasing:  "Rebasing",
	Snapping:  "Snapping",
	Emitting:  "Emitting",
	Packaging: "Packaging",
	Done:      "Done",
	Failed:    "Failed",
}

func (s State_e) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// StageError wraps an error with the state in which it occurred, so a
// fatal failure's diagnostic always names the map and stage that produced
// it (§7 "every fatal error includes the offending map name").
type StageError struct {
	Map   string
	State State_e
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Map, e.State, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}
