// Package typing implements the timed typing-test state machine.
package typing

import "time"

// Phase is the typing-test lifecycle state.
type Phase int

// Phases of a test. Exactly one holds at any time.
const (
	PhaseIdle Phase = iota
	PhaseActive
	PhaseFinished
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseActive:
		return "active"
	case PhaseFinished:
		return "finished"
	default:
		return "unknown"
	}
}

// State holds the live and frozen metrics of a test.
type State struct {
	TimeRemaining int
	Duration      int
	WPM           int
	Accuracy      int
	Errors        int
	CorrectChars  int
	TotalChars    int
	FinalWPM      int
	FinalAccuracy int
	StartedAt     time.Time
	Started       bool
}

func freshState(duration int) State {
	return State{
		TimeRemaining: duration,
		Duration:      duration,
		Accuracy:      100,
		FinalAccuracy: 100,
	}
}

// WordRecord is a committed word and whether it matched its target exactly.
type WordRecord struct {
	Word    string
	Correct bool
}

// InputResult reports what a single OnInput call did.
type InputResult struct {
	Accepted  bool
	Started   bool
	Committed bool
	Record    WordRecord
	Finished  bool
}
