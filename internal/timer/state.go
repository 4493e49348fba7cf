package timer

import (
	"math"
	"time"
)

// Phase is the coarse state of the session timer.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseRunning
	PhasePaused
)

func (p Phase) String() string {
	switch p {
	case PhaseRunning:
		return "running"
	case PhasePaused:
		return "paused"
	default:
		return "idle"
	}
}

// State is a point-in-time snapshot of the timer. It is safe to copy and
// hand to views; mutating it has no effect on the timer.
type State struct {
	Running bool
	Paused  bool

	// StartTime is the beginning of the current unpaused interval.
	// Nil while paused or idle.
	StartTime *time.Time

	// Accumulated holds the time banked from completed unpaused intervals.
	Accumulated time.Duration

	// ElapsedSeconds is the last published total, including the
	// running interval as of the most recent tick.
	ElapsedSeconds int

	Category string
}

// Phase derives the coarse phase from the running/paused flags.
func (s State) Phase() Phase {
	switch {
	case !s.Running:
		return PhaseIdle
	case s.Paused:
		return PhasePaused
	default:
		return PhaseRunning
	}
}

// Result is what Stop hands to the save step.
type Result struct {
	Duration int // seconds
	Category string
}

// Minutes converts the duration to whole minutes for persistence.
// Sessions shorter than a minute still count as one.
func (r Result) Minutes() int {
	m := int(math.Round(float64(r.Duration) / 60))
	if m < 1 {
		return 1
	}
	return m
}
