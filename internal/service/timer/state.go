package timer

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/oshokin/screen-timer/internal/domain/countdown"
	"github.com/oshokin/screen-timer/internal/logger"
)

// EventKind tells Process what happened.
type EventKind int

const (
	// EventTick advances clocks to the event time.
	EventTick EventKind = iota
	// EventButtonA adds time.
	EventButtonA
	// EventButtonB removes time.
	EventButtonB
)

// String implements fmt.Stringer.
func (k EventKind) String() string {
	switch k {
	case EventTick:
		return "tick"
	case EventButtonA:
		return "button-a"
	case EventButtonB:
		return "button-b"
	default:
		return fmt.Sprintf("event(%d)", int(k))
	}
}

// Event is a single input to the state machine.
type Event struct {
	// Kind is what happened.
	Kind EventKind
	// At is when it happened.
	At time.Time
}

// State is the application state owned by the poll loop.
type State struct {
	// Timer is the countdown state machine.
	Timer *countdown.Timer
}

// NewState wraps a timer.
func NewState(t *countdown.Timer) *State {
	return &State{Timer: t}
}

// Start restarts the countdown at the given minutes.
func (s *State) Start(ctx context.Context, minutes int, now time.Time) {
	s.Timer.Start(minutes, now)

	snapshot := s.Timer.State()
	logger.InfoKV(ctx, "Countdown started",
		"minutes", snapshot.Minutes,
		"half_time", halfTimeValue(snapshot),
	)
}

// Process applies one event and logs the resulting transitions.
func Process(ctx context.Context, s *State, ev Event) {
	before := s.Timer.State()

	switch ev.Kind {
	case EventTick:
		s.Timer.Tick(ev.At)
	case EventButtonA:
		s.Timer.Increment(ev.At)
	case EventButtonB:
		s.Timer.Decrement(ev.At)
	default:
		logger.WarnKV(ctx, "Unknown event ignored", "kind", ev.Kind)

		return
	}

	logTransitions(ctx, ev, before, s.Timer.State())
}

// logTransitions reports what changed between two snapshots.
func logTransitions(ctx context.Context, ev Event, before, after countdown.State) {
	if ev.Kind != EventTick {
		logger.InfoKV(ctx, "Button pressed",
			"event", ev.Kind,
			"minutes_before", before.Minutes,
			"minutes", after.Minutes,
			"half_time", halfTimeValue(after),
		)
	} else if before.Minutes != after.Minutes {
		logger.DebugKV(ctx, "Minute elapsed", "minutes", after.Minutes)
	}

	if before.Phase != after.Phase {
		logger.InfoKV(ctx, "Phase changed", "from", before.Phase, "to", after.Phase)
	}

	for _, name := range after.ActiveAlarms {
		if !slices.Contains(before.ActiveAlarms, name) {
			logger.DebugKV(ctx, "Alarm armed", "alarm", name, "minutes", after.Minutes)
		}
	}
}

// halfTimeValue returns the half-time minute for logs, or nil when not tracked.
func halfTimeValue(s countdown.State) any {
	if !s.HasHalfTime {
		return nil
	}

	return s.HalfTime
}
