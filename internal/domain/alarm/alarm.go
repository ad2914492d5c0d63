package alarm

import (
	"fmt"
	"time"

	"github.com/oshokin/screen-timer/internal/domain/ticker"
)

// DefaultInterval is how long each pattern bit is held on the pin.
const DefaultInterval = 100 * time.Millisecond

// Pin is a digital output driven by an alarm.
type Pin interface {
	Write(high bool)
}

// Alarm plays a Pattern on a Pin, one bit per tick.
type Alarm struct {
	// name identifies the alarm in logs and snapshots.
	name string
	// pattern is the full bit sequence loaded on Arm.
	pattern Pattern
	// repeat restarts the pattern once it is exhausted.
	repeat bool
	// pin receives one level per emitted bit.
	pin Pin
	// clock schedules bit emission at the alarm interval.
	clock *ticker.Ticker
	// queue is the remaining suffix still to be emitted; empty means inactive.
	queue Pattern
}

// New creates an inactive alarm. The interval is the duration each bit is held.
func New(name string, pattern Pattern, repeat bool, interval time.Duration, pin Pin, now time.Time) (*Alarm, error) {
	if pattern == "" {
		return nil, ErrEmptyPattern
	}

	a := &Alarm{
		name:    name,
		pattern: pattern,
		repeat:  repeat,
		pin:     pin,
	}

	clock, err := ticker.New(interval, now, a.emit)
	if err != nil {
		return nil, fmt.Errorf("alarm %s: %w", name, err)
	}

	a.clock = clock

	return a, nil
}

// Arm loads the full pattern for playback starting at the next tick.
func (a *Alarm) Arm() {
	a.queue = a.pattern
}

// Disarm stops playback and restarts the bit clock at now.
func (a *Alarm) Disarm(now time.Time) {
	a.queue = ""
	a.clock.Reset(now)
}

// Advance emits every bit that became due up to now.
func (a *Alarm) Advance(now time.Time) {
	a.clock.Advance(now)
}

// emit writes the next queued bit to the pin.
func (a *Alarm) emit() {
	if a.queue == "" {
		return
	}

	a.pin.Write(a.queue.Bit(0))
	a.queue = a.queue[1:]

	if a.queue == "" && a.repeat {
		a.queue = a.pattern
	}
}

// Active reports whether the alarm still has bits to emit.
func (a *Alarm) Active() bool {
	return a.queue != ""
}

// Remaining returns the suffix of the pattern that has not been emitted yet.
func (a *Alarm) Remaining() Pattern {
	return a.queue
}

// Name returns the alarm name.
func (a *Alarm) Name() string {
	return a.name
}

// Pattern returns the full pattern.
func (a *Alarm) Pattern() Pattern {
	return a.pattern
}

// Repeat reports whether the pattern loops.
func (a *Alarm) Repeat() bool {
	return a.repeat
}
