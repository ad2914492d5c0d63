package ticker

import (
	"errors"
	"time"
)

// ErrInvalidInterval is returned when a ticker is created with a non-positive interval.
var ErrInvalidInterval = errors.New("ticker interval must be positive")

// Ticker fires a callback once per elapsed interval.
type Ticker struct {
	// interval is the fixed period between two fires.
	interval time.Duration
	// last is the virtual time of the most recent fire (or reset).
	last time.Time
	// fire is invoked once per elapsed interval.
	fire func()
}

// New creates a ticker whose first interval starts at now.
// A nil fire callback is allowed and turns the ticker into a pure clock.
func New(interval time.Duration, now time.Time, fire func()) (*Ticker, error) {
	if interval <= 0 {
		return nil, ErrInvalidInterval
	}

	if fire == nil {
		fire = func() {}
	}

	return &Ticker{
		interval: interval,
		last:     now,
		fire:     fire,
	}, nil
}

// Advance fires the callback for every full interval between the last mark and now
// and returns the number of fires.
func (t *Ticker) Advance(now time.Time) int {
	fired := 0

	for now.Sub(t.last) >= t.interval {
		t.fire()
		t.last = t.last.Add(t.interval)
		fired++
	}

	return fired
}

// Reset moves the last mark to now, discarding any partially elapsed interval.
func (t *Ticker) Reset(now time.Time) {
	t.last = now
}

// Interval returns the fixed period of the ticker.
func (t *Ticker) Interval() time.Duration {
	return t.interval
}

// Last returns the virtual time of the most recent fire or reset.
func (t *Ticker) Last() time.Time {
	return t.last
}
