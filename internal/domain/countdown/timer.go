package countdown

import (
	"fmt"
	"time"

	"github.com/oshokin/screen-timer/internal/domain/alarm"
	"github.com/oshokin/screen-timer/internal/domain/ticker"
)

const (
	// Step is the button increment in minutes.
	Step = 15
	// HalfTimeMinimum is the shortest duration that gets a half-time alert.
	HalfTimeMinimum = 30
	// CountdownFrom is the minute from which every minute beeps.
	CountdownFrom = 5
	// DefaultMinutes is the duration started on power-up.
	DefaultMinutes = 60
)

// Alarm names used in snapshots and logs.
const (
	ButtonAlarm    = "button"
	HalfTimeAlarm  = "half-time"
	CountdownAlarm = "countdown"
	FinalAlarm     = "final"
)

// Phase is the coarse state of the timer.
type Phase int

const (
	// PhaseCountingDown means minutes remain.
	PhaseCountingDown Phase = iota
	// PhaseExpired means the time is up and the final alarm loops.
	PhaseExpired
)

// String implements fmt.Stringer.
func (p Phase) String() string {
	switch p {
	case PhaseCountingDown:
		return "counting-down"
	case PhaseExpired:
		return "expired"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// Display shows frames on the LED matrix.
type Display interface {
	Show(frame Frame)
}

// Option configures a Timer.
type Option func(*options)

// options holds Timer construction parameters.
type options struct {
	// alarmInterval is how long each alarm bit is held.
	alarmInterval time.Duration
	// minute is the countdown unit.
	minute time.Duration
}

// WithAlarmInterval sets how long each alarm bit is held on the pin.
func WithAlarmInterval(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.alarmInterval = d
		}
	}
}

// WithMinute overrides the length of one countdown minute, e.g. for demos.
func WithMinute(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.minute = d
		}
	}
}

// Timer is the countdown state machine.
type Timer struct {
	// minutes is the remaining time.
	minutes int
	// halfTime is the minute that triggers the half-time alarm; valid only if hasHalfTime.
	halfTime int
	// hasHalfTime is set when the last start was at least HalfTimeMinimum minutes.
	hasHalfTime bool

	// clock fires once per countdown minute.
	clock *ticker.Ticker

	button    *alarm.Alarm
	halfAlert *alarm.Alarm
	countdown *alarm.Alarm
	final     *alarm.Alarm

	// display receives a frame after every change.
	display Display
}

// New creates a stopped timer with zero minutes. Call Start to begin counting.
func New(pin alarm.Pin, display Display, now time.Time, opts ...Option) (*Timer, error) {
	o := options{
		alarmInterval: alarm.DefaultInterval,
		minute:        time.Minute,
	}

	for _, opt := range opts {
		opt(&o)
	}

	t := &Timer{display: display}

	clock, err := ticker.New(o.minute, now, t.fire)
	if err != nil {
		return nil, fmt.Errorf("minute ticker: %w", err)
	}

	t.clock = clock

	specs := []struct {
		dst     **alarm.Alarm
		name    string
		pattern alarm.Pattern
		repeat  bool
	}{
		{&t.button, ButtonAlarm, alarm.ButtonPattern, false},
		{&t.halfAlert, HalfTimeAlarm, alarm.HalfTimePattern, false},
		{&t.countdown, CountdownAlarm, alarm.CountdownPattern, false},
		{&t.final, FinalAlarm, alarm.FinalPattern, true},
	}

	for _, s := range specs {
		a, err := alarm.New(s.name, s.pattern, s.repeat, o.alarmInterval, pin, now)
		if err != nil {
			return nil, err
		}

		*s.dst = a
	}

	return t, nil
}

// Start restarts the countdown at the given minutes. Negative values count as zero.
func (t *Timer) Start(minutes int, now time.Time) {
	t.minutes = max(minutes, 0)

	t.button.Arm()
	t.halfAlert.Disarm(now)
	t.countdown.Disarm(now)
	t.final.Disarm(now)

	t.hasHalfTime = t.minutes >= HalfTimeMinimum
	t.halfTime = 0

	if t.hasHalfTime {
		t.halfTime = t.minutes / 2
	}

	t.clock.Reset(now)
	t.draw()
}

// Increment rounds the remaining time up to the next 15-minute boundary and restarts.
func (t *Timer) Increment(now time.Time) {
	t.Start(RoundUp(t.minutes), now)
}

// Decrement rounds the remaining time down to the previous 15-minute boundary
// and restarts. It does nothing when no time is left.
func (t *Timer) Decrement(now time.Time) {
	if t.minutes == 0 {
		return
	}

	t.Start(RoundDown(t.minutes), now)
}

// Tick advances the minute clock and every alarm to now.
func (t *Timer) Tick(now time.Time) {
	t.clock.Advance(now)

	for _, a := range t.alarms() {
		a.Advance(now)
	}
}

// fire handles one elapsed countdown minute.
func (t *Timer) fire() {
	if t.minutes > 0 {
		t.minutes--

		switch {
		case t.minutes == 0:
			t.final.Arm()
		case t.hasHalfTime && t.minutes == t.halfTime:
			t.halfAlert.Arm()
		case t.minutes <= CountdownFrom:
			t.countdown.Arm()
		}
	}

	t.draw()
}

// draw pushes the current frame to the display.
func (t *Timer) draw() {
	if t.display != nil {
		t.display.Show(t.Render())
	}
}

// Render returns the frame for the remaining time.
func (t *Timer) Render() Frame {
	return Render(t.minutes)
}

// Minutes returns the remaining minutes.
func (t *Timer) Minutes() int {
	return t.minutes
}

// HalfTime returns the half-time minute and whether it is tracked.
func (t *Timer) HalfTime() (int, bool) {
	return t.halfTime, t.hasHalfTime
}

// Phase returns the coarse timer state.
func (t *Timer) Phase() Phase {
	if t.minutes == 0 {
		return PhaseExpired
	}

	return PhaseCountingDown
}

// State returns a snapshot of the timer.
func (t *Timer) State() State {
	s := State{
		Minutes:     t.minutes,
		HalfTime:    t.halfTime,
		HasHalfTime: t.hasHalfTime,
		Phase:       t.Phase(),
	}

	for _, a := range t.alarms() {
		if a.Active() {
			s.ActiveAlarms = append(s.ActiveAlarms, a.Name())
		}
	}

	return s
}

// alarms returns the alarms in tick order.
func (t *Timer) alarms() []*alarm.Alarm {
	return []*alarm.Alarm{t.button, t.halfAlert, t.countdown, t.final}
}

// State is a point-in-time view of a Timer.
type State struct {
	// Minutes is the remaining time.
	Minutes int
	// HalfTime is the half-time minute, meaningful only when HasHalfTime is set.
	HalfTime int
	// HasHalfTime reports whether a half-time alert is pending for this run.
	HasHalfTime bool
	// Phase is the coarse timer state.
	Phase Phase
	// ActiveAlarms lists the names of alarms that are currently playing.
	ActiveAlarms []string
}

// Render returns the frame for the given remaining minutes: a digit up to 9,
// the bar image above.
func Render(minutes int) Frame {
	if minutes <= maxDigit {
		return DigitFrame(minutes)
	}

	return BarFrame(minutes)
}

// RoundUp returns the next 15-minute boundary strictly above minutes.
func RoundUp(minutes int) int {
	minutes = max(minutes, 0)

	return minutes + Step - minutes%Step
}

// RoundDown returns the previous 15-minute boundary strictly below minutes,
// never going below zero.
func RoundDown(minutes int) int {
	if minutes <= 0 {
		return 0
	}

	if rest := minutes % Step; rest > 0 {
		return minutes - rest
	}

	return minutes - Step
}
