package timer

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/oshokin/screen-timer/internal/domain/countdown"
	"github.com/oshokin/screen-timer/internal/logger"
)

var epoch = time.Date(2024, time.January, 1, 12, 0, 0, 0, time.UTC)

// nopPin discards levels.
type nopPin struct{}

func (nopPin) Write(bool) {}

// lastFrame remembers the frame on screen.
type lastFrame struct {
	frame countdown.Frame
}

func (d *lastFrame) Show(f countdown.Frame) {
	d.frame = f
}

// newTestState returns a state with a started timer and an observed logger context.
func newTestState(t *testing.T, minutes int) (context.Context, *State, *lastFrame, *observer.ObservedLogs) {
	t.Helper()

	core, logs := observer.New(zapcore.DebugLevel)
	ctx := logger.ToContext(context.Background(), zap.New(core).Sugar())

	display := new(lastFrame)

	tm, err := countdown.New(nopPin{}, display, epoch)
	require.NoError(t, err)

	s := NewState(tm)
	s.Start(ctx, minutes, epoch)

	return ctx, s, display, logs
}

// TestProcess_Buttons verifies button events move the timer on the 15-minute grid.
func TestProcess_Buttons(t *testing.T) {
	t.Parallel()

	ctx, s, display, logs := newTestState(t, 7)
	require.Equal(t, "7", display.frame.Text)

	Process(ctx, s, Event{Kind: EventButtonA, At: epoch})
	require.Equal(t, 15, s.Timer.Minutes())
	require.Equal(t, countdown.Render(15), display.frame)

	Process(ctx, s, Event{Kind: EventButtonB, At: epoch})
	require.Equal(t, 0, s.Timer.Minutes())

	Process(ctx, s, Event{Kind: EventButtonB, At: epoch})
	require.Equal(t, 0, s.Timer.Minutes())

	require.Equal(t, 3, logs.FilterMessage("Button pressed").Len())
	require.Equal(t, 1, logs.FilterMessage("Countdown started").Len())
}

// TestProcess_TickLogsTransitions verifies minute, phase and alarm transitions are logged.
func TestProcess_TickLogsTransitions(t *testing.T) {
	t.Parallel()

	ctx, s, display, logs := newTestState(t, 2)

	Process(ctx, s, Event{Kind: EventTick, At: epoch.Add(time.Minute)})
	require.Equal(t, 1, s.Timer.Minutes())
	require.Equal(t, "1", display.frame.Text)

	Process(ctx, s, Event{Kind: EventTick, At: epoch.Add(2 * time.Minute)})
	require.Equal(t, countdown.PhaseExpired, s.Timer.Phase())

	require.Equal(t, 2, logs.FilterMessage("Minute elapsed").Len())
	require.Equal(t, 1, logs.FilterMessage("Phase changed").Len())

	armed := logs.FilterMessage("Alarm armed").All()
	require.NotEmpty(t, armed)
	require.Equal(t, countdown.FinalAlarm, armed[len(armed)-1].ContextMap()["alarm"])
}

// TestProcess_UnknownEvent ensures unknown kinds leave the state untouched.
func TestProcess_UnknownEvent(t *testing.T) {
	t.Parallel()

	ctx, s, _, logs := newTestState(t, 20)

	Process(ctx, s, Event{Kind: EventKind(42), At: epoch.Add(time.Hour)})

	require.Equal(t, 20, s.Timer.Minutes())
	require.Equal(t, 1, logs.FilterMessage("Unknown event ignored").Len())
	require.Equal(t, "event(42)", EventKind(42).String())
}
