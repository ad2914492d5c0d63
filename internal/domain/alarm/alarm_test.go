package alarm

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var epoch = time.Date(2024, time.January, 1, 12, 0, 0, 0, time.UTC)

// recordingPin keeps every level written to it.
type recordingPin struct {
	levels []bool
}

// Write appends the level to the history.
func (p *recordingPin) Write(high bool) {
	p.levels = append(p.levels, high)
}

// at returns the time after n alarm ticks.
func at(n int) time.Time {
	return epoch.Add(time.Duration(n) * DefaultInterval)
}

// TestAlarm_PlaysPatternOnce verifies a non-repeating alarm emits its bits and goes inactive.
func TestAlarm_PlaysPatternOnce(t *testing.T) {
	t.Parallel()

	pin := new(recordingPin)
	a, err := New("test", MustParsePattern("101"), false, DefaultInterval, pin, epoch)
	require.NoError(t, err)

	a.Arm()
	require.True(t, a.Active())

	for i := 1; i <= 3; i++ {
		a.Advance(at(i))
	}

	require.Equal(t, []bool{true, false, true}, pin.levels)
	require.False(t, a.Active())

	// Stays silent until re-armed.
	a.Advance(at(10))
	require.Len(t, pin.levels, 3)

	a.Arm()
	a.Advance(at(11))
	require.Len(t, pin.levels, 4)
}

// TestAlarm_IdleTicksEmitNothing ensures an unarmed alarm never writes to the pin.
func TestAlarm_IdleTicksEmitNothing(t *testing.T) {
	t.Parallel()

	pin := new(recordingPin)
	a, err := New("idle", ButtonPattern, false, DefaultInterval, pin, epoch)
	require.NoError(t, err)

	a.Advance(at(50))
	require.Empty(t, pin.levels)
}

// TestAlarm_RepeatReloadsPattern verifies a repeating alarm loops forever.
func TestAlarm_RepeatReloadsPattern(t *testing.T) {
	t.Parallel()

	pin := new(recordingPin)
	a, err := New("final", MustParsePattern("10"), true, DefaultInterval, pin, epoch)
	require.NoError(t, err)

	a.Arm()
	a.Advance(at(5))

	require.Equal(t, []bool{true, false, true, false, true}, pin.levels)
	require.True(t, a.Active())
	require.Equal(t, Pattern("0"), a.Remaining())
}

// TestAlarm_DisarmStopsAndResetsClock checks Disarm clears the queue and the tick base.
func TestAlarm_DisarmStopsAndResetsClock(t *testing.T) {
	t.Parallel()

	pin := new(recordingPin)
	a, err := New("half", HalfTimePattern, false, DefaultInterval, pin, epoch)
	require.NoError(t, err)

	a.Arm()
	a.Advance(at(2))
	a.Disarm(epoch.Add(250 * time.Millisecond))
	require.False(t, a.Active())

	a.Arm()
	// Only 50ms have passed since the reset base.
	a.Advance(at(3))
	require.Len(t, pin.levels, 2)

	a.Advance(epoch.Add(350 * time.Millisecond))
	require.Len(t, pin.levels, 3)
}

// TestNew_Validation covers constructor errors.
func TestNew_Validation(t *testing.T) {
	t.Parallel()

	_, err := New("empty", "", false, DefaultInterval, new(recordingPin), epoch)
	require.ErrorIs(t, err, ErrEmptyPattern)

	_, err = New("zero", ButtonPattern, false, 0, new(recordingPin), epoch)
	require.Error(t, err)
}
