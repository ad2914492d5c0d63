package ticker

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// epoch is a fixed reference point so tests never depend on the wall clock.
var epoch = time.Date(2024, time.January, 1, 12, 0, 0, 0, time.UTC)

// TestNew_RejectsNonPositiveInterval checks interval validation.
func TestNew_RejectsNonPositiveInterval(t *testing.T) {
	t.Parallel()

	_, err := New(0, epoch, nil)
	require.ErrorIs(t, err, ErrInvalidInterval)

	_, err = New(-time.Second, epoch, nil)
	require.ErrorIs(t, err, ErrInvalidInterval)
}

// TestAdvance_CatchesUpMissedIntervals verifies a 130s gap on a 60s ticker fires twice.
func TestAdvance_CatchesUpMissedIntervals(t *testing.T) {
	t.Parallel()

	fires := 0
	tk, err := New(60*time.Second, epoch, func() { fires++ })
	require.NoError(t, err)

	now := epoch.Add(130 * time.Second)

	require.Equal(t, 2, tk.Advance(now))
	// Called again in rapid succession: nothing left to consume.
	require.Equal(t, 0, tk.Advance(now.Add(time.Millisecond)))
	require.Equal(t, 2, fires)

	// The mark advanced by whole intervals, not to now.
	require.Equal(t, epoch.Add(120*time.Second), tk.Last())

	// The 10s credit carries over: 50s later another fire is due.
	require.Equal(t, 1, tk.Advance(now.Add(50*time.Second)))
	require.Equal(t, 3, fires)
}

// TestAdvance_BeforeIntervalDoesNothing ensures no fire happens before a full interval.
func TestAdvance_BeforeIntervalDoesNothing(t *testing.T) {
	t.Parallel()

	fires := 0
	tk, err := New(time.Second, epoch, func() { fires++ })
	require.NoError(t, err)

	require.Zero(t, tk.Advance(epoch.Add(999*time.Millisecond)))
	require.Equal(t, 1, tk.Advance(epoch.Add(time.Second)))
	require.Equal(t, 1, fires)
}

// TestReset_DiscardsPartialInterval verifies Reset restarts the interval at now.
func TestReset_DiscardsPartialInterval(t *testing.T) {
	t.Parallel()

	fires := 0
	tk, err := New(time.Minute, epoch, func() { fires++ })
	require.NoError(t, err)

	tk.Reset(epoch.Add(50 * time.Second))

	require.Zero(t, tk.Advance(epoch.Add(100*time.Second)))
	require.Equal(t, 1, tk.Advance(epoch.Add(110*time.Second)))
	require.Equal(t, time.Minute, tk.Interval())
}
