package device

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// TestLogPin_LogsOnlyChanges verifies repeated levels are not logged.
func TestLogPin_LogsOnlyChanges(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.DebugLevel)
	pin := NewLogPin("P0", zap.New(core).Sugar())

	pin.Write(true)
	pin.Write(true)
	pin.Write(false)
	pin.Write(false)

	require.Equal(t, 2, logs.Len())
	require.False(t, pin.High())
	require.Equal(t, "P0", logs.All()[0].ContextMap()["pin"])
}

// levelPin remembers the last level written.
type levelPin struct {
	writes int
	high   bool
}

func (p *levelPin) Write(high bool) {
	p.writes++
	p.high = high
}

// TestMultiPin_FansOut verifies every pin receives each write.
func TestMultiPin_FansOut(t *testing.T) {
	t.Parallel()

	a, b := new(levelPin), new(levelPin)
	m := MultiPin{a, b}

	m.Write(true)

	require.True(t, a.high)
	require.True(t, b.high)
	require.Equal(t, 1, a.writes)
	require.Equal(t, 1, b.writes)
}

// TestSquareWave_Gate checks the generator is silent when closed and alternates when open.
func TestSquareWave_Gate(t *testing.T) {
	t.Parallel()

	// Four samples per period.
	w, err := newSquareWave(1, 4)
	require.NoError(t, err)

	samples := make([][2]float64, 4)

	n, ok := w.Stream(samples)
	require.Equal(t, 4, n)
	require.True(t, ok)

	for _, s := range samples {
		require.Zero(t, s[0])
	}

	w.gate.Store(true)
	w.Stream(samples)

	require.Equal(t, toneAmplitude, samples[0][0])
	require.Equal(t, toneAmplitude, samples[1][1])
	require.Equal(t, -toneAmplitude, samples[2][0])
	require.Equal(t, -toneAmplitude, samples[3][1])
	require.NoError(t, w.Err())

	_, err = newSquareWave(0, 44100)
	require.ErrorIs(t, err, ErrInvalidTone)
}
