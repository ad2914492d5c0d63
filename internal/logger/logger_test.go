package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// TestParseLogLevel verifies mapping from strings to zapcore.Level and handling of unknown values.
func TestParseLogLevel(t *testing.T) {
	t.Parallel()

	cases := map[string]zapcore.Level{
		"debug":  zapcore.DebugLevel,
		" Info ": zapcore.InfoLevel,
		"warn":   zapcore.WarnLevel,
		"ERROR":  zapcore.ErrorLevel,
		"fatal":  zapcore.FatalLevel,
	}
	for s, lvl := range cases {
		got, ok := ParseLogLevel(s)
		require.True(t, ok, s)
		require.Equal(t, lvl, got)
	}

	_, ok := ParseLogLevel("unknown")
	require.False(t, ok)
}

// TestContextHelpers checks the context logger round trip and scoping.
func TestContextHelpers(t *testing.T) {
	t.Parallel()

	require.Same(t, Logger(), FromContext(context.Background()))

	core, logs := observer.New(zapcore.DebugLevel)
	ctx := ToContext(context.Background(), zap.New(core).Sugar())
	ctx = WithName(ctx, "timer")
	ctx = WithKV(ctx, "minutes", 60)

	InfoKV(ctx, "Started", "phase", "counting-down")

	require.Equal(t, 1, logs.Len())

	entry := logs.All()[0]
	require.Equal(t, "timer", entry.LoggerName)
	require.EqualValues(t, 60, entry.ContextMap()["minutes"])
	require.Equal(t, "counting-down", entry.ContextMap()["phase"])
}
