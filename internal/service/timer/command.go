package timer

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/oshokin/screen-timer/internal/config"
	"github.com/oshokin/screen-timer/internal/device"
	"github.com/oshokin/screen-timer/internal/domain/countdown"
	"github.com/oshokin/screen-timer/internal/logger"
)

// buzzerPin is the name of the output driving the buzzer.
const buzzerPin = "P0"

// Options controls the screen-timer process.
type Options struct {
	// ConfigPath specifies the path to settings YAML file. A missing file means defaults.
	ConfigPath string
	// StartMinutes overrides the configured start duration when positive.
	StartMinutes int
	// Audio forces the speaker buzzer on.
	Audio bool
	// LogLevel overrides the configured log level when set.
	LogLevel string
	// Input provides button commands; defaults to stdin.
	Input io.Reader
	// Output receives LED matrix frames; defaults to stdout.
	Output io.Writer
	// Clock provides the current time; defaults to the system clock.
	Clock device.Clock
}

// Run starts the timer and blocks until ctx is canceled or the input asks to quit.
func Run(ctx context.Context, opts *Options) error {
	ctx = logger.WithName(ctx, "screen-timer")

	cfg, err := config.LoadOrDefault(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}

	applyOverrides(cfg, opts)

	if err := config.Validate(cfg); err != nil {
		return fmt.Errorf("validate settings: %w", err)
	}

	if lvl, ok := logger.ParseLogLevel(cfg.LogLevel); ok {
		logger.SetLevel(lvl)
	} else {
		logger.WarnKV(ctx, "Unknown log level, keeping current", "log_level", cfg.LogLevel, "current", logger.Level())
	}

	pin, closePin := newBuzzer(ctx, cfg)
	defer closePin()

	clock := opts.Clock
	if clock == nil {
		clock = device.RealClock{}
	}

	input := opts.Input
	if input == nil {
		input = os.Stdin
	}

	output := opts.Output
	if output == nil {
		output = os.Stdout
	}

	now := clock.Now()

	t, err := countdown.New(pin, device.NewConsoleDisplay(output), now,
		countdown.WithAlarmInterval(cfg.AlarmInterval),
		countdown.WithMinute(cfg.Minute),
	)
	if err != nil {
		return fmt.Errorf("create timer: %w", err)
	}

	state := NewState(t)
	state.Start(ctx, cfg.StartMinutes, now)

	logger.InfoKV(ctx, "Screen timer running",
		"poll_interval", cfg.PollInterval,
		"minute", cfg.Minute,
		"audio", cfg.Audio.Enabled,
	)

	Loop(ctx, state, device.NewLineButtons(input), clock, cfg.PollInterval)

	logger.InfoKV(ctx, "Screen timer stopped", "minutes", t.Minutes(), "phase", t.Phase())

	return nil
}

// applyOverrides copies command line values over the loaded settings.
func applyOverrides(cfg *config.Config, opts *Options) {
	if opts.StartMinutes > 0 {
		cfg.StartMinutes = opts.StartMinutes
	}

	if opts.Audio {
		cfg.Audio.Enabled = true
	}

	if opts.LogLevel != "" {
		cfg.LogLevel = opts.LogLevel
	}
}

// newBuzzer builds the buzzer pin and a function releasing it.
// The pin always logs; with audio enabled it also beeps through the speaker.
// A missing sound device is not fatal: the timer keeps running silently.
func newBuzzer(ctx context.Context, cfg *config.Config) (device.Pin, func()) {
	logPin := device.NewLogPin(buzzerPin, logger.FromContext(ctx))

	if !cfg.Audio.Enabled {
		return logPin, func() {}
	}

	speakerPin, err := device.NewSpeakerPin(cfg.Audio.FrequencyHz, cfg.Audio.SampleRate, cfg.Audio.Volume)
	if err != nil {
		logger.WarnKV(ctx, "Speaker unavailable, buzzer is silent", "error", err)

		return logPin, func() {}
	}

	return device.MultiPin{logPin, speakerPin}, speakerPin.Close
}
