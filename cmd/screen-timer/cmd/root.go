package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/oshokin/screen-timer/internal/config"
	"github.com/oshokin/screen-timer/internal/logger"
	"github.com/oshokin/screen-timer/internal/service/timer"
	"github.com/oshokin/screen-timer/internal/version"
)

var (
	// configPath to the configuration YAML file.
	configPath string
	// startMinutes overrides the configured start duration.
	startMinutes int
	// audio enables the speaker buzzer.
	audio bool
	// logLevel overrides the configured log level.
	logLevel string

	// rootCmd represents the base command running the countdown.
	rootCmd = &cobra.Command{
		Use:   "screen-timer",
		Short: "Count down screen time on an emulated LED matrix with a buzzer.",
		Long: `Runs a countdown timer in the terminal.

The remaining time is drawn as a 5x5 LED matrix: one lit cell per started
three minutes, or a digit in the last nine minutes. Type "a" (or "+") and
Enter to add 15 minutes, "b" (or "-") to remove 15 minutes, "q" to quit.

The buzzer sounds on every button press, at half-time for runs of at least
30 minutes, on each of the last five minutes and continuously when the time
is up. With --audio it beeps through the sound card, otherwise pin levels
are only logged at debug level.`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
			defer stop()
			defer logger.Sync()

			return timer.Run(ctx, &timer.Options{
				ConfigPath:   configPath,
				StartMinutes: startMinutes,
				Audio:        audio,
				LogLevel:     logLevel,
			})
		},
	}
)

// Execute runs the screen-timer CLI and exits with non-zero status on error.
func Execute() {
	version.AttachCobraVersionCommand(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	rootCmd.Flags().StringVarP(&configPath, "config", "c", config.DefaultConfigFilename, "path to configuration file")
	rootCmd.Flags().IntVarP(&startMinutes, "minutes", "m", 0, "start duration in minutes (overrides configuration)")
	rootCmd.Flags().BoolVar(&audio, "audio", false, "beep through the sound card")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error")
}
