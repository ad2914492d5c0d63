package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the settings of the screen-timer binary.
type Config struct {
	// StartMinutes is the countdown started on power-up.
	StartMinutes int `yaml:"start_minutes"`
	// PollInterval is the pause between two passes of the control loop.
	PollInterval time.Duration `yaml:"poll_interval"`
	// AlarmInterval is how long each alarm bit is held on the buzzer pin.
	AlarmInterval time.Duration `yaml:"alarm_interval"`
	// Minute is the length of one countdown minute; shorten it for demos.
	Minute time.Duration `yaml:"minute"`
	// LogLevel is the minimum level of log records.
	LogLevel string `yaml:"log_level"`
	// Audio configures the host speaker buzzer.
	Audio Audio `yaml:"audio"`
}

// Audio configures the speaker-backed buzzer pin.
type Audio struct {
	// Enabled plays alarm patterns through the sound card.
	Enabled bool `yaml:"enabled"`
	// FrequencyHz is the buzzer tone.
	FrequencyHz float64 `yaml:"frequency_hz"`
	// SampleRate is the speaker sample rate.
	SampleRate int `yaml:"sample_rate"`
	// Volume is relative, in powers of two (0 unchanged, -1 half).
	Volume float64 `yaml:"volume"`
}

const (
	// DefaultConfigFilename is the default filename for settings.
	DefaultConfigFilename = "screen-timer-settings.yaml"

	// DefaultStartMinutes is the power-up countdown.
	DefaultStartMinutes = 60

	// MaxStartMinutes bounds the configured start duration to one day.
	MaxStartMinutes = 24 * 60

	// DefaultPollInterval is the pause between loop passes.
	DefaultPollInterval = 10 * time.Millisecond

	// DefaultAlarmInterval is how long each alarm bit is held.
	DefaultAlarmInterval = 100 * time.Millisecond

	// DefaultMinute is a real minute.
	DefaultMinute = time.Minute

	// DefaultLogLevel is used when no level is configured.
	DefaultLogLevel = "info"

	// DefaultFrequencyHz is the buzzer tone.
	DefaultFrequencyHz = 880

	// DefaultSampleRate is the speaker sample rate.
	DefaultSampleRate = 44100

	// DefaultFilePermissions is the default file permission for config files.
	DefaultFilePermissions = 0o600
)

var (
	// errConfigIsNotSet is returned when a nil configuration is provided.
	errConfigIsNotSet = errors.New("configuration is not set")
	// ErrInvalidStartMinutes is returned when the start duration is out of range.
	ErrInvalidStartMinutes = errors.New("start minutes out of range")
	// ErrInvalidInterval is returned when a configured interval is negative.
	ErrInvalidInterval = errors.New("interval must not be negative")
	// ErrInvalidAudio is returned for a negative tone frequency or sample rate.
	ErrInvalidAudio = errors.New("audio frequency and sample rate must not be negative")
)

// Default returns a configuration with every field set to its default.
func Default() *Config {
	cfg := new(Config)

	// Defaults cannot fail validation.
	_ = Validate(cfg)

	cfg.StartMinutes = DefaultStartMinutes

	return cfg
}

// Load reads configuration from the provided path and validates it.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultConfigFilename
	}

	contents, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("read settings: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(contents, cfg); err != nil {
		return nil, fmt.Errorf("unmarshal settings: %w", err)
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadOrDefault is like Load but returns the defaults when the file does not exist.
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}

	return cfg, err
}

// Save writes the configuration to the provided path.
func Save(path string, cfg *Config) error {
	if cfg == nil {
		return errConfigIsNotSet
	}

	if path == "" {
		path = DefaultConfigFilename
	}

	if err := Validate(cfg); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}

	if err := os.WriteFile(filepath.Clean(path), data, DefaultFilePermissions); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}

	return nil
}

// Validate checks ranges and fills zero values with defaults.
// A zero StartMinutes is kept: the timer then starts expired.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errConfigIsNotSet
	}

	if cfg.StartMinutes < 0 || cfg.StartMinutes > MaxStartMinutes {
		return fmt.Errorf("%w: %d", ErrInvalidStartMinutes, cfg.StartMinutes)
	}

	if cfg.PollInterval < 0 || cfg.AlarmInterval < 0 || cfg.Minute < 0 {
		return ErrInvalidInterval
	}

	if cfg.PollInterval == 0 {
		cfg.PollInterval = DefaultPollInterval
	}

	if cfg.AlarmInterval == 0 {
		cfg.AlarmInterval = DefaultAlarmInterval
	}

	if cfg.Minute == 0 {
		cfg.Minute = DefaultMinute
	}

	if cfg.LogLevel == "" {
		cfg.LogLevel = DefaultLogLevel
	}

	if cfg.Audio.FrequencyHz < 0 || cfg.Audio.SampleRate < 0 {
		return ErrInvalidAudio
	}

	if cfg.Audio.FrequencyHz == 0 {
		cfg.Audio.FrequencyHz = DefaultFrequencyHz
	}

	if cfg.Audio.SampleRate == 0 {
		cfg.Audio.SampleRate = DefaultSampleRate
	}

	return nil
}
