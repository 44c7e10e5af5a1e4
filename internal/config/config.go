package config

import (
	"fmt"
	"io"
	"os"
	"time"
)

type (
	// Config holds all configuration settings
	Config struct {
		Trip          TripConfig         `mapstructure:"trip"`
		Sensors       SensorConfig       `mapstructure:"sensors"`
		Display       DisplayConfig      `mapstructure:"display"`
		Notifications NotificationConfig `mapstructure:"notifications"`
		Settings      SettingsConfig     `mapstructure:"settings"`
		Log           LogConfig          `mapstructure:"log"`
		CLI           CLIConfig          `mapstructure:"-"`
		System        SystemConfig       `mapstructure:"-"`
	}

	// TripConfig points at the itinerary and overrides parts of it
	TripConfig struct {
		// Itinerary is the path to the itinerary file. Empty means the
		// installed default.
		Itinerary string `mapstructure:"itinerary"`
		// OnboardTime replaces the itinerary's all-aboard time when set
		OnboardTime string `mapstructure:"onboard_time"`
	}

	// SensorConfig selects where position and heading come from
	SensorConfig struct {
		Position string `mapstructure:"position"`
		Follow   bool   `mapstructure:"follow"`
	}

	// DisplayConfig holds display-related settings
	DisplayConfig struct {
		DarkTheme      bool `mapstructure:"dark_theme"`
		TwentyFourHour bool `mapstructure:"24hr_clock"`
	}

	// NotificationConfig holds notification settings
	NotificationConfig struct {
		Enabled bool `mapstructure:"enabled"`
	}

	// SettingsConfig holds miscellaneous settings
	SettingsConfig struct {
		// ArriveCmd runs each time the user reaches a stop
		ArriveCmd string `mapstructure:"arrive_cmd"`
	}

	// LogConfig controls the log file
	LogConfig struct {
		Level     string `mapstructure:"level"`
		MaxSizeMB int    `mapstructure:"max_size_mb"`
	}

	// CLIConfig holds values that only come from the command line
	CLIConfig struct {
		// At pins the clock to a different time of day for rehearsing the
		// itinerary
		At      time.Time
		Heading *float64
	}

	// SystemConfig holds resolved file locations
	SystemConfig struct {
		ConfigPath    string
		DBPath        string
		LogPath       string
		ItineraryPath string
	}

	// Option is a function that modifies Config
	Option func(*Config) error
)

const Version = "v0.1.0"

var (
	Stdin  io.Reader = os.Stdin
	Stdout io.Writer = os.Stdout
	Stderr io.Writer = os.Stderr
)

// New creates a new Config with default values and applies options
func New(opts ...Option) (*Config, error) {
	cfg := &Config{}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, errConfigOption.Wrap(err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, errConfigValidation.Wrap(err)
	}

	return cfg, nil
}

// WithSystemPaths records the resolved file locations.
func WithSystemPaths(configPath, dbPath, logPath, itineraryPath string) Option {
	return func(c *Config) error {
		c.System = SystemConfig{
			ConfigPath:    configPath,
			DBPath:        dbPath,
			LogPath:       logPath,
			ItineraryPath: itineraryPath,
		}

		return nil
	}
}

// ItineraryPath returns the itinerary to load: the configured file, or the
// installed default.
func (c *Config) ItineraryPath() string {
	if c.Trip.Itinerary != "" {
		return c.Trip.Itinerary
	}

	return c.System.ItineraryPath
}

func (c *Config) String() string {
	return fmt.Sprintf(
		"itinerary=%s position=%q follow=%t notify=%t log=%s",
		c.ItineraryPath(),
		c.Sensors.Position,
		c.Sensors.Follow,
		c.Notifications.Enabled,
		c.Log.Level,
	)
}
