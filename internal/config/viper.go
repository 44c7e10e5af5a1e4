package config

import (
	"errors"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const envPrefix = "SHOREDAY"

// viperKeys defines the mapping between config keys and their Viper counterparts.
const (
	keyItinerary            = "trip.itinerary"
	keyOnboardTime          = "trip.onboard_time"
	keyPosition             = "sensors.position"
	keyFollow               = "sensors.follow"
	keyDarkTheme            = "display.dark_theme"
	keyTwentyFourHour       = "display.24hr_clock"
	keyNotificationsEnabled = "notifications.enabled"
	keyArriveCmd            = "settings.arrive_cmd"
	keyLogLevel             = "log.level"
	keyLogMaxSize           = "log.max_size_mb"
)

// WithEnvFiles returns an Option that loads variables from the given dotenv
// files into the environment. Missing files are skipped and variables that
// are already set win.
func WithEnvFiles(paths ...string) Option {
	return func(_ *Config) error {
		for _, p := range paths {
			err := godotenv.Load(p)
			if err != nil && !errors.Is(err, os.ErrNotExist) {
				return errReadEnvFile.Fmt(p).Wrap(err)
			}
		}

		return nil
	}
}

// WithViperConfig returns an Option that loads configuration from Viper.
// SHOREDAY_* environment variables override the file, e.g.
// SHOREDAY_SENSORS_POSITION for sensors.position.
func WithViperConfig(configPath string) Option {
	return func(c *Config) error {
		v := viper.New()

		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")

		v.SetEnvPrefix(envPrefix)
		v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
		v.AutomaticEnv()

		setupViper(v, c)

		err := v.ReadInConfig()
		if err == nil {
			return loadViperConfig(v, c)
		}

		if !errors.Is(err, os.ErrNotExist) {
			return errReadConfig.Wrap(err)
		}

		if err := v.WriteConfig(); err != nil {
			return errWriteConfig.Wrap(err)
		}

		return loadViperConfig(v, c)
	}
}

// setupViper configures Viper with defaults and prompt values.
func setupViper(v *viper.Viper, c *Config) {
	v.SetDefault(keyItinerary, "")
	v.SetDefault(keyOnboardTime, "")
	v.SetDefault(keyPosition, "")
	v.SetDefault(keyFollow, false)
	v.SetDefault(keyDarkTheme, true)
	v.SetDefault(keyTwentyFourHour, true)
	v.SetDefault(keyNotificationsEnabled, true)
	v.SetDefault(keyArriveCmd, "")
	v.SetDefault(keyLogLevel, "info")
	v.SetDefault(keyLogMaxSize, defaultLogMaxSizeMB)

	if c.Sensors.Position != "" {
		v.SetDefault(keyPosition, c.Sensors.Position)
		v.SetDefault(keyFollow, c.Sensors.Follow)
	}

	if c.Trip.OnboardTime != "" {
		v.SetDefault(keyOnboardTime, c.Trip.OnboardTime)
	}
}

// loadViperConfig loads configuration from Viper into the Config struct.
func loadViperConfig(v *viper.Viper, c *Config) error {
	err := v.Unmarshal(c)
	if err != nil {
		return errReadConfig.Wrap(err)
	}

	return nil
}
