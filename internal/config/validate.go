package config

import (
	"slices"
	"strings"

	"github.com/kballard/go-shellquote"

	"github.com/shoreday/shoreday/internal/itinerary"
	"github.com/shoreday/shoreday/internal/sensor"
)

const (
	defaultLogMaxSizeMB = 5
	maxLogMaxSizeMB     = 100
)

var logLevels = []string{"debug", "info", "warn", "error"}

// Validate performs validation checks on the Config struct and its fields.
func (c *Config) Validate() error {
	if err := c.validateTrip(); err != nil {
		return err
	}

	if err := c.validateSensors(); err != nil {
		return err
	}

	if err := c.validateSettings(); err != nil {
		return err
	}

	return c.validateLog()
}

func (c *Config) validateTrip() error {
	if c.Trip.OnboardTime != "" && !itinerary.ValidClock(c.Trip.OnboardTime) {
		return errInvalidOnboardTime.Fmt(c.Trip.OnboardTime)
	}

	return nil
}

func (c *Config) validateSensors() error {
	if c.Sensors.Position == "" {
		return nil
	}

	_, err := sensor.Parse(c.Sensors.Position, c.Sensors.Follow)

	return err
}

func (c *Config) validateSettings() error {
	if strings.TrimSpace(c.Settings.ArriveCmd) == "" {
		return nil
	}

	_, err := shellquote.Split(c.Settings.ArriveCmd)
	if err != nil {
		return errInvalidArriveCmd.Wrap(err)
	}

	return nil
}

func (c *Config) validateLog() error {
	level := strings.ToLower(c.Log.Level)
	if level != "" && !slices.Contains(logLevels, level) {
		return errInvalidLogLevel.Fmt(c.Log.Level)
	}

	if c.Log.MaxSizeMB < 0 || c.Log.MaxSizeMB > maxLogMaxSizeMB {
		return errInvalidLogSize.Fmt(c.Log.MaxSizeMB, maxLogMaxSizeMB)
	}

	return nil
}
