package config

import (
	"errors"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"

	"github.com/shoreday/shoreday/internal/itinerary"
	"github.com/shoreday/shoreday/internal/sensor"
)

const asciiLogo = `
  ~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~
   s h o r e d a y   ⚓  a day ashore
  ~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~`

const (
	sourceNone  = "none"
	sourceNMEA  = "nmea"
	sourcePhone = "ws"
	sourceFixed = "fixed"
)

// PromptOptions holds the user's responses to the configuration prompts.
type PromptOptions struct {
	SourceKind  string
	SourceValue string
	OnboardTime string
	Follow      bool
}

// WithPromptConfig returns an Option that configures settings via
// interactive prompts. It only runs when the config file does not exist yet.
func WithPromptConfig(configPath string) Option {
	return func(c *Config) error {
		_, err := os.Stat(configPath)
		if err == nil || !errors.Is(err, os.ErrNotExist) {
			return err
		}

		opts, err := promptUser()
		if err != nil {
			return errPrompt.Wrap(err)
		}

		return applyPromptOptions(c, opts)
	}
}

// promptUser handles the interactive configuration process.
func promptUser() (PromptOptions, error) {
	opts := PromptOptions{
		SourceKind: sourceNone,
	}

	// Display welcome message
	pterm.Println(asciiLogo)

	_ = putils.BulletListFromString(`Follow the prompts below to configure shoreday for the first time.
Select your preferred value, or press ENTER to accept the defaults.
Edit the config file with 'shoreday edit-config' to change any settings.`, " ").
		Render()

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Where should your position come from?").
				Options(
					huh.NewOption("Nowhere (no distances)", sourceNone).Selected(true),
					huh.NewOption("GPS receiver or NMEA log", sourceNMEA),
					huh.NewOption("Phone sensor bridge (WebSocket)", sourcePhone),
					huh.NewOption("A fixed coordinate", sourceFixed),
				).
				Value(&opts.SourceKind),
		),
		huh.NewGroup(
			huh.NewInput().
				TitleFunc(func() string {
					return sourceTitle(opts.SourceKind)
				}, &opts.SourceKind).
				Value(&opts.SourceValue).
				Validate(func(s string) error {
					_, err := sensor.Parse(sourceSpec(opts.SourceKind, s), false)
					return err
				}),
			huh.NewConfirm().
				Title("Keep reading the file as it grows?").
				Value(&opts.Follow),
		).WithHideFunc(func() bool {
			return opts.SourceKind == sourceNone
		}),
		huh.NewGroup(
			huh.NewInput().
				Title("All-aboard time (HH:MM, empty to use the itinerary's)").
				Value(&opts.OnboardTime).
				Validate(func(s string) error {
					if s != "" && !itinerary.ValidClock(s) {
						return errInvalidOnboardTime.Fmt(s)
					}

					return nil
				}),
		),
	)

	err := form.Run()
	if err != nil {
		return opts, err
	}

	return opts, nil
}

func sourceTitle(kind string) string {
	switch kind {
	case sourceNMEA:
		return "Path to the device or NMEA log"
	case sourcePhone:
		return "Bridge URL (ws://host:port/path)"
	case sourceFixed:
		return "Coordinate as lat,lng"
	}

	return ""
}

// sourceSpec turns a prompt answer into a position source spec.
func sourceSpec(kind, value string) string {
	value = strings.TrimSpace(value)

	switch kind {
	case sourceNMEA:
		return "nmea:" + value
	case sourceFixed:
		return "fixed:" + value
	case sourcePhone:
		return value
	}

	return ""
}

// applyPromptOptions applies the user's prompt responses to the configuration.
func applyPromptOptions(c *Config, opts PromptOptions) error {
	c.Sensors.Position = sourceSpec(opts.SourceKind, opts.SourceValue)
	c.Sensors.Follow = opts.Follow && opts.SourceKind == sourceNMEA
	c.Trip.OnboardTime = strings.TrimSpace(opts.OnboardTime)

	return nil
}
