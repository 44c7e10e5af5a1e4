package config

import (
	"strconv"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/shoreday/shoreday/internal/timeutil"
)

// CLIOptions represents command-line configuration options.
type CLIOptions struct {
	Itinerary     string
	Position      string
	At            string
	ArriveCmd     string
	Lat           float64
	Lng           float64
	Heading       float64
	HasLat        bool
	HasLng        bool
	HasHeading    bool
	Follow        bool
	DisableNotify bool
}

// WithCLIConfig returns an Option that loads configuration from CLI flags.
func WithCLIConfig(ctx *cli.Context) Option {
	return func(c *Config) error {
		opts := CLIOptions{
			Itinerary:     ctx.String("itinerary"),
			Position:      ctx.String("position"),
			At:            ctx.String("at"),
			ArriveCmd:     ctx.String("arrive-cmd"),
			Lat:           ctx.Float64("lat"),
			Lng:           ctx.Float64("lng"),
			Heading:       ctx.Float64("heading"),
			HasLat:        ctx.IsSet("lat"),
			HasLng:        ctx.IsSet("lng"),
			HasHeading:    ctx.IsSet("heading"),
			Follow:        ctx.Bool("follow"),
			DisableNotify: ctx.Bool("disable-notification"),
		}

		return applyCLIOptions(c, opts, time.Now())
	}
}

// applyCLIOptions applies CLI options to the config.
func applyCLIOptions(c *Config, opts CLIOptions, now time.Time) error {
	if opts.Itinerary != "" {
		c.Trip.Itinerary = opts.Itinerary
	}

	if opts.Position != "" {
		c.Sensors.Position = opts.Position
	}

	if opts.Follow {
		c.Sensors.Follow = true
	}

	if opts.HasLat != opts.HasLng {
		return errLatLngPair
	}

	if opts.HasHeading {
		h := opts.Heading
		c.CLI.Heading = &h
	}

	if opts.HasLat {
		c.Sensors.Position = fixedSpec(opts.Lat, opts.Lng, c.CLI.Heading)
	}

	if opts.DisableNotify {
		c.Notifications.Enabled = false
	}

	if opts.ArriveCmd != "" {
		c.Settings.ArriveCmd = opts.ArriveCmd
	}

	if opts.At != "" {
		at, err := timeutil.FromStr(opts.At, now)
		if err != nil {
			return errInvalidAt.Fmt(opts.At).Wrap(err)
		}

		c.CLI.At = at
	}

	return nil
}

// fixedSpec builds a fixed position source spec.
func fixedSpec(lat, lng float64, heading *float64) string {
	spec := "fixed:" +
		strconv.FormatFloat(lat, 'f', -1, 64) + "," +
		strconv.FormatFloat(lng, 'f', -1, 64)

	if heading != nil {
		spec += "," + strconv.FormatFloat(*heading, 'f', -1, 64)
	}

	return spec
}
