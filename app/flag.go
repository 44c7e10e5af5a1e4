package app

import "github.com/urfave/cli/v2"

var (
	itineraryFlag = &cli.StringFlag{
		Name:    "itinerary",
		Aliases: []string{"i"},
		Usage:   "Path to an itinerary file. Defaults to the installed Rome itinerary",
	}

	positionFlag = &cli.StringFlag{
		Name:    "position",
		Aliases: []string{"p"},
		Usage:   "Position source: nmea:<path>, ws://<bridge> or fixed:<lat>,<lng>[,<heading>]",
	}

	followFlag = &cli.BoolFlag{
		Name:    "follow",
		Aliases: []string{"f"},
		Usage:   "Keep reading an NMEA log as it grows",
	}

	atFlag = &cli.StringFlag{
		Name:  "at",
		Usage: "Pretend the time is different (e.g. '10:30', 'in 2 hours') to rehearse the day",
	}

	latFlag = &cli.Float64Flag{
		Name:  "lat",
		Usage: "Latitude of a fixed position (requires --lng)",
	}

	lngFlag = &cli.Float64Flag{
		Name:  "lng",
		Usage: "Longitude of a fixed position (requires --lat)",
	}

	headingFlag = &cli.Float64Flag{
		Name:  "heading",
		Usage: "Device heading in degrees clockwise from north",
	}

	arriveCmdFlag = &cli.StringFlag{
		Name:    "arrive-cmd",
		Aliases: []string{"cmd"},
		Usage:   "Execute an arbitrary command each time you reach a stop",
	}

	disableNotificationFlag = &cli.BoolFlag{
		Name:    "disable-notification",
		Aliases: []string{"d"},
		Usage:   "Disable the system notification that appears when you reach a stop",
	}

	noColorFlag = &cli.BoolFlag{
		Name:  "no-color",
		Usage: "Disable coloured output",
	}

	jsonFlag = &cli.BoolFlag{
		Name:  "json",
		Usage: "Print the result as JSON",
	}

	sosFlag = &cli.BoolFlag{
		Name:  "sos",
		Usage: "Print an emergency message with a share link",
	}

	nameFlag = &cli.StringFlag{
		Name:    "name",
		Aliases: []string{"n"},
		Usage:   "Name of the marker",
	}

	allFlag = &cli.BoolFlag{
		Name:  "all",
		Usage: "Delete every saved marker",
	}

	outputFlag = &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "Write the GeoJSON to a file instead of standard output",
	}

	waitFlag = &cli.DurationFlag{
		Name:  "wait",
		Usage: "How long to listen to the position source before answering",
		Value: defaultSettleWait,
	}
)

// positionFlags are accepted by every command that resolves a position.
var positionFlags = []cli.Flag{
	positionFlag,
	latFlag,
	lngFlag,
	headingFlag,
	waitFlag,
}
