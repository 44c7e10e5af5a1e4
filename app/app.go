package app

import (
	"slices"

	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/shoreday/shoreday/internal/config"
)

// disableStyling disables all styling provided by pterm.
func disableStyling() {
	pterm.DisableColor()
	pterm.DisableStyling()
	pterm.Debug.Prefix.Text = ""
	pterm.Info.Prefix.Text = ""
	pterm.Success.Prefix.Text = ""
	pterm.Warning.Prefix.Text = ""
	pterm.Error.Prefix.Text = ""
	pterm.Fatal.Prefix.Text = ""
}

// snapshotFlags are shared by the commands that evaluate the itinerary at a
// point in time.
func snapshotFlags(extra ...cli.Flag) []cli.Flag {
	return slices.Concat([]cli.Flag{itineraryFlag, atFlag}, positionFlags, extra)
}

// Get retrieves the shoreday app instance.
func Get() *cli.App {
	shoredayApp := &cli.App{
		Name: "shoreday",
		Usage: `
		Shoreday keeps a cruise passenger on schedule during a day ashore. It
		follows the itinerary against the clock, points the way to each stop
		and counts down to the all-aboard time.`,
		UsageText:            "[COMMAND] [OPTIONS]",
		Version:              config.Version,
		EnableBashCompletion: true,
		Commands: []*cli.Command{
			{
				Name:   "plan",
				Usage:  "Print the itinerary with progress and distances",
				Flags:  snapshotFlags(jsonFlag),
				Action: planAction,
			},
			{
				Name:   "budget",
				Usage:  "Print the priced activities and the total cost",
				Flags:  []cli.Flag{itineraryFlag, jsonFlag},
				Action: budgetAction,
			},
			{
				Name:   "guide",
				Usage:  "Print the visit summary and useful phrases",
				Flags:  snapshotFlags(sosFlag),
				Action: guideAction,
			},
			{
				Name:  "markers",
				Usage: "Manage places saved during the day",
				Subcommands: []*cli.Command{
					{
						Name:   "add",
						Usage:  "Save a marker at the current or given position",
						Flags:  append([]cli.Flag{nameFlag}, positionFlags...),
						Action: markersAddAction,
					},
					{
						Name:   "list",
						Usage:  "List saved markers",
						Flags:  []cli.Flag{jsonFlag},
						Action: markersListAction,
					},
					{
						Name:      "rename",
						Usage:     "Rename a saved marker",
						ArgsUsage: "<id> <name>",
						Action:    markersRenameAction,
					},
					{
						Name:      "delete",
						Usage:     "Delete saved markers",
						ArgsUsage: "[id...]",
						Flags:     []cli.Flag{allFlag},
						Action:    markersDeleteAction,
					},
				},
			},
			{
				Name:   "export",
				Usage:  "Export stops, markers and the walking track as GeoJSON",
				Flags:  []cli.Flag{itineraryFlag, outputFlag},
				Action: exportAction,
			},
			{
				Name:   "edit-config",
				Usage:  "Edit the configuration file",
				Action: editConfigAction,
			},
		},
		Flags: []cli.Flag{
			itineraryFlag,
			positionFlag,
			followFlag,
			atFlag,
			latFlag,
			lngFlag,
			headingFlag,
			arriveCmdFlag,
			disableNotificationFlag,
			noColorFlag,
		},
		Action: defaultAction,
		Before: beforeAction,
		After:  afterAction,
	}

	return shoredayApp
}
