package app

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/shoreday/shoreday/internal/config"
	"github.com/shoreday/shoreday/internal/geo"
	"github.com/shoreday/shoreday/internal/models"
	"github.com/shoreday/shoreday/internal/ui"
	"github.com/shoreday/shoreday/report"
	"github.com/shoreday/shoreday/store"
)

const (
	noMarkersMsg = "No saved markers"
)

// markerInput holds the raw answers used to create a marker.
type markerInput struct {
	Name string
	Lat  string
	Lng  string
}

func parseCoordinate(lat, lng string) (geo.Coordinate, error) {
	la, err := strconv.ParseFloat(strings.TrimSpace(lat), 64)
	if err != nil {
		return geo.Coordinate{}, errInvalidCoordinate.Fmt(lat, lng).Wrap(err)
	}

	ln, err := strconv.ParseFloat(strings.TrimSpace(lng), 64)
	if err != nil {
		return geo.Coordinate{}, errInvalidCoordinate.Fmt(lat, lng).Wrap(err)
	}

	c := geo.Coordinate{Lat: la, Lng: ln}
	if !c.Valid() {
		return geo.Coordinate{}, errInvalidCoordinate.Fmt(lat, lng)
	}

	return c, nil
}

func (in markerInput) marker() (*models.Marker, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, errMarkerName
	}

	c, err := parseCoordinate(in.Lat, in.Lng)
	if err != nil {
		return nil, err
	}

	return &models.Marker{Name: name, Coordinate: c}, nil
}

// promptMarker asks for the parts of a marker that were not given.
func promptMarker(in markerInput) (markerInput, error) {
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Marker name").
				Value(&in.Name).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return errMarkerName
					}

					return nil
				}),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Latitude").
				Value(&in.Lat),
			huh.NewInput().
				Title("Longitude").
				Value(&in.Lng).
				Validate(func(s string) error {
					_, err := parseCoordinate(in.Lat, s)
					return err
				}),
		).WithHideFunc(func() bool {
			_, err := parseCoordinate(in.Lat, in.Lng)
			return err == nil
		}),
	)

	err := form.Run()

	return in, err
}

// confirm prints prompt and waits for ENTER.
func confirm(r io.Reader, w io.Writer, prompt string) {
	fmt.Fprint(w, pterm.Warning.Sprint(prompt))

	reader := bufio.NewReader(r)

	_, _ = reader.ReadString('\n')
}

// printMarkersTable prints a marker table to the command-line.
func printMarkersTable(w io.Writer, markers []models.Marker) {
	tableBody := make([][]string, len(markers))

	for i := range markers {
		m := &markers[i]

		tableBody[i] = []string{
			strconv.Itoa(i + 1),
			ui.Cyan(m.Name),
			m.Coordinate.String(),
			m.CreatedAt.Local().Format("Jan 02, 2006 03:04 PM"),
			m.ID,
		}
	}

	tableBody = append([][]string{
		{"#", "NAME", "COORDINATES", "SAVED", "ID"},
	}, tableBody...)

	ui.PrintTable(tableBody, w)
}

func openStore(ctx *cli.Context) (*store.Client, error) {
	cfg, err := loadConfig(ctx, false)
	if err != nil {
		return nil, err
	}

	return store.NewClient(cfg.System.DBPath)
}

// markersAddAction saves a marker at the given coordinate, the position
// reported by the configured source, or the coordinate typed at a prompt.
func markersAddAction(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx, false)
	if err != nil {
		return err
	}

	in := markerInput{Name: ctx.String("name")}

	if cfg.Sensors.Position != "" {
		sig, err := settle(ctx.Context, cfg, ctx.Duration("wait"))
		if err != nil {
			return err
		}

		if sig.Position != nil {
			in.Lat = strconv.FormatFloat(sig.Position.Lat, 'f', -1, 64)
			in.Lng = strconv.FormatFloat(sig.Position.Lng, 'f', -1, 64)
		}
	}

	if _, err = in.marker(); err != nil {
		in, err = promptMarker(in)
		if err != nil {
			return err
		}
	}

	m, err := in.marker()
	if err != nil {
		return err
	}

	db, err := store.NewClient(cfg.System.DBPath)
	if err != nil {
		return err
	}

	defer db.Close()

	err = db.AddMarker(m)
	if err != nil {
		return err
	}

	report.MarkerAdded(m)

	return nil
}

// markersListAction prints saved markers in natural name order.
func markersListAction(ctx *cli.Context) error {
	db, err := openStore(ctx)
	if err != nil {
		return err
	}

	defer db.Close()

	markers, err := db.Markers()
	if err != nil {
		return err
	}

	markers = models.SortByName(markers)

	if ctx.Bool("json") {
		return printJSON(markers)
	}

	if len(markers) == 0 {
		pterm.Info.Println(noMarkersMsg)
		return nil
	}

	printMarkersTable(config.Stdout, markers)

	return nil
}

// markersRenameAction changes the name of a marker. The marker keeps its id
// and creation time, so it is rewritten under the same key.
func markersRenameAction(ctx *cli.Context) error {
	if ctx.NArg() != 2 || strings.TrimSpace(ctx.Args().Get(1)) == "" {
		return errRenameArgs
	}

	id := ctx.Args().Get(0)

	db, err := openStore(ctx)
	if err != nil {
		return err
	}

	defer db.Close()

	markers, err := db.Markers()
	if err != nil {
		return err
	}

	for i := range markers {
		m := &markers[i]
		if m.ID != id {
			continue
		}

		m.Name = strings.TrimSpace(ctx.Args().Get(1))

		if err := db.AddMarker(m); err != nil {
			return err
		}

		report.MarkerRenamed(m)

		return nil
	}

	return store.ErrMarkerNotFound.Fmt(id)
}

// markersDeleteAction deletes the markers named on the command line, or all
// of them with --all. It requests confirmation before proceeding.
func markersDeleteAction(ctx *cli.Context) error {
	all := ctx.Bool("all")
	ids := ctx.Args().Slice()

	if !all && len(ids) == 0 {
		return errNoMarkerIDs
	}

	db, err := openStore(ctx)
	if err != nil {
		return err
	}

	defer db.Close()

	markers, err := db.Markers()
	if err != nil {
		return err
	}

	selected := markers

	if !all {
		wanted := make(map[string]bool, len(ids))
		for _, id := range ids {
			wanted[id] = true
		}

		selected = selected[:0:0]

		for i := range markers {
			if wanted[markers[i].ID] {
				selected = append(selected, markers[i])
			}
		}
	}

	if len(selected) == 0 && all {
		pterm.Info.Println(noMarkersMsg)
		return nil
	}

	if len(selected) > 0 {
		printMarkersTable(config.Stdout, selected)
		confirm(
			config.Stdin,
			config.Stdout,
			"The above markers will be deleted permanently. Press ENTER to proceed",
		)
	}

	if all {
		if err := db.DeleteAllMarkers(); err != nil {
			return err
		}

		report.MarkersDeleted(len(selected))

		return nil
	}

	for _, id := range ids {
		if err := db.DeleteMarker(id); err != nil {
			return err
		}
	}

	report.MarkersDeleted(len(ids))

	return nil
}
