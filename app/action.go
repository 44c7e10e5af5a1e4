package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/shoreday/shoreday/internal/config"
	"github.com/shoreday/shoreday/internal/geo"
	"github.com/shoreday/shoreday/internal/guide"
	"github.com/shoreday/shoreday/internal/itinerary"
	"github.com/shoreday/shoreday/internal/logging"
	"github.com/shoreday/shoreday/internal/models"
	"github.com/shoreday/shoreday/internal/osutil"
	"github.com/shoreday/shoreday/internal/pathutil"
	"github.com/shoreday/shoreday/internal/sensor"
	"github.com/shoreday/shoreday/internal/static"
	"github.com/shoreday/shoreday/internal/timeutil"
	"github.com/shoreday/shoreday/internal/ui"
	"github.com/shoreday/shoreday/report"
	"github.com/shoreday/shoreday/store"
	"github.com/shoreday/shoreday/timeline"
)

const (
	envNoColor         = "NO_COLOR"
	envShoredayNoColor = "SHOREDAY_NO_COLOR"

	defaultSettleWait = 2 * time.Second
)

var closeLog = func() error { return nil }

// firstNonEmptyString returns its first non-empty argument, or "" if all
// arguments are empty.
func firstNonEmptyString(ss ...string) string {
	for _, s := range ss {
		if s != "" {
			return s
		}
	}

	return ""
}

// loadConfig resolves the configuration from dotenv files, the config file,
// the environment and the command line, then starts logging. The first-run
// prompt only appears when interactive is set.
func loadConfig(ctx *cli.Context, interactive bool) (*config.Config, error) {
	configPath := pathutil.ConfigFilePath()

	opts := []config.Option{
		config.WithEnvFiles(".env", filepath.Join(filepath.Dir(configPath), ".env")),
		config.WithSystemPaths(
			configPath,
			pathutil.DBFilePath(),
			pathutil.LogFilePath(),
			pathutil.ItineraryFilePath(),
		),
	}

	if interactive {
		opts = append(opts, config.WithPromptConfig(configPath))
	}

	opts = append(opts, config.WithViperConfig(configPath), config.WithCLIConfig(ctx))

	cfg, err := config.New(opts...)
	if err != nil {
		return nil, err
	}

	closer, err := logging.Init(cfg.System.LogPath, cfg.Log.Level, cfg.Log.MaxSizeMB)
	if err != nil {
		return nil, err
	}

	closeLog = closer

	ui.DarkTheme = cfg.Display.DarkTheme

	slog.InfoContext(ctx.Context, "config loaded", slog.String("config", cfg.String()))

	return cfg, nil
}

// loadPlan reads the itinerary and applies configured overrides. The bundled
// itinerary is used when the installed copy has gone missing.
func loadPlan(cfg *config.Config) (*itinerary.Plan, error) {
	plan, err := itinerary.Load(cfg.ItineraryPath())
	if errors.Is(err, fs.ErrNotExist) && cfg.Trip.Itinerary == "" {
		slog.Warn(
			"installed itinerary missing, using the bundled copy",
			slog.String("path", cfg.ItineraryPath()),
		)

		plan, err = itinerary.Parse(static.Itinerary())
	}

	if err != nil {
		return nil, err
	}

	if cfg.Trip.OnboardTime != "" {
		plan.Trip.OnboardTime = cfg.Trip.OnboardTime
	}

	return plan, nil
}

// settle listens to the configured position source for up to wait and
// returns the last known position and heading.
func settle(
	ctx context.Context,
	cfg *config.Config,
	wait time.Duration,
) (itinerary.Signals, error) {
	now := timeutil.Clock(cfg.CLI.At)

	sig := itinerary.Signals{Heading: cfg.CLI.Heading}

	if cfg.Sensors.Position != "" {
		src, err := sensor.Parse(cfg.Sensors.Position, false)
		if err != nil {
			return sig, err
		}

		if wait <= 0 {
			wait = defaultSettleWait
		}

		sctx, cancel := context.WithTimeout(ctx, wait)
		defer cancel()

		readings, stop := sensor.Subscribe(sctx, src)
		defer stop()

		for r := range readings {
			if r.Err != nil {
				continue
			}

			if r.Position != nil {
				p := *r.Position
				sig.Position = &p
			}

			if r.Heading != nil {
				h := *r.Heading
				sig.Heading = &h
			}
		}
	}

	sig.Now = now()

	return sig, nil
}

func savedMarkers(cfg *config.Config) ([]models.Marker, error) {
	db, err := store.NewClient(cfg.System.DBPath)
	if err != nil {
		return nil, err
	}

	defer db.Close()

	return db.Markers()
}

func printJSON(v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}

	fmt.Fprintln(config.Stdout, string(b))

	return nil
}

// defaultAction runs the interactive day view.
func defaultAction(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx, true)
	if err != nil {
		return err
	}

	plan, err := loadPlan(cfg)
	if err != nil {
		return err
	}

	markers, err := savedMarkers(cfg)
	if err != nil {
		return err
	}

	var readings <-chan sensor.Reading

	stop := func() {}

	if cfg.Sensors.Position != "" {
		src, err := sensor.Parse(cfg.Sensors.Position, cfg.Sensors.Follow)
		if err != nil {
			return err
		}

		readings, stop = sensor.Subscribe(ctx.Context, src)
	}

	defer stop()

	m := timeline.New(plan, cfg, readings, stop)
	m.SetMarkers(markers)

	_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()

	return err
}

// planAction prints a one-shot snapshot of the itinerary.
func planAction(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx, false)
	if err != nil {
		return err
	}

	plan, err := loadPlan(cfg)
	if err != nil {
		return err
	}

	sig, err := settle(ctx.Context, cfg, ctx.Duration("wait"))
	if err != nil {
		return err
	}

	views := itinerary.Snapshot(plan.Activities, sig)

	if ctx.Bool("json") {
		return printJSON(newPlanReport(plan, sig, views))
	}

	printPlanHeader(plan, sig.Now)
	printPlanTable(config.Stdout, views, itinerary.Current(views))

	return nil
}

// budgetAction prints the cost of the day.
func budgetAction(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx, false)
	if err != nil {
		return err
	}

	plan, err := loadPlan(cfg)
	if err != nil {
		return err
	}

	b := itinerary.NewBudget(plan.Activities)

	if ctx.Bool("json") {
		return printJSON(b)
	}

	if len(b.Items) == 0 {
		pterm.Info.Println(noPricesMsg)
		return nil
	}

	printBudgetTable(config.Stdout, b)

	return nil
}

// guideAction prints the visit summary, phrases and optionally the SOS
// message.
func guideAction(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx, false)
	if err != nil {
		return err
	}

	plan, err := loadPlan(cfg)
	if err != nil {
		return err
	}

	if ctx.Bool("sos") {
		sig, err := settle(ctx.Context, cfg, ctx.Duration("wait"))
		if err != nil {
			return err
		}

		msg := guide.SOSMessage(sig.Position, plan.Trip.City)

		fmt.Fprintln(config.Stdout, msg)
		fmt.Fprintln(config.Stdout, guide.SOSLink(msg))

		return nil
	}

	printGuide(config.Stdout, plan)

	return nil
}

// exportAction writes the itinerary and saved markers as GeoJSON.
func exportAction(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx, false)
	if err != nil {
		return err
	}

	plan, err := loadPlan(cfg)
	if err != nil {
		return err
	}

	markers, err := savedMarkers(cfg)
	if err != nil {
		return err
	}

	places := plan.Places()
	for i := range markers {
		places = append(places, markers[i].Place())
	}

	fc := geo.FeatureCollection(places, plan.Track)

	b, err := fc.MarshalJSON()
	if err != nil {
		return err
	}

	out := ctx.String("output")
	if out == "" {
		fmt.Fprintln(config.Stdout, string(b))
		return nil
	}

	err = os.WriteFile(out, b, osutil.FilePermission)
	if err != nil {
		return err
	}

	report.Exported(out, len(fc.Features))

	coords := make([]geo.Coordinate, 0, len(places))
	for i := range places {
		coords = append(coords, places[i].Coordinate)
	}

	if c, ok := geo.Center(coords); ok {
		pterm.Info.Printfln("map centre %s", c)
	}

	return nil
}

// editConfigAction handles the edit-config command which opens the shoreday
// config file in the user's default text editor.
func editConfigAction(_ *cli.Context) error {
	defaultEditor := "nano"

	if runtime.GOOS == osutil.Windows {
		defaultEditor = "C:\\Windows\\system32\\notepad.exe"
	}

	editor := firstNonEmptyString(
		os.Getenv("VISUAL"),
		os.Getenv("EDITOR"),
		defaultEditor,
	)

	cmd := exec.Command(editor, pathutil.ConfigFilePath())

	cmd.Stderr = os.Stderr
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout

	return cmd.Run()
}

func beforeAction(ctx *cli.Context) error {
	// Override the default help template
	cli.AppHelpTemplate = helpText()

	pterm.Error.MessageStyle = pterm.NewStyle(pterm.FgRed)
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "ERROR",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}

	// Disable colour output if NO_COLOR is set
	if _, exists := os.LookupEnv(envNoColor); exists {
		disableStyling()
	}

	// Disable colour output if SHOREDAY_NO_COLOR is set
	if _, exists := os.LookupEnv(envShoredayNoColor); exists {
		disableStyling()
	}

	if ctx.Bool("no-color") {
		disableStyling()
	}

	if err := pathutil.Initialize(); err != nil {
		return err
	}

	return static.Install(pathutil.DataDir())
}

func afterAction(ctx *cli.Context) error {
	slog.InfoContext(ctx.Context, "exiting shoreday")

	return closeLog()
}
