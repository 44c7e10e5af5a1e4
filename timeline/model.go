// Package timeline renders the day's itinerary as an interactive terminal
// view that follows the clock and the user's position
package timeline

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/gen2brain/beeep"

	"github.com/shoreday/shoreday/internal/config"
	"github.com/shoreday/shoreday/internal/itinerary"
	"github.com/shoreday/shoreday/internal/models"
	"github.com/shoreday/shoreday/internal/sensor"
	"github.com/shoreday/shoreday/internal/timeutil"
)

const (
	padding  = 2
	maxWidth = 80
)

type tab int

const (
	itineraryTab tab = iota
	budgetTab
	guideTab
	markersTab
	tabCount
)

var tabNames = [tabCount]string{"Itinerary", "Budget", "Guide", "Markers"}

type (
	tickMsg time.Time

	readingMsg sensor.Reading

	// sourcesDoneMsg reports that every position source has exited.
	sourcesDoneMsg struct{}

	arrivedMsg struct {
		err error
		id  string
	}
)

// Model is the bubbletea model of the day view.
type Model struct {
	plan     *itinerary.Plan
	cfg      *config.Config
	readings <-chan sensor.Reading
	stop     func()
	now      func() time.Time
	notify   func(title, msg string) error
	run      func(cmdline string, a *itinerary.Activity) error
	arrived  map[string]bool
	help     help.Model
	content  string
	markers  []models.Marker
	views    []itinerary.View
	anchors  []int
	style    Style
	sig      itinerary.Signals
	viewport viewport.Model
	progress progress.Model
	tab      tab
	selected int
	width    int
	expanded bool
	ready    bool
}

// New creates the day view. Readings may be nil when no position source is
// configured. stop is called when the user quits.
func New(
	plan *itinerary.Plan,
	cfg *config.Config,
	readings <-chan sensor.Reading,
	stop func(),
) *Model {
	m := &Model{
		plan:     plan,
		cfg:      cfg,
		readings: readings,
		stop:     stop,
		now:      timeutil.Clock(cfg.CLI.At),
		notify:   desktopNotify,
		run:      runArriveCmd,
		arrived:  make(map[string]bool),
		style:    newStyle(cfg.Display.DarkTheme),
		help:     help.New(),
		progress: progress.New(
			progress.WithDefaultGradient(),
			progress.WithoutPercentage(),
		),
	}

	if cfg.CLI.Heading != nil {
		h := *cfg.CLI.Heading
		m.sig.Heading = &h
	}

	m.refresh()

	if cur := itinerary.Current(m.views); cur > 0 {
		m.selected = cur
	}

	m.syncContent()

	return m
}

// SetMarkers replaces the markers listed on the markers tab.
func (m *Model) SetMarkers(markers []models.Marker) {
	m.markers = models.SortByName(markers)
	m.syncContent()
}

// Plan returns the itinerary shown by the model, including completion
// changes made by the user.
func (m *Model) Plan() *itinerary.Plan {
	return m.plan
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(tick(), listen(m.readings))
}

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// listen waits for the next sensor reading.
func listen(readings <-chan sensor.Reading) tea.Cmd {
	if readings == nil {
		return nil
	}

	return func() tea.Msg {
		r, ok := <-readings
		if !ok {
			return sourcesDoneMsg{}
		}

		return readingMsg(r)
	}
}

func desktopNotify(title, msg string) error {
	return beeep.Notify(title, msg, "")
}
