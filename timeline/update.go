package timeline

import (
	"errors"
	"log/slog"
	"os"
	"os/exec"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/kballard/go-shellquote"

	"github.com/shoreday/shoreday/internal/itinerary"
	"github.com/shoreday/shoreday/internal/sensor"
)

// refresh recomputes every activity view from the latest signals and returns
// the side effects of any arrival.
func (m *Model) refresh() tea.Cmd {
	m.sig.Now = m.now()
	m.views = itinerary.Snapshot(m.plan.Activities, m.sig)

	return m.checkArrival()
}

// apply records a sensor reading. Failed readings leave the last known
// values untouched.
func (m *Model) apply(r sensor.Reading) {
	if r.Err != nil {
		slog.Debug(
			"ignoring sensor error",
			slog.String("source", r.Source),
			slog.Any("error", r.Err),
		)

		return
	}

	if r.Position != nil {
		p := *r.Position
		m.sig.Position = &p
	}

	if r.Heading != nil {
		h := *r.Heading
		m.sig.Heading = &h
	}
}

// checkArrival fires once when the user comes within range of the current
// activity. Leaving the range re-arms it.
func (m *Model) checkArrival() tea.Cmd {
	cur := itinerary.Current(m.views)

	var cmds []tea.Cmd

	for i := range m.views {
		v := &m.views[i]
		if v.Indicator == nil {
			continue
		}

		id := v.Activity.ID
		was := m.arrived[id]
		m.arrived[id] = v.Indicator.Arrived

		if i == cur && v.Indicator.Arrived && !was {
			slog.Info("arrived", slog.String("activity", id))

			cmds = append(cmds, m.arrive(v.Activity))
		}
	}

	return tea.Batch(cmds...)
}

func (m *Model) arrive(a itinerary.Activity) tea.Cmd {
	notify := m.notify
	run := m.run
	enabled := m.cfg.Notifications.Enabled
	cmdline := m.cfg.Settings.ArriveCmd

	return func() tea.Msg {
		var err error

		if enabled {
			if nErr := notify(a.Title, "You have arrived at "+a.LocationName); nErr != nil {
				err = errNotify.Wrap(nErr)
			}
		}

		if cmdline != "" {
			err = errors.Join(err, run(cmdline, &a))
		}

		return arrivedMsg{id: a.ID, err: err}
	}
}

// runArriveCmd executes the configured arrival command with the activity
// exposed through the environment.
func runArriveCmd(cmdline string, a *itinerary.Activity) error {
	args, err := shellquote.Split(cmdline)
	if err != nil {
		return errArriveCmd.Fmt(cmdline).Wrap(err)
	}

	if len(args) == 0 {
		return nil
	}

	cmd := exec.Command(args[0], args[1:]...)
	cmd.Env = append(
		os.Environ(),
		"SHOREDAY_ACTIVITY_ID="+a.ID,
		"SHOREDAY_ACTIVITY_TITLE="+a.Title,
		"SHOREDAY_ACTIVITY_LOCATION="+a.LocationName,
	)

	if err := cmd.Run(); err != nil {
		return errArriveCmd.Fmt(cmdline).Wrap(err)
	}

	return nil
}

func (m *Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, defaultKeymap.quit):
		if m.stop != nil {
			m.stop()
		}

		return m, tea.Batch(tea.ClearScreen, tea.Quit)

	case key.Matches(msg, defaultKeymap.next):
		m.tab = (m.tab + 1) % tabCount
		m.viewport.GotoTop()

	case key.Matches(msg, defaultKeymap.prev):
		m.tab = (m.tab + tabCount - 1) % tabCount
		m.viewport.GotoTop()

	case m.tab != itineraryTab:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)

		return m, cmd

	case key.Matches(msg, defaultKeymap.up):
		if m.selected > 0 {
			m.selected--
			m.expanded = false
		}

	case key.Matches(msg, defaultKeymap.down):
		if m.selected < len(m.views)-1 {
			m.selected++
			m.expanded = false
		}

	case key.Matches(msg, defaultKeymap.detail):
		m.expanded = !m.expanded

	case key.Matches(msg, defaultKeymap.toggle):
		if len(m.views) == 0 {
			return m, nil
		}

		id := m.views[m.selected].Activity.ID

		done, err := m.plan.Toggle(id)
		if err != nil {
			slog.Error("toggle failed", slog.Any("error", err))
			return m, nil
		}

		slog.Info(
			"activity toggled",
			slog.String("activity", id),
			slog.Bool("completed", done),
		)

		cmd := m.refresh()
		m.syncContent()

		return m, cmd

	default:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)

		return m, cmd
	}

	m.syncContent()
	m.scrollToSelected()

	return m, nil
}

func (m *Model) handleResize(msg tea.WindowSizeMsg) {
	m.width = msg.Width
	m.help.Width = msg.Width

	m.progress.Width = msg.Width - padding*2 - 4
	if m.progress.Width > maxWidth {
		m.progress.Width = maxWidth
	}

	chrome := lipgloss.Height(m.headerView()) + lipgloss.Height(m.helpView())
	height := max(msg.Height-chrome-padding, 1)

	if !m.ready {
		m.viewport = viewport.New(msg.Width, height)
		m.ready = true
	} else {
		m.viewport.Width = msg.Width
		m.viewport.Height = height
	}

	m.syncContent()
	m.scrollToSelected()
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		cmd := m.refresh()
		m.syncContent()

		return m, tea.Batch(cmd, tick())

	case readingMsg:
		m.apply(sensor.Reading(msg))

		cmd := m.refresh()
		m.syncContent()

		return m, tea.Batch(cmd, listen(m.readings))

	case sourcesDoneMsg:
		slog.Info("all position sources have stopped")

		m.readings = nil

		return m, nil

	case arrivedMsg:
		if msg.err != nil {
			slog.Warn(
				"arrival hooks failed",
				slog.String("activity", msg.id),
				slog.Any("error", msg.err),
			)
		}

		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.handleResize(msg)

		return m, nil
	}

	return m, nil
}
