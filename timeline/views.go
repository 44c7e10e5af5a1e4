package timeline

import (
	"fmt"
	"math"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/shoreday/shoreday/internal/geo"
	"github.com/shoreday/shoreday/internal/guide"
	"github.com/shoreday/shoreday/internal/itinerary"
)

var arrows = [...]string{"↑", "↗", "→", "↘", "↓", "↙", "←", "↖"}

// Arrow returns the arrow glyph closest to an upward arrow turned clockwise
// by rotation degrees.
func Arrow(rotation float64) string {
	r := math.Mod(math.Mod(rotation, 360)+360, 360)

	return arrows[int(math.Round(r/45))%len(arrows)]
}

// fit truncates s to the usable terminal width.
func (m *Model) fit(s string) string {
	if m.width <= 0 {
		return s
	}

	return runewidth.Truncate(s, max(m.width-padding*2-2, 8), "…")
}

// clockLabel renders an HH:MM itinerary time in the configured clock style.
func (m *Model) clockLabel(hhmm string) string {
	if m.cfg.Display.TwentyFourHour {
		return hhmm
	}

	t, err := time.Parse("15:04", hhmm)
	if err != nil {
		return hhmm
	}

	return t.Format("3:04 PM")
}

func (m *Model) nowLabel() string {
	if m.cfg.Display.TwentyFourHour {
		return m.sig.Now.Format("15:04:05")
	}

	return m.sig.Now.Format("3:04:05 PM")
}

func (m *Model) headerView() string {
	var s strings.Builder

	trip := m.plan.Trip

	title := trip.Name
	if title == "" {
		title = trip.City
	}

	s.WriteString(m.style.Header.Render(m.fit(title)))

	if trip.Date != "" {
		s.WriteString(m.style.Hint.Render("  " + trip.Date))
	}

	s.WriteString(m.style.Hint.Render("  " + m.nowLabel()))
	s.WriteString("\n")

	if trip.OnboardTime != "" {
		left, aboard := itinerary.FormatCountdown(
			itinerary.Countdown(m.sig.Now, trip.OnboardTime),
		)

		if aboard {
			s.WriteString(m.style.Critical.Render(
				"All aboard time " + m.clockLabel(trip.OnboardTime) + " has passed",
			))
		} else {
			s.WriteString(m.style.Secondary.Render(
				"All aboard " + m.clockLabel(trip.OnboardTime) + " in " + left,
			))
		}

		s.WriteString("\n")
	}

	tabs := make([]string, 0, tabCount)

	for i, name := range tabNames {
		if tab(i) == m.tab {
			tabs = append(tabs, m.style.ActiveTab.Render(name))
		} else {
			tabs = append(tabs, m.style.Tab.Render(name))
		}
	}

	s.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, tabs...))
	s.WriteString("\n")

	return s.String()
}

func (m *Model) helpView() string {
	bindings := []key.Binding{
		defaultKeymap.next,
		defaultKeymap.quit,
	}

	if m.tab == itineraryTab {
		bindings = []key.Binding{
			defaultKeymap.up,
			defaultKeymap.down,
			defaultKeymap.toggle,
			defaultKeymap.detail,
			defaultKeymap.next,
			defaultKeymap.quit,
		}
	}

	return "\n" + m.help.ShortHelpView(bindings)
}

func (m *Model) indicatorView(ind *itinerary.Indicator) string {
	if ind == nil {
		return m.style.Hint.Render("position unknown")
	}

	if ind.Arrived {
		return m.style.Arrived.Render("arrived")
	}

	return m.style.Secondary.Render(ind.Distance() + " " + Arrow(ind.Rotation))
}

func (m *Model) gapView(g *itinerary.GapView) string {
	label := "transfer"
	if g.Free() {
		label = "free time"
	}

	return m.style.Gap.Render("  ⋮ "+g.Label()+" "+label) + "\n" +
		"    " + m.progress.ViewAs(g.Progress/100) + "\n\n"
}

func (m *Model) activityView(i int, v *itinerary.View) string {
	var s strings.Builder

	a := &v.Activity

	cursor := "  "
	if i == m.selected {
		cursor = m.style.Selected.Render("▸ ")
	}

	status := ""
	if a.Completed {
		status = m.style.Arrived.Render("  ✓")
	}

	s.WriteString(cursor)
	s.WriteString(m.style.Hint.Render(fmt.Sprintf(
		"%s - %s · %s",
		m.clockLabel(a.Start),
		m.clockLabel(a.End),
		v.Duration,
	)))
	s.WriteString(status + "\n")

	titleStyle := m.style.Title

	switch {
	case a.Completed:
		titleStyle = m.style.Done
	case i == m.selected:
		titleStyle = m.style.Selected
	}

	s.WriteString("  " + titleStyle.Render(m.fit(a.Title)) + "\n")

	if a.LocationName != "" {
		s.WriteString("  " + m.style.Hint.Render(m.fit(a.LocationName)) + "\n")
	}

	switch {
	case a.Critical():
		s.WriteString("  " + m.style.Critical.Render(itinerary.NoteCritical) + "\n")
	case a.Notes != "":
		s.WriteString("  " + m.style.Secondary.Render(m.fit(a.Notes)) + "\n")
	}

	if a.ContingencyNote != "" {
		s.WriteString("  " + m.style.Hint.Render(m.fit("Plan B: "+a.ContingencyNote)) + "\n")
	}

	s.WriteString("  " + m.progress.ViewAs(v.Progress/100) + "\n")
	s.WriteString("  " + m.indicatorView(v.Indicator) + "\n")

	if m.expanded && i == m.selected {
		s.WriteString(m.detailView(a))
	}

	s.WriteString("\n")

	return s.String()
}

func (m *Model) detailView(a *itinerary.Activity) string {
	var s strings.Builder

	lines := []string{a.Description, a.KeyDetails}

	if a.EndLocationName != "" {
		lines = append(lines, "Ends at "+a.EndLocationName)
	}

	if a.PriceEUR > 0 {
		lines = append(lines, "Cost "+itinerary.FormatEUR(a.PriceEUR))
	}

	lines = append(lines, a.NavigationURL())

	for _, l := range lines {
		if l == "" {
			continue
		}

		s.WriteString("    " + m.style.Hint.Render(m.fit(l)) + "\n")
	}

	return s.String()
}

// itineraryView renders every activity and records the line each one
// starts on.
func (m *Model) itineraryView() string {
	var s strings.Builder

	m.anchors = m.anchors[:0]

	if len(m.views) == 0 {
		return m.style.Hint.Render("No activities planned")
	}

	for i := range m.views {
		v := &m.views[i]

		if v.Gap != nil {
			s.WriteString(m.gapView(v.Gap))
		}

		m.anchors = append(m.anchors, strings.Count(s.String(), "\n"))

		s.WriteString(m.activityView(i, v))
	}

	return s.String()
}

func (m *Model) budgetView() string {
	var s strings.Builder

	b := itinerary.NewBudget(m.plan.Activities)

	if len(b.Items) == 0 {
		return m.style.Hint.Render("Nothing to pay for today")
	}

	width := 0
	for i := range b.Items {
		width = max(width, runewidth.StringWidth(b.Items[i].Title))
	}

	width = min(width, maxWidth/2)

	for i := range b.Items {
		a := &b.Items[i]

		s.WriteString(fmt.Sprintf(
			"%s  %s  %s\n",
			runewidth.FillRight(runewidth.Truncate(a.Title, width, "…"), width),
			m.style.Hint.Render(runewidth.FillRight(string(a.Kind), 12)),
			itinerary.FormatEUR(a.PriceEUR),
		))
	}

	s.WriteString("\n")

	kinds := make([]string, 0, len(b.ByKind))
	for k := range b.ByKind {
		kinds = append(kinds, string(k))
	}

	slices.Sort(kinds)

	for _, k := range kinds {
		s.WriteString(m.style.Hint.Render(fmt.Sprintf(
			"%s %s",
			runewidth.FillRight(k, 12),
			itinerary.FormatEUR(b.ByKind[itinerary.Kind(k)]),
		)) + "\n")
	}

	s.WriteString(m.style.Title.Render("Total " + itinerary.FormatEUR(b.Total)))
	s.WriteString("\n")

	return s.String()
}

func (m *Model) guideView() string {
	var s strings.Builder

	sum := guide.Summarize(m.plan)

	s.WriteString(m.style.Header.Render("Visit"))
	s.WriteString("\n")
	s.WriteString(fmt.Sprintf(
		"Ashore %s to %s (%s)\n",
		m.clockLabel(sum.Arrive),
		m.clockLabel(sum.Depart),
		itinerary.FormatMinutes(sum.PortMinutes),
	))
	s.WriteString(fmt.Sprintf(
		"Sightseeing %s, transport %s, walking %s\n\n",
		itinerary.FormatMinutes(sum.SightseeingMinutes),
		itinerary.FormatMinutes(sum.TransportMinutes),
		geo.FormatDistance(sum.WalkKM),
	))

	if len(m.plan.Phrases) > 0 {
		s.WriteString(m.style.Header.Render("Phrases"))
		s.WriteString("\n")

		for _, p := range m.plan.Phrases {
			s.WriteString(m.style.Title.Render(p.Word))
			s.WriteString(m.style.Hint.Render(" [" + p.Phonetic + "] " + p.Simplified))
			s.WriteString("  " + p.Meaning + "\n")
		}

		s.WriteString("\n")
	}

	msg := guide.SOSMessage(m.sig.Position, m.plan.Trip.City)

	s.WriteString(m.style.Critical.Render("SOS"))
	s.WriteString("\n")
	s.WriteString(msg + "\n")
	s.WriteString(m.style.Hint.Render(guide.SOSLink(msg)))
	s.WriteString("\n")

	return s.String()
}

func (m *Model) markersView() string {
	if len(m.markers) == 0 {
		return m.style.Hint.Render("No saved markers. Add one with `shoreday markers add`")
	}

	var s strings.Builder

	for i := range m.markers {
		mk := &m.markers[i]

		s.WriteString(m.style.Title.Render(m.fit(mk.Name)))
		s.WriteString(m.style.Hint.Render("  " + mk.Coordinate.String()))

		if m.sig.Position != nil {
			s.WriteString(m.style.Secondary.Render(
				"  " + geo.FormatDistance(m.sig.Position.DistanceTo(mk.Coordinate)),
			))
		}

		s.WriteString("\n")
	}

	return s.String()
}

// syncContent re-renders the active tab into the viewport.
func (m *Model) syncContent() {
	switch m.tab {
	case budgetTab:
		m.content = m.budgetView()
	case guideTab:
		m.content = m.guideView()
	case markersTab:
		m.content = m.markersView()
	default:
		m.content = m.itineraryView()
	}

	if m.ready {
		m.viewport.SetContent(m.content)
	}
}

func (m *Model) scrollToSelected() {
	if !m.ready || m.tab != itineraryTab || m.selected >= len(m.anchors) {
		return
	}

	line := m.anchors[m.selected]

	switch {
	case line < m.viewport.YOffset:
		m.viewport.SetYOffset(line)
	case line >= m.viewport.YOffset+m.viewport.Height-1:
		m.viewport.SetYOffset(line)
	}
}

func (m *Model) View() string {
	body := m.content
	if m.ready {
		body = m.viewport.View()
	}

	return m.style.Base.Render(m.headerView() + "\n" + body + m.helpView())
}
