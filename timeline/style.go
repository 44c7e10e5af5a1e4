package timeline

import "github.com/charmbracelet/lipgloss"

// Style holds the lipgloss styles used by the timeline views.
type Style struct {
	Base      lipgloss.Style
	Header    lipgloss.Style
	Tab       lipgloss.Style
	ActiveTab lipgloss.Style
	Title     lipgloss.Style
	Selected  lipgloss.Style
	Done      lipgloss.Style
	Secondary lipgloss.Style
	Hint      lipgloss.Style
	Critical  lipgloss.Style
	Arrived   lipgloss.Style
	Gap       lipgloss.Style
}

func newStyle(dark bool) Style {
	accent := lipgloss.Color("#0b7285")
	muted := lipgloss.Color("#6c757d")
	alert := lipgloss.Color("#c92a2a")
	ok := lipgloss.Color("#2b8a3e")

	if dark {
		accent = lipgloss.Color("#66d9e8")
		muted = lipgloss.Color("#adb5bd")
		alert = lipgloss.Color("#ff8787")
		ok = lipgloss.Color("#8ce99a")
	}

	return Style{
		Base:      lipgloss.NewStyle().Padding(1, 2),
		Header:    lipgloss.NewStyle().Bold(true).Foreground(accent),
		Tab:       lipgloss.NewStyle().Padding(0, 1).Foreground(muted),
		ActiveTab: lipgloss.NewStyle().Padding(0, 1).Bold(true).Underline(true).Foreground(accent),
		Title:     lipgloss.NewStyle().Bold(true),
		Selected:  lipgloss.NewStyle().Bold(true).Foreground(accent),
		Done:      lipgloss.NewStyle().Strikethrough(true).Foreground(muted),
		Secondary: lipgloss.NewStyle().Foreground(accent),
		Hint:      lipgloss.NewStyle().Foreground(muted),
		Critical:  lipgloss.NewStyle().Bold(true).Foreground(alert),
		Arrived:   lipgloss.NewStyle().Bold(true).Foreground(ok),
		Gap:       lipgloss.NewStyle().Italic(true).Foreground(muted),
	}
}
