package ui

import (
	"github.com/pterm/pterm"
)

var DarkTheme bool

func Green(a any) string {
	if DarkTheme {
		return pterm.LightGreen(a)
	}

	return pterm.Green(a)
}

func Cyan(a any) string {
	if DarkTheme {
		return pterm.LightCyan(a)
	}

	return pterm.Cyan(a)
}

func Magenta(a any) string {
	if DarkTheme {
		return pterm.LightMagenta(a)
	}

	return pterm.Magenta(a)
}

func Yellow(a any) string {
	if DarkTheme {
		return pterm.LightYellow(a)
	}

	return pterm.Yellow(a)
}

func Red(a any) string {
	if DarkTheme {
		return pterm.LightRed(a)
	}

	return pterm.Red(a)
}

func Highlight(a any) string {
	if DarkTheme {
		return pterm.LightWhite(a)
	}

	return pterm.Black(a)
}

// Kind colours an activity kind consistently across tables.
func Kind(kind string) string {
	switch kind {
	case "logistics":
		return Magenta(kind)
	case "transport":
		return Yellow(kind)
	case "sightseeing":
		return Cyan(kind)
	}

	return kind
}

// Progress colours a completion percentage.
func Progress(pct float64) string {
	s := pterm.Sprintf("%3.0f%%", pct)

	switch {
	case pct >= 100:
		return Green(s)
	case pct > 0:
		return Yellow(s)
	}

	return s
}
