package ui

import (
	"bytes"
	"testing"

	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
)

func TestPrintTable(t *testing.T) {
	pterm.DisableStyling()
	t.Cleanup(pterm.EnableStyling)

	var buf bytes.Buffer

	PrintTable([][]string{
		{"NAME", "PRICE"},
		{"Colosseo", "€18"},
	}, &buf)

	out := buf.String()
	assert.Contains(t, out, "NAME")
	assert.Contains(t, out, "Colosseo")
	assert.Contains(t, out, "€18")
}

func TestKindAndProgressKeepText(t *testing.T) {
	pterm.DisableColor()
	t.Cleanup(pterm.EnableColor)

	assert.Equal(t, "transport", Kind("transport"))
	assert.Equal(t, "other", Kind("other"))
	assert.Equal(t, "100%", Progress(100))
	assert.Equal(t, " 50%", Progress(50))
	assert.Equal(t, "  0%", Progress(0))
}
