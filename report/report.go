// Package report prints user-facing outcomes of shoreday commands
package report

import (
	"os"

	"github.com/pterm/pterm"

	"github.com/shoreday/shoreday/internal/models"
	"github.com/shoreday/shoreday/internal/osutil"
)

func MarkerAdded(m *models.Marker) {
	pterm.Success.Printfln("marker %q saved at %s", m.Name, m.Coordinate)
}

func MarkerRenamed(m *models.Marker) {
	pterm.Success.Printfln("marker %s renamed to %q", m.ID, m.Name)
}

func MarkersDeleted(n int) {
	pterm.Info.Printfln("%d marker(s) deleted", n)
}

func Exported(path string, features int) {
	pterm.Success.Printfln("%d features written to %s", features, path)
}

var exit = os.Exit

// Quit prints err and exits with the error status.
func Quit(err error) {
	pterm.Error.Println(err)
	exit(int(osutil.ExitError))
}
