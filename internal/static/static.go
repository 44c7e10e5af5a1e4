// Package static embeds the default itinerary into the binary and installs it
// on the filesystem
package static

import (
	"embed"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/shoreday/shoreday/internal/osutil"
)

const (
	filesDir = "files"

	// ItineraryFile is the name of the bundled itinerary.
	ItineraryFile = "itinerary.yml"
)

//go:embed files/*
var embeddedFiles embed.FS

// Itinerary returns the bundled itinerary document.
func Itinerary() []byte {
	b, _ := embeddedFiles.ReadFile(filesDir + "/" + ItineraryFile)

	return b
}

// Install copies the embedded files into dataDir. Files that already exist
// are left untouched so that user edits survive upgrades.
func Install(dataDir string) error {
	return fs.WalkDir(
		embeddedFiles,
		filesDir,
		func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			if d.IsDir() {
				return nil
			}

			b, err := embeddedFiles.ReadFile(path)
			if err != nil {
				return err
			}

			// embed paths always use forward slashes
			stripped := strings.TrimPrefix(path, filesDir+"/")

			destPath := filepath.Join(dataDir, filepath.FromSlash(stripped))

			// Only write if file does not already exist
			if _, err := os.Stat(destPath); errors.Is(err, fs.ErrNotExist) {
				if err := os.MkdirAll(filepath.Dir(destPath), osutil.DirPermission); err != nil {
					return err
				}

				if err := os.WriteFile(destPath, b, osutil.FilePermission); err != nil {
					return err
				}
			}

			return nil
		},
	)
}
