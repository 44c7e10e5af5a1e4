// Package logging configures the process-wide slog logger. Records go to a
// size-rotated file because the terminal belongs to the interface.
package logging

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	defaultMaxSizeMB  = 5
	defaultMaxBackups = 3
)

// ParseLevel converts a level name to a slog level. Unknown names map to
// info.
func ParseLevel(s string) slog.Level {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG":
		return slog.LevelDebug
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Init points the default logger at path, rotating the file once it grows
// past maxSizeMB. The returned function closes the file.
func Init(path, level string, maxSizeMB int) (func() error, error) {
	err := os.MkdirAll(filepath.Dir(path), 0o750)
	if err != nil {
		return nil, err
	}

	if maxSizeMB <= 0 {
		maxSizeMB = defaultMaxSizeMB
	}

	w := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    maxSizeMB,
		MaxBackups: defaultMaxBackups,
	}

	lvl := ParseLevel(level)

	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level:     lvl,
		AddSource: lvl == slog.LevelDebug,
	})

	slog.SetDefault(slog.New(handler))

	return w.Close, nil
}

var dumper = spew.ConfigState{
	Indent:                  " ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

// Dump renders v, following pointers, for debug records.
func Dump(v any) string {
	return dumper.Sdump(v)
}
