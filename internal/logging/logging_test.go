package logging

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		" INFO ":  slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		"Error":   slog.LevelError,
		"verbose": slog.LevelInfo,
		"":        slog.LevelInfo,
	}

	for in, want := range cases {
		assert.Equal(t, want, ParseLevel(in), "level %q", in)
	}
}

func TestInitWritesToFile(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() {
		slog.SetDefault(prev)
	})

	path := filepath.Join(t.TempDir(), "logs", "shoreday.log")

	closeFn, err := Init(path, "warn", 0)
	require.NoError(t, err)

	slog.Info("hidden")
	slog.Warn("visible", slog.String("stop", "trevi"))

	require.NoError(t, closeFn())

	b, err := os.ReadFile(path)
	require.NoError(t, err)

	assert.Contains(t, string(b), "msg=visible")
	assert.Contains(t, string(b), "stop=trevi")
	assert.NotContains(t, string(b), "hidden")
}

func TestDumpFollowsPointers(t *testing.T) {
	v := 12.5

	out := Dump(struct{ Heading *float64 }{&v})

	assert.Contains(t, out, "12.5")
	assert.NotContains(t, out, "0x")
}
