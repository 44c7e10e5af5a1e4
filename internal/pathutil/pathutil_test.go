package pathutil

import (
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/assert"
)

func TestEnvironmentOverrides(t *testing.T) {
	t.Setenv(envName, "staging")

	p := &Paths{
		appDir:        "shoreday",
		configFile:    "config.yml",
		dbFile:        "shoreday.db",
		logFile:       "shoreday.log",
		itineraryFile: "itinerary.yml",
	}

	p.applyEnvironmentOverrides()

	assert.Equal(t, "config_staging.yml", p.configFile)
	assert.Equal(t, "shoreday_staging.db", p.dbFile)
	assert.Equal(t, "shoreday_staging.log", p.logFile)
	assert.Equal(t, "itinerary.yml", p.itineraryFile)
}

func TestComputePaths(t *testing.T) {
	dir := t.TempDir()

	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(dir, "data"))
	xdg.Reload()
	t.Cleanup(xdg.Reload)

	p := &Paths{
		appDir:        "shoreday",
		configFile:    "config.yml",
		dbFile:        "shoreday.db",
		logFile:       "shoreday.log",
		itineraryFile: "itinerary.yml",
	}

	assert.NoError(t, p.computePaths())

	data := filepath.Join(dir, "data", "shoreday")

	assert.Equal(t, filepath.Join(dir, "config", "shoreday", "config.yml"), p.configFilePath)
	assert.Equal(t, data, p.dataDir)
	assert.Equal(t, filepath.Join(data, "shoreday.db"), p.dbFilePath)
	assert.Equal(t, filepath.Join(data, "log", "shoreday.log"), p.logFilePath)
	assert.Equal(t, filepath.Join(data, "itinerary.yml"), p.itineraryFilePath)
}
