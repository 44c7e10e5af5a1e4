// Package pathutil manages application file paths and locations
package pathutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/adrg/xdg"
)

const envName = "SHOREDAY_ENV"

// Paths holds all application path configurations.
type Paths struct {
	appDir        string
	configFile    string
	dbFile        string
	logFile       string
	itineraryFile string

	// Computed absolute paths
	configFilePath    string
	dataDir           string
	dbFilePath        string
	logFilePath       string
	itineraryFilePath string
}

var (
	paths *Paths
	once  sync.Once
)

// Initialize must be called once at program startup.
func Initialize() error {
	var initErr error

	once.Do(func() {
		paths = &Paths{
			appDir:        "shoreday",
			configFile:    "config.yml",
			dbFile:        "shoreday.db",
			logFile:       "shoreday.log",
			itineraryFile: "itinerary.yml",
		}

		paths.applyEnvironmentOverrides()
		initErr = paths.computePaths()
	})

	return initErr
}

// Must panics if paths haven't been initialized.
func Must() *Paths {
	if paths == nil {
		panic("pathutil.Initialize() must be called before accessing paths")
	}

	return paths
}

func ConfigFilePath() string {
	return Must().configFilePath
}

func DataDir() string {
	return Must().dataDir
}

func DBFilePath() string {
	return Must().dbFilePath
}

func LogFilePath() string {
	return Must().logFilePath
}

// ItineraryFilePath is the location of the installed itinerary.
func ItineraryFilePath() string {
	return Must().itineraryFilePath
}

func (p *Paths) applyEnvironmentOverrides() {
	env := strings.TrimSpace(os.Getenv(envName))
	if env == "" {
		return
	}

	p.configFile = fmt.Sprintf("config_%s.yml", env)
	p.dbFile = fmt.Sprintf("shoreday_%s.db", env)
	p.logFile = fmt.Sprintf("shoreday_%s.log", env)
}

func (p *Paths) computePaths() error {
	var err error

	p.configFilePath, err = xdg.ConfigFile(filepath.Join(p.appDir, p.configFile))
	if err != nil {
		return err
	}

	p.dataDir, err = xdg.DataFile(p.appDir)
	if err != nil {
		return err
	}

	p.dbFilePath = filepath.Join(p.dataDir, p.dbFile)
	p.logFilePath = filepath.Join(p.dataDir, "log", p.logFile)
	p.itineraryFilePath = filepath.Join(p.dataDir, p.itineraryFile)

	return nil
}
