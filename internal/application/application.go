package application

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

const (
	// AppName is the application name used for directories and identification
	AppName = "stockfolio"

	// ConfigFileName is the ini file read from the application directory
	ConfigFileName = "config.ini"

	// LogFileName receives log output while the terminal UI owns the screen
	LogFileName = "stockfolio.log"

	// HomeEnv overrides the application directory when set
	HomeEnv = "STOCKFOLIO_HOME"
)

// Paths are the on-disk locations stockfolio reads and writes.
type Paths struct {
	Dir        string
	ConfigFile string
	LogFile    string
}

var (
	once     sync.Once
	resolved Paths
	errPaths error
)

// Locate returns the stockfolio paths, resolved once per process.
// The directory is $STOCKFOLIO_HOME when set, otherwise <UserConfigDir>/stockfolio.
func Locate() (Paths, error) {
	once.Do(func() {
		resolved, errPaths = resolve(os.Getenv(HomeEnv), os.UserConfigDir)
	})

	return resolved, errPaths
}

// ConfigFilePath returns the default location of the configuration file.
func ConfigFilePath() (string, error) {
	p, err := Locate()
	return p.ConfigFile, err
}

// LogFilePath returns the default location of the TUI log file.
// On failure it still returns the bare file name so callers can log to the working directory.
func LogFilePath() (string, error) {
	p, err := Locate()
	if err != nil {
		return LogFileName, err
	}

	return p.LogFile, nil
}

func resolve(home string, baseDir func() (string, error)) (Paths, error) {
	dir := home
	if dir == "" {
		base, err := baseDir()
		if err != nil {
			return Paths{}, fmt.Errorf("failed to get config directory: %w", err)
		}

		dir = filepath.Join(base, AppName)
	}

	return Paths{
		Dir:        dir,
		ConfigFile: filepath.Join(dir, ConfigFileName),
		LogFile:    filepath.Join(dir, LogFileName),
	}, nil
}
