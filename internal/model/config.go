package model

import "github.com/inovacc/stockfolio/internal/application"

// DataSection points at the dataset files.
type DataSection struct {
	// Users is the users file (.json, .yaml or .yml); empty means the built-in sample
	Users string `ini:"users"`

	// Stocks is the stocks file; empty means the built-in sample
	Stocks string `ini:"stocks"`
}

// AssetsSection controls how logo references are built.
type AssetsSection struct {
	// LogoDir is the directory prefix of logo references
	LogoDir string `ini:"logo_dir"`

	// LogoExt is the logo file extension without the dot
	LogoExt string `ini:"logo_ext"`
}

// LogSection configures the application logger.
type LogSection struct {
	// Level is one of debug, info, warn, error
	Level string `ini:"level"`

	// Format is text or json
	Format string `ini:"format"`

	// File receives log output while the terminal UI is running
	File string `ini:"file"`
}

// Config holds the application configuration
type Config struct {
	Data   DataSection   `ini:"data"`
	Assets AssetsSection `ini:"assets"`
	Log    LogSection    `ini:"log"`
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() Config {
	logFile, _ := application.LogFilePath()

	return Config{
		Assets: AssetsSection{
			LogoDir: "logos",
			LogoExt: "svg",
		},
		Log: LogSection{
			Level:  "info",
			Format: "text",
			File:   logFile,
		},
	}
}
