package core

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/inovacc/stockfolio/internal/model"
	"gopkg.in/ini.v1"
)

// LoadConfig reads the ini configuration at path on top of the defaults.
// A missing file is not an error.
func LoadConfig(path string) (model.Config, error) {
	cfg := model.DefaultConfig()

	if path == "" {
		return cfg, nil
	}

	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}

	file, err := ini.Load(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if err := file.Section("data").MapTo(&cfg.Data); err != nil {
		return cfg, err
	}

	if err := file.Section("assets").MapTo(&cfg.Assets); err != nil {
		return cfg, err
	}

	if err := file.Section("log").MapTo(&cfg.Log); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// ShowConfig displays the given configuration
func ShowConfig(w io.Writer, path string, cfg model.Config) {
	orSample := func(s string) string {
		if s == "" {
			return "(built-in sample)"
		}

		return s
	}

	_, _ = fmt.Fprintln(w, "Current Configuration:")
	_, _ = fmt.Fprintln(w, "=====================")
	_, _ = fmt.Fprintf(w, "Config File:  %s\n", path)
	_, _ = fmt.Fprintf(w, "Users:        %s\n", orSample(cfg.Data.Users))
	_, _ = fmt.Fprintf(w, "Stocks:       %s\n", orSample(cfg.Data.Stocks))
	_, _ = fmt.Fprintf(w, "Logo Dir:     %s\n", cfg.Assets.LogoDir)
	_, _ = fmt.Fprintf(w, "Logo Ext:     %s\n", cfg.Assets.LogoExt)
	_, _ = fmt.Fprintf(w, "Log Level:    %s\n", cfg.Log.Level)
	_, _ = fmt.Fprintf(w, "Log Format:   %s\n", cfg.Log.Format)
	_, _ = fmt.Fprintf(w, "Log File:     %s\n", cfg.Log.File)
}
