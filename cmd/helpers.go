package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/inovacc/stockfolio/internal/application"
	"github.com/inovacc/stockfolio/internal/core"
	"github.com/inovacc/stockfolio/internal/model"
	"github.com/inovacc/stockfolio/internal/store"
	"github.com/spf13/cobra"
)

// session is the loaded configuration plus the data store built from it.
type session struct {
	cfgPath string
	cfg     model.Config
	store   *store.Store
}

// openSession resolves configuration (file, then flags) and loads the dataset.
func openSession(cmd *cobra.Command) (*session, error) {
	cfgPath, cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	if usersPath != "" {
		cfg.Data.Users = usersPath
	}

	if stocksPath != "" {
		cfg.Data.Stocks = stocksPath
	}

	if logLevel != "" {
		cfg.Log.Level = logLevel
	}

	if logJSON {
		cfg.Log.Format = "json"
	}

	if cfg.Data.Users, err = expandOptional(cfg.Data.Users); err != nil {
		return nil, err
	}

	if cfg.Data.Stocks, err = expandOptional(cfg.Data.Stocks); err != nil {
		return nil, err
	}

	st, err := store.Load(cfg.Data.Users, cfg.Data.Stocks)
	if err != nil {
		return nil, err
	}

	newLogger(cmd.ErrOrStderr(), cfg.Log).Debug("dataset loaded",
		"users", st.Len(), "stocks", len(st.Stocks()))

	return &session{cfgPath: cfgPath, cfg: cfg, store: st}, nil
}

func loadConfig() (string, model.Config, error) {
	path := configPath
	if path == "" {
		p, err := application.ConfigFilePath()
		if err != nil {
			return "", model.DefaultConfig(), nil
		}

		path = p
	}

	cfg, err := core.LoadConfig(path)

	return path, cfg, err
}

// newLogger builds the application logger from the [log] config section
func newLogger(w io.Writer, cfg model.LogSection) *slog.Logger {
	opts := &slog.HandlerOptions{Level: parseLevel(cfg.Level)}
	if strings.EqualFold(cfg.Format, "json") {
		return slog.New(slog.NewJSONHandler(w, opts))
	}

	return slog.New(slog.NewTextHandler(w, opts))
}

// parseLevel maps a config level name to a slog level, defaulting to info
func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// openLogFile opens the log file for appending, creating its directory
func openLogFile(path string) (*os.File, error) {
	path, err := expandPath(path)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	return f, nil
}

// expandPath expands ~ to the user's home directory and returns an absolute path
func expandPath(path string) (string, error) {
	if len(path) == 0 {
		return "", fmt.Errorf("path is empty")
	}

	// Expand ~ to home directory
	if path[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}

		path = filepath.Join(home, path[1:])
	}

	// Make path absolute
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to resolve path: %w", err)
	}

	return absPath, nil
}

// expandOptional is expandPath that lets an empty path through
func expandOptional(path string) (string, error) {
	if path == "" {
		return "", nil
	}

	return expandPath(path)
}

// outputJSON encodes data as indented JSON
func outputJSON(w io.Writer, data any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(data)
}

// centerString centers a string in a field of given display width
func centerString(s string, width int) string {
	w := lipgloss.Width(s)
	if w >= width {
		return s
	}

	padding := (width - w) / 2

	return strings.Repeat(" ", padding) + s + strings.Repeat(" ", width-w-padding)
}

// fitWidth cuts s to at most width display cells without splitting a character
func fitWidth(s string, width int) string {
	if lipgloss.Width(s) <= width {
		return s
	}

	return lipgloss.NewStyle().MaxWidth(width).Render(s)
}

// boxWidth is the standard width for info boxes
const boxWidth = 64

// printInfoBox prints a boxed title followed by label: value lines in order
func printInfoBox(w io.Writer, title string, items map[string]string, order []string) {
	inner := boxWidth - 2

	_, _ = fmt.Fprintln(w, "╔"+strings.Repeat("═", inner)+"╗")
	_, _ = fmt.Fprintf(w, "║%s║\n", centerString(fitWidth(title, inner), inner))
	_, _ = fmt.Fprintln(w, "╠"+strings.Repeat("═", inner)+"╣")

	for _, key := range order {
		val, ok := items[key]
		if !ok {
			continue
		}

		content := fitWidth(fmt.Sprintf("  %s: %s", key, val), inner)
		padding := inner - lipgloss.Width(content)

		_, _ = fmt.Fprintf(w, "║%s%s║\n", content, strings.Repeat(" ", padding))
	}

	_, _ = fmt.Fprintln(w, "╚"+strings.Repeat("═", inner)+"╝")
}
