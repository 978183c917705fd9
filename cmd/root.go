package cmd

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/inovacc/stockfolio/internal/application"
	"github.com/inovacc/stockfolio/internal/cli"
	"github.com/inovacc/stockfolio/internal/core"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	configPath string
	usersPath  string
	stocksPath string
	logLevel   string
	logJSON    bool
)

var rootCmd = &cobra.Command{
	Use:   application.AppName,
	Short: "Browse and edit users and their stock portfolios",
	Long: `Stockfolio shows a list of users and their stock portfolios in an interactive
terminal UI. Select a user to load them into the edit form, save or delete them,
and view the details of any stock they hold.

Edits are kept in memory only; the dataset files are never written.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			return runUserList(cmd)
		}

		return runTUI(cmd)
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// GetRootCmd returns the root command for introspection purposes.
func GetRootCmd() *cobra.Command {
	return rootCmd
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configPath, "config", "", "Config file (default <config dir>/stockfolio/config.ini)")
	flags.StringVar(&usersPath, "users", "", "Users dataset (.json, .yaml); overrides config")
	flags.StringVar(&stocksPath, "stocks", "", "Stocks dataset (.json, .yaml); overrides config")
	flags.StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error; overrides config")
	flags.BoolVar(&logJSON, "log-json", false, "Write logs as JSON")
}

func runTUI(cmd *cobra.Command) error {
	sess, err := openSession(cmd)
	if err != nil {
		return err
	}

	logFile, err := openLogFile(sess.cfg.Log.File)
	if err != nil {
		return err
	}
	defer func() { _ = logFile.Close() }()

	logger := newLogger(logFile, sess.cfg.Log)

	m := cli.NewModel()
	core.New(sess.store, m).
		WithLogger(logger).
		WithLogo(sess.cfg.Assets.LogoDir, sess.cfg.Assets.LogoExt).
		OnResult(m.ReportResult).
		Start()

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("terminal UI failed: %w", err)
	}

	return nil
}
