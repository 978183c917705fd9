package cmd

import (
	"github.com/inovacc/stockfolio/internal/core"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show stockfolio configuration",
	Long: `Show the effective configuration: the config file values with any
command-line overrides applied.

The config file is read from the application directory, which is
$STOCKFOLIO_HOME when set and <user config dir>/stockfolio otherwise.
It is an ini file with [data], [assets] and [log] sections:

  [data]
  users  = ~/portfolios/users.yaml
  stocks = ~/portfolios/stocks.json

  [assets]
  logo_dir = logos
  logo_ext = svg

  [log]
  level  = info
  format = text
  file   = ~/.config/stockfolio/stockfolio.log`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := openSession(cmd)
		if err != nil {
			return err
		}

		core.ShowConfig(cmd.OutOrStdout(), sess.cfgPath, sess.cfg)

		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
}
