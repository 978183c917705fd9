package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/inovacc/stockfolio/internal/core"
	"github.com/inovacc/stockfolio/internal/model"
	"github.com/spf13/cobra"
)

var portfolioJSON bool

var portfolioCmd = &cobra.Command{
	Use:   "portfolio <user-id>",
	Short: "Show the holdings of one user",
	Long: `Print the portfolio rows of a user: symbol and shares owned, in dataset order.

The id is matched loosely, so "2" and "2.0" name the same user. An unknown id
prints nothing.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := openSession(cmd)
		if err != nil {
			return err
		}

		user, ok := sess.store.FindUserByID(model.ParseID(args[0]))
		if !ok {
			return nil
		}

		rows := core.PortfolioRows(user)
		w := cmd.OutOrStdout()

		if portfolioJSON {
			return outputJSON(w, user.User.Portfolio)
		}

		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
		_, _ = fmt.Fprintf(tw, "SYMBOL\tOWNED\t\n")

		for _, r := range rows {
			_, _ = fmt.Fprintf(tw, "%s\t%s\t\n", r.Symbol, r.Owned)
		}

		return tw.Flush()
	},
}

func init() {
	rootCmd.AddCommand(portfolioCmd)
	portfolioCmd.Flags().BoolVar(&portfolioJSON, "json", false, "Output as JSON")
}
