package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var listJSON bool

var listCmd = &cobra.Command{
	Use:     "users",
	Aliases: []string{"list"},
	Short:   "List all users",
	Long:    `Print every user in the dataset as "id<TAB>Lastname, Firstname", in dataset order.`,
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runUserList(cmd)
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output the user records as JSON")
}

func runUserList(cmd *cobra.Command) error {
	sess, err := openSession(cmd)
	if err != nil {
		return err
	}

	users := sess.store.Users()
	w := cmd.OutOrStdout()

	if listJSON {
		return outputJSON(w, users)
	}

	for _, u := range users {
		_, _ = fmt.Fprintf(w, "%s\t%s\n", u.ID, u.Label())
	}

	return nil
}
