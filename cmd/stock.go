package cmd

import (
	"github.com/inovacc/stockfolio/internal/core"
	"github.com/spf13/cobra"
)

var stockJSON bool

var stockCmd = &cobra.Command{
	Use:   "stock <symbol>",
	Short: "Show the details of a stock",
	Long: `Print name, sector, industry, address and logo reference for a stock symbol.
Symbols are matched exactly. An unknown symbol prints nothing.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := openSession(cmd)
		if err != nil {
			return err
		}

		stock, ok := sess.store.FindStockBySymbol(args[0])
		if !ok {
			return nil
		}

		logo := core.LogoPath(sess.cfg.Assets.LogoDir, stock.Symbol, sess.cfg.Assets.LogoExt)
		w := cmd.OutOrStdout()

		if stockJSON {
			return outputJSON(w, struct {
				Symbol      string `json:"symbol"`
				Name        string `json:"name"`
				Sector      string `json:"sector"`
				SubIndustry string `json:"subIndustry"`
				Address     string `json:"address"`
				Logo        string `json:"logo"`
			}{stock.Symbol, stock.Name, stock.Sector, stock.SubIndustry, stock.Address, logo})
		}

		printInfoBox(w, stock.Symbol, map[string]string{
			"Name":     stock.Name,
			"Sector":   stock.Sector,
			"Industry": stock.SubIndustry,
			"Address":  stock.Address,
			"Logo":     logo,
		}, []string{"Name", "Sector", "Industry", "Address", "Logo"})

		return nil
	},
}

func init() {
	rootCmd.AddCommand(stockCmd)
	stockCmd.Flags().BoolVar(&stockJSON, "json", false, "Output as JSON")
}
