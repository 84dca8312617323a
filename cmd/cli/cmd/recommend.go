// Package cmd - recommend command
package cmd

import (
	"github.com/spf13/cobra"

	"sales-economics/core/tier"
)

var (
	recCalls int
	recCost  float64
)

// recommendCmd represents the recommend command
var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Recommend the cheapest subscription tier for a call volume",
	Long: `Pick the lowest-cost subscription tier whose capacity covers the
monthly call volume, with projected savings against the current cost.

Examples:
  sales-economics recommend --calls 5000 --cost 40000
  sales-economics recommend --calls 150000 --cost 900000`,
	RunE: runRecommend,
}

func init() {
	recommendCmd.Flags().IntVar(&recCalls, "calls", 0, "monthly call volume")
	recommendCmd.Flags().Float64Var(&recCost, "cost", 0, "current monthly cost")
	recommendCmd.MarkFlagRequired("calls")
	recommendCmd.MarkFlagRequired("cost")
}

func runRecommend(cmd *cobra.Command, args []string) error {
	cat, err := loadCatalog()
	if err != nil {
		return err
	}

	rec, err := tier.New(cat).Recommend(recCalls, recCost)
	if err != nil {
		return err
	}

	return printResult(rec)
}
