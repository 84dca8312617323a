// Package cmd - optimize command
package cmd

import (
	"github.com/spf13/cobra"

	"sales-economics/core/contract"
	"sales-economics/internal/logging"
)

var (
	optCalls    int
	optIndustry string
	optBudget   float64
)

// optimizeCmd represents the optimize command
var optimizeCmd = &cobra.Command{
	Use:   "optimize",
	Short: "Search for the best contract configuration",
	Long: `Search every tier and contract term combination for the
configuration with the best value score, honoring an optional monthly
budget constraint.

Examples:
  sales-economics optimize --calls 60000 --industry healthcare
  sales-economics optimize --calls 60000 --industry healthcare --budget 50000`,
	RunE: runOptimize,
}

func init() {
	optimizeCmd.Flags().IntVar(&optCalls, "calls", 0, "estimated annual call volume")
	optimizeCmd.Flags().StringVar(&optIndustry, "industry", "", "industry vertical")
	optimizeCmd.Flags().Float64Var(&optBudget, "budget", 0, "maximum effective monthly cost (0 means unconstrained)")
	optimizeCmd.MarkFlagRequired("calls")
	optimizeCmd.MarkFlagRequired("industry")
}

func runOptimize(cmd *cobra.Command, args []string) error {
	cat, err := loadCatalog()
	if err != nil {
		return err
	}

	var budget *float64
	if optBudget > 0 {
		budget = &optBudget
	}

	logging.Info("Optimizing contract configuration")

	result, err := contract.New(cat).Optimize(optCalls, optIndustry, budget)
	if err != nil {
		return err
	}

	return printResult(result)
}
