// Package cmd - tco command
package cmd

import (
	"github.com/spf13/cobra"

	"sales-economics/core/costmodel"
	"sales-economics/internal/logging"
)

var (
	tcoAgents   int
	tcoCalls    int
	tcoSalary   float64
	tcoIndustry string
)

// tcoCmd represents the tco command
var tcoCmd = &cobra.Command{
	Use:   "tco",
	Short: "Compute total cost of ownership for a human call operation",
	Long: `Break down the full monthly cost of a human call handling
operation: direct, indirect, opportunity and industry-specific costs,
plus a per-call benchmark comparison.

Examples:
  sales-economics tco --agents 10 --calls 5000 --salary 35000
  sales-economics tco --agents 25 --calls 20000 --salary 42000 --industry healthcare`,
	RunE: runTCO,
}

func init() {
	tcoCmd.Flags().IntVar(&tcoAgents, "agents", 0, "number of agents")
	tcoCmd.Flags().IntVar(&tcoCalls, "calls", 0, "calls handled per month")
	tcoCmd.Flags().Float64Var(&tcoSalary, "salary", 0, "average annual agent salary")
	tcoCmd.Flags().StringVar(&tcoIndustry, "industry", "", "industry vertical")
	tcoCmd.MarkFlagRequired("agents")
	tcoCmd.MarkFlagRequired("calls")
	tcoCmd.MarkFlagRequired("salary")
}

func runTCO(cmd *cobra.Command, args []string) error {
	cat, err := loadCatalog()
	if err != nil {
		return err
	}

	logging.Info("Computing total cost of ownership")

	model := costmodel.New(cat)
	analysis, err := model.TotalCostOfOwnership(tcoAgents, tcoCalls, tcoSalary, tcoIndustry)
	if err != nil {
		return err
	}

	return printResult(analysis)
}
