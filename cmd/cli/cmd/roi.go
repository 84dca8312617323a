// Package cmd - roi command
package cmd

import (
	"github.com/spf13/cobra"

	"sales-economics/core/roi"
	"sales-economics/core/types"
	"sales-economics/internal/logging"
)

var (
	roiInputFile string
	roiTier      string
	roiIndustry  string
	roiScenario  string
)

// roiInput is the JSON shape of the --input file
type roiInput struct {
	CurrentCosts types.CostBreakdown      `json:"current_costs"`
	Metrics      types.OperationalMetrics `json:"operational_metrics"`
}

// roiCmd represents the roi command
var roiCmd = &cobra.Command{
	Use:   "roi",
	Short: "Project ROI for replacing current costs with a tier",
	Long: `Project a five-year month-by-month cash flow, NPV, IRR and break-even
for moving from current operational costs to a subscription tier.

The input file carries the current cost breakdown and operational
metrics as JSON.

Examples:
  sales-economics roi --input costs.json --tier professional --scenario moderate
  sales-economics roi --input costs.json --tier enterprise --industry healthcare --scenario aggressive`,
	RunE: runROI,
}

func init() {
	roiCmd.Flags().StringVarP(&roiInputFile, "input", "i", "", "JSON file with current costs and metrics")
	roiCmd.Flags().StringVar(&roiTier, "tier", "", "subscription tier name")
	roiCmd.Flags().StringVar(&roiIndustry, "industry", "", "industry vertical")
	roiCmd.Flags().StringVar(&roiScenario, "scenario", "moderate", "scenario name (conservative, moderate, aggressive)")
	roiCmd.MarkFlagRequired("input")
	roiCmd.MarkFlagRequired("tier")
}

func runROI(cmd *cobra.Command, args []string) error {
	cat, err := loadCatalog()
	if err != nil {
		return err
	}

	var input roiInput
	if err := readInputFile(roiInputFile, &input); err != nil {
		return err
	}

	selectedTier, err := cat.Tier(roiTier)
	if err != nil {
		return err
	}

	logging.Info("Projecting ROI")

	result, err := roi.New(cat).Project(input.CurrentCosts, input.Metrics, *selectedTier, roiIndustry, roiScenario)
	if err != nil {
		return err
	}

	return printResult(result)
}
