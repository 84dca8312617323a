// Package cmd - market command
package cmd

import (
	"github.com/spf13/cobra"

	"sales-economics/core/market"
	"sales-economics/core/types"
	"sales-economics/internal/logging"
)

var (
	marketInputFile string
	marketIndustry  string
	marketMonths    int
)

// marketInput is the JSON shape of the --input file
type marketInput struct {
	MarketConditions   types.MarketConditions   `json:"market_conditions"`
	Competitors        []types.CompetitorData   `json:"competitors"`
	PenetrationFactors types.PenetrationFactors `json:"penetration_factors"`
}

// marketCmd represents the market command
var marketCmd = &cobra.Command{
	Use:   "market",
	Short: "Forecast market penetration for an industry vertical",
	Long: `Run a diffusion forecast for AI call handling adoption in an
industry: month-by-month penetration, competitor impact, conversion
funnel, adoption phase transitions, risk and opportunity.

The input file carries market conditions, competitor data and
penetration factors as JSON.

Examples:
  sales-economics market --input market.json --industry financial_services --months 24
  sales-economics market --input market.json --industry retail --months 36`,
	RunE: runMarket,
}

func init() {
	marketCmd.Flags().StringVarP(&marketInputFile, "input", "i", "", "JSON file with market conditions, competitors and factors")
	marketCmd.Flags().StringVar(&marketIndustry, "industry", "", "industry vertical")
	marketCmd.Flags().IntVar(&marketMonths, "months", 24, "forecast timeframe in months")
	marketCmd.MarkFlagRequired("input")
	marketCmd.MarkFlagRequired("industry")
}

func runMarket(cmd *cobra.Command, args []string) error {
	cat, err := loadCatalog()
	if err != nil {
		return err
	}

	var input marketInput
	if err := readInputFile(marketInputFile, &input); err != nil {
		return err
	}

	logging.Info("Forecasting market penetration")

	result, err := market.New(cat).AnalyzePenetration(
		marketIndustry,
		input.MarketConditions,
		input.Competitors,
		input.PenetrationFactors,
		marketMonths,
	)
	if err != nil {
		return err
	}

	return printResult(result)
}
