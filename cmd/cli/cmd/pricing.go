// Package cmd - pricing command group
package cmd

import (
	"github.com/spf13/cobra"

	"sales-economics/core/pricing"
)

// pricingCmd groups the direct pricing calculators
var pricingCmd = &cobra.Command{
	Use:   "pricing",
	Short: "Direct pricing calculators",
	Long: `Quote subscription costs, discount stacks, enterprise licenses,
market exclusivity and contract buyouts without running a full
optimization.`,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

var (
	subTier     string
	subMonths   int
	subCalls    int
	quotePrice  float64
	quoteVolume int
	quoteMonths int
	licName     string
	licSites    int
	licCalls    int
)

// pricingSubscriptionCmd quotes a tier over a contract term
var pricingSubscriptionCmd = &cobra.Command{
	Use:   "subscription",
	Short: "Quote a subscription tier over a contract term",
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := loadCatalog()
		if err != nil {
			return err
		}

		cost, err := pricing.New(cat).SubscriptionCost(subTier, subMonths, subCalls)
		if err != nil {
			return err
		}

		return printResult(cost)
	},
}

// pricingQuoteCmd quotes stacked volume and term discounts
var pricingQuoteCmd = &cobra.Command{
	Use:   "quote",
	Short: "Quote stacked volume and term discounts",
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := loadCatalog()
		if err != nil {
			return err
		}

		quote, err := pricing.New(cat).DiscountQuote(quotePrice, quoteVolume, quoteMonths)
		if err != nil {
			return err
		}

		return printResult(quote)
	},
}

// pricingLicenseCmd quotes an enterprise license
var pricingLicenseCmd = &cobra.Command{
	Use:   "license",
	Short: "Quote an enterprise license",
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := loadCatalog()
		if err != nil {
			return err
		}

		cost, err := pricing.New(cat).LicenseCost(licName, licSites, licCalls)
		if err != nil {
			return err
		}

		return printResult(cost)
	},
}

func init() {
	pricingSubscriptionCmd.Flags().StringVar(&subTier, "tier", "", "subscription tier name")
	pricingSubscriptionCmd.Flags().IntVar(&subMonths, "months", 12, "contract duration in months")
	pricingSubscriptionCmd.Flags().IntVar(&subCalls, "calls", 0, "estimated monthly call volume")
	pricingSubscriptionCmd.MarkFlagRequired("tier")
	pricingSubscriptionCmd.MarkFlagRequired("calls")

	pricingQuoteCmd.Flags().Float64Var(&quotePrice, "price", 0, "base monthly price")
	pricingQuoteCmd.Flags().IntVar(&quoteVolume, "volume", 0, "annual call volume")
	pricingQuoteCmd.Flags().IntVar(&quoteMonths, "months", 12, "contract duration in months")
	pricingQuoteCmd.MarkFlagRequired("price")
	pricingQuoteCmd.MarkFlagRequired("volume")

	pricingLicenseCmd.Flags().StringVar(&licName, "license", "", "license name")
	pricingLicenseCmd.Flags().IntVar(&licSites, "locations", 1, "number of locations")
	pricingLicenseCmd.Flags().IntVar(&licCalls, "calls", 0, "estimated annual call volume")
	pricingLicenseCmd.MarkFlagRequired("license")
	pricingLicenseCmd.MarkFlagRequired("calls")

	pricingCmd.AddCommand(pricingSubscriptionCmd)
	pricingCmd.AddCommand(pricingQuoteCmd)
	pricingCmd.AddCommand(pricingLicenseCmd)
}
