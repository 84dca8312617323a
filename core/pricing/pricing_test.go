// Package pricing - Subscription and discount pricing tests
package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sales-economics/core/catalog"
	"sales-economics/internal/errors"
)

func newPricer() *Pricer {
	return New(catalog.Default())
}

func TestSubscriptionCostWithOverage(t *testing.T) {
	// Professional caps at 5000 calls; 1000 over at 0.45 each
	cost, err := newPricer().SubscriptionCost("Professional", 12, 6000)
	require.NoError(t, err)

	assert.Equal(t, 2000.0, cost.BaseMonthlyFee)
	assert.Equal(t, 2500.0, cost.SetupFee)
	assert.Equal(t, 450.0, cost.EstimatedMonthlyOverage)
	assert.Equal(t, 2450.0, cost.TotalMonthlyCost)
	assert.Equal(t, 31900.0, cost.TotalContractValue)
}

func TestSubscriptionCostWithinCeiling(t *testing.T) {
	cost, err := newPricer().SubscriptionCost("starter", 6, 800)
	require.NoError(t, err)

	assert.Zero(t, cost.EstimatedMonthlyOverage)
	assert.Equal(t, 450.0, cost.TotalMonthlyCost)
	assert.Equal(t, 3700.0, cost.TotalContractValue)
}

func TestSubscriptionCostEnforcesMinimumTerm(t *testing.T) {
	_, err := newPricer().SubscriptionCost("Professional", 6, 4000)
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.TypeInvalidArgument))
}

func TestSubscriptionCostUnknownTier(t *testing.T) {
	_, err := newPricer().SubscriptionCost("Platinum Plus", 12, 4000)
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.TypeNotFound))
}

func TestIndustryAdjustedPricing(t *testing.T) {
	// Financial services: 1.3 multiplier, 4 compliance frameworks,
	// 4 specialized features. Complexity 1.5 adds 10%.
	pricing, err := newPricer().IndustryAdjustedPricing(2000, "financial_services", 1.5)
	require.NoError(t, err)

	assert.Equal(t, 1.3, pricing.IndustryMultiplier)
	assert.InDelta(t, 1.1, pricing.ComplexityMultiplier, 1e-9)
	assert.InDelta(t, 2860.0, pricing.AdjustedPrice, 0.01)
	assert.Equal(t, 400.0, pricing.ComplianceCost)
	assert.Equal(t, 200.0, pricing.FeaturePremium)
	assert.Equal(t, 600.0, pricing.TotalMonthlyPremium)
}

func TestIndustryAdjustedPricingUnknownIndustry(t *testing.T) {
	_, err := newPricer().IndustryAdjustedPricing(2000, "agriculture", 1.0)
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.TypeNotFound))
}

func TestDiscountQuoteStacksSchedules(t *testing.T) {
	// 100k annual calls -> 10% volume; 24 months -> 10% term
	quote, err := newPricer().DiscountQuote(2000, 100000, 24)
	require.NoError(t, err)

	assert.Equal(t, 0.10, quote.Discount.VolumeDiscount)
	assert.Equal(t, 0.10, quote.Discount.TermDiscount)
	assert.InDelta(t, 0.19, quote.Discount.Combined, 1e-9)
	assert.Equal(t, 24000.0, quote.BaseAnnualPrice)
	assert.Equal(t, 19440.0, quote.DiscountedAnnualPrice)
	assert.Equal(t, 4560.0, quote.AnnualSavings)
	assert.Equal(t, 9120.0, quote.TotalContractSavings)
}

func TestDiscountQuoteBelowFirstBreak(t *testing.T) {
	quote, err := newPricer().DiscountQuote(1000, 10000, 6)
	require.NoError(t, err)

	assert.Zero(t, quote.Discount.Combined)
	assert.Equal(t, quote.BaseAnnualPrice, quote.DiscountedAnnualPrice)
	assert.Zero(t, quote.AnnualSavings)
}
