// Package pricing - Enterprise licensing, exclusivity, buyout and
// market sizing tests
package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sales-economics/internal/errors"
)

func TestLicenseCost(t *testing.T) {
	cost, err := newPricer().LicenseCost("gold", 5, 100000)
	require.NoError(t, err)

	assert.Equal(t, 50000.0, cost.MonthlyBaseFee)
	assert.Equal(t, 10, cost.IncludedLocations)
	assert.Equal(t, 150000, cost.IncludedCalls)
	assert.Equal(t, "Enterprise", cost.SupportLevel)
	assert.Equal(t, 50, cost.CustomDevHours)
}

func TestLicenseCostCeilings(t *testing.T) {
	p := newPricer()

	// Silver caps at 3 locations
	_, err := p.LicenseCost("silver", 4, 10000)
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.TypeInvalidArgument))

	// Silver caps at 50000 total calls
	_, err = p.LicenseCost("silver", 2, 60000)
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.TypeInvalidArgument))

	// Platinum is effectively unlimited
	_, err = p.LicenseCost("platinum", 500, 900000)
	assert.NoError(t, err)
}

func TestLicenseCostUnknownLicense(t *testing.T) {
	_, err := newPricer().LicenseCost("diamond", 1, 1000)
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.TypeNotFound))
}

func TestExclusivityCost(t *testing.T) {
	// City base 5000, $2M market doubles it, 24 months doubles again
	quote, err := newPricer().ExclusivityCost("city", "Austin", 24, 2_000_000)
	require.NoError(t, err)

	assert.Equal(t, 20000.0, quote.MonthlyFee)
	assert.Equal(t, 480000.0, quote.TotalCost)
	assert.Equal(t, 24, quote.DurationMonths)
}

func TestExclusivityDurationFloor(t *testing.T) {
	// Under a year still prices at the one-year multiplier
	quote, err := newPricer().ExclusivityCost("state", "Texas", 6, 1_000_000)
	require.NoError(t, err)

	assert.Equal(t, 25000.0, quote.MonthlyFee)
}

func TestExclusivityUnknownLevel(t *testing.T) {
	_, err := newPricer().ExclusivityCost("galaxy", "Milky Way", 12, 1_000_000)
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.TypeNotFound))
}

func TestBuyoutValue(t *testing.T) {
	// 24 remaining months: 2x term multiplier, 4 + 0.5x2 revenue multiple
	valuation, err := newPricer().BuyoutValue(120000, 10000, 0.5, 24)
	require.NoError(t, err)

	assert.Equal(t, 240000.0, valuation.BaseContractValue)
	assert.Equal(t, 5.0, valuation.RevenueMultiple)
	assert.Equal(t, 600000.0, valuation.FutureValue)
	assert.Equal(t, 2.0, valuation.TermMultiplier)
	assert.Equal(t, 1680000.0, valuation.TotalBuyoutValue)
}

func TestBuyoutValueValidation(t *testing.T) {
	p := newPricer()

	_, err := p.BuyoutValue(120000, 10000, 0.5, 0)
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.TypeInvalidArgument))

	_, err = p.BuyoutValue(-1, 10000, 0.5, 12)
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.TypeInvalidArgument))
}

func TestMarketSize(t *testing.T) {
	// Technology: 1.25 cost multiplier, 0.6 maturity, 0.9 competition
	result, err := newPricer().MarketSize("technology", 100, 50000)
	require.NoError(t, err)

	assert.Equal(t, 6250000.0, result.TotalMarketSize)

	// 0.3 x (1 - 0.6x0.5) x (1 - 0.9x0.7) = 0.0777
	assert.Equal(t, 0.0777, result.PenetrationRate)
	assert.Equal(t, 485625.0, result.Year1Potential)
	assert.Greater(t, result.Year3Potential, result.Year1Potential)
	assert.Greater(t, result.Year5Potential, result.Year3Potential)
	assert.Equal(t, 0.18, result.GrowthRate)
}

func TestMarketSizeUnknownIndustry(t *testing.T) {
	_, err := newPricer().MarketSize("agriculture", 100, 50000)
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.TypeNotFound))
}
