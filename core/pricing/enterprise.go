// Package pricing - Enterprise licensing, exclusivity, buyout and
// market sizing calculators
package pricing

import (
	"math"

	"sales-economics/core/types"
	"sales-economics/internal/errors"
)

// LicenseCost prices an enterprise license. Requested locations and
// call volume must fit within the license ceilings.
func (p *Pricer) LicenseCost(licenseName string, numLocations, estimatedTotalCalls int) (*types.LicenseCost, error) {
	license, err := p.catalog.License(licenseName)
	if err != nil {
		return nil, err
	}
	if numLocations > license.MaxLocations {
		return nil, errors.InvalidArgumentf("%d locations exceeds the %s license maximum of %d", numLocations, license.Name, license.MaxLocations)
	}
	if estimatedTotalCalls > license.MaxTotalCalls {
		return nil, errors.InvalidArgumentf("%d calls exceeds the %s license maximum of %d", estimatedTotalCalls, license.Name, license.MaxTotalCalls)
	}

	return &types.LicenseCost{
		MonthlyBaseFee:    types.Round2(license.BaseFee.InexactFloat64()),
		IncludedLocations: license.MaxLocations,
		IncludedCalls:     license.MaxTotalCalls,
		SupportLevel:      license.SupportLevel,
		CustomDevHours:    license.CustomDevelopmentHours,
		Features:          license.Features,
	}, nil
}

// ExclusivityCost prices territorial exclusivity: the scope base rate
// scaled per $1M of market size and by the duration in years (floor 1).
func (p *Pricer) ExclusivityCost(level string, territory string, durationMonths int, marketSize float64) (*types.ExclusivityQuote, error) {
	scope := types.ExclusivityLevel(level)
	base, ok := p.catalog.ExclusivityRates[scope]
	if !ok {
		return nil, errors.NotFound("exclusivity level", level)
	}
	if durationMonths <= 0 {
		return nil, errors.InvalidArgumentf("duration must be positive, got %d months", durationMonths)
	}
	if marketSize <= 0 {
		return nil, errors.InvalidArgumentf("market size must be positive, got %f", marketSize)
	}

	marketMultiplier := marketSize / 1_000_000
	durationMultiplier := math.Max(1, float64(durationMonths)/12)
	monthly := base.InexactFloat64() * marketMultiplier * durationMultiplier

	return &types.ExclusivityQuote{
		Level:          scope,
		Territory:      territory,
		DurationMonths: durationMonths,
		MonthlyFee:     types.Round2(monthly),
		TotalCost:      types.Round2(monthly * float64(durationMonths)),
	}, nil
}

// BuyoutValue values a contract buyout for market expansion: remaining
// contract value plus future recurring revenue at a 4x-6x multiple
// scaled by market penetration, all scaled by the remaining term.
func (p *Pricer) BuyoutValue(currentContractValue, monthlyRecurringRevenue, marketPenetration float64, remainingTermMonths int) (*types.BuyoutValuation, error) {
	if remainingTermMonths <= 0 {
		return nil, errors.InvalidArgumentf("remaining term must be positive, got %d months", remainingTermMonths)
	}
	if currentContractValue < 0 || monthlyRecurringRevenue < 0 {
		return nil, errors.InvalidArgument("contract value and recurring revenue must be non-negative")
	}

	termMultiplier := math.Max(1, float64(remainingTermMonths)/12)
	revenueMultiple := 4.0 + marketPenetration*2

	remainingContract := currentContractValue * float64(remainingTermMonths) / 12
	futureValue := monthlyRecurringRevenue * 12 * revenueMultiple

	return &types.BuyoutValuation{
		BaseContractValue: types.Round2(remainingContract),
		FutureValue:       types.Round2(futureValue),
		TermMultiplier:    types.Round2(termMultiplier),
		RevenueMultiple:   types.Round2(revenueMultiple),
		TotalBuyoutValue:  types.Round2((remainingContract + futureValue) * termMultiplier),
	}, nil
}

// MarketSize projects the serviceable opportunity in a vertical from
// target company counts and the catalog's per-industry market metrics
func (p *Pricer) MarketSize(industry string, targetCompanies int, avgCompanySize float64) (*types.MarketSizeResult, error) {
	key := types.NormalizeIndustry(industry)
	metrics, ok := p.catalog.MarketMetrics[key]
	if !ok {
		return nil, errors.NotFound("market metrics", industry)
	}
	profile, err := p.catalog.IndustryProfile(industry)
	if err != nil {
		return nil, err
	}
	if targetCompanies <= 0 || avgCompanySize <= 0 {
		return nil, errors.InvalidArgument("target companies and average company size must be positive")
	}

	adjustedMarket := float64(targetCompanies) * avgCompanySize * profile.CostMultiplier
	penetrationRate := expectedPenetrationRate(metrics.MarketMaturity, metrics.CompetitionIntensity)

	year1 := adjustedMarket * penetrationRate
	year3 := year1 * math.Pow(1+metrics.MarketGrowthRate, 3)
	year5 := year1 * math.Pow(1+metrics.MarketGrowthRate, 5)

	return &types.MarketSizeResult{
		TotalMarketSize:      types.Round2(adjustedMarket),
		ServiceableMarket:    types.Round2(adjustedMarket * penetrationRate),
		Year1Potential:       types.Round2(year1),
		Year3Potential:       types.Round2(year3),
		Year5Potential:       types.Round2(year5),
		GrowthRate:           metrics.MarketGrowthRate,
		CompetitionIntensity: metrics.CompetitionIntensity,
		MarketMaturity:       metrics.MarketMaturity,
		PenetrationRate:      types.Round4(penetrationRate),
	}, nil
}

// expectedPenetrationRate discounts a 30% base by market maturity and
// competition: mature, contested markets are harder to enter
func expectedPenetrationRate(marketMaturity, competitionIntensity float64) float64 {
	return 0.3 * (1 - marketMaturity*0.5) * (1 - competitionIntensity*0.7)
}
