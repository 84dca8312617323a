// Package tier maps a prospect's call volume and current cost to a
// best-fit subscription tier.
package tier

import (
	"sales-economics/core/catalog"
	"sales-economics/core/types"
	"sales-economics/internal/errors"
)

// Recommender selects subscription tiers from a catalog
type Recommender struct {
	catalog *catalog.Catalog
}

// New creates a recommender bound to a catalog
func New(cat *catalog.Catalog) *Recommender {
	return &Recommender{catalog: cat}
}

// Recommend picks the cheapest tier whose call ceiling covers the
// requested volume. Ties resolve to the first catalog entry; catalog
// order is part of the configuration contract.
//
// When no tier covers the volume the custom-enterprise sentinel is
// returned — an expected business outcome, not an error. When monthly
// savings are not positive, the payback period is reported as nil
// rather than a negative month count.
func (r *Recommender) Recommend(monthlyCalls int, monthlyCost float64) (*types.TierRecommendation, error) {
	if monthlyCalls <= 0 {
		return nil, errors.InvalidArgumentf("monthly calls must be positive, got %d", monthlyCalls)
	}
	if monthlyCost <= 0 {
		return nil, errors.InvalidArgumentf("monthly cost must be positive, got %f", monthlyCost)
	}

	var best *types.SubscriptionTier
	for i := range r.catalog.Tiers {
		t := &r.catalog.Tiers[i]
		if t.MaxCalls < monthlyCalls {
			continue
		}
		if best == nil || t.PricePerMonth.LessThan(best.PricePerMonth) {
			best = t
		}
	}

	if best == nil {
		return &types.TierRecommendation{
			CustomEnterprise: true,
			Message:          "Call volume exceeds all standard tiers; a custom enterprise solution is required.",
		}, nil
	}

	price := best.PricePerMonth.InexactFloat64()
	setup := best.SetupFee.InexactFloat64()
	monthlySavings := monthlyCost - price

	rec := &types.TierRecommendation{
		Tier:                    best,
		MonthlySavings:          types.Round2(monthlySavings),
		AnnualSavings:           types.Round2(monthlySavings * 12),
		CostReductionPercentage: types.Round1(monthlySavings / monthlyCost * 100),
	}
	if monthlySavings > 0 {
		roi := types.Round1(setup / monthlySavings)
		rec.ROIMonths = &roi
	}
	return rec, nil
}
