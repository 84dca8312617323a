// Package pricing provides the contract pricing calculators: tier
// subscription costs with overages, industry-adjusted pricing,
// combined discount quotes, enterprise licensing, territorial
// exclusivity, buyout valuation and market sizing.
package pricing

import (
	"sales-economics/core/catalog"
	"sales-economics/core/types"
	"sales-economics/internal/errors"
)

const (
	// costPerComplianceRequirement is the monthly cost per mandated
	// compliance framework
	costPerComplianceRequirement = 100.0

	// premiumPerSpecializedFeature is the monthly premium per
	// vertical-specific feature
	premiumPerSpecializedFeature = 50.0
)

// Pricer computes contract pricing against a catalog
type Pricer struct {
	catalog *catalog.Catalog
}

// New creates a pricer bound to a catalog
func New(cat *catalog.Catalog) *Pricer {
	return &Pricer{catalog: cat}
}

// SubscriptionCost prices a tier over a term, including estimated
// overage for call volume above the tier ceiling. The duration must
// meet the tier's minimum term.
func (p *Pricer) SubscriptionCost(tierName string, durationMonths, estimatedCalls int) (*types.SubscriptionCost, error) {
	tier, err := p.catalog.Tier(tierName)
	if err != nil {
		return nil, err
	}
	if durationMonths < tier.MinTermMonths {
		return nil, errors.InvalidArgumentf("minimum term for %s is %d months, got %d", tier.Name, tier.MinTermMonths, durationMonths)
	}
	if estimatedCalls < 0 {
		return nil, errors.InvalidArgumentf("estimated calls must be non-negative, got %d", estimatedCalls)
	}

	base := tier.PricePerMonth.InexactFloat64()
	setup := tier.SetupFee.InexactFloat64()

	overageCalls := estimatedCalls - tier.MaxCalls
	if overageCalls < 0 {
		overageCalls = 0
	}
	overage := float64(overageCalls) * tier.OverageRate.InexactFloat64()

	monthly := base + overage
	return &types.SubscriptionCost{
		BaseMonthlyFee:          types.Round2(base),
		SetupFee:                types.Round2(setup),
		EstimatedMonthlyOverage: types.Round2(overage),
		TotalMonthlyCost:        types.Round2(monthly),
		TotalContractValue:      types.Round2(monthly*float64(durationMonths) + setup),
	}, nil
}

// IndustryAdjustedPricing scales a base price for a vertical and
// reports its compliance and feature premiums. Call complexity 1.0 is
// neutral; each point above adds 20%.
func (p *Pricer) IndustryAdjustedPricing(basePrice float64, industry string, callComplexity float64) (*types.IndustryPricing, error) {
	profile, err := p.catalog.IndustryProfile(industry)
	if err != nil {
		return nil, err
	}
	if basePrice < 0 {
		return nil, errors.InvalidArgumentf("base price must be non-negative, got %f", basePrice)
	}

	complexityMultiplier := 1.0 + (callComplexity-1.0)*0.2
	complianceCost := float64(len(profile.ComplianceRequirements)) * costPerComplianceRequirement
	featurePremium := float64(len(profile.SpecializedFeatures)) * premiumPerSpecializedFeature

	return &types.IndustryPricing{
		BasePrice:              types.Round2(basePrice),
		AdjustedPrice:          types.Round2(basePrice * profile.PriceMultiplier * complexityMultiplier),
		IndustryMultiplier:     profile.PriceMultiplier,
		ComplexityMultiplier:   complexityMultiplier,
		ComplianceCost:         complianceCost,
		FeaturePremium:         featurePremium,
		TotalMonthlyPremium:    types.Round2(complianceCost + featurePremium),
		SpecializedFeatures:    profile.SpecializedFeatures,
		ComplianceRequirements: profile.ComplianceRequirements,
	}, nil
}

// DiscountQuote prices an annual subscription under stacked volume and
// term discounts
func (p *Pricer) DiscountQuote(baseMonthlyPrice float64, annualCallVolume, contractMonths int) (*types.DiscountQuote, error) {
	if baseMonthlyPrice < 0 {
		return nil, errors.InvalidArgumentf("base price must be non-negative, got %f", baseMonthlyPrice)
	}
	if contractMonths <= 0 {
		return nil, errors.InvalidArgumentf("contract months must be positive, got %d", contractMonths)
	}

	disc := p.catalog.Discounts.Combined(annualCallVolume, contractMonths)

	baseAnnual := baseMonthlyPrice * 12
	discountedAnnual := baseAnnual * (1 - disc.Combined)
	annualSavings := baseAnnual - discountedAnnual

	return &types.DiscountQuote{
		Discount:              disc,
		BaseAnnualPrice:       types.Round2(baseAnnual),
		DiscountedAnnualPrice: types.Round2(discountedAnnual),
		AnnualSavings:         types.Round2(annualSavings),
		TotalContractSavings:  types.Round2(annualSavings * float64(contractMonths) / 12),
	}, nil
}
