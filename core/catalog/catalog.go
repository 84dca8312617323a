// Package catalog provides the static configuration catalogs the
// engines compute against: subscription tiers, discount schedules,
// industry profiles, benchmarks, competitors and ROI scenarios.
//
// Catalogs are read-only after construction and are passed into engine
// constructors explicitly; nothing in this package mutates at runtime.
package catalog

import (
	"strings"

	"github.com/shopspring/decimal"

	"sales-economics/core/types"
	"sales-economics/internal/errors"
)

// CostBasis identifies what an industry cost item scales with
type CostBasis string

const (
	// BasisPerAgent scales the rate by agent headcount
	BasisPerAgent CostBasis = "per_agent"

	// BasisPerCall scales the rate by monthly call volume
	BasisPerCall CostBasis = "per_call"
)

// CostItem is one industry-specific monthly cost line
type CostItem struct {
	// Name identifies the cost line
	Name string `json:"name"`

	// Rate is the unit rate
	Rate float64 `json:"rate"`

	// Basis is what the rate scales with
	Basis CostBasis `json:"basis"`
}

// Catalog bundles every static table the engines depend on
type Catalog struct {
	// Tiers is the subscription tier catalog, ordered by MaxCalls
	// ascending. Order is part of the configuration contract: ties in
	// tier selection resolve to the first entry.
	Tiers []types.SubscriptionTier

	// Licenses is the enterprise license catalog, ordered by BaseFee
	Licenses []types.EnterpriseLicense

	// ExclusivityRates maps exclusivity scope to monthly base rate
	ExclusivityRates map[types.ExclusivityLevel]decimal.Decimal

	// Discounts holds the volume and term discount schedules
	Discounts types.DiscountTable

	// Industries maps vertical to its pricing profile
	Industries map[types.Industry]types.IndustryProfile

	// IndustryCostItems maps vertical to its TCO cost lines.
	// A missing vertical contributes zero cost; that fallback is a
	// documented business rule.
	IndustryCostItems map[types.Industry][]CostItem

	// IndustryBenefitFactors maps vertical to its ROI benefit weights
	IndustryBenefitFactors map[types.Industry]map[string]float64

	// AdoptionSpeeds maps vertical to its adoption speed multiplier;
	// unlisted verticals default to 1.0
	AdoptionSpeeds map[types.Industry]float64

	// MarketMetrics maps vertical to market sizing inputs
	MarketMetrics map[types.Industry]types.MarketMetrics

	// CostPerCallBenchmark is the three-point benchmark scale
	CostPerCallBenchmark types.Benchmark

	// Competitors is the competitor benchmark catalog, in catalog order
	Competitors []types.CompetitorBenchmark

	// Scenarios is the ROI scenario catalog
	Scenarios []types.ROIScenario

	// ScenarioRisks maps scenario name to its static risk labels
	ScenarioRisks map[types.ScenarioName]types.ScenarioRisk
}

// Tier finds a subscription tier by case-insensitive name
func (c *Catalog) Tier(name string) (*types.SubscriptionTier, error) {
	for i := range c.Tiers {
		if strings.EqualFold(c.Tiers[i].Name, name) {
			return &c.Tiers[i], nil
		}
	}
	return nil, errors.NotFound("subscription tier", name)
}

// License finds an enterprise license by case-insensitive name
func (c *Catalog) License(name string) (*types.EnterpriseLicense, error) {
	for i := range c.Licenses {
		if strings.EqualFold(c.Licenses[i].Name, name) {
			return &c.Licenses[i], nil
		}
	}
	return nil, errors.NotFound("enterprise license", name)
}

// Scenario finds an ROI scenario by case-insensitive name.
// Unknown names are an error, never a silent default.
func (c *Catalog) Scenario(name string) (*types.ROIScenario, error) {
	want := types.NormalizeScenario(name)
	for i := range c.Scenarios {
		if c.Scenarios[i].Name == want {
			return &c.Scenarios[i], nil
		}
	}
	return nil, errors.NotFound("roi scenario", name)
}

// IndustryProfile finds the pricing profile for a vertical.
// The profile is required by the optimizer and pricing calculators, so
// an unknown vertical is an error here.
func (c *Catalog) IndustryProfile(industry string) (*types.IndustryProfile, error) {
	key := types.NormalizeIndustry(industry)
	if p, ok := c.Industries[key]; ok {
		return &p, nil
	}
	return nil, errors.NotFound("industry profile", industry)
}

// AdoptionSpeed returns the adoption speed multiplier for a vertical,
// defaulting to 1.0 for unlisted verticals
func (c *Catalog) AdoptionSpeed(industry string) float64 {
	if s, ok := c.AdoptionSpeeds[types.NormalizeIndustry(industry)]; ok {
		return s
	}
	return 1.0
}

// ScenarioRisk returns the static risk labels for a scenario name,
// defaulting to the moderate labels
func (c *Catalog) ScenarioRisk(name types.ScenarioName) types.ScenarioRisk {
	if r, ok := c.ScenarioRisks[name]; ok {
		return r
	}
	return c.ScenarioRisks[types.ScenarioModerate]
}

// Validate checks the catalog invariants: tiers ordered by ascending
// MaxCalls with prices ascending alongside, positive ceilings, discount
// schedules ordered by ascending threshold with fractions in [0,1).
func (c *Catalog) Validate() error {
	if len(c.Tiers) == 0 {
		return errors.Config("tier catalog is empty", nil)
	}
	for i, tier := range c.Tiers {
		if tier.MaxCalls <= 0 {
			return errors.Config("tier "+tier.Name+" has non-positive max_calls", nil)
		}
		if tier.PricePerMonth.IsNegative() || tier.SetupFee.IsNegative() || tier.OverageRate.IsNegative() {
			return errors.Config("tier "+tier.Name+" has negative pricing", nil)
		}
		if tier.MinTermMonths < 1 {
			return errors.Config("tier "+tier.Name+" has min_term_months below 1", nil)
		}
		if i > 0 {
			prev := c.Tiers[i-1]
			if tier.MaxCalls <= prev.MaxCalls {
				return errors.Config("tier catalog is not ordered by ascending max_calls", nil)
			}
			if tier.PricePerMonth.LessThan(prev.PricePerMonth) {
				return errors.Config("higher capacity tier "+tier.Name+" is cheaper than "+prev.Name, nil)
			}
		}
	}
	if err := validateSchedule("volume", c.Discounts.Volume); err != nil {
		return err
	}
	if err := validateSchedule("term", c.Discounts.Term); err != nil {
		return err
	}
	return nil
}

func validateSchedule(name string, breaks []types.DiscountBreak) error {
	for i, b := range breaks {
		if b.Discount < 0 || b.Discount >= 1 {
			return errors.Config(name+" discount fraction outside [0,1)", nil)
		}
		if i > 0 && b.Threshold <= breaks[i-1].Threshold {
			return errors.Config(name+" discount schedule is not ordered by ascending threshold", nil)
		}
	}
	return nil
}
