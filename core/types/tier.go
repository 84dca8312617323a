// Package types - Subscription and contract value objects
package types

import "github.com/shopspring/decimal"

// SubscriptionTier is a named subscription plan with a call-volume
// ceiling and pricing. The tier catalog is ordered by MaxCalls
// ascending and, by business convention, PricePerMonth ascends with it:
// higher capacity tiers are never cheaper.
type SubscriptionTier struct {
	// Name is the tier display name
	Name string `json:"name"`

	// MaxCalls is the monthly call ceiling
	MaxCalls int `json:"max_calls"`

	// PricePerMonth is the monthly subscription price
	PricePerMonth decimal.Decimal `json:"price_per_month"`

	// SetupFee is the one-time setup cost
	SetupFee decimal.Decimal `json:"setup_fee"`

	// Features lists included capabilities, in catalog order
	Features []string `json:"features"`

	// MinTermMonths is the shortest allowed contract term
	MinTermMonths int `json:"min_term_months"`

	// OverageRate is the per-call price above MaxCalls
	OverageRate decimal.Decimal `json:"overage_rate"`
}

// DiscountBreak is a single (threshold, discount) step.
// Lookup selects the highest qualifying threshold, not a cumulative
// accrual across steps.
type DiscountBreak struct {
	// Threshold is the qualifying quantity (annual calls or term months)
	Threshold int `json:"threshold" hcl:"threshold"`

	// Discount is the discount fraction in [0,1)
	Discount float64 `json:"discount" hcl:"discount"`
}

// DiscountTable holds the volume and term discount schedules,
// both ordered by ascending threshold
type DiscountTable struct {
	// Volume is keyed by annual call volume
	Volume []DiscountBreak `json:"volume"`

	// Term is keyed by contract term in months
	Term []DiscountBreak `json:"term"`
}

// IndustryProfile captures vertical-specific pricing characteristics
type IndustryProfile struct {
	// Industry is the profile identifier
	Industry Industry `json:"industry"`

	// PriceMultiplier scales base prices for the vertical
	PriceMultiplier float64 `json:"price_multiplier"`

	// CostMultiplier scales human-agent cost baselines
	CostMultiplier float64 `json:"cost_multiplier"`

	// ComplianceRequirements lists mandated frameworks
	ComplianceRequirements []string `json:"compliance_requirements"`

	// SpecializedFeatures lists vertical-specific capabilities
	SpecializedFeatures []string `json:"specialized_features"`

	// AvgCallDurationSeconds is the typical call length
	AvgCallDurationSeconds int `json:"avg_call_duration_seconds"`
}

// EnterpriseLicense is a multi-location license tier
type EnterpriseLicense struct {
	// Name is the license identifier (silver, gold, platinum)
	Name string `json:"name"`

	// BaseFee is the monthly base fee
	BaseFee decimal.Decimal `json:"base_fee"`

	// MaxLocations is the location ceiling
	MaxLocations int `json:"max_locations"`

	// MaxTotalCalls is the aggregate monthly call ceiling
	MaxTotalCalls int `json:"max_total_calls"`

	// Features lists included capabilities
	Features []string `json:"features"`

	// SupportLevel is the included support tier
	SupportLevel string `json:"support_level"`

	// CustomDevelopmentHours is the included engineering allotment
	CustomDevelopmentHours int `json:"custom_development_hours"`
}

// ExclusivityLevel is a territorial exclusivity scope
type ExclusivityLevel string

const (
	ExclusivityCity    ExclusivityLevel = "city"
	ExclusivityState   ExclusivityLevel = "state"
	ExclusivityRegion  ExclusivityLevel = "region"
	ExclusivityCountry ExclusivityLevel = "country"
	ExclusivityGlobal  ExclusivityLevel = "global"
)

// MarketMetrics are per-industry market sizing inputs
type MarketMetrics struct {
	// TotalAddressableMarket is the TAM in millions
	TotalAddressableMarket float64 `json:"total_addressable_market"`

	// MarketGrowthRate is the annual growth rate
	MarketGrowthRate float64 `json:"market_growth_rate"`

	// CompetitionIntensity is on a 0-1 scale
	CompetitionIntensity float64 `json:"competition_intensity"`

	// AverageDealSize is the typical contract value
	AverageDealSize float64 `json:"average_deal_size"`

	// CustomerAcquisitionCost is the typical CAC
	CustomerAcquisitionCost float64 `json:"customer_acquisition_cost"`

	// MarketMaturity is on a 0-1 scale
	MarketMaturity float64 `json:"market_maturity"`
}
