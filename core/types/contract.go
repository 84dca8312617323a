// Package types - Contract optimization and pricing value objects
package types

// CombinedDiscount is the outcome of stacking volume and term discounts.
// Stacking is multiplicative: combined = 1 - (1-volume)(1-term), which
// is always at least max(volume, term) for fractions below 1.
type CombinedDiscount struct {
	// VolumeDiscount is the highest qualifying volume discount
	VolumeDiscount float64 `json:"volume_discount"`

	// TermDiscount is the highest qualifying term discount
	TermDiscount float64 `json:"term_discount"`

	// Combined is the multiplicatively stacked fraction
	Combined float64 `json:"combined_discount"`
}

// DiscountQuote prices an annual subscription under combined discounts
type DiscountQuote struct {
	// Discount is the stacked discount applied
	Discount CombinedDiscount `json:"discount"`

	// BaseAnnualPrice is 12 x the undiscounted monthly price
	BaseAnnualPrice float64 `json:"base_annual_price"`

	// DiscountedAnnualPrice applies the combined discount
	DiscountedAnnualPrice float64 `json:"discounted_annual_price"`

	// AnnualSavings is base minus discounted
	AnnualSavings float64 `json:"annual_savings"`

	// TotalContractSavings scales annual savings to the term
	TotalContractSavings float64 `json:"total_contract_savings"`
}

// ContractCandidate is one evaluated (tier, term) pair
type ContractCandidate struct {
	// TierName is the candidate tier
	TierName string `json:"tier_name"`

	// TermMonths is the candidate term
	TermMonths int `json:"term_months"`

	// MonthlyCost is the discounted monthly price
	MonthlyCost float64 `json:"monthly_cost"`

	// TotalCost is monthly x term plus setup fee
	TotalCost float64 `json:"total_cost"`

	// ValueScore ranks the candidate
	ValueScore float64 `json:"value_score"`
}

// OptimizationResult is the contract optimizer output.
// Feasible is false when no (tier, term) pair survives the budget
// constraint; that is a normal outcome, not an error.
type OptimizationResult struct {
	// Feasible marks whether any candidate satisfied the constraints
	Feasible bool `json:"feasible"`

	// Message explains an infeasible outcome
	Message string `json:"message,omitempty"`

	// RecommendedTier is the winning tier name
	RecommendedTier string `json:"recommended_tier,omitempty"`

	// RecommendedTermMonths is the winning term
	RecommendedTermMonths int `json:"recommended_term_months,omitempty"`

	// MonthlyCost is the winning discounted monthly price
	MonthlyCost float64 `json:"monthly_cost,omitempty"`

	// TotalContractValue is the winning total cost
	TotalContractValue float64 `json:"total_contract_value,omitempty"`

	// ValueScore is the winning score
	ValueScore float64 `json:"value_score,omitempty"`

	// Discount is the stacked discount behind the winner
	Discount CombinedDiscount `json:"discount,omitempty"`

	// Features lists the winning tier's capabilities
	Features []string `json:"features,omitempty"`

	// CostBreakdown prices the winner including overages
	CostBreakdown *SubscriptionCost `json:"cost_breakdown,omitempty"`

	// ROIPeriodMonths estimates months to recoup the total cost
	ROIPeriodMonths int `json:"roi_period_months,omitempty"`
}

// SubscriptionCost prices a tier over a term including overages
type SubscriptionCost struct {
	// BaseMonthlyFee is the tier's monthly price
	BaseMonthlyFee float64 `json:"base_monthly_fee"`

	// SetupFee is the one-time setup cost
	SetupFee float64 `json:"setup_fee"`

	// EstimatedMonthlyOverage prices calls above the tier ceiling
	EstimatedMonthlyOverage float64 `json:"estimated_monthly_overage"`

	// TotalMonthlyCost is base plus overage
	TotalMonthlyCost float64 `json:"total_monthly_cost"`

	// TotalContractValue is monthly x duration plus setup
	TotalContractValue float64 `json:"total_contract_value"`
}

// IndustryPricing adjusts a base price for a vertical
type IndustryPricing struct {
	// BasePrice is the unadjusted price
	BasePrice float64 `json:"base_price"`

	// AdjustedPrice applies industry and complexity multipliers
	AdjustedPrice float64 `json:"adjusted_price"`

	// IndustryMultiplier is the vertical's price multiplier
	IndustryMultiplier float64 `json:"industry_multiplier"`

	// ComplexityMultiplier scales for call complexity
	ComplexityMultiplier float64 `json:"complexity_multiplier"`

	// ComplianceCost is $100 per compliance requirement
	ComplianceCost float64 `json:"compliance_cost"`

	// FeaturePremium is $50 per specialized feature
	FeaturePremium float64 `json:"feature_premium"`

	// TotalMonthlyPremium is compliance plus feature premium
	TotalMonthlyPremium float64 `json:"total_monthly_premium"`

	// SpecializedFeatures echoes the vertical's feature list
	SpecializedFeatures []string `json:"specialized_features"`

	// ComplianceRequirements echoes the vertical's frameworks
	ComplianceRequirements []string `json:"compliance_requirements"`
}

// LicenseCost prices an enterprise license
type LicenseCost struct {
	// MonthlyBaseFee is the license base fee
	MonthlyBaseFee float64 `json:"monthly_base_fee"`

	// IncludedLocations is the location ceiling
	IncludedLocations int `json:"included_locations"`

	// IncludedCalls is the aggregate call ceiling
	IncludedCalls int `json:"included_calls"`

	// SupportLevel is the included support tier
	SupportLevel string `json:"support_level"`

	// CustomDevHours is the included engineering allotment
	CustomDevHours int `json:"custom_dev_hours"`

	// Features lists included capabilities
	Features []string `json:"features"`
}

// ExclusivityQuote prices territorial exclusivity
type ExclusivityQuote struct {
	// Level is the exclusivity scope
	Level ExclusivityLevel `json:"level"`

	// Territory is the named territory
	Territory string `json:"territory"`

	// DurationMonths is the exclusivity term
	DurationMonths int `json:"duration_months"`

	// MonthlyFee is the scaled monthly fee
	MonthlyFee float64 `json:"monthly_fee"`

	// TotalCost is MonthlyFee x DurationMonths
	TotalCost float64 `json:"total_cost"`
}

// BuyoutValuation values a contract buyout for market expansion
type BuyoutValuation struct {
	// BaseContractValue is the remaining contract value
	BaseContractValue float64 `json:"base_contract_value"`

	// FutureValue is annual recurring revenue at the revenue multiple
	FutureValue float64 `json:"future_value"`

	// TermMultiplier scales by remaining term in years (min 1)
	TermMultiplier float64 `json:"term_multiplier"`

	// RevenueMultiple is 4x to 6x, scaled by penetration
	RevenueMultiple float64 `json:"revenue_multiple"`

	// TotalBuyoutValue is the combined valuation
	TotalBuyoutValue float64 `json:"total_buyout_value"`
}

// MarketSizeResult projects the opportunity in a market
type MarketSizeResult struct {
	// TotalMarketSize is the industry-adjusted market value
	TotalMarketSize float64 `json:"total_market_size"`

	// ServiceableMarket applies the penetration rate
	ServiceableMarket float64 `json:"serviceable_market"`

	// Year1Potential is the first-year opportunity
	Year1Potential float64 `json:"year_1_potential"`

	// Year3Potential compounds growth over three years
	Year3Potential float64 `json:"year_3_potential"`

	// Year5Potential compounds growth over five years
	Year5Potential float64 `json:"year_5_potential"`

	// GrowthRate echoes the industry growth rate
	GrowthRate float64 `json:"growth_rate"`

	// CompetitionIntensity echoes the industry competition level
	CompetitionIntensity float64 `json:"competition_intensity"`

	// MarketMaturity echoes the industry maturity
	MarketMaturity float64 `json:"market_maturity"`

	// PenetrationRate is the expected penetration fraction
	PenetrationRate float64 `json:"penetration_rate"`
}
