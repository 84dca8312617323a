// Package types - ROI projection value objects
package types

// ScenarioAssumptions are operational improvement assumptions, each in [0,1]
type ScenarioAssumptions struct {
	// EfficiencyGain is the fractional efficiency improvement
	EfficiencyGain float64 `json:"efficiency_gain" hcl:"efficiency_gain"`

	// QualityImprovement is the fractional quality improvement
	QualityImprovement float64 `json:"quality_improvement" hcl:"quality_improvement"`

	// ConversionBoost is the fractional conversion improvement
	ConversionBoost float64 `json:"conversion_boost" hcl:"conversion_boost"`
}

// ScenarioMultipliers scale the savings streams, each in [0,1]
type ScenarioMultipliers struct {
	// CostReduction scales direct cost savings
	CostReduction float64 `json:"cost_reduction" hcl:"cost_reduction"`

	// RevenueIncrease scales industry benefit streams
	RevenueIncrease float64 `json:"revenue_increase" hcl:"revenue_increase"`

	// ProductivityGain scales productivity benefits
	ProductivityGain float64 `json:"productivity_gain" hcl:"productivity_gain"`
}

// ROIScenario is a named projection scenario.
// Exactly three exist (conservative, moderate, aggressive); selection
// is by case-insensitive name and an unknown name is an error.
type ROIScenario struct {
	// Name is the scenario identifier
	Name ScenarioName `json:"name"`

	// Description explains the scenario posture
	Description string `json:"description"`

	// Assumptions are the operational improvement assumptions
	Assumptions ScenarioAssumptions `json:"assumptions"`

	// Multipliers scale the savings streams
	Multipliers ScenarioMultipliers `json:"multipliers"`
}

// SavingsStream is one benefit stream in monthly/annual/five-year terms
type SavingsStream struct {
	// Monthly is the monthly benefit
	Monthly float64 `json:"monthly"`

	// Annual is Monthly x 12
	Annual float64 `json:"annual"`

	// FiveYear is Annual x 5
	FiveYear float64 `json:"five_year"`

	// Categories splits the stream by source
	Categories map[string]float64 `json:"categories"`
}

// CashFlowProjection is the 60-month cash flow series.
// Cumulative is seeded at -setup fee; BreakEvenMonth is the first
// 1-indexed month where the running total crosses above zero, or nil
// if it never does within the horizon.
type CashFlowProjection struct {
	// MonthlyFlows holds the signed net flow per month
	MonthlyFlows []float64 `json:"monthly_flows"`

	// Cumulative is the running total at the end of the horizon
	Cumulative float64 `json:"cumulative"`

	// BreakEvenMonth is the first month with positive cumulative flow
	BreakEvenMonth *int `json:"break_even_month"`
}

// ROISummary holds the headline ROI metrics
type ROISummary struct {
	// TotalAnnualSavings sums all benefit streams annually
	TotalAnnualSavings float64 `json:"total_annual_savings"`

	// ROIPercentage is total net return over setup fee
	ROIPercentage float64 `json:"roi_percentage"`

	// PaybackPeriodMonths mirrors the projection break-even month
	PaybackPeriodMonths *int `json:"payback_period_months"`

	// NPV is the net present value at a 10% annual discount rate
	NPV float64 `json:"npv"`

	// IRR is a simplified internal-rate-of-return approximation,
	// as a percentage. It is not a root-finding IRR solve.
	IRR float64 `json:"irr"`
}

// ScenarioRisk labels the three risk dimensions for a scenario
type ScenarioRisk struct {
	// ImplementationRisk is the rollout risk
	ImplementationRisk RiskLevel `json:"implementation_risk"`

	// AdoptionRisk is the user adoption risk
	AdoptionRisk RiskLevel `json:"adoption_risk"`

	// PerformanceRisk is the benefit realization risk
	PerformanceRisk RiskLevel `json:"performance_risk"`
}

// ScenarioAnalysis echoes the scenario used plus its risk labels
type ScenarioAnalysis struct {
	// Name is the scenario display name
	Name string `json:"name"`

	// Description explains the scenario posture
	Description string `json:"description"`

	// Assumptions are the scenario assumptions
	Assumptions ScenarioAssumptions `json:"assumptions"`

	// RiskFactors are the static per-scenario risk labels
	RiskFactors ScenarioRisk `json:"risk_factors"`
}

// ROIResult is the full projection output
type ROIResult struct {
	// Summary holds headline metrics
	Summary ROISummary `json:"summary"`

	// BaseSavings is the direct cost reduction stream
	BaseSavings SavingsStream `json:"base_savings"`

	// OperationalBenefits is the productivity/quality/conversion stream
	OperationalBenefits SavingsStream `json:"operational_benefits"`

	// IndustryBenefits is the vertical-specific stream
	IndustryBenefits SavingsStream `json:"industry_benefits"`

	// Projections is the monthly cash flow series
	Projections CashFlowProjection `json:"projections"`

	// ScenarioAnalysis echoes the scenario and its risks
	ScenarioAnalysis ScenarioAnalysis `json:"scenario_analysis"`
}

// OperationalMetrics are the prospect's current operating inputs
type OperationalMetrics struct {
	// CallsPerMonth is the monthly call volume
	CallsPerMonth int `json:"calls_per_month"`

	// NumAgents is the current agent headcount
	NumAgents int `json:"num_agents"`
}

// TierRecommendation is the tier recommender output.
// When no tier covers the requested volume, CustomEnterprise is set and
// the numeric fields are absent; that is an expected business outcome,
// not a fault.
type TierRecommendation struct {
	// CustomEnterprise marks the no-qualifying-tier sentinel
	CustomEnterprise bool `json:"custom_enterprise"`

	// Message explains the sentinel outcome
	Message string `json:"message,omitempty"`

	// Tier is the recommended tier (nil for the sentinel)
	Tier *SubscriptionTier `json:"recommendation,omitempty"`

	// MonthlySavings is current cost minus tier price
	MonthlySavings float64 `json:"monthly_savings,omitempty"`

	// AnnualSavings is MonthlySavings x 12
	AnnualSavings float64 `json:"annual_savings,omitempty"`

	// ROIMonths is setup fee over monthly savings; nil when monthly
	// savings are not positive (payback undefined, never negative)
	ROIMonths *float64 `json:"roi_months,omitempty"`

	// CostReductionPercentage is MonthlySavings over current cost x 100
	CostReductionPercentage float64 `json:"cost_reduction_percentage,omitempty"`
}
