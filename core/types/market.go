// Package types - Market penetration value objects
package types

// MarketConditions describe the macro environment for a market.
// Each factor is conceptually on a [0,1] scale. The scale is a
// documented contract, not hard-enforced.
type MarketConditions struct {
	// EconomicGrowth is the macro growth factor
	EconomicGrowth float64 `json:"economic_growth"`

	// IndustryGrowth is the vertical growth factor
	IndustryGrowth float64 `json:"industry_growth"`

	// TechnologyAdoptionRate is the tech receptiveness factor
	TechnologyAdoptionRate float64 `json:"technology_adoption_rate"`

	// RegulatoryEnvironment is 1 when most favorable
	RegulatoryEnvironment float64 `json:"regulatory_environment"`

	// MarketConsolidation is 1 when most consolidated
	MarketConsolidation float64 `json:"market_consolidation"`
}

// CompetitorData describes one incumbent in a market.
// Callers are responsible for keeping the market shares of a
// competitor set at or below 1 in total; the engine does not enforce it.
type CompetitorData struct {
	// Name is the competitor name
	Name string `json:"name"`

	// MarketShare is the held share in [0,1]
	MarketShare float64 `json:"market_share"`

	// GrowthRate is the competitor's growth trajectory
	GrowthRate float64 `json:"growth_rate"`

	// CustomerSatisfaction is in [0,1]
	CustomerSatisfaction float64 `json:"customer_satisfaction"`

	// ChurnRate is in [0,1]
	ChurnRate float64 `json:"churn_rate"`
}

// PenetrationFactors describe how hard a market is to enter
type PenetrationFactors struct {
	// PriceSensitivity is in [0,1]
	PriceSensitivity float64 `json:"price_sensitivity"`

	// TechnologyReadiness is in [0,1]
	TechnologyReadiness float64 `json:"technology_readiness"`

	// RegulatoryCompliance is in [0,1]
	RegulatoryCompliance float64 `json:"regulatory_compliance"`

	// DecisionCycleMonths is the typical buying cycle (> 0)
	DecisionCycleMonths int `json:"decision_cycle_months"`

	// IntegrationComplexity is in [0,1]
	IntegrationComplexity float64 `json:"integration_complexity"`
}

// CompetitorImpact summarizes the competitive landscape effect
type CompetitorImpact struct {
	// MarketConcentration is the summed incumbent share
	MarketConcentration float64 `json:"market_concentration"`

	// GrowthTrajectory is the share-weighted incumbent growth
	GrowthTrajectory float64 `json:"growth_trajectory"`

	// SatisfactionGap is 1 minus share-weighted satisfaction
	SatisfactionGap float64 `json:"satisfaction_gap"`

	// ChurnOpportunity is the share-weighted incumbent churn
	ChurnOpportunity float64 `json:"churn_opportunity"`

	// MonthlyImpact is the time-varying churn opportunity, compounded
	// by the incumbent growth trajectory
	MonthlyImpact []float64 `json:"monthly_impact"`
}

// ConversionProbabilities is the stage funnel applied to the
// industry/factor-adjusted base conversion rate
type ConversionProbabilities struct {
	InitialContact     float64 `json:"initial_contact"`
	DemoBooking        float64 `json:"demo_booking"`
	DemoCompletion     float64 `json:"demo_completion"`
	ProposalAcceptance float64 `json:"proposal_acceptance"`
	ContractSigning    float64 `json:"contract_signing"`
}

// AdoptionPhaseResult records when the adjusted curve crosses each
// cumulative adoption threshold
type AdoptionPhaseResult struct {
	// PhaseTransitions maps phase to the first 1-indexed month at which
	// cumulative penetration reaches the phase's cumulative threshold;
	// nil when the threshold is never reached in the timeframe
	PhaseTransitions map[AdoptionPhase]*int `json:"phase_transitions"`

	// CurrentPhase names the phase of the final cumulative penetration
	CurrentPhase AdoptionPhase `json:"current_phase"`
}

// RiskAssessment aggregates penetration risk
type RiskAssessment struct {
	// DetailedRisks maps risk category to its sub-factor scores
	DetailedRisks map[string]map[string]float64 `json:"detailed_risks"`

	// RiskScores averages each category
	RiskScores map[string]float64 `json:"risk_scores"`

	// OverallRiskScore averages the category scores
	OverallRiskScore float64 `json:"overall_risk_score"`
}

// PenetrationResult is the market penetration analysis output
type PenetrationResult struct {
	// MonthlyPenetration is the market-adjusted adoption curve
	MonthlyPenetration []float64 `json:"monthly_penetration"`

	// TotalPenetration is the summed adjusted curve
	TotalPenetration float64 `json:"total_penetration"`

	// BaseRate is the clamped base penetration rate
	BaseRate float64 `json:"base_rate"`

	// CompetitorImpact summarizes the landscape effect
	CompetitorImpact CompetitorImpact `json:"competitor_impact"`

	// ConversionProbabilities is the stage funnel
	ConversionProbabilities ConversionProbabilities `json:"conversion_probabilities"`

	// AdoptionPhases records curve threshold crossings
	AdoptionPhases AdoptionPhaseResult `json:"adoption_phases"`

	// RiskFactors aggregates penetration risk
	RiskFactors RiskAssessment `json:"risk_factors"`

	// OpportunityScore is the 0-100 weighted opportunity blend
	OpportunityScore float64 `json:"opportunity_score"`
}
