// Package types - Cost model value objects
package types

// DirectCosts are the per-agent monthly employment costs
type DirectCosts struct {
	// Salary is the monthly salary total across all agents
	Salary float64 `json:"salary"`

	// Benefits is the monthly benefits total (30% of salary)
	Benefits float64 `json:"benefits"`

	// Equipment is the monthly equipment and software total
	Equipment float64 `json:"equipment"`

	// Infrastructure is the monthly infrastructure total
	Infrastructure float64 `json:"infrastructure"`

	// Total is the direct cost total
	Total float64 `json:"total"`
}

// IndirectCosts are overhead costs that scale with agents and volume
type IndirectCosts struct {
	// Management assumes one manager per 10 agents
	Management float64 `json:"management"`

	// Training is the monthly training cost
	Training float64 `json:"training"`

	// QualityAssurance is the per-call QA cost
	QualityAssurance float64 `json:"quality_assurance"`

	// Administrative is the per-agent admin overhead
	Administrative float64 `json:"administrative"`

	// Total is the indirect cost total
	Total float64 `json:"total"`
}

// OpportunityCosts quantify the cost of missed and inefficient work
type OpportunityCosts struct {
	// MissedOpportunities values calls lost to limited utilization
	MissedOpportunities float64 `json:"missed_opportunities"`

	// Inefficiency is the per-agent inefficiency cost
	Inefficiency float64 `json:"inefficiency"`

	// ScalabilityLimitations is the per-call cost of limited scaling
	ScalabilityLimitations float64 `json:"scalability_limitations"`

	// Total is the opportunity cost total
	Total float64 `json:"total"`
}

// IndustryCosts are vertical-specific cost items.
// An industry without catalog entries contributes zero; that fallback
// is intentional and part of the contract.
type IndustryCosts struct {
	// Items maps cost item name to monthly amount
	Items map[string]float64 `json:"items,omitempty"`

	// Total is the industry-specific cost total
	Total float64 `json:"total"`
}

// CostBreakdown is the full total-cost-of-ownership decomposition.
// Invariant: every leaf amount >= 0 and TotalMonthlyCost is the sum
// of the four category totals.
type CostBreakdown struct {
	// TotalMonthlyCost is the sum of all categories
	TotalMonthlyCost float64 `json:"total_monthly_cost"`

	// CostPerCall is TotalMonthlyCost / calls per month
	CostPerCall float64 `json:"cost_per_call"`

	// Direct contains direct employment costs
	Direct DirectCosts `json:"direct_costs"`

	// Indirect contains overhead costs
	Indirect IndirectCosts `json:"indirect_costs"`

	// Opportunity contains opportunity costs
	Opportunity OpportunityCosts `json:"opportunity_costs"`

	// Industry contains vertical-specific costs
	Industry IndustryCosts `json:"industry_specific_costs"`
}

// Benchmark is a three-point cost-per-call reference scale
type Benchmark struct {
	// Low is the low reference point
	Low float64 `json:"low" hcl:"low"`

	// Average is the mid reference point
	Average float64 `json:"average" hcl:"average"`

	// High is the high reference point
	High float64 `json:"high" hcl:"high"`
}

// BenchmarkComparison positions a cost-per-call against the benchmark scale
type BenchmarkComparison struct {
	// Benchmark is the reference scale used
	Benchmark Benchmark `json:"industry_benchmarks"`

	// CurrentCost is the compared cost per call
	CurrentCost float64 `json:"current_cost"`

	// Percentile is the mean-rank percentile against the scale
	Percentile float64 `json:"percentile"`

	// Standing classifies the position (Low / Average / High)
	Standing CostStanding `json:"standing"`
}

// CompetitorBenchmark describes a competing solution in the catalog
type CompetitorBenchmark struct {
	// Key is the catalog identifier
	Key string `json:"key" hcl:"key,label"`

	// Name is the display name
	Name string `json:"name" hcl:"name"`

	// AvgCostPerCall is the competitor's typical cost per call
	AvgCostPerCall float64 `json:"avg_cost_per_call" hcl:"avg_cost_per_call"`

	// Features lists the competitor's capabilities
	Features []string `json:"features" hcl:"features"`

	// Limitations lists known gaps
	Limitations []string `json:"limitations" hcl:"limitations"`

	// MarketFocus is the competitor's target segment
	MarketFocus string `json:"market_focus" hcl:"market_focus"`

	// PricingModel describes how the competitor bills
	PricingModel string `json:"pricing_model" hcl:"pricing_model"`
}

// CompetitorComparison is the savings position against one competitor
type CompetitorComparison struct {
	// Name is the competitor display name
	Name string `json:"name"`

	// TheirCost is the competitor's cost per call
	TheirCost float64 `json:"their_cost"`

	// SavingsPercentage is (theirs - ours) / theirs * 100
	SavingsPercentage float64 `json:"savings_percentage"`

	// Features lists the competitor's capabilities
	Features []string `json:"features"`

	// Limitations lists known gaps
	Limitations []string `json:"limitations"`

	// MarketFocus is the competitor's target segment
	MarketFocus string `json:"market_focus"`
}

// TCOAnalysis bundles the cost breakdown with its comparisons
type TCOAnalysis struct {
	// Breakdown is the cost decomposition
	Breakdown CostBreakdown `json:"breakdown"`

	// Benchmarks positions the cost per call against the reference scale
	Benchmarks BenchmarkComparison `json:"benchmarks"`

	// CompetitiveAnalysis compares against the competitor catalog,
	// in catalog order
	CompetitiveAnalysis []CompetitorComparison `json:"competitive_analysis"`
}
