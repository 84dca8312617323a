// Package roi produces scenario-based savings projections: benefit
// streams, a 60-month cash flow series, NPV, a simplified IRR and the
// break-even month.
package roi

import (
	"math"

	"sales-economics/core/catalog"
	"sales-economics/core/types"
)

const (
	// horizonMonths is the projection horizon
	horizonMonths = 60

	// annualDiscountRate is the NPV discount rate
	annualDiscountRate = 0.10

	// Per-call dollar values behind the operational benefit streams
	efficiencyValuePerCall = 2.0
	qualityValuePerCall    = 1.5
	conversionValuePerCall = 5.0
)

// Base savings category split of the monthly cost reduction
var baseSavingsSplit = []struct {
	name  string
	share float64
}{
	{"direct_labor", 0.6},
	{"overhead", 0.2},
	{"training", 0.1},
	{"other", 0.1},
}

// Projector computes ROI projections against a catalog
type Projector struct {
	catalog *catalog.Catalog
}

// New creates a projector bound to a catalog
func New(cat *catalog.Catalog) *Projector {
	return &Projector{catalog: cat}
}

// Project computes the comprehensive ROI for a prospect moving from
// their current costs to the selected tier under a named scenario.
// The scenario lookup is case-insensitive; an unknown name fails with
// a not-found error, never a silent default.
func (p *Projector) Project(
	currentCosts types.CostBreakdown,
	metrics types.OperationalMetrics,
	selectedTier types.SubscriptionTier,
	industry string,
	scenarioName string,
) (*types.ROIResult, error) {
	scenario, err := p.catalog.Scenario(scenarioName)
	if err != nil {
		return nil, err
	}

	base := baseSavings(currentCosts, scenario)
	operational := operationalBenefits(metrics, scenario)
	industryStream := p.industryBenefits(industry, currentCosts, scenario)

	projection := projectCashFlows(base, operational, industryStream, selectedTier)
	summary := roiMetrics(projection, selectedTier)
	summary.TotalAnnualSavings = types.Round2(base.Annual + operational.Annual + industryStream.Annual)

	return &types.ROIResult{
		Summary:             summary,
		BaseSavings:         base,
		OperationalBenefits: operational,
		IndustryBenefits:    industryStream,
		Projections:         projection,
		ScenarioAnalysis: types.ScenarioAnalysis{
			Name:        string(scenario.Name),
			Description: scenario.Description,
			Assumptions: scenario.Assumptions,
			RiskFactors: p.catalog.ScenarioRisk(scenario.Name),
		},
	}, nil
}

func stream(monthly float64, categories map[string]float64) types.SavingsStream {
	rounded := make(map[string]float64, len(categories))
	for k, v := range categories {
		rounded[k] = types.Round2(v)
	}
	return types.SavingsStream{
		Monthly:    types.Round2(monthly),
		Annual:     types.Round2(monthly * 12),
		FiveYear:   types.Round2(monthly * 12 * 5),
		Categories: rounded,
	}
}

func baseSavings(currentCosts types.CostBreakdown, scenario *types.ROIScenario) types.SavingsStream {
	reduction := currentCosts.TotalMonthlyCost * scenario.Multipliers.CostReduction

	categories := make(map[string]float64, len(baseSavingsSplit))
	for _, c := range baseSavingsSplit {
		categories[c.name] = reduction * c.share
	}
	return stream(reduction, categories)
}

func operationalBenefits(metrics types.OperationalMetrics, scenario *types.ROIScenario) types.SavingsStream {
	calls := float64(metrics.CallsPerMonth)

	productivity := calls * efficiencyValuePerCall * scenario.Assumptions.EfficiencyGain
	quality := calls * qualityValuePerCall * scenario.Assumptions.QualityImprovement
	conversion := calls * conversionValuePerCall * scenario.Assumptions.ConversionBoost

	return stream(productivity+quality+conversion, map[string]float64{
		"productivity": productivity,
		"quality":      quality,
		"conversion":   conversion,
	})
}

// industryBenefits applies the vertical's benefit factor table. An
// unlisted vertical produces an empty stream; the zero fallback is a
// documented business rule, matching the cost model's industry lookup.
func (p *Projector) industryBenefits(industry string, currentCosts types.CostBreakdown, scenario *types.ROIScenario) types.SavingsStream {
	factors := p.catalog.IndustryBenefitFactors[types.NormalizeIndustry(industry)]

	var monthly float64
	categories := make(map[string]float64, len(factors))
	for name, factor := range factors {
		amount := currentCosts.TotalMonthlyCost * factor * scenario.Multipliers.RevenueIncrease
		categories[name] = amount
		monthly += amount
	}
	return stream(monthly, categories)
}

// projectCashFlows builds the 60-month series. The cumulative total is
// seeded at minus the setup fee; the break-even month is the first
// 1-indexed month where the running total crosses above zero and is
// never revised once found.
func projectCashFlows(base, operational, industryStream types.SavingsStream, tier types.SubscriptionTier) types.CashFlowProjection {
	monthlyBenefit := base.Monthly + operational.Monthly + industryStream.Monthly
	monthlyCost := tier.PricePerMonth.InexactFloat64()
	setup := tier.SetupFee.InexactFloat64()

	flows := make([]float64, 0, horizonMonths)
	cumulative := -setup
	var breakEven *int

	for month := 1; month <= horizonMonths; month++ {
		net := monthlyBenefit - monthlyCost
		cumulative += net
		flows = append(flows, types.Round2(net))

		if breakEven == nil && cumulative > 0 {
			m := month
			breakEven = &m
		}
	}

	return types.CashFlowProjection{
		MonthlyFlows:   flows,
		Cumulative:     types.Round2(cumulative),
		BreakEvenMonth: breakEven,
	}
}

// roiMetrics derives NPV, the simplified IRR and the ROI percentage.
// The IRR is a crude linear approximation kept for report
// compatibility, not a root-finding internal-rate-of-return solve.
func roiMetrics(projection types.CashFlowProjection, tier types.SubscriptionTier) types.ROISummary {
	setup := tier.SetupFee.InexactFloat64()
	monthlyRate := math.Pow(1+annualDiscountRate, 1.0/12) - 1

	var npv, flowSum float64
	npv = -setup
	for i, flow := range projection.MonthlyFlows {
		npv += flow / math.Pow(1+monthlyRate, float64(i+1))
		flowSum += flow
	}

	summary := types.ROISummary{
		PaybackPeriodMonths: projection.BreakEvenMonth,
		NPV:                 types.Round2(npv),
	}
	if setup > 0 {
		summary.ROIPercentage = types.Round2((flowSum - setup) / setup * 100)
		summary.IRR = types.Round2((flowSum - setup) / setup / 5 * 100)
	}
	return summary
}
