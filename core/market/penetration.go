// Package market forecasts adoption and opportunity for a market
// vertical using a modified Bass diffusion model.
package market

import (
	"math"

	"sales-economics/core/catalog"
	"sales-economics/core/types"
	"sales-economics/internal/errors"
)

const (
	// baseRateCoefficient anchors the base penetration blend
	baseRateCoefficient = 0.3

	// minBaseRate / maxBaseRate clamp the base penetration rate
	minBaseRate = 0.05
	maxBaseRate = 0.8

	// innovationCoefficient and imitationCoefficient parameterize the
	// Bass recurrence before industry speed scaling
	innovationCoefficient = 0.03
	imitationCoefficient  = 0.4

	// baseConversionRate is the unadjusted funnel entry rate
	baseConversionRate = 0.2
)

// cumulativeThresholds are the canonical adoption-curve thresholds as
// cumulative penetration levels, in phase order
var cumulativeThresholds = []float64{0.025, 0.16, 0.50, 0.84, 1.0}

// funnelStages applies each stage factor to the adjusted base rate
var funnelStages = struct {
	demoBooking, demoCompletion, proposalAcceptance, contractSigning float64
}{0.7, 0.8, 0.6, 0.5}

// Analyzer computes market penetration forecasts against a catalog
type Analyzer struct {
	catalog *catalog.Catalog
}

// New creates an analyzer bound to a catalog
func New(cat *catalog.Catalog) *Analyzer {
	return &Analyzer{catalog: cat}
}

// AnalyzePenetration forecasts the adoption curve, phase transitions,
// conversion funnel, risk and opportunity for a market over the given
// timeframe. The industry adoption speed defaults to 1.0 for verticals
// missing from the catalog.
func (a *Analyzer) AnalyzePenetration(
	industry string,
	conditions types.MarketConditions,
	competitors []types.CompetitorData,
	factors types.PenetrationFactors,
	timeframeMonths int,
) (*types.PenetrationResult, error) {
	if timeframeMonths <= 0 {
		return nil, errors.InvalidArgumentf("timeframe must be positive, got %d months", timeframeMonths)
	}
	if factors.DecisionCycleMonths <= 0 {
		return nil, errors.InvalidArgumentf("decision cycle must be positive, got %d months", factors.DecisionCycleMonths)
	}

	baseRate := basePenetrationRate(conditions, competitors, factors)
	speed := a.catalog.AdoptionSpeed(industry)

	baseCurve := diffusionCurve(baseRate, speed, timeframeMonths)
	impact := competitorImpact(competitors, timeframeMonths)
	adjusted := adjustForConditions(baseCurve, conditions, impact)

	conversion := a.conversionProbabilities(industry, factors, conditions)

	var total float64
	rounded := make([]float64, len(adjusted))
	for i, v := range adjusted {
		total += v
		rounded[i] = types.Round4(v)
	}

	return &types.PenetrationResult{
		MonthlyPenetration:      rounded,
		TotalPenetration:        types.Round4(total),
		BaseRate:                types.Round4(baseRate),
		CompetitorImpact:        impact,
		ConversionProbabilities: conversion,
		AdoptionPhases:          adoptionPhases(adjusted),
		RiskFactors:             riskAssessment(conditions, factors),
		OpportunityScore:        opportunityScore(conditions, impact, conversion),
	}, nil
}

// basePenetrationRate blends market conditions, competitive pressure
// and entry factors, clamped to [0.05, 0.8]
func basePenetrationRate(conditions types.MarketConditions, competitors []types.CompetitorData, factors types.PenetrationFactors) float64 {
	marketImpact := conditions.EconomicGrowth*0.2 +
		conditions.IndustryGrowth*0.3 +
		conditions.TechnologyAdoptionRate*0.3 +
		conditions.RegulatoryEnvironment*0.1 +
		(1-conditions.MarketConsolidation)*0.1

	var pressure float64
	for _, c := range competitors {
		pressure += c.MarketShare
	}
	// Incumbent share suppresses entry but never fully closes it
	competitiveImpact := 1 - pressure*0.7

	factorImpact := (1-factors.PriceSensitivity)*0.3 +
		factors.TechnologyReadiness*0.3 +
		factors.RegulatoryCompliance*0.2 +
		(1-factors.IntegrationComplexity)*0.2

	rate := baseRateCoefficient * marketImpact * competitiveImpact * factorImpact
	return math.Min(maxBaseRate, math.Max(minBaseRate, rate))
}

// diffusionCurve runs the modified Bass recurrence. This is a discrete
// sequential recurrence: each month's adoption feeds the next month's
// cumulative term.
func diffusionCurve(baseRate, industrySpeed float64, months int) []float64 {
	p := innovationCoefficient * industrySpeed
	q := imitationCoefficient * industrySpeed

	curve := make([]float64, 0, months)
	cumulative := 0.0
	for t := 0; t < months; t++ {
		adoption := baseRate * (p + q*cumulative) * (1 - cumulative)
		if adoption < 0 {
			adoption = 0
		}
		curve = append(curve, adoption)
		cumulative += adoption
	}
	return curve
}

func competitorImpact(competitors []types.CompetitorData, months int) types.CompetitorImpact {
	var totalShare, weightedGrowth, weightedSatisfaction, churnOpportunity float64
	for _, c := range competitors {
		totalShare += c.MarketShare
		weightedGrowth += c.MarketShare * c.GrowthRate
		weightedSatisfaction += c.MarketShare * c.CustomerSatisfaction
		churnOpportunity += c.MarketShare * c.ChurnRate
	}

	avgSatisfaction := 0.0
	if totalShare > 0 {
		avgSatisfaction = weightedSatisfaction / totalShare
	}

	monthly := make([]float64, 0, months)
	for m := 0; m < months; m++ {
		monthly = append(monthly, types.Round4(churnOpportunity*math.Pow(1+weightedGrowth, float64(m)/12)))
	}

	return types.CompetitorImpact{
		MarketConcentration: totalShare,
		GrowthTrajectory:    weightedGrowth,
		SatisfactionGap:     1 - avgSatisfaction,
		ChurnOpportunity:    churnOpportunity,
		MonthlyImpact:       monthly,
	}
}

func adjustForConditions(baseCurve []float64, conditions types.MarketConditions, impact types.CompetitorImpact) []float64 {
	economicFactor := 1 + conditions.EconomicGrowth*0.5
	industryFactor := 1 + conditions.IndustryGrowth*0.3
	techFactor := 1 + conditions.TechnologyAdoptionRate*0.4

	adjusted := make([]float64, 0, len(baseCurve))
	for month, base := range baseCurve {
		competitiveFactor := 1 + impact.MonthlyImpact[month]
		adjusted = append(adjusted, base*economicFactor*industryFactor*techFactor*competitiveFactor)
	}
	return adjusted
}

func (a *Analyzer) conversionProbabilities(industry string, factors types.PenetrationFactors, conditions types.MarketConditions) types.ConversionProbabilities {
	industryFactor := a.catalog.AdoptionSpeed(industry)
	priceImpact := 1 - factors.PriceSensitivity*0.5
	techImpact := 1 + factors.TechnologyReadiness*0.3
	marketImpact := 1 + conditions.IndustryGrowth*0.4

	adjusted := baseConversionRate * industryFactor * priceImpact * techImpact * marketImpact

	return types.ConversionProbabilities{
		InitialContact:     types.Round3(adjusted),
		DemoBooking:        types.Round3(adjusted * funnelStages.demoBooking),
		DemoCompletion:     types.Round3(adjusted * funnelStages.demoCompletion),
		ProposalAcceptance: types.Round3(adjusted * funnelStages.proposalAcceptance),
		ContractSigning:    types.Round3(adjusted * funnelStages.contractSigning),
	}
}

// adoptionPhases walks the adjusted curve and records the first month
// at which cumulative penetration reaches each cumulative phase
// threshold
func adoptionPhases(curve []float64) types.AdoptionPhaseResult {
	transitions := make(map[types.AdoptionPhase]*int, len(types.AdoptionPhases))
	for _, phase := range types.AdoptionPhases {
		transitions[phase] = nil
	}

	cumulative := 0.0
	for month, rate := range curve {
		cumulative += rate
		for i, phase := range types.AdoptionPhases {
			if transitions[phase] == nil && cumulative >= cumulativeThresholds[i] {
				m := month + 1
				transitions[phase] = &m
			}
		}
	}

	return types.AdoptionPhaseResult{
		PhaseTransitions: transitions,
		CurrentPhase:     CurrentPhase(cumulative),
	}
}

// CurrentPhase names the adoption phase for a cumulative penetration
// level. Penetration past the last threshold is laggards.
func CurrentPhase(cumulativePenetration float64) types.AdoptionPhase {
	for i, phase := range types.AdoptionPhases {
		if cumulativePenetration <= cumulativeThresholds[i] {
			return phase
		}
	}
	return types.PhaseLaggards
}
