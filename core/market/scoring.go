// Package market - Risk and opportunity scoring
package market

import "sales-economics/core/types"

// riskAssessment averages three risk categories, each itself the
// average of three sub-factors
func riskAssessment(conditions types.MarketConditions, factors types.PenetrationFactors) types.RiskAssessment {
	detailed := map[string]map[string]float64{
		"market_risks": {
			"economic_volatility":  1 - conditions.EconomicGrowth,
			"market_consolidation": conditions.MarketConsolidation,
			"regulatory_changes":   1 - conditions.RegulatoryEnvironment,
		},
		"adoption_risks": {
			"price_sensitivity":      factors.PriceSensitivity,
			"integration_complexity": factors.IntegrationComplexity,
			"technology_resistance":  1 - factors.TechnologyReadiness,
		},
		"competitive_risks": {
			"market_saturation":     conditions.MarketConsolidation,
			"price_pressure":        factors.PriceSensitivity,
			"technology_disruption": conditions.TechnologyAdoptionRate,
		},
	}

	scores := make(map[string]float64, len(detailed))
	var overall float64
	for category, subs := range detailed {
		var sum float64
		for _, v := range subs {
			sum += v
		}
		score := types.Round2(sum / float64(len(subs)))
		scores[category] = score
		overall += score
	}

	return types.RiskAssessment{
		DetailedRisks:    detailed,
		RiskScores:       scores,
		OverallRiskScore: types.Round2(overall / float64(len(scores))),
	}
}

// opportunityScore blends market, competitive and conversion sub-scores
// (40/30/30). Each sub-score is a weighted blend of [0,1] factors on a
// 0-100 scale.
func opportunityScore(conditions types.MarketConditions, impact types.CompetitorImpact, conversion types.ConversionProbabilities) float64 {
	marketScore := (conditions.EconomicGrowth*0.2 +
		conditions.IndustryGrowth*0.3 +
		conditions.TechnologyAdoptionRate*0.3 +
		conditions.RegulatoryEnvironment*0.2) * 100

	competitiveScore := (impact.SatisfactionGap*0.4 +
		impact.ChurnOpportunity*0.6) * 100

	conversionScore := (conversion.InitialContact*0.2 +
		conversion.DemoCompletion*0.3 +
		conversion.ContractSigning*0.5) * 100

	return types.Round1(marketScore*0.4 + competitiveScore*0.3 + conversionScore*0.3)
}
