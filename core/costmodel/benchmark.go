// Package costmodel - Benchmark and competitor positioning
package costmodel

import (
	"sales-economics/core/types"
)

// CompareBenchmark positions a cost per call against the three-point
// catalog benchmark. Standing uses the boundary rule: at or below the
// low point is Low, at or above the high point is High, else Average.
func (m *Model) CompareBenchmark(costPerCall float64) types.BenchmarkComparison {
	b := m.catalog.CostPerCallBenchmark

	return types.BenchmarkComparison{
		Benchmark:   b,
		CurrentCost: types.Round2(costPerCall),
		Percentile:  types.Round1(percentileOfScore([]float64{b.Low, b.Average, b.High}, costPerCall)),
		Standing:    standing(costPerCall, b),
	}
}

func standing(costPerCall float64, b types.Benchmark) types.CostStanding {
	switch {
	case costPerCall <= b.Low:
		return types.StandingLow
	case costPerCall >= b.High:
		return types.StandingHigh
	default:
		return types.StandingAverage
	}
}

// percentileOfScore is the mean rank rule: the average of the strict
// and weak percentile of the score within the reference points.
func percentileOfScore(points []float64, score float64) float64 {
	if len(points) == 0 {
		return 0
	}
	var below, atOrBelow int
	for _, p := range points {
		if p < score {
			below++
		}
		if p <= score {
			atOrBelow++
		}
	}
	return float64(below+atOrBelow) / 2 / float64(len(points)) * 100
}

// CompareCompetitors computes the savings position against every
// competitor in the catalog, in catalog order.
func (m *Model) CompareCompetitors(costPerCall float64) []types.CompetitorComparison {
	out := make([]types.CompetitorComparison, 0, len(m.catalog.Competitors))
	for _, c := range m.catalog.Competitors {
		savingsPct := (c.AvgCostPerCall - costPerCall) / c.AvgCostPerCall * 100
		out = append(out, types.CompetitorComparison{
			Name:              c.Name,
			TheirCost:         c.AvgCostPerCall,
			SavingsPercentage: types.Round1(savingsPct),
			Features:          c.Features,
			Limitations:       c.Limitations,
			MarketFocus:       c.MarketFocus,
		})
	}
	return out
}
