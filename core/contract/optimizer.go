// Package contract searches the tier x term space for the contract
// configuration maximizing a value score under an optional budget.
//
// The search space is the full catalog product (at most a few dozen
// candidates) and runs synchronously; selection is deterministic with
// ties resolved by minimum total cost, then catalog order.
package contract

import (
	"math"

	"sales-economics/core/catalog"
	"sales-economics/core/pricing"
	"sales-economics/core/types"
	"sales-economics/internal/errors"
)

const (
	// humanCostPerCall is the baseline human-agent cost per call
	// before industry adjustment
	humanCostPerCall = 8.0

	// aiCostPerCall is our per-call delivery cost
	aiCostPerCall = 0.50

	// Value score weights
	featureWeight      = 10.0
	termWeight         = 5.0
	volumeFitWeight    = 20.0
	industryFitWeight  = 15.0
	costEfficiencyBase = 1000.0
	costWeight         = 10.0
)

// Optimizer searches contract configurations against a catalog
type Optimizer struct {
	catalog *catalog.Catalog
	pricer  *pricing.Pricer
}

// New creates an optimizer bound to a catalog
func New(cat *catalog.Catalog) *Optimizer {
	return &Optimizer{
		catalog: cat,
		pricer:  pricing.New(cat),
	}
}

// Optimize evaluates every (tier, term) pair from the catalog with
// volume and term discounts stacked multiplicatively and returns the
// configuration with the highest value score.
//
// Pairs whose total cost exceeds a supplied budget are skipped; if none
// survive, the result is the explicit infeasible sentinel, not an
// error. A nil budget means unconstrained.
func (o *Optimizer) Optimize(estimatedCalls int, industry string, budgetConstraint *float64) (*types.OptimizationResult, error) {
	if estimatedCalls <= 0 {
		return nil, errors.InvalidArgumentf("estimated calls must be positive, got %d", estimatedCalls)
	}
	profile, err := o.catalog.IndustryProfile(industry)
	if err != nil {
		return nil, err
	}

	var (
		bestTier  *types.SubscriptionTier
		bestTerm  int
		bestScore float64
		minCost   = math.Inf(1)
		bestDisc  types.CombinedDiscount
	)

	annualCalls := estimatedCalls * 12
	for i := range o.catalog.Tiers {
		tierEntry := &o.catalog.Tiers[i]
		for _, termBreak := range o.catalog.Discounts.Term {
			term := termBreak.Threshold
			if term < tierEntry.MinTermMonths {
				continue
			}

			disc := o.catalog.Discounts.Combined(annualCalls, term)
			monthlyCost := tierEntry.PricePerMonth.InexactFloat64() * (1 - disc.Combined)
			totalCost := monthlyCost*float64(term) + tierEntry.SetupFee.InexactFloat64()

			if budgetConstraint != nil && totalCost > *budgetConstraint {
				continue
			}

			score := valueScore(tierEntry, term, estimatedCalls, profile, monthlyCost)
			if bestTier == nil || score > bestScore || (score == bestScore && totalCost < minCost) {
				bestTier = tierEntry
				bestTerm = term
				bestScore = score
				minCost = totalCost
				bestDisc = disc
			}
		}
	}

	if bestTier == nil {
		return &types.OptimizationResult{
			Feasible: false,
			Message:  "no tier and term configuration fits within the budget constraint",
		}, nil
	}

	breakdown, err := o.pricer.SubscriptionCost(bestTier.Name, bestTerm, estimatedCalls)
	if err != nil {
		return nil, err
	}

	return &types.OptimizationResult{
		Feasible:              true,
		RecommendedTier:       bestTier.Name,
		RecommendedTermMonths: bestTerm,
		MonthlyCost:           types.Round2(minCost / float64(bestTerm)),
		TotalContractValue:    types.Round2(minCost),
		ValueScore:            types.Round2(bestScore),
		Discount:              bestDisc,
		Features:              bestTier.Features,
		CostBreakdown:         breakdown,
		ROIPeriodMonths:       roiPeriod(minCost, estimatedCalls, profile),
	}, nil
}

// valueScore combines feature count, term length, volume fit, industry
// alignment and cost efficiency into a single ranking scalar
func valueScore(tier *types.SubscriptionTier, termMonths, estimatedCalls int, profile *types.IndustryProfile, monthlyCost float64) float64 {
	featureValue := float64(len(tier.Features)) * featureWeight
	termValue := math.Log(float64(termMonths)) * termWeight
	volumeFit := math.Min(1.0, float64(tier.MaxCalls)/float64(estimatedCalls)) * volumeFitWeight

	specialized := make(map[string]struct{}, len(profile.SpecializedFeatures))
	for _, f := range profile.SpecializedFeatures {
		specialized[f] = struct{}{}
	}
	var aligned int
	for _, f := range tier.Features {
		if _, ok := specialized[f]; ok {
			aligned++
		}
	}
	industryValue := float64(aligned) * industryFitWeight

	costEfficiency := 0.0
	if monthlyCost > 0 {
		costEfficiency = costEfficiencyBase / monthlyCost * costWeight
	}

	return featureValue + termValue + volumeFit + industryValue + costEfficiency
}

// roiPeriod estimates the months needed for call savings to recoup the
// total contract cost
func roiPeriod(totalCost float64, estimatedCalls int, profile *types.IndustryProfile) int {
	humanCost := humanCostPerCall * profile.CostMultiplier
	monthlySavings := float64(estimatedCalls) * (humanCost - aiCostPerCall)
	if monthlySavings <= 0 {
		return 0
	}
	return int(math.Ceil(totalCost / monthlySavings))
}
