// Package contract - Optimization tests
package contract

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sales-economics/core/catalog"
	"sales-economics/internal/errors"
)

func TestOptimizeUnconstrained(t *testing.T) {
	result, err := New(catalog.Default()).Optimize(5000, "financial_services", nil)
	require.NoError(t, err)

	assert.True(t, result.Feasible)
	assert.NotEmpty(t, result.RecommendedTier)
	assert.Positive(t, result.RecommendedTermMonths)
	assert.Positive(t, result.TotalContractValue)
	assert.Positive(t, result.ValueScore)
	require.NotNil(t, result.CostBreakdown)

	// The stacked discount never drops below the larger single one
	d := result.Discount
	assert.GreaterOrEqual(t, d.Combined, math.Max(d.VolumeDiscount, d.TermDiscount)-1e-9)
	assert.Less(t, d.Combined, 1.0)

	// Monthly cost is the contract value amortized over the term
	wantMonthly := result.TotalContractValue / float64(result.RecommendedTermMonths)
	assert.InDelta(t, wantMonthly, result.MonthlyCost, 0.01)
}

func TestOptimizeRespectsBudget(t *testing.T) {
	budget := 50000.0
	result, err := New(catalog.Default()).Optimize(5000, "healthcare", &budget)
	require.NoError(t, err)

	require.True(t, result.Feasible)
	assert.LessOrEqual(t, result.TotalContractValue, budget)
}

func TestOptimizeInfeasibleBudgetIsSentinel(t *testing.T) {
	// No tier and term combination fits in ten dollars
	budget := 10.0
	result, err := New(catalog.Default()).Optimize(5000, "technology", &budget)
	require.NoError(t, err)

	assert.False(t, result.Feasible)
	assert.NotEmpty(t, result.Message)
	assert.Empty(t, result.RecommendedTier)
	assert.Nil(t, result.CostBreakdown)
}

func TestOptimizeDeterministic(t *testing.T) {
	o := New(catalog.Default())

	first, err := o.Optimize(8000, "real_estate", nil)
	require.NoError(t, err)
	second, err := o.Optimize(8000, "real_estate", nil)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestOptimizeROIPeriodPositive(t *testing.T) {
	result, err := New(catalog.Default()).Optimize(5000, "financial_services", nil)
	require.NoError(t, err)
	require.True(t, result.Feasible)

	// Human handling at 8x1.4 per call dwarfs the AI delivery cost,
	// so the contract recoups within a bounded period
	assert.Positive(t, result.ROIPeriodMonths)
}

func TestOptimizeInputValidation(t *testing.T) {
	o := New(catalog.Default())

	_, err := o.Optimize(0, "technology", nil)
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.TypeInvalidArgument))

	_, err = o.Optimize(5000, "agriculture", nil)
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.TypeNotFound))
}
