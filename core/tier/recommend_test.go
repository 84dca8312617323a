// Package tier - Recommendation tests
package tier

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sales-economics/core/catalog"
	"sales-economics/core/types"
	"sales-economics/internal/errors"
)

func TestRecommendCheapestQualifyingTier(t *testing.T) {
	rec, err := New(catalog.Default()).Recommend(5000, 40000)
	require.NoError(t, err)
	require.NotNil(t, rec.Tier)

	// 5000 calls fits Professional exactly; Starter's ceiling is too low
	assert.Equal(t, "Professional", rec.Tier.Name)
	assert.False(t, rec.CustomEnterprise)
	assert.Equal(t, 38000.0, rec.MonthlySavings)
	assert.Equal(t, 456000.0, rec.AnnualSavings)
	assert.Equal(t, 95.0, rec.CostReductionPercentage)

	// Setup fee 2500 over 38000 monthly savings rounds to 0.1 months
	require.NotNil(t, rec.ROIMonths)
	assert.Equal(t, 0.1, *rec.ROIMonths)
}

func TestRecommendCustomEnterpriseSentinel(t *testing.T) {
	// Above every tier ceiling: the sentinel, not an error
	rec, err := New(catalog.Default()).Recommend(30000, 500000)
	require.NoError(t, err)

	assert.True(t, rec.CustomEnterprise)
	assert.Nil(t, rec.Tier)
	assert.NotEmpty(t, rec.Message)
	assert.Nil(t, rec.ROIMonths)
}

func TestRecommendNegativeSavingsHasNoPayback(t *testing.T) {
	// Current cost below the tier price: savings negative, payback nil
	rec, err := New(catalog.Default()).Recommend(5000, 1000)
	require.NoError(t, err)
	require.NotNil(t, rec.Tier)

	assert.Negative(t, rec.MonthlySavings)
	assert.Nil(t, rec.ROIMonths)
}

func TestRecommendTieResolvesToFirstCatalogEntry(t *testing.T) {
	cat := &catalog.Catalog{
		Tiers: []types.SubscriptionTier{
			{Name: "Bronze", MaxCalls: 2000, PricePerMonth: decimal.NewFromInt(900), SetupFee: decimal.NewFromInt(500)},
			{Name: "Silver", MaxCalls: 4000, PricePerMonth: decimal.NewFromInt(900), SetupFee: decimal.NewFromInt(500)},
		},
	}

	rec, err := New(cat).Recommend(1000, 5000)
	require.NoError(t, err)
	require.NotNil(t, rec.Tier)
	assert.Equal(t, "Bronze", rec.Tier.Name)
}

func TestRecommendInputValidation(t *testing.T) {
	r := New(catalog.Default())

	_, err := r.Recommend(0, 40000)
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.TypeInvalidArgument))

	_, err = r.Recommend(5000, 0)
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.TypeInvalidArgument))
}
