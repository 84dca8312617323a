// Package catalog - HCL catalog overrides
// Catalogs ship with built-in defaults; deployments that tune pricing
// author an .hcl file overriding whole sections at a time.
package catalog

import (
	"github.com/hashicorp/hcl/v2/hclsimple"
	"github.com/shopspring/decimal"

	"sales-economics/core/types"
	"sales-economics/internal/errors"
)

type tierDoc struct {
	Name          string   `hcl:"name,label"`
	MaxCalls      int      `hcl:"max_calls"`
	PricePerMonth float64  `hcl:"price_per_month"`
	SetupFee      float64  `hcl:"setup_fee"`
	Features      []string `hcl:"features"`
	MinTermMonths int      `hcl:"min_term_months"`
	OverageRate   float64  `hcl:"overage_rate"`
}

type adoptionSpeedDoc struct {
	Industry string  `hcl:"industry,label"`
	Speed    float64 `hcl:"speed"`
}

type catalogDoc struct {
	Tiers           []tierDoc                   `hcl:"tier,block"`
	VolumeDiscounts []types.DiscountBreak       `hcl:"volume_discount,block"`
	TermDiscounts   []types.DiscountBreak       `hcl:"term_discount,block"`
	Benchmark       *types.Benchmark            `hcl:"benchmark,block"`
	Competitors     []types.CompetitorBenchmark `hcl:"competitor,block"`
	AdoptionSpeeds  []adoptionSpeedDoc          `hcl:"adoption_speed,block"`
}

// Load builds a catalog from the defaults plus an optional HCL override
// file. An empty path returns the defaults unchanged. Sections present
// in the file replace the corresponding default section wholesale.
func Load(path string) (*Catalog, error) {
	cat := Default()
	if path == "" {
		return cat, nil
	}

	var doc catalogDoc
	if err := hclsimple.DecodeFile(path, nil, &doc); err != nil {
		return nil, errors.Config("failed to decode catalog file "+path, err)
	}

	if len(doc.Tiers) > 0 {
		tiers := make([]types.SubscriptionTier, 0, len(doc.Tiers))
		for _, t := range doc.Tiers {
			tiers = append(tiers, types.SubscriptionTier{
				Name:          t.Name,
				MaxCalls:      t.MaxCalls,
				PricePerMonth: decimal.NewFromFloat(t.PricePerMonth),
				SetupFee:      decimal.NewFromFloat(t.SetupFee),
				Features:      t.Features,
				MinTermMonths: t.MinTermMonths,
				OverageRate:   decimal.NewFromFloat(t.OverageRate),
			})
		}
		cat.Tiers = tiers
	}
	if len(doc.VolumeDiscounts) > 0 {
		cat.Discounts.Volume = doc.VolumeDiscounts
	}
	if len(doc.TermDiscounts) > 0 {
		cat.Discounts.Term = doc.TermDiscounts
	}
	if doc.Benchmark != nil {
		cat.CostPerCallBenchmark = *doc.Benchmark
	}
	if len(doc.Competitors) > 0 {
		cat.Competitors = doc.Competitors
	}
	if len(doc.AdoptionSpeeds) > 0 {
		speeds := make(map[types.Industry]float64, len(doc.AdoptionSpeeds))
		for _, s := range doc.AdoptionSpeeds {
			speeds[types.NormalizeIndustry(s.Industry)] = s.Speed
		}
		cat.AdoptionSpeeds = speeds
	}

	if err := cat.Validate(); err != nil {
		return nil, err
	}
	return cat, nil
}
