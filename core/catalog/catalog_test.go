// Package catalog - Catalog invariant and lookup tests
package catalog

import (
	"testing"

	"github.com/shopspring/decimal"

	"sales-economics/core/types"
	"sales-economics/internal/errors"
)

func TestDefaultCatalogIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("default catalog failed validation: %v", err)
	}
}

// TestValidateRejectsBrokenCatalogs verifies each invariant is actually
// enforced by breaking it
func TestValidateRejectsBrokenCatalogs(t *testing.T) {
	cases := []struct {
		name    string
		corrupt func(*Catalog)
	}{
		{"empty tiers", func(c *Catalog) { c.Tiers = nil }},
		{"unordered max calls", func(c *Catalog) {
			c.Tiers[0].MaxCalls = c.Tiers[1].MaxCalls + 1
		}},
		{"price inversion", func(c *Catalog) {
			c.Tiers[1].PricePerMonth = c.Tiers[0].PricePerMonth.Sub(decimal.NewFromInt(1))
		}},
		{"negative setup fee", func(c *Catalog) {
			c.Tiers[0].SetupFee = decimal.NewFromInt(-1)
		}},
		{"zero min term", func(c *Catalog) { c.Tiers[0].MinTermMonths = 0 }},
		{"discount fraction at 1", func(c *Catalog) {
			c.Discounts.Volume[0].Discount = 1.0
		}},
		{"unordered discount thresholds", func(c *Catalog) {
			c.Discounts.Term[1].Threshold = c.Discounts.Term[0].Threshold
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cat := Default()
			tc.corrupt(cat)
			err := cat.Validate()
			if err == nil {
				t.Fatal("expected validation error, got nil")
			}
			if !errors.IsType(err, errors.TypeConfig) {
				t.Errorf("error type = %v, want CONFIG_ERROR", errors.TypeOf(err))
			}
		})
	}
}

func TestLookupsAreCaseInsensitive(t *testing.T) {
	cat := Default()

	tier, err := cat.Tier("ULTIMATE")
	if err != nil {
		t.Fatalf("tier lookup: %v", err)
	}
	if tier.Name != "Ultimate" {
		t.Errorf("tier name = %q, want Ultimate", tier.Name)
	}

	license, err := cat.License("Gold")
	if err != nil {
		t.Fatalf("license lookup: %v", err)
	}
	if license.Name != "gold" {
		t.Errorf("license name = %q, want gold", license.Name)
	}

	scenario, err := cat.Scenario("Aggressive")
	if err != nil {
		t.Fatalf("scenario lookup: %v", err)
	}
	if scenario.Name != types.ScenarioAggressive {
		t.Errorf("scenario name = %q, want aggressive", scenario.Name)
	}
}

func TestLookupsFailNotFound(t *testing.T) {
	cat := Default()

	if _, err := cat.Tier("Gigantic"); !errors.IsType(err, errors.TypeNotFound) {
		t.Errorf("tier error = %v, want NOT_FOUND", err)
	}
	if _, err := cat.License("wood"); !errors.IsType(err, errors.TypeNotFound) {
		t.Errorf("license error = %v, want NOT_FOUND", err)
	}
	if _, err := cat.Scenario("wild"); !errors.IsType(err, errors.TypeNotFound) {
		t.Errorf("scenario error = %v, want NOT_FOUND", err)
	}
	if _, err := cat.IndustryProfile("agriculture"); !errors.IsType(err, errors.TypeNotFound) {
		t.Errorf("industry error = %v, want NOT_FOUND", err)
	}
}

func TestAdoptionSpeedDefault(t *testing.T) {
	cat := Default()

	if got := cat.AdoptionSpeed("technology"); got != 1.5 {
		t.Errorf("technology speed = %v, want 1.5", got)
	}
	if got := cat.AdoptionSpeed("agriculture"); got != 1.0 {
		t.Errorf("unlisted speed = %v, want the 1.0 default", got)
	}
}
