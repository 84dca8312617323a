// Package catalog - HCL override loading tests
package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"sales-economics/internal/errors"
)

func writeCatalogFile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.hcl")
	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		t.Fatalf("writing catalog file: %v", err)
	}
	return path
}

func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	cat, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cat.Tiers) != 4 {
		t.Errorf("got %d tiers, want the 4 built-in ones", len(cat.Tiers))
	}
}

func TestLoadOverridesSectionsWholesale(t *testing.T) {
	path := writeCatalogFile(t, `
tier "Basic" {
  max_calls       = 2000
  price_per_month = 900
  setup_fee       = 1500
  features        = ["AI-powered outbound calls", "Email support"]
  min_term_months = 6
  overage_rate    = 0.60
}

tier "Scale" {
  max_calls       = 20000
  price_per_month = 5000
  setup_fee       = 8000
  features        = ["Everything in Basic", "Dedicated support"]
  min_term_months = 12
  overage_rate    = 0.40
}

benchmark {
  low     = 5
  average = 9
  high    = 14
}

adoption_speed "healthcare" {
  speed = 0.5
}
`)

	cat, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Tier section replaced wholesale
	if len(cat.Tiers) != 2 {
		t.Fatalf("got %d tiers, want 2", len(cat.Tiers))
	}
	if cat.Tiers[0].Name != "Basic" || cat.Tiers[0].MaxCalls != 2000 {
		t.Errorf("first tier = %+v, want Basic/2000", cat.Tiers[0])
	}
	if got := cat.Tiers[1].PricePerMonth.InexactFloat64(); got != 5000 {
		t.Errorf("Scale price = %v, want 5000", got)
	}

	if cat.CostPerCallBenchmark.Average != 9 {
		t.Errorf("benchmark average = %v, want 9", cat.CostPerCallBenchmark.Average)
	}

	// Adoption speed section replaced wholesale: only healthcare remains,
	// everything else falls back to the 1.0 default
	if got := cat.AdoptionSpeed("healthcare"); got != 0.5 {
		t.Errorf("healthcare speed = %v, want 0.5", got)
	}
	if got := cat.AdoptionSpeed("technology"); got != 1.0 {
		t.Errorf("technology speed = %v, want the 1.0 default", got)
	}

	// Untouched sections keep their defaults
	if len(cat.Licenses) != 3 {
		t.Errorf("got %d licenses, want the 3 built-in ones", len(cat.Licenses))
	}
	if len(cat.Discounts.Volume) != 5 {
		t.Errorf("got %d volume breaks, want the 5 built-in ones", len(cat.Discounts.Volume))
	}
}

func TestLoadRejectsInvalidOverride(t *testing.T) {
	// Higher capacity priced below lower capacity
	path := writeCatalogFile(t, `
tier "Big" {
  max_calls       = 10000
  price_per_month = 1000
  setup_fee       = 1000
  features        = ["a"]
  min_term_months = 6
  overage_rate    = 0.5
}

tier "Bigger" {
  max_calls       = 20000
  price_per_month = 500
  setup_fee       = 1000
  features        = ["a"]
  min_term_months = 6
  overage_rate    = 0.5
}
`)

	_, err := Load(path)
	if err == nil {
		t.Fatal("expected validation error, got nil")
	}
	if !errors.IsType(err, errors.TypeConfig) {
		t.Errorf("error type = %v, want CONFIG_ERROR", errors.TypeOf(err))
	}
}

func TestLoadRejectsMalformedFile(t *testing.T) {
	path := writeCatalogFile(t, `tier "Broken" {`)

	_, err := Load(path)
	if err == nil {
		t.Fatal("expected decode error, got nil")
	}
	if !errors.IsType(err, errors.TypeConfig) {
		t.Errorf("error type = %v, want CONFIG_ERROR", errors.TypeOf(err))
	}
}
