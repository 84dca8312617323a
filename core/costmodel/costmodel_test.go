// Package costmodel - TCO decomposition tests
package costmodel

import (
	"math"
	"testing"

	"sales-economics/core/catalog"
	"sales-economics/internal/errors"
)

func newModel() *Model {
	return New(catalog.Default())
}

// TestTCOWorkedExample pins the full decomposition for a 10-agent
// financial services operation handling 5000 calls a month
func TestTCOWorkedExample(t *testing.T) {
	analysis, err := newModel().TotalCostOfOwnership(10, 5000, 35000, "financial_services")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	b := analysis.Breakdown

	// Direct: 10 x (35000/12 + 30% benefits + 200 equipment + 300 infra)
	if math.Abs(b.Direct.Total-42916.6667) > 0.01 {
		t.Errorf("direct total = %v, want 42916.67", b.Direct.Total)
	}

	// Indirect: 1000 management + 5000 training + 2500 QA + 2000 admin
	if b.Indirect.Total != 10500 {
		t.Errorf("indirect total = %v, want 10500", b.Indirect.Total)
	}

	// Opportunity: 6250 missed + 5000 inefficiency + 500 scalability
	if b.Opportunity.Total != 11750 {
		t.Errorf("opportunity total = %v, want 11750", b.Opportunity.Total)
	}

	// Industry: 2.0/call compliance + 1000/agent training + 500/agent audit
	if b.Industry.Total != 25000 {
		t.Errorf("industry total = %v, want 25000", b.Industry.Total)
	}

	if b.TotalMonthlyCost != 90166.67 {
		t.Errorf("total monthly cost = %v, want 90166.67", b.TotalMonthlyCost)
	}
	if b.CostPerCall != 18.03 {
		t.Errorf("cost per call = %v, want 18.03", b.CostPerCall)
	}
}

// TestTCOUnknownIndustryZeroContribution verifies an unlisted vertical
// contributes zero industry cost instead of failing
func TestTCOUnknownIndustryZeroContribution(t *testing.T) {
	analysis, err := newModel().TotalCostOfOwnership(10, 5000, 35000, "agriculture")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if analysis.Breakdown.Industry.Total != 0 {
		t.Errorf("industry total = %v, want 0", analysis.Breakdown.Industry.Total)
	}
	if analysis.Breakdown.TotalMonthlyCost != 65166.67 {
		t.Errorf("total monthly cost = %v, want 65166.67", analysis.Breakdown.TotalMonthlyCost)
	}
}

// TestTCOInputValidation verifies the guard rails fire as invalid
// argument errors
func TestTCOInputValidation(t *testing.T) {
	m := newModel()

	cases := []struct {
		name    string
		agents  int
		calls   int
		salary  float64
	}{
		{"zero calls", 10, 0, 35000},
		{"negative calls", 10, -5, 35000},
		{"zero agents", 0, 5000, 35000},
		{"negative agents", -1, 5000, 35000},
		{"negative salary", 10, 5000, -1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := m.TotalCostOfOwnership(tc.agents, tc.calls, tc.salary, "")
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !errors.IsType(err, errors.TypeInvalidArgument) {
				t.Errorf("error type = %v, want INVALID_ARGUMENT", errors.TypeOf(err))
			}
		})
	}
}

// TestBenchmarkStanding verifies the boundary rule: at or below the low
// point is low, at or above the high point is high
func TestBenchmarkStanding(t *testing.T) {
	m := newModel()

	cases := []struct {
		costPerCall float64
		want        string
	}{
		{4.0, "low"},
		{6.0, "low"},
		{6.01, "average"},
		{8.0, "average"},
		{11.99, "average"},
		{12.0, "high"},
		{25.0, "high"},
	}
	for _, tc := range cases {
		got := m.CompareBenchmark(tc.costPerCall)
		if string(got.Standing) != tc.want {
			t.Errorf("standing(%v) = %v, want %v", tc.costPerCall, got.Standing, tc.want)
		}
	}
}

// TestBenchmarkPercentileMeanRank verifies the mean rank percentile
// against the three-point scale {6, 8, 12}
func TestBenchmarkPercentileMeanRank(t *testing.T) {
	m := newModel()

	cases := []struct {
		costPerCall float64
		want        float64
	}{
		{5.0, 0},
		{6.0, 16.7},  // 0 below, 1 at -> (0+1)/2/3
		{7.0, 33.3},  // 1 below, 1 at or below
		{8.0, 50.0},  // 1 below, 2 at or below
		{12.0, 83.3}, // 2 below, 3 at or below
		{20.0, 100},
	}
	for _, tc := range cases {
		got := m.CompareBenchmark(tc.costPerCall)
		if got.Percentile != tc.want {
			t.Errorf("percentile(%v) = %v, want %v", tc.costPerCall, got.Percentile, tc.want)
		}
	}
}

// TestCompetitorComparisonOrder verifies competitor positioning follows
// catalog order with signed savings percentages
func TestCompetitorComparisonOrder(t *testing.T) {
	comparisons := newModel().CompareCompetitors(4.0)

	if len(comparisons) != 3 {
		t.Fatalf("got %d comparisons, want 3", len(comparisons))
	}
	wantNames := []string{"Traditional Call Center", "Cloud Contact Solutions", "AI Assistant Tools"}
	for i, want := range wantNames {
		if comparisons[i].Name != want {
			t.Errorf("comparison[%d] = %q, want %q", i, comparisons[i].Name, want)
		}
	}

	// At $4/call we beat the $8 traditional call center by half
	if comparisons[0].SavingsPercentage != 50.0 {
		t.Errorf("savings vs traditional = %v, want 50.0", comparisons[0].SavingsPercentage)
	}

	// Being costlier than a competitor yields negative savings, not a clamp
	costly := newModel().CompareCompetitors(10.0)
	if costly[2].SavingsPercentage >= 0 {
		t.Errorf("savings vs cheapest competitor = %v, want negative", costly[2].SavingsPercentage)
	}
}
