// Package types - Discount lookup and stacking tests
package types

import (
	"math"
	"testing"
)

func testTable() DiscountTable {
	return DiscountTable{
		Volume: []DiscountBreak{
			{Threshold: 50000, Discount: 0.05},
			{Threshold: 100000, Discount: 0.10},
			{Threshold: 250000, Discount: 0.15},
			{Threshold: 500000, Discount: 0.20},
			{Threshold: 1000000, Discount: 0.25},
		},
		Term: []DiscountBreak{
			{Threshold: 12, Discount: 0.00},
			{Threshold: 24, Discount: 0.10},
			{Threshold: 36, Discount: 0.15},
			{Threshold: 48, Discount: 0.20},
			{Threshold: 60, Discount: 0.25},
		},
	}
}

// TestHighestQualifyingThresholdWins verifies the lookup keeps the
// highest threshold the quantity meets, not the first
func TestHighestQualifyingThresholdWins(t *testing.T) {
	table := testTable()

	cases := []struct {
		annualCalls int
		want        float64
	}{
		{0, 0},
		{49999, 0},
		{50000, 0.05},
		{99999, 0.05},
		{100000, 0.10},
		{250000, 0.15},
		{999999, 0.20},
		{1000000, 0.25},
		{5000000, 0.25},
	}
	for _, tc := range cases {
		if got := table.VolumeFor(tc.annualCalls); got != tc.want {
			t.Errorf("VolumeFor(%d) = %v, want %v", tc.annualCalls, got, tc.want)
		}
	}

	if got := table.TermFor(11); got != 0 {
		t.Errorf("TermFor(11) = %v, want 0", got)
	}
	if got := table.TermFor(60); got != 0.25 {
		t.Errorf("TermFor(60) = %v, want 0.25", got)
	}
	// Exactly at a threshold qualifies for that threshold
	if got := table.TermFor(24); got != 0.10 {
		t.Errorf("TermFor(24) = %v, want 0.10", got)
	}
}

// TestLookupMonotonic verifies a larger quantity never earns a smaller
// discount
func TestLookupMonotonic(t *testing.T) {
	table := testTable()

	prev := -1.0
	for calls := 0; calls <= 1_200_000; calls += 10000 {
		d := table.VolumeFor(calls)
		if d < prev {
			t.Fatalf("VolumeFor(%d) = %v dropped below %v", calls, d, prev)
		}
		prev = d
	}
}

// TestMultiplicativeStacking verifies 1-(1-v)(1-t) and its bounds
func TestMultiplicativeStacking(t *testing.T) {
	table := testTable()

	got := table.Combined(100000, 24)
	if got.VolumeDiscount != 0.10 || got.TermDiscount != 0.10 {
		t.Fatalf("Combined components = %v/%v, want 0.10/0.10", got.VolumeDiscount, got.TermDiscount)
	}
	if math.Abs(got.Combined-0.19) > 1e-9 {
		t.Errorf("Combined = %v, want 0.19", got.Combined)
	}

	// Across the grid: combined stays within [max(v,t), v+t] and below 1
	for _, calls := range []int{0, 50000, 250000, 1000000} {
		for _, months := range []int{6, 12, 24, 36, 60} {
			d := table.Combined(calls, months)
			lower := math.Max(d.VolumeDiscount, d.TermDiscount)
			if d.Combined < lower-1e-9 {
				t.Errorf("Combined(%d, %d) = %v below larger single discount %v", calls, months, d.Combined, lower)
			}
			if d.Combined > d.VolumeDiscount+d.TermDiscount+1e-9 {
				t.Errorf("Combined(%d, %d) = %v exceeds additive sum", calls, months, d.Combined)
			}
			if d.Combined >= 1 {
				t.Errorf("Combined(%d, %d) = %v reached 1", calls, months, d.Combined)
			}
		}
	}
}
