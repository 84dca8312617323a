// Package types - Money rounding helpers
package types

import "github.com/shopspring/decimal"

// Round2 rounds a monetary amount to 2 decimal places.
// Internal computation keeps full float64 precision; rounding happens
// only at the output boundary.
func Round2(v float64) float64 {
	f, _ := decimal.NewFromFloat(v).Round(2).Float64()
	return f
}

// Round1 rounds a percentage to 1 decimal place
func Round1(v float64) float64 {
	f, _ := decimal.NewFromFloat(v).Round(1).Float64()
	return f
}

// Round4 rounds a rate or fraction to 4 decimal places
func Round4(v float64) float64 {
	f, _ := decimal.NewFromFloat(v).Round(4).Float64()
	return f
}

// Round3 rounds a probability to 3 decimal places
func Round3(v float64) float64 {
	f, _ := decimal.NewFromFloat(v).Round(3).Float64()
	return f
}
