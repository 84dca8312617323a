// Package types - Discount lookup and stacking
package types

// VolumeFor returns the discount fraction for an annual call volume.
// The highest qualifying threshold wins; quantities below the first
// threshold earn no discount.
func (t DiscountTable) VolumeFor(annualCalls int) float64 {
	return highestQualifying(t.Volume, annualCalls)
}

// TermFor returns the discount fraction for a contract term in months,
// under the same highest-qualifying-threshold rule.
func (t DiscountTable) TermFor(termMonths int) float64 {
	return highestQualifying(t.Term, termMonths)
}

// Combined looks up both schedules and stacks them multiplicatively:
// combined = 1 - (1-volume)(1-term). Multiplicative stacking never
// exceeds 1 and is always at least the larger single discount.
func (t DiscountTable) Combined(annualCalls, termMonths int) CombinedDiscount {
	v := t.VolumeFor(annualCalls)
	term := t.TermFor(termMonths)
	return CombinedDiscount{
		VolumeDiscount: v,
		TermDiscount:   term,
		Combined:       1 - (1-v)*(1-term),
	}
}

// highestQualifying scans an ascending schedule and keeps the last
// break whose threshold the quantity meets
func highestQualifying(breaks []DiscountBreak, quantity int) float64 {
	discount := 0.0
	for _, b := range breaks {
		if quantity >= b.Threshold {
			discount = b.Discount
		} else {
			break
		}
	}
	return discount
}
