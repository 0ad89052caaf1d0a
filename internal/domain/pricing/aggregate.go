package pricing

// ItemTotals are the selection-level sums every flow starts from.
type ItemTotals struct {
	// GrossValue is the pre-discount equipment value: Σ unit price × quantity.
	GrossValue float64
	// NetValue is the post-discount equipment value: Σ total value.
	NetValue float64
	// DiscountTotal sums both discount kinds over all items.
	DiscountTotal float64
	// LaborValue is Σ labor rate × quantity (budget flow only; zero elsewhere).
	LaborValue float64
}

// SumItems aggregates a recomputed selection. Items are taken as-is; stale
// derived fields produce stale sums, so callers run RecomputeItems first.
func SumItems(items []LineItem) ItemTotals {
	var t ItemTotals
	for _, it := range items {
		qty := float64(it.Quantity)
		t.GrossValue += it.UnitPrice * qty
		t.NetValue += it.TotalValue
		t.DiscountTotal += it.IndividualDiscount + it.CategoryDiscount
		t.LaborValue += it.LaborRate * qty
	}
	return t
}
