package pricing

// AdjustedItem is a display/export view of a line item with its unit price
// rescaled so that summed line totals match an adjusted subtotal. The
// authoritative LineItem fields are never touched.
type AdjustedItem struct {
	ItemID            string  `json:"item_id"`
	Name              string  `json:"name"`
	Quantity          int     `json:"quantity"`
	UnitPrice         float64 `json:"unit_price"`
	AdjustedUnitPrice float64 `json:"adjusted_unit_price"`
	AdjustedTotal     float64 `json:"adjusted_total"`
}

// Prorate redistributes the gap between the selection's net value and the
// charged material subtotal back onto individual items, proportionally.
// Invoices need per-item unit prices whose sum matches what is actually
// charged once interest, fees and taxes are folded in.
//
// If either side of the ratio is zero the items come back unchanged: a zero
// gross value would divide by zero, and a zero subtotal means the material
// side is not being charged at all.
func Prorate(items []LineItem, materialSubtotal float64) []AdjustedItem {
	gross := 0.0
	for _, it := range items {
		gross += it.TotalValue
	}

	factor := 1.0
	if gross != 0 && materialSubtotal != 0 {
		factor = materialSubtotal / gross
	}

	out := make([]AdjustedItem, len(items))
	for i, it := range items {
		unit := 0.0
		if it.Quantity > 0 {
			unit = it.TotalValue / float64(it.Quantity)
		}
		adjusted := unit * factor
		out[i] = AdjustedItem{
			ItemID:            it.ItemID,
			Name:              it.Name,
			Quantity:          it.Quantity,
			UnitPrice:         unit,
			AdjustedUnitPrice: adjusted,
			AdjustedTotal:     adjusted * float64(it.Quantity),
		}
	}
	return out
}
