// Package pricing implements the quotation calculation engine shared by the
// budget (orçamento) and maintenance-proposal flows.
//
// Everything here is pure: no I/O, no clocks, no shared state. Callers fetch
// catalog/configuration data, run the engine, and persist the results.
package pricing

// categoryCompletionDiscountPercent is the bonus unlocked when every catalog
// item of a category is present in the selection. It applies on top of the
// quantity discount (multiplicatively, off the already-discounted unit price).
const categoryCompletionDiscountPercent = 10.0

// CatalogEntry is the read-only catalog view the engine needs to decide
// category completeness.
type CatalogEntry struct {
	ID       string
	Category string
}

// LineItem is one catalog item selected for a quote or proposal.
//
// Quantity and UnitPrice/LaborRate are inputs; IndividualDiscount,
// CategoryDiscount and TotalValue are derived and only valid right after
// RecomputeItems. UnitPrice is copied from the catalog at selection time and
// never re-read afterwards.
type LineItem struct {
	ItemID   string `json:"item_id"`
	Name     string `json:"name"`
	Category string `json:"category"`
	Quantity int    `json:"quantity"`

	UnitPrice float64 `json:"unit_price"`
	LaborRate float64 `json:"labor_rate"`

	IndividualDiscount float64 `json:"individual_discount"`
	CategoryDiscount   float64 `json:"category_discount"`
	TotalValue         float64 `json:"total_value"`
}

// QuantityDiscountPercent returns the tiered per-item discount for a quantity.
func QuantityDiscountPercent(quantity int) float64 {
	switch {
	case quantity >= 5:
		return 30
	case quantity >= 3:
		return 20
	case quantity == 2:
		return 10
	default:
		return 0
	}
}

// completeCategories reports, for each category present in the catalog,
// whether every catalog item of that category is in the current selection.
// Computed fresh on every call; completeness is a property of the whole
// selection, so adding or removing any item can flip it for its siblings.
func completeCategories(catalog []CatalogEntry, items []LineItem) map[string]bool {
	selected := make(map[string]bool, len(items))
	for _, it := range items {
		selected[it.ItemID] = true
	}

	byCategory := make(map[string][]string)
	for _, entry := range catalog {
		byCategory[entry.Category] = append(byCategory[entry.Category], entry.ID)
	}

	complete := make(map[string]bool, len(byCategory))
	for category, ids := range byCategory {
		all := len(ids) > 0
		for _, id := range ids {
			if !selected[id] {
				all = false
				break
			}
		}
		complete[category] = all
	}
	return complete
}

// RecomputeItems rebuilds every derived field of the selection.
//
// Composition order is load-bearing: the individual (quantity) discount is
// taken off the original unit price, and the category-completion discount is
// taken off the already-quantity-discounted unit price. The two are NOT
// independent percentages off the original.
//
// The input slice is never mutated; a fresh slice is returned so callers can
// treat the selection as immutable between recomputations.
func RecomputeItems(catalog []CatalogEntry, items []LineItem) []LineItem {
	complete := completeCategories(catalog, items)

	out := make([]LineItem, len(items))
	for i, it := range items {
		if it.Quantity < 1 {
			it.Quantity = 1
		}
		qty := float64(it.Quantity)

		qtyPercent := QuantityDiscountPercent(it.Quantity)
		categoryPercent := 0.0
		if complete[it.Category] {
			categoryPercent = categoryCompletionDiscountPercent
		}

		netUnit := it.UnitPrice * (1 - qtyPercent/100)
		it.IndividualDiscount = it.UnitPrice * qtyPercent / 100 * qty
		it.CategoryDiscount = netUnit * categoryPercent / 100 * qty
		netUnit = netUnit * (1 - categoryPercent/100)
		it.TotalValue = netUnit * qty

		out[i] = it
	}
	return out
}
