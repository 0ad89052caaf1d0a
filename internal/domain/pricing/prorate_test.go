package pricing

import (
	"math"
	"testing"
)

func TestProrate_SumMatchesSubtotal(t *testing.T) {
	catalog := []CatalogEntry{
		{ID: "a", Category: "c1"},
		{ID: "b", Category: "c2"},
		{ID: "c", Category: "c3"},
	}
	items := RecomputeItems(catalog, []LineItem{
		{ItemID: "a", Category: "c1", Quantity: 3, UnitPrice: 120.37},
		{ItemID: "b", Category: "c2", Quantity: 1, UnitPrice: 99.99},
		{ItemID: "c", Category: "c3", Quantity: 7, UnitPrice: 14.5},
	})

	subtotal := 1234.56
	adjusted := Prorate(items, subtotal)

	sum := 0.0
	for _, a := range adjusted {
		sum += a.AdjustedTotal
	}
	if math.Abs(sum-subtotal) > 1e-6 {
		t.Fatalf("sum of adjusted totals = %v, want %v", sum, subtotal)
	}
}

func TestProrate_IdentityWhenSubtotalMatchesGross(t *testing.T) {
	items := RecomputeItems(nil, []LineItem{
		{ItemID: "a", Category: "c1", Quantity: 2, UnitPrice: 100},
		{ItemID: "b", Category: "c2", Quantity: 1, UnitPrice: 40},
	})
	gross := 0.0
	for _, it := range items {
		gross += it.TotalValue
	}

	adjusted := Prorate(items, gross)

	for i, a := range adjusted {
		nearlyEqual(t, "AdjustedUnitPrice", a.AdjustedUnitPrice, a.UnitPrice)
		nearlyEqual(t, "AdjustedTotal", a.AdjustedTotal, items[i].TotalValue)
	}
}

func TestProrate_ZeroGrossReturnsUnchanged(t *testing.T) {
	items := []LineItem{
		{ItemID: "a", Quantity: 1, UnitPrice: 0, TotalValue: 0},
	}

	adjusted := Prorate(items, 500)

	nearlyEqual(t, "AdjustedUnitPrice", adjusted[0].AdjustedUnitPrice, 0)
	nearlyEqual(t, "AdjustedTotal", adjusted[0].AdjustedTotal, 0)
}

func TestProrate_ZeroSubtotalReturnsUnchanged(t *testing.T) {
	items := RecomputeItems(nil, []LineItem{
		{ItemID: "a", Category: "c1", Quantity: 2, UnitPrice: 100},
	})

	adjusted := Prorate(items, 0)

	nearlyEqual(t, "AdjustedUnitPrice", adjusted[0].AdjustedUnitPrice, 90)
	nearlyEqual(t, "AdjustedTotal", adjusted[0].AdjustedTotal, 180)
}

func TestProrate_DoesNotMutateItems(t *testing.T) {
	items := RecomputeItems(nil, []LineItem{
		{ItemID: "a", Category: "c1", Quantity: 2, UnitPrice: 100},
	})
	before := items[0]

	_ = Prorate(items, 999)

	if items[0] != before {
		t.Fatalf("line item mutated: %+v", items[0])
	}
}

func TestProrate_MatchesBudgetMaterialSubtotal(t *testing.T) {
	// Full round trip: budget computation inflates the material side with
	// interest, fees and tax; proration must land exactly on that subtotal.
	items := RecomputeItems(nil, []LineItem{
		{ItemID: "a", Category: "c1", Quantity: 2, UnitPrice: 150},
		{ItemID: "b", Category: "c2", Quantity: 1, UnitPrice: 75},
	})
	totals := ComputeBudget(items, BudgetTerms{
		DistanceKm:             8,
		RatePerKm:              1.2,
		TermDays:               3,
		BoletoFee:              3.5,
		MonthlyInterestPercent: 2,
		ServiceTaxPercent:      10.9,
		MaterialTaxPercent:     12.7,
		LaborInstallments:      1,
		MaterialInstallments:   3,
	})

	adjusted := Prorate(items, totals.MaterialSubtotal)

	sum := 0.0
	for _, a := range adjusted {
		sum += a.AdjustedTotal
	}
	if math.Abs(sum-totals.MaterialSubtotal) > 1e-6 {
		t.Fatalf("sum of adjusted totals = %v, want %v", sum, totals.MaterialSubtotal)
	}
}
