package pricing

import "testing"

func TestComputeProposal_EndToEnd(t *testing.T) {
	items := RecomputeItems(nil, []LineItem{
		{ItemID: "m-1", Category: "motores", Quantity: 1, UnitPrice: 100},
	})
	terms := ProposalTerms{
		DistanceKm:           20,
		RatePerKm:            1.5,
		VisitCount:           2,
		VisitDiscountPercent: 5,
	}

	got := ComputeProposal(items, terms)

	nearlyEqual(t, "TravelCost", got.TravelCost, 120)
	nearlyEqual(t, "EquipmentGross", got.EquipmentGross, 200)
	nearlyEqual(t, "EquipmentNet", got.EquipmentNet, 200)
	nearlyEqual(t, "VisitDiscountValue", got.VisitDiscountValue, -10)
	nearlyEqual(t, "GrandTotal", got.GrandTotal, 310)
}

func TestComputeProposal_VisitDiscountSignIsNegative(t *testing.T) {
	items := RecomputeItems(nil, []LineItem{
		{ItemID: "m-1", Category: "motores", Quantity: 1, UnitPrice: 1000},
	})
	terms := ProposalTerms{VisitCount: 1, VisitDiscountPercent: 10}

	got := ComputeProposal(items, terms)

	// The discount is a credit: returned negative, then ADDED to the total.
	if got.VisitDiscountValue >= 0 {
		t.Fatalf("VisitDiscountValue = %v, want negative", got.VisitDiscountValue)
	}
	nearlyEqual(t, "VisitDiscountValue", got.VisitDiscountValue, -100)
	nearlyEqual(t, "GrandTotal", got.GrandTotal, 900)
}

func TestComputeProposal_ValuesScaleWithVisits(t *testing.T) {
	items := RecomputeItems(nil, []LineItem{
		{ItemID: "m-1", Category: "motores", Quantity: 2, UnitPrice: 50},
	})

	one := ComputeProposal(items, ProposalTerms{DistanceKm: 10, RatePerKm: 1, VisitCount: 1})
	three := ComputeProposal(items, ProposalTerms{DistanceKm: 10, RatePerKm: 1, VisitCount: 3})

	nearlyEqual(t, "gross x3", three.EquipmentGross, one.EquipmentGross*3)
	nearlyEqual(t, "net x3", three.EquipmentNet, one.EquipmentNet*3)
	nearlyEqual(t, "discount x3", three.DiscountTotal, one.DiscountTotal*3)
	nearlyEqual(t, "travel x3", three.TravelCost, one.TravelCost*3)
}

func TestComputeProposal_ZeroVisits(t *testing.T) {
	items := RecomputeItems(nil, []LineItem{
		{ItemID: "m-1", Category: "motores", Quantity: 1, UnitPrice: 100},
	})

	got := ComputeProposal(items, ProposalTerms{DistanceKm: 10, RatePerKm: 2, VisitCount: 0})

	nearlyEqual(t, "EquipmentGross", got.EquipmentGross, 0)
	nearlyEqual(t, "TravelCost", got.TravelCost, 0)
	nearlyEqual(t, "GrandTotal", got.GrandTotal, 0)
}
