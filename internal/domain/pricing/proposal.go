package pricing

// ProposalTerms are the parameters of a maintenance-contract proposal.
// Equipment service is billed per visit, so VisitCount multiplies the
// equipment values as well as the travel cost.
type ProposalTerms struct {
	DistanceKm           float64 `json:"distance_km"`
	RatePerKm            float64 `json:"rate_per_km"`
	VisitCount           int     `json:"visit_count"`
	VisitDiscountPercent float64 `json:"visit_discount_percent"`
}

// ProposalTotals is the breakdown of a proposal computation.
//
// VisitDiscountValue is a credit and carries a NEGATIVE sign; the grand total
// adds it. Tests pin the sign, it is easy to invert by accident.
type ProposalTotals struct {
	EquipmentGross     float64 `json:"equipment_gross"`
	EquipmentNet       float64 `json:"equipment_net"`
	DiscountTotal      float64 `json:"discount_total"`
	TravelCost         float64 `json:"travel_cost"`
	VisitDiscountValue float64 `json:"visit_discount_value"`
	GrandTotal         float64 `json:"grand_total"`
}

// ComputeProposal runs the proposal surcharge chain over a recomputed
// selection.
func ComputeProposal(items []LineItem, terms ProposalTerms) ProposalTotals {
	sums := SumItems(items)

	visits := float64(terms.VisitCount)
	if visits < 0 {
		visits = 0
	}

	t := ProposalTotals{
		EquipmentGross: sums.GrossValue * visits,
		EquipmentNet:   sums.NetValue * visits,
		DiscountTotal:  sums.DiscountTotal * visits,
	}

	// Round trip, once per visit.
	t.TravelCost = terms.DistanceKm * 2 * terms.RatePerKm * visits
	t.VisitDiscountValue = -(t.EquipmentGross * terms.VisitDiscountPercent / 100)
	t.GrandTotal = t.EquipmentNet + t.TravelCost + t.VisitDiscountValue
	return t
}
