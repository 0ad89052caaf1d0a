package pricing

// BudgetTerms are the payment/logistics parameters of a budget (orçamento).
//
// Zero is meaningful for the installment counts: zero installments means the
// corresponding side (labor or material) is simply not being charged in this
// budget, not that the input is missing.
type BudgetTerms struct {
	DistanceKm             float64 `json:"distance_km"`
	RatePerKm              float64 `json:"rate_per_km"`
	TermDays               int     `json:"term_days"`
	BoletoFee              float64 `json:"boleto_fee"`
	MonthlyInterestPercent float64 `json:"monthly_interest_percent"`
	ServiceTaxPercent      float64 `json:"service_tax_percent"`
	MaterialTaxPercent     float64 `json:"material_tax_percent"`
	LaborDiscountPercent   float64 `json:"labor_discount_percent"`
	LaborInstallments      int     `json:"labor_installments"`
	MaterialInstallments   int     `json:"material_installments"`
	MaterialCash           bool    `json:"material_cash"`
	ManualDiscount         float64 `json:"manual_discount"`
}

// BudgetTotals is the full breakdown of a budget computation.
type BudgetTotals struct {
	EquipmentGross float64 `json:"equipment_gross"`
	EquipmentNet   float64 `json:"equipment_net"`
	DiscountTotal  float64 `json:"discount_total"`

	LaborValue         float64 `json:"labor_value"`
	LaborDiscountValue float64 `json:"labor_discount_value"`
	TravelCost         float64 `json:"travel_cost"`
	BoletoFeeLabor     float64 `json:"boleto_fee_labor"`
	ServiceTaxValue    float64 `json:"service_tax_value"`
	LaborSubtotal      float64 `json:"labor_subtotal"`

	MaterialValue     float64 `json:"material_value"`
	InterestValue     float64 `json:"interest_value"`
	BoletoFeeMaterial float64 `json:"boleto_fee_material"`
	MaterialTaxValue  float64 `json:"material_tax_value"`
	MaterialSubtotal  float64 `json:"material_subtotal"`

	ManualDiscount float64 `json:"manual_discount"`
	GrandTotal     float64 `json:"grand_total"`
}

// ComputeBudget runs the budget surcharge/tax chain over a recomputed
// selection.
//
// The sequence is a dependency chain: labor discount → travel → boleto fee →
// service tax, each feeding the next base. Reordering changes the tax bases
// and therefore the totals.
//
// Charge sentinels:
//   - LaborInstallments == 0: the labor side is not charged. LaborSubtotal is
//     zero no matter what the labor inputs are, and the travel cost (billed
//     once per budget) shifts onto the material subtotal instead.
//   - MaterialInstallments == 0 and not MaterialCash: the material side is
//     not charged. Interest, boleto fee, material tax and the material
//     subtotal are all zero.
func ComputeBudget(items []LineItem, terms BudgetTerms) BudgetTotals {
	sums := SumItems(items)

	t := BudgetTotals{
		EquipmentGross: sums.GrossValue,
		EquipmentNet:   sums.NetValue,
		DiscountTotal:  sums.DiscountTotal,
		LaborValue:     sums.LaborValue,
		MaterialValue:  sums.NetValue,
		ManualDiscount: terms.ManualDiscount,
	}

	t.LaborDiscountValue = sums.LaborValue * terms.LaborDiscountPercent / 100
	t.TravelCost = terms.DistanceKm * 2 * terms.RatePerKm * float64(terms.TermDays)
	t.BoletoFeeLabor = float64(terms.LaborInstallments) * terms.BoletoFee

	serviceTaxBase := sums.LaborValue - t.LaborDiscountValue + t.TravelCost + t.BoletoFeeLabor
	t.ServiceTaxValue = serviceTaxBase * terms.ServiceTaxPercent / 100

	if terms.LaborInstallments != 0 {
		t.LaborSubtotal = sums.LaborValue - t.LaborDiscountValue + t.TravelCost + t.BoletoFeeLabor + t.ServiceTaxValue
	}

	materialCharged := terms.MaterialCash || terms.MaterialInstallments > 0
	if materialCharged {
		if !terms.MaterialCash && terms.MaterialInstallments > 0 {
			installments := float64(terms.LaborInstallments + terms.MaterialInstallments - 1)
			t.InterestValue = installments * terms.MonthlyInterestPercent / 100 * t.MaterialValue
		}

		if terms.MaterialCash {
			t.BoletoFeeMaterial = 1 * terms.BoletoFee
		} else {
			t.BoletoFeeMaterial = float64(terms.MaterialInstallments) * terms.BoletoFee
		}

		materialTaxBase := t.MaterialValue + t.InterestValue + t.BoletoFeeMaterial
		t.MaterialTaxValue = materialTaxBase * terms.MaterialTaxPercent / 100

		// Travel is billed once. When labor carries no charge it lands here.
		extraTravel := 0.0
		if terms.LaborInstallments == 0 {
			extraTravel = t.TravelCost
		}
		t.MaterialSubtotal = t.MaterialValue + t.InterestValue + t.BoletoFeeMaterial + t.MaterialTaxValue + extraTravel
	}

	t.GrandTotal = t.LaborSubtotal + t.MaterialSubtotal - terms.ManualDiscount
	return t
}
