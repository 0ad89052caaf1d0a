package entities

import "time"

// PricingSettings holds the externally-configured pricing defaults: travel
// rate, boleto fee, tax/interest percentages and the visit-count discount
// table. A single record, editable by the back office.
type PricingSettings struct {
	RatePerKm              float64 `json:"rate_per_km"`
	BoletoFee              float64 `json:"boleto_fee"`
	MonthlyInterestPercent float64 `json:"monthly_interest_percent"`
	ServiceTaxPercent      float64 `json:"service_tax_percent"`
	MaterialTaxPercent     float64 `json:"material_tax_percent"`

	// VisitDiscountTiers maps a proposal's visit count to the discount
	// percent granted for committing to that many visits.
	VisitDiscountTiers map[int]float64 `json:"visit_discount_tiers"`

	UpdatedAt time.Time `json:"updated_at"`
}

// VisitDiscountPercent resolves the discount for a visit count. Unknown
// counts get the highest tier at or below them; below the lowest tier the
// discount is zero.
func (s PricingSettings) VisitDiscountPercent(visitCount int) float64 {
	best := 0
	percent := 0.0
	for count, p := range s.VisitDiscountTiers {
		if count <= visitCount && count >= best {
			best = count
			percent = p
		}
	}
	return percent
}
