package response

import (
	"time"

	"github.com/marcusergarcia/v0-gestor-financeiro-z5-sub000/internal/domain/entities"
)

type SettingsResponse struct {
	RatePerKm              float64         `json:"rate_per_km"`
	BoletoFee              float64         `json:"boleto_fee"`
	MonthlyInterestPercent float64         `json:"monthly_interest_percent"`
	ServiceTaxPercent      float64         `json:"service_tax_percent"`
	MaterialTaxPercent     float64         `json:"material_tax_percent"`
	VisitDiscountTiers     map[int]float64 `json:"visit_discount_tiers"`
	UpdatedAt              time.Time       `json:"updated_at"`
}

func FromSettings(s entities.PricingSettings) SettingsResponse {
	tiers := s.VisitDiscountTiers
	if tiers == nil {
		tiers = map[int]float64{}
	}
	return SettingsResponse{
		RatePerKm:              s.RatePerKm,
		BoletoFee:              s.BoletoFee,
		MonthlyInterestPercent: s.MonthlyInterestPercent,
		ServiceTaxPercent:      s.ServiceTaxPercent,
		MaterialTaxPercent:     s.MaterialTaxPercent,
		VisitDiscountTiers:     tiers,
		UpdatedAt:              s.UpdatedAt,
	}
}
