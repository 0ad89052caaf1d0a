package request

import (
	"strings"

	"github.com/marcusergarcia/v0-gestor-financeiro-z5-sub000/internal/domain/pricing"
	"github.com/marcusergarcia/v0-gestor-financeiro-z5-sub000/internal/usecase"
)

type QuoteItemRequest struct {
	ItemID   string `json:"item_id" binding:"required"`
	Quantity int    `json:"quantity"`
}

// BudgetTermsRequest carries the surcharge knobs of a budget. Every field is
// optional on the wire: missing numerics arrive as zero, and zero means
// "unset" downstream (settings defaults for rate/fee, uncharged for
// installments).
type BudgetTermsRequest struct {
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

type QuoteRequest struct {
	ClientID string             `json:"client_id"`
	Items    []QuoteItemRequest `json:"items"`
	Terms    BudgetTermsRequest `json:"terms"`
}

func (r QuoteRequest) ResolveClientID() string {
	return strings.TrimSpace(r.ClientID)
}

// ResolveSelection drops blank-id entries instead of rejecting the payload.
// Quantities pass through as-is: the pricing engine coerces them to 1.
func (r QuoteRequest) ResolveSelection() []usecase.ItemSelection {
	selection := make([]usecase.ItemSelection, 0, len(r.Items))
	for _, it := range r.Items {
		id := strings.TrimSpace(it.ItemID)
		if id == "" {
			continue
		}
		selection = append(selection, usecase.ItemSelection{
			ItemID:   id,
			Quantity: it.Quantity,
		})
	}
	return selection
}

func (r QuoteRequest) ResolveTerms() pricing.BudgetTerms {
	return r.Terms.resolve()
}

func (t BudgetTermsRequest) resolve() pricing.BudgetTerms {
	return pricing.BudgetTerms{
		DistanceKm:             nonNegative(t.DistanceKm),
		RatePerKm:              nonNegative(t.RatePerKm),
		TermDays:               nonNegativeInt(t.TermDays),
		BoletoFee:              nonNegative(t.BoletoFee),
		MonthlyInterestPercent: nonNegative(t.MonthlyInterestPercent),
		ServiceTaxPercent:      nonNegative(t.ServiceTaxPercent),
		MaterialTaxPercent:     nonNegative(t.MaterialTaxPercent),
		LaborDiscountPercent:   nonNegative(t.LaborDiscountPercent),
		LaborInstallments:      nonNegativeInt(t.LaborInstallments),
		MaterialInstallments:   nonNegativeInt(t.MaterialInstallments),
		MaterialCash:           t.MaterialCash,
		ManualDiscount:         nonNegative(t.ManualDiscount),
	}
}

func nonNegative(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}

func nonNegativeInt(v int) int {
	if v < 0 {
		return 0
	}
	return v
}
