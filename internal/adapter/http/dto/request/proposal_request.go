package request

import (
	"strings"

	"github.com/marcusergarcia/v0-gestor-financeiro-z5-sub000/internal/domain/pricing"
	"github.com/marcusergarcia/v0-gestor-financeiro-z5-sub000/internal/usecase"
)

// ProposalTermsRequest carries the per-visit terms of a contract proposal.
// VisitDiscountPercent left at zero means "look it up in the settings tiers".
type ProposalTermsRequest struct {
	DistanceKm           float64 `json:"distance_km"`
	RatePerKm            float64 `json:"rate_per_km"`
	VisitCount           int     `json:"visit_count"`
	VisitDiscountPercent float64 `json:"visit_discount_percent"`
}

type ProposalRequest struct {
	ClientID string               `json:"client_id"`
	Items    []QuoteItemRequest   `json:"items"`
	Terms    ProposalTermsRequest `json:"terms"`
}

func (r ProposalRequest) ResolveClientID() string {
	return strings.TrimSpace(r.ClientID)
}

func (r ProposalRequest) ResolveSelection() []usecase.ItemSelection {
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

// ResolveTerms keeps VisitCount as sent, negatives included: rejecting a
// negative visit count is a business rule, not a coercion.
func (r ProposalRequest) ResolveTerms() pricing.ProposalTerms {
	return pricing.ProposalTerms{
		DistanceKm:           nonNegative(r.Terms.DistanceKm),
		RatePerKm:            nonNegative(r.Terms.RatePerKm),
		VisitCount:           r.Terms.VisitCount,
		VisitDiscountPercent: nonNegative(r.Terms.VisitDiscountPercent),
	}
}
