package response

import (
	"time"

	"github.com/marcusergarcia/v0-gestor-financeiro-z5-sub000/internal/domain/entities"
	"github.com/marcusergarcia/v0-gestor-financeiro-z5-sub000/internal/domain/pricing"
)

type ProposalResponse struct {
	ID        string                 `json:"id"`
	ClientID  string                 `json:"client_id"`
	Status    string                 `json:"status"`
	Items     []pricing.LineItem     `json:"items"`
	Terms     pricing.ProposalTerms  `json:"terms"`
	Totals    pricing.ProposalTotals `json:"totals"`
	CreatedAt time.Time              `json:"created_at"`
	UpdatedAt time.Time              `json:"updated_at"`
}

func FromProposal(p entities.Proposal) ProposalResponse {
	items := p.Items
	if items == nil {
		items = []pricing.LineItem{}
	}
	return ProposalResponse{
		ID:        p.ID,
		ClientID:  p.ClientID,
		Status:    string(p.Status),
		Items:     items,
		Terms:     p.Terms,
		Totals:    p.Totals,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func FromProposals(proposals []entities.Proposal) []ProposalResponse {
	out := make([]ProposalResponse, len(proposals))
	for i, p := range proposals {
		out[i] = FromProposal(p)
	}
	return out
}

type ProposalPreviewResponse struct {
	Items  []pricing.LineItem     `json:"items"`
	Totals pricing.ProposalTotals `json:"totals"`
}

func FromProposalPreview(items []pricing.LineItem, totals pricing.ProposalTotals) ProposalPreviewResponse {
	if items == nil {
		items = []pricing.LineItem{}
	}
	return ProposalPreviewResponse{Items: items, Totals: totals}
}
