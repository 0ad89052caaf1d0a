package entities

import (
	"time"

	"github.com/marcusergarcia/v0-gestor-financeiro-z5-sub000/internal/domain/pricing"
)

// ProposalStatus represents the lifecycle of a maintenance-contract proposal.
type ProposalStatus string

const (
	ProposalStatusPendente  ProposalStatus = "pendente"
	ProposalStatusAprovado  ProposalStatus = "aprovado"
	ProposalStatusRejeitado ProposalStatus = "rejeitado"
	ProposalStatusCancelado ProposalStatus = "cancelado"
)

// Proposal is a maintenance-contract proposal (proposta), billed per visit.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (client_id-index): client_id
type Proposal struct {
	ID        string                 `json:"id"`
	ClientID  string                 `json:"client_id"`
	Items     []pricing.LineItem     `json:"items"`
	Terms     pricing.ProposalTerms  `json:"terms"`
	Totals    pricing.ProposalTotals `json:"totals"`
	Status    ProposalStatus         `json:"status"`
	CreatedAt time.Time              `json:"created_at"`
	UpdatedAt time.Time              `json:"updated_at"`
}
