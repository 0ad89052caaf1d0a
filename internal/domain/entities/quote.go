package entities

import (
	"time"

	"github.com/marcusergarcia/v0-gestor-financeiro-z5-sub000/internal/domain/pricing"
)

// QuoteStatus represents the lifecycle of a quote (orçamento).
type QuoteStatus string

const (
	QuoteStatusPendente  QuoteStatus = "pendente"
	QuoteStatusAprovado  QuoteStatus = "aprovado"
	QuoteStatusRejeitado QuoteStatus = "rejeitado"
	QuoteStatusCancelado QuoteStatus = "cancelado"
)

// Quote is a service/material budget (orçamento) persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (client_id-index): client_id
//
// Totals are a snapshot of the pricing engine's output at the last mutation;
// they are recomputed in full on every items/terms change, never patched.
type Quote struct {
	ID        string              `json:"id"`
	ClientID  string              `json:"client_id"`
	Items     []pricing.LineItem  `json:"items"`
	Terms     pricing.BudgetTerms `json:"terms"`
	Totals    pricing.BudgetTotals `json:"totals"`
	Status    QuoteStatus         `json:"status"`
	CreatedAt time.Time           `json:"created_at"`
	UpdatedAt time.Time           `json:"updated_at"`
}
