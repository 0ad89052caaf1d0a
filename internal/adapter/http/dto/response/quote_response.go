package response

import (
	"time"

	"github.com/marcusergarcia/v0-gestor-financeiro-z5-sub000/internal/domain/entities"
	"github.com/marcusergarcia/v0-gestor-financeiro-z5-sub000/internal/domain/pricing"
)

type QuoteResponse struct {
	ID        string               `json:"id"`
	ClientID  string               `json:"client_id"`
	Status    string               `json:"status"`
	Items     []pricing.LineItem   `json:"items"`
	Terms     pricing.BudgetTerms  `json:"terms"`
	Totals    pricing.BudgetTotals `json:"totals"`
	CreatedAt time.Time            `json:"created_at"`
	UpdatedAt time.Time            `json:"updated_at"`
}

func FromQuote(q entities.Quote) QuoteResponse {
	items := q.Items
	if items == nil {
		items = []pricing.LineItem{}
	}
	return QuoteResponse{
		ID:        q.ID,
		ClientID:  q.ClientID,
		Status:    string(q.Status),
		Items:     items,
		Terms:     q.Terms,
		Totals:    q.Totals,
		CreatedAt: q.CreatedAt,
		UpdatedAt: q.UpdatedAt,
	}
}

func FromQuotes(quotes []entities.Quote) []QuoteResponse {
	out := make([]QuoteResponse, len(quotes))
	for i, q := range quotes {
		out[i] = FromQuote(q)
	}
	return out
}

// QuotePreviewResponse is the result of pricing a selection without saving
// anything.
type QuotePreviewResponse struct {
	Items  []pricing.LineItem   `json:"items"`
	Totals pricing.BudgetTotals `json:"totals"`
}

func FromQuotePreview(items []pricing.LineItem, totals pricing.BudgetTotals) QuotePreviewResponse {
	if items == nil {
		items = []pricing.LineItem{}
	}
	return QuotePreviewResponse{Items: items, Totals: totals}
}

// InvoiceItemsResponse lists line items with unit prices prorated to the
// charged material subtotal.
type InvoiceItemsResponse struct {
	QuoteID string                 `json:"quote_id"`
	Items   []pricing.AdjustedItem `json:"items"`
}

func FromInvoiceItems(quoteID string, items []pricing.AdjustedItem) InvoiceItemsResponse {
	if items == nil {
		items = []pricing.AdjustedItem{}
	}
	return InvoiceItemsResponse{QuoteID: quoteID, Items: items}
}
