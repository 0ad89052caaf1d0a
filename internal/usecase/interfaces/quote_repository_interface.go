package interfaces

import (
	"context"

	"github.com/marcusergarcia/v0-gestor-financeiro-z5-sub000/internal/domain/entities"
)

// IQuoteRepository abstracts DynamoDB persistence for Quote.
//
// Save replaces the whole record: the quote's items and totals are always
// recomputed together, partial updates would let them drift.

type IQuoteRepository interface {
	Create(ctx context.Context, q entities.Quote) (entities.Quote, error)
	Save(ctx context.Context, q entities.Quote) (entities.Quote, error)
	GetByID(ctx context.Context, id string) (entities.Quote, error)
	ListByClientID(ctx context.Context, clientID string) ([]entities.Quote, error)
	UpdateStatusByID(ctx context.Context, id string, status entities.QuoteStatus) (entities.Quote, error)
}
