package interfaces

import (
	"context"

	"github.com/marcusergarcia/v0-gestor-financeiro-z5-sub000/internal/domain/entities"
)

// IBoletoChargeRepository abstracts DynamoDB persistence for BoletoCharge.

type IBoletoChargeRepository interface {
	Create(ctx context.Context, c entities.BoletoCharge) (entities.BoletoCharge, error)
	GetByID(ctx context.Context, id string) (entities.BoletoCharge, error)
	ListByQuoteID(ctx context.Context, quoteID string) ([]entities.BoletoCharge, error)
}
