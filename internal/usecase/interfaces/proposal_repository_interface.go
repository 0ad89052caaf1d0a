package interfaces

import (
	"context"

	"github.com/marcusergarcia/v0-gestor-financeiro-z5-sub000/internal/domain/entities"
)

// IProposalRepository abstracts DynamoDB persistence for Proposal.

type IProposalRepository interface {
	Create(ctx context.Context, p entities.Proposal) (entities.Proposal, error)
	Save(ctx context.Context, p entities.Proposal) (entities.Proposal, error)
	GetByID(ctx context.Context, id string) (entities.Proposal, error)
	ListByClientID(ctx context.Context, clientID string) ([]entities.Proposal, error)
	UpdateStatusByID(ctx context.Context, id string, status entities.ProposalStatus) (entities.Proposal, error)
}
