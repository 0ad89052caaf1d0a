package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/marcusergarcia/v0-gestor-financeiro-z5-sub000/internal/domain/entities"
	"github.com/marcusergarcia/v0-gestor-financeiro-z5-sub000/internal/domain/pricing"
	"github.com/marcusergarcia/v0-gestor-financeiro-z5-sub000/internal/usecase/interfaces"
)

var (
	ErrProposalNotFound  = errors.New("proposal not found")
	ErrInvalidProposalID = errors.New("invalid proposal id")
	ErrInvalidVisitCount = errors.New("invalid visit count")
)

// IProposalUseCase exposes the maintenance-contract proposal operations.
// Same recompute-on-every-mutation contract as quotes; the visit discount
// percent is a keyed settings lookup by visit count when not supplied.

type IProposalUseCase interface {
	CreateProposal(ctx context.Context, clientID string, selection []ItemSelection, terms pricing.ProposalTerms) (entities.Proposal, error)
	UpdateProposal(ctx context.Context, id string, selection []ItemSelection, terms pricing.ProposalTerms) (entities.Proposal, error)
	PreviewProposal(ctx context.Context, selection []ItemSelection, terms pricing.ProposalTerms) ([]pricing.LineItem, pricing.ProposalTotals, error)
	GetByID(ctx context.Context, id string) (entities.Proposal, error)
	ListByClientID(ctx context.Context, clientID string) ([]entities.Proposal, error)
	ApproveByID(ctx context.Context, id string) (entities.Proposal, error)
	RejectByID(ctx context.Context, id string) (entities.Proposal, error)
	CancelByID(ctx context.Context, id string) (entities.Proposal, error)
}

type ProposalUseCase struct {
	repo     interfaces.IProposalRepository
	catalog  interfaces.ICatalogRepository
	settings interfaces.ISettingsRepository
}

var _ IProposalUseCase = (*ProposalUseCase)(nil)

func NewProposalUseCase(repo interfaces.IProposalRepository, catalog interfaces.ICatalogRepository, settings interfaces.ISettingsRepository) *ProposalUseCase {
	return &ProposalUseCase{repo: repo, catalog: catalog, settings: settings}
}

func (u *ProposalUseCase) CreateProposal(ctx context.Context, clientID string, selection []ItemSelection, terms pricing.ProposalTerms) (entities.Proposal, error) {
	clientID = strings.TrimSpace(clientID)
	if clientID == "" {
		return entities.Proposal{}, ErrInvalidClientID
	}

	items, totals, err := u.compute(ctx, selection, &terms)
	if err != nil {
		return entities.Proposal{}, err
	}

	now := time.Now().UTC()
	p := entities.Proposal{
		ID:        uuid.NewString(),
		ClientID:  clientID,
		Items:     items,
		Terms:     terms,
		Totals:    totals,
		Status:    entities.ProposalStatusPendente,
		CreatedAt: now,
		UpdatedAt: now,
	}
	return u.repo.Create(ctx, p)
}

func (u *ProposalUseCase) UpdateProposal(ctx context.Context, id string, selection []ItemSelection, terms pricing.ProposalTerms) (entities.Proposal, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Proposal{}, ErrInvalidProposalID
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Proposal{}, err
	}
	if p.ID == "" {
		return entities.Proposal{}, ErrProposalNotFound
	}

	items, totals, err := u.compute(ctx, selection, &terms)
	if err != nil {
		return entities.Proposal{}, err
	}

	p.Items = items
	p.Terms = terms
	p.Totals = totals
	p.UpdatedAt = time.Now().UTC()
	return u.repo.Save(ctx, p)
}

func (u *ProposalUseCase) PreviewProposal(ctx context.Context, selection []ItemSelection, terms pricing.ProposalTerms) ([]pricing.LineItem, pricing.ProposalTotals, error) {
	items, totals, err := u.compute(ctx, selection, &terms)
	if err != nil {
		return nil, pricing.ProposalTotals{}, err
	}
	return items, totals, nil
}

func (u *ProposalUseCase) compute(ctx context.Context, selection []ItemSelection, terms *pricing.ProposalTerms) ([]pricing.LineItem, pricing.ProposalTotals, error) {
	if len(selection) == 0 {
		return nil, pricing.ProposalTotals{}, ErrEmptySelection
	}
	if terms.VisitCount < 0 {
		return nil, pricing.ProposalTotals{}, ErrInvalidVisitCount
	}

	catalog, err := u.catalog.List(ctx)
	if err != nil {
		return nil, pricing.ProposalTotals{}, err
	}

	if err := u.fillTermDefaults(ctx, terms); err != nil {
		return nil, pricing.ProposalTotals{}, err
	}

	items, err := resolveSelection(catalog, selection)
	if err != nil {
		return nil, pricing.ProposalTotals{}, err
	}

	items = pricing.RecomputeItems(catalogEntries(catalog), items)
	return items, pricing.ComputeProposal(items, *terms), nil
}

func (u *ProposalUseCase) fillTermDefaults(ctx context.Context, terms *pricing.ProposalTerms) error {
	if terms.RatePerKm > 0 && terms.VisitDiscountPercent > 0 {
		return nil
	}
	s, err := u.settings.Get(ctx)
	if err != nil {
		return err
	}
	if terms.RatePerKm <= 0 {
		terms.RatePerKm = s.RatePerKm
	}
	if terms.VisitDiscountPercent <= 0 {
		terms.VisitDiscountPercent = s.VisitDiscountPercent(terms.VisitCount)
	}
	return nil
}

func (u *ProposalUseCase) GetByID(ctx context.Context, id string) (entities.Proposal, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Proposal{}, ErrInvalidProposalID
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Proposal{}, err
	}
	if p.ID == "" {
		return entities.Proposal{}, ErrProposalNotFound
	}
	return p, nil
}

func (u *ProposalUseCase) ListByClientID(ctx context.Context, clientID string) ([]entities.Proposal, error) {
	clientID = strings.TrimSpace(clientID)
	if clientID == "" {
		return nil, ErrInvalidClientID
	}
	return u.repo.ListByClientID(ctx, clientID)
}

func (u *ProposalUseCase) ApproveByID(ctx context.Context, id string) (entities.Proposal, error) {
	return u.updateStatusByID(ctx, id, entities.ProposalStatusAprovado)
}

func (u *ProposalUseCase) RejectByID(ctx context.Context, id string) (entities.Proposal, error) {
	return u.updateStatusByID(ctx, id, entities.ProposalStatusRejeitado)
}

func (u *ProposalUseCase) CancelByID(ctx context.Context, id string) (entities.Proposal, error) {
	return u.updateStatusByID(ctx, id, entities.ProposalStatusCancelado)
}

func (u *ProposalUseCase) updateStatusByID(ctx context.Context, id string, status entities.ProposalStatus) (entities.Proposal, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Proposal{}, ErrInvalidProposalID
	}

	updated, err := u.repo.UpdateStatusByID(ctx, id, status)
	if err != nil {
		return entities.Proposal{}, err
	}
	if updated.ID == "" {
		return entities.Proposal{}, ErrProposalNotFound
	}
	return updated, nil
}
