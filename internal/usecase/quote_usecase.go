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
	ErrQuoteNotFound      = errors.New("quote not found")
	ErrInvalidQuoteID     = errors.New("invalid quote id")
	ErrInvalidClientID    = errors.New("invalid client_id")
	ErrEmptySelection     = errors.New("empty item selection")
	ErrUnknownCatalogItem = errors.New("unknown catalog item")
)

// ItemSelection is one catalog item picked by the user, by id and quantity.
// Rates are always resolved from the catalog, never taken from the caller.
type ItemSelection struct {
	ItemID   string
	Quantity int
}

// IQuoteUseCase exposes the budget (orçamento) operations.
//
// Every mutation (create, update) reruns the full pricing engine: items are
// re-resolved against the catalog, discounts and totals recomputed from
// scratch, and the snapshot persisted. Preview is the same computation
// without persistence.

type IQuoteUseCase interface {
	CreateQuote(ctx context.Context, clientID string, selection []ItemSelection, terms pricing.BudgetTerms) (entities.Quote, error)
	UpdateQuote(ctx context.Context, id string, selection []ItemSelection, terms pricing.BudgetTerms) (entities.Quote, error)
	PreviewQuote(ctx context.Context, selection []ItemSelection, terms pricing.BudgetTerms) ([]pricing.LineItem, pricing.BudgetTotals, error)
	GetByID(ctx context.Context, id string) (entities.Quote, error)
	ListByClientID(ctx context.Context, clientID string) ([]entities.Quote, error)
	ApproveByID(ctx context.Context, id string) (entities.Quote, error)
	RejectByID(ctx context.Context, id string) (entities.Quote, error)
	CancelByID(ctx context.Context, id string) (entities.Quote, error)
	InvoiceItems(ctx context.Context, id string) ([]pricing.AdjustedItem, error)
}

type QuoteUseCase struct {
	repo     interfaces.IQuoteRepository
	catalog  interfaces.ICatalogRepository
	settings interfaces.ISettingsRepository
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

func NewQuoteUseCase(repo interfaces.IQuoteRepository, catalog interfaces.ICatalogRepository, settings interfaces.ISettingsRepository) *QuoteUseCase {
	return &QuoteUseCase{repo: repo, catalog: catalog, settings: settings}
}

func (u *QuoteUseCase) CreateQuote(ctx context.Context, clientID string, selection []ItemSelection, terms pricing.BudgetTerms) (entities.Quote, error) {
	clientID = strings.TrimSpace(clientID)
	if clientID == "" {
		return entities.Quote{}, ErrInvalidClientID
	}

	items, totals, err := u.compute(ctx, selection, &terms)
	if err != nil {
		return entities.Quote{}, err
	}

	now := time.Now().UTC()
	q := entities.Quote{
		ID:        uuid.NewString(),
		ClientID:  clientID,
		Items:     items,
		Terms:     terms,
		Totals:    totals,
		Status:    entities.QuoteStatusPendente,
		CreatedAt: now,
		UpdatedAt: now,
	}
	return u.repo.Create(ctx, q)
}

func (u *QuoteUseCase) UpdateQuote(ctx context.Context, id string, selection []ItemSelection, terms pricing.BudgetTerms) (entities.Quote, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Quote{}, ErrInvalidQuoteID
	}

	q, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Quote{}, err
	}
	if q.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}

	items, totals, err := u.compute(ctx, selection, &terms)
	if err != nil {
		return entities.Quote{}, err
	}

	q.Items = items
	q.Terms = terms
	q.Totals = totals
	q.UpdatedAt = time.Now().UTC()
	return u.repo.Save(ctx, q)
}

func (u *QuoteUseCase) PreviewQuote(ctx context.Context, selection []ItemSelection, terms pricing.BudgetTerms) ([]pricing.LineItem, pricing.BudgetTotals, error) {
	items, totals, err := u.compute(ctx, selection, &terms)
	if err != nil {
		return nil, pricing.BudgetTotals{}, err
	}
	return items, totals, nil
}

// compute resolves the selection against the live catalog, fills settings
// defaults into the terms and runs the full engine.
func (u *QuoteUseCase) compute(ctx context.Context, selection []ItemSelection, terms *pricing.BudgetTerms) ([]pricing.LineItem, pricing.BudgetTotals, error) {
	if len(selection) == 0 {
		return nil, pricing.BudgetTotals{}, ErrEmptySelection
	}

	catalog, err := u.catalog.List(ctx)
	if err != nil {
		return nil, pricing.BudgetTotals{}, err
	}

	if err := u.fillTermDefaults(ctx, terms); err != nil {
		return nil, pricing.BudgetTotals{}, err
	}

	items, err := resolveSelection(catalog, selection)
	if err != nil {
		return nil, pricing.BudgetTotals{}, err
	}

	items = pricing.RecomputeItems(catalogEntries(catalog), items)
	return items, pricing.ComputeBudget(items, *terms), nil
}

// fillTermDefaults pulls rate-per-km and boleto fee from settings when the
// caller left them unset. A non-positive value means unset here: both are
// strictly positive in any real configuration.
func (u *QuoteUseCase) fillTermDefaults(ctx context.Context, terms *pricing.BudgetTerms) error {
	if terms.RatePerKm > 0 && terms.BoletoFee > 0 {
		return nil
	}
	s, err := u.settings.Get(ctx)
	if err != nil {
		return err
	}
	if terms.RatePerKm <= 0 {
		terms.RatePerKm = s.RatePerKm
	}
	if terms.BoletoFee <= 0 {
		terms.BoletoFee = s.BoletoFee
	}
	return nil
}

func (u *QuoteUseCase) GetByID(ctx context.Context, id string) (entities.Quote, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Quote{}, ErrInvalidQuoteID
	}

	q, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Quote{}, err
	}
	if q.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	return q, nil
}

func (u *QuoteUseCase) ListByClientID(ctx context.Context, clientID string) ([]entities.Quote, error) {
	clientID = strings.TrimSpace(clientID)
	if clientID == "" {
		return nil, ErrInvalidClientID
	}
	return u.repo.ListByClientID(ctx, clientID)
}

func (u *QuoteUseCase) ApproveByID(ctx context.Context, id string) (entities.Quote, error) {
	return u.updateStatusByID(ctx, id, entities.QuoteStatusAprovado)
}

func (u *QuoteUseCase) RejectByID(ctx context.Context, id string) (entities.Quote, error) {
	return u.updateStatusByID(ctx, id, entities.QuoteStatusRejeitado)
}

func (u *QuoteUseCase) CancelByID(ctx context.Context, id string) (entities.Quote, error) {
	return u.updateStatusByID(ctx, id, entities.QuoteStatusCancelado)
}

func (u *QuoteUseCase) updateStatusByID(ctx context.Context, id string, status entities.QuoteStatus) (entities.Quote, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Quote{}, ErrInvalidQuoteID
	}

	updated, err := u.repo.UpdateStatusByID(ctx, id, status)
	if err != nil {
		return entities.Quote{}, err
	}
	if updated.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	return updated, nil
}

// InvoiceItems returns the quote's line items with unit prices prorated to
// the charged material subtotal, for invoice display/export. The persisted
// quote is never modified.
func (u *QuoteUseCase) InvoiceItems(ctx context.Context, id string) ([]pricing.AdjustedItem, error) {
	q, err := u.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return pricing.Prorate(q.Items, q.Totals.MaterialSubtotal), nil
}

// resolveSelection copies catalog rates onto the selected items. Unknown ids
// are an error: a quote must never silently price an item at zero.
func resolveSelection(catalog []entities.CatalogItem, selection []ItemSelection) ([]pricing.LineItem, error) {
	byID := make(map[string]entities.CatalogItem, len(catalog))
	for _, c := range catalog {
		byID[c.ID] = c
	}

	items := make([]pricing.LineItem, 0, len(selection))
	for _, sel := range selection {
		c, ok := byID[strings.TrimSpace(sel.ItemID)]
		if !ok {
			return nil, ErrUnknownCatalogItem
		}
		items = append(items, pricing.LineItem{
			ItemID:    c.ID,
			Name:      c.Name,
			Category:  c.Category,
			Quantity:  sel.Quantity,
			UnitPrice: c.UnitRate,
			LaborRate: c.LaborRate,
		})
	}
	return items, nil
}

func catalogEntries(catalog []entities.CatalogItem) []pricing.CatalogEntry {
	entries := make([]pricing.CatalogEntry, len(catalog))
	for i, c := range catalog {
		entries[i] = pricing.CatalogEntry{ID: c.ID, Category: c.Category}
	}
	return entries
}
