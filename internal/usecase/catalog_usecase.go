package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/marcusergarcia/v0-gestor-financeiro-z5-sub000/internal/domain/entities"
	"github.com/marcusergarcia/v0-gestor-financeiro-z5-sub000/internal/usecase/interfaces"
)

var ErrInvalidCatalogItem = errors.New("invalid catalog item")

// ICatalogUseCase exposes catalog reads and back-office item creation.

type ICatalogUseCase interface {
	List(ctx context.Context) ([]entities.CatalogItem, error)
	Create(ctx context.Context, name, category string, unitRate, laborRate float64) (entities.CatalogItem, error)
}

type CatalogUseCase struct {
	repo interfaces.ICatalogRepository
}

var _ ICatalogUseCase = (*CatalogUseCase)(nil)

func NewCatalogUseCase(repo interfaces.ICatalogRepository) *CatalogUseCase {
	return &CatalogUseCase{repo: repo}
}

func (u *CatalogUseCase) List(ctx context.Context) ([]entities.CatalogItem, error) {
	return u.repo.List(ctx)
}

func (u *CatalogUseCase) Create(ctx context.Context, name, category string, unitRate, laborRate float64) (entities.CatalogItem, error) {
	name = strings.TrimSpace(name)
	category = strings.TrimSpace(category)
	if name == "" || category == "" || unitRate < 0 || laborRate < 0 {
		return entities.CatalogItem{}, ErrInvalidCatalogItem
	}

	now := time.Now().UTC()
	item := entities.CatalogItem{
		ID:        uuid.NewString(),
		Name:      name,
		Category:  category,
		UnitRate:  unitRate,
		LaborRate: laborRate,
		CreatedAt: now,
		UpdatedAt: now,
	}
	return u.repo.Create(ctx, item)
}
