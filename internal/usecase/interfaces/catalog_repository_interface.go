package interfaces

import (
	"context"

	"github.com/marcusergarcia/v0-gestor-financeiro-z5-sub000/internal/domain/entities"
)

// ICatalogRepository abstracts DynamoDB persistence for CatalogItem.
//
// The pricing engine needs the FULL catalog on every recomputation: category
// completeness is checked against every catalog item of a category, so there
// is no per-id lookup here.

type ICatalogRepository interface {
	List(ctx context.Context) ([]entities.CatalogItem, error)
	Create(ctx context.Context, item entities.CatalogItem) (entities.CatalogItem, error)
}
