package response

import (
	"time"

	"github.com/marcusergarcia/v0-gestor-financeiro-z5-sub000/internal/domain/entities"
)

type CatalogItemResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	UnitRate  float64   `json:"unit_rate"`
	LaborRate float64   `json:"labor_rate"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromCatalogItem(item entities.CatalogItem) CatalogItemResponse {
	return CatalogItemResponse{
		ID:        item.ID,
		Name:      item.Name,
		Category:  item.Category,
		UnitRate:  item.UnitRate,
		LaborRate: item.LaborRate,
		CreatedAt: item.CreatedAt,
		UpdatedAt: item.UpdatedAt,
	}
}

func FromCatalogItems(items []entities.CatalogItem) []CatalogItemResponse {
	out := make([]CatalogItemResponse, len(items))
	for i, item := range items {
		out[i] = FromCatalogItem(item)
	}
	return out
}
