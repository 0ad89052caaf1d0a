package entities

import "time"

// CatalogItem is an equipment/service catalog entry (id, name, category and
// rates). Immutable within an editing session: quotes copy the rates at
// selection time instead of referencing the live catalog.
type CatalogItem struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	UnitRate  float64   `json:"unit_rate"`
	LaborRate float64   `json:"labor_rate"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
