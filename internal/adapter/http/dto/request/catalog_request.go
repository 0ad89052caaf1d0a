package request

import "strings"

type CatalogItemRequest struct {
	Name      string  `json:"name" binding:"required"`
	Category  string  `json:"category" binding:"required"`
	UnitRate  float64 `json:"unit_rate"`
	LaborRate float64 `json:"labor_rate"`
}

func (r CatalogItemRequest) ResolveName() string {
	return strings.TrimSpace(r.Name)
}

func (r CatalogItemRequest) ResolveCategory() string {
	return strings.TrimSpace(r.Category)
}

func (r CatalogItemRequest) ResolveUnitRate() float64 {
	return nonNegative(r.UnitRate)
}

func (r CatalogItemRequest) ResolveLaborRate() float64 {
	return nonNegative(r.LaborRate)
}
