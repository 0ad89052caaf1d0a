package interfaces

import (
	"context"

	"github.com/marcusergarcia/v0-gestor-financeiro-z5-sub000/internal/domain/entities"
)

// ISettingsRepository abstracts the single pricing-settings record. Get never
// fails on absence: defaults are returned when nothing is stored yet.

type ISettingsRepository interface {
	Get(ctx context.Context) (entities.PricingSettings, error)
	Put(ctx context.Context, s entities.PricingSettings) (entities.PricingSettings, error)
}
