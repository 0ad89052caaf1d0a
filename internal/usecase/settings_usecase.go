package usecase

import (
	"context"
	"errors"

	"github.com/marcusergarcia/v0-gestor-financeiro-z5-sub000/internal/domain/entities"
	"github.com/marcusergarcia/v0-gestor-financeiro-z5-sub000/internal/usecase/interfaces"
)

var ErrInvalidSettings = errors.New("invalid pricing settings")

// ISettingsUseCase exposes the single pricing-settings record.

type ISettingsUseCase interface {
	Get(ctx context.Context) (entities.PricingSettings, error)
	Update(ctx context.Context, s entities.PricingSettings) (entities.PricingSettings, error)
}

type SettingsUseCase struct {
	repo interfaces.ISettingsRepository
}

var _ ISettingsUseCase = (*SettingsUseCase)(nil)

func NewSettingsUseCase(repo interfaces.ISettingsRepository) *SettingsUseCase {
	return &SettingsUseCase{repo: repo}
}

func (u *SettingsUseCase) Get(ctx context.Context) (entities.PricingSettings, error) {
	return u.repo.Get(ctx)
}

// Update rejects negative values outright. Zeroes are allowed: the back
// office may legitimately turn a fee or tax off.
func (u *SettingsUseCase) Update(ctx context.Context, s entities.PricingSettings) (entities.PricingSettings, error) {
	if s.RatePerKm < 0 || s.BoletoFee < 0 || s.MonthlyInterestPercent < 0 ||
		s.ServiceTaxPercent < 0 || s.MaterialTaxPercent < 0 {
		return entities.PricingSettings{}, ErrInvalidSettings
	}
	for _, p := range s.VisitDiscountTiers {
		if p < 0 {
			return entities.PricingSettings{}, ErrInvalidSettings
		}
	}
	return u.repo.Put(ctx, s)
}
