package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/marcusergarcia/v0-gestor-financeiro-z5-sub000/internal/domain/entities"
	mock_interfaces "github.com/marcusergarcia/v0-gestor-financeiro-z5-sub000/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestSettingsUseCase_Update(t *testing.T) {
	t.Run("negative rate rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISettingsRepository(ctrl)
		uc := NewSettingsUseCase(repo)

		_, err := uc.Update(context.Background(), entities.PricingSettings{RatePerKm: -1})
		if !errors.Is(err, ErrInvalidSettings) {
			t.Fatalf("expected ErrInvalidSettings, got %v", err)
		}
	})

	t.Run("negative tier rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISettingsRepository(ctrl)
		uc := NewSettingsUseCase(repo)

		s := entities.PricingSettings{VisitDiscountTiers: map[int]float64{2: -5}}
		_, err := uc.Update(context.Background(), s)
		if !errors.Is(err, ErrInvalidSettings) {
			t.Fatalf("expected ErrInvalidSettings, got %v", err)
		}
	})

	t.Run("zero values allowed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISettingsRepository(ctrl)
		uc := NewSettingsUseCase(repo)

		s := entities.PricingSettings{RatePerKm: 1.5}
		repo.EXPECT().Put(gomock.Any(), s).Return(s, nil)

		got, err := uc.Update(context.Background(), s)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.RatePerKm != 1.5 {
			t.Fatalf("unexpected settings: %+v", got)
		}
	})
}

func TestSettingsUseCase_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockISettingsRepository(ctrl)
	uc := NewSettingsUseCase(repo)

	want := entities.PricingSettings{RatePerKm: 1.5, BoletoFee: 4}
	repo.EXPECT().Get(gomock.Any()).Return(want, nil)

	got, err := uc.Get(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.RatePerKm != want.RatePerKm || got.BoletoFee != want.BoletoFee {
		t.Fatalf("unexpected settings: %+v", got)
	}
}
