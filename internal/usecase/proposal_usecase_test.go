package usecase

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/marcusergarcia/v0-gestor-financeiro-z5-sub000/internal/domain/entities"
	"github.com/marcusergarcia/v0-gestor-financeiro-z5-sub000/internal/domain/pricing"
	mock_interfaces "github.com/marcusergarcia/v0-gestor-financeiro-z5-sub000/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func proposalTerms() pricing.ProposalTerms {
	return pricing.ProposalTerms{
		DistanceKm:           20,
		RatePerKm:            1.5,
		VisitCount:           2,
		VisitDiscountPercent: 5,
	}
}

func TestProposalUseCase_CreateProposal(t *testing.T) {
	t.Run("invalid client id", func(t *testing.T) {
		uc := NewProposalUseCase(nil, nil, nil)
		_, err := uc.CreateProposal(context.Background(), "", []ItemSelection{{ItemID: "cat-1", Quantity: 1}}, proposalTerms())
		if !errors.Is(err, ErrInvalidClientID) {
			t.Fatalf("expected ErrInvalidClientID, got %v", err)
		}
	})

	t.Run("negative visit count", func(t *testing.T) {
		uc := NewProposalUseCase(nil, nil, nil)
		terms := proposalTerms()
		terms.VisitCount = -1
		_, err := uc.CreateProposal(context.Background(), "client-1", []ItemSelection{{ItemID: "cat-1", Quantity: 1}}, terms)
		if !errors.Is(err, ErrInvalidVisitCount) {
			t.Fatalf("expected ErrInvalidVisitCount, got %v", err)
		}
	})

	t.Run("create success with per-visit totals", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProposalRepository(ctrl)
		catalog := mock_interfaces.NewMockICatalogRepository(ctrl)
		uc := NewProposalUseCase(repo, catalog, nil)

		catalog.EXPECT().List(gomock.Any()).Return(testCatalog(), nil)
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Proposal{})).DoAndReturn(
			func(_ context.Context, p entities.Proposal) (entities.Proposal, error) {
				if p.ID == "" || p.Status != entities.ProposalStatusPendente {
					t.Fatalf("unexpected proposal: %+v", p)
				}
				if math.Abs(p.Totals.TravelCost-120) > 1e-6 {
					t.Fatalf("TravelCost = %v, want 120", p.Totals.TravelCost)
				}
				if p.Totals.VisitDiscountValue >= 0 {
					t.Fatalf("VisitDiscountValue = %v, want negative", p.Totals.VisitDiscountValue)
				}
				return p, nil
			},
		)

		_, err := uc.CreateProposal(context.Background(), "client-1", []ItemSelection{{ItemID: "cat-1", Quantity: 1}}, proposalTerms())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("visit discount resolved from settings tiers", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProposalRepository(ctrl)
		catalog := mock_interfaces.NewMockICatalogRepository(ctrl)
		settings := mock_interfaces.NewMockISettingsRepository(ctrl)
		uc := NewProposalUseCase(repo, catalog, settings)

		catalog.EXPECT().List(gomock.Any()).Return(testCatalog(), nil)
		settings.EXPECT().Get(gomock.Any()).Return(entities.PricingSettings{
			RatePerKm:          1.5,
			VisitDiscountTiers: map[int]float64{2: 5, 4: 8, 6: 12},
		}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.Proposal) (entities.Proposal, error) {
				if p.Terms.VisitDiscountPercent != 8 {
					t.Fatalf("VisitDiscountPercent = %v, want 8", p.Terms.VisitDiscountPercent)
				}
				return p, nil
			},
		)

		terms := pricing.ProposalTerms{DistanceKm: 20, VisitCount: 5}
		if _, err := uc.CreateProposal(context.Background(), "client-1", []ItemSelection{{ItemID: "cat-1", Quantity: 1}}, terms); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestProposalUseCase_StatusFlows(t *testing.T) {
	cases := []struct {
		name   string
		call   func(uc *ProposalUseCase, ctx context.Context, id string) (entities.Proposal, error)
		status entities.ProposalStatus
	}{
		{name: "approve", call: (*ProposalUseCase).ApproveByID, status: entities.ProposalStatusAprovado},
		{name: "reject", call: (*ProposalUseCase).RejectByID, status: entities.ProposalStatusRejeitado},
		{name: "cancel", call: (*ProposalUseCase).CancelByID, status: entities.ProposalStatusCancelado},
	}

	for _, tc := range cases {
		t.Run(tc.name+" not found", func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo := mock_interfaces.NewMockIProposalRepository(ctrl)
			uc := NewProposalUseCase(repo, nil, nil)
			repo.EXPECT().UpdateStatusByID(gomock.Any(), "p-1", tc.status).Return(entities.Proposal{}, nil)

			_, err := tc.call(uc, context.Background(), "p-1")
			if !errors.Is(err, ErrProposalNotFound) {
				t.Fatalf("expected ErrProposalNotFound, got %v", err)
			}
		})

		t.Run(tc.name+" success", func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo := mock_interfaces.NewMockIProposalRepository(ctrl)
			uc := NewProposalUseCase(repo, nil, nil)
			repo.EXPECT().UpdateStatusByID(gomock.Any(), "p-1", tc.status).Return(entities.Proposal{ID: "p-1", Status: tc.status}, nil)

			p, err := tc.call(uc, context.Background(), "p-1")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if p.Status != tc.status {
				t.Fatalf("status = %s, want %s", p.Status, tc.status)
			}
		})
	}
}

func TestProposalUseCase_GetByID(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProposalRepository(ctrl)
		uc := NewProposalUseCase(repo, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.Proposal{}, nil)

		_, err := uc.GetByID(context.Background(), "p-1")
		if !errors.Is(err, ErrProposalNotFound) {
			t.Fatalf("expected ErrProposalNotFound, got %v", err)
		}
	})
}
