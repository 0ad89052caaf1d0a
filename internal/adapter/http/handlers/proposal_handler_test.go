package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/marcusergarcia/v0-gestor-financeiro-z5-sub000/internal/adapter/http/handlers/mocks"
	"github.com/marcusergarcia/v0-gestor-financeiro-z5-sub000/internal/domain/entities"
	"github.com/marcusergarcia/v0-gestor-financeiro-z5-sub000/internal/domain/pricing"
	"github.com/marcusergarcia/v0-gestor-financeiro-z5-sub000/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestProposalHandler_CreateProposal(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProposalUseCase(ctrl)
		h := NewProposalHandler(uc)

		r := gin.New()
		r.POST("/v1/proposals", h.CreateProposal)

		req := httptest.NewRequest(http.MethodPost, "/v1/proposals", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("negative visit count mapped to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProposalUseCase(ctrl)
		h := NewProposalHandler(uc)

		r := gin.New()
		r.POST("/v1/proposals", h.CreateProposal)

		uc.EXPECT().CreateProposal(gomock.Any(), "cli-1", gomock.Any(), gomock.Any()).Return(entities.Proposal{}, usecase.ErrInvalidVisitCount)

		req := httptest.NewRequest(http.MethodPost, "/v1/proposals", bytes.NewBufferString(`{"client_id":"cli-1","items":[{"item_id":"cat-1","quantity":1}],"terms":{"visit_count":-1}}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProposalUseCase(ctrl)
		h := NewProposalHandler(uc)

		r := gin.New()
		r.POST("/v1/proposals", h.CreateProposal)

		uc.EXPECT().CreateProposal(gomock.Any(), "cli-1", gomock.Any(), gomock.Any()).Return(entities.Proposal{
			ID:       "p-1",
			ClientID: "cli-1",
			Status:   entities.ProposalStatusPendente,
			Totals:   pricing.ProposalTotals{GrandTotal: 310},
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/proposals", bytes.NewBufferString(`{"client_id":"cli-1","items":[{"item_id":"cat-1","quantity":1}],"terms":{"distance_km":20,"rate_per_km":1.5,"visit_count":2}}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["id"] != "p-1" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestProposalHandler_PatchStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("cancel success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProposalUseCase(ctrl)
		h := NewProposalHandler(uc)

		r := gin.New()
		r.PATCH("/v1/proposals/:id/cancel", h.CancelProposal)

		uc.EXPECT().CancelByID(gomock.Any(), "p-1").Return(entities.Proposal{ID: "p-1", Status: entities.ProposalStatusCancelado}, nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/proposals/p-1/cancel", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("approve not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProposalUseCase(ctrl)
		h := NewProposalHandler(uc)

		r := gin.New()
		r.PATCH("/v1/proposals/:id/approve", h.ApproveProposal)

		uc.EXPECT().ApproveByID(gomock.Any(), "missing").Return(entities.Proposal{}, usecase.ErrProposalNotFound)

		req := httptest.NewRequest(http.MethodPatch, "/v1/proposals/missing/approve", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}
