package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/marcusergarcia/v0-gestor-financeiro-z5-sub000/internal/adapter/http/handlers/mocks"
	"github.com/marcusergarcia/v0-gestor-financeiro-z5-sub000/internal/domain/entities"
	"github.com/marcusergarcia/v0-gestor-financeiro-z5-sub000/internal/domain/pricing"
	"github.com/marcusergarcia/v0-gestor-financeiro-z5-sub000/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestQuoteHandler_CreateQuote(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.POST("/v1/quotes", h.CreateQuote)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("usecase returns mapped error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.POST("/v1/quotes", h.CreateQuote)

		uc.EXPECT().CreateQuote(gomock.Any(), "cli-1", gomock.Any(), gomock.Any()).Return(entities.Quote{}, usecase.ErrUnknownCatalogItem)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes", bytes.NewBufferString(`{"client_id":"cli-1","items":[{"item_id":"missing","quantity":1}]}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("blank item ids dropped before the usecase", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.POST("/v1/quotes", h.CreateQuote)

		uc.EXPECT().
			CreateQuote(gomock.Any(), "cli-1", []usecase.ItemSelection{{ItemID: "cat-1", Quantity: 2}}, gomock.Any()).
			Return(entities.Quote{ID: "q-1", ClientID: "cli-1", Status: entities.QuoteStatusPendente}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes", bytes.NewBufferString(`{"client_id":"cli-1","items":[{"item_id":"  ","quantity":1},{"item_id":"cat-1","quantity":2}]}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.POST("/v1/quotes", h.CreateQuote)

		now := time.Now().UTC()
		uc.EXPECT().CreateQuote(gomock.Any(), "cli-1", gomock.Any(), gomock.Any()).Return(entities.Quote{
			ID:        "q-1",
			ClientID:  "cli-1",
			Status:    entities.QuoteStatusPendente,
			Totals:    pricing.BudgetTotals{GrandTotal: 404.08},
			CreatedAt: now,
			UpdatedAt: now,
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes", bytes.NewBufferString(`{"client_id":"cli-1","items":[{"item_id":"cat-1","quantity":1}],"terms":{"distance_km":50,"rate_per_km":1.5}}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["id"] != "q-1" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestQuoteHandler_PreviewQuote(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.POST("/v1/quotes/preview", h.PreviewQuote)

		uc.EXPECT().PreviewQuote(gomock.Any(), gomock.Any(), gomock.Any()).Return(
			[]pricing.LineItem{{ItemID: "cat-1", Quantity: 1, TotalValue: 200}},
			pricing.BudgetTotals{GrandTotal: 250},
			nil,
		)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes/preview", bytes.NewBufferString(`{"items":[{"item_id":"cat-1","quantity":1}]}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if _, ok := body["totals"]; !ok {
			t.Fatalf("expected totals in response body: %s", w.Body.String())
		}
	})

	t.Run("empty selection", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.POST("/v1/quotes/preview", h.PreviewQuote)

		uc.EXPECT().PreviewQuote(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, pricing.BudgetTotals{}, usecase.ErrEmptySelection)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes/preview", bytes.NewBufferString(`{"items":[]}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestQuoteHandler_PatchStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("approve success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.PATCH("/v1/quotes/:id/approve", h.ApproveQuote)

		uc.EXPECT().ApproveByID(gomock.Any(), "q-1").Return(entities.Quote{ID: "q-1", Status: entities.QuoteStatusAprovado}, nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/quotes/q-1/approve", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("reject not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.PATCH("/v1/quotes/:id/reject", h.RejectQuote)

		uc.EXPECT().RejectByID(gomock.Any(), "missing").Return(entities.Quote{}, usecase.ErrQuoteNotFound)

		req := httptest.NewRequest(http.MethodPatch, "/v1/quotes/missing/reject", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestQuoteHandler_InvoiceItems(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.GET("/v1/quotes/:id/invoice-items", h.InvoiceItems)

		uc.EXPECT().InvoiceItems(gomock.Any(), "q-1").Return([]pricing.AdjustedItem{
			{ItemID: "cat-1", Quantity: 1, AdjustedUnitPrice: 233.85, AdjustedTotal: 233.85},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/quotes/q-1/invoice-items", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["quote_id"] != "q-1" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.GET("/v1/quotes/:id/invoice-items", h.InvoiceItems)

		uc.EXPECT().InvoiceItems(gomock.Any(), "missing").Return(nil, usecase.ErrQuoteNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/quotes/missing/invoice-items", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestMapQuoteError(t *testing.T) {
	if got := mapQuoteError(usecase.ErrInvalidQuoteID); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapQuoteError(usecase.ErrInvalidClientID); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapQuoteError(usecase.ErrEmptySelection); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapQuoteError(usecase.ErrUnknownCatalogItem); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapQuoteError(usecase.ErrQuoteNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapQuoteError(errors.New("x")); got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500")
	}
}
