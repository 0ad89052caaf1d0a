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
	"github.com/marcusergarcia/v0-gestor-financeiro-z5-sub000/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestBoletoChargeHandler_CreateChargeByQuoteID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("empty body becomes empty payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBoletoChargeUseCase(ctrl)
		h := NewBoletoChargeHandler(uc)

		r := gin.New()
		r.POST("/v1/charges/:quote_id", h.CreateChargeByQuoteID)

		uc.EXPECT().CreateCharge(gomock.Any(), "q-1", json.RawMessage("{}")).Return(entities.BoletoCharge{ID: "ch-1", QuoteID: "q-1", Status: entities.ChargeStatusPendente}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/charges/q-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("envelope payload unwrapped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBoletoChargeUseCase(ctrl)
		h := NewBoletoChargeHandler(uc)

		r := gin.New()
		r.POST("/v1/charges/:quote_id", h.CreateChargeByQuoteID)

		uc.EXPECT().
			CreateCharge(gomock.Any(), "q-1", gomock.Any()).
			DoAndReturn(func(_ any, _ string, payload json.RawMessage) (entities.BoletoCharge, error) {
				var got map[string]any
				if err := json.Unmarshal(payload, &got); err != nil {
					t.Fatalf("payload not json: %v", err)
				}
				if got["payer_email"] != "a@b.c" {
					t.Fatalf("expected unwrapped payload, got %s", payload)
				}
				return entities.BoletoCharge{ID: "ch-1", QuoteID: "q-1"}, nil
			})

		req := httptest.NewRequest(http.MethodPost, "/v1/charges/q-1", bytes.NewBufferString(`{"provider_payload":{"payer_email":"a@b.c"}}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("invalid json body", func(t *testing.T) {
		t.Setenv("PAYMENT_GATEWAY_MOCK", "")
		t.Setenv("MERCADOPAGO_MOCK", "")

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBoletoChargeUseCase(ctrl)
		h := NewBoletoChargeHandler(uc)

		r := gin.New()
		r.POST("/v1/charges/:quote_id", h.CreateChargeByQuoteID)

		req := httptest.NewRequest(http.MethodPost, "/v1/charges/q-1", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("quote not approved", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBoletoChargeUseCase(ctrl)
		h := NewBoletoChargeHandler(uc)

		r := gin.New()
		r.POST("/v1/charges/:quote_id", h.CreateChargeByQuoteID)

		uc.EXPECT().CreateCharge(gomock.Any(), "q-1", gomock.Any()).Return(entities.BoletoCharge{}, usecase.ErrQuoteNotApproved)

		req := httptest.NewRequest(http.MethodPost, "/v1/charges/q-1", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}

func TestBoletoChargeHandler_GetChargeByQuoteID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("returns latest charge", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBoletoChargeUseCase(ctrl)
		h := NewBoletoChargeHandler(uc)

		r := gin.New()
		r.GET("/v1/charges/:quote_id", h.GetChargeByQuoteID)

		old := time.Now().UTC().Add(-time.Hour)
		uc.EXPECT().ListByQuoteID(gomock.Any(), "q-1").Return([]entities.BoletoCharge{
			{ID: "ch-1", QuoteID: "q-1", Date: old},
			{ID: "ch-2", QuoteID: "q-1", Date: old.Add(time.Hour)},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/charges/q-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["id"] != "ch-2" {
			t.Fatalf("expected latest charge, got %s", w.Body.String())
		}
	})

	t.Run("no charges", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBoletoChargeUseCase(ctrl)
		h := NewBoletoChargeHandler(uc)

		r := gin.New()
		r.GET("/v1/charges/:quote_id", h.GetChargeByQuoteID)

		uc.EXPECT().ListByQuoteID(gomock.Any(), "q-1").Return(nil, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/charges/q-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestMapBoletoChargeError(t *testing.T) {
	if got := mapBoletoChargeError(usecase.ErrInvalidChargeQuoteID); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapBoletoChargeError(usecase.ErrInvalidChargePayload); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapBoletoChargeError(usecase.ErrPaymentGatewayUnavailable); got.HTTPStatus != http.StatusBadGateway {
		t.Fatalf("expected 502")
	}
	if got := mapBoletoChargeError(usecase.ErrQuoteNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapBoletoChargeError(usecase.ErrQuoteNotApproved); got.HTTPStatus != http.StatusConflict {
		t.Fatalf("expected 409")
	}
	if got := mapBoletoChargeError(errors.New("x")); got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500")
	}
}
