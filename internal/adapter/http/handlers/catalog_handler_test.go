package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/marcusergarcia/v0-gestor-financeiro-z5-sub000/internal/adapter/http/handlers/mocks"
	"github.com/marcusergarcia/v0-gestor-financeiro-z5-sub000/internal/domain/entities"
	"github.com/marcusergarcia/v0-gestor-financeiro-z5-sub000/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestCatalogHandler_ListCatalog(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockICatalogUseCase(ctrl)
	h := NewCatalogHandler(uc)

	r := gin.New()
	r.GET("/v1/catalog", h.ListCatalog)

	uc.EXPECT().List(gomock.Any()).Return([]entities.CatalogItem{
		{ID: "cat-1", Name: "Portão social", Category: "portoes", UnitRate: 200},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/catalog", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body []map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if len(body) != 1 || body[0]["id"] != "cat-1" {
		t.Fatalf("unexpected response body: %s", w.Body.String())
	}
}

func TestCatalogHandler_CreateCatalogItem(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing name rejected by binding", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		h := NewCatalogHandler(uc)

		r := gin.New()
		r.POST("/v1/catalog", h.CreateCatalogItem)

		req := httptest.NewRequest(http.MethodPost, "/v1/catalog", bytes.NewBufferString(`{"category":"portoes"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("blank name mapped to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		h := NewCatalogHandler(uc)

		r := gin.New()
		r.POST("/v1/catalog", h.CreateCatalogItem)

		uc.EXPECT().Create(gomock.Any(), "", "portoes", 200.0, 0.0).Return(entities.CatalogItem{}, usecase.ErrInvalidCatalogItem)

		req := httptest.NewRequest(http.MethodPost, "/v1/catalog", bytes.NewBufferString(`{"name":"   ","category":"portoes","unit_rate":200}`))
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
		uc := mocks.NewMockICatalogUseCase(ctrl)
		h := NewCatalogHandler(uc)

		r := gin.New()
		r.POST("/v1/catalog", h.CreateCatalogItem)

		uc.EXPECT().Create(gomock.Any(), "Motor deslizante", "motores", 350.0, 80.0).Return(entities.CatalogItem{
			ID: "cat-2", Name: "Motor deslizante", Category: "motores", UnitRate: 350, LaborRate: 80,
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/catalog", bytes.NewBufferString(`{"name":"Motor deslizante","category":"motores","unit_rate":350,"labor_rate":80}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["id"] != "cat-2" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}
