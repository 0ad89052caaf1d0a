package handlers

import (
	"errors"
	"net/http"

	request "github.com/marcusergarcia/v0-gestor-financeiro-z5-sub000/internal/adapter/http/dto/request"
	response "github.com/marcusergarcia/v0-gestor-financeiro-z5-sub000/internal/adapter/http/dto/response"
	"github.com/marcusergarcia/v0-gestor-financeiro-z5-sub000/internal/usecase"
	"github.com/marcusergarcia/v0-gestor-financeiro-z5-sub000/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidCatalogPayload = pkg.NewDomainErrorSimple("INVALID_CATALOG_INPUT", "Invalid catalog payload", http.StatusBadRequest)
)

// CatalogHandler handles HTTP requests for the equipment catalog.

type CatalogHandler struct {
	usecase usecase.ICatalogUseCase
}

func NewCatalogHandler(uc usecase.ICatalogUseCase) *CatalogHandler {
	return &CatalogHandler{usecase: uc}
}

func (h *CatalogHandler) ListCatalog(c *gin.Context) {
	items, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCatalogItems(items))
}

func (h *CatalogHandler) CreateCatalogItem(c *gin.Context) {
	var payload request.CatalogItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCatalogPayload.HTTPStatus, errInvalidCatalogPayload.ToHTTPError())
		return
	}

	item, err := h.usecase.Create(c.Request.Context(), payload.ResolveName(), payload.ResolveCategory(), payload.ResolveUnitRate(), payload.ResolveLaborRate())
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromCatalogItem(item))
}

func mapCatalogError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidCatalogItem):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
