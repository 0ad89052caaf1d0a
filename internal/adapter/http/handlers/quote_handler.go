package handlers

import (
	"context"
	"errors"
	"net/http"

	request "github.com/marcusergarcia/v0-gestor-financeiro-z5-sub000/internal/adapter/http/dto/request"
	response "github.com/marcusergarcia/v0-gestor-financeiro-z5-sub000/internal/adapter/http/dto/response"
	"github.com/marcusergarcia/v0-gestor-financeiro-z5-sub000/internal/domain/entities"
	"github.com/marcusergarcia/v0-gestor-financeiro-z5-sub000/internal/usecase"
	"github.com/marcusergarcia/v0-gestor-financeiro-z5-sub000/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidQuotePayload = pkg.NewDomainErrorSimple("INVALID_QUOTE_INPUT", "Invalid quote payload", http.StatusBadRequest)
)

// QuoteHandler handles HTTP requests for budgets (orçamentos).

type QuoteHandler struct {
	usecase usecase.IQuoteUseCase
}

func NewQuoteHandler(uc usecase.IQuoteUseCase) *QuoteHandler {
	return &QuoteHandler{usecase: uc}
}

func (h *QuoteHandler) CreateQuote(c *gin.Context) {
	var payload request.QuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	quote, err := h.usecase.CreateQuote(c.Request.Context(), payload.ResolveClientID(), payload.ResolveSelection(), payload.ResolveTerms())
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromQuote(quote))
}

func (h *QuoteHandler) UpdateQuote(c *gin.Context) {
	var payload request.QuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	quote, err := h.usecase.UpdateQuote(c.Request.Context(), c.Param("id"), payload.ResolveSelection(), payload.ResolveTerms())
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuote(quote))
}

// PreviewQuote prices a selection without persisting anything.
func (h *QuoteHandler) PreviewQuote(c *gin.Context) {
	var payload request.QuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	items, totals, err := h.usecase.PreviewQuote(c.Request.Context(), payload.ResolveSelection(), payload.ResolveTerms())
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuotePreview(items, totals))
}

func (h *QuoteHandler) GetQuote(c *gin.Context) {
	quote, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuote(quote))
}

func (h *QuoteHandler) ListQuotes(c *gin.Context) {
	quotes, err := h.usecase.ListByClientID(c.Request.Context(), c.Query("client_id"))
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuotes(quotes))
}

func (h *QuoteHandler) ApproveQuote(c *gin.Context) {
	h.patchQuoteStatus(c, h.usecase.ApproveByID)
}

func (h *QuoteHandler) RejectQuote(c *gin.Context) {
	h.patchQuoteStatus(c, h.usecase.RejectByID)
}

func (h *QuoteHandler) CancelQuote(c *gin.Context) {
	h.patchQuoteStatus(c, h.usecase.CancelByID)
}

func (h *QuoteHandler) patchQuoteStatus(
	c *gin.Context,
	updater func(ctx context.Context, id string) (entities.Quote, error),
) {
	quote, err := updater(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuote(quote))
}

// InvoiceItems returns the quote's items with unit prices prorated to the
// charged material subtotal.
func (h *QuoteHandler) InvoiceItems(c *gin.Context) {
	id := c.Param("id")
	items, err := h.usecase.InvoiceItems(c.Request.Context(), id)
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromInvoiceItems(id, items))
}

func mapQuoteError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidQuoteID), errors.Is(err, usecase.ErrInvalidClientID), errors.Is(err, usecase.ErrEmptySelection):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrUnknownCatalogItem):
		return pkg.NewDomainErrorSimple("UNKNOWN_CATALOG_ITEM", "Unknown catalog item in selection", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
