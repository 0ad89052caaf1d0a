package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"os"
	"strings"

	response "github.com/marcusergarcia/v0-gestor-financeiro-z5-sub000/internal/adapter/http/dto/response"
	"github.com/marcusergarcia/v0-gestor-financeiro-z5-sub000/internal/usecase"
	"github.com/marcusergarcia/v0-gestor-financeiro-z5-sub000/pkg"

	"github.com/gin-gonic/gin"
)

// BoletoChargeHandler handles HTTP requests for boleto charges.

type BoletoChargeHandler struct {
	usecase usecase.IBoletoChargeUseCase
}

func NewBoletoChargeHandler(uc usecase.IBoletoChargeUseCase) *BoletoChargeHandler {
	return &BoletoChargeHandler{usecase: uc}
}

// CreateChargeByQuoteID issues a boleto for the approved quote in the path.
func (h *BoletoChargeHandler) CreateChargeByQuoteID(c *gin.Context) {
	quoteID := c.Param("quote_id")
	log.Printf("[charge][handler] create start quote_id=%s", quoteID)
	mockMode := isChargeGatewayMockEnabled()
	payload, err := readProviderPayload(c)
	if err != nil {
		if mockMode {
			log.Printf("[charge][handler] payload invalid in mock mode; fallback to empty payload quote_id=%s err=%v", quoteID, err)
			payload = json.RawMessage("{}")
		} else {
			log.Printf("[charge][handler] invalid payload quote_id=%s err=%v", quoteID, err)
			appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
	}

	created, err := h.usecase.CreateCharge(c.Request.Context(), quoteID, payload)
	if err != nil {
		log.Printf("[charge][handler] create failed quote_id=%s err=%v", quoteID, err)
		appErr := mapBoletoChargeError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[charge][handler] create success quote_id=%s charge_id=%s status=%s", quoteID, created.ID, created.Status)

	c.JSON(http.StatusOK, response.FromBoletoCharge(created))
}

// GetChargeByQuoteID returns the latest charge for a quote.
func (h *BoletoChargeHandler) GetChargeByQuoteID(c *gin.Context) {
	quoteID := c.Param("quote_id")
	log.Printf("[charge][handler] get-by-quote start quote_id=%s", quoteID)

	charges, err := h.usecase.ListByQuoteID(c.Request.Context(), quoteID)
	if err != nil {
		log.Printf("[charge][handler] get-by-quote failed quote_id=%s err=%v", quoteID, err)
		appErr := mapBoletoChargeError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	if len(charges) == 0 {
		log.Printf("[charge][handler] get-by-quote not-found quote_id=%s", quoteID)
		appErr := pkg.NewDomainErrorSimple("CHARGE_NOT_FOUND", "Charge not found", http.StatusNotFound)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	latest := charges[0]
	for _, ch := range charges[1:] {
		if ch.Date.After(latest.Date) {
			latest = ch
		}
	}
	log.Printf("[charge][handler] get-by-quote success quote_id=%s charge_id=%s status=%s", quoteID, latest.ID, latest.Status)

	c.JSON(http.StatusOK, response.FromBoletoCharge(latest))
}

func readProviderPayload(c *gin.Context) (json.RawMessage, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return json.RawMessage("{}"), nil
	}
	if !json.Valid(raw) {
		return nil, errors.New("request body is not valid json")
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err == nil {
		if wrapped, ok := envelope["provider_payload"]; ok {
			if len(strings.TrimSpace(string(wrapped))) == 0 || strings.TrimSpace(string(wrapped)) == "null" {
				return nil, errors.New("provider_payload cannot be empty")
			}
			return wrapped, nil
		}
	}

	return json.RawMessage(raw), nil
}

func mapBoletoChargeError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidChargeQuoteID), errors.Is(err, usecase.ErrInvalidChargePayload):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayUnavailable):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAVAILABLE", "Payment provider unavailable", http.StatusBadGateway)
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrQuoteNotApproved):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_APPROVED", "Quote not approved", http.StatusConflict)
	case errors.Is(err, usecase.ErrChargeNotFound):
		return pkg.NewDomainErrorSimple("CHARGE_NOT_FOUND", "Charge not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func isChargeGatewayMockEnabled() bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv("PAYMENT_GATEWAY_MOCK")))
	switch v {
	case "1", "true", "yes", "on", "mock":
		return true
	}

	v = strings.ToLower(strings.TrimSpace(os.Getenv("MERCADOPAGO_MOCK")))
	switch v {
	case "1", "true", "yes", "on", "mock":
		return true
	}

	return false
}
