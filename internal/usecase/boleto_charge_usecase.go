package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/marcusergarcia/v0-gestor-financeiro-z5-sub000/internal/domain/entities"
	"github.com/marcusergarcia/v0-gestor-financeiro-z5-sub000/internal/usecase/interfaces"
)

var (
	ErrChargeNotFound            = errors.New("boleto charge not found")
	ErrInvalidChargeQuoteID      = errors.New("invalid quote_id")
	ErrInvalidChargePayload      = errors.New("invalid charge payload")
	ErrQuoteNotApproved          = errors.New("quote not approved")
	ErrPaymentGatewayUnavailable = errors.New("payment gateway not configured")
)

// defaultBoletoMethodID is the payment method sent to the provider when the
// caller does not pick one (Bradesco boleto on Mercado Pago).
const defaultBoletoMethodID = "bolbradesco"

// IBoletoChargeUseCase creates and reads boleto charges for approved quotes.
//
// The charge amount is always the persisted quote's grand total; the caller's
// payload can carry payer details but never the amount.

type IBoletoChargeUseCase interface {
	CreateCharge(ctx context.Context, quoteID string, payload json.RawMessage) (entities.BoletoCharge, error)
	GetByID(ctx context.Context, id string) (entities.BoletoCharge, error)
	ListByQuoteID(ctx context.Context, quoteID string) ([]entities.BoletoCharge, error)
}

type BoletoChargeUseCase struct {
	repo      interfaces.IBoletoChargeRepository
	quoteRepo interfaces.IQuoteRepository
	gateway   interfaces.IPaymentGateway
}

var _ IBoletoChargeUseCase = (*BoletoChargeUseCase)(nil)

func NewBoletoChargeUseCase(repo interfaces.IBoletoChargeRepository, quoteRepo interfaces.IQuoteRepository, gateway interfaces.IPaymentGateway) *BoletoChargeUseCase {
	return &BoletoChargeUseCase{repo: repo, quoteRepo: quoteRepo, gateway: gateway}
}

func (u *BoletoChargeUseCase) CreateCharge(ctx context.Context, quoteID string, payload json.RawMessage) (entities.BoletoCharge, error) {
	quoteID = strings.TrimSpace(quoteID)
	if quoteID == "" {
		return entities.BoletoCharge{}, ErrInvalidChargeQuoteID
	}
	if len(payload) == 0 {
		payload = json.RawMessage("{}")
	}
	if !json.Valid(payload) {
		return entities.BoletoCharge{}, ErrInvalidChargePayload
	}
	if u.gateway == nil {
		return entities.BoletoCharge{}, ErrPaymentGatewayUnavailable
	}

	quote, err := u.quoteRepo.GetByID(ctx, quoteID)
	if err != nil {
		log.Printf("[charge][usecase] failed loading quote quote_id=%s err=%v", quoteID, err)
		return entities.BoletoCharge{}, err
	}
	if quote.ID == "" {
		return entities.BoletoCharge{}, ErrQuoteNotFound
	}
	if quote.Status != entities.QuoteStatusAprovado {
		log.Printf("[charge][usecase] quote not approved quote_id=%s status=%s", quoteID, quote.Status)
		return entities.BoletoCharge{}, ErrQuoteNotApproved
	}

	payload, err = enrichChargePayload(payload, quote)
	if err != nil {
		return entities.BoletoCharge{}, ErrInvalidChargePayload
	}

	providerID, providerStatus, providerResp, err := u.gateway.CreatePayment(ctx, payload)
	if err != nil {
		log.Printf("[charge][usecase] gateway failed quote_id=%s err=%v", quoteID, err)
		return entities.BoletoCharge{}, err
	}
	log.Printf("[charge][usecase] gateway success quote_id=%s provider_payment_id=%s provider_status=%s", quoteID, providerID, providerStatus)

	var parsed map[string]interface{}
	if err := json.Unmarshal(providerResp, &parsed); err != nil {
		log.Printf("[charge][usecase] provider response unmarshal failed quote_id=%s err=%v", quoteID, err)
	}

	c := entities.BoletoCharge{
		ID:                 providerID,
		QuoteID:            quoteID,
		Amount:             quote.Totals.GrandTotal,
		Date:               time.Now().UTC(),
		Status:             chargeStatusFromProvider(providerStatus),
		ProviderPayloadRaw: providerResp,
		ProviderPayload:    parsed,
	}
	return u.repo.Create(ctx, c)
}

func (u *BoletoChargeUseCase) GetByID(ctx context.Context, id string) (entities.BoletoCharge, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.BoletoCharge{}, ErrChargeNotFound
	}

	c, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.BoletoCharge{}, err
	}
	if c.ID == "" {
		return entities.BoletoCharge{}, ErrChargeNotFound
	}
	return c, nil
}

func (u *BoletoChargeUseCase) ListByQuoteID(ctx context.Context, quoteID string) ([]entities.BoletoCharge, error) {
	quoteID = strings.TrimSpace(quoteID)
	if quoteID == "" {
		return nil, ErrInvalidChargeQuoteID
	}
	return u.repo.ListByQuoteID(ctx, quoteID)
}

// enrichChargePayload fills provider linkage fields and forces the amount to
// the quote's grand total. The quote in the database is the source of truth;
// a caller-supplied transaction_amount is always overwritten.
func enrichChargePayload(payload json.RawMessage, quote entities.Quote) (json.RawMessage, error) {
	var req map[string]any
	if err := json.Unmarshal(payload, &req); err != nil {
		return nil, err
	}

	if _, ok := req["payment_method_id"]; !ok {
		req["payment_method_id"] = defaultBoletoMethodID
	}
	if _, ok := req["external_reference"]; !ok {
		req["external_reference"] = quote.ID
	}
	if _, ok := req["description"]; !ok {
		req["description"] = fmt.Sprintf("Orçamento %s", quote.ID)
	}
	req["transaction_amount"] = quote.Totals.GrandTotal

	return json.Marshal(req)
}

func chargeStatusFromProvider(providerStatus string) entities.ChargeStatus {
	switch strings.ToLower(strings.TrimSpace(providerStatus)) {
	case "approved":
		return entities.ChargeStatusAprovado
	case "rejected", "cancelled":
		return entities.ChargeStatusNegado
	default:
		return entities.ChargeStatusPendente
	}
}
