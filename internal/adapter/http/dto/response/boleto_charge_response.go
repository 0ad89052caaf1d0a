package response

import (
	"time"

	"github.com/marcusergarcia/v0-gestor-financeiro-z5-sub000/internal/domain/entities"
)

type BoletoChargeResponse struct {
	ID      string    `json:"id"`
	QuoteID string    `json:"quote_id"`
	Amount  float64   `json:"amount"`
	Date    time.Time `json:"date"`
	Status  string    `json:"status"`

	ProviderPayloadRaw string                 `json:"provider_payload_raw,omitempty"`
	ProviderPayload    map[string]interface{} `json:"provider_payload,omitempty"`
}

func FromBoletoCharge(c entities.BoletoCharge) BoletoChargeResponse {
	return BoletoChargeResponse{
		ID:                 c.ID,
		QuoteID:            c.QuoteID,
		Amount:             c.Amount,
		Date:               c.Date,
		Status:             string(c.Status),
		ProviderPayloadRaw: string(c.ProviderPayloadRaw),
		ProviderPayload:    c.ProviderPayload,
	}
}

func FromBoletoCharges(charges []entities.BoletoCharge) []BoletoChargeResponse {
	out := make([]BoletoChargeResponse, len(charges))
	for i, c := range charges {
		out[i] = FromBoletoCharge(c)
	}
	return out
}
