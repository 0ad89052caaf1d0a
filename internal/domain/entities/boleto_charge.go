package entities

import (
	"encoding/json"
	"time"
)

// ChargeStatus represents the outcome of a boleto charge.
type ChargeStatus string

const (
	ChargeStatusPendente ChargeStatus = "pendente"
	ChargeStatusAprovado ChargeStatus = "aprovado"
	ChargeStatusNegado   ChargeStatus = "negado"
)

// BoletoCharge is a boleto issued for an approved quote.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (quote_id-index): quote_id
//
// Provider payload:
//   - ProviderPayloadRaw keeps the original provider response (JSON) for audit.
//   - ProviderPayload is an optional parsed representation for querying.
type BoletoCharge struct {
	ID      string       `json:"id"`
	QuoteID string       `json:"quote_id"`
	Amount  float64      `json:"amount"`
	Date    time.Time    `json:"date"`
	Status  ChargeStatus `json:"status"`

	ProviderPayloadRaw json.RawMessage        `json:"provider_payload_raw,omitempty"`
	ProviderPayload    map[string]interface{} `json:"provider_payload,omitempty"`
}
