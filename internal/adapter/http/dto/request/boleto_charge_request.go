package request

import "encoding/json"

// BoletoChargeCreateRequest is the payload for the "emite boleto" route.
//
// `provider_payload` is forwarded as-is (raw JSON) to support varying
// Mercado Pago schemas; amount and reference come from the quote, never
// from this payload.

type BoletoChargeCreateRequest struct {
	ProviderPayload json.RawMessage `json:"provider_payload"`
}
