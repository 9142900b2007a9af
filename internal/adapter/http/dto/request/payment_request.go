package request

import "encoding/json"

// PaymentCreateRequest is the optional envelope for the payment route.
//
// `mp_payload` is forwarded to Mercado Pago as-is, so its schema can vary.
// A body without the envelope is treated as the payload itself.
type PaymentCreateRequest struct {
	MPPayload json.RawMessage `json:"mp_payload" swaggertype:"object"`
}
