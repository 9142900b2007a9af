package interfaces

import (
	"context"
	"encoding/json"
)

// IPaymentGateway charges a track request with an external provider. It
// returns the provider's payment id, its raw status and the response body
// kept for traceability.
type IPaymentGateway interface {
	CreatePayment(ctx context.Context, payload json.RawMessage) (providerID string, status string, response json.RawMessage, err error)
}
