package interfaces

import (
	"context"

	"backing_tracks/internal/domain/entities"
)

// IPaymentRepository abstracts DynamoDB persistence for Payment.
type IPaymentRepository interface {
	Create(ctx context.Context, p entities.Payment) (entities.Payment, error)
	GetByID(ctx context.Context, id string) (entities.Payment, error)
	ListByRequestID(ctx context.Context, requestID string) ([]entities.Payment, error)
}
