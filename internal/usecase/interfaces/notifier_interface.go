package interfaces

import (
	"context"

	"backing_tracks/internal/domain/entities"
)

// INotifier delivers customer messages. Delivery failures never roll back
// the operation that triggered them.
type INotifier interface {
	Notify(ctx context.Context, n entities.Notification) error
}
