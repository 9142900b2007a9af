package interfaces

import (
	"context"

	"backing_tracks/internal/domain/entities"
)

// ITrackRequestRepository abstracts DynamoDB persistence for TrackRequest.
//
// Lookups and conditional updates return a zero TrackRequest (ID == "") when
// the record does not exist or the condition did not hold.
type ITrackRequestRepository interface {
	Create(ctx context.Context, r entities.TrackRequest) (entities.TrackRequest, error)
	GetByID(ctx context.Context, id string) (entities.TrackRequest, error)
	ListByOwner(ctx context.Context, ownerUserID string) ([]entities.TrackRequest, error)
	ListAll(ctx context.Context) ([]entities.TrackRequest, error)
	UpdateOptions(ctx context.Context, id string, opts entities.RequestOptions) (entities.TrackRequest, error)
	UpdateStatus(ctx context.Context, id string, status entities.TrackRequestStatus) (entities.TrackRequest, error)
	// AssignOwner only succeeds while the request has no owner.
	AssignOwner(ctx context.Context, id string, ownerUserID string) (entities.TrackRequest, error)
	// SetGuestAccessToken only succeeds while the request has no token.
	SetGuestAccessToken(ctx context.Context, id string, token string) (entities.TrackRequest, error)
}
