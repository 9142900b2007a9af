package entities

import "time"

// TrackRequestStatus represents the fulfilment lifecycle of a request.
type TrackRequestStatus string

const (
	TrackRequestStatusPending    TrackRequestStatus = "pending"
	TrackRequestStatusInProgress TrackRequestStatus = "in_progress"
	TrackRequestStatusCompleted  TrackRequestStatus = "completed"
	TrackRequestStatusCancelled  TrackRequestStatus = "cancelled"
)

// IsValid reports whether s is one of the known statuses.
func (s TrackRequestStatus) IsValid() bool {
	switch s {
	case TrackRequestStatusPending, TrackRequestStatusInProgress, TrackRequestStatusCompleted, TrackRequestStatusCancelled:
		return true
	}
	return false
}

// TrackRequest is a customer's backing track order persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (owner_user_id-index): owner_user_id
//
// GuestAccessToken is issued once for requests created without an owner and
// is never rotated; outstanding email links depend on it.
type TrackRequest struct {
	ID               string             `json:"id"`
	SongTitle        string             `json:"song_title"`
	Artist           string             `json:"artist"`
	Notes            string             `json:"notes"`
	Options          RequestOptions     `json:"options"`
	OwnerUserID      string             `json:"owner_user_id,omitempty"`
	GuestAccessToken string             `json:"-"`
	OwnerEmail       string             `json:"owner_email"`
	Status           TrackRequestStatus `json:"status"`
	CreatedAt        time.Time          `json:"created_at"`
	UpdatedAt        time.Time          `json:"updated_at"`
}

// Record returns the authorization view of the request.
func (r TrackRequest) Record() RequestRecord {
	return RequestRecord{
		OwnerUserID:      r.OwnerUserID,
		GuestAccessToken: r.GuestAccessToken,
		OwnerEmail:       r.OwnerEmail,
	}
}
