package request

import (
	"bytes"
	"encoding/json"
	"errors"

	"backing_tracks/internal/domain/entities"
	"backing_tracks/internal/usecase"
)

var ErrInvalidStringList = errors.New("expected a string or an array of strings")

// StringList accepts either a single JSON string or an array of strings.
// Older order forms posted backing_types as a single value.
type StringList []string

func (l *StringList) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*l = nil
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*l = StringList{s}
		return nil
	}
	var list []string
	if err := json.Unmarshal(data, &list); err != nil {
		return ErrInvalidStringList
	}
	*l = list
	return nil
}

// OptionsRequest is the priced part of the order form.
type OptionsRequest struct {
	TrackType          string     `json:"track_type" binding:"required,max=40"`
	BackingTypes       StringList `json:"backing_types" swaggertype:"array,string"`
	AdditionalServices StringList `json:"additional_services" swaggertype:"array,string"`
}

func (r OptionsRequest) ToOptions() entities.RequestOptions {
	return entities.RequestOptions{
		TrackType:          entities.TrackType(normalizeToken(r.TrackType)),
		BackingTypes:       entities.NormalizeBackingTypes(r.BackingTypes),
		AdditionalServices: entities.NormalizeServices(r.AdditionalServices),
	}
}

// QuoteRequest previews the price of a set of options.
type QuoteRequest struct {
	OptionsRequest
}

// TrackRequestCreateRequest is the order form submission.
type TrackRequestCreateRequest struct {
	SongTitle string `json:"song_title" binding:"required,max=200"`
	Artist    string `json:"artist" binding:"max=200"`
	Notes     string `json:"notes" binding:"max=2000"`
	Email     string `json:"email" binding:"omitempty,email"`
	OptionsRequest
}

func (r TrackRequestCreateRequest) ToCommand() usecase.SubmitCommand {
	return usecase.SubmitCommand{
		SongTitle: r.SongTitle,
		Artist:    r.Artist,
		Notes:     r.Notes,
		Email:     r.Email,
		Options:   r.ToOptions(),
	}
}

// PricingUpdateRequest replaces all manual overrides; omitted fields clear them.
type PricingUpdateRequest struct {
	FinalPrice   *float64 `json:"final_price" binding:"omitempty,gte=0"`
	EstimateLow  *float64 `json:"estimate_low" binding:"omitempty,gte=0"`
	EstimateHigh *float64 `json:"estimate_high" binding:"omitempty,gte=0"`
}

func (r PricingUpdateRequest) ToManualPricing() usecase.ManualPricing {
	return usecase.ManualPricing{
		FinalPrice:   r.FinalPrice,
		EstimateLow:  r.EstimateLow,
		EstimateHigh: r.EstimateHigh,
	}
}

type StatusUpdateRequest struct {
	Status string `json:"status" binding:"required,oneof=pending in_progress completed cancelled"`
}

// LegacyLinkRequest carries the email typed in on an old, tokenless link.
type LegacyLinkRequest struct {
	Email string `json:"email" binding:"required,email"`
}
