package response

import (
	"time"

	"backing_tracks/internal/domain/entities"
	"backing_tracks/internal/domain/pricing"
	"backing_tracks/internal/usecase"
)

type BaseLineResponse struct {
	TrackType string  `json:"track_type"`
	Cost      float64 `json:"cost"`
}

type AddOnLineResponse struct {
	Kind  string  `json:"kind"`
	Key   string  `json:"key"`
	Label string  `json:"label"`
	Cost  float64 `json:"cost"`
}

// CostResponse is the itemized price shown to customers. PriceLine is the
// same sentence used in notification emails.
type CostResponse struct {
	BaseLine       BaseLineResponse    `json:"base_line"`
	AddOnLines     []AddOnLineResponse `json:"add_on_lines"`
	TotalCost      float64             `json:"total_cost"`
	DisplayLow     *float64            `json:"display_low,omitempty"`
	DisplayHigh    *float64            `json:"display_high,omitempty"`
	DisplayPoint   *float64            `json:"display_point,omitempty"`
	PriceLine      string              `json:"price_line"`
	UnknownOptions []string            `json:"unknown_options,omitempty"`
}

func FromCostBreakdown(b pricing.CostBreakdown) CostResponse {
	lines := make([]AddOnLineResponse, 0, len(b.AddOnLines))
	for _, l := range b.AddOnLines {
		lines = append(lines, AddOnLineResponse{Kind: string(l.Kind), Key: l.Key, Label: l.Label, Cost: l.Cost})
	}
	return CostResponse{
		BaseLine:       BaseLineResponse{TrackType: string(b.BaseLine.Type), Cost: b.BaseLine.Cost},
		AddOnLines:     lines,
		TotalCost:      b.TotalCost,
		DisplayLow:     b.DisplayLow,
		DisplayHigh:    b.DisplayHigh,
		DisplayPoint:   b.DisplayPoint,
		PriceLine:      pricing.FormatPriceLine(b),
		UnknownOptions: b.UnknownOptions,
	}
}

type AccessResponse struct {
	Reason      string `json:"reason"`
	NeedsSignIn bool   `json:"needs_sign_in"`
}

// ManualPricingResponse is only rendered for operators.
type ManualPricingResponse struct {
	FinalPrice   *float64 `json:"final_price,omitempty"`
	EstimateLow  *float64 `json:"estimate_low,omitempty"`
	EstimateHigh *float64 `json:"estimate_high,omitempty"`
}

type TrackRequestResponse struct {
	ID                 string                 `json:"id"`
	SongTitle          string                 `json:"song_title"`
	Artist             string                 `json:"artist,omitempty"`
	Notes              string                 `json:"notes,omitempty"`
	TrackType          string                 `json:"track_type"`
	BackingTypes       []string               `json:"backing_types"`
	AdditionalServices []string               `json:"additional_services"`
	Status             string                 `json:"status"`
	OwnerEmail         string                 `json:"owner_email"`
	Claimed            bool                   `json:"claimed"`
	CreatedAt          time.Time              `json:"created_at"`
	UpdatedAt          time.Time              `json:"updated_at"`
	Cost               *CostResponse          `json:"cost,omitempty"`
	PricingIssue       string                 `json:"pricing_issue,omitempty"`
	ManualPricing      *ManualPricingResponse `json:"manual_pricing,omitempty"`
	Access             AccessResponse         `json:"access"`
}

func FromTrackRequestView(v usecase.TrackRequestView) TrackRequestResponse {
	r := v.Request
	res := TrackRequestResponse{
		ID:                 r.ID,
		SongTitle:          r.SongTitle,
		Artist:             r.Artist,
		Notes:              r.Notes,
		TrackType:          string(r.Options.TrackType),
		BackingTypes:       make([]string, 0, len(r.Options.BackingTypes)),
		AdditionalServices: make([]string, 0, len(r.Options.AdditionalServices)),
		Status:             string(r.Status),
		OwnerEmail:         r.OwnerEmail,
		Claimed:            r.OwnerUserID != "",
		CreatedAt:          r.CreatedAt,
		UpdatedAt:          r.UpdatedAt,
		PricingIssue:       v.PricingIssue,
		Access: AccessResponse{
			Reason:      string(v.Decision.Reason),
			NeedsSignIn: v.Decision.NeedsSignIn,
		},
	}
	for _, b := range r.Options.BackingTypes {
		res.BackingTypes = append(res.BackingTypes, string(b))
	}
	for _, s := range r.Options.AdditionalServices {
		res.AdditionalServices = append(res.AdditionalServices, string(s))
	}
	if v.Cost != nil {
		c := FromCostBreakdown(*v.Cost)
		res.Cost = &c
	}
	if v.Decision.Reason == entities.AccessReasonOperatorOverride {
		res.ManualPricing = &ManualPricingResponse{
			FinalPrice:   r.Options.ManualFinalPrice,
			EstimateLow:  r.Options.ManualEstimateLow,
			EstimateHigh: r.Options.ManualEstimateHigh,
		}
	}
	return res
}

func FromTrackRequestViews(views []usecase.TrackRequestView) []TrackRequestResponse {
	out := make([]TrackRequestResponse, 0, len(views))
	for _, v := range views {
		out = append(out, FromTrackRequestView(v))
	}
	return out
}

// SubmitResponse is returned once after submission. GuestAccessToken is only
// present for guest orders and is not shown again.
type SubmitResponse struct {
	Request          TrackRequestResponse `json:"request"`
	GuestAccessToken string               `json:"guest_access_token,omitempty"`
	ViewURL          string               `json:"view_url"`
}

func FromSubmitResult(res usecase.SubmitResult, viewer entities.ViewerContext) SubmitResponse {
	cost := res.Cost
	return SubmitResponse{
		Request: FromTrackRequestView(usecase.TrackRequestView{
			Request:  res.Request,
			Cost:     &cost,
			Decision: submitterDecision(res, viewer),
		}),
		GuestAccessToken: res.GuestAccessToken,
		ViewURL:          res.ViewURL,
	}
}

func submitterDecision(res usecase.SubmitResult, viewer entities.ViewerContext) entities.AccessDecision {
	if res.Request.OwnerUserID != "" {
		return entities.AccessDecision{Granted: true, Reason: entities.AccessReasonOwnerMatch}
	}
	return entities.AccessDecision{Granted: true, Reason: entities.AccessReasonGuestTokenMatch, NeedsSignIn: !viewer.IsAuthenticated()}
}

// LegacyLinkResponse sends the caller to the upgraded, tokenised link.
type LegacyLinkResponse struct {
	GuestAccessToken string `json:"guest_access_token"`
	ViewURL          string `json:"view_url"`
}

func FromLegacyLinkResult(res usecase.LegacyLinkResult) LegacyLinkResponse {
	return LegacyLinkResponse{GuestAccessToken: res.GuestAccessToken, ViewURL: res.ViewURL}
}
