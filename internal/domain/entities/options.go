package entities

import "strings"

// TrackType selects the base price band of a request.
type TrackType string

const (
	TrackTypeQuick    TrackType = "quick"
	TrackTypeOneTake  TrackType = "one-take"
	TrackTypePolished TrackType = "polished"
)

// BackingType is a flat add-on describing what kind of backing is produced.
type BackingType string

const (
	BackingTypeFullSong    BackingType = "full-song"
	BackingTypeAuditionCut BackingType = "audition-cut"
	BackingTypeNoteBash    BackingType = "note-bash"
)

// AdditionalService is a flat add-on for extra work on a request.
type AdditionalService string

const (
	ServiceRushOrder          AdditionalService = "rush-order"
	ServiceComplexSongs       AdditionalService = "complex-songs"
	ServiceAdditionalEdits    AdditionalService = "additional-edits"
	ServiceExclusiveOwnership AdditionalService = "exclusive-ownership"
)

// RequestOptions is the priced part of a track request.
//
// Manual fields are operator overrides and are nil when unset. Values outside
// the catalog are kept as-is; pricing treats them as contributing zero.
type RequestOptions struct {
	TrackType          TrackType           `json:"track_type"`
	BackingTypes       []BackingType       `json:"backing_types,omitempty"`
	AdditionalServices []AdditionalService `json:"additional_services,omitempty"`
	ManualFinalPrice   *float64            `json:"manual_final_price,omitempty"`
	ManualEstimateLow  *float64            `json:"manual_estimate_low,omitempty"`
	ManualEstimateHigh *float64            `json:"manual_estimate_high,omitempty"`
}

// NormalizeBackingTypes turns the raw values found in stored or submitted
// payloads into a deduplicated list, preserving first-seen order.
// Blank entries are dropped.
func NormalizeBackingTypes(raw []string) []BackingType {
	if len(raw) == 0 {
		return nil
	}
	out := make([]BackingType, 0, len(raw))
	seen := make(map[BackingType]struct{}, len(raw))
	for _, v := range raw {
		bt := BackingType(strings.ToLower(strings.TrimSpace(v)))
		if bt == "" {
			continue
		}
		if _, ok := seen[bt]; ok {
			continue
		}
		seen[bt] = struct{}{}
		out = append(out, bt)
	}
	return out
}

// NormalizeServices is the AdditionalService counterpart of NormalizeBackingTypes.
func NormalizeServices(raw []string) []AdditionalService {
	if len(raw) == 0 {
		return nil
	}
	out := make([]AdditionalService, 0, len(raw))
	seen := make(map[AdditionalService]struct{}, len(raw))
	for _, v := range raw {
		s := AdditionalService(strings.ToLower(strings.TrimSpace(v)))
		if s == "" {
			continue
		}
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
