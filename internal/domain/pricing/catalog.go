package pricing

import "backing_tracks/internal/domain/entities"

// AddOnKind tells which catalog an add-on line comes from.
type AddOnKind string

const (
	AddOnKindBackingType AddOnKind = "backing_type"
	AddOnKindService     AddOnKind = "additional_service"
)

type trackTypePrice struct {
	trackType entities.TrackType
	label     string
	// point is the single figure used for totals, invoices and email copy.
	point float64
	// low/high is the marketing band shown on the order form.
	low, high float64
}

type addOnPrice struct {
	key   string
	label string
	cost  float64
}

// Catalog order is the order of add-on lines in every breakdown.
// All non-zero amounts are >= 5.
var (
	trackTypeCatalog = []trackTypePrice{
		{trackType: entities.TrackTypeQuick, label: "Quick", point: 7, low: 5, high: 10},
		{trackType: entities.TrackTypeOneTake, label: "One-Take", point: 15, low: 10, high: 20},
		{trackType: entities.TrackTypePolished, label: "Polished", point: 30, low: 20, high: 40},
	}

	backingTypeCatalog = []addOnPrice{
		{key: string(entities.BackingTypeFullSong), label: "Full Song", cost: 5},
		{key: string(entities.BackingTypeAuditionCut), label: "Audition Cut", cost: 5},
		{key: string(entities.BackingTypeNoteBash), label: "Note Bash", cost: 10},
	}

	serviceCatalog = []addOnPrice{
		{key: string(entities.ServiceRushOrder), label: "Rush Order", cost: 10},
		{key: string(entities.ServiceComplexSongs), label: "Complex Songs", cost: 7},
		{key: string(entities.ServiceAdditionalEdits), label: "Additional Edits", cost: 5},
		{key: string(entities.ServiceExclusiveOwnership), label: "Exclusive Ownership", cost: 40},
	}
)

func lookupTrackType(t entities.TrackType) (trackTypePrice, bool) {
	for _, p := range trackTypeCatalog {
		if p.trackType == t {
			return p, true
		}
	}
	return trackTypePrice{}, false
}

// IsKnownTrackType reports whether t is priced by the catalog.
func IsKnownTrackType(t entities.TrackType) bool {
	_, ok := lookupTrackType(t)
	return ok
}

// BasePointCost returns the representative base cost of a track type, or 0
// for values outside the catalog.
func BasePointCost(t entities.TrackType) float64 {
	p, _ := lookupTrackType(t)
	return p.point
}

// MarketingRange returns the advertised price band of a track type.
// It is copy for the order form and never feeds a computed estimate.
func MarketingRange(t entities.TrackType) (low, high float64, ok bool) {
	p, ok := lookupTrackType(t)
	if !ok {
		return 0, 0, false
	}
	return p.low, p.high, true
}

// BackingTypeCost returns the flat add-on for a backing type, or 0 when unknown.
func BackingTypeCost(b entities.BackingType) float64 {
	for _, a := range backingTypeCatalog {
		if a.key == string(b) {
			return a.cost
		}
	}
	return 0
}

// ServiceCost returns the flat add-on for a service, or 0 when unknown.
func ServiceCost(s entities.AdditionalService) float64 {
	for _, a := range serviceCatalog {
		if a.key == string(s) {
			return a.cost
		}
	}
	return 0
}

func isKnownAddOn(catalog []addOnPrice, key string) bool {
	for _, a := range catalog {
		if a.key == key {
			return true
		}
	}
	return false
}
