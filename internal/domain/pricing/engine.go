// Package pricing turns the options selected on a track request into a cost
// breakdown and the price range shown to customers.
//
// Everything here is pure: no I/O, no shared mutable state. Calling
// ComputeCost twice with the same options yields identical breakdowns.
package pricing

import (
	"errors"
	"fmt"
	"math"

	"backing_tracks/internal/domain/entities"
)

// ErrInvalidManualRange is returned when an operator-entered estimate has a
// low bound above its high bound. Callers must block the save.
var ErrInvalidManualRange = errors.New("pricing: invalid manual range")

const (
	defaultLowFactor  = 0.5
	defaultHighFactor = 1.5
	roundingStep      = 5.0
)

// BaseLine is the cost attributable to the chosen track type.
type BaseLine struct {
	Type entities.TrackType `json:"type"`
	Cost float64            `json:"cost"`
}

// AddOnLine is one flat surcharge in a breakdown.
type AddOnLine struct {
	Kind  AddOnKind `json:"kind"`
	Key   string    `json:"key"`
	Label string    `json:"label"`
	Cost  float64   `json:"cost"`
}

// CostBreakdown is recomputed on every render and never stored as the
// source of truth.
//
// TotalCost is always the raw sum. DisplayLow/DisplayHigh/DisplayPoint are
// the customer-facing figures after operator overrides; when DisplayPoint is
// set consumers show it instead of the range.
type CostBreakdown struct {
	BaseLine     BaseLine    `json:"base_line"`
	AddOnLines   []AddOnLine `json:"add_on_lines"`
	TotalCost    float64     `json:"total_cost"`
	DisplayLow   *float64    `json:"display_low,omitempty"`
	DisplayHigh  *float64    `json:"display_high,omitempty"`
	DisplayPoint *float64    `json:"display_point,omitempty"`

	// UnknownOptions lists option values outside the catalog. They priced as
	// zero; callers log them for data-quality monitoring.
	UnknownOptions []string `json:"unknown_options,omitempty"`
}

// ComputeCost prices a request's options.
//
// The only error is ErrInvalidManualRange, returned when no final price is
// set. A final price always wins: a stale inverted range is then dropped and
// only DisplayPoint is shown. Unknown option values contribute nothing and
// are reported in UnknownOptions.
func ComputeCost(opts entities.RequestOptions) (CostBreakdown, error) {
	b, err := compute(opts)
	if err != nil && opts.ManualFinalPrice == nil {
		return CostBreakdown{}, err
	}
	return b, nil
}

// ValidateManualPricing reports the overrides in opts that must not be
// saved. Unlike ComputeCost it rejects an inverted range even when a final
// price hides it.
func ValidateManualPricing(opts entities.RequestOptions) error {
	_, err := compute(opts)
	return err
}

// compute always returns the lines and the final price. An invalid manual
// range leaves DisplayLow and DisplayHigh nil and is returned as the error.
func compute(opts entities.RequestOptions) (CostBreakdown, error) {
	var unknown []string
	base, ok := lookupTrackType(opts.TrackType)
	if !ok && opts.TrackType != "" {
		unknown = append(unknown, "track_type="+string(opts.TrackType))
	}

	total := base.point
	lines := make([]AddOnLine, 0, len(opts.BackingTypes)+len(opts.AdditionalServices))

	for _, a := range backingTypeCatalog {
		if containsBackingType(opts.BackingTypes, a.key) {
			lines = append(lines, AddOnLine{Kind: AddOnKindBackingType, Key: a.key, Label: a.label, Cost: a.cost})
			total += a.cost
		}
	}
	for _, b := range opts.BackingTypes {
		if !isKnownAddOn(backingTypeCatalog, string(b)) {
			unknown = append(unknown, "backing_type="+string(b))
		}
	}

	for _, a := range serviceCatalog {
		if containsService(opts.AdditionalServices, a.key) {
			lines = append(lines, AddOnLine{Kind: AddOnKindService, Key: a.key, Label: a.label, Cost: a.cost})
			total += a.cost
		}
	}
	for _, s := range opts.AdditionalServices {
		if !isKnownAddOn(serviceCatalog, string(s)) {
			unknown = append(unknown, "additional_service="+string(s))
		}
	}

	b := CostBreakdown{
		BaseLine:       BaseLine{Type: opts.TrackType, Cost: base.point},
		AddOnLines:     lines,
		TotalCost:      total,
		UnknownOptions: unknown,
	}
	if opts.ManualFinalPrice != nil {
		p := *opts.ManualFinalPrice
		b.DisplayPoint = &p
	}

	err := ValidateManualRange(opts.ManualEstimateLow, opts.ManualEstimateHigh)
	if err != nil {
		return b, err
	}
	low, high, err := displayRange(total, opts.ManualEstimateLow, opts.ManualEstimateHigh)
	if err != nil {
		return b, err
	}
	b.DisplayLow = &low
	b.DisplayHigh = &high
	return b, nil
}

// ValidateManualRange checks operator-entered bounds when both are present.
func ValidateManualRange(low, high *float64) error {
	if low != nil && high != nil && *low > *high {
		return fmt.Errorf("%w: low %s is above high %s", ErrInvalidManualRange, FormatAmount(*low), FormatAmount(*high))
	}
	return nil
}

// displayRange applies manual bounds over the computed ±50% band. A manual
// side that ends up above the computed other side is an operator error too.
func displayRange(total float64, manualLow, manualHigh *float64) (float64, float64, error) {
	low := ceilToStep(total * defaultLowFactor)
	high := floorToStep(total * defaultHighFactor)

	manual := false
	if manualLow != nil {
		low = *manualLow
		manual = true
	}
	if manualHigh != nil {
		high = *manualHigh
		manual = true
	}

	if low > high {
		if manual {
			return 0, 0, fmt.Errorf("%w: low %s is above high %s", ErrInvalidManualRange, FormatAmount(low), FormatAmount(high))
		}
		// Only reachable for 0 < total < 5, which the catalog cannot produce.
		high = low
	}
	return low, high, nil
}

func ceilToStep(v float64) float64 {
	return math.Ceil(v/roundingStep) * roundingStep
}

func floorToStep(v float64) float64 {
	return math.Floor(v/roundingStep) * roundingStep
}

func containsBackingType(list []entities.BackingType, key string) bool {
	for _, v := range list {
		if string(v) == key {
			return true
		}
	}
	return false
}

func containsService(list []entities.AdditionalService, key string) bool {
	for _, v := range list {
		if string(v) == key {
			return true
		}
	}
	return false
}
