package pricing

import (
	"fmt"
	"math"
	"strconv"
)

// FormatPriceLine renders the one-line price used in notification copy.
func FormatPriceLine(b CostBreakdown) string {
	switch {
	case b.DisplayPoint != nil:
		return "Final price: $" + FormatAmount(*b.DisplayPoint)
	case b.DisplayLow != nil && b.DisplayHigh != nil:
		if *b.DisplayLow == *b.DisplayHigh {
			return "Estimated price: $" + FormatAmount(*b.DisplayLow)
		}
		return fmt.Sprintf("Estimated price: $%s - $%s", FormatAmount(*b.DisplayLow), FormatAmount(*b.DisplayHigh))
	default:
		return "Estimated price: $" + FormatAmount(b.TotalCost)
	}
}

// FormatAmount prints whole amounts without decimals and others with cents.
func FormatAmount(v float64) string {
	if v == math.Trunc(v) {
		return strconv.FormatFloat(v, 'f', 0, 64)
	}
	return strconv.FormatFloat(v, 'f', 2, 64)
}
