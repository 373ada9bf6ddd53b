package rates

import (
	"math"
	"strconv"
)

// Convert applies a conversion factor to a whole-unit amount, rounded to
// two decimals.
func Convert(amount int64, factor float64) float64 {
	return math.Round(float64(amount)*factor*100) / 100
}

// Factor returns the conversion factor for code, or 1.0 when the
// snapshot has no entry for it. The identity fallback means a missing
// code displays the unconverted amount under the foreign label; that is
// the behavior the detail view has always had and it is kept as is.
func Factor(snapshot map[string]float64, code string) float64 {
	if f, ok := snapshot[code]; ok {
		return f
	}
	return 1.0
}

// FormatAmount renders a converted amount with exactly two decimals.
func FormatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
