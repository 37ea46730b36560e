package protocols

import "sort"

// ConvergenceThreshold is the delphi stopping rule: estimates have converged
// when IQR/median drops below this ratio.
const ConvergenceThreshold = 0.15

// Median of a sample; 0 for an empty one.
func Median(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)
	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return sorted[mid]
	}
	return (sorted[mid-1] + sorted[mid]) / 2
}

// IQR is the inter-quartile range, with quartiles as medians of the lower
// and upper halves (exclusive of the middle element for odd samples).
func IQR(values []float64) float64 {
	if len(values) < 2 {
		return 0
	}
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)

	mid := len(sorted) / 2
	lower := sorted[:mid]
	upper := sorted[mid:]
	if len(sorted)%2 == 1 {
		upper = sorted[mid+1:]
	}
	return Median(upper) - Median(lower)
}

// Converged applies the spread/median stopping rule. A zero median converges
// only when the spread is also zero.
func Converged(values []float64) bool {
	if len(values) < 2 {
		return false
	}
	median := Median(values)
	spread := IQR(values)
	if median == 0 {
		return spread == 0
	}
	if median < 0 {
		median = -median
	}
	return spread/median < ConvergenceThreshold
}
