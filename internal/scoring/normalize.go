// Package scoring normalizes heterogeneous popularity signals onto a common
// 0-100 scale, fuses them into one weighted score, and assigns discrete
// tiers.
package scoring

import "math"

// Scale selects the per-source normalization policy.
type Scale int

const (
	// ScaleLog fits heavy-tailed counts such as monthly pageviews.
	ScaleLog Scale = iota
	// ScaleLinear fits sources that already report a bounded index.
	ScaleLinear
)

// LogScale maps value onto 0-100 on a log10 curve anchored at max. Returns 0
// when value or max is non-positive rather than dividing by zero.
func LogScale(value, max float64) int {
	if value <= 0 || max <= 0 {
		return 0
	}
	return int(math.Round(math.Log10(value+1) / math.Log10(max+1) * 100))
}

// LinearScale maps value onto 0-100 proportionally to max. Returns 0 when
// value or max is non-positive.
func LinearScale(value, max float64) int {
	if value <= 0 || max <= 0 {
		return 0
	}
	return int(math.Round(value / max * 100))
}

func normalize(scale Scale, value, max float64) int {
	if scale == ScaleLinear {
		return LinearScale(value, max)
	}
	return LogScale(value, max)
}
