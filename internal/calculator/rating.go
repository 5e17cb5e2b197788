package calculator

import "math"

const (
	// NeutralRating is returned whenever a rating cannot be computed.
	NeutralRating = 50
	MinRating     = 1
	MaxRating     = 99
)

// RoundHalfUp rounds to the nearest integer with .5 going up.
func RoundHalfUp(v float64) int {
	return int(math.Floor(v + 0.5))
}

// ClampRating rounds v and clamps it to [MinRating, MaxRating].
func ClampRating(v float64) int {
	if math.IsNaN(v) {
		return NeutralRating
	}
	r := RoundHalfUp(math.Max(math.Min(v, 1e6), -1e6))
	if r < MinRating {
		return MinRating
	}
	if r > MaxRating {
		return MaxRating
	}
	return r
}
