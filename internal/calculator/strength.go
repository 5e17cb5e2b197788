package calculator

import "CanslimScanner/internal/model"

// MinReturnBars is the number of daily closes needed for a trailing return.
const MinReturnBars = 200

// TrailingReturn returns (last-first)/first in percent. ok is false when
// there are fewer than MinReturnBars closes or the first close is zero.
func TrailingReturn(closes []float64) (pct float64, ok bool) {
	if len(closes) < MinReturnBars || closes[0] == 0 {
		return 0, false
	}
	first, last := closes[0], closes[len(closes)-1]
	return (last - first) / first * 100, true
}

// UniverseReturns collects the trailing return of every series that has one.
func UniverseReturns(series []*model.PriceSeries) []float64 {
	out := make([]float64, 0, len(series))
	for _, s := range series {
		if r, ok := TrailingReturn(s.Closes()); ok {
			out = append(out, r)
		}
	}
	return out
}

// RSRating converts a symbol's trailing return into a 1-99 percentile
// against the universe returns. Insufficient data yields NeutralRating.
func RSRating(series *model.PriceSeries, universe []float64) int {
	ret, ok := TrailingReturn(series.Closes())
	if !ok || len(universe) == 0 {
		return NeutralRating
	}

	better := 0
	for _, r := range universe {
		if ret > r {
			better++
		}
	}
	pct := float64(better) / float64(len(universe))
	return ClampRating(float64(RoundHalfUp(pct*99) + 1))
}
