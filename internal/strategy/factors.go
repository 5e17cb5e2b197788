package strategy

import (
	"fmt"
	"math"

	"CanslimScanner/internal/calculator"
	"CanslimScanner/internal/model"
)

// epsQuarters is how many of the most recent reported quarters count toward
// beats. Shorter histories earn no beat or surprise points.
const epsQuarters = 4

// nextYearGrowthPct returns the "+1y" trend figure in percent, or nil.
// The quote summary reports growth as a fraction.
func nextYearGrowthPct(e *model.EarningsSummary) *float64 {
	g := e.NextYearGrowth()
	if g == nil {
		return nil
	}
	return model.Float(*g * 100)
}

// EPSRating scores earnings momentum on a 1-99 scale starting from neutral.
// Either input may be nil.
func EPSRating(e *model.EarningsSummary, f *model.ScrapedFields) int {
	score := float64(calculator.NeutralRating)

	if e != nil {
		if len(e.Quarters) >= epsQuarters {
			beats := 0
			surprise := 0.0
			for _, q := range e.Quarters[len(e.Quarters)-epsQuarters:] {
				if q.Estimate > 0 && q.Actual > q.Estimate {
					beats++
					surprise += (q.Actual - q.Estimate) / math.Abs(q.Estimate) * 100
				}
			}
			score += float64(beats) * 6
			score += math.Min(15, surprise/epsQuarters)
		}

		if g := nextYearGrowthPct(e); g != nil && *g > 0 {
			score += math.Min(15, *g*0.3)
		}
	}

	if f != nil {
		if positive(f.EPSQoQ) {
			score += math.Min(15, *f.EPSQoQ*0.3)
		}
		if positive(f.EPSNextY) {
			score += math.Min(10, *f.EPSNextY*0.2)
		}
		if above(f.EPSPast5Y, 10) {
			score += 5
		}
	}

	return calculator.ClampRating(score)
}

// SMRGrade grades profitability and valuation. Absent inputs earn no points.
func SMRGrade(q *model.Quote, f *model.ScrapedFields) model.SMRGrade {
	points := 0

	if q != nil {
		switch pe := q.TrailingPE; {
		case pe > 0 && pe < 25:
			points += 2
		case pe >= 25 && pe < 40:
			points++
		}
	}

	if f != nil {
		points += tiered(f.ROE, 15, 8)
		points += tiered(f.ProfitMargin, 15, 8)
		if above(f.SalesQoQ, 10) {
			points++
		}
	}

	switch {
	case points >= 6:
		return model.SMRGradeA
	case points >= 4:
		return model.SMRGradeB
	case points >= 2:
		return model.SMRGradeC
	default:
		return model.SMRGradeD
	}
}

// Institutional/growth pass thresholds, in percent.
const (
	InstTransThreshold  = 5.0
	EPSQoQThreshold     = 0.0
	ShortFloatThreshold = 5.0
	EPSNextYThreshold   = 0.0

	igCriteriaTotal = 4
	// FallbackSource tags a next-year growth figure taken from the earnings trend.
	FallbackSource = "Yahoo"
)

// CriteriaDescriptions describes each institutional/growth pass condition.
func CriteriaDescriptions() map[string]string {
	return map[string]string{
		"instTrans":  fmt.Sprintf("> %g%% (Institutional buying)", InstTransThreshold),
		"epsQoQ":     fmt.Sprintf("> %g%% (Quarter over quarter EPS growth)", EPSQoQThreshold),
		"shortFloat": fmt.Sprintf("> %g%% (Short interest)", ShortFloatThreshold),
		"epsNextY":   fmt.Sprintf("> %g%% (Projected next year EPS growth; value is in percent, including %s fallback values)",
			EPSNextYThreshold, FallbackSource),
	}
}

var igGradeBands = []struct {
	min   int
	grade model.IGGrade
}{
	{90, model.IGGradeAPlus},
	{80, model.IGGradeA},
	{70, model.IGGradeAMinus},
	{60, model.IGGradeBPlus},
	{50, model.IGGradeB},
	{40, model.IGGradeBMinus},
	{30, model.IGGradeCPlus},
	{20, model.IGGradeC},
	{10, model.IGGradeCMinus},
}

func igGrade(score int) model.IGGrade {
	for _, b := range igGradeBands {
		if score >= b.min {
			return b.grade
		}
	}
	return model.IGGradeD
}

// InstGrowth scores institutional sponsorship and growth from the snapshot
// fields, falling back to the earnings trend for next-year growth.
// Without snapshot fields the grade is N/A and nothing passes.
func InstGrowth(f *model.ScrapedFields, e *model.EarningsSummary) model.InstGrowthResult {
	res := model.InstGrowthResult{
		Score: calculator.MinRating,
		Grade: model.IGNotAvailable,
		Total: igCriteriaTotal,
		Criteria: model.InstGrowthCriteria{
			InstTrans:  model.Criterion{Threshold: InstTransThreshold},
			EPSQoQ:     model.Criterion{Threshold: EPSQoQThreshold},
			ShortFloat: model.Criterion{Threshold: ShortFloatThreshold},
			EPSNextY:   model.Criterion{Threshold: EPSNextYThreshold},
		},
	}
	if f == nil {
		return res
	}
	c := &res.Criteria
	score := 0

	c.InstTrans.Value = f.InstTrans
	if above(f.InstTrans, InstTransThreshold) {
		score += 25
		c.InstTrans.Pass = true
		if above(f.InstTrans, 10) {
			score += 5
		}
	} else if positive(f.InstTrans) {
		score += 10
	}

	c.EPSQoQ.Value = f.EPSQoQ
	if above(f.EPSQoQ, EPSQoQThreshold) {
		score += 25
		c.EPSQoQ.Pass = true
		score += tieredBonus(f.EPSQoQ, 50, 10, 20, 5)
	}

	c.ShortFloat.Value = f.ShortFloat
	if above(f.ShortFloat, ShortFloatThreshold) {
		score += 15
		c.ShortFloat.Pass = true
		score += tieredBonus(f.ShortFloat, 20, 10, 10, 5)
	}

	c.EPSNextY.Value = f.EPSNextY
	switch {
	case above(f.EPSNextY, EPSNextYThreshold):
		score += 25
		c.EPSNextY.Pass = true
		score += tieredBonus(f.EPSNextY, 30, 10, 15, 5)
	case f.EPSNextY == nil:
		// The fallback awards a flat bonus regardless of magnitude.
		if g := nextYearGrowthPct(e); g != nil && *g > 0 {
			score += 15
			c.EPSNextY = model.Criterion{Value: g, Threshold: EPSNextYThreshold, Pass: true, Source: FallbackSource}
		}
	}

	res.Grade = igGrade(score)
	res.Score = calculator.ClampRating(float64(score))
	res.Passed = c.Passed()
	return res
}

func positive(v *float64) bool { return v != nil && *v > 0 }

func above(v *float64, min float64) bool { return v != nil && *v > min }

// tiered awards 2 points above hi, 1 above lo, else 0.
func tiered(v *float64, hi, lo float64) int {
	switch {
	case above(v, hi):
		return 2
	case above(v, lo):
		return 1
	}
	return 0
}

// tieredBonus returns hiBonus above hi, loBonus above lo, else 0.
func tieredBonus(v *float64, hi float64, hiBonus int, lo float64, loBonus int) int {
	switch {
	case above(v, hi):
		return hiBonus
	case above(v, lo):
		return loBonus
	}
	return 0
}
