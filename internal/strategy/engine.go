package strategy

import (
	"math"
	"sort"

	"CanslimScanner/internal/calculator"
	"CanslimScanner/internal/model"
)

// Weights defines the composite blend. They sum to 1.
var Weights = []struct {
	Key    string
	Weight float64
}{
	{"epsRating", 0.20},
	{"rsRating", 0.20},
	{"accDisRating", 0.15},
	{"smrRating", 0.10},
	{"groupRank", 0.10},
	{"instGrowthScore", 0.25},
}

// SubRatings is the input to CompositeRating.
type SubRatings struct {
	EPS        int
	RS         int
	AccDis     model.ADGrade
	SMR        model.SMRGrade
	GroupRank  int
	InstGrowth int
}

// groupScore maps a rank onto the rating scale; lower ranks score higher.
func groupScore(rank int) float64 {
	return math.Max(1, 99-float64(rank)/2)
}

// components maps each Weights key to its value on the rating scale.
func (s SubRatings) components() map[string]float64 {
	return map[string]float64{
		"epsRating":       float64(s.EPS),
		"rsRating":        float64(s.RS),
		"accDisRating":    s.AccDis.Score(),
		"smrRating":       s.SMR.Score(),
		"groupRank":       groupScore(s.GroupRank),
		"instGrowthScore": float64(s.InstGrowth),
	}
}

// CompositeRating blends the sub-ratings by Weights into a single 1-99 score.
func CompositeRating(s SubRatings) int {
	c := s.components()
	v := 0.0
	for _, w := range Weights {
		v += c[w.Key] * w.Weight
	}
	return calculator.ClampRating(v)
}

// yearReturn is the trailing return used for group ranking, 0 when unavailable.
func yearReturn(series *model.PriceSeries) float64 {
	r, ok := calculator.TrailingReturn(series.Closes())
	if !ok {
		return 0
	}
	return r
}

// Rank rates every universe member that has a chart and returns them sorted
// by composite rating, best first. Members without a chart are dropped.
func Rank(universe []model.SymbolEntry, data *model.RunData) []model.RatedSymbol {
	if data == nil {
		return nil
	}

	charted := make([]model.SymbolEntry, 0, len(universe))
	series := make([]*model.PriceSeries, 0, len(universe))
	for _, e := range universe {
		if s := data.Charts[e.Symbol]; s != nil {
			charted = append(charted, e)
			series = append(series, s)
		}
	}

	returns := calculator.UniverseReturns(series)
	ranks := GroupRanks(groupMembers(charted, data.Charts))

	out := make([]model.RatedSymbol, 0, len(charted))
	for _, e := range charted {
		out = append(out, rate(e, data, returns, ranks))
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].CompositeRating > out[j].CompositeRating })
	return out
}

func rate(e model.SymbolEntry, data *model.RunData, returns []float64, ranks map[string]int) model.RatedSymbol {
	chart := data.Charts[e.Symbol]
	quote := data.Quotes[e.Symbol]
	earnings := data.Earnings[e.Symbol]
	fields := data.Snapshots[e.Symbol]

	rank, ok := ranks[e.Symbol]
	if !ok {
		rank = DefaultGroupRank
	}

	sub := SubRatings{
		EPS:       EPSRating(earnings, fields),
		RS:        calculator.RSRating(chart, returns),
		AccDis:    calculator.AccDisGrade(chart),
		SMR:       SMRGrade(quote, fields),
		GroupRank: rank,
	}
	ig := InstGrowth(fields, earnings)
	sub.InstGrowth = ig.Score

	r := model.RatedSymbol{
		Symbol:   e.Symbol,
		Name:     e.Name,
		Sector:   e.Sector,
		Industry: e.Industry,

		CompositeRating: CompositeRating(sub),
		EPSRating:       sub.EPS,
		RSRating:        sub.RS,
		AccDisRating:    sub.AccDis,
		SMRRating:       sub.SMR,
		GroupRank:       rank,
		YearReturn:      yearReturn(chart),

		InstGrowthScore:    ig.Score,
		InstGrowthGrade:    ig.Grade,
		InstGrowthPassed:   ig.Passed,
		InstGrowthCriteria: ig.Criteria,
	}

	if fields != nil {
		r.InstTrans = fields.InstTrans
		r.EPSQoQ = fields.EPSQoQ
		r.ShortFloat = fields.ShortFloat
		r.EPSNextY = fields.EPSNextY
		r.InstOwn = fields.InstOwn
		r.InsiderTrans = fields.InsiderTrans
		r.ROE = fields.ROE
		r.PerfWeek = fields.PerfWeek
		r.PerfMonth = fields.PerfMonth
		r.PerfYTD = fields.PerfYTD
	}

	if quote != nil {
		r.Price = quote.Price
		r.Change = quote.ChangePercent
		r.MarketCap = quote.MarketCap / 1e9
		r.PE = quote.TrailingPE
		r.YearHigh = quote.FiftyTwoWeekHigh
		r.YearLow = quote.FiftyTwoWeekLow
		r.AvgVolume = quote.AvgVolume3Month / 1e6
	} else if high, low, err := calculator.Calculate52WeekRange(chart.DailyBars); err == nil {
		r.YearHigh = high
		r.YearLow = low
	}
	return r
}
