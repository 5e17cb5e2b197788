package model

// EarningsQuarter is one reported quarter. Missing values are zero.
type EarningsQuarter struct {
	Period   string
	Actual   float64
	Estimate float64
}

// GrowthTrend is one forward estimate entry keyed by period label ("0q", "+1q", "0y", "+1y", ...).
type GrowthTrend struct {
	Period string
	Growth *float64
}

// PeriodNextYear is the trend label for next fiscal year.
const PeriodNextYear = "+1y"

// EarningsSummary is the subset of the quote summary the ratings consume.
type EarningsSummary struct {
	Symbol   string
	Quarters []EarningsQuarter // oldest first
	Trend    []GrowthTrend
}

// NextYearGrowth returns the "+1y" trend growth figure, or nil.
func (e *EarningsSummary) NextYearGrowth() *float64 {
	if e == nil {
		return nil
	}
	for _, t := range e.Trend {
		if t.Period == PeriodNextYear {
			return t.Growth
		}
	}
	return nil
}

// ScrapedFields holds the numeric fields extracted from a Finviz snapshot page.
// A nil field was absent or unparseable.
type ScrapedFields struct {
	InstTrans    *float64 `json:"instTrans"`
	EPSQoQ       *float64 `json:"epsQoQ"`
	EPSNextY     *float64 `json:"epsNextY"`
	EPSNext5Y    *float64 `json:"epsNext5Y"`
	EPSPast5Y    *float64 `json:"epsPast5Y"`
	ShortFloat   *float64 `json:"shortFloat"`
	ShortRatio   *float64 `json:"shortRatio"`
	InstOwn      *float64 `json:"instOwn"`
	InsiderTrans *float64 `json:"insiderTrans"`
	InsiderOwn   *float64 `json:"insiderOwn"`
	ROE          *float64 `json:"roe"`
	ROI          *float64 `json:"roi"`
	SalesQoQ     *float64 `json:"salesQoQ"`
	GrossMargin  *float64 `json:"grossMargin"`
	ProfitMargin *float64 `json:"profitMargin"`
	PerfWeek     *float64 `json:"perfWeek"`
	PerfMonth    *float64 `json:"perfMonth"`
	PerfQuarter  *float64 `json:"perfQuarter"`
	PerfHalfY    *float64 `json:"perfHalfY"`
	PerfYear     *float64 `json:"perfYear"`
	PerfYTD      *float64 `json:"perfYTD"`
}

// FieldTarget pairs a snapshot display label with the field it fills.
type FieldTarget struct {
	Label string
	Dst   **float64
}

// Targets lists every extractable field in page order.
func (s *ScrapedFields) Targets() []FieldTarget {
	return []FieldTarget{
		{"Inst Trans", &s.InstTrans},
		{"EPS Q/Q", &s.EPSQoQ},
		{"EPS next Y", &s.EPSNextY},
		{"EPS next 5Y", &s.EPSNext5Y},
		{"EPS past 5Y", &s.EPSPast5Y},
		{"Short Float", &s.ShortFloat},
		{"Short Ratio", &s.ShortRatio},
		{"Inst Own", &s.InstOwn},
		{"Insider Trans", &s.InsiderTrans},
		{"Insider Own", &s.InsiderOwn},
		{"ROE", &s.ROE},
		{"ROI", &s.ROI},
		{"Sales Q/Q", &s.SalesQoQ},
		{"Gross Margin", &s.GrossMargin},
		{"Profit Margin", &s.ProfitMargin},
		{"Perf Week", &s.PerfWeek},
		{"Perf Month", &s.PerfMonth},
		{"Perf Quarter", &s.PerfQuarter},
		{"Perf Half Y", &s.PerfHalfY},
		{"Perf Year", &s.PerfYear},
		{"Perf YTD", &s.PerfYTD},
	}
}

// Float returns a pointer to v.
func Float(v float64) *float64 { return &v }
