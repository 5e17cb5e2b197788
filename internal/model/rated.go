package model

import "time"

// SymbolEntry is one member of the scan universe.
type SymbolEntry struct {
	Symbol   string `yaml:"symbol" json:"symbol" validate:"required"`
	Name     string `yaml:"name" json:"name"`
	Sector   string `yaml:"sector" json:"sector" validate:"required"`
	Industry string `yaml:"industry" json:"industry"`
}

// Criterion is one institutional/growth check with the value it was judged on.
type Criterion struct {
	Value     *float64 `json:"value"`
	Threshold float64  `json:"threshold"`
	Pass      bool     `json:"pass"`
	Source    string   `json:"source,omitempty"`
}

// InstGrowthCriteria reports the raw inputs of the institutional/growth score.
type InstGrowthCriteria struct {
	InstTrans  Criterion `json:"instTrans"`
	EPSQoQ     Criterion `json:"epsQoQ"`
	ShortFloat Criterion `json:"shortFloat"`
	EPSNextY   Criterion `json:"epsNextY"`
}

// Passed counts the criteria that passed.
func (c InstGrowthCriteria) Passed() int {
	n := 0
	for _, cr := range []Criterion{c.InstTrans, c.EPSQoQ, c.ShortFloat, c.EPSNextY} {
		if cr.Pass {
			n++
		}
	}
	return n
}

// InstGrowthResult is the institutional/growth composite for one symbol.
type InstGrowthResult struct {
	Score    int
	Grade    IGGrade
	Passed   int
	Total    int
	Criteria InstGrowthCriteria
}

// RatedSymbol is the persisted per-symbol record. Every numeric rating is in [1, 99].
type RatedSymbol struct {
	Symbol   string `json:"symbol"`
	Name     string `json:"name"`
	Sector   string `json:"sector"`
	Industry string `json:"industry"`

	CompositeRating int      `json:"compositeRating"`
	EPSRating       int      `json:"epsRating"`
	RSRating        int      `json:"rsRating"`
	AccDisRating    ADGrade  `json:"accDisRating"`
	SMRRating       SMRGrade `json:"smrRating"`
	GroupRank       int      `json:"groupRank"`
	YearReturn      float64  `json:"yearReturn"`

	InstGrowthScore    int                `json:"instGrowthScore"`
	InstGrowthGrade    IGGrade            `json:"instGrowthGrade"`
	InstGrowthPassed   int                `json:"instGrowthPassed"`
	InstGrowthCriteria InstGrowthCriteria `json:"instGrowthCriteria"`

	InstTrans    *float64 `json:"instTrans"`
	EPSQoQ       *float64 `json:"epsQoQ"`
	ShortFloat   *float64 `json:"shortFloat"`
	EPSNextY     *float64 `json:"epsNextY"`
	InstOwn      *float64 `json:"instOwn"`
	InsiderTrans *float64 `json:"insiderTrans"`
	ROE          *float64 `json:"roe"`
	PerfWeek     *float64 `json:"perfWeek"`
	PerfMonth    *float64 `json:"perfMonth"`
	PerfYTD      *float64 `json:"perfYTD"`

	Price     float64 `json:"price"`
	Change    float64 `json:"change"`
	MarketCap float64 `json:"marketCap"` // billions
	PE        float64 `json:"pe"`
	YearHigh  float64 `json:"yearHigh"`
	YearLow   float64 `json:"yearLow"`
	AvgVolume float64 `json:"avgVolume"` // millions
}

// Snapshot is the JSON artifact written at the end of each run.
type Snapshot struct {
	RunID          string            `json:"runId"`
	LastUpdated    time.Time         `json:"lastUpdated"`
	DataSources    []string          `json:"dataSources"`
	FinvizCriteria map[string]string `json:"finvizCriteria"`
	RatingWeights  map[string]string `json:"ratingWeights"`
	Stocks         []RatedSymbol     `json:"stocks"`
}
