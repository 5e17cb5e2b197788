package model

import "time"

// OHLCV represents a single candlestick bar.
type OHLCV struct {
	Time   time.Time
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume float64
}

// PriceSeries holds one symbol's trailing daily bars in chronological order.
// It is never mutated after fetch.
type PriceSeries struct {
	Symbol    string
	DailyBars []OHLCV
	FetchedAt time.Time
}

// Closes returns the close of every bar.
func (p *PriceSeries) Closes() []float64 {
	if p == nil {
		return nil
	}
	closes := make([]float64, len(p.DailyBars))
	for i, b := range p.DailyBars {
		closes[i] = b.Close
	}
	return closes
}

// Volumes returns the volume of every bar, aligned with Closes.
func (p *PriceSeries) Volumes() []float64 {
	if p == nil {
		return nil
	}
	vols := make([]float64, len(p.DailyBars))
	for i, b := range p.DailyBars {
		vols[i] = b.Volume
	}
	return vols
}

// Len returns the number of bars, 0 for a nil series.
func (p *PriceSeries) Len() int {
	if p == nil {
		return 0
	}
	return len(p.DailyBars)
}

// Quote is a point-in-time quote snapshot from the batched quote endpoint.
type Quote struct {
	Symbol           string
	Price            float64
	ChangePercent    float64
	MarketCap        float64
	TrailingPE       float64
	FiftyTwoWeekHigh float64
	FiftyTwoWeekLow  float64
	AvgVolume3Month  float64
}

// RunData holds every payload fetched in one run, keyed by symbol.
// A missing key means the fetch failed or returned nothing.
type RunData struct {
	Charts    map[string]*PriceSeries
	Quotes    map[string]*Quote
	Earnings  map[string]*EarningsSummary
	Snapshots map[string]*ScrapedFields
}
