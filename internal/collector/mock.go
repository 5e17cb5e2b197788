package collector

import (
	"context"
	"fmt"
	"sync"
	"time"

	"CanslimScanner/internal/model"
)

// MockFetcher returns controllable fixed data for development and testing.
// It implements all four fetcher interfaces. Symbols listed in Fail error on every source.
type MockFetcher struct {
	Bars      map[string][]model.OHLCV
	QuoteData map[string]model.Quote
	Earnings  map[string]*model.EarningsSummary
	Snapshots map[string]*model.ScrapedFields
	Fail      map[string]bool

	mu    sync.Mutex
	calls map[string]int
}

func (m *MockFetcher) record(source string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.calls == nil {
		m.calls = map[string]int{}
	}
	m.calls[source]++
}

// Calls reports how many requests a source received.
func (m *MockFetcher) Calls(source string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls[source]
}

func (m *MockFetcher) FetchChart(_ context.Context, symbol string) (*model.PriceSeries, error) {
	m.record("chart")
	if m.Fail[symbol] {
		return nil, fmt.Errorf("mock: chart %s unavailable", symbol)
	}
	bars, ok := m.Bars[symbol]
	if !ok {
		return nil, ErrNoData
	}
	return &model.PriceSeries{Symbol: symbol, DailyBars: bars, FetchedAt: time.Now()}, nil
}

func (m *MockFetcher) FetchQuotes(_ context.Context, symbols []string) ([]model.Quote, error) {
	m.record("quote")
	var out []model.Quote
	for _, s := range symbols {
		if q, ok := m.QuoteData[s]; ok && !m.Fail[s] {
			q.Symbol = s
			out = append(out, q)
		}
	}
	return out, nil
}

func (m *MockFetcher) FetchEarnings(_ context.Context, symbol string) (*model.EarningsSummary, error) {
	m.record("earnings")
	if m.Fail[symbol] {
		return nil, fmt.Errorf("mock: earnings %s unavailable", symbol)
	}
	if e, ok := m.Earnings[symbol]; ok {
		return e, nil
	}
	return nil, ErrNoData
}

func (m *MockFetcher) FetchSnapshot(_ context.Context, symbol string) (*model.ScrapedFields, error) {
	m.record("snapshot")
	if m.Fail[symbol] {
		return nil, fmt.Errorf("mock: snapshot %s unavailable", symbol)
	}
	if s, ok := m.Snapshots[symbol]; ok {
		return s, nil
	}
	return nil, ErrNoData
}

// GenerateBars builds count daily bars that move from startPrice to endPrice linearly.
func GenerateBars(startPrice, endPrice float64, count int, volume float64) []model.OHLCV {
	bars := make([]model.OHLCV, count)
	start := time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC)
	for i := 0; i < count; i++ {
		p := startPrice
		if count > 1 {
			p = startPrice + (endPrice-startPrice)*float64(i)/float64(count-1)
		}
		bars[i] = model.OHLCV{
			Time:   start.AddDate(0, 0, i),
			Open:   p * 0.999,
			High:   p * 1.005,
			Low:    p * 0.995,
			Close:  p,
			Volume: volume,
		}
	}
	return bars
}
