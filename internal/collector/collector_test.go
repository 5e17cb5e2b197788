package collector

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"CanslimScanner/internal/logging"
	"CanslimScanner/internal/model"
)

func testUniverse() []model.SymbolEntry {
	return []model.SymbolEntry{
		{Symbol: "AAA", Sector: "Technology"},
		{Symbol: "BBB", Sector: "Technology"},
		{Symbol: "CCC", Sector: "Energy"},
	}
}

func TestCollector_DegradesPerSymbol(t *testing.T) {
	mock := &MockFetcher{
		Bars: map[string][]model.OHLCV{
			"AAA": GenerateBars(100, 150, 250, 1e6),
			"BBB": GenerateBars(100, 90, 250, 1e6),
		},
		QuoteData: map[string]model.Quote{"AAA": {Price: 150}, "CCC": {Price: 20}},
		Earnings:  map[string]*model.EarningsSummary{"AAA": {Symbol: "AAA"}},
		Snapshots: map[string]*model.ScrapedFields{"BBB": {InstTrans: model.Float(3)}},
		Fail:      map[string]bool{"CCC": true},
	}
	c := &Collector{
		Charts: mock, Quotes: mock, Earnings: mock, Snapshots: mock,
		Workers: 2,
		Log:     logging.Silent(),
	}

	data, err := c.Collect(context.Background(), testUniverse())
	require.NoError(t, err)

	assert.Len(t, data.Charts, 2)
	assert.Nil(t, data.Charts["CCC"])
	assert.Len(t, data.Quotes, 1, "failing symbol drops out of the batch")
	assert.Equal(t, 150.0, data.Quotes["AAA"].Price)
	assert.NotNil(t, data.Earnings["AAA"])
	assert.Nil(t, data.Earnings["BBB"])
	assert.NotNil(t, data.Snapshots["BBB"])

	assert.Equal(t, 3, mock.Calls("chart"))
	assert.Equal(t, 1, mock.Calls("quote"))
	assert.Equal(t, 3, mock.Calls("earnings"))
	assert.Equal(t, 3, mock.Calls("snapshot"))
}

func TestCollector_RateLimitsPhase(t *testing.T) {
	mock := &MockFetcher{Bars: map[string][]model.OHLCV{}}
	c := &Collector{
		Charts:     mock,
		Workers:    4,
		PriceDelay: 20 * time.Millisecond,
		Log:        logging.Silent(),
	}

	start := time.Now()
	_, err := c.Collect(context.Background(), testUniverse())
	require.NoError(t, err)
	// Three requests with a burst of one need at least two intervals.
	assert.GreaterOrEqual(t, time.Since(start), 40*time.Millisecond)
}

func TestCollector_CancelledContext(t *testing.T) {
	mock := &MockFetcher{}
	c := &Collector{Charts: mock, Workers: 1, PriceDelay: time.Hour, Log: logging.Silent()}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := c.Collect(ctx, testUniverse())
	assert.ErrorIs(t, err, context.Canceled)
}
