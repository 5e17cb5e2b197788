package collector

import (
	"context"
	"errors"
	"fmt"

	"CanslimScanner/internal/model"
)

// ErrNoData is returned when a source answers but carries no usable payload.
var ErrNoData = errors.New("no data returned")

// StatusError is returned for a non-2xx response.
type StatusError struct {
	Source     string
	StatusCode int
	URL        string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: status %d (%s)", e.Source, e.StatusCode, e.URL)
}

// ChartFetcher retrieves one year of daily bars for a symbol.
type ChartFetcher interface {
	FetchChart(ctx context.Context, symbol string) (*model.PriceSeries, error)
}

// QuoteFetcher retrieves quotes for many symbols in one request.
type QuoteFetcher interface {
	FetchQuotes(ctx context.Context, symbols []string) ([]model.Quote, error)
}

// EarningsFetcher retrieves the earnings history and trend for a symbol.
type EarningsFetcher interface {
	FetchEarnings(ctx context.Context, symbol string) (*model.EarningsSummary, error)
}

// SnapshotFetcher retrieves the scraped snapshot fields for a symbol.
type SnapshotFetcher interface {
	FetchSnapshot(ctx context.Context, symbol string) (*model.ScrapedFields, error)
}
