package collector

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"CanslimScanner/internal/model"
	"CanslimScanner/internal/universe"
)

// Collector runs the fetch phases over a universe.
// Within a phase at most Workers requests are in flight and requests start
// no closer together than the phase delay.
type Collector struct {
	Charts    ChartFetcher
	Quotes    QuoteFetcher
	Earnings  EarningsFetcher
	Snapshots SnapshotFetcher

	Workers       int
	PriceDelay    time.Duration
	EarningsDelay time.Duration
	SnapshotDelay time.Duration

	Log zerolog.Logger
}

// Collect fetches every source for every symbol. Per-symbol failures are
// logged and leave the payload absent; only context cancellation is returned.
func (c *Collector) Collect(ctx context.Context, entries []model.SymbolEntry) (*model.RunData, error) {
	symbols := universe.Symbols(entries)

	data := &model.RunData{
		Charts:    map[string]*model.PriceSeries{},
		Quotes:    map[string]*model.Quote{},
		Earnings:  map[string]*model.EarningsSummary{},
		Snapshots: map[string]*model.ScrapedFields{},
	}

	var err error
	if c.Charts != nil {
		data.Charts, err = fanOut(ctx, c, "price", symbols, c.PriceDelay, c.Charts.FetchChart)
		if err != nil {
			return data, err
		}
	}

	if c.Quotes != nil {
		c.Log.Info().Str("phase", "quote").Int("symbols", len(symbols)).Msg("fetching batched quotes")
		quotes, qerr := c.Quotes.FetchQuotes(ctx, symbols)
		if qerr != nil {
			if ctx.Err() != nil {
				return data, ctx.Err()
			}
			c.Log.Warn().Str("source", "quote").Err(qerr).Msg("quote fetch failed")
		}
		for i := range quotes {
			q := quotes[i]
			data.Quotes[q.Symbol] = &q
		}
		c.Log.Info().Str("phase", "quote").Int("fetched", len(data.Quotes)).Msg("phase complete")
	}

	if c.Earnings != nil {
		data.Earnings, err = fanOut(ctx, c, "earnings", symbols, c.EarningsDelay, c.Earnings.FetchEarnings)
		if err != nil {
			return data, err
		}
	}

	if c.Snapshots != nil {
		data.Snapshots, err = fanOut(ctx, c, "snapshot", symbols, c.SnapshotDelay, c.Snapshots.FetchSnapshot)
		if err != nil {
			return data, err
		}
	}

	return data, nil
}

func newLimiter(delay time.Duration) *rate.Limiter {
	if delay <= 0 {
		return rate.NewLimiter(rate.Inf, 1)
	}
	return rate.NewLimiter(rate.Every(delay), 1)
}

// fanOut runs fetch for every symbol on a bounded, rate-limited worker pool.
func fanOut[T any](ctx context.Context, c *Collector, phase string, symbols []string, delay time.Duration, fetch func(context.Context, string) (*T, error)) (map[string]*T, error) {
	workers := c.Workers
	if workers < 1 {
		workers = 1
	}
	limiter := newLimiter(delay)

	c.Log.Info().Str("phase", phase).Int("symbols", len(symbols)).Int("workers", workers).Msg("fetching")

	var mu sync.Mutex
	results := make(map[string]*T, len(symbols))
	failed := 0

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for _, sym := range symbols {
		sym := sym
		g.Go(func() error {
			if err := limiter.Wait(gctx); err != nil {
				return err
			}
			v, err := fetch(gctx, sym)
			mu.Lock()
			defer mu.Unlock()
			if err != nil || v == nil {
				failed++
				if gctx.Err() != nil {
					return gctx.Err()
				}
				c.Log.Warn().Str("phase", phase).Str("symbol", sym).Err(err).Msg("fetch failed, continuing without data")
				return nil
			}
			results[sym] = v
			c.Log.Debug().Str("phase", phase).Str("symbol", sym).Msg("fetched")
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return results, fmt.Errorf("%s phase: %w", phase, err)
	}

	c.Log.Info().Str("phase", phase).Int("fetched", len(results)).Int("failed", failed).Msg("phase complete")
	return results, nil
}
