package collector

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"CanslimScanner/internal/model"
)

const yahooSource = "yahoo"

// YahooFetcher implements the chart, quote and earnings fetchers against the Yahoo Finance public API.
type YahooFetcher struct {
	Client     *http.Client
	ChartURL   string
	QuoteURL   string
	SummaryURL string
	UserAgent  string
}

// NewYahooFetcher creates a new Yahoo Finance fetcher.
func NewYahooFetcher(chartURL, quoteURL, summaryURL, userAgent, proxyURL string, timeout time.Duration) *YahooFetcher {
	return &YahooFetcher{
		Client:     newHTTPClient(proxyURL, timeout),
		ChartURL:   strings.TrimRight(chartURL, "/"),
		QuoteURL:   quoteURL,
		SummaryURL: strings.TrimRight(summaryURL, "/"),
		UserAgent:  userAgent,
	}
}

func (f *YahooFetcher) Name() string { return "Yahoo Finance" }

func (f *YahooFetcher) headers() map[string]string {
	return map[string]string{"User-Agent": f.UserAgent}
}

// yahooChart is the response structure from Yahoo Finance chart API.
type yahooChart struct {
	Chart struct {
		Result []struct {
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Open   []interface{} `json:"open"`
					High   []interface{} `json:"high"`
					Low    []interface{} `json:"low"`
					Close  []interface{} `json:"close"`
					Volume []interface{} `json:"volume"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

func toFloat(v interface{}) float64 {
	if v == nil {
		return 0
	}
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	default:
		return 0
	}
}

func at(vals []interface{}, i int) interface{} {
	if i < len(vals) {
		return vals[i]
	}
	return nil
}

// FetchChart returns one year of daily bars in chronological order.
func (f *YahooFetcher) FetchChart(ctx context.Context, symbol string) (*model.PriceSeries, error) {
	u := fmt.Sprintf("%s/%s?interval=1d&range=1y", f.ChartURL, url.PathEscape(symbol))

	body, err := getBody(ctx, f.Client, yahooSource, u, f.headers())
	if err != nil {
		return nil, err
	}

	var chart yahooChart
	if err := json.Unmarshal(body, &chart); err != nil {
		return nil, fmt.Errorf("yahoo decode chart: %w", err)
	}
	if chart.Chart.Error != nil {
		return nil, fmt.Errorf("yahoo api error: %s", chart.Chart.Error.Description)
	}
	if len(chart.Chart.Result) == 0 || len(chart.Chart.Result[0].Indicators.Quote) == 0 {
		return nil, ErrNoData
	}

	result := chart.Chart.Result[0]
	quote := result.Indicators.Quote[0]
	bars := make([]model.OHLCV, 0, len(result.Timestamp))

	for i, ts := range result.Timestamp {
		c := at(quote.Close, i)
		if c == nil {
			continue // skip null bars (holidays, halts)
		}
		bars = append(bars, model.OHLCV{
			Time:   time.Unix(ts, 0),
			Open:   toFloat(at(quote.Open, i)),
			High:   toFloat(at(quote.High, i)),
			Low:    toFloat(at(quote.Low, i)),
			Close:  toFloat(c),
			Volume: toFloat(at(quote.Volume, i)),
		})
	}
	if len(bars) == 0 {
		return nil, ErrNoData
	}

	sort.SliceStable(bars, func(i, j int) bool { return bars[i].Time.Before(bars[j].Time) })
	return &model.PriceSeries{Symbol: symbol, DailyBars: bars, FetchedAt: time.Now()}, nil
}

type yahooQuoteResponse struct {
	QuoteResponse struct {
		Result []struct {
			Symbol                     string  `json:"symbol"`
			RegularMarketPrice         float64 `json:"regularMarketPrice"`
			RegularMarketChangePercent float64 `json:"regularMarketChangePercent"`
			MarketCap                  float64 `json:"marketCap"`
			TrailingPE                 float64 `json:"trailingPE"`
			FiftyTwoWeekHigh           float64 `json:"fiftyTwoWeekHigh"`
			FiftyTwoWeekLow            float64 `json:"fiftyTwoWeekLow"`
			AverageDailyVolume3Month   float64 `json:"averageDailyVolume3Month"`
		} `json:"result"`
	} `json:"quoteResponse"`
}

// FetchQuotes returns quotes for all symbols in a single batched request.
func (f *YahooFetcher) FetchQuotes(ctx context.Context, symbols []string) ([]model.Quote, error) {
	if len(symbols) == 0 {
		return nil, nil
	}
	u := fmt.Sprintf("%s?symbols=%s", f.QuoteURL, url.QueryEscape(strings.Join(symbols, ",")))

	body, err := getBody(ctx, f.Client, yahooSource, u, f.headers())
	if err != nil {
		return nil, err
	}

	var resp yahooQuoteResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("yahoo decode quotes: %w", err)
	}

	quotes := make([]model.Quote, 0, len(resp.QuoteResponse.Result))
	for _, q := range resp.QuoteResponse.Result {
		quotes = append(quotes, model.Quote{
			Symbol:           q.Symbol,
			Price:            q.RegularMarketPrice,
			ChangePercent:    q.RegularMarketChangePercent,
			MarketCap:        q.MarketCap,
			TrailingPE:       q.TrailingPE,
			FiftyTwoWeekHigh: q.FiftyTwoWeekHigh,
			FiftyTwoWeekLow:  q.FiftyTwoWeekLow,
			AvgVolume3Month:  q.AverageDailyVolume3Month,
		})
	}
	return quotes, nil
}

type yahooRaw struct {
	Raw *float64 `json:"raw"`
	Fmt string   `json:"fmt"`
}

func (r *yahooRaw) value() float64 {
	if r == nil || r.Raw == nil {
		return 0
	}
	return *r.Raw
}

type yahooSummary struct {
	QuoteSummary struct {
		Result []struct {
			EarningsHistory *struct {
				History []struct {
					Quarter     *yahooRaw `json:"quarter"`
					EPSActual   *yahooRaw `json:"epsActual"`
					EPSEstimate *yahooRaw `json:"epsEstimate"`
				} `json:"history"`
			} `json:"earningsHistory"`
			EarningsTrend *struct {
				Trend []struct {
					Period string    `json:"period"`
					Growth *yahooRaw `json:"growth"`
				} `json:"trend"`
			} `json:"earningsTrend"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"quoteSummary"`
}

// FetchEarnings returns the quarterly EPS history and forward growth trend.
func (f *YahooFetcher) FetchEarnings(ctx context.Context, symbol string) (*model.EarningsSummary, error) {
	u := fmt.Sprintf("%s/%s?modules=earningsHistory,earningsTrend,financialData", f.SummaryURL, url.PathEscape(symbol))

	body, err := getBody(ctx, f.Client, yahooSource, u, f.headers())
	if err != nil {
		return nil, err
	}

	var summary yahooSummary
	if err := json.Unmarshal(body, &summary); err != nil {
		return nil, fmt.Errorf("yahoo decode summary: %w", err)
	}
	if summary.QuoteSummary.Error != nil {
		return nil, fmt.Errorf("yahoo api error: %s", summary.QuoteSummary.Error.Description)
	}
	if len(summary.QuoteSummary.Result) == 0 {
		return nil, ErrNoData
	}

	result := summary.QuoteSummary.Result[0]
	out := &model.EarningsSummary{Symbol: symbol}
	if result.EarningsHistory != nil {
		for _, h := range result.EarningsHistory.History {
			q := model.EarningsQuarter{
				Actual:   h.EPSActual.value(),
				Estimate: h.EPSEstimate.value(),
			}
			if h.Quarter != nil {
				q.Period = h.Quarter.Fmt
			}
			out.Quarters = append(out.Quarters, q)
		}
	}
	if result.EarningsTrend != nil {
		for _, t := range result.EarningsTrend.Trend {
			gt := model.GrowthTrend{Period: t.Period}
			if t.Growth != nil && t.Growth.Raw != nil {
				gt.Growth = model.Float(*t.Growth.Raw)
			}
			out.Trend = append(out.Trend, gt)
		}
	}
	return out, nil
}
