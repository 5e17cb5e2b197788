package collector

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"CanslimScanner/internal/model"
)

const finvizSource = "finviz"

// FinvizFetcher scrapes the Finviz quote snapshot page.
type FinvizFetcher struct {
	Client    *http.Client
	BaseURL   string
	UserAgent string
}

// NewFinvizFetcher creates a snapshot page fetcher with optional proxy support.
func NewFinvizFetcher(baseURL, userAgent, proxyURL string, timeout time.Duration) *FinvizFetcher {
	return &FinvizFetcher{
		Client:    newHTTPClient(proxyURL, timeout),
		BaseURL:   baseURL,
		UserAgent: userAgent,
	}
}

func (f *FinvizFetcher) Name() string { return "Finviz" }

// FetchSnapshot downloads the snapshot page and extracts its fields.
func (f *FinvizFetcher) FetchSnapshot(ctx context.Context, symbol string) (*model.ScrapedFields, error) {
	u := fmt.Sprintf("%s?t=%s&p=d", f.BaseURL, url.QueryEscape(symbol))
	body, err := getBody(ctx, f.Client, finvizSource, u, map[string]string{
		"User-Agent":      f.UserAgent,
		"Accept":          "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8",
		"Accept-Language": "en-US,en;q=0.5",
	})
	if err != nil {
		return nil, err
	}
	return ExtractFields(string(body)), nil
}
