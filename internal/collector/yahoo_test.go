package collector

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const chartBody = `{"chart":{"result":[{"timestamp":[1700000000,1700086400,1700172800],
"indicators":{"quote":[{"open":[10,11,null],"high":[10.5,11.5,null],"low":[9.5,10.5,null],
"close":[10.2,11.1,null],"volume":[1000,2000,null]}]}}],"error":null}}`

const quoteBody = `{"quoteResponse":{"result":[
{"symbol":"NVDA","regularMarketPrice":120.5,"regularMarketChangePercent":1.5,"marketCap":3000000000000,
"trailingPE":55.2,"fiftyTwoWeekHigh":150,"fiftyTwoWeekLow":80,"averageDailyVolume3Month":250000000},
{"symbol":"AMD","regularMarketPrice":140}]}}`

const summaryBody = `{"quoteSummary":{"result":[{
"earningsHistory":{"history":[
 {"quarter":{"raw":1,"fmt":"2024-03-31"},"epsActual":{"raw":1.1},"epsEstimate":{"raw":1.0}},
 {"quarter":{"raw":2,"fmt":"2024-06-30"},"epsActual":{"raw":0.9},"epsEstimate":{}}]},
"earningsTrend":{"trend":[{"period":"0y","growth":{"raw":0.1}},{"period":"+1y","growth":{"raw":0.25}},{"period":"+5y","growth":{}}]}
}],"error":null}}`

func newYahooTestServer(t *testing.T) (*httptest.Server, *YahooFetcher) {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/chart/", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "1d", r.URL.Query().Get("interval"))
		assert.Equal(t, "1y", r.URL.Query().Get("range"))
		assert.NotEmpty(t, r.Header.Get("User-Agent"))
		if strings.HasSuffix(r.URL.Path, "/MISSING") {
			http.Error(w, "not found", http.StatusNotFound)
			return
		}
		w.Write([]byte(chartBody))
	})
	mux.HandleFunc("/quote", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "NVDA,AMD", r.URL.Query().Get("symbols"))
		w.Write([]byte(quoteBody))
	})
	mux.HandleFunc("/summary/", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "earningsHistory,earningsTrend,financialData", r.URL.Query().Get("modules"))
		if strings.HasSuffix(r.URL.Path, "/EMPTY") {
			w.Write([]byte(`{"quoteSummary":{"result":[]}}`))
			return
		}
		w.Write([]byte(summaryBody))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	f := NewYahooFetcher(srv.URL+"/chart", srv.URL+"/quote", srv.URL+"/summary", "test-agent", "", 5*time.Second)
	return srv, f
}

func TestYahooFetcher_FetchChart(t *testing.T) {
	_, f := newYahooTestServer(t)

	series, err := f.FetchChart(context.Background(), "NVDA")
	require.NoError(t, err)
	require.Len(t, series.DailyBars, 2, "null bar is dropped")
	assert.Equal(t, []float64{10.2, 11.1}, series.Closes())
	assert.Equal(t, []float64{1000, 2000}, series.Volumes())
	assert.Equal(t, "NVDA", series.Symbol)
}

func TestYahooFetcher_FetchChart_StatusError(t *testing.T) {
	_, f := newYahooTestServer(t)

	_, err := f.FetchChart(context.Background(), "MISSING")
	var se *StatusError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, http.StatusNotFound, se.StatusCode)
}

func TestYahooFetcher_FetchQuotes(t *testing.T) {
	_, f := newYahooTestServer(t)

	quotes, err := f.FetchQuotes(context.Background(), []string{"NVDA", "AMD"})
	require.NoError(t, err)
	require.Len(t, quotes, 2)
	assert.Equal(t, "NVDA", quotes[0].Symbol)
	assert.Equal(t, 120.5, quotes[0].Price)
	assert.Equal(t, 55.2, quotes[0].TrailingPE)
	assert.Equal(t, 250000000.0, quotes[0].AvgVolume3Month)
	assert.Equal(t, 0.0, quotes[1].TrailingPE)
}

func TestYahooFetcher_FetchEarnings(t *testing.T) {
	_, f := newYahooTestServer(t)

	e, err := f.FetchEarnings(context.Background(), "NVDA")
	require.NoError(t, err)
	require.Len(t, e.Quarters, 2)
	assert.Equal(t, "2024-03-31", e.Quarters[0].Period)
	assert.Equal(t, 1.1, e.Quarters[0].Actual)
	assert.Equal(t, 0.0, e.Quarters[1].Estimate, "missing raw defaults to zero")
	require.NotNil(t, e.NextYearGrowth())
	assert.Equal(t, 0.25, *e.NextYearGrowth())
	assert.Nil(t, e.Trend[2].Growth)

	_, err = f.FetchEarnings(context.Background(), "EMPTY")
	assert.ErrorIs(t, err, ErrNoData)
}

func TestYahooFetcher_TransportError(t *testing.T) {
	srv, f := newYahooTestServer(t)
	srv.Close()

	_, err := f.FetchChart(context.Background(), "NVDA")
	assert.Error(t, err)
}
