package yahoo

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/aristath/marketlens/internal/clientdata"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func setupCacheRepo(t *testing.T) *clientdata.Repository {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	repo := clientdata.NewRepository(db)
	require.NoError(t, repo.InitSchema())
	return repo
}

// chartBody builds a minimal chart API response with the given closes,
// one bar per trading day starting 2024-01-02.
func chartBody(closes []float64) string {
	start := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC).Unix()
	ts := ""
	cl := ""
	for i, c := range closes {
		if i > 0 {
			ts += ","
			cl += ","
		}
		ts += fmt.Sprintf("%d", start+int64(i)*86400)
		cl += fmt.Sprintf("%g", c)
	}
	return fmt.Sprintf(`{"chart":{"result":[{"timestamp":[%s],"indicators":{"quote":[{"open":[%s],"high":[%s],"low":[%s],"close":[%s],"volume":[%s]}],"adjclose":[{"adjclose":[%s]}]}}],"error":null}}`,
		ts, cl, cl, cl, cl, volumes(len(closes)), cl)
}

func volumes(n int) string {
	out := ""
	for i := 0; i < n; i++ {
		if i > 0 {
			out += ","
		}
		out += "1000"
	}
	return out
}

func TestNewClient(t *testing.T) {
	client := NewClient(nil, zerolog.Nop())
	assert.NotNil(t, client)
	assert.Equal(t, defaultBaseURL, client.baseURL)
}

func TestHistory_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "GET", r.Method)
		assert.Equal(t, "/v8/finance/chart/HSBC.L", r.URL.Path)
		assert.Equal(t, "1y", r.URL.Query().Get("range"))
		assert.Equal(t, "1d", r.URL.Query().Get("interval"))

		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, chartBody([]float64{100, 101, 99.5}))
	}))
	defer server.Close()

	client := NewClient(nil, zerolog.Nop())
	client.SetBaseURL(server.URL)

	series, err := client.History(context.Background(), "HSBC.L", "1y")
	require.NoError(t, err)
	assert.Equal(t, "HSBC.L", series.Ticker)
	require.Len(t, series.Bars, 3)
	assert.Equal(t, 100.0, series.Bars[0].Close)
	assert.Equal(t, 99.5, series.Bars[2].Close)
	assert.Equal(t, int64(1000), series.Bars[0].Volume)
	assert.True(t, series.Bars[0].Date.Before(series.Bars[1].Date))
}

func TestHistory_SkipsNullRows(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"chart":{"result":[{"timestamp":[1704153600,1704240000,1704326400],"indicators":{"quote":[{"open":[100,null,102],"high":[100,null,102],"low":[100,null,102],"close":[100,null,102],"volume":[10,null,12]}],"adjclose":[{"adjclose":[100,null,102]}]}}],"error":null}}`)
	}))
	defer server.Close()

	client := NewClient(nil, zerolog.Nop())
	client.SetBaseURL(server.URL)

	series, err := client.History(context.Background(), "BP.L", "1y")
	require.NoError(t, err)
	require.Len(t, series.Bars, 2)
	assert.Equal(t, 100.0, series.Bars[0].Close)
	assert.Equal(t, 102.0, series.Bars[1].Close)
}

func TestHistory_ChartError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"chart":{"result":null,"error":{"code":"Not Found","description":"No data found, symbol may be delisted"}}}`)
	}))
	defer server.Close()

	client := NewClient(nil, zerolog.Nop())
	client.SetBaseURL(server.URL)

	_, err := client.History(context.Background(), "NOPE", "1y")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Not Found")
}

func TestHistory_EmptyResult(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"chart":{"result":[],"error":null}}`)
	}))
	defer server.Close()

	client := NewClient(nil, zerolog.Nop())
	client.SetBaseURL(server.URL)

	series, err := client.History(context.Background(), "EMPTY.L", "1y")
	require.NoError(t, err)
	assert.Empty(t, series.Bars)
}

func TestHistory_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := NewClient(nil, zerolog.Nop())
	client.SetBaseURL(server.URL)

	_, err := client.History(context.Background(), "HSBC.L", "1y")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 429")
}

func TestHistory_CachesResults(t *testing.T) {
	var calls int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&calls, 1)
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, chartBody([]float64{100, 101}))
	}))
	defer server.Close()

	client := NewClient(setupCacheRepo(t), zerolog.Nop())
	client.SetBaseURL(server.URL)

	first, err := client.History(context.Background(), "HSBC.L", "1y")
	require.NoError(t, err)

	second, err := client.History(context.Background(), "HSBC.L", "1y")
	require.NoError(t, err)

	assert.Equal(t, int64(1), atomic.LoadInt64(&calls))
	assert.Equal(t, first.Bars, second.Bars)
}

func TestHistory_NoFallbackWhenCacheEmpty(t *testing.T) {
	var fail atomic.Bool
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if fail.Load() {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, chartBody([]float64{100, 101}))
	}))
	defer server.Close()

	repo := setupCacheRepo(t)
	client := NewClient(repo, zerolog.Nop())
	client.SetBaseURL(server.URL)

	_, err := client.History(context.Background(), "HSBC.L", "1y")
	require.NoError(t, err)

	// Remove the cached entry entirely, then break the API. With no stale
	// copy to fall back on, the error surfaces.
	require.NoError(t, repo.Delete(clientdata.TableYahooHistory, historyCacheKey("HSBC.L", "1y")))
	fail.Store(true)

	_, err = client.History(context.Background(), "HSBC.L", "1y")
	require.Error(t, err)
}

func TestHistory_StaleServedWhenExpired(t *testing.T) {
	var fail atomic.Bool
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if fail.Load() {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, chartBody([]float64{100, 101}))
	}))
	defer server.Close()

	repo := setupCacheRepo(t)
	client := NewClient(repo, zerolog.Nop())
	client.SetBaseURL(server.URL)

	first, err := client.History(context.Background(), "HSBC.L", "1y")
	require.NoError(t, err)

	// Rewrite the entry with an already-passed expiry so GetIfFresh misses
	// but Get still finds it.
	key := historyCacheKey("HSBC.L", "1y")
	stale, err := repo.Get(clientdata.TableYahooHistory, key)
	require.NoError(t, err)
	require.NoError(t, repo.StoreRaw(clientdata.TableYahooHistory, key, stale, -time.Minute))

	fail.Store(true)

	second, err := client.History(context.Background(), "HSBC.L", "1y")
	require.NoError(t, err)
	assert.Equal(t, first.Bars, second.Bars)
}

func TestSearch_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/finance/search", r.URL.Path)
		assert.Equal(t, "hsbc holdings", r.URL.Query().Get("q"))

		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"quotes":[{"symbol":"HSBA.L","shortname":"HSBC HOLDINGS PLC","exchange":"LSE","quoteType":"EQUITY"},{"symbol":"HSBC","shortname":"HSBC Holdings plc","exchange":"NYQ","quoteType":"EQUITY"}]}`)
	}))
	defer server.Close()

	client := NewClient(nil, zerolog.Nop())
	client.SetBaseURL(server.URL)

	results, err := client.Search(context.Background(), "hsbc holdings")
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "HSBA.L", results[0].Symbol)
	assert.Equal(t, "LSE", results[0].Exchange)
}

func TestSearch_NoMatches(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"quotes":[]}`)
	}))
	defer server.Close()

	client := NewClient(nil, zerolog.Nop())
	client.SetBaseURL(server.URL)

	results, err := client.Search(context.Background(), "no such company")
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestSearch_CachesResults(t *testing.T) {
	var calls int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&calls, 1)
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"quotes":[{"symbol":"TSCO.L","shortname":"TESCO PLC"}]}`)
	}))
	defer server.Close()

	client := NewClient(setupCacheRepo(t), zerolog.Nop())
	client.SetBaseURL(server.URL)

	_, err := client.Search(context.Background(), "Tesco")
	require.NoError(t, err)

	// Cache key is case-insensitive, so a differently cased query hits.
	results, err := client.Search(context.Background(), "tesco")
	require.NoError(t, err)

	assert.Equal(t, int64(1), atomic.LoadInt64(&calls))
	require.Len(t, results, 1)
	assert.Equal(t, "TSCO.L", results[0].Symbol)
}

func TestHistoryCacheKey(t *testing.T) {
	assert.Equal(t, "HSBC.L|1y", historyCacheKey("hsbc.l", "1y"))
}
