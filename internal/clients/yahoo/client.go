// Package yahoo provides a client for Yahoo Finance's public chart and
// search endpoints. The chart API serves daily OHLCV history; the search
// API maps free-text company names to ticker symbols.
package yahoo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/aristath/marketlens/internal/clientdata"
	"github.com/aristath/marketlens/internal/domain"
	"github.com/rs/zerolog"
	"github.com/vmihailenco/msgpack/v5"
)

const (
	defaultBaseURL = "https://query1.finance.yahoo.com"
	// Yahoo rejects requests without a browser-like User-Agent.
	userAgent = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36"
)

// chartResponse mirrors the /v8/finance/chart payload. Only the fields the
// client reads are declared.
type chartResponse struct {
	Chart struct {
		Result []struct {
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Open   []*float64 `json:"open"`
					High   []*float64 `json:"high"`
					Low    []*float64 `json:"low"`
					Close  []*float64 `json:"close"`
					Volume []*int64   `json:"volume"`
				} `json:"quote"`
				AdjClose []struct {
					AdjClose []*float64 `json:"adjclose"`
				} `json:"adjclose"`
			} `json:"indicators"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

// searchResponse mirrors the /v1/finance/search payload.
type searchResponse struct {
	Quotes []struct {
		Symbol    string `json:"symbol"`
		ShortName string `json:"shortname"`
		LongName  string `json:"longname"`
		Exchange  string `json:"exchange"`
		QuoteType string `json:"quoteType"`
	} `json:"quotes"`
}

// Client is the Yahoo Finance API client.
// It implements domain.BarProvider and domain.TickerSearcher.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        zerolog.Logger
	cacheRepo  *clientdata.Repository
	historyTTL time.Duration
	searchTTL  time.Duration
}

// NewClient creates a new Yahoo Finance client.
// cacheRepo is optional - if nil, caching is disabled.
func NewClient(cacheRepo *clientdata.Repository, log zerolog.Logger) *Client {
	return &Client{
		baseURL: defaultBaseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		log:        log.With().Str("component", "yahoo").Logger(),
		cacheRepo:  cacheRepo,
		historyTTL: clientdata.TTLHistory,
		searchTTL:  clientdata.TTLSearch,
	}
}

// SetBaseURL overrides the API base URL. Used by tests to point the client
// at a local httptest server.
func (c *Client) SetBaseURL(baseURL string) {
	c.baseURL = baseURL
}

// SetTimeout overrides the per-request HTTP timeout.
func (c *Client) SetTimeout(d time.Duration) {
	c.httpClient.Timeout = d
}

// SetCacheTTLs overrides the cache freshness windows.
func (c *Client) SetCacheTTLs(history, search time.Duration) {
	c.historyTTL = history
	c.searchTTL = search
}

// History returns daily bars for a ticker over the given range (e.g. "1y").
// Results are cached; if the API fails, stale cached data is returned when
// available (stale data > no data).
func (c *Client) History(ctx context.Context, ticker, period string) (domain.PriceSeries, error) {
	key := historyCacheKey(ticker, period)

	if series, ok := c.historyFromCache(key); ok {
		c.log.Debug().Str("ticker", ticker).Str("period", period).Msg("History cache hit")
		return series, nil
	}

	series, err := c.fetchHistory(ctx, ticker, period)
	if err != nil {
		if stale, ok := c.staleHistoryFromCache(key); ok {
			c.log.Warn().
				Err(err).
				Str("ticker", ticker).
				Msg("API failed, using stale cached history")
			return stale, nil
		}
		return domain.PriceSeries{}, err
	}

	c.setHistoryCache(key, series)

	return series, nil
}

// Search returns candidate symbols for a free-text query, best match first.
// An empty result with nil error means Yahoo matched nothing.
func (c *Client) Search(ctx context.Context, query string) ([]domain.SearchResult, error) {
	key := strings.ToLower(strings.TrimSpace(query))

	if results, ok := c.searchFromCache(key); ok {
		c.log.Debug().Str("query", query).Msg("Search cache hit")
		return results, nil
	}

	results, err := c.fetchSearch(ctx, query)
	if err != nil {
		if stale, ok := c.staleSearchFromCache(key); ok {
			c.log.Warn().
				Err(err).
				Str("query", query).
				Msg("API failed, using stale cached search results")
			return stale, nil
		}
		return nil, err
	}

	c.setSearchCache(key, results)

	return results, nil
}

// fetchHistory performs the HTTP request to the chart API.
func (c *Client) fetchHistory(ctx context.Context, ticker, period string) (domain.PriceSeries, error) {
	endpoint := fmt.Sprintf("%s/v8/finance/chart/%s?range=%s&interval=1d&events=div%%2Csplit",
		c.baseURL, url.PathEscape(ticker), url.QueryEscape(period))

	body, err := c.doRequest(ctx, endpoint)
	if err != nil {
		return domain.PriceSeries{}, err
	}

	var parsed chartResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return domain.PriceSeries{}, fmt.Errorf("failed to decode chart response: %w", err)
	}

	if parsed.Chart.Error != nil {
		return domain.PriceSeries{}, fmt.Errorf("chart API error for %s: %s (%s)",
			ticker, parsed.Chart.Error.Description, parsed.Chart.Error.Code)
	}

	if len(parsed.Chart.Result) == 0 || len(parsed.Chart.Result[0].Indicators.Quote) == 0 {
		// Yahoo returns an empty result set for symbols it knows but has
		// no price data for.
		return domain.PriceSeries{Ticker: ticker}, nil
	}

	result := parsed.Chart.Result[0]
	quote := result.Indicators.Quote[0]

	// Prefer adjusted closes so splits and dividends don't show up as
	// artificial returns.
	var adjClose []*float64
	if len(result.Indicators.AdjClose) > 0 {
		adjClose = result.Indicators.AdjClose[0].AdjClose
	}

	series := domain.PriceSeries{
		Ticker: ticker,
		Bars:   make([]domain.PriceBar, 0, len(result.Timestamp)),
	}

	for i, ts := range result.Timestamp {
		closePx := valueAt(quote.Close, i)
		if len(adjClose) > i && adjClose[i] != nil {
			closePx = *adjClose[i]
		}
		// Yahoo emits null rows for halted sessions; skip them.
		if closePx == 0 {
			continue
		}

		bar := domain.PriceBar{
			Date:  time.Unix(ts, 0).UTC(),
			Open:  valueAt(quote.Open, i),
			High:  valueAt(quote.High, i),
			Low:   valueAt(quote.Low, i),
			Close: closePx,
		}
		if len(quote.Volume) > i && quote.Volume[i] != nil {
			bar.Volume = *quote.Volume[i]
		}
		series.Bars = append(series.Bars, bar)
	}

	return series, nil
}

// fetchSearch performs the HTTP request to the search API.
func (c *Client) fetchSearch(ctx context.Context, query string) ([]domain.SearchResult, error) {
	endpoint := fmt.Sprintf("%s/v1/finance/search?q=%s&quotesCount=10&newsCount=0",
		c.baseURL, url.QueryEscape(query))

	body, err := c.doRequest(ctx, endpoint)
	if err != nil {
		return nil, err
	}

	var parsed searchResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("failed to decode search response: %w", err)
	}

	results := make([]domain.SearchResult, 0, len(parsed.Quotes))
	for _, q := range parsed.Quotes {
		if q.Symbol == "" {
			continue
		}
		results = append(results, domain.SearchResult{
			Symbol:    q.Symbol,
			ShortName: q.ShortName,
			LongName:  q.LongName,
			Exchange:  q.Exchange,
			QuoteType: q.QuoteType,
		})
	}

	return results, nil
}

// doRequest performs a GET request and returns the response body.
func (c *Client) doRequest(ctx context.Context, endpoint string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("Yahoo API error: status %d, body: %s", resp.StatusCode, string(bodyBytes))
	}

	return io.ReadAll(resp.Body)
}

// historyCacheKey builds the cache key for a (ticker, period) pair.
func historyCacheKey(ticker, period string) string {
	return strings.ToUpper(ticker) + "|" + period
}

// valueAt dereferences a nullable column entry, returning 0 for nulls.
func valueAt(col []*float64, i int) float64 {
	if len(col) > i && col[i] != nil {
		return *col[i]
	}
	return 0
}

// historyFromCache retrieves a cached series if it exists and hasn't expired.
func (c *Client) historyFromCache(key string) (domain.PriceSeries, bool) {
	if c.cacheRepo == nil {
		return domain.PriceSeries{}, false
	}

	data, err := c.cacheRepo.GetIfFresh(clientdata.TableYahooHistory, key)
	if err != nil {
		c.log.Warn().Err(err).Str("key", key).Msg("Failed to get history from cache")
		return domain.PriceSeries{}, false
	}
	if data == nil {
		return domain.PriceSeries{}, false
	}

	return decodeSeries(c.log, key, data)
}

// staleHistoryFromCache retrieves a cached series even if expired.
// Used as a fallback when API calls fail.
func (c *Client) staleHistoryFromCache(key string) (domain.PriceSeries, bool) {
	if c.cacheRepo == nil {
		return domain.PriceSeries{}, false
	}

	data, err := c.cacheRepo.Get(clientdata.TableYahooHistory, key)
	if err != nil {
		c.log.Warn().Err(err).Str("key", key).Msg("Failed to get stale history from cache")
		return domain.PriceSeries{}, false
	}
	if data == nil {
		return domain.PriceSeries{}, false
	}

	return decodeSeries(c.log, key, data)
}

// setHistoryCache stores a series in the persistent cache as msgpack.
// Price history is the bulky payload here, so it gets the compact encoding.
func (c *Client) setHistoryCache(key string, series domain.PriceSeries) {
	if c.cacheRepo == nil {
		return
	}

	blob, err := msgpack.Marshal(series)
	if err != nil {
		c.log.Warn().Err(err).Str("key", key).Msg("Failed to encode series for cache")
		return
	}

	if err := c.cacheRepo.StoreRaw(clientdata.TableYahooHistory, key, blob, c.historyTTL); err != nil {
		c.log.Warn().Err(err).Str("key", key).Msg("Failed to cache history")
	}
}

func decodeSeries(log zerolog.Logger, key string, data []byte) (domain.PriceSeries, bool) {
	var series domain.PriceSeries
	if err := msgpack.Unmarshal(data, &series); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("Failed to decode cached series")
		return domain.PriceSeries{}, false
	}
	return series, true
}

// searchFromCache retrieves cached search results if fresh.
func (c *Client) searchFromCache(key string) ([]domain.SearchResult, bool) {
	if c.cacheRepo == nil {
		return nil, false
	}

	data, err := c.cacheRepo.GetIfFresh(clientdata.TableYahooSearch, key)
	if err != nil {
		c.log.Warn().Err(err).Str("query", key).Msg("Failed to get search results from cache")
		return nil, false
	}
	if data == nil {
		return nil, false
	}

	var results []domain.SearchResult
	if err := json.Unmarshal(data, &results); err != nil {
		c.log.Warn().Err(err).Str("query", key).Msg("Failed to unmarshal cached search results")
		return nil, false
	}

	return results, true
}

// staleSearchFromCache retrieves cached search results even if expired.
func (c *Client) staleSearchFromCache(key string) ([]domain.SearchResult, bool) {
	if c.cacheRepo == nil {
		return nil, false
	}

	data, err := c.cacheRepo.Get(clientdata.TableYahooSearch, key)
	if err != nil {
		c.log.Warn().Err(err).Str("query", key).Msg("Failed to get stale search results from cache")
		return nil, false
	}
	if data == nil {
		return nil, false
	}

	var results []domain.SearchResult
	if err := json.Unmarshal(data, &results); err != nil {
		c.log.Warn().Err(err).Str("query", key).Msg("Failed to unmarshal stale search results")
		return nil, false
	}

	return results, true
}

// setSearchCache stores search results in the persistent cache.
func (c *Client) setSearchCache(key string, results []domain.SearchResult) {
	if c.cacheRepo == nil {
		return
	}

	if err := c.cacheRepo.Store(clientdata.TableYahooSearch, key, results, c.searchTTL); err != nil {
		c.log.Warn().Err(err).Str("query", key).Msg("Failed to cache search results")
	}
}
