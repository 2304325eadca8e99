package domain

import "context"

// BarProvider supplies historical daily bars for a ticker.
// This interface breaks the dependency between the analysis modules and the
// concrete Yahoo client, and lets tests substitute canned series.
type BarProvider interface {
	// History returns the daily bars for the given ticker over the given
	// range (e.g. "1y"). The returned series is ordered oldest first.
	History(ctx context.Context, ticker, period string) (PriceSeries, error)
}

// TickerSearcher resolves free-text company names to traded symbols via an
// upstream search endpoint. Used as a fallback when the local alias table
// has no match.
type TickerSearcher interface {
	// Search returns candidate symbols for the query, best match first.
	// An empty slice with a nil error means the query matched nothing.
	Search(ctx context.Context, query string) ([]SearchResult, error)
}
