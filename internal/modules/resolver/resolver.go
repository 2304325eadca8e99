// Package resolver maps free-text company names to ticker symbols.
// Resolution is alias-table-first with an upstream search fallback.
package resolver

import (
	"context"
	"errors"
	"strings"

	"github.com/aristath/marketlens/internal/domain"
	"github.com/rs/zerolog"
)

// ErrNotFound is returned when neither the alias table nor the search
// fallback yields a ticker.
var ErrNotFound = errors.New("ticker not found")

// Resolver resolves company names to tickers.
type Resolver struct {
	aliases AliasTable
	search  domain.TickerSearcher
	log     zerolog.Logger
}

// New creates a resolver. search is optional - if nil, only the alias
// table is consulted.
func New(aliases AliasTable, search domain.TickerSearcher, log zerolog.Logger) *Resolver {
	return &Resolver{
		aliases: aliases,
		search:  search,
		log:     log.With().Str("component", "resolver").Logger(),
	}
}

// Resolve returns the ticker for a company name.
//
// The alias scan uses bidirectional substring containment: the query
// matches an alias when either string contains the other. That is
// deliberately permissive ("lloyds bank" matches "lloyds") and means
// short aliases can shadow longer ones later in the table.
func (r *Resolver) Resolve(ctx context.Context, companyName string) (string, error) {
	query := strings.ToLower(strings.TrimSpace(companyName))
	if query == "" {
		return "", ErrNotFound
	}

	for _, alias := range r.aliases {
		if strings.Contains(alias.Name, query) || strings.Contains(query, alias.Name) {
			r.log.Debug().
				Str("query", query).
				Str("alias", alias.Name).
				Str("ticker", alias.Ticker).
				Msg("Resolved via alias table")
			return alias.Ticker, nil
		}
	}

	if r.search != nil {
		results, err := r.search.Search(ctx, companyName)
		if err != nil {
			r.log.Warn().Err(err).Str("query", query).Msg("Search fallback failed")
		} else if len(results) > 0 {
			r.log.Debug().
				Str("query", query).
				Str("ticker", results[0].Symbol).
				Msg("Resolved via search fallback")
			return results[0].Symbol, nil
		}
	}

	return "", ErrNotFound
}
