// Package analysis orchestrates the full company analysis pipeline:
// name → ticker → price history → sector → risk factors → statistics →
// recommendation. Each stage depends on the previous one, so any failure
// short-circuits the rest and surfaces as a tagged *Error.
package analysis

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/aristath/marketlens/internal/domain"
	"github.com/aristath/marketlens/internal/modules/recommendation"
	"github.com/aristath/marketlens/internal/modules/resolver"
	"github.com/aristath/marketlens/internal/modules/riskfactors"
	"github.com/aristath/marketlens/internal/modules/sectors"
	"github.com/aristath/marketlens/internal/modules/statistics"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Service runs analysis requests end to end.
type Service struct {
	resolver   *resolver.Resolver
	classifier *sectors.Classifier
	model      *riskfactors.Model
	bars       domain.BarProvider
	period     string
	log        zerolog.Logger
}

// NewService wires the pipeline. period is the history range requested
// from the bar provider (e.g. "1y").
func NewService(
	res *resolver.Resolver,
	classifier *sectors.Classifier,
	model *riskfactors.Model,
	bars domain.BarProvider,
	period string,
	log zerolog.Logger,
) *Service {
	return &Service{
		resolver:   res,
		classifier: classifier,
		model:      model,
		bars:       bars,
		period:     period,
		log:        log.With().Str("component", "analysis").Logger(),
	}
}

// Analyze runs the pipeline for one company name. On failure it returns a
// *Error and no partial result.
func (s *Service) Analyze(ctx context.Context, companyName string) (*CompanyAnalysis, error) {
	if strings.TrimSpace(companyName) == "" {
		return nil, newError(KindInvalidInput, "company name is empty")
	}

	ticker, err := s.resolver.Resolve(ctx, companyName)
	if err != nil {
		if errors.Is(err, resolver.ErrNotFound) {
			return nil, newError(KindNotFound, "no ticker found for %q", companyName)
		}
		return nil, newError(KindNotFound, "resolving %q: %v", companyName, err)
	}

	series, err := s.bars.History(ctx, ticker, s.period)
	if err != nil {
		// Upstream failure and "no such data" look identical to the
		// caller: the analysis cannot proceed.
		return nil, newError(KindNoData, "fetching history for %s: %v", ticker, err)
	}
	if series.Len() == 0 {
		return nil, newError(KindNoData, "no price history for %s", ticker)
	}

	sector := s.classifier.Classify(companyName)

	geo := s.model.AdjustedScores(riskfactors.CategoryGeopolitical, sector)
	supply := s.model.AdjustedScores(riskfactors.CategorySupplyChain, sector)
	capital := s.model.AdjustedScores(riskfactors.CategoryCapitalFlow, sector)

	summary, err := statistics.Compute(series.Bars)
	if err != nil {
		if errors.Is(err, statistics.ErrInsufficientData) {
			return nil, newError(KindInsufficientData, "only %d price bar(s) for %s", series.Len(), ticker)
		}
		return nil, newError(KindInsufficientData, "computing statistics for %s: %v", ticker, err)
	}

	rec := recommendation.Synthesize(geo, supply, capital, summary)

	s.log.Info().
		Str("company", companyName).
		Str("ticker", ticker).
		Str("sector", string(sector)).
		Float64("overall_risk", rec.OverallScore).
		Str("recommendation", string(rec.Label)).
		Msg("Analysis complete")

	return &CompanyAnalysis{
		ID:                 uuid.New().String(),
		CompanyName:        companyName,
		Ticker:             ticker,
		Sector:             sector,
		GeopoliticalScores: geo,
		SupplyChainScores:  supply,
		CapitalFlowScores:  capital,
		Statistics:         summary,
		Technicals:         statistics.ComputeTechnicals(series.Bars),
		Recommendation:     rec,
		AnalyzedAt:         time.Now().UTC(),
	}, nil
}
