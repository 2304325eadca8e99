package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aristath/marketlens/internal/domain"
	"github.com/aristath/marketlens/internal/modules/analysis"
	analysishandlers "github.com/aristath/marketlens/internal/modules/analysis/handlers"
	"github.com/aristath/marketlens/internal/modules/resolver"
	"github.com/aristath/marketlens/internal/modules/riskfactors"
	"github.com/aristath/marketlens/internal/modules/sectors"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type emptyBarProvider struct{}

func (emptyBarProvider) History(context.Context, string, string) (domain.PriceSeries, error) {
	return domain.PriceSeries{}, nil
}

func newTestServer(t *testing.T) *Server {
	t.Helper()

	service := analysis.NewService(
		resolver.New(resolver.DefaultAliases(), nil, zerolog.Nop()),
		sectors.NewClassifier(sectors.DefaultRules()),
		riskfactors.NewDefaultModel(),
		emptyBarProvider{},
		"1y",
		zerolog.Nop(),
	)

	return New(Config{
		Log:             zerolog.Nop(),
		Port:            0,
		DevMode:         true,
		AnalysisHandler: analysishandlers.NewHandler(service, zerolog.Nop()),
	})
}

func TestHealthEndpoint(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest("GET", "/health", nil)
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}

func TestAPIHealthEndpoint(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest("GET", "/api/health", nil)
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "healthy", body.Status)
	assert.GreaterOrEqual(t, body.UptimeSeconds, 0.0)
	assert.NotEmpty(t, body.Timestamp)
}

func TestAnalysisRouteMounted(t *testing.T) {
	srv := newTestServer(t)

	// The provider has no data, so a resolvable name yields 422 — which
	// proves the route is wired through to the analysis service.
	req := httptest.NewRequest("GET", "/api/analysis?company=HSBC", nil)
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestUnknownRoute(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest("GET", "/api/nope", nil)
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
