// Package handlers provides HTTP handlers for company analysis requests.
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/aristath/marketlens/internal/modules/analysis"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// Handler handles analysis HTTP requests
type Handler struct {
	service *analysis.Service
	log     zerolog.Logger
}

// NewHandler creates a new analysis handler
func NewHandler(service *analysis.Service, log zerolog.Logger) *Handler {
	return &Handler{
		service: service,
		log:     log.With().Str("handler", "analysis").Logger(),
	}
}

// HandleAnalyze handles GET /api/analysis?company=NAME and
// GET /api/analysis/{company}.
func (h *Handler) HandleAnalyze(w http.ResponseWriter, r *http.Request) {
	company := r.URL.Query().Get("company")
	if company == "" {
		company = chi.URLParam(r, "company")
	}

	result, err := h.service.Analyze(r.Context(), company)
	if err != nil {
		h.writeError(w, err)
		return
	}

	response := map[string]interface{}{
		"data": result,
		"metadata": map[string]interface{}{
			"timestamp": time.Now().Format(time.RFC3339),
		},
	}

	h.writeJSON(w, http.StatusOK, response)
}

// writeError maps tagged analysis failures to HTTP status codes.
func (h *Handler) writeError(w http.ResponseWriter, err error) {
	var analysisErr *analysis.Error
	if !errors.As(err, &analysisErr) {
		h.log.Error().Err(err).Msg("Unexpected analysis failure")
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	status := http.StatusInternalServerError
	switch analysisErr.Kind {
	case analysis.KindInvalidInput:
		status = http.StatusBadRequest
	case analysis.KindNotFound:
		status = http.StatusNotFound
	case analysis.KindNoData, analysis.KindInsufficientData:
		status = http.StatusUnprocessableEntity
	}

	h.log.Debug().
		Str("kind", string(analysisErr.Kind)).
		Str("reason", analysisErr.Reason).
		Int("status", status).
		Msg("Analysis request failed")

	h.writeJSON(w, status, map[string]interface{}{
		"error": map[string]interface{}{
			"kind":   analysisErr.Kind,
			"reason": analysisErr.Reason,
		},
	})
}

// writeJSON writes a JSON response with the given status code
func (h *Handler) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.log.Error().Err(err).Msg("Failed to encode response")
	}
}
