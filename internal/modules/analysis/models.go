package analysis

import (
	"time"

	"github.com/aristath/marketlens/internal/domain"
	"github.com/aristath/marketlens/internal/modules/recommendation"
	"github.com/aristath/marketlens/internal/modules/statistics"
)

// CompanyAnalysis is the assembled result of one analysis request.
// Built fresh per request, never persisted, owned by the caller.
type CompanyAnalysis struct {
	ID                 string                        `json:"id"`
	CompanyName        string                        `json:"company_name"`
	Ticker             string                        `json:"ticker"`
	Sector             domain.SectorTag              `json:"sector"`
	GeopoliticalScores map[string]float64            `json:"geopolitical_scores"`
	SupplyChainScores  map[string]float64            `json:"supply_chain_scores"`
	CapitalFlowScores  map[string]float64            `json:"capital_flow_scores"`
	Statistics         statistics.Summary            `json:"statistics"`
	Technicals         *statistics.Technicals        `json:"technicals,omitempty"`
	Recommendation     recommendation.Recommendation `json:"recommendation"`
	AnalyzedAt         time.Time                     `json:"analyzed_at"`
}
