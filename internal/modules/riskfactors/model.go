// Package riskfactors scores companies against fixed macro risk factor
// tables, adjusted per sector. Three categories are tracked: geopolitical,
// supply chain, and capital flow.
package riskfactors

import "github.com/aristath/marketlens/internal/domain"

// Model holds the base factor tables and per-sector multipliers.
// Built once at startup, read-only afterwards, safe for concurrent use.
type Model struct {
	base        map[Category]FactorTable
	adjustments map[Category]SectorAdjustments
}

// NewDefaultModel builds the model from the built-in tables.
func NewDefaultModel() *Model {
	return &Model{
		base: map[Category]FactorTable{
			CategoryGeopolitical: defaultGeopoliticalFactors(),
			CategorySupplyChain:  defaultSupplyChainFactors(),
			CategoryCapitalFlow:  defaultCapitalFlowFactors(),
		},
		adjustments: map[Category]SectorAdjustments{
			CategoryGeopolitical: defaultGeopoliticalAdjustments(),
			CategorySupplyChain:  defaultSupplyChainAdjustments(),
			CategoryCapitalFlow:  defaultCapitalFlowAdjustments(),
		},
	}
}

// AdjustedScores returns the category's factor scores scaled by the
// sector's multiplier and clamped to [0,1]. Unknown sectors (including
// Other) use a multiplier of 1.0. The returned map is a fresh copy.
func (m *Model) AdjustedScores(category Category, sector domain.SectorTag) map[string]float64 {
	base := m.base[category]

	multiplier := 1.0
	if adj, ok := m.adjustments[category][sector]; ok {
		multiplier = adj
	}

	adjusted := make(map[string]float64, len(base))
	for factor, score := range base {
		adjusted[factor] = clamp01(score * multiplier)
	}
	return adjusted
}

func clamp01(v float64) float64 {
	if v > 1.0 {
		return 1.0
	}
	if v < 0 {
		return 0
	}
	return v
}
