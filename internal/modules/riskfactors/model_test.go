package riskfactors

import (
	"testing"

	"github.com/aristath/marketlens/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allSectors = []domain.SectorTag{
	domain.SectorFinancialServices,
	domain.SectorTechnology,
	domain.SectorHealthcare,
	domain.SectorEnergy,
	domain.SectorManufacturing,
	domain.SectorRetail,
	domain.SectorRealEstate,
	domain.SectorConsumerGoods,
	domain.SectorMining,
	domain.SectorTelecom,
	domain.SectorTransportation,
	domain.SectorOther,
}

func TestAdjustedScores_Multiplier(t *testing.T) {
	m := NewDefaultModel()

	// Financial Services geopolitical multiplier is 1.2:
	// EU Relations 0.7 * 1.2 = 0.84.
	scores := m.AdjustedScores(CategoryGeopolitical, domain.SectorFinancialServices)
	assert.InDelta(t, 0.84, scores["EU Relations"], 1e-12)

	// Global Trade Tensions 0.9 * 1.2 = 1.08, clamped to 1.0.
	assert.Equal(t, 1.0, scores["Global Trade Tensions"])
}

func TestAdjustedScores_UnknownSectorDefaultsToBase(t *testing.T) {
	m := NewDefaultModel()

	scores := m.AdjustedScores(CategoryGeopolitical, domain.SectorOther)
	assert.InDelta(t, 0.8, scores["Brexit Impact"], 1e-12)
	assert.InDelta(t, 0.9, scores["Global Trade Tensions"], 1e-12)
}

func TestAdjustedScores_AlwaysInUnitInterval(t *testing.T) {
	m := NewDefaultModel()

	for _, category := range Categories {
		for _, sector := range allSectors {
			scores := m.AdjustedScores(category, sector)
			require.NotEmpty(t, scores, "category %s sector %s", category, sector)
			for factor, score := range scores {
				assert.GreaterOrEqual(t, score, 0.0, "%s/%s/%s", category, sector, factor)
				assert.LessOrEqual(t, score, 1.0, "%s/%s/%s", category, sector, factor)
			}
		}
	}
}

func TestAdjustedScores_ReturnsCopy(t *testing.T) {
	m := NewDefaultModel()

	first := m.AdjustedScores(CategorySupplyChain, domain.SectorManufacturing)
	first["Shipping Costs"] = -99

	second := m.AdjustedScores(CategorySupplyChain, domain.SectorManufacturing)
	assert.NotEqual(t, -99.0, second["Shipping Costs"])
}

func TestAdjustedScores_SupplyChainLeansOnPhysicalSectors(t *testing.T) {
	m := NewDefaultModel()

	manufacturing := m.AdjustedScores(CategorySupplyChain, domain.SectorManufacturing)
	financial := m.AdjustedScores(CategorySupplyChain, domain.SectorFinancialServices)

	// Same factor, sector multipliers 1.2 vs 0.8.
	assert.Greater(t, manufacturing["Port Congestion"], financial["Port Congestion"])
}

func TestClamp01(t *testing.T) {
	assert.Equal(t, 1.0, clamp01(1.5))
	assert.Equal(t, 0.0, clamp01(-0.2))
	assert.Equal(t, 0.42, clamp01(0.42))
}
