package riskfactors

import "github.com/aristath/marketlens/internal/domain"

// Category names one of the three risk dimensions.
type Category string

const (
	CategoryGeopolitical Category = "geopolitical"
	CategorySupplyChain  Category = "supply_chain"
	CategoryCapitalFlow  Category = "capital_flow"
)

// Categories lists all risk categories in scoring order.
var Categories = []Category{CategoryGeopolitical, CategorySupplyChain, CategoryCapitalFlow}

// FactorTable maps factor names to base scores in [0,1].
type FactorTable map[string]float64

// SectorAdjustments maps sector tags to multiplicative adjustments for one
// category. Sectors absent from the map use a multiplier of 1.0.
type SectorAdjustments map[domain.SectorTag]float64

// Base factor scores are heuristic constants for the UK market environment:
// 0 is benign, 1 is maximally adverse. They are fixed at process start and
// only vary per company through the sector multipliers.

func defaultGeopoliticalFactors() FactorTable {
	return FactorTable{
		"Brexit Impact":                 0.8,
		"EU Relations":                  0.7,
		"US-UK Relations":               0.6,
		"Global Trade Tensions":         0.9,
		"Energy Security":               0.8,
		"Financial Services Regulation": 0.7,
	}
}

func defaultSupplyChainFactors() FactorTable {
	return FactorTable{
		"Port Congestion":               0.6,
		"Shipping Costs":                0.8,
		"Raw Material Availability":     0.7,
		"Manufacturing Capacity":        0.5,
		"Transportation Infrastructure": 0.6,
	}
}

func defaultCapitalFlowFactors() FactorTable {
	return FactorTable{
		"FDI Inflows":                0.7,
		"Portfolio Investment":       0.8,
		"Currency Strength":          0.6,
		"Interest Rate Differential": 0.7,
		"Political Stability":        0.6,
	}
}

func defaultGeopoliticalAdjustments() SectorAdjustments {
	return SectorAdjustments{
		domain.SectorFinancialServices: 1.2, // Brexit hit financial passporting hardest
		domain.SectorTechnology:        0.8,
		domain.SectorHealthcare:        0.9,
		domain.SectorEnergy:            1.1,
		domain.SectorManufacturing:     1.0,
		domain.SectorRetail:            0.9,
		domain.SectorRealEstate:        0.8,
		domain.SectorConsumerGoods:     0.9,
		domain.SectorMining:            1.1,
		domain.SectorTelecom:           0.9,
		domain.SectorTransportation:    1.0,
	}
}

func defaultSupplyChainAdjustments() SectorAdjustments {
	return SectorAdjustments{
		domain.SectorManufacturing:     1.2, // physical-goods sectors carry the logistics exposure
		domain.SectorRetail:            1.1,
		domain.SectorEnergy:            1.1,
		domain.SectorMining:            1.2,
		domain.SectorTransportation:    1.1,
		domain.SectorTechnology:        0.8,
		domain.SectorFinancialServices: 0.8,
		domain.SectorHealthcare:        1.0,
		domain.SectorRealEstate:        0.9,
		domain.SectorConsumerGoods:     1.0,
		domain.SectorTelecom:           0.9,
	}
}

func defaultCapitalFlowAdjustments() SectorAdjustments {
	return SectorAdjustments{
		domain.SectorFinancialServices: 1.1,
		domain.SectorTechnology:        0.9,
		domain.SectorHealthcare:        0.8,
		domain.SectorEnergy:            1.0,
		domain.SectorManufacturing:     1.0,
		domain.SectorRetail:            0.9,
		domain.SectorRealEstate:        1.2, // most rate- and foreign-investment-sensitive
		domain.SectorConsumerGoods:     0.9,
		domain.SectorMining:            1.1,
		domain.SectorTelecom:           1.0,
		domain.SectorTransportation:    1.0,
	}
}
