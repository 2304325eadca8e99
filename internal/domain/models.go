// Package domain defines the core types shared across modules.
//
// Keeping these in a leaf package breaks import cycles between the market
// data clients and the analysis modules: both sides depend on domain, never
// on each other.
package domain

import "time"

// PriceBar is a single daily observation of a traded security.
// Only the adjusted close participates in return calculations; the other
// fields are carried for the technical indicators that need them.
type PriceBar struct {
	Date   time.Time `json:"date"`
	Open   float64   `json:"open"`
	High   float64   `json:"high"`
	Low    float64   `json:"low"`
	Close  float64   `json:"close"`
	Volume int64     `json:"volume"`
}

// PriceSeries is an ordered run of daily bars for one ticker, oldest first.
type PriceSeries struct {
	Ticker string     `json:"ticker"`
	Bars   []PriceBar `json:"bars"`
}

// Closes returns the close prices in bar order.
func (s PriceSeries) Closes() []float64 {
	closes := make([]float64, len(s.Bars))
	for i, bar := range s.Bars {
		closes[i] = bar.Close
	}
	return closes
}

// Len returns the number of bars in the series.
func (s PriceSeries) Len() int {
	return len(s.Bars)
}

// SearchResult is a single match from an upstream symbol search.
type SearchResult struct {
	Symbol    string `json:"symbol"`
	ShortName string `json:"short_name,omitempty"`
	LongName  string `json:"long_name,omitempty"`
	Exchange  string `json:"exchange,omitempty"`
	QuoteType string `json:"quote_type,omitempty"`
}

// SectorTag identifies one of the broad sector classifications used by the
// risk model. Other is the fallback when no keyword rule matches.
type SectorTag string

const (
	SectorFinancialServices SectorTag = "Financial Services"
	SectorTechnology        SectorTag = "Technology"
	SectorHealthcare        SectorTag = "Healthcare"
	SectorEnergy            SectorTag = "Energy"
	SectorManufacturing     SectorTag = "Manufacturing"
	SectorRetail            SectorTag = "Retail"
	SectorRealEstate        SectorTag = "Real Estate"
	SectorConsumerGoods     SectorTag = "Consumer Goods"
	SectorMining            SectorTag = "Mining"
	SectorTelecom           SectorTag = "Telecommunications"
	SectorTransportation    SectorTag = "Transportation"
	SectorOther             SectorTag = "Other"
)
