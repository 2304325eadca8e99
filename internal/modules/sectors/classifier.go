// Package sectors classifies companies into broad sector tags by keyword.
// The classification is deliberately crude (name-based), but it is total:
// every input gets a tag, with Other as the fallback.
package sectors

import (
	"strings"

	"github.com/aristath/marketlens/internal/domain"
)

// Rule pairs a sector tag with the keywords that select it.
type Rule struct {
	Tag      domain.SectorTag
	Keywords []string
}

// Rules is an ordered rule list; the first rule with a matching keyword
// wins, so broader keywords should come later.
type Rules []Rule

// DefaultRules returns the built-in keyword rules. Keywords mix generic
// terms ("bank", "pharma") with well-known company names so the big FTSE
// constituents classify correctly without metadata.
func DefaultRules() Rules {
	return Rules{
		{domain.SectorFinancialServices, []string{"bank", "hsbc", "barclays", "lloyds", "rbs", "natwest", "finance", "insurance"}},
		{domain.SectorTechnology, []string{"tech", "software", "digital", "ai", "cyber", "fintech", "sage"}},
		{domain.SectorHealthcare, []string{"pharma", "health", "medical", "biotech", "glaxo", "astra", "gsk", "azn"}},
		{domain.SectorEnergy, []string{"oil", "gas", "energy", "bp", "shell", "centrica", "national grid"}},
		{domain.SectorManufacturing, []string{"manufacturing", "industrial", "engineering", "rolls", "bae", "weir"}},
		{domain.SectorRetail, []string{"retail", "shop", "store", "tesco", "sainsbury", "morrisons", "asos", "boohoo"}},
		{domain.SectorRealEstate, []string{"property", "real estate", "land", "berkeley", "barratt", "persimmon"}},
		{domain.SectorConsumerGoods, []string{"consumer", "unilever", "diageo", "british american tobacco", "imperial"}},
		{domain.SectorMining, []string{"mining", "rio tinto", "bhp", "anglo american", "glencore"}},
		{domain.SectorTelecom, []string{"telecom", "vodafone", "bt", "british telecom"}},
		{domain.SectorTransportation, []string{"airline", "easyjet", "british airways", "transport"}},
	}
}

// Classifier assigns sector tags to company names.
type Classifier struct {
	rules Rules
}

// NewClassifier creates a classifier with the given rules.
func NewClassifier(rules Rules) *Classifier {
	return &Classifier{rules: rules}
}

// Classify returns the sector tag for a company name. Case-insensitive,
// never fails; unmatched names get SectorOther.
func (c *Classifier) Classify(companyName string) domain.SectorTag {
	name := strings.ToLower(companyName)

	for _, rule := range c.rules {
		for _, keyword := range rule.Keywords {
			if strings.Contains(name, keyword) {
				return rule.Tag
			}
		}
	}

	return domain.SectorOther
}
