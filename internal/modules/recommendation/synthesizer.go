// Package recommendation turns adjusted risk scores into an investment
// recommendation: a weighted overall score, a discrete label, a confidence
// level, and qualitative insight flags.
package recommendation

import "github.com/aristath/marketlens/internal/modules/statistics"

// Weighting of the three risk categories in the overall score.
// Geopolitical risk is weighted highest for the UK market focus.
const (
	weightGeopolitical = 0.4
	weightSupplyChain  = 0.3
	weightCapitalFlow  = 0.3
)

// insightThreshold is the per-category average above which an insight flag
// is emitted.
const insightThreshold = 0.7

// Label is the discrete recommendation bucket.
type Label string

const (
	LabelStrongBuy Label = "Strong Buy"
	LabelBuy       Label = "Buy"
	LabelHold      Label = "Hold"
	LabelSell      Label = "Sell"
)

// Confidence expresses how decisive the score is. The extremes of the
// score range get High, the middle bands Medium.
type Confidence string

const (
	ConfidenceHigh   Confidence = "High"
	ConfidenceMedium Confidence = "Medium"
)

// RiskBreakdown carries the per-category averages behind the overall score.
type RiskBreakdown struct {
	Geopolitical float64 `json:"geopolitical"`
	SupplyChain  float64 `json:"supply_chain"`
	CapitalFlow  float64 `json:"capital_flow"`
}

// Recommendation is the synthesized output for one company.
type Recommendation struct {
	OverallScore  float64       `json:"overall_risk_score"`
	Label         Label         `json:"recommendation"`
	Confidence    Confidence    `json:"confidence"`
	Insights      []string      `json:"key_insights"`
	RiskBreakdown RiskBreakdown `json:"risk_breakdown"`
}

// Synthesize combines the three adjusted score mappings into a
// recommendation. The statistics summary is carried for display by the
// caller and does not influence the score. Callers must not pass empty
// mappings; the orchestrator rejects those cases before reaching here.
func Synthesize(geo, supply, capital map[string]float64, _ statistics.Summary) Recommendation {
	avgGeo := mean(geo)
	avgSupply := mean(supply)
	avgCapital := mean(capital)

	overall := avgGeo*weightGeopolitical + avgSupply*weightSupplyChain + avgCapital*weightCapitalFlow

	label, confidence := classify(overall)

	// Fixed flag order, at most one flag per category.
	insights := []string{}
	if avgGeo > insightThreshold {
		insights = append(insights, "High geopolitical risk exposure")
	}
	if avgSupply > insightThreshold {
		insights = append(insights, "Supply chain vulnerabilities identified")
	}
	if avgCapital > insightThreshold {
		insights = append(insights, "Sensitive to capital flow changes")
	}

	return Recommendation{
		OverallScore: overall,
		Label:        label,
		Confidence:   confidence,
		Insights:     insights,
		RiskBreakdown: RiskBreakdown{
			Geopolitical: avgGeo,
			SupplyChain:  avgSupply,
			CapitalFlow:  avgCapital,
		},
	}
}

// classify maps the overall risk score to a label and confidence.
// Lower risk reads as a stronger buy.
func classify(overall float64) (Label, Confidence) {
	switch {
	case overall < 0.4:
		return LabelStrongBuy, ConfidenceHigh
	case overall < 0.6:
		return LabelBuy, ConfidenceMedium
	case overall < 0.8:
		return LabelHold, ConfidenceMedium
	default:
		return LabelSell, ConfidenceHigh
	}
}

func mean(scores map[string]float64) float64 {
	if len(scores) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range scores {
		sum += v
	}
	return sum / float64(len(scores))
}
