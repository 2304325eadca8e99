// Package statistics computes return and risk metrics from daily price
// series. All functions are pure: same bars in, same numbers out.
package statistics

// TradingDaysPerYear is the annualization constant for daily returns.
const TradingDaysPerYear = 252

// Summary holds the return and risk metrics for one price series.
// All values are fractions, not percentages; the presentation layer scales.
type Summary struct {
	MeanDaily            float64 `json:"mean_daily"`
	StdevDaily           float64 `json:"stdev_daily"`
	AnnualizedReturn     float64 `json:"annualized_return"`
	AnnualizedVolatility float64 `json:"annualized_volatility"`
	SharpeRatio          float64 `json:"sharpe_ratio"`
	MinDaily             float64 `json:"min_daily"`
	MaxDaily             float64 `json:"max_daily"`
	TotalReturn          float64 `json:"total_return"`
	MaxDrawdown          float64 `json:"max_drawdown"`
	LastClose            float64 `json:"last_close"`
	Bars                 int     `json:"bars"`
}

// Technicals holds supplementary indicator values for display.
// Fields are pointers because each indicator has its own minimum series
// length; nil means the series was too short for that indicator.
type Technicals struct {
	RSI14           *float64 `json:"rsi_14,omitempty"`
	SMA200          *float64 `json:"sma_200,omitempty"`
	Below52wHighPct *float64 `json:"below_52w_high_pct,omitempty"`
}
