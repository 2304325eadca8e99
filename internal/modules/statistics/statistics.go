package statistics

import (
	"errors"
	"math"

	"github.com/aristath/marketlens/internal/domain"
	"gonum.org/v1/gonum/stat"
)

// ErrInsufficientData is returned when a series has fewer than 2 bars,
// so not even a single daily return can be computed.
var ErrInsufficientData = errors.New("insufficient price data: need at least 2 bars")

// Returns computes the simple daily return series from consecutive closes:
// r_t = close_t/close_{t-1} - 1. Length is len(bars)-1; empty for fewer
// than 2 bars.
func Returns(bars []domain.PriceBar) []float64 {
	if len(bars) < 2 {
		return nil
	}

	returns := make([]float64, 0, len(bars)-1)
	for i := 1; i < len(bars); i++ {
		prev := bars[i-1].Close
		if prev == 0 {
			// A zero close is bad upstream data; treat the step as flat
			// rather than emitting +/-Inf.
			returns = append(returns, 0)
			continue
		}
		returns = append(returns, bars[i].Close/prev-1)
	}
	return returns
}

// Compute derives the full metrics summary for a daily price series.
// Returns ErrInsufficientData for fewer than 2 bars.
func Compute(bars []domain.PriceBar) (Summary, error) {
	if len(bars) < 2 {
		return Summary{}, ErrInsufficientData
	}

	returns := Returns(bars)

	mean := stat.Mean(returns, nil)
	// Sample standard deviation (n-1 denominator). A single return yields
	// NaN from gonum, which we define as 0 volatility.
	stdev := stat.StdDev(returns, nil)
	if math.IsNaN(stdev) {
		stdev = 0
	}

	summary := Summary{
		MeanDaily:            mean,
		StdevDaily:           stdev,
		AnnualizedReturn:     mean * TradingDaysPerYear,
		AnnualizedVolatility: stdev * math.Sqrt(TradingDaysPerYear),
		TotalReturn:          totalReturn(returns),
		MaxDrawdown:          maxDrawdown(bars),
		LastClose:            bars[len(bars)-1].Close,
		Bars:                 len(bars),
	}

	// Sharpe is defined as 0 for a flat series instead of dividing by zero.
	if stdev > 0 {
		summary.SharpeRatio = (mean / stdev) * math.Sqrt(TradingDaysPerYear)
	}

	summary.MinDaily, summary.MaxDaily = minMax(returns)

	return summary, nil
}

// totalReturn compounds the daily returns: prod(1+r) - 1.
func totalReturn(returns []float64) float64 {
	product := 1.0
	for _, r := range returns {
		product *= 1 + r
	}
	return product - 1
}

// maxDrawdown is the worst peak-to-trough decline, measured against the
// running maximum close. Always <= 0; 0 only when prices never fall below
// a prior peak.
func maxDrawdown(bars []domain.PriceBar) float64 {
	worst := 0.0
	peak := bars[0].Close
	for _, bar := range bars {
		if bar.Close > peak {
			peak = bar.Close
		}
		if peak == 0 {
			continue
		}
		drawdown := bar.Close/peak - 1
		if drawdown < worst {
			worst = drawdown
		}
	}
	return worst
}

func minMax(values []float64) (float64, float64) {
	if len(values) == 0 {
		return 0, 0
	}
	min, max := values[0], values[0]
	for _, v := range values[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	return min, max
}
