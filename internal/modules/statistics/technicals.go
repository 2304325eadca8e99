package statistics

import (
	"github.com/aristath/marketlens/internal/domain"
	"github.com/markcheno/go-talib"
)

const (
	rsiPeriod      = 14
	smaPeriod      = 200
	highWindow     = TradingDaysPerYear // 52-week high over daily bars
	rsiMinimumBars = rsiPeriod + 1
)

// ComputeTechnicals derives supplementary display indicators from a daily
// series. Each field is populated only when the series is long enough for
// that indicator; the whole result is nil when not even RSI can be
// computed. These values never feed the risk score.
func ComputeTechnicals(bars []domain.PriceBar) *Technicals {
	if len(bars) < rsiMinimumBars {
		return nil
	}

	closes := make([]float64, len(bars))
	for i, bar := range bars {
		closes[i] = bar.Close
	}

	tech := &Technicals{}

	rsi := talib.Rsi(closes, rsiPeriod)
	if len(rsi) > 0 {
		last := rsi[len(rsi)-1]
		tech.RSI14 = &last
	}

	if len(closes) >= smaPeriod {
		sma := talib.Sma(closes, smaPeriod)
		if len(sma) > 0 {
			last := sma[len(sma)-1]
			tech.SMA200 = &last
		}
	}

	if pct, ok := below52wHighPct(closes); ok {
		tech.Below52wHighPct = &pct
	}

	return tech
}

// below52wHighPct measures how far the last close sits below the highest
// close of the trailing 52-week window, as a fraction in [0,1].
func below52wHighPct(closes []float64) (float64, bool) {
	window := closes
	if len(closes) > highWindow {
		window = closes[len(closes)-highWindow:]
	}

	high := window[0]
	for _, c := range window[1:] {
		if c > high {
			high = c
		}
	}
	if high <= 0 {
		return 0, false
	}

	last := closes[len(closes)-1]
	return 1 - last/high, true
}
