package statistics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeTechnicals_ShortSeries(t *testing.T) {
	assert.Nil(t, ComputeTechnicals(nil))
	assert.Nil(t, ComputeTechnicals(barsFromCloses(100, 101, 102)))
}

func TestComputeTechnicals_RSIOnly(t *testing.T) {
	// 20 bars: enough for RSI(14), not for SMA(200).
	closes := make([]float64, 20)
	for i := range closes {
		closes[i] = 100 + float64(i)
	}

	tech := ComputeTechnicals(barsFromCloses(closes...))
	require.NotNil(t, tech)
	require.NotNil(t, tech.RSI14)
	// Monotonically rising prices push RSI to the top of its range.
	assert.Greater(t, *tech.RSI14, 70.0)
	assert.Nil(t, tech.SMA200)
}

func TestComputeTechnicals_FullSeries(t *testing.T) {
	closes := make([]float64, 260)
	for i := range closes {
		closes[i] = 100 + float64(i)*0.1
	}

	tech := ComputeTechnicals(barsFromCloses(closes...))
	require.NotNil(t, tech)
	require.NotNil(t, tech.RSI14)
	require.NotNil(t, tech.SMA200)
	require.NotNil(t, tech.Below52wHighPct)

	// Rising series closes at its 52-week high.
	assert.InDelta(t, 0.0, *tech.Below52wHighPct, 1e-12)
	assert.Less(t, *tech.SMA200, closes[len(closes)-1])
}

func TestComputeTechnicals_BelowHigh(t *testing.T) {
	// Peak at 200 then fade to 150: 25% below the high.
	closes := make([]float64, 30)
	for i := range closes {
		closes[i] = 100
	}
	closes[15] = 200
	closes[len(closes)-1] = 150

	tech := ComputeTechnicals(barsFromCloses(closes...))
	require.NotNil(t, tech)
	require.NotNil(t, tech.Below52wHighPct)
	assert.InDelta(t, 0.25, *tech.Below52wHighPct, 1e-12)
}
