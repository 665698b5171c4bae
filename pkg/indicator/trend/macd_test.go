package trend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c9s/streamta/pkg/indicator"
)

func TestMACD(t *testing.T) {
	source := indicator.Identity("close")
	macd, err := MACD(source, 3, 6, 2)
	require.NoError(t, err)
	assert.Equal(t, "MACD(3,6,2)", macd.Name())
	assert.Equal(t, "MACD(3,6,2)", macd.CompositeStream.Name())
	assert.Equal(t, "DIFF(MACD(3,6,2),MACD_SIGNAL(2))", macd.Histogram.Name())

	var values []float64
	for i := 0; i < 30; i++ {
		values = append(values, 100+float64(i))
	}
	pushAll(source, values...)

	require.True(t, macd.IsReady())

	fast := macd.FastEMA.Current().Value
	slow := macd.SlowEMA.Current().Value
	assert.InDelta(t, fast-slow, macd.Current().Value, 1e-9)
	assert.InDelta(t, macd.Current().Value-macd.Signal.Current().Value, macd.Histogram.Current().Value, 1e-9)

	// a linear trend converges to a constant spread: (6-3)/2 per step
	assert.InDelta(t, 1.5, macd.Current().Value, 1e-3)
	assert.InDelta(t, 0.0, macd.Histogram.Current().Value, 1e-3)
}

func TestMACD_Reset(t *testing.T) {
	source := indicator.Identity("close")
	macd, err := MACD(source, 2, 4, 2)
	require.NoError(t, err)

	pushAll(source, 1, 2, 3, 4, 5, 6, 7, 8)
	require.True(t, macd.IsReady())

	macd.Reset()
	for _, s := range []indicator.Stream{source, macd.FastEMA, macd.SlowEMA, macd.SignalEMA, macd.Signal, macd.Histogram, macd} {
		assert.Equal(t, 0, s.Samples(), s.Name())
		assert.False(t, s.IsReady(), s.Name())
	}
}

func TestMACD_InvalidWindows(t *testing.T) {
	_, err := MACD(indicator.Identity("close"), 26, 12, 9)
	assert.ErrorIs(t, err, indicator.ErrInvalidParameter)

	_, err = MACD(indicator.Identity("close"), 0, 12, 9)
	assert.ErrorIs(t, err, indicator.ErrInvalidParameter)
}
