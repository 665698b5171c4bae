package trend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c9s/streamta/pkg/indicator"
)

func TestAroonUpIndicator(t *testing.T) {
	t.Run("with < window periods", func(t *testing.T) {
		source := indicator.Identity("high")
		aroonUp, err := AroonUpIndicator(source, 10)
		require.NoError(t, err)

		pushAll(source, 1)
		assert.Equal(t, 100.0, aroonUp.Current().Value)
		assert.False(t, aroonUp.IsReady())
	})

	t.Run("with > window periods", func(t *testing.T) {
		source := indicator.Identity("high")
		aroonUp, err := AroonUpIndicator(source, 4)
		require.NoError(t, err)
		values := record(aroonUp)

		pushAll(source, 1, 2, 3, 4, 3, 2, 1)
		require.Len(t, *values, 7)
		assert.Equal(t, 100.0, (*values)[3])
		assert.Equal(t, 75.0, (*values)[4])
		assert.Equal(t, 50.0, (*values)[5])
		assert.Equal(t, 25.0, (*values)[6])
		assert.True(t, aroonUp.IsReady())
	})
}

func TestAroonDownIndicator(t *testing.T) {
	source := indicator.Identity("low")
	aroonDown, err := AroonDownIndicator(source, 4)
	require.NoError(t, err)
	values := record(aroonDown)

	pushAll(source, 5, 4, 3, 2, 3, 4, 5)
	require.Len(t, *values, 7)
	assert.Equal(t, 100.0, (*values)[3])
	assert.Equal(t, 75.0, (*values)[4])
	assert.Equal(t, 50.0, (*values)[5])
}

func TestAroon_Oscillator(t *testing.T) {
	high := indicator.Identity("high")
	low := indicator.Identity("low")
	aroon, err := Aroon(high, low, 4)
	require.NoError(t, err)

	highs := []float64{1, 2, 3, 4, 5}
	lows := []float64{0.5, 1.5, 2.5, 3.5, 4.5}
	for i := range highs {
		pushAt(high, i, highs[i])
		pushAt(low, i, lows[i])
	}

	assert.True(t, aroon.IsReady())
	// highs make a new high every bar, the low is 4 bars old
	assert.Equal(t, 100.0, aroon.Up.Current().Value)
	assert.Equal(t, 0.0, aroon.Down.Current().Value)
	assert.Equal(t, 100.0, aroon.Current().Value)

	aroon.Reset()
	assert.Equal(t, 0, aroon.Up.Samples())
	assert.Equal(t, 0, aroon.Down.Samples())
	assert.False(t, aroon.IsReady())

	// bound sources are not owned by the oscillator
	assert.Equal(t, 5, high.Samples())
}

func TestAroon_InvalidWindow(t *testing.T) {
	_, err := Aroon(indicator.Identity("high"), indicator.Identity("low"), -1)
	assert.ErrorIs(t, err, indicator.ErrInvalidParameter)

	_, err = AroonUpIndicator(indicator.Identity("high"), 0)
	assert.ErrorIs(t, err, indicator.ErrInvalidParameter)
}
