package indicator

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c9s/streamta/pkg/types"
)

func oldestFormula(w *types.Window[types.Sample], _ types.Sample) types.Result {
	return types.Success(w.Oldest().Value)
}

func TestWindowStream(t *testing.T) {
	s, err := NewWindowStream("oldest", 3, oldestFormula)
	require.NoError(t, err)
	assert.Equal(t, 3, s.Period())

	feed(s, 1, 2, 3, 4)

	w := s.Window()
	assert.True(t, s.IsReady())
	assert.Equal(t, []float64{4, 3, 2}, []float64{w.At(0).Value, w.At(1).Value, w.At(2).Value})
	assert.Equal(t, 1.0, w.MostRecentlyRemoved().Value)
	assert.Equal(t, ts(0), w.MostRecentlyRemoved().Time)
	assert.Equal(t, sample(3, 2), s.Current())

	s.Reset()
	assert.Equal(t, 0, w.Count())
	assert.Equal(t, 0, s.Samples())
	assert.False(t, s.IsReady())
}

func TestWindowStream_ReadyOverride(t *testing.T) {
	// a pattern that needs period bars of context but is ready after two
	s, err := NewWindowStream("context", 5, oldestFormula, WithReadyFunc(func(s *WindowStream) bool {
		return s.Samples() >= 2
	}))
	require.NoError(t, err)

	s.Update(sample(0, 1))
	assert.False(t, s.IsReady())
	assert.True(t, s.Update(sample(1, 2)))
	assert.False(t, s.Window().IsReady())
}

func TestWindowStream_InvalidParameters(t *testing.T) {
	_, err := NewWindowStream("w", 0, oldestFormula)
	assert.True(t, errors.Is(err, ErrInvalidParameter))

	_, err = NewWindowStream("w", 2, nil)
	assert.True(t, errors.Is(err, ErrInvalidParameter))
}

func TestFunctional(t *testing.T) {
	var resets int
	upstream := Identity("upstream")

	doubled := Functional("doubled",
		func(in types.Sample) float64 {
			return in.Value * 2
		},
		func(s *FunctionalStream) bool {
			return s.Samples() >= 2
		},
		func() {
			resets++
			upstream.Reset()
		})
	Bind(upstream, doubled)

	upstream.Update(sample(0, 1))
	assert.False(t, doubled.IsReady())
	upstream.Update(sample(1, 4))

	assert.True(t, doubled.IsReady())
	assert.Equal(t, sample(1, 8), doubled.Current())

	doubled.Reset()
	assert.Equal(t, 1, resets)
	assert.Equal(t, 0, doubled.Samples())
	assert.Equal(t, 0, upstream.Samples())
}

func TestFunctional_DefaultReady(t *testing.T) {
	f := Functional("f", func(in types.Sample) float64 { return in.Value }, nil, nil)
	assert.False(t, f.IsReady())
	assert.True(t, f.Update(sample(0, 1)))

	assert.NotPanics(t, f.Reset)

	assert.Panics(t, func() {
		Functional("nil", nil, nil, nil)
	})
}
