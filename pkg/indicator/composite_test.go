package indicator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c9s/streamta/pkg/types"
)

func TestComposite_Join(t *testing.T) {
	left := Identity("left")
	right := Identity("right")
	diff := Minus(left, right)
	rec := record(diff)

	left.Update(sample(0, 5))
	assert.Empty(t, rec.values)
	assert.False(t, diff.IsReady())

	right.Update(sample(0, 2))
	require.Equal(t, []float64{3}, rec.values)
	assert.Equal(t, sample(0, 3), diff.Current())
	assert.True(t, diff.IsReady())

	// only the left side moves: nothing new is combined
	left.Update(sample(1, 6))
	assert.Equal(t, []float64{3}, rec.values)
	assert.Equal(t, 3.0, diff.Current().Value)
	assert.Equal(t, 1, diff.Samples())

	right.Update(sample(1, 1))
	assert.Equal(t, []float64{3, 5}, rec.values)
}

func TestComposite_OneSidedUpdatesProduceNothing(t *testing.T) {
	left := Identity("left")
	right := Identity("right")
	sum := Plus(left, right)
	rec := record(sum)

	for i := 0; i < 10; i++ {
		left.Update(sample(i, float64(i)))
	}

	assert.Empty(t, rec.values)
	assert.Equal(t, 0, sum.Samples())
}

func TestComposite_SyntheticTimestamp(t *testing.T) {
	left := Identity("left")
	right := Identity("right")
	sum := Plus(left, right)
	rec := record(sum)

	right.Update(sample(1, 1))
	left.Update(sample(4, 1))
	right.Update(sample(2, 1))
	left.Update(sample(5, 1))

	require.Len(t, rec.samples, 2)
	assert.Equal(t, ts(4), rec.samples[0].Time)
	assert.Equal(t, ts(5), rec.samples[1].Time)
}

func TestComposite_ConstantSideAlwaysPresent(t *testing.T) {
	left := Identity("left")
	shifted := PlusConst(left, 10)
	rec := record(shifted)

	assert.Equal(t, KindStream, shifted.Kind())

	feed(left, 1, 2, 3)
	assert.Equal(t, []float64{11, 12, 13}, rec.values)
	assert.True(t, shifted.IsReady())
}

func TestComposite_BothConstant(t *testing.T) {
	c := Plus(Constant(2), Constant(3))

	assert.Equal(t, KindConstant, c.Kind())
	assert.True(t, c.IsReady())
	assert.Equal(t, 5.0, c.Current().Value)
	assert.Equal(t, 0, c.Samples())

	c.Update(sample(1, 0))
	assert.Equal(t, sample(1, 5), c.Current())
	assert.Equal(t, 1, c.Samples())

	c.Reset()
	assert.Equal(t, 0, c.Samples())
	assert.Equal(t, 5.0, c.Current().Value)

	// a constant composite is an always-present side for downstream joins
	left := Identity("left")
	scaled := Times(left, c)
	rec := record(scaled)
	feed(left, 1, 2)
	assert.Equal(t, []float64{5, 10}, rec.values)
}

func TestComposite_SharedUpstream(t *testing.T) {
	price := Identity("price")
	double := Plus(price, price)
	rec := record(double)

	feed(price, 1, 2, 3)
	assert.Equal(t, []float64{2, 4, 6}, rec.values)
	assert.Equal(t, 3, double.Samples())
}

func TestComposite_UpstreamRejectHoldsJoin(t *testing.T) {
	left := Identity("left")
	guarded := FunctionalResult("guarded", func(in types.Sample) types.Result {
		if in.Value < 0 {
			return types.InvalidInput()
		}
		return types.Success(in.Value)
	}, nil, nil)

	sum := Plus(left, guarded)
	rec := record(sum)

	left.Update(sample(0, 1))
	guarded.Update(sample(0, 1))
	require.Equal(t, []float64{2}, rec.values)

	left.Update(sample(1, 5))
	guarded.Update(sample(1, -1))
	assert.Equal(t, []float64{2}, rec.values)
	assert.Equal(t, 2.0, sum.Current().Value)
}

func TestComposite_Reset(t *testing.T) {
	left := Identity("left")
	right := Identity("right")
	product := Times(left, right)

	left.Update(sample(0, 2))
	right.Update(sample(0, 3))
	left.Update(sample(1, 4))
	require.Equal(t, 6.0, product.Current().Value)

	product.Reset()
	for _, s := range []Stream{left, right, product} {
		assert.Equal(t, 0, s.Samples(), s.Name())
		assert.False(t, s.IsReady(), s.Name())
	}

	// the pending left update was dropped by the reset
	rec := record(product)
	right.Update(sample(0, 7))
	assert.Empty(t, rec.values)
	left.Update(sample(0, 2))
	assert.Equal(t, []float64{14}, rec.values)
}

func TestComposite_NilArguments(t *testing.T) {
	assert.Panics(t, func() {
		Composite("x", Identity("a"), nil, func(l, r Stream) types.Result { return types.Success(0) })
	})
	assert.Panics(t, func() {
		Composite("x", Identity("a"), Identity("b"), nil)
	})
}
