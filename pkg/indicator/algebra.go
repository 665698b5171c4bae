package indicator

import (
	"fmt"

	"github.com/c9s/streamta/pkg/types"
)

// Plus returns a composite of left + right.
func Plus(left, right Stream) *CompositeStream {
	return Composite(fmt.Sprintf("SUM(%s,%s)", left.Name(), right.Name()), left, right,
		func(l, r Stream) types.Result {
			return types.Success(l.Current().Value + r.Current().Value)
		})
}

// Minus returns a composite of left - right.
func Minus(left, right Stream) *CompositeStream {
	return Composite(fmt.Sprintf("DIFF(%s,%s)", left.Name(), right.Name()), left, right, Subtract)
}

// Subtract is the combiner of Minus, for composites that carry their own name.
func Subtract(l, r Stream) types.Result {
	return types.Success(l.Current().Value - r.Current().Value)
}

// Times returns a composite of left * right.
func Times(left, right Stream) *CompositeStream {
	return Composite(fmt.Sprintf("PRODUCT(%s,%s)", left.Name(), right.Name()), left, right,
		func(l, r Stream) types.Result {
			return types.Success(l.Current().Value * r.Current().Value)
		})
}

// Over returns a composite of left / right. A zero denominator yields a math
// error, so the composite keeps its last good value instead of emitting.
func Over(left, right Stream) *CompositeStream {
	return Composite(fmt.Sprintf("RATIO(%s,%s)", left.Name(), right.Name()), left, right, divide)
}

func divide(l, r Stream) types.Result {
	denominator := r.Current().Value
	if denominator == 0 {
		return types.MathError()
	}

	return types.Success(l.Current().Value / denominator)
}

func PlusConst(left Stream, v float64) *CompositeStream {
	return Plus(left, Constant(v))
}

func MinusConst(left Stream, v float64) *CompositeStream {
	return Minus(left, Constant(v))
}

func TimesConst(left Stream, v float64) *CompositeStream {
	return Times(left, Constant(v))
}

func OverConst(left Stream, v float64) *CompositeStream {
	return Over(left, Constant(v))
}

// Of feeds every value produced by inner into outer and returns a stream
// mirroring outer. Resetting the returned stream resets both.
func Of(outer, inner Stream) *FunctionalStream {
	node := Functional(outer.Name(),
		func(_ types.Sample) float64 {
			return outer.Current().Value
		},
		func(_ *FunctionalStream) bool {
			return outer.IsReady()
		},
		func() {
			inner.Reset()
			outer.Reset()
		})

	Bind(inner, outer)
	outer.OnUpdate(func(s types.Sample) {
		node.Update(s)
	})

	return node
}

// WeightedBy returns the weighted average of value by weight over the period:
// sum(value * weight) / sum(weight).
func WeightedBy(value, weight Stream, period int) (*CompositeStream, error) {
	numerator, err := SumOf(Times(value, weight), period)
	if err != nil {
		return nil, err
	}

	denominator, err := SumOf(weight, period)
	if err != nil {
		return nil, err
	}

	return Over(numerator, denominator), nil
}

// SMAOf derives a simple moving average of source.
func SMAOf(source Stream, period int) (*FunctionalStream, error) {
	sma, err := NewSMA(fmt.Sprintf("SMA(%s,%d)", source.Name(), period), period)
	if err != nil {
		return nil, err
	}
	return Of(sma, source), nil
}

// EMAOf derives an exponential moving average of source.
func EMAOf(source Stream, period int) (*FunctionalStream, error) {
	ema, err := NewEMA(fmt.Sprintf("EMA(%s,%d)", source.Name(), period), period)
	if err != nil {
		return nil, err
	}
	return Of(ema, source), nil
}

// SumOf derives the rolling sum of source.
func SumOf(source Stream, period int) (*FunctionalStream, error) {
	sum, err := NewSum(fmt.Sprintf("SUM(%s,%d)", source.Name(), period), period)
	if err != nil {
		return nil, err
	}
	return Of(sum, source), nil
}

// MaximumOf derives the rolling maximum of source.
func MaximumOf(source Stream, period int) (*FunctionalStream, error) {
	m, err := NewMaximum(fmt.Sprintf("MAX(%s,%d)", source.Name(), period), period)
	if err != nil {
		return nil, err
	}
	return Of(m, source), nil
}

// MinimumOf derives the rolling minimum of source.
func MinimumOf(source Stream, period int) (*FunctionalStream, error) {
	m, err := NewMinimum(fmt.Sprintf("MIN(%s,%d)", source.Name(), period), period)
	if err != nil {
		return nil, err
	}
	return Of(m, source), nil
}

// DelayOf derives source delayed by period samples.
func DelayOf(source Stream, period int) (*FunctionalStream, error) {
	d, err := NewDelay(fmt.Sprintf("DELAY(%s,%d)", source.Name(), period), period)
	if err != nil {
		return nil, err
	}
	return Of(d, source), nil
}
