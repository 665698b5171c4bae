package momentum

import (
	"fmt"
	"math"

	"github.com/pkg/errors"

	"github.com/c9s/streamta/pkg/indicator"
	"github.com/c9s/streamta/pkg/types"
)

// lookback builds a window stream holding the current input plus the input
// received window samples ago, and binds it to the source when given.
func lookback(name string, source indicator.Stream, window int, formula func(current, past float64) types.Result) (*indicator.WindowStream, error) {
	if window < 1 {
		return nil, errors.Wrapf(indicator.ErrInvalidParameter, "%s: window %d is less than 1", name, window)
	}

	s, err := indicator.NewWindowStream(name, window+1, func(w *types.Window[types.Sample], in types.Sample) types.Result {
		return formula(in.Value, w.Oldest().Value)
	})
	if err != nil {
		return nil, err
	}

	if source != nil {
		indicator.Bind(source, s)
	}

	return s, nil
}

// Momentum is the difference between the current value and the value window samples ago.
func Momentum(source indicator.Stream, window int) (*indicator.WindowStream, error) {
	return lookback(fmt.Sprintf("MOM(%d)", window), source, window, func(current, past float64) types.Result {
		return types.Success(current - past)
	})
}

// RateOfChange is (current - past) / past. A zero past value is a math error.
func RateOfChange(source indicator.Stream, window int) (*indicator.WindowStream, error) {
	return lookback(fmt.Sprintf("ROC(%d)", window), source, window, func(current, past float64) types.Result {
		if past == 0 {
			return types.MathError()
		}
		return types.Success((current - past) / past)
	})
}

// LogReturn is ln(current / past). Non-positive prices are math errors.
func LogReturn(source indicator.Stream, window int) (*indicator.WindowStream, error) {
	return lookback(fmt.Sprintf("LOGR(%d)", window), source, window, func(current, past float64) types.Result {
		if current <= 0 || past <= 0 {
			return types.MathError()
		}
		return types.Success(math.Log(current / past))
	})
}
