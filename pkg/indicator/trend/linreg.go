package trend

import (
	"fmt"

	"gonum.org/v1/gonum/stat"

	"github.com/c9s/streamta/pkg/indicator"
	"github.com/c9s/streamta/pkg/types"
)

// LinRegSlopeStream is the least squares slope of the source over the
// trailing window, in value per sample.
type LinRegSlopeStream struct {
	*indicator.WindowStream

	xs, ys []float64
}

func LinRegSlope(source indicator.Stream, window int) (*LinRegSlopeStream, error) {
	s := &LinRegSlopeStream{
		xs: make([]float64, 0, window),
		ys: make([]float64, 0, window),
	}

	w, err := indicator.NewWindowStream(fmt.Sprintf("LINREG_SLOPE(%d)", window), window, s.calculate)
	if err != nil {
		return nil, err
	}

	s.WindowStream = w
	if source != nil {
		indicator.Bind(source, s)
	}

	return s, nil
}

func (s *LinRegSlopeStream) calculate(w *types.Window[types.Sample], _ types.Sample) types.Result {
	n := w.Count()
	if n < 2 {
		// the slope of a single point is undefined
		return types.MathError()
	}

	s.xs = s.xs[:0]
	s.ys = s.ys[:0]
	for i := n - 1; i >= 0; i-- {
		s.xs = append(s.xs, float64(n-1-i))
		s.ys = append(s.ys, w.At(i).Value)
	}

	_, beta := stat.LinearRegression(s.xs, s.ys, nil, false)
	return types.Success(beta)
}
