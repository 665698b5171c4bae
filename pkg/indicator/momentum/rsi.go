package momentum

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/c9s/streamta/pkg/indicator"
	"github.com/c9s/streamta/pkg/types"
)

// RSIStream is the relative strength index with Wilder smoothing.
//
//	RS  = average gain / average loss
//	RSI = 100 - 100 / (1 + RS)
type RSIStream struct {
	// embedded structs
	*indicator.StreamBase

	// config fields
	window int

	// private states
	previous    float64
	hasPrevious bool

	AverageGain, AverageLoss *indicator.EMAStream
}

func RSI(source indicator.Stream, window int) (*RSIStream, error) {
	name := fmt.Sprintf("RSI(%d)", window)
	if window < 1 {
		return nil, errors.Wrapf(indicator.ErrInvalidParameter, "%s: window %d is less than 1", name, window)
	}

	gain, err := indicator.NewEMAWithSmoothing(name+"_GAIN", window, 1.0/float64(window))
	if err != nil {
		return nil, err
	}

	loss, err := indicator.NewEMAWithSmoothing(name+"_LOSS", window, 1.0/float64(window))
	if err != nil {
		return nil, err
	}

	s := &RSIStream{
		StreamBase:  indicator.NewStreamBase(name),
		window:      window,
		AverageGain: gain,
		AverageLoss: loss,
	}

	if source != nil {
		indicator.Bind(source, s)
	}

	return s, nil
}

func (s *RSIStream) Calculate(in types.Sample) types.Result {
	if s.hasPrevious {
		change := in.Value - s.previous
		s.AverageGain.Update(types.Sample{Time: in.Time, Value: max(change, 0)})
		s.AverageLoss.Update(types.Sample{Time: in.Time, Value: max(-change, 0)})
	}

	s.previous = in.Value
	s.hasPrevious = true

	avgGain := s.AverageGain.Current().Value
	avgLoss := s.AverageLoss.Current().Value
	if avgLoss == 0 {
		if avgGain == 0 {
			return types.Success(50)
		}
		return types.Success(100)
	}

	rs := avgGain / avgLoss
	return types.Success(100.0 - (100.0 / (1.0 + rs)))
}

func (s *RSIStream) Update(in types.Sample) bool {
	s.Process(in, s)
	return s.IsReady()
}

func (s *RSIStream) IsReady() bool {
	return s.AverageGain.IsReady()
}

func (s *RSIStream) Reset() {
	s.previous = 0
	s.hasPrevious = false
	s.AverageGain.Reset()
	s.AverageLoss.Reset()
	s.StreamBase.Reset()
}

var _ indicator.Stream = &RSIStream{}
