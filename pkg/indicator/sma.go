package indicator

import (
	"fmt"

	"github.com/c9s/streamta/pkg/types"
)

// SMAStream is the simple moving average. The running sum is adjusted with
// the value that just fell out of the window instead of re-summing it.
type SMAStream struct {
	*WindowStream
	sum float64
}

func NewSMA(name string, period int) (*SMAStream, error) {
	if name == "" {
		name = fmt.Sprintf("SMA(%d)", period)
	}

	s := &SMAStream{}
	w, err := NewWindowStream(name, period, s.calculate)
	if err != nil {
		return nil, err
	}

	s.WindowStream = w
	return s, nil
}

func (s *SMAStream) calculate(w *types.Window[types.Sample], in types.Sample) types.Result {
	s.sum += in.Value
	if w.Samples() > w.Capacity() {
		s.sum -= w.MostRecentlyRemoved().Value
	}

	return types.Success(s.sum / float64(w.Count()))
}

func (s *SMAStream) Reset() {
	s.sum = 0
	s.WindowStream.Reset()
}

// SumStream is the rolling sum over the trailing period.
type SumStream struct {
	*WindowStream
	sum float64
}

func NewSum(name string, period int) (*SumStream, error) {
	if name == "" {
		name = fmt.Sprintf("SUM(%d)", period)
	}

	s := &SumStream{}
	w, err := NewWindowStream(name, period, s.calculate)
	if err != nil {
		return nil, err
	}

	s.WindowStream = w
	return s, nil
}

func (s *SumStream) calculate(w *types.Window[types.Sample], in types.Sample) types.Result {
	s.sum += in.Value
	if w.Samples() > w.Capacity() {
		s.sum -= w.MostRecentlyRemoved().Value
	}

	return types.Success(s.sum)
}

func (s *SumStream) Reset() {
	s.sum = 0
	s.WindowStream.Reset()
}

// DelayStream outputs the input received period samples ago.
type DelayStream struct {
	*WindowStream
}

func NewDelay(name string, period int) (*DelayStream, error) {
	if name == "" {
		name = fmt.Sprintf("DELAY(%d)", period)
	}

	if err := validatePeriod(name, period, 1); err != nil {
		return nil, err
	}

	w, err := NewWindowStream(name, period+1, func(w *types.Window[types.Sample], _ types.Sample) types.Result {
		return types.Success(w.Oldest().Value)
	})
	if err != nil {
		return nil, err
	}

	return &DelayStream{WindowStream: w}, nil
}
