package indicator

import (
	"fmt"

	"github.com/c9s/streamta/pkg/types"
)

// EMAStream is the exponential moving average. During the first period
// samples the output is the running mean, which also seeds the average.
type EMAStream struct {
	*StreamBase

	period    int
	smoothing float64
	seedSum   float64
}

// SmoothingFactor returns the standard 2 / (period + 1).
func SmoothingFactor(period int) float64 {
	return 2.0 / float64(period+1)
}

func NewEMA(name string, period int) (*EMAStream, error) {
	return NewEMAWithSmoothing(name, period, SmoothingFactor(period))
}

// NewEMAWithSmoothing creates an EMA with a custom smoothing factor in (0, 1].
// Wilder smoothing is 1 / period.
func NewEMAWithSmoothing(name string, period int, smoothing float64) (*EMAStream, error) {
	if name == "" {
		name = fmt.Sprintf("EMA(%d)", period)
	}

	if err := validatePeriod(name, period, 1); err != nil {
		return nil, err
	}

	if smoothing <= 0 || smoothing > 1 {
		return nil, invalidParameter(name, "smoothing factor %g is out of (0, 1]", smoothing)
	}

	return &EMAStream{
		StreamBase: NewStreamBase(name),
		period:     period,
		smoothing:  smoothing,
	}, nil
}

func (s *EMAStream) Period() int {
	return s.period
}

func (s *EMAStream) Calculate(in types.Sample) types.Result {
	// Samples has already been incremented for in
	n := s.Samples()
	if n <= s.period {
		s.seedSum += in.Value
		return types.Success(s.seedSum / float64(n))
	}

	prev := s.Current().Value
	return types.Success(prev + s.smoothing*(in.Value-prev))
}

func (s *EMAStream) Update(in types.Sample) bool {
	s.Process(in, s)
	return s.IsReady()
}

func (s *EMAStream) IsReady() bool {
	return s.Samples() >= s.period
}

func (s *EMAStream) Reset() {
	s.seedSum = 0
	s.StreamBase.Reset()
}

var _ Stream = &EMAStream{}
