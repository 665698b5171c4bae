package indicator

import (
	"fmt"

	"github.com/c9s/streamta/pkg/types"
)

// ExtremumStream tracks the maximum (or minimum) over the trailing period.
// The window is only rescanned when the current extremum falls out of range.
type ExtremumStream struct {
	*WindowStream

	// direction is 1 for maximum and -1 for minimum
	direction float64

	// age is how many samples ago the extremum was observed
	age int
}

func NewMaximum(name string, period int) (*ExtremumStream, error) {
	if name == "" {
		name = fmt.Sprintf("MAX(%d)", period)
	}
	return newExtremum(name, period, 1.0)
}

func NewMinimum(name string, period int) (*ExtremumStream, error) {
	if name == "" {
		name = fmt.Sprintf("MIN(%d)", period)
	}
	return newExtremum(name, period, -1.0)
}

func newExtremum(name string, period int, direction float64) (*ExtremumStream, error) {
	s := &ExtremumStream{direction: direction}
	w, err := NewWindowStream(name, period, s.calculate)
	if err != nil {
		return nil, err
	}

	s.WindowStream = w
	return s, nil
}

// PeriodsSinceExtremum returns how many samples ago the current extremum was seen.
func (s *ExtremumStream) PeriodsSinceExtremum() int {
	return s.age
}

func (s *ExtremumStream) calculate(w *types.Window[types.Sample], in types.Sample) types.Result {
	if w.Count() == 1 {
		s.age = 0
		return types.Success(in.Value)
	}

	current := s.Current().Value
	if in.Value*s.direction >= current*s.direction {
		s.age = 0
		return types.Success(in.Value)
	}

	s.age++
	if s.age < w.Capacity() {
		return types.Success(current)
	}

	// the extremum just left the window, rescan
	best := w.At(0).Value
	s.age = 0
	for i := 1; i < w.Count(); i++ {
		v := w.At(i).Value
		if v*s.direction > best*s.direction {
			best = v
			s.age = i
		}
	}

	return types.Success(best)
}

func (s *ExtremumStream) Reset() {
	s.age = 0
	s.WindowStream.Reset()
}
