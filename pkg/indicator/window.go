package indicator

import (
	"github.com/c9s/streamta/pkg/types"
)

// WindowFormula computes the output of a window stream. The window already
// contains in at index 0 when the formula runs.
type WindowFormula func(w *types.Window[types.Sample], in types.Sample) types.Result

type WindowOption func(s *WindowStream)

// WithReadyFunc overrides the default readiness rule (window is full).
func WithReadyFunc(f func(s *WindowStream) bool) WindowOption {
	return func(s *WindowStream) {
		s.ready = f
	}
}

// WindowStream keeps the trailing period inputs in a lookback window and
// delegates the output to a window-aware formula.
type WindowStream struct {
	*StreamBase

	window  *types.Window[types.Sample]
	formula WindowFormula
	ready   func(s *WindowStream) bool
}

func NewWindowStream(name string, period int, formula WindowFormula, options ...WindowOption) (*WindowStream, error) {
	if err := validatePeriod(name, period, 1); err != nil {
		return nil, err
	}

	if formula == nil {
		return nil, invalidParameter(name, "window formula is nil")
	}

	window, err := types.NewWindow[types.Sample](period)
	if err != nil {
		return nil, err
	}

	s := &WindowStream{
		StreamBase: NewStreamBase(name),
		window:     window,
		formula:    formula,
	}

	for _, option := range options {
		option(s)
	}

	return s, nil
}

func (s *WindowStream) Window() *types.Window[types.Sample] {
	return s.window
}

func (s *WindowStream) Period() int {
	return s.window.Capacity()
}

func (s *WindowStream) Calculate(in types.Sample) types.Result {
	s.window.Add(in)
	return s.formula(s.window, in)
}

func (s *WindowStream) Update(in types.Sample) bool {
	s.Process(in, s)
	return s.IsReady()
}

func (s *WindowStream) IsReady() bool {
	if s.ready != nil {
		return s.ready(s)
	}
	return s.window.IsReady()
}

func (s *WindowStream) Reset() {
	s.window.Reset()
	s.StreamBase.Reset()
}

var _ Stream = &WindowStream{}
