package indicator

import (
	"github.com/c9s/streamta/pkg/types"
)

// FunctionalStream lifts three closures into a stream: compute, readiness and
// reset. Concrete indicators use it to expose an internal signal as a
// first-class stream without declaring a new type.
type FunctionalStream struct {
	*StreamBase

	compute func(in types.Sample) types.Result
	ready   func(s *FunctionalStream) bool
	reset   func()
}

// Functional wraps a compute closure that always succeeds.
// A nil ready means the stream is ready after its first sample. reset may be nil.
func Functional(name string, compute func(in types.Sample) float64, ready func(s *FunctionalStream) bool, reset func()) *FunctionalStream {
	if compute == nil {
		panic(invalidParameter(name, "compute closure is nil"))
	}

	return FunctionalResult(name, func(in types.Sample) types.Result {
		return types.Success(compute(in))
	}, ready, reset)
}

// FunctionalResult is like Functional, but the compute closure reports its own status.
func FunctionalResult(name string, compute func(in types.Sample) types.Result, ready func(s *FunctionalStream) bool, reset func()) *FunctionalStream {
	if compute == nil {
		panic(invalidParameter(name, "compute closure is nil"))
	}

	return &FunctionalStream{
		StreamBase: NewStreamBase(name),
		compute:    compute,
		ready:      ready,
		reset:      reset,
	}
}

func (s *FunctionalStream) Calculate(in types.Sample) types.Result {
	return s.compute(in)
}

func (s *FunctionalStream) Update(in types.Sample) bool {
	s.Process(in, s)
	return s.IsReady()
}

func (s *FunctionalStream) IsReady() bool {
	if s.ready != nil {
		return s.ready(s)
	}
	return s.Samples() > 0
}

func (s *FunctionalStream) Reset() {
	if s.reset != nil {
		s.reset()
	}
	s.StreamBase.Reset()
}

var _ Stream = &FunctionalStream{}
