package indicator

import (
	"fmt"

	"github.com/c9s/streamta/pkg/types"
)

// IdentityStream forwards every input unchanged. It is the usual leaf that
// driving code pushes raw prices into.
type IdentityStream struct {
	*StreamBase
}

func Identity(name string) *IdentityStream {
	return &IdentityStream{StreamBase: NewStreamBase(name)}
}

func (s *IdentityStream) Update(in types.Sample) bool {
	s.Process(in, PassThrough)
	return s.IsReady()
}

func (s *IdentityStream) IsReady() bool {
	return s.Samples() > 0
}

// ConstantStream always yields the same value and is always ready.
// Composites never wait for a constant side.
type ConstantStream struct {
	*StreamBase
	value float64
}

func Constant(value float64) *ConstantStream {
	s := &ConstantStream{
		StreamBase: NewStreamBase(fmt.Sprintf("CONST(%g)", value)),
		value:      value,
	}
	s.kind = KindConstant
	s.setDefault(types.Sample{Value: value})
	return s
}

func (s *ConstantStream) Value() float64 {
	return s.value
}

func (s *ConstantStream) Calculate(_ types.Sample) types.Result {
	return types.Success(s.value)
}

func (s *ConstantStream) Update(in types.Sample) bool {
	s.Process(in, s)
	return true
}

func (s *ConstantStream) IsReady() bool {
	return true
}

var _ Stream = &IdentityStream{}
var _ Stream = &ConstantStream{}
