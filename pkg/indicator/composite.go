package indicator

import (
	"fmt"

	"github.com/c9s/streamta/pkg/types"
)

// Combiner computes a composite value from the latest state of both upstreams.
type Combiner func(left, right Stream) types.Result

// CompositeStream joins two upstream streams. It steps once each time both
// sides have produced a value since the previous step; a constant side
// counts as always present.
//
// When both sides are constant, the composite is constant too: its value is
// evaluated at construction (and again on Reset) and it never self-triggers.
type CompositeStream struct {
	*StreamBase

	left, right Stream
	combiner    Combiner

	leftPending, rightPending bool
}

func Composite(name string, left, right Stream, combiner Combiner) *CompositeStream {
	if left == nil || right == nil {
		panic(invalidParameter(name, "composite upstream is nil"))
	}

	if combiner == nil {
		panic(invalidParameter(name, "combiner is nil"))
	}

	if name == "" {
		name = fmt.Sprintf("COMPOSE(%s,%s)", left.Name(), right.Name())
	}

	s := &CompositeStream{
		StreamBase: NewStreamBase(name),
		left:       left,
		right:      right,
		combiner:   combiner,
	}

	if left.Kind() == KindConstant && right.Kind() == KindConstant {
		s.kind = KindConstant
		s.seed()
		return s
	}

	if left.Kind() != KindConstant {
		left.OnUpdate(func(_ types.Sample) {
			s.leftPending = true
			s.join()
		})
	}

	if right.Kind() != KindConstant {
		right.OnUpdate(func(_ types.Sample) {
			s.rightPending = true
			s.join()
		})
	}

	return s
}

func (s *CompositeStream) Left() Stream {
	return s.left
}

func (s *CompositeStream) Right() Stream {
	return s.right
}

func (s *CompositeStream) seed() {
	if r := s.combiner(s.left, s.right); r.OK() {
		s.setDefault(types.Sample{Value: r.Value})
	}
}

func (s *CompositeStream) present(side Stream, pending bool) bool {
	return pending || side.Kind() == KindConstant
}

func (s *CompositeStream) join() {
	if !s.present(s.left, s.leftPending) || !s.present(s.right, s.rightPending) {
		return
	}

	s.leftPending = false
	s.rightPending = false

	t := s.left.Current().Time
	if rt := s.right.Current().Time; rt.After(t) {
		t = rt
	}

	s.step(types.Sample{Time: t}, s)
}

func (s *CompositeStream) Calculate(_ types.Sample) types.Result {
	return s.combiner(s.left, s.right)
}

// Update forces a combination at the given sample time.
func (s *CompositeStream) Update(in types.Sample) bool {
	s.Process(in, s)
	return s.IsReady()
}

func (s *CompositeStream) IsReady() bool {
	return s.left.IsReady() && s.right.IsReady()
}

func (s *CompositeStream) Reset() {
	s.left.Reset()
	s.right.Reset()
	s.leftPending = false
	s.rightPending = false
	s.StreamBase.Reset()

	if s.kind == KindConstant {
		s.seed()
	}
}

var _ Stream = &CompositeStream{}
