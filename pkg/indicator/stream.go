package indicator

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/c9s/streamta/pkg/types"
)

var log = logrus.WithField("component", "indicator")

// SourceKind tells a composite whether an upstream ever notifies. Constant
// sources never do, so a composite treats them as always present.
type SourceKind int

const (
	KindStream SourceKind = iota
	KindConstant
)

func (k SourceKind) String() string {
	if k == KindConstant {
		return "constant"
	}
	return "stream"
}

// Stream is the contract every node in an indicator graph implements.
type Stream interface {
	Name() string
	Kind() SourceKind

	// Update feeds one sample and returns whether the stream is ready afterwards.
	// A sample older than the previous input panics with *ForwardOnlyError.
	Update(in types.Sample) bool

	IsReady() bool
	Reset()

	Current() types.Sample
	Samples() int

	OnUpdate(cb func(s types.Sample))
	OnReject(cb func(in types.Sample, status types.Status))
}

// Calculator is the compute step of a stream.
type Calculator interface {
	Calculate(in types.Sample) types.Result
}

// CalculatorFunc adapts a plain function to Calculator.
type CalculatorFunc func(in types.Sample) types.Result

func (f CalculatorFunc) Calculate(in types.Sample) types.Result {
	return f(in)
}

// PassThrough is the default compute step: every input succeeds unchanged.
var PassThrough = CalculatorFunc(func(in types.Sample) types.Result {
	return types.Success(in.Value)
})

// StreamBase carries the state shared by all streams:
// name, sample counter, current value and the previous input.
//
// Concrete streams embed *StreamBase, implement Calculate and IsReady, and
// route Update through Process.
type StreamBase struct {
	SampleUpdater

	name string
	kind SourceKind

	samples        int
	current        types.Sample
	defaultCurrent types.Sample

	previousInput    types.Sample
	hasPreviousInput bool

	updating bool
}

func NewStreamBase(name string) *StreamBase {
	return &StreamBase{name: name}
}

func (b *StreamBase) Name() string {
	return b.name
}

func (b *StreamBase) Kind() SourceKind {
	return b.kind
}

func (b *StreamBase) Current() types.Sample {
	return b.current
}

func (b *StreamBase) Samples() int {
	return b.samples
}

// PreviousInput returns the last distinct input and whether one exists.
func (b *StreamBase) PreviousInput() (types.Sample, bool) {
	return b.previousInput, b.hasPreviousInput
}

func (b *StreamBase) String() string {
	return b.name
}

// setDefault sets the value Current returns before the first update and after Reset.
func (b *StreamBase) setDefault(s types.Sample) {
	b.defaultCurrent = s
	b.current = s
}

// Process runs one input through the update state machine. A re-delivery of
// the immediately previous input is ignored.
func (b *StreamBase) Process(in types.Sample, calc Calculator) {
	if b.hasPreviousInput && in.Equal(b.previousInput) {
		return
	}

	b.step(in, calc)
}

// step is Process without the re-delivery check. Composites call it directly
// because their pending flags already guarantee one step per upstream pair.
func (b *StreamBase) step(in types.Sample, calc Calculator) {
	if b.hasPreviousInput && in.Time.Before(b.previousInput.Time) {
		panic(&ForwardOnlyError{
			Name:     b.name,
			Previous: b.previousInput.Time,
			Given:    in.Time,
		})
	}

	if b.updating {
		panic(errors.Wrapf(ErrReentrantUpdate, "%s", b.name))
	}

	b.updating = true
	defer func() {
		b.updating = false
	}()

	b.samples++
	b.previousInput = in
	b.hasPreviousInput = true

	result := calc.Calculate(in)
	if !result.OK() {
		log.WithFields(logrus.Fields{
			"indicator": b.name,
			"status":    result.Status.String(),
		}).Debugf("rejected sample %s", in)
		b.EmitReject(in, result.Status)
		return
	}

	b.current = types.Sample{Time: in.Time, Value: result.Value}
	b.EmitUpdate(b.current)
}

// Reset restores the post-construction state. Registered callbacks are kept.
func (b *StreamBase) Reset() {
	b.samples = 0
	b.current = b.defaultCurrent
	b.previousInput = types.Sample{}
	b.hasPreviousInput = false
}

// Bind pushes every value produced by source into target.
func Bind(source, target Stream) {
	source.OnUpdate(func(s types.Sample) {
		target.Update(s)
	})
}
