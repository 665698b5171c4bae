package types

// Status classifies the outcome of one compute step.
type Status int

const (
	StatusSuccess Status = iota

	// StatusInvalidInput means the formula rejected a malformed sample.
	StatusInvalidInput

	// StatusMathError means the arithmetic was undefined, e.g. division by zero.
	StatusMathError
)

func (s Status) String() string {
	switch s {
	case StatusSuccess:
		return "success"
	case StatusInvalidInput:
		return "invalid_input"
	case StatusMathError:
		return "math_error"
	}

	return "unknown"
}

// Result is the tagged output of a compute step. Only a successful result
// advances the current value of an indicator.
type Result struct {
	Value  float64
	Status Status
}

func Success(v float64) Result {
	return Result{Value: v, Status: StatusSuccess}
}

func InvalidInput() Result {
	return Result{Status: StatusInvalidInput}
}

func MathError() Result {
	return Result{Status: StatusMathError}
}

func (r Result) OK() bool {
	return r.Status == StatusSuccess
}
