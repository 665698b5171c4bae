package indicator

import (
	"fmt"
	"time"

	"github.com/pkg/errors"
)

var (
	// ErrForwardOnly is the cause of every ForwardOnlyError.
	ErrForwardOnly = errors.New("sample is older than the previous input")

	// ErrInvalidParameter is returned by constructors when a structural
	// parameter (period, smoothing factor) is out of range.
	ErrInvalidParameter = errors.New("invalid indicator parameter")

	// ErrReentrantUpdate is raised when a node is updated again from inside
	// its own update notification.
	ErrReentrantUpdate = errors.New("re-entrant update")
)

// ForwardOnlyError is the panic value raised when a stream receives a sample
// with a timestamp strictly earlier than the previously accepted one.
type ForwardOnlyError struct {
	Name     string
	Previous time.Time
	Given    time.Time
}

func (e *ForwardOnlyError) Error() string {
	return fmt.Sprintf("%s: %s: previous input at %s, given %s",
		e.Name, ErrForwardOnly.Error(),
		e.Previous.Format(time.RFC3339Nano), e.Given.Format(time.RFC3339Nano))
}

func (e *ForwardOnlyError) Cause() error {
	return ErrForwardOnly
}

func (e *ForwardOnlyError) Unwrap() error {
	return ErrForwardOnly
}

func invalidParameter(name, format string, args ...interface{}) error {
	return errors.Wrapf(ErrInvalidParameter, "%s: %s", name, fmt.Sprintf(format, args...))
}

func validatePeriod(name string, period, floor int) error {
	if period < floor {
		return invalidParameter(name, "period %d is less than %d", period, floor)
	}
	return nil
}
