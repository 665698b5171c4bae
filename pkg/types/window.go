package types

import (
	"github.com/pkg/errors"
)

var (
	ErrInvalidCapacity = errors.New("window capacity must be greater than zero")
	ErrIndexOutOfRange = errors.New("window index out of range")
)

// Window is a fixed-capacity lookback buffer that keeps the most recent values
// in newest-first order. When the window is full, every Add evicts the oldest
// value and keeps it available through MostRecentlyRemoved.
//
// The storage is a ring buffer, so Add and At are O(1).
type Window[T any] struct {
	buf []T

	// head is the physical index of the newest value
	head  int
	count int

	// samples is the total number of values ever added
	samples int

	removed    T
	hasRemoved bool
}

func NewWindow[T any](capacity int) (*Window[T], error) {
	if capacity < 1 {
		return nil, errors.Wrapf(ErrInvalidCapacity, "capacity = %d", capacity)
	}

	return &Window[T]{
		buf:  make([]T, capacity),
		head: capacity - 1,
	}, nil
}

// MustNewWindow is like NewWindow but panics on an invalid capacity.
func MustNewWindow[T any](capacity int) *Window[T] {
	w, err := NewWindow[T](capacity)
	if err != nil {
		panic(err)
	}
	return w
}

// Add inserts v at index 0. If the window is full, the oldest value is
// recorded as MostRecentlyRemoved before v becomes visible.
func (w *Window[T]) Add(v T) {
	next := (w.head + 1) % len(w.buf)
	if w.count == len(w.buf) {
		w.removed = w.buf[next]
		w.hasRemoved = true
	} else {
		w.count++
	}

	w.buf[next] = v
	w.head = next
	w.samples++
}

// At returns the value at logical index i, 0 being the most recent value and
// Count()-1 the oldest value still held. It panics when i is out of range.
func (w *Window[T]) At(i int) T {
	if i < 0 || i >= w.count {
		panic(errors.Wrapf(ErrIndexOutOfRange, "index %d, count %d", i, w.count))
	}

	return w.buf[(w.head-i+len(w.buf))%len(w.buf)]
}

// Last returns the most recent value, or the zero value if the window is empty.
func (w *Window[T]) Last() (v T) {
	if w.count == 0 {
		return v
	}
	return w.buf[w.head]
}

// Oldest returns the oldest value held, or the zero value if the window is empty.
func (w *Window[T]) Oldest() (v T) {
	if w.count == 0 {
		return v
	}
	return w.At(w.count - 1)
}

// MostRecentlyRemoved returns the value evicted by the latest Add on a full window.
func (w *Window[T]) MostRecentlyRemoved() T {
	return w.removed
}

func (w *Window[T]) HasEvicted() bool {
	return w.hasRemoved
}

func (w *Window[T]) IsReady() bool {
	return w.count >= len(w.buf)
}

func (w *Window[T]) Count() int {
	return w.count
}

func (w *Window[T]) Capacity() int {
	return len(w.buf)
}

func (w *Window[T]) Samples() int {
	return w.samples
}

// Values returns a newest-first copy of the held values.
func (w *Window[T]) Values() []T {
	values := make([]T, w.count)
	for i := 0; i < w.count; i++ {
		values[i] = w.At(i)
	}
	return values
}

func (w *Window[T]) Reset() {
	var zero T
	for i := range w.buf {
		w.buf[i] = zero
	}

	w.head = len(w.buf) - 1
	w.count = 0
	w.samples = 0
	w.removed = zero
	w.hasRemoved = false
}
