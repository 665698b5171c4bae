package types

import (
	"fmt"
	"time"
)

// Sample is a single timestamped observation flowing through the indicator graph.
// Samples are values; once produced they are never mutated.
type Sample struct {
	Time  time.Time `json:"time"`
	Value float64   `json:"value"`
}

func NewSample(t time.Time, v float64) Sample {
	return Sample{Time: t, Value: v}
}

// Equal reports whether both samples carry the same timestamp and value.
func (s Sample) Equal(o Sample) bool {
	return s.Time.Equal(o.Time) && s.Value == o.Value
}

func (s Sample) IsZero() bool {
	return s.Time.IsZero() && s.Value == 0
}

func (s Sample) String() string {
	return fmt.Sprintf("%s: %f", s.Time.Format(time.RFC3339), s.Value)
}
