package indicator

import (
	"time"

	"github.com/c9s/streamta/pkg/types"
)

var t0 = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func ts(i int) time.Time {
	return t0.Add(time.Duration(i) * time.Minute)
}

func sample(i int, v float64) types.Sample {
	return types.Sample{Time: ts(i), Value: v}
}

func capturePanic(f func()) (v interface{}) {
	defer func() {
		v = recover()
	}()
	f()
	return
}

// recorder collects every value a stream emits.
type recorder struct {
	values  []float64
	samples []types.Sample
}

func record(s Stream) *recorder {
	r := &recorder{}
	s.OnUpdate(func(v types.Sample) {
		r.values = append(r.values, v.Value)
		r.samples = append(r.samples, v)
	})
	return r
}

func feed(s Stream, values ...float64) {
	for i, v := range values {
		s.Update(sample(i, v))
	}
}
