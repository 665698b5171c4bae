package trend

import (
	"time"

	"github.com/c9s/streamta/pkg/indicator"
	"github.com/c9s/streamta/pkg/types"
)

var t0 = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func pushAt(source indicator.Stream, i int, v float64) {
	source.Update(types.Sample{Time: t0.Add(time.Duration(i) * time.Hour), Value: v})
}

func pushAll(source indicator.Stream, values ...float64) {
	for i, v := range values {
		pushAt(source, i, v)
	}
}

func record(s indicator.Stream) *[]float64 {
	values := &[]float64{}
	s.OnUpdate(func(v types.Sample) {
		*values = append(*values, v.Value)
	})
	return values
}
