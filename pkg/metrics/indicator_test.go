package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/c9s/streamta/pkg/types"
)

type fakeSource struct {
	updates []func(id string, s types.Sample)
	rejects []func(id string, s types.Sample, status types.Status)
}

func (f *fakeSource) OnUpdate(cb func(id string, s types.Sample)) {
	f.updates = append(f.updates, cb)
}

func (f *fakeSource) OnReject(cb func(id string, s types.Sample, status types.Status)) {
	f.rejects = append(f.rejects, cb)
}

func TestBind(t *testing.T) {
	source := &fakeSource{}
	Bind(source, "METRICSUSDT", types.Interval5m)

	at := time.Unix(1700000000, 0)
	for _, cb := range source.updates {
		cb("rsi", types.Sample{Time: at, Value: 42})
		cb("rsi", types.Sample{Time: at.Add(time.Minute), Value: 43})
	}
	for _, cb := range source.rejects {
		cb("roc", types.Sample{Time: at}, types.StatusMathError)
	}

	assert.Equal(t, 43.0, testutil.ToFloat64(IndicatorValueMetrics.WithLabelValues("METRICSUSDT", "5m", "rsi")))
	assert.Equal(t, float64(at.Add(time.Minute).Unix()), testutil.ToFloat64(IndicatorUpdateTimeMetrics.WithLabelValues("METRICSUSDT", "5m", "rsi")))
	assert.Equal(t, 2.0, testutil.ToFloat64(IndicatorUpdateCountMetrics.WithLabelValues("METRICSUSDT", "5m", "rsi")))
	assert.Equal(t, 1.0, testutil.ToFloat64(IndicatorRejectCountMetrics.WithLabelValues("METRICSUSDT", "5m", "roc", types.StatusMathError.String())))
}
