package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/c9s/streamta/pkg/types"
)

var IndicatorValueMetrics = prometheus.NewGaugeVec(
	prometheus.GaugeOpts{
		Name: "streamta_indicator_value",
		Help: "the latest value of the indicator stream",
	}, []string{"symbol", "interval", "indicator"})

var IndicatorUpdateTimeMetrics = prometheus.NewGaugeVec(
	prometheus.GaugeOpts{
		Name: "streamta_indicator_update_time_seconds",
		Help: "unix time of the latest sample of the indicator stream",
	}, []string{"symbol", "interval", "indicator"})

var IndicatorUpdateCountMetrics = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "streamta_indicator_updates_total",
		Help: "number of values produced by the indicator stream",
	}, []string{"symbol", "interval", "indicator"})

var IndicatorRejectCountMetrics = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "streamta_indicator_rejects_total",
		Help: "number of samples rejected by the indicator stream",
	}, []string{"symbol", "interval", "indicator", "status"})

func init() {
	prometheus.MustRegister(
		IndicatorValueMetrics,
		IndicatorUpdateTimeMetrics,
		IndicatorUpdateCountMetrics,
		IndicatorRejectCountMetrics,
	)
}

// UpdateSource is implemented by the engine.
type UpdateSource interface {
	OnUpdate(cb func(id string, s types.Sample))
	OnReject(cb func(id string, s types.Sample, status types.Status))
}

// Bind exports every update and reject of the source under the symbol and interval labels.
func Bind(source UpdateSource, symbol string, interval types.Interval) {
	source.OnUpdate(func(id string, s types.Sample) {
		labels := prometheus.Labels{"symbol": symbol, "interval": interval.String(), "indicator": id}
		IndicatorValueMetrics.With(labels).Set(s.Value)
		IndicatorUpdateTimeMetrics.With(labels).Set(float64(s.Time.Unix()))
		IndicatorUpdateCountMetrics.With(labels).Inc()
	})

	source.OnReject(func(id string, s types.Sample, status types.Status) {
		IndicatorRejectCountMetrics.With(prometheus.Labels{
			"symbol":    symbol,
			"interval":  interval.String(),
			"indicator": id,
			"status":    status.String(),
		}).Inc()
	})
}
