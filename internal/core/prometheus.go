package core

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

// PrometheusMetricsRecorder fulfills MetricsRecorder on top of a Prometheus
// registry. There is no scrape endpoint; callers dump the registry in text
// exposition format on demand.
type PrometheusMetricsRecorder struct {
	registry   *prometheus.Registry
	operations *prometheus.CounterVec
	durations  *prometheus.HistogramVec
}

// NewPrometheusMetricsRecorder constructs a recorder with its own registry.
func NewPrometheusMetricsRecorder() (*PrometheusMetricsRecorder, error) {
	registry := prometheus.NewRegistry()
	operations := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "herdcore",
		Name:      "service_operations_total",
		Help:      "Service operations by name and outcome.",
	}, []string{"operation", "status"})
	durations := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "herdcore",
		Name:      "service_operation_duration_seconds",
		Help:      "Service operation latency.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation"})

	if err := registry.Register(operations); err != nil {
		return nil, fmt.Errorf("register operations counter: %w", err)
	}
	if err := registry.Register(durations); err != nil {
		return nil, fmt.Errorf("register duration histogram: %w", err)
	}

	return &PrometheusMetricsRecorder{
		registry:   registry,
		operations: operations,
		durations:  durations,
	}, nil
}

// Observe records a service operation outcome.
func (r *PrometheusMetricsRecorder) Observe(_ context.Context, operation string, success bool, duration time.Duration) {
	if operation == "" {
		return
	}
	status := "error"
	if success {
		status = "success"
	}
	r.operations.WithLabelValues(operation, status).Inc()
	r.durations.WithLabelValues(operation).Observe(duration.Seconds())
}

// WriteText dumps the registry contents in Prometheus text exposition format.
func (r *PrometheusMetricsRecorder) WriteText(w io.Writer) error {
	families, err := r.registry.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	enc := expfmt.NewEncoder(w, expfmt.NewFormat(expfmt.TypeTextPlain))
	for _, fam := range families {
		if err := enc.Encode(fam); err != nil {
			return fmt.Errorf("encode metric family %s: %w", fam.GetName(), err)
		}
	}
	return nil
}
