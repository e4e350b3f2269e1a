package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	gatewayOperationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "toolchain",
		Name:      "operations_total",
		Help:      "Count of circuit toolchain invocations.",
	}, []string{"operation", "status"})
	gatewayOperationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "toolchain",
		Name:      "operation_duration_seconds",
		Help:      "Duration of circuit toolchain invocations.",
		Buckets:   prometheus.ExponentialBuckets(0.25, 2, 12), // 0.25s..~8.5m
	}, []string{"operation", "status"})
)

// ProverGateway tracks metrics for compile, witness and proving calls.
type ProverGateway struct{}

// NewProverGateway constructs a ProverGateway metrics collector.
func NewProverGateway() *ProverGateway {
	return &ProverGateway{}
}

// Observe records a single toolchain call outcome and duration.
func (m ProverGateway) Observe(operation string, err error, started time.Time) {
	status := statusOf(err)
	gatewayOperationsTotal.WithLabelValues(operation, status).Inc()
	gatewayOperationDuration.WithLabelValues(operation, status).Observe(time.Since(started).Seconds())
}
