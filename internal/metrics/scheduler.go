package metrics

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/goodnatureofminers/bridgeprover/internal/model"
)

var (
	jobsInFlight = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "scheduler",
		Name:      "jobs_in_flight",
		Help:      "Proof jobs currently holding a slot.",
	}, []string{"kind"})

	jobsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "scheduler",
		Name:      "jobs_total",
		Help:      "Count of finished proof jobs.",
	}, []string{"kind", "status"})

	jobDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "scheduler",
		Name:      "job_duration_seconds",
		Help:      "Duration of proof jobs once admitted.",
		Buckets:   prometheus.ExponentialBuckets(0.5, 2, 12),
	}, []string{"kind", "status"})
)

// Scheduler tracks proof job admission and completion.
type Scheduler struct{}

// NewScheduler constructs a Scheduler metrics collector.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

func (m Scheduler) JobStarted(_ context.Context, job model.ProofJob) {
	jobsInFlight.WithLabelValues(string(job.Kind)).Inc()
}

func (m Scheduler) JobFinished(_ context.Context, job model.ProofJob) {
	jobsInFlight.WithLabelValues(string(job.Kind)).Dec()
	jobsTotal.WithLabelValues(string(job.Kind), string(job.Status)).Inc()
	jobDuration.WithLabelValues(string(job.Kind), string(job.Status)).Observe(job.Duration.Seconds())
}
