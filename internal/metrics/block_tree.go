package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/goodnatureofminers/bridgeprover/internal/model"
)

var (
	treeLevelTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "block_tree",
		Name:      "levels_total",
		Help:      "Count of proved tree levels.",
	}, []string{"kind", "status"})

	treeLevelDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "block_tree",
		Name:      "level_duration_seconds",
		Help:      "Duration of proving one tree level.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 12), // 1s..~34m
	}, []string{"kind", "level", "status"})

	treeLevelJobs = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "block_tree",
		Name:      "level_jobs",
		Help:      "Number of proofs per tree level.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 8), // 1..128
	}, []string{"kind"})

	treeBuildTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "block_tree",
		Name:      "builds_total",
		Help:      "Count of block tree builds.",
	}, []string{"status"})

	treeBuildDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "block_tree",
		Name:      "build_duration_seconds",
		Help:      "Duration of a full block tree build.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 14),
	}, []string{"status"})

	treeHeight = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "block_tree",
		Name:      "last_height",
		Help:      "Height of the last successfully built tree.",
	})

	treeBlocks = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "block_tree",
		Name:      "blocks",
		Help:      "Number of blocks per tree build.",
		Buckets:   prometheus.LinearBuckets(2, 4, 8),
	})
)

// BlockTree tracks metrics of block tree construction.
type BlockTree struct{}

// NewBlockTree constructs a BlockTree metrics collector.
func NewBlockTree() *BlockTree {
	return &BlockTree{}
}

// ObserveLevel records one level of pair or node proofs.
func (m BlockTree) ObserveLevel(kind model.JobKind, level, jobs int, err error, started time.Time) {
	status := statusOf(err)
	treeLevelTotal.WithLabelValues(string(kind), status).Inc()
	treeLevelDuration.WithLabelValues(string(kind), strconv.Itoa(level), status).
		Observe(time.Since(started).Seconds())
	treeLevelJobs.WithLabelValues(string(kind)).Observe(float64(jobs))
}

// ObserveTree records a whole tree build over blocks blocks.
func (m BlockTree) ObserveTree(height, blocks int, err error, started time.Time) {
	status := statusOf(err)
	treeBuildTotal.WithLabelValues(status).Inc()
	treeBuildDuration.WithLabelValues(status).Observe(time.Since(started).Seconds())
	treeBlocks.Observe(float64(blocks))
	if err == nil {
		treeHeight.Set(float64(height))
	}
}
