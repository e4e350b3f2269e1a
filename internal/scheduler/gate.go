// Package scheduler bounds how many external proof jobs execute at once.
package scheduler

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"go.uber.org/ratelimit"
	"go.uber.org/zap"
	"golang.org/x/sync/semaphore"

	"github.com/goodnatureofminers/bridgeprover/internal/model"
)

// DefaultMaxConcurrent is the gate size used when Config leaves it unset.
const DefaultMaxConcurrent = 10

// Config tunes a Gate. Zero StartRPS disables start pacing.
type Config struct {
	MaxConcurrent int
	StartRPS      int
}

// Gate is a counting admission control shared by every proof job of a process.
// Jobs beyond the bound wait for a slot. A queued job gives up only when its context
// ends before admission; an admitted job always runs to completion.
type Gate struct {
	sem       *semaphore.Weighted
	limiter   ratelimit.Limiter
	observers []Observer
	capacity  int64
	logger    *zap.Logger

	inFlight atomic.Int64
	peak     atomic.Int64
}

// NewGate constructs a Gate.
func NewGate(logger *zap.Logger, cfg Config, observers ...Observer) *Gate {
	if cfg.MaxConcurrent <= 0 {
		cfg.MaxConcurrent = DefaultMaxConcurrent
	}
	limiter := ratelimit.NewUnlimited()
	if cfg.StartRPS > 0 {
		limiter = ratelimit.New(cfg.StartRPS)
	}
	return &Gate{
		sem:       semaphore.NewWeighted(int64(cfg.MaxConcurrent)),
		limiter:   limiter,
		observers: observers,
		capacity:  int64(cfg.MaxConcurrent),
		logger:    logger.Named("gate"),
	}
}

// Capacity returns the number of jobs allowed to run at once.
func (g *Gate) Capacity() int {
	return int(g.capacity)
}

// InFlight returns the number of jobs currently admitted.
func (g *Gate) InFlight() int {
	return int(g.inFlight.Load())
}

// Peak returns the highest number of jobs that were admitted at the same time.
func (g *Gate) Peak() int {
	return int(g.peak.Load())
}

// Run waits for a slot and runs fn with a context that is never canceled.
func (g *Gate) Run(ctx context.Context, job model.ProofJob, fn func(context.Context) error) error {
	if err := g.sem.Acquire(ctx, 1); err != nil {
		return fmt.Errorf("wait for proof slot (%s): %w", job.Kind, err)
	}
	defer g.sem.Release(1)

	g.limiter.Take()
	g.admit()
	defer g.inFlight.Add(-1)

	if job.RunID == "" {
		job.RunID = RunIDFrom(ctx)
	}
	job.StartedAt = time.Now()
	runCtx := context.WithoutCancel(ctx)
	for _, o := range g.observers {
		o.JobStarted(runCtx, job)
	}

	err := fn(runCtx)

	job.Duration = time.Since(job.StartedAt)
	job.Status = model.JobSucceeded
	if err != nil {
		job.Status = model.JobFailed
		job.Error = err.Error()
		g.logger.Warn("proof job failed",
			zap.String("kind", string(job.Kind)),
			zap.Int("level", job.Level),
			zap.Uint64("first_height", job.FirstHeight),
			zap.Uint64("last_height", job.LastHeight),
			zap.Error(err),
		)
	}
	for _, o := range g.observers {
		o.JobFinished(runCtx, job)
	}
	return err
}

func (g *Gate) admit() {
	n := g.inFlight.Add(1)
	for {
		peak := g.peak.Load()
		if n <= peak || g.peak.CompareAndSwap(peak, n) {
			return
		}
	}
}

// Do runs fn as one job on r and returns its result.
func Do[R any](ctx context.Context, r Runner, job model.ProofJob, fn func(context.Context) (R, error)) (R, error) {
	var res R
	err := r.Run(ctx, job, func(ctx context.Context) error {
		var err error
		res, err = fn(ctx)
		return err
	})
	return res, err
}
