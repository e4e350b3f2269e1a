// Package ledger records finished proof jobs and tree roots for later inspection.
package ledger

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/bridgeprover/internal/bitcoin"
	"github.com/goodnatureofminers/bridgeprover/internal/model"
	"github.com/goodnatureofminers/bridgeprover/internal/scheduler"
	"github.com/goodnatureofminers/bridgeprover/pkg/batcher"
)

// Recorder buffers ledger rows and writes them in batches.
type Recorder struct {
	jobs   *batcher.Batcher[model.ProofJob]
	trees  *batcher.Batcher[model.TreeRecord]
	now    func() time.Time
	logger *zap.Logger
}

// NewRecorder constructs a Recorder writing to repo. A zero cfg uses the package defaults.
func NewRecorder(logger *zap.Logger, repo Repository, cfg batcher.Config) (*Recorder, error) {
	if repo == nil {
		return nil, errors.New("ledger repository is required")
	}
	if cfg == (batcher.Config{}) {
		cfg = defaultBatcherConfig
	}
	logger = logger.Named("ledger")
	return &Recorder{
		jobs:   batcher.New(logger.Named("jobs"), repo.InsertProofJobs, cfg),
		trees:  batcher.New(logger.Named("trees"), repo.InsertTreeRecords, cfg),
		now:    time.Now,
		logger: logger,
	}, nil
}

// Start launches the flush loops.
func (r *Recorder) Start(ctx context.Context) {
	r.jobs.Start(ctx)
	r.trees.Start(ctx)
}

// Stop flushes what is buffered and stops the flush loops.
func (r *Recorder) Stop() {
	r.jobs.Stop()
	r.trees.Stop()

	jobs, trees := r.jobs.Stats(), r.trees.Stats()
	fields := []zap.Field{
		zap.Uint64("jobs_written", jobs.Flushed),
		zap.Uint64("trees_written", trees.Flushed),
	}
	if jobs.Dropped > 0 || trees.Dropped > 0 {
		r.logger.Warn("ledger rows lost",
			append(fields, zap.Uint64("jobs_dropped", jobs.Dropped), zap.Uint64("trees_dropped", trees.Dropped))...)
		return
	}
	r.logger.Info("ledger flushed", fields...)
}

func (r *Recorder) JobStarted(context.Context, model.ProofJob) {}

func (r *Recorder) JobFinished(ctx context.Context, job model.ProofJob) {
	if err := r.jobs.Add(context.WithoutCancel(ctx), job); err != nil {
		r.logger.Warn("drop proof job record",
			zap.String("kind", string(job.Kind)),
			zap.Uint64("first_height", job.FirstHeight),
			zap.Error(err))
	}
}

// RecordTree stores the root of a finished tree built under ctx.
func (r *Recorder) RecordTree(ctx context.Context, tree model.BlockTreeArtifact) error {
	record := model.TreeRecord{
		RunID:       scheduler.RunIDFrom(ctx),
		TreeHeight:  tree.Height,
		FirstHeight: tree.First.Height,
		LastHeight:  tree.Last.Height,
		KeyHash:     tree.Artifact.KeyHash,
		CreatedAt:   r.now().UTC(),
	}
	var err error
	if record.FirstHash, err = bitcoin.BlockHash(tree.First); err != nil {
		return err
	}
	if record.LastHash, err = bitcoin.BlockHash(tree.Last); err != nil {
		return err
	}
	return r.trees.Add(ctx, record)
}

// RecordingTree records every tree next builds successfully.
type RecordingTree struct {
	next     BlockTree
	recorder *Recorder
}

// NewRecordingTree wraps next.
func NewRecordingTree(next BlockTree, recorder *Recorder) *RecordingTree {
	return &RecordingTree{next: next, recorder: recorder}
}

func (t *RecordingTree) Build(ctx context.Context, blocks []model.Block, lastRetarget model.Block) (model.BlockTreeArtifact, error) {
	tree, err := t.next.Build(ctx, blocks, lastRetarget)
	if err != nil {
		return tree, err
	}
	if recErr := t.recorder.RecordTree(ctx, tree); recErr != nil {
		t.recorder.logger.Warn("drop tree record", zap.Int("height", tree.Height), zap.Error(recErr))
	}
	return tree, nil
}
