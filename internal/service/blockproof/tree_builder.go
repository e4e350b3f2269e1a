package blockproof

import (
	"context"
	"errors"
	"fmt"
	"math/bits"
	"time"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/bridgeprover/internal/model"
	"github.com/goodnatureofminers/bridgeprover/pkg/workerpool"
)

// TreeBuilder proves a run of blocks as a binary tree of recursive proofs.
// Levels are barriers; the first failing job fails the whole tree.
type TreeBuilder struct {
	pairs     PairProver
	nodes     NodeProver
	scheduler Scheduler
	metrics   TreeMetrics
	logger    *zap.Logger
}

// NewTreeBuilder constructs a TreeBuilder.
func NewTreeBuilder(pairs PairProver, nodes NodeProver, scheduler Scheduler, metrics TreeMetrics, logger *zap.Logger) (*TreeBuilder, error) {
	if metrics == nil {
		return nil, errors.New("tree builder metrics is required")
	}
	return &TreeBuilder{
		pairs:     pairs,
		nodes:     nodes,
		scheduler: scheduler,
		metrics:   metrics,
		logger:    logger.Named("tree_builder"),
	}, nil
}

// Build proves blocks, given in chain order and all inside lastRetarget's period.
func (t *TreeBuilder) Build(ctx context.Context, blocks []model.Block, lastRetarget model.Block) (tree model.BlockTreeArtifact, err error) {
	started := time.Now()
	defer func() {
		t.metrics.ObserveTree(tree.Height, len(blocks), err, started)
	}()

	if err := ValidateBatch(blocks, lastRetarget); err != nil {
		return model.BlockTreeArtifact{}, err
	}

	pairs := PairRequests(blocks, lastRetarget)
	copies := BufferCount(len(pairs))
	requests := pairs
	if copies > 0 {
		buffer := blocks[len(blocks)-2]
		requests = append(requests[:len(requests):len(requests)], PairRequest{
			First:        buffer,
			Second:       buffer,
			LastRetarget: lastRetarget,
			Isolated:     true,
		})
	}

	logger := t.logger.With(
		zap.Uint64("first_height", blocks[0].Height),
		zap.Uint64("last_height", blocks[len(blocks)-1].Height),
	)
	logger.Info("proving block tree", zap.Int("pairs", len(pairs)), zap.Int("buffers", copies))

	proofs, err := runLevel(ctx, t, model.JobPair, 0, requests, func(ctx context.Context, req PairRequest) (model.BlockRangeProof, error) {
		return t.pairs.Build(ctx, req)
	})
	if err != nil {
		return model.BlockTreeArtifact{}, err
	}

	level := proofs[:len(pairs)]
	if copies > 0 {
		level = InsertBuffers(level, proofs[len(pairs)], copies)
	}

	height := 0
	for len(level) > 1 {
		height++
		nodes := make([]NodeRequest, len(level)/2)
		for i := range nodes {
			nodes[i] = NodeRequest{
				Height:       height,
				Left:         level[2*i],
				Right:        level[2*i+1],
				LastRetarget: lastRetarget,
			}
		}
		level, err = runLevel(ctx, t, model.JobTreeNode, height, nodes, func(ctx context.Context, req NodeRequest) (model.BlockRangeProof, error) {
			return t.nodes.Build(ctx, req)
		})
		if err != nil {
			return model.BlockTreeArtifact{}, err
		}
		logger.Debug("tree level proved", zap.Int("height", height), zap.Int("nodes", len(level)))
	}

	logger.Info("block tree proved", zap.Int("height", height), zap.Duration("elapsed", time.Since(started)))
	return model.BlockTreeArtifact{Height: height, BlockRangeProof: level[0]}, nil
}

type spanned interface {
	span() (first, last uint64, buffer bool)
}

func (r PairRequest) span() (uint64, uint64, bool) {
	return r.First.Height, r.Second.Height, r.IsBuffer()
}

func (r NodeRequest) span() (uint64, uint64, bool) {
	return r.Left.First.Height, r.Right.Last.Height, false
}

// runLevel schedules one job per request and waits for all of them.
func runLevel[R spanned](
	ctx context.Context,
	t *TreeBuilder,
	kind model.JobKind,
	height int,
	requests []R,
	build func(context.Context, R) (model.BlockRangeProof, error),
) (proofs []model.BlockRangeProof, err error) {
	started := time.Now()
	defer func() {
		t.metrics.ObserveLevel(kind, height, len(requests), err, started)
	}()

	return workerpool.Map(ctx, 0, requests, func(ctx context.Context, _ int, req R) (model.BlockRangeProof, error) {
		first, last, buffer := req.span()
		job := model.ProofJob{Kind: kind, Level: height, FirstHeight: first, LastHeight: last}
		if buffer {
			job.Kind = model.JobBuffer
		}
		var proof model.BlockRangeProof
		err := t.scheduler.Run(ctx, job, func(ctx context.Context) error {
			var err error
			proof, err = build(ctx, req)
			return err
		})
		return proof, err
	})
}

// ValidateBatch checks that blocks can be proved as one tree under lastRetarget.
func ValidateBatch(blocks []model.Block, lastRetarget model.Block) error {
	if len(blocks) < 2 {
		return fmt.Errorf("%w: a block tree needs at least 2 blocks, got %d", model.ErrInvalidLength, len(blocks))
	}
	if err := lastRetarget.Validate(); err != nil {
		return err
	}
	for _, b := range blocks {
		if err := b.Validate(); err != nil {
			return err
		}
		if b.RetargetHeight() != lastRetarget.Height {
			return fmt.Errorf("%w: block %d belongs to the period starting at %d, retarget block is %d",
				model.ErrRetargetMismatch, b.Height, b.RetargetHeight(), lastRetarget.Height)
		}
	}
	return nil
}

// PairRequests pairs every block with its successor. The pairs of one level run
// concurrently, so each is isolated.
func PairRequests(blocks []model.Block, lastRetarget model.Block) []PairRequest {
	if len(blocks) < 2 {
		return nil
	}
	pairs := make([]PairRequest, len(blocks)-1)
	for i := range pairs {
		pairs[i] = PairRequest{
			First:        blocks[i],
			Second:       blocks[i+1],
			LastRetarget: lastRetarget,
			Isolated:     true,
		}
	}
	return pairs
}

// LeafCount returns the smallest power of two not below pairs.
func LeafCount(pairs int) int {
	if pairs <= 1 {
		return 1
	}
	return 1 << bits.Len(uint(pairs-1))
}

// BufferCount returns how many buffer pairs round pairs up to LeafCount(pairs).
func BufferCount(pairs int) int {
	if pairs <= 1 {
		return 0
	}
	return LeafCount(pairs) - pairs
}

// InsertBuffers places copies of buffer right before the last element, keeping the
// first and last elements in place.
func InsertBuffers[T any](items []T, buffer T, copies int) []T {
	if copies <= 0 || len(items) == 0 {
		return items
	}
	out := make([]T, 0, len(items)+copies)
	out = append(out, items[:len(items)-1]...)
	for i := 0; i < copies; i++ {
		out = append(out, buffer)
	}
	return append(out, items[len(items)-1])
}
