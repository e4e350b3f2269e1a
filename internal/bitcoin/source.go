package bitcoin

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/btcsuite/btcd/btcjson"
	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/bridgeprover/internal/clock"
	"github.com/goodnatureofminers/bridgeprover/internal/model"
	"github.com/goodnatureofminers/bridgeprover/pkg/safe"
	"github.com/goodnatureofminers/bridgeprover/pkg/workerpool"
)

// RetryPolicy bounds the node calls of FetchBlock. Attempts counts the first call.
type RetryPolicy struct {
	Attempts int
	Initial  time.Duration
	Max      time.Duration
}

var defaultRetryPolicy = RetryPolicy{
	Attempts: 3,
	Initial:  500 * time.Millisecond,
	Max:      5 * time.Second,
}

func (p RetryPolicy) backOff(ctx context.Context) backoff.BackOffContext {
	exp := backoff.NewExponentialBackOff()
	exp.InitialInterval = p.Initial
	if p.Max > 0 {
		exp.MaxInterval = p.Max
	}
	exp.MaxElapsedTime = 0
	exp.Reset()
	retries := uint64(max(p.Attempts, 1) - 1)
	return backoff.WithContext(backoff.WithMaxRetries(exp, retries), ctx)
}

// BlockSource reads blocks from a Bitcoin node.
type BlockSource struct {
	rpc     NodeClient
	workers int
	retry   RetryPolicy
	logger  *zap.Logger
}

// NewBlockSource creates a BlockSource fetching at most workers blocks at once.
func NewBlockSource(rpc NodeClient, workers int) *BlockSource {
	return &BlockSource{
		rpc:     rpc,
		workers: workers,
		retry:   defaultRetryPolicy,
		logger:  zap.NewNop(),
	}
}

// WithRetry replaces the retry policy of FetchBlock.
func (s *BlockSource) WithRetry(p RetryPolicy) *BlockSource {
	s.retry = p
	return s
}

// WithLogger sets the logger reporting retried fetches.
func (s *BlockSource) WithLogger(logger *zap.Logger) *BlockSource {
	s.logger = logger.Named("block_source")
	return s
}

// LatestHeight returns the latest block height from the node.
func (s *BlockSource) LatestHeight(_ context.Context) (uint64, error) {
	count, err := s.rpc.GetBlockCount()
	if err != nil {
		return 0, err
	}
	height, err := safe.Uint64(count)
	if err != nil {
		return 0, fmt.Errorf("block count overflow: %w", err)
	}
	return height, nil
}

// FetchBlock retrieves the header and txids of the block at height.
// Node errors are retried; decoding errors are not.
func (s *BlockSource) FetchBlock(ctx context.Context, height uint64) (model.Block, error) {
	if height > math.MaxInt64 {
		return model.Block{}, fmt.Errorf("block height %d exceeds rpc limit", height)
	}
	var block model.Block
	attempt := 0
	err := backoff.RetryNotify(func() error {
		attempt++
		src, err := s.fetchVerbose(height)
		if err != nil {
			return err
		}
		if block, err = BlockFromVerbose(*src); err != nil {
			return backoff.Permanent(err)
		}
		return nil
	}, s.retry.backOff(ctx), func(err error, wait time.Duration) {
		s.logger.Warn("block fetch failed, retrying",
			zap.Uint64("height", height),
			zap.Int("attempt", attempt),
			zap.Duration("wait", wait),
			zap.Error(err))
	})
	if err != nil {
		return model.Block{}, err
	}
	return block, nil
}

// WaitForHeight polls the node every interval until it reports at least height,
// and returns the height it reached.
func (s *BlockSource) WaitForHeight(ctx context.Context, height uint64, interval time.Duration) (uint64, error) {
	var latest uint64
	err := clock.Poll(ctx, interval, func(ctx context.Context) (bool, error) {
		var err error
		if latest, err = s.LatestHeight(ctx); err != nil {
			return false, err
		}
		if latest >= height {
			return true, nil
		}
		s.logger.Info("waiting for node to reach height",
			zap.Uint64("height", height),
			zap.Uint64("latest", latest))
		return false, nil
	})
	if err != nil {
		return latest, fmt.Errorf("wait for height %d: %w", height, err)
	}
	return latest, nil
}

func (s *BlockSource) fetchVerbose(height uint64) (*btcjson.GetBlockVerboseResult, error) {
	hash, err := s.rpc.GetBlockHash(int64(height))
	if err != nil {
		return nil, fmt.Errorf("get block hash at height %d: %w", height, err)
	}
	src, err := s.rpc.GetBlockVerbose(hash)
	if err != nil {
		return nil, fmt.Errorf("get block %s: %w", hash, err)
	}
	return src, nil
}

// FetchRange retrieves blocks from..to inclusive, in height order.
func (s *BlockSource) FetchRange(ctx context.Context, from, to uint64) ([]model.Block, error) {
	if to < from {
		return nil, fmt.Errorf("%w: empty block range %d..%d", model.ErrInvalidLength, from, to)
	}
	heights := make([]uint64, 0, to-from+1)
	for h := from; h <= to; h++ {
		heights = append(heights, h)
	}
	return workerpool.Map(ctx, s.workers, heights, func(ctx context.Context, _ int, height uint64) (model.Block, error) {
		return s.FetchBlock(ctx, height)
	})
}
