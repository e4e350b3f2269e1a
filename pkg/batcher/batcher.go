// Package batcher buffers items and hands them to a flush callback in batches.
package batcher

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/ratelimit"
	"go.uber.org/zap"
)

// Config tunes a Batcher. Zero RPS disables flush pacing; zero FlushAttempts means one.
type Config struct {
	FlushSize     int
	FlushInterval time.Duration
	FlushTimeout  time.Duration
	FlushAttempts int
	RetryDelay    time.Duration
	RPS           int
}

const (
	defaultFlushTimeout = 10 * time.Second
	defaultRetryDelay   = 200 * time.Millisecond
)

func (c Config) withDefaults() Config {
	if c.FlushSize <= 0 {
		c.FlushSize = 1
	}
	if c.FlushInterval <= 0 {
		c.FlushInterval = time.Second
	}
	if c.FlushTimeout <= 0 {
		c.FlushTimeout = defaultFlushTimeout
	}
	if c.FlushAttempts <= 0 {
		c.FlushAttempts = 1
	}
	if c.RetryDelay <= 0 {
		c.RetryDelay = defaultRetryDelay
	}
	return c
}

// Stats counts items that reached the callback successfully and items given up on.
type Stats struct {
	Flushed uint64
	Dropped uint64
}

// Batcher flushes buffered items when FlushSize is reached or FlushInterval passes.
// Items still buffered on shutdown are flushed with a detached context so a canceled
// run still persists what it produced.
type Batcher[T any] struct {
	flush  func(context.Context, []T) error
	items  chan T
	cfg    Config
	rl     ratelimit.Limiter
	logger *zap.Logger

	flushed atomic.Uint64
	dropped atomic.Uint64

	wg       sync.WaitGroup
	stop     chan struct{}
	stopOnce sync.Once
}

// New constructs a Batcher.
func New[T any](logger *zap.Logger, flush func(context.Context, []T) error, cfg Config) *Batcher[T] {
	cfg = cfg.withDefaults()
	rl := ratelimit.NewUnlimited()
	if cfg.RPS > 0 {
		rl = ratelimit.New(cfg.RPS)
	}
	return &Batcher[T]{
		flush:  flush,
		items:  make(chan T, cfg.FlushSize*2),
		cfg:    cfg,
		rl:     rl,
		logger: logger,
		stop:   make(chan struct{}),
	}
}

// Start begins the background flushing loop.
func (b *Batcher[T]) Start(ctx context.Context) {
	b.wg.Add(1)
	go b.run(ctx)
}

// Stop flushes what is buffered and stops the loop. It is safe to call more than once.
func (b *Batcher[T]) Stop() {
	b.stopOnce.Do(func() {
		close(b.stop)
	})
	b.wg.Wait()
}

// Stats reports the counters so far.
func (b *Batcher[T]) Stats() Stats {
	return Stats{Flushed: b.flushed.Load(), Dropped: b.dropped.Load()}
}

// Add queues an item, respecting context cancellation. A stopped batcher rejects
// items with context.Canceled.
func (b *Batcher[T]) Add(ctx context.Context, item T) error {
	select {
	case <-b.stop:
		return context.Canceled
	default:
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-b.stop:
		return context.Canceled
	case b.items <- item:
		return nil
	}
}

func (b *Batcher[T]) run(ctx context.Context) {
	defer b.wg.Done()

	ticker := time.NewTicker(b.cfg.FlushInterval)
	defer ticker.Stop()

	buf := make([]T, 0, b.cfg.FlushSize)
	for {
		select {
		case <-ctx.Done():
			b.final(ctx, buf)
			return

		case <-b.stop:
			b.final(ctx, buf)
			return

		case item := <-b.items:
			buf = append(buf, item)
			if len(buf) >= b.cfg.FlushSize {
				buf = b.take(ctx, buf)
			}

		case <-ticker.C:
			buf = b.take(ctx, buf)
		}
	}
}

// take flushes a copy of buf and returns it emptied.
func (b *Batcher[T]) take(ctx context.Context, buf []T) []T {
	if len(buf) == 0 {
		return buf
	}
	batch := make([]T, len(buf))
	copy(batch, buf)
	b.send(ctx, batch)
	return buf[:0]
}

// final drains queued items and flushes them with a bounded context that ignores cancellation.
func (b *Batcher[T]) final(ctx context.Context, buf []T) {
drain:
	for {
		select {
		case item := <-b.items:
			buf = append(buf, item)
		default:
			break drain
		}
	}
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), b.cfg.FlushTimeout)
	defer cancel()
	b.take(ctx, buf)
}

func (b *Batcher[T]) send(ctx context.Context, batch []T) {
	exp := backoff.NewExponentialBackOff()
	exp.InitialInterval = b.cfg.RetryDelay
	exp.MaxElapsedTime = 0
	exp.Reset()
	policy := backoff.WithContext(backoff.WithMaxRetries(exp, uint64(b.cfg.FlushAttempts-1)), ctx)

	err := backoff.RetryNotify(func() error {
		b.rl.Take()
		return b.flush(ctx, batch)
	}, policy, func(err error, wait time.Duration) {
		b.logger.Warn("batch flush failed, retrying",
			zap.Int("size", len(batch)),
			zap.Duration("wait", wait),
			zap.Error(err))
	})
	if err != nil {
		b.dropped.Add(uint64(len(batch)))
		b.logger.Error("batch not flushed", zap.Int("size", len(batch)), zap.Error(err))
		return
	}
	b.flushed.Add(uint64(len(batch)))
	b.logger.Debug("batch flushed", zap.Int("size", len(batch)))
}
