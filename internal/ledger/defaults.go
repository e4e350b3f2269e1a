package ledger

import (
	"time"

	"github.com/goodnatureofminers/bridgeprover/pkg/batcher"
)

var defaultBatcherConfig = batcher.Config{
	FlushSize:     100,
	FlushInterval: 2 * time.Second,
	FlushAttempts: 3,
	RetryDelay:    500 * time.Millisecond,
	RPS:           5,
}
