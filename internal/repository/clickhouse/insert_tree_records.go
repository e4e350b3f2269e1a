package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/bridgeprover/internal/model"
)

const insertTreeRecordsQuery = `
INSERT INTO block_tree_artifacts (
	run_id,
	tree_height,
	first_height,
	last_height,
	first_hash,
	last_hash,
	key_hash,
	created_at
) VALUES`

// InsertTreeRecords stores the roots of finished block trees.
func (r *Repository) InsertTreeRecords(ctx context.Context, records []model.TreeRecord) (err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("insert_tree_records", len(records), err, start)
	}()

	if len(records) == 0 {
		return nil
	}

	if err = insert(ctx, r.conn, insertTreeRecordsQuery, records, treeRecordRow); err != nil {
		return fmt.Errorf("insert tree records: %w", err)
	}
	return nil
}

func treeRecordRow(t model.TreeRecord) []any {
	return []any{
		t.RunID,
		uint16(t.TreeHeight),
		t.FirstHeight,
		t.LastHeight,
		t.FirstHash,
		t.LastHash,
		t.KeyHash,
		t.CreatedAt,
	}
}
