package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/bridgeprover/internal/model"
)

const insertProofJobsQuery = `
INSERT INTO proof_jobs (
	run_id,
	kind,
	level,
	first_height,
	last_height,
	status,
	started_at,
	duration_ms,
	error
) VALUES`

// InsertProofJobs stores finished proof jobs.
func (r *Repository) InsertProofJobs(ctx context.Context, jobs []model.ProofJob) (err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("insert_proof_jobs", len(jobs), err, start)
	}()

	if len(jobs) == 0 {
		return nil
	}

	if err = insert(ctx, r.conn, insertProofJobsQuery, jobs, proofJobRow); err != nil {
		return fmt.Errorf("insert proof jobs: %w", err)
	}
	return nil
}

func proofJobRow(j model.ProofJob) []any {
	return []any{
		j.RunID,
		string(j.Kind),
		uint16(j.Level),
		j.FirstHeight,
		j.LastHeight,
		string(j.Status),
		j.StartedAt,
		uint64(j.Duration.Milliseconds()),
		j.Error,
	}
}
