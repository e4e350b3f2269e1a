package model

import "time"

// JobKind names the circuit family a proof job runs.
type JobKind string

const (
	JobPair      JobKind = "pair"
	JobBuffer    JobKind = "buffer"
	JobTreeNode  JobKind = "tree_node"
	JobDataHash  JobKind = "data_hash"
	JobLPHash    JobKind = "lp_hash"
	JobPayment   JobKind = "payment"
	JobComposite JobKind = "composite"
)

// JobStatus is the terminal state of a proof job.
type JobStatus string

const (
	JobSucceeded JobStatus = "succeeded"
	JobFailed    JobStatus = "failed"
)

// ProofJob describes one unit of external proving work.
type ProofJob struct {
	RunID       string
	Kind        JobKind
	Level       int
	FirstHeight uint64
	LastHeight  uint64
	Status      JobStatus
	StartedAt   time.Time
	Duration    time.Duration
	Error       string
}

// TreeRecord is the persisted summary of a finished block tree.
type TreeRecord struct {
	RunID       string
	TreeHeight  int
	FirstHeight uint64
	LastHeight  uint64
	FirstHash   string
	LastHash    string
	KeyHash     string
	CreatedAt   time.Time
}
