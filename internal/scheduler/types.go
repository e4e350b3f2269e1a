package scheduler

import (
	"context"

	"github.com/goodnatureofminers/bridgeprover/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Observer is notified about every admitted proof job.
	Observer interface {
		JobStarted(ctx context.Context, job model.ProofJob)
		JobFinished(ctx context.Context, job model.ProofJob)
	}

	// Runner admits proof jobs.
	Runner interface {
		Run(ctx context.Context, job model.ProofJob, fn func(context.Context) error) error
	}
)
