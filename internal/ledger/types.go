package ledger

import (
	"context"

	"github.com/goodnatureofminers/bridgeprover/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Repository interface {
		InsertProofJobs(ctx context.Context, jobs []model.ProofJob) error
		InsertTreeRecords(ctx context.Context, records []model.TreeRecord) error
	}
	BlockTree interface {
		Build(ctx context.Context, blocks []model.Block, lastRetarget model.Block) (model.BlockTreeArtifact, error)
	}
)
