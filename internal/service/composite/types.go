package composite

import (
	"context"

	"github.com/goodnatureofminers/bridgeprover/internal/model"
	"github.com/goodnatureofminers/bridgeprover/internal/prover"
	"github.com/goodnatureofminers/bridgeprover/internal/service/subproof"
	"github.com/goodnatureofminers/bridgeprover/internal/witness"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Gateway interface {
		Compile(ctx context.Context, circuitPath string) error
		BuildWitness(ctx context.Context, doc witness.Document, circuitPath string) ([]byte, error)
		CreateFinalProof(ctx context.Context, project, circuitPath string) (string, error)
	}
	Workspaces interface {
		With(isolated bool, fn func(ws *prover.Workspace) error) error
	}
	SubProofs interface {
		DataHash(ctx context.Context, dataHex string) (model.SizedProofArtifact, error)
		LPHash(ctx context.Context, lps []model.LiquidityProvider) (model.ProofArtifact, error)
		Payment(ctx context.Context, req subproof.PaymentRequest) (model.ProofArtifact, error)
	}
	BlockTree interface {
		Build(ctx context.Context, blocks []model.Block, lastRetarget model.Block) (model.BlockTreeArtifact, error)
	}
	BlockSource interface {
		FetchBlock(ctx context.Context, height uint64) (model.Block, error)
		FetchRange(ctx context.Context, from, to uint64) ([]model.Block, error)
	}
	Scheduler interface {
		Run(ctx context.Context, job model.ProofJob, fn func(context.Context) error) error
	}
)
