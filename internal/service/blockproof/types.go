package blockproof

import (
	"context"
	"time"

	"github.com/goodnatureofminers/bridgeprover/internal/model"
	"github.com/goodnatureofminers/bridgeprover/internal/prover"
	"github.com/goodnatureofminers/bridgeprover/internal/witness"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Gateway interface {
		Compile(ctx context.Context, circuitPath string) error
		BuildWitness(ctx context.Context, doc witness.Document, circuitPath string) ([]byte, error)
		BuildVerificationKey(ctx context.Context, vkPath, circuitPath string) error
		CreateProof(ctx context.Context, vkPath string, publicInputs int, circuitPath string) (public, proof []string, err error)
		Verify(ctx context.Context, vkPath, circuitPath string) (bool, error)
		ExtractVerificationKeyAsFields(ctx context.Context, vkPath, circuitPath string) ([]string, error)
		CreateFinalProof(ctx context.Context, project, circuitPath string) (string, error)
	}
	Workspaces interface {
		With(isolated bool, fn func(ws *prover.Workspace) error) error
	}
	// TreeCircuits yields the key hash committed by the tree circuit at each height.
	TreeCircuits interface {
		KeyHash(ctx context.Context, height int) (string, error)
		Declaration(ctx context.Context, height int) (string, error)
	}
	SourceTemplate interface {
		WriteTo(ctx context.Context, circuitPath, declaration string) error
	}
	Scheduler interface {
		Run(ctx context.Context, job model.ProofJob, fn func(context.Context) error) error
	}

	PairProver interface {
		Build(ctx context.Context, req PairRequest) (model.BlockRangeProof, error)
	}
	NodeProver interface {
		Build(ctx context.Context, req NodeRequest) (model.BlockRangeProof, error)
	}

	TreeMetrics interface {
		ObserveLevel(kind model.JobKind, level, jobs int, err error, started time.Time)
		ObserveTree(height, blocks int, err error, started time.Time)
	}
)
