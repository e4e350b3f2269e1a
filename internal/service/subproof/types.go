package subproof

import (
	"context"

	"github.com/goodnatureofminers/bridgeprover/internal/artifact"
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
	KeyCache interface {
		Load(ctx context.Context, byteLen int) (artifact.DataHashKey, error)
	}
	SourceTemplate interface {
		WriteTo(ctx context.Context, circuitPath, declaration string) error
	}
)
