package artifact

import (
	"context"

	"github.com/goodnatureofminers/bridgeprover/internal/prover"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// KeyGateway is the part of the toolchain needed to derive a circuit's key hash.
	KeyGateway interface {
		Compile(ctx context.Context, circuitPath string) error
		BuildVerificationKey(ctx context.Context, vkPath, circuitPath string) error
		ExtractVerificationKeyAsFields(ctx context.Context, vkPath, circuitPath string) ([]string, error)
	}

	// Workspaces hands out circuits trees.
	Workspaces interface {
		With(isolated bool, fn func(ws *prover.Workspace) error) error
	}

	// SourceTemplate renders a parameterized circuit into a project.
	SourceTemplate interface {
		WriteTo(ctx context.Context, circuitPath, declaration string) error
	}
)
