package prover

import (
	"context"
	"time"

	"github.com/goodnatureofminers/bridgeprover/internal/witness"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Gateway drives the external circuit toolchain. Every path is a circuit project directory;
	// relative key paths resolve against it.
	Gateway interface {
		Compile(ctx context.Context, circuitPath string) error
		BuildWitness(ctx context.Context, doc witness.Document, circuitPath string) ([]byte, error)
		BuildVerificationKey(ctx context.Context, vkPath, circuitPath string) error
		CreateProof(ctx context.Context, vkPath string, publicInputs int, circuitPath string) (public, proof []string, err error)
		Verify(ctx context.Context, vkPath, circuitPath string) (bool, error)
		ExtractVerificationKeyAsFields(ctx context.Context, vkPath, circuitPath string) ([]string, error)
		CreateFinalProof(ctx context.Context, project, circuitPath string) (string, error)
	}

	// CommandRunner executes one toolchain command inside dir.
	CommandRunner interface {
		Run(ctx context.Context, dir, name string, args ...string) ([]byte, error)
	}

	// GatewayMetrics records toolchain call outcomes.
	GatewayMetrics interface {
		Observe(operation string, err error, started time.Time)
	}
)
