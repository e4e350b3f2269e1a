package blockproof

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/golang/mock/gomock"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/bridgeprover/internal/model"
	"github.com/goodnatureofminers/bridgeprover/internal/prover"
)

const periodStart = 2016 * 400

func testBlock(t *testing.T, height uint64) model.Block {
	t.Helper()
	b, err := model.NewBlock(
		height,
		0x20000000,
		fmt.Sprintf("%064x", height-1),
		fmt.Sprintf("%064x", height+1_000_000),
		1_700_000_000+uint32(height%1000),
		0x17034219,
		uint32(height),
		[]string{fmt.Sprintf("%064x", height)},
	)
	if err != nil {
		t.Fatalf("NewBlock(%d): %v", height, err)
	}
	return b
}

func testChain(t *testing.T, n int) []model.Block {
	t.Helper()
	blocks := make([]model.Block, n)
	for i := range blocks {
		blocks[i] = testBlock(t, periodStart+10+uint64(i))
	}
	return blocks
}

func fields(n int, value string) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = value
	}
	return out
}

func keyFields(hash string) []string {
	return append([]string{hash}, fields(model.VerificationKeyFields, "0x2")...)
}

func testArtifact(keyHash string) model.ProofArtifact {
	return model.ProofArtifact{
		VerificationKey: fields(model.VerificationKeyFields, "0x2"),
		Proof:           fields(model.ProofFields, "0x3"),
		PublicInputs:    []string{"0x4"},
		KeyHash:         keyHash,
	}
}

func newWorkspaces(t *testing.T) *prover.Workspaces {
	t.Helper()
	root := t.TempDir()
	for _, dir := range []string{DefaultPairCircuit, DefaultBaseTreeCircuit, DefaultRecursiveTreeCircuit} {
		if err := os.MkdirAll(filepath.Join(root, dir, "src"), 0o755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
	}
	return prover.NewWorkspaces(zap.NewNop(), root, t.TempDir())
}

// expectProve expects one full proving sequence and records the circuit path used.
func expectProve(g *MockGateway, publicInputs int, keyHash string, path *string) {
	g.EXPECT().Compile(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, p string) error {
		if path != nil {
			*path = p
		}
		return nil
	})
	g.EXPECT().BuildWitness(gomock.Any(), gomock.Any(), gomock.Any()).Return([]byte{1}, nil)
	g.EXPECT().BuildVerificationKey(gomock.Any(), prover.DefaultVerificationKeyPath, gomock.Any()).Return(nil)
	g.EXPECT().CreateProof(gomock.Any(), prover.DefaultVerificationKeyPath, publicInputs, gomock.Any()).
		Return([]string{"0x4"}, fields(model.ProofFields, "0x3"), nil)
	g.EXPECT().ExtractVerificationKeyAsFields(gomock.Any(), prover.DefaultVerificationKeyPath, gomock.Any()).
		Return(keyFields(keyHash), nil)
}
