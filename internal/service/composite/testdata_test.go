package composite

import (
	"fmt"
	"math/big"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/bridgeprover/internal/model"
	"github.com/goodnatureofminers/bridgeprover/internal/prover"
)

// Coinbase transaction of the genesis block.
const (
	genesisCoinbase = "01000000010000000000000000000000000000000000000000000000000000000000000000ffffffff4d04ffff001d0104455468652054696d65732030332f4a616e2f32303039204368616e63656c6c6f72206f6e206272696e6b206f66207365636f6e64206261696c6f757420666f722062616e6b73ffffffff0100f2052a01000000434104678afdb0fe5548271967f1a67130b7105cd6a828e03909a67962e0ea1f61deb649f6bc3f4cef38c4f35504e51ec112de5c384df7ba0b8d578a4c702b6bf11d5fac00000000"
	genesisTxID     = "4a5e1e4baab89f3a32518a88c31bc87f618f76673e2cc77ab2127b7afdeda33b"
)

const safeHeight = 2016*400 + 100

func testBlock(t *testing.T, height uint64, txns ...string) model.Block {
	t.Helper()
	if len(txns) == 0 {
		txns = []string{fmt.Sprintf("%064x", height)}
	}
	b, err := model.NewBlock(
		height,
		0x20000000,
		fmt.Sprintf("%064x", height-1),
		fmt.Sprintf("%064x", height+1_000_000),
		1_700_000_000+uint32(height%1000),
		0x17034219,
		uint32(height),
		txns,
	)
	if err != nil {
		t.Fatalf("NewBlock(%d): %v", height, err)
	}
	return b
}

func testLPs(n int) []model.LiquidityProvider {
	lps := make([]model.LiquidityProvider, n)
	for i := range lps {
		lps[i] = model.LiquidityProvider{
			Amount:           big.NewInt(int64(1000 * (i + 1))),
			BTCExchangeRate:  uint64(50 + i),
			LockingScriptHex: "0x0014" + strings.Repeat("ab", 20),
		}
	}
	return lps
}

// testRequest returns a request with inner blocks between safe and proposed and confirmations after it.
func testRequest(t *testing.T, inner, confirmations int) Request {
	t.Helper()
	req := Request{
		TxData:         "0x" + genesisCoinbase,
		LPs:            testLPs(2),
		OrderNonce:     "0x" + strings.Repeat("11", 32),
		ExpectedPayout: 3000,
		Retarget:       testBlock(t, 2016*400),
		Safe:           testBlock(t, safeHeight),
	}
	h := uint64(safeHeight) + 1
	for i := 0; i < inner; i++ {
		req.Inner = append(req.Inner, testBlock(t, h))
		h++
	}
	req.Proposed = testBlock(t, h, fmt.Sprintf("%064x", 1), genesisTxID, fmt.Sprintf("%064x", 2))
	h++
	for i := 0; i < confirmations; i++ {
		req.Confirmations = append(req.Confirmations, testBlock(t, h))
		h++
	}
	return req
}

func fields(n int, value string) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = value
	}
	return out
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
	if err := os.MkdirAll(filepath.Join(root, DefaultCircuit, "src"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	return prover.NewWorkspaces(zap.NewNop(), root, t.TempDir())
}
