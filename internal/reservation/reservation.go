// Package reservation encodes liquidity provider reservations for the LP hash and
// payment circuits.
package reservation

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/ethereum/go-ethereum/accounts/abi"

	"github.com/goodnatureofminers/bridgeprover/internal/fieldenc"
	"github.com/goodnatureofminers/bridgeprover/internal/model"
)

var (
	reservationArgs = mustArguments("uint192", "uint64", "bytes32")
	commitmentArgs  = mustArguments("uint192", "uint64", "bytes32", "bytes32")
)

func mustArguments(types ...string) abi.Arguments {
	args := make(abi.Arguments, 0, len(types))
	for _, t := range types {
		typ, err := abi.NewType(t, "", nil)
		if err != nil {
			panic(err)
		}
		args = append(args, abi.Argument{Type: typ})
	}
	return args
}

// Pack returns the ABI encoding of (amount, btc_exchange_rate, locking_script).
func Pack(lp model.LiquidityProvider) ([]byte, error) {
	script, err := lockingScript(lp)
	if err != nil {
		return nil, err
	}
	if err := checkAmount(lp); err != nil {
		return nil, err
	}
	packed, err := reservationArgs.Pack(lp.Amount, lp.BTCExchangeRate, script)
	if err != nil {
		return nil, fmt.Errorf("%w: abi pack: %v", model.ErrEncoding, err)
	}
	return packed, nil
}

// Encode splits one reservation into its four field chunks.
func Encode(lp model.LiquidityProvider) ([]string, error) {
	packed, err := Pack(lp)
	if err != nil {
		return nil, err
	}
	return fieldenc.Chunk(hex.EncodeToString(packed))
}

// EncodeAll encodes lps and pads the result to the circuit's provider capacity.
func EncodeAll(lps []model.LiquidityProvider) ([][]string, error) {
	if len(lps) > model.MaxLiquidityProviders {
		return nil, fmt.Errorf("%w: %d liquidity providers, capacity %d",
			model.ErrCapacity, len(lps), model.MaxLiquidityProviders)
	}
	encoded := make([][]string, len(lps))
	for i, lp := range lps {
		chunks, err := Encode(lp)
		if err != nil {
			return nil, fmt.Errorf("liquidity provider %d: %w", i, err)
		}
		encoded[i] = chunks
	}
	return fieldenc.Pad(encoded, model.MaxLiquidityProviders, emptyReservation())
}

// Flatten concatenates the padded per-provider chunks.
func Flatten(encoded [][]string) []string {
	flat := make([]string, 0, len(encoded)*model.ChunksPerProvider)
	for _, chunks := range encoded {
		flat = append(flat, chunks...)
	}
	return flat
}

// Hash returns the chained sha256 commitment over lps as hex.
func Hash(lps []model.LiquidityProvider) (string, error) {
	var acc [32]byte
	for i, lp := range lps {
		script, err := lockingScript(lp)
		if err != nil {
			return "", fmt.Errorf("liquidity provider %d: %w", i, err)
		}
		if err := checkAmount(lp); err != nil {
			return "", fmt.Errorf("liquidity provider %d: %w", i, err)
		}
		packed, err := commitmentArgs.Pack(lp.Amount, lp.BTCExchangeRate, script, acc)
		if err != nil {
			return "", fmt.Errorf("%w: liquidity provider %d abi pack: %v", model.ErrEncoding, i, err)
		}
		acc = sha256.Sum256(packed)
	}
	return hex.EncodeToString(acc[:]), nil
}

func emptyReservation() []string {
	out := make([]string, model.ChunksPerProvider)
	for i := range out {
		out[i] = model.ZeroField
	}
	return out
}

func lockingScript(lp model.LiquidityProvider) ([32]byte, error) {
	var script [32]byte
	raw, err := fieldenc.HexToBytes(lp.LockingScriptHex)
	if err != nil {
		return script, err
	}
	if len(raw) > len(script) {
		return script, fmt.Errorf("%w: locking script is %d bytes, max %d", model.ErrEncoding, len(raw), len(script))
	}
	copy(script[:], raw)
	return script, nil
}

func checkAmount(lp model.LiquidityProvider) error {
	if lp.Amount == nil || lp.Amount.Sign() < 0 || lp.Amount.BitLen() > 192 {
		return fmt.Errorf("%w: amount %v does not fit uint192", model.ErrEncoding, lp.Amount)
	}
	return nil
}
