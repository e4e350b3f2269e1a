package bitcoin

import (
	"fmt"
	"strconv"

	"github.com/btcsuite/btcd/btcjson"

	"github.com/goodnatureofminers/bridgeprover/internal/model"
	"github.com/goodnatureofminers/bridgeprover/pkg/safe"
)

// ParseBits parses a compact difficulty string into a 32-bit value.
func ParseBits(value string) (uint32, error) {
	parsed, err := strconv.ParseUint(value, 16, 32)
	if err != nil {
		return 0, err
	}
	return uint32(parsed), nil
}

// BlockFromVerbose maps a getblock (verbosity 1) result into a model.Block and
// checks that the header hashes to the hash reported by the node.
func BlockFromVerbose(src btcjson.GetBlockVerboseResult) (model.Block, error) {
	bits, err := ParseBits(src.Bits)
	if err != nil {
		return model.Block{}, fmt.Errorf("block %d bits parse: %w", src.Height, err)
	}
	height, err := safe.Uint64(src.Height)
	if err != nil {
		return model.Block{}, fmt.Errorf("block height %d overflow: %w", src.Height, err)
	}
	version, err := safe.Uint32(src.Version)
	if err != nil {
		return model.Block{}, fmt.Errorf("block %d version overflow: %w", src.Height, err)
	}
	timestamp, err := safe.Uint32(src.Time)
	if err != nil {
		return model.Block{}, fmt.Errorf("block %d time overflow: %w", src.Height, err)
	}
	prev := src.PreviousHash
	if prev == "" {
		prev = zeroHash
	}

	block, err := model.NewBlock(height, version, prev, src.MerkleRoot, timestamp, bits, src.Nonce, src.Tx)
	if err != nil {
		return model.Block{}, err
	}
	hash, err := BlockHash(block)
	if err != nil {
		return model.Block{}, err
	}
	if hash != src.Hash {
		return model.Block{}, fmt.Errorf("%w: block %d hashes to %s, node reported %s", model.ErrEncoding, height, hash, src.Hash)
	}
	return block, nil
}
