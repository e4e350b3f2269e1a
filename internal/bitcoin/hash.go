// Package bitcoin implements Bitcoin header hashing, Merkle inclusion proofs and
// block retrieval from a node.
package bitcoin

import (
	"fmt"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"

	"github.com/goodnatureofminers/bridgeprover/internal/fieldenc"
	"github.com/goodnatureofminers/bridgeprover/internal/model"
)

// Header builds the 80-byte wire header for b.
func Header(b model.Block) (wire.BlockHeader, error) {
	prev, err := parseHash(b.PrevBlockHash)
	if err != nil {
		return wire.BlockHeader{}, fmt.Errorf("block %d prev_block_hash: %w", b.Height, err)
	}
	merkle, err := parseHash(b.MerkleRoot)
	if err != nil {
		return wire.BlockHeader{}, fmt.Errorf("block %d merkle_root: %w", b.Height, err)
	}
	return wire.BlockHeader{
		Version:    int32(b.Version),
		PrevBlock:  *prev,
		MerkleRoot: *merkle,
		Timestamp:  time.Unix(int64(b.Timestamp), 0),
		Bits:       b.Bits,
		Nonce:      b.Nonce,
	}, nil
}

// BlockHash returns the display-order double SHA-256 of b's header.
func BlockHash(b model.Block) (string, error) {
	header, err := Header(b)
	if err != nil {
		return "", err
	}
	return header.BlockHash().String(), nil
}

// parseHash decodes a display-order hash; chainhash stores it byte-reversed.
func parseHash(s string) (*chainhash.Hash, error) {
	s = fieldenc.NormalizeHex(s)
	if len(s) != chainhash.MaxHashStringSize {
		return nil, fmt.Errorf("%w: want %d hex chars, got %d", model.ErrEncoding, chainhash.MaxHashStringSize, len(s))
	}
	h, err := chainhash.NewHashFromStr(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrEncoding, err)
	}
	return h, nil
}
