// Package model defines domain models shared by the proving pipeline.
package model

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// Block is a Bitcoin block header plus the ordered txids it commits to.
type Block struct {
	Height        uint64   `json:"height"`
	Version       uint32   `json:"version"`
	PrevBlockHash string   `json:"prev_block_hash"`
	MerkleRoot    string   `json:"merkle_root"`
	Timestamp     uint32   `json:"timestamp"`
	Bits          uint32   `json:"bits"`
	Nonce         uint32   `json:"nonce"`
	Txns          []string `json:"txns"`
}

var zeroHash = strings.Repeat("0", 64)

// NullBlock stands for "no retarget block present".
var NullBlock = Block{
	PrevBlockHash: zeroHash,
	MerkleRoot:    zeroHash,
	Txns:          []string{},
}

// NewBlock builds a validated Block.
func NewBlock(height uint64, version uint32, prevBlockHash, merkleRoot string, timestamp, bits, nonce uint32, txns []string) (Block, error) {
	b := Block{
		Height:        height,
		Version:       version,
		PrevBlockHash: prevBlockHash,
		MerkleRoot:    merkleRoot,
		Timestamp:     timestamp,
		Bits:          bits,
		Nonce:         nonce,
		Txns:          append([]string(nil), txns...),
	}
	if err := b.Validate(); err != nil {
		return Block{}, err
	}
	return b, nil
}

// Validate checks the hash fields and txids are 32-byte hex strings.
func (b Block) Validate() error {
	if err := validateHash32(b.PrevBlockHash); err != nil {
		return fmt.Errorf("block %d prev_block_hash: %w", b.Height, err)
	}
	if err := validateHash32(b.MerkleRoot); err != nil {
		return fmt.Errorf("block %d merkle_root: %w", b.Height, err)
	}
	for i, txid := range b.Txns {
		if err := validateHash32(txid); err != nil {
			return fmt.Errorf("block %d txid %d: %w", b.Height, i, err)
		}
	}
	return nil
}

// RetargetHeight returns the height of the retarget checkpoint starting b's period.
func (b Block) RetargetHeight() uint64 {
	return RetargetHeight(b.Height)
}

// IsNull reports whether b is the NullBlock sentinel.
func (b Block) IsNull() bool {
	return b.Height == 0 && b.Version == 0 && b.Timestamp == 0 && b.Bits == 0 && b.Nonce == 0 &&
		len(b.Txns) == 0 && strings.Trim(NormalizeHex(b.PrevBlockHash), "0") == "" && strings.Trim(NormalizeHex(b.MerkleRoot), "0") == ""
}

// RetargetHeight returns height - height mod 2016.
func RetargetHeight(height uint64) uint64 {
	return height - height%RetargetInterval
}

// NormalizeHex strips surrounding space and an optional 0x or 0X prefix, and lowercases s.
func NormalizeHex(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		s = s[2:]
	}
	return strings.ToLower(s)
}

func validateHash32(s string) error {
	s = NormalizeHex(s)
	if len(s) != 64 {
		return fmt.Errorf("%w: want 32-byte hex, got %d hex chars", ErrEncoding, len(s))
	}
	if _, err := hex.DecodeString(s); err != nil {
		return fmt.Errorf("%w: %v", ErrEncoding, err)
	}
	return nil
}
