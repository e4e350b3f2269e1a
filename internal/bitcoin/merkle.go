package bitcoin

import (
	"fmt"
	"strings"

	"github.com/btcsuite/btcd/chaincfg/chainhash"

	"github.com/goodnatureofminers/bridgeprover/internal/fieldenc"
	"github.com/goodnatureofminers/bridgeprover/internal/model"
)

// MerkleProofStep is one sibling on the path from a leaf to the root.
// Direction is true when the sibling sits to the right of the tracked node.
type MerkleProofStep struct {
	Hash      string
	Direction bool
}

var zeroHash = strings.Repeat("0", chainhash.MaxHashStringSize)

// HashPair combines two display-order hashes the way Bitcoin builds Merkle levels.
func HashPair(left, right string) (string, error) {
	l, err := parseHash(left)
	if err != nil {
		return "", err
	}
	r, err := parseHash(right)
	if err != nil {
		return "", err
	}
	var buf [chainhash.HashSize * 2]byte
	copy(buf[:chainhash.HashSize], l[:])
	copy(buf[chainhash.HashSize:], r[:])
	return chainhash.DoubleHashH(buf[:]).String(), nil
}

// BuildMerkleProof returns the inclusion proof of target among leaves.
// A single leaf yields an empty proof. leaves is not modified.
func BuildMerkleProof(leaves []string, target string) ([]MerkleProofStep, error) {
	level := normalizeAll(leaves)
	target = fieldenc.NormalizeHex(target)

	index := -1
	for i, leaf := range level {
		if leaf == target {
			index = i
			break
		}
	}
	if index < 0 {
		return nil, fmt.Errorf("%w: txid %s is not in the leaf set", model.ErrNotFound, target)
	}

	var proof []MerkleProofStep
	for len(level) > 1 {
		if len(level)%2 == 1 {
			level = append(level, level[len(level)-1])
		}
		if index%2 == 0 {
			proof = append(proof, MerkleProofStep{Hash: level[index+1], Direction: true})
		} else {
			proof = append(proof, MerkleProofStep{Hash: level[index-1], Direction: false})
		}
		next, err := nextLevel(level)
		if err != nil {
			return nil, err
		}
		level = next
		index /= 2
	}
	return proof, nil
}

// MerkleRoot folds leaves into their root.
func MerkleRoot(leaves []string) (string, error) {
	if len(leaves) == 0 {
		return "", fmt.Errorf("%w: empty leaf set", model.ErrNotFound)
	}
	level := normalizeAll(leaves)
	for len(level) > 1 {
		if len(level)%2 == 1 {
			level = append(level, level[len(level)-1])
		}
		next, err := nextLevel(level)
		if err != nil {
			return "", err
		}
		level = next
	}
	if _, err := parseHash(level[0]); err != nil {
		return "", err
	}
	return level[0], nil
}

// ComputeRootFromProof replays proof starting at leaf.
func ComputeRootFromProof(leaf string, proof []MerkleProofStep) (string, error) {
	node := fieldenc.NormalizeHex(leaf)
	for i, step := range proof {
		var err error
		if step.Direction {
			node, err = HashPair(node, step.Hash)
		} else {
			node, err = HashPair(step.Hash, node)
		}
		if err != nil {
			return "", fmt.Errorf("merkle step %d: %w", i, err)
		}
	}
	return node, nil
}

// PadMerkleProof extends proof to depth steps with zero-hash placeholders.
func PadMerkleProof(proof []MerkleProofStep, depth int) ([]MerkleProofStep, error) {
	return fieldenc.Pad(proof, depth, MerkleProofStep{Hash: zeroHash})
}

func nextLevel(level []string) ([]string, error) {
	next := make([]string, 0, len(level)/2)
	for i := 0; i < len(level); i += 2 {
		h, err := HashPair(level[i], level[i+1])
		if err != nil {
			return nil, err
		}
		next = append(next, h)
	}
	return next, nil
}

func normalizeAll(hashes []string) []string {
	out := make([]string, len(hashes), len(hashes)+1)
	for i, h := range hashes {
		out[i] = fieldenc.NormalizeHex(h)
	}
	return out
}
