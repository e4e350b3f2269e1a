package composite

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/goodnatureofminers/bridgeprover/internal/bitcoin"
	"github.com/goodnatureofminers/bridgeprover/internal/fieldenc"
	"github.com/goodnatureofminers/bridgeprover/internal/model"
	"github.com/goodnatureofminers/bridgeprover/internal/reservation"
	"github.com/goodnatureofminers/bridgeprover/internal/witness"
)

// Parts are the inputs of the top-level circuit.
type Parts struct {
	Request
	MerkleProof []bitcoin.MerkleProofStep
	DataHash    model.SizedProofArtifact
	LPHash      model.ProofArtifact
	Payment     model.ProofArtifact
	BlockTree   model.BlockTreeArtifact
}

// TxHashes returns the first sha256 of data and the txid in internal byte order.
func TxHashes(data []byte) (intermediate, txHash [32]byte) {
	intermediate = sha256.Sum256(data)
	txHash = sha256.Sum256(intermediate[:])
	return intermediate, txHash
}

// TxID returns the display-order id of the transaction serialized as data.
func TxID(data []byte) string {
	_, h := TxHashes(data)
	for i, j := 0, len(h)-1; i < j; i, j = i+1, j-1 {
		h[i], h[j] = h[j], h[i]
	}
	return hex.EncodeToString(h[:])
}

// MerkleProof proves the inclusion of the transaction serialized as data in block.
func MerkleProof(block model.Block, data []byte) ([]bitcoin.MerkleProofStep, error) {
	proof, err := bitcoin.BuildMerkleProof(block.Txns, TxID(data))
	if err != nil {
		return nil, fmt.Errorf("payment in block %d: %w", block.Height, err)
	}
	if len(proof) > model.MerkleProofDepth {
		return nil, fmt.Errorf("%w: merkle proof has %d steps, max %d", model.ErrCapacity, len(proof), model.MerkleProofDepth)
	}
	return proof, nil
}

// Assemble builds the top-level circuit input. Field order is fixed by witness.CompositeInput.
func Assemble(p Parts) (witness.CompositeInput, error) {
	data, err := fieldenc.HexToBytes(p.TxData)
	if err != nil {
		return witness.CompositeInput{}, fmt.Errorf("transaction data: %w", err)
	}
	nonce, err := fieldenc.HexToBytes(p.OrderNonce)
	if err != nil {
		return witness.CompositeInput{}, fmt.Errorf("order nonce: %w", err)
	}
	intermediate, txHash := TxHashes(data)

	txEncoded, err := fieldenc.Pad(fieldenc.ChunkBytes(data), model.MaxEncodedChunks, model.ZeroField)
	if err != nil {
		return witness.CompositeInput{}, fmt.Errorf("encode transaction: %w", err)
	}
	merkleRoot, err := fieldenc.Chunk(p.Proposed.MerkleRoot)
	if err != nil {
		return witness.CompositeInput{}, fmt.Errorf("proposed merkle root: %w", err)
	}

	lpHash, err := reservation.Hash(p.LPs)
	if err != nil {
		return witness.CompositeInput{}, err
	}
	lpHashEncoded, err := fieldenc.Chunk(lpHash)
	if err != nil {
		return witness.CompositeInput{}, err
	}
	lpData, err := reservation.EncodeAll(p.LPs)
	if err != nil {
		return witness.CompositeInput{}, err
	}

	blockHashes := make([][]string, 4)
	for i, b := range []model.Block{p.Tip(), p.Proposed, p.Safe, p.Retarget} {
		if blockHashes[i], err = encodedBlockHash(b); err != nil {
			return witness.CompositeInput{}, err
		}
	}

	steps, err := bitcoin.PadMerkleProof(p.MerkleProof, model.MerkleProofDepth)
	if err != nil {
		return witness.CompositeInput{}, err
	}
	merkleProof := make([]witness.MerkleStep, len(steps))
	for i, s := range steps {
		hash, err := fieldenc.ByteArray(s.Hash)
		if err != nil {
			return witness.CompositeInput{}, fmt.Errorf("merkle proof step %d: %w", i, err)
		}
		merkleProof[i] = witness.MerkleStep{Hash: hash, Direction: s.Direction}
	}

	if p.Tip().Height < p.Safe.Height {
		return witness.CompositeInput{}, fmt.Errorf("%w: tip %d below safe block %d", model.ErrInvalidLength, p.Tip().Height, p.Safe.Height)
	}

	return witness.CompositeInput{
		TxnHashEncoded:                   fieldenc.ChunkBytes(txHash[:]),
		IntermediateHashEncodedAndTxData: append(fieldenc.ChunkBytes(intermediate[:]), txEncoded...),
		ProposedMerkleRootEncoded:        merkleRoot,
		LPReservationHashEncoded:         lpHashEncoded,
		OrderNonceEncoded:                fieldenc.ChunkBytes(nonce),
		ExpectedPayout:                   p.ExpectedPayout,
		LPCount:                          len(p.LPs),
		LPReservationDataFlatEncoded:     reservation.Flatten(lpData),
		ConfirmationBlockHashEncoded:     blockHashes[0],
		ProposedBlockHashEncoded:         blockHashes[1],
		SafeBlockHashEncoded:             blockHashes[2],
		RetargetBlockHashEncoded:         blockHashes[3],
		SafeBlockHeight:                  p.Safe.Height,
		BlockHeightDelta:                 p.Tip().Height - p.Safe.Height,
		LPHashVerificationKey:            p.LPHash.VerificationKey,
		LPHashProof:                      p.LPHash.Proof,
		TxnHashVerificationKey:           p.DataHash.VerificationKey,
		TxnHashProof:                     p.DataHash.Proof,
		TxnHashVKHashIndex:               p.DataHash.KeyHashIndex,
		PaymentVerificationKey:           p.Payment.VerificationKey,
		PaymentProof:                     p.Payment.Proof,
		BlockVerificationKey:             p.BlockTree.Artifact.VerificationKey,
		BlockProof:                       p.BlockTree.Artifact.Proof,
		ProposedMerkleProof:              merkleProof,
	}, nil
}

func encodedBlockHash(b model.Block) ([]string, error) {
	hash, err := bitcoin.BlockHash(b)
	if err != nil {
		return nil, fmt.Errorf("hash block %d: %w", b.Height, err)
	}
	return fieldenc.Chunk(hash)
}
