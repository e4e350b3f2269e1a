// Package blockproof proves that a run of Bitcoin headers forms a valid chain inside
// one retarget period, composing pair proofs into a binary tree of recursive proofs.
package blockproof

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/bridgeprover/internal/bitcoin"
	"github.com/goodnatureofminers/bridgeprover/internal/fieldenc"
	"github.com/goodnatureofminers/bridgeprover/internal/model"
	"github.com/goodnatureofminers/bridgeprover/internal/prover"
	"github.com/goodnatureofminers/bridgeprover/internal/witness"
)

// NextRetarget is the proof of the following period's checkpoint, supplied when a pair
// crosses a retarget boundary.
type NextRetarget struct {
	Block           model.Block
	VerificationKey []string
	Proof           []string
}

// PairRequest asks for a proof that Second follows First. Isolated forces a private
// copy of the circuits tree regardless of the builder's SafeConcurrent setting.
type PairRequest struct {
	First        model.Block
	Second       model.Block
	LastRetarget model.Block
	NextRetarget *NextRetarget
	Isolated     bool
}

// IsBuffer reports whether the pair links a block to itself.
func (r PairRequest) IsBuffer() bool {
	return r.First.Height == r.Second.Height
}

// PairBuilder proves single block transitions.
type PairBuilder struct {
	gateway    Gateway
	workspaces Workspaces
	cfg        CircuitConfig
	logger     *zap.Logger
}

// NewPairBuilder constructs a PairBuilder.
func NewPairBuilder(gateway Gateway, workspaces Workspaces, cfg CircuitConfig, logger *zap.Logger) *PairBuilder {
	return &PairBuilder{
		gateway:    gateway,
		workspaces: workspaces,
		cfg:        cfg.withDefaults(),
		logger:     logger.Named("pair_builder"),
	}
}

// Build proves req. With SafeConcurrent set, or req.Isolated, the toolchain runs on a
// private copy of the circuits tree, so Build may be called concurrently.
func (b *PairBuilder) Build(ctx context.Context, req PairRequest) (model.BlockRangeProof, error) {
	input, err := PairWitness(req)
	if err != nil {
		return model.BlockRangeProof{}, err
	}

	var artifact model.ProofArtifact
	err = b.workspaces.With(b.cfg.SafeConcurrent || req.Isolated, func(ws *prover.Workspace) error {
		var err error
		artifact, err = prover.Prove(ctx, b.gateway, ws.Path(b.cfg.PairCircuit), input, prover.ProveOptions{
			PublicInputs: model.PairPublicInputs,
			Verify:       b.cfg.Verify,
		})
		return err
	})
	if err != nil {
		return model.BlockRangeProof{}, fmt.Errorf("prove pair %d-%d: %w", req.First.Height, req.Second.Height, err)
	}

	b.logger.Debug("pair proved",
		zap.Uint64("first_height", req.First.Height),
		zap.Uint64("second_height", req.Second.Height),
		zap.Bool("buffer", req.IsBuffer()),
	)
	return model.BlockRangeProof{
		Artifact: artifact,
		First:    req.First,
		Last:     req.Second,
	}, nil
}

// PairWitness builds the pair circuit input for req. Without a next retarget proof, or
// with the null block as next retarget, the retarget slots are zero filled.
func PairWitness(req PairRequest) (witness.PairInput, error) {
	hash1, err := blockHashBytes(req.First)
	if err != nil {
		return witness.PairInput{}, err
	}
	hash2, err := blockHashBytes(req.Second)
	if err != nil {
		return witness.PairInput{}, err
	}
	retargetHash, err := blockHashBytes(req.LastRetarget)
	if err != nil {
		return witness.PairInput{}, err
	}

	next := NextRetarget{Block: model.NullBlock}
	nextHash := make([]int, 32)
	if req.NextRetarget != nil {
		next = *req.NextRetarget
	}
	if !next.Block.IsNull() {
		if nextHash, err = blockHashBytes(next.Block); err != nil {
			return witness.PairInput{}, err
		}
	}
	if next.VerificationKey == nil {
		next.VerificationKey = zeroFields(model.VerificationKeyFields)
	}
	if next.Proof == nil {
		next.Proof = zeroFields(model.ProofFields)
	}

	headers := make([]witness.Header, 4)
	for i, b := range []model.Block{req.First, req.Second, req.LastRetarget, next.Block} {
		if headers[i], err = witness.HeaderOf(b); err != nil {
			return witness.PairInput{}, err
		}
	}

	return witness.PairInput{
		BlockHash1:                  hash1,
		BlockHash2:                  hash2,
		LastRetargetBlockHash:       retargetHash,
		BlockHeight1:                req.First.Height,
		BlockHeight2:                req.Second.Height,
		LastRetargetBlockHeight:     req.LastRetarget.Height,
		IsBuffer:                    req.IsBuffer(),
		NextRetargetHash:            nextHash,
		NextRetargetVerificationKey: next.VerificationKey,
		NextRetargetProof:           next.Proof,
		BlockHeader1:                headers[0],
		BlockHeader2:                headers[1],
		LastRetargetBlock:           headers[2],
		NextRetargetHeader:          headers[3],
	}, nil
}

func blockHashBytes(b model.Block) ([]int, error) {
	hash, err := bitcoin.BlockHash(b)
	if err != nil {
		return nil, fmt.Errorf("hash block %d: %w", b.Height, err)
	}
	return fieldenc.ByteArray(hash)
}

func zeroFields(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = model.ZeroField
	}
	return out
}
