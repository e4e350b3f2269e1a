package blockproof

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/bridgeprover/internal/model"
	"github.com/goodnatureofminers/bridgeprover/internal/prover"
	"github.com/goodnatureofminers/bridgeprover/internal/witness"
)

// NodeRequest asks for a proof of Left.First..Right.Last at tree Height.
// Height 1 composes two pair proofs; higher nodes compose two nodes of Height-1.
type NodeRequest struct {
	Height       int
	Left         model.BlockRangeProof
	Right        model.BlockRangeProof
	LastRetarget model.Block
}

// NodeBuilder proves tree nodes. Every node runs in an isolated workspace because
// recursive circuits are templated per height.
type NodeBuilder struct {
	gateway    Gateway
	workspaces Workspaces
	trees      TreeCircuits
	template   SourceTemplate
	cfg        CircuitConfig
	logger     *zap.Logger
}

// NewNodeBuilder constructs a NodeBuilder. template renders the recursive tree circuit.
func NewNodeBuilder(gateway Gateway, workspaces Workspaces, trees TreeCircuits, template SourceTemplate, cfg CircuitConfig, logger *zap.Logger) *NodeBuilder {
	return &NodeBuilder{
		gateway:    gateway,
		workspaces: workspaces,
		trees:      trees,
		template:   template,
		cfg:        cfg.withDefaults(),
		logger:     logger.Named("node_builder"),
	}
}

// Build proves req.
func (b *NodeBuilder) Build(ctx context.Context, req NodeRequest) (model.BlockRangeProof, error) {
	if req.Height < 1 {
		return model.BlockRangeProof{}, fmt.Errorf("%w: tree node height %d", model.ErrInvalidLength, req.Height)
	}
	if req.Left.Last.Height != req.Right.First.Height {
		return model.BlockRangeProof{}, fmt.Errorf("%w: children %d-%d and %d-%d do not join",
			model.ErrMalformedArtifact, req.Left.First.Height, req.Left.Last.Height, req.Right.First.Height, req.Right.Last.Height)
	}

	circuit := b.cfg.BaseTreeCircuit
	var declaration string
	if req.Height > 1 {
		if err := b.checkChildren(ctx, req); err != nil {
			return model.BlockRangeProof{}, err
		}
		var err error
		if declaration, err = b.trees.Declaration(ctx, req.Height); err != nil {
			return model.BlockRangeProof{}, err
		}
		circuit = b.cfg.RecursiveTreeCircuit
	}

	input, err := NodeWitness(req)
	if err != nil {
		return model.BlockRangeProof{}, err
	}

	var artifact model.ProofArtifact
	err = b.workspaces.With(true, func(ws *prover.Workspace) error {
		path := ws.Path(circuit)
		if declaration != "" {
			if err := b.template.WriteTo(ctx, path, declaration); err != nil {
				return err
			}
		}
		var err error
		artifact, err = prover.Prove(ctx, b.gateway, path, input, prover.ProveOptions{
			PublicInputs: model.TreePublicInputs,
			Verify:       b.cfg.Verify,
		})
		return err
	})
	if err != nil {
		return model.BlockRangeProof{}, fmt.Errorf("prove tree node %d-%d at height %d: %w",
			req.Left.First.Height, req.Right.Last.Height, req.Height, err)
	}

	b.logger.Debug("tree node proved",
		zap.Int("height", req.Height),
		zap.Uint64("first_height", req.Left.First.Height),
		zap.Uint64("last_height", req.Right.Last.Height),
	)
	return model.BlockRangeProof{
		Artifact: artifact,
		First:    req.Left.First,
		Last:     req.Right.Last,
	}, nil
}

func (b *NodeBuilder) checkChildren(ctx context.Context, req NodeRequest) error {
	want, err := b.trees.KeyHash(ctx, req.Height-1)
	if err != nil {
		return err
	}
	for _, child := range []model.BlockRangeProof{req.Left, req.Right} {
		if child.Artifact.KeyHash != want {
			return fmt.Errorf("%w: child %d-%d has key hash %s, height %d circuit expects %s",
				model.ErrMalformedArtifact, child.First.Height, child.Last.Height, child.Artifact.KeyHash, req.Height-1, want)
		}
	}
	return nil
}

// NodeWitness builds the tree circuit input joining req.Left and req.Right at the
// first block of req.Right.
func NodeWitness(req NodeRequest) (witness.TreeInput, error) {
	var errs []error
	hashOf := func(b model.Block) []int {
		h, err := blockHashBytes(b)
		errs = append(errs, err)
		return h
	}
	input := witness.TreeInput{
		FirstBlockHash:           hashOf(req.Left.First),
		LastBlockHash:            hashOf(req.Right.Last),
		FirstBlockHeight:         req.Left.First.Height,
		LastBlockHeight:          req.Right.Last.Height,
		FirstIsBuffer:            req.Left.IsBuffer(),
		LastIsBuffer:             req.Right.IsBuffer(),
		LastRetargetBlockHash:    hashOf(req.LastRetarget),
		LastRetargetBlockHeight:  req.LastRetarget.Height,
		LinkBlockHash:            hashOf(req.Right.First),
		FirstPairVerificationKey: req.Left.Artifact.VerificationKey,
		FirstPairProof:           req.Left.Artifact.Proof,
		LastPairVerificationKey:  req.Right.Artifact.VerificationKey,
		LastPairProof:            req.Right.Artifact.Proof,
	}
	if err := errors.Join(errs...); err != nil {
		return witness.TreeInput{}, err
	}
	return input, nil
}
