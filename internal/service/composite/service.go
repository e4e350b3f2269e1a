// Package composite proves a bridge order end to end: it drives every sub-proof and the
// block tree, then folds them into the top-level circuit.
package composite

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/btcsuite/btcd/btcutil"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/goodnatureofminers/bridgeprover/internal/fieldenc"
	"github.com/goodnatureofminers/bridgeprover/internal/model"
	"github.com/goodnatureofminers/bridgeprover/internal/prover"
	"github.com/goodnatureofminers/bridgeprover/internal/scheduler"
	"github.com/goodnatureofminers/bridgeprover/internal/service/subproof"
	"github.com/goodnatureofminers/bridgeprover/internal/witness"
)

// Service produces the final on-chain proof for a Request.
type Service struct {
	gateway    Gateway
	workspaces Workspaces
	subproofs  SubProofs
	tree       BlockTree
	scheduler  Scheduler
	cfg        Config
	logger     *zap.Logger
}

// NewService constructs a Service.
func NewService(
	gateway Gateway,
	workspaces Workspaces,
	subproofs SubProofs,
	tree BlockTree,
	sched Scheduler,
	cfg Config,
	logger *zap.Logger,
) (*Service, error) {
	if sched == nil {
		return nil, errors.New("composite scheduler is required")
	}
	return &Service{
		gateway:    gateway,
		workspaces: workspaces,
		subproofs:  subproofs,
		tree:       tree,
		scheduler:  sched,
		cfg:        cfg.withDefaults(),
		logger:     logger.Named("composite"),
	}, nil
}

// Prove validates req, proves every part concurrently and returns the final proof.
// The first failing part cancels the others.
func (s *Service) Prove(ctx context.Context, req Request) (model.SolidityProofArtifact, error) {
	if err := req.Validate(); err != nil {
		return model.SolidityProofArtifact{}, fmt.Errorf("invalid request: %w", err)
	}
	data, err := fieldenc.HexToBytes(req.TxData)
	if err != nil {
		return model.SolidityProofArtifact{}, err
	}
	merkleProof, err := MerkleProof(req.Proposed, data)
	if err != nil {
		return model.SolidityProofArtifact{}, err
	}

	started := time.Now()
	parts := Parts{Request: req, MerkleProof: merkleProof}
	chain := req.Chain()
	tip := req.Tip()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		job := model.ProofJob{Kind: model.JobDataHash, FirstHeight: req.Proposed.Height, LastHeight: req.Proposed.Height}
		parts.DataHash, err = scheduler.Do(gctx, s.scheduler, job, func(ctx context.Context) (model.SizedProofArtifact, error) {
			return s.subproofs.DataHash(ctx, req.TxData)
		})
		return err
	})
	g.Go(func() error {
		var err error
		job := model.ProofJob{Kind: model.JobLPHash}
		parts.LPHash, err = scheduler.Do(gctx, s.scheduler, job, func(ctx context.Context) (model.ProofArtifact, error) {
			return s.subproofs.LPHash(ctx, req.LPs)
		})
		return err
	})
	g.Go(func() error {
		var err error
		job := model.ProofJob{Kind: model.JobPayment}
		parts.Payment, err = scheduler.Do(gctx, s.scheduler, job, func(ctx context.Context) (model.ProofArtifact, error) {
			return s.subproofs.Payment(ctx, subproof.PaymentRequest{
				TxData:         req.TxData,
				LPs:            req.LPs,
				OrderNonce:     req.OrderNonce,
				ExpectedPayout: req.ExpectedPayout,
			})
		})
		return err
	})
	g.Go(func() error {
		var err error
		parts.BlockTree, err = s.tree.Build(gctx, chain, req.Retarget)
		return err
	})
	if err := g.Wait(); err != nil {
		return model.SolidityProofArtifact{}, err
	}
	s.logger.Info("sub-proofs ready",
		zap.Uint64("safe_height", req.Safe.Height),
		zap.Uint64("tip_height", tip.Height),
		zap.Int("tree_height", parts.BlockTree.Height),
		zap.Stringer("expected_payout", btcutil.Amount(req.ExpectedPayout)),
		zap.Duration("elapsed", time.Since(started)))

	input, err := Assemble(parts)
	if err != nil {
		return model.SolidityProofArtifact{}, err
	}
	job := model.ProofJob{Kind: model.JobComposite, FirstHeight: req.Safe.Height, LastHeight: tip.Height}
	return scheduler.Do(ctx, s.scheduler, job, func(ctx context.Context) (model.SolidityProofArtifact, error) {
		return s.finalProof(ctx, input)
	})
}

func (s *Service) finalProof(ctx context.Context, input witness.CompositeInput) (model.SolidityProofArtifact, error) {
	var proof string
	err := s.workspaces.With(s.cfg.SafeConcurrent, func(ws *prover.Workspace) error {
		path := ws.Path(s.cfg.Circuit)
		if err := s.gateway.Compile(ctx, path); err != nil {
			return err
		}
		if _, err := s.gateway.BuildWitness(ctx, input, path); err != nil {
			return err
		}
		var err error
		proof, err = s.gateway.CreateFinalProof(ctx, s.cfg.Project, path)
		return err
	})
	if err != nil {
		return model.SolidityProofArtifact{}, fmt.Errorf("prove %s: %w", s.cfg.Project, err)
	}
	return model.SolidityProofArtifact{Proof: fieldenc.NormalizeHex(proof)}, nil
}
