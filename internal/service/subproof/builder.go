// Package subproof proves the transaction level statements composed by the top-level
// circuit: the transaction hash, the reservation commitment and the payment.
package subproof

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/bridgeprover/internal/artifact"
	"github.com/goodnatureofminers/bridgeprover/internal/fieldenc"
	"github.com/goodnatureofminers/bridgeprover/internal/model"
	"github.com/goodnatureofminers/bridgeprover/internal/prover"
	"github.com/goodnatureofminers/bridgeprover/internal/witness"
)

// Builder proves sub-circuits.
type Builder struct {
	gateway    Gateway
	workspaces Workspaces
	keys       KeyCache
	sha        SourceTemplate
	cfg        Config
	logger     *zap.Logger
}

// NewBuilder constructs a Builder. sha renders the sha256 circuit for one byte length.
func NewBuilder(gateway Gateway, workspaces Workspaces, keys KeyCache, sha SourceTemplate, cfg Config, logger *zap.Logger) *Builder {
	return &Builder{
		gateway:    gateway,
		workspaces: workspaces,
		keys:       keys,
		sha:        sha,
		cfg:        cfg.withDefaults(),
		logger:     logger.Named("subproof"),
	}
}

// DataHash proves the sha256 digest of dataHex with the circuit sized for its length.
// The verification key comes from the precomputed key cache.
func (b *Builder) DataHash(ctx context.Context, dataHex string) (model.SizedProofArtifact, error) {
	data, err := fieldenc.HexToBytes(dataHex)
	if err != nil {
		return model.SizedProofArtifact{}, fmt.Errorf("data hash input: %w", err)
	}
	if err := artifact.ValidateByteLength(len(data)); err != nil {
		return model.SizedProofArtifact{}, err
	}
	input, err := DataHashWitness(data)
	if err != nil {
		return model.SizedProofArtifact{}, err
	}
	key, err := b.keys.Load(ctx, len(data))
	if err != nil {
		return model.SizedProofArtifact{}, err
	}
	publicInputs, err := publicInputCount(key.Fields)
	if err != nil {
		return model.SizedProofArtifact{}, err
	}

	var public, proof []string
	err = b.workspaces.With(true, func(ws *prover.Workspace) error {
		path := ws.Path(b.cfg.DataHashCircuit)
		if err := b.sha.WriteTo(ctx, path, prover.ByteLenDeclaration(len(data))); err != nil {
			return err
		}
		if err := os.WriteFile(filepath.Join(path, proxyKeyFile), key.RawBytes, 0o644); err != nil {
			return fmt.Errorf("write proxy key: %w", err)
		}
		if err := b.gateway.Compile(ctx, path); err != nil {
			return err
		}
		if _, err := b.gateway.BuildWitness(ctx, input, path); err != nil {
			return err
		}
		var err error
		public, proof, err = b.gateway.CreateProof(ctx, proxyKeyFile, publicInputs, path)
		return err
	})
	if err != nil {
		return model.SizedProofArtifact{}, fmt.Errorf("prove data hash of %d bytes: %w", len(data), err)
	}

	proofArtifact, err := model.NewProofArtifact(key.Fields, proof, public, key.KeyHash)
	if err != nil {
		return model.SizedProofArtifact{}, model.NewExternalToolError("create_proof", b.cfg.DataHashCircuit, err)
	}
	b.logger.Debug("data hash proved", zap.Int("bytes", len(data)))
	return model.SizedProofArtifact{
		ProofArtifact: proofArtifact,
		KeyHashIndex:  len(data) - 1,
	}, nil
}

// LPHash proves the chained commitment over lps.
func (b *Builder) LPHash(ctx context.Context, lps []model.LiquidityProvider) (model.ProofArtifact, error) {
	input, err := LPHashWitness(lps)
	if err != nil {
		return model.ProofArtifact{}, err
	}
	proof, err := b.prove(ctx, b.cfg.LPHashCircuit, input, model.LPHashPublicInputs)
	if err != nil {
		return model.ProofArtifact{}, fmt.Errorf("prove reservation hash of %d providers: %w", len(lps), err)
	}
	b.logger.Debug("reservation hash proved", zap.Int("providers", len(lps)))
	return proof, nil
}

// Payment proves that the transaction pays the reserved providers.
func (b *Builder) Payment(ctx context.Context, req PaymentRequest) (model.ProofArtifact, error) {
	input, err := PaymentWitness(req)
	if err != nil {
		return model.ProofArtifact{}, err
	}
	proof, err := b.prove(ctx, b.cfg.PaymentCircuit, input, model.PaymentPublicInputs)
	if err != nil {
		return model.ProofArtifact{}, fmt.Errorf("prove payment: %w", err)
	}
	b.logger.Debug("payment proved", zap.Uint64("expected_payout", req.ExpectedPayout))
	return proof, nil
}

func (b *Builder) prove(ctx context.Context, circuit string, input witness.Document, publicInputs int) (model.ProofArtifact, error) {
	var proof model.ProofArtifact
	err := b.workspaces.With(b.cfg.SafeConcurrent, func(ws *prover.Workspace) error {
		var err error
		proof, err = prover.Prove(ctx, b.gateway, ws.Path(circuit), input, prover.ProveOptions{
			PublicInputs: publicInputs,
			Verify:       b.cfg.Verify,
		})
		return err
	})
	return proof, err
}

// publicInputCount reads the public input count the key declares.
func publicInputCount(keyFields []string) (int, error) {
	if len(keyFields) <= publicInputCountField {
		return 0, fmt.Errorf("%w: key has %d fields", model.ErrMalformedArtifact, len(keyFields))
	}
	elems, err := fieldenc.ParseElements(keyFields[publicInputCountField : publicInputCountField+1])
	if err != nil {
		return 0, err
	}
	if !elems[0].IsUint64() {
		return 0, fmt.Errorf("%w: public input count %s", model.ErrMalformedArtifact, keyFields[publicInputCountField])
	}
	return int(elems[0].Uint64()), nil
}
