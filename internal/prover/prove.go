package prover

import (
	"context"
	"errors"
	"fmt"

	"github.com/goodnatureofminers/bridgeprover/internal/model"
	"github.com/goodnatureofminers/bridgeprover/internal/witness"
)

// DefaultVerificationKeyPath is where Prove writes the key, relative to the project.
const DefaultVerificationKeyPath = "./target/vk"

// ProveOptions tunes Prove.
type ProveOptions struct {
	PublicInputs int
	// VKPath defaults to DefaultVerificationKeyPath.
	VKPath string
	// Verify checks the proof against the key before it is returned.
	Verify bool
}

// Prove runs the full proving sequence for one circuit project: compile, witness,
// verification key, proof, optional verification and key extraction.
func Prove(ctx context.Context, g Gateway, circuitPath string, doc witness.Document, opts ProveOptions) (model.ProofArtifact, error) {
	vkPath := opts.VKPath
	if vkPath == "" {
		vkPath = DefaultVerificationKeyPath
	}

	if err := g.Compile(ctx, circuitPath); err != nil {
		return model.ProofArtifact{}, err
	}
	if _, err := g.BuildWitness(ctx, doc, circuitPath); err != nil {
		return model.ProofArtifact{}, err
	}
	if err := g.BuildVerificationKey(ctx, vkPath, circuitPath); err != nil {
		return model.ProofArtifact{}, err
	}
	public, proof, err := g.CreateProof(ctx, vkPath, opts.PublicInputs, circuitPath)
	if err != nil {
		return model.ProofArtifact{}, err
	}
	if opts.Verify {
		ok, err := g.Verify(ctx, vkPath, circuitPath)
		if err != nil {
			return model.ProofArtifact{}, err
		}
		if !ok {
			return model.ProofArtifact{}, model.NewExternalToolError("verify", circuitPath, errors.New("proof rejected"))
		}
	}
	fields, err := g.ExtractVerificationKeyAsFields(ctx, vkPath, circuitPath)
	if err != nil {
		return model.ProofArtifact{}, err
	}
	return ArtifactFromKeyFields(circuitPath, fields, proof, public)
}

// ArtifactFromKeyFields splits extracted key fields into the key hash and the key
// itself and validates the artifact shape.
func ArtifactFromKeyFields(circuitPath string, keyFields, proof, public []string) (model.ProofArtifact, error) {
	if len(keyFields) == 0 {
		return model.ProofArtifact{}, model.NewExternalToolError("extract_vk_as_fields", circuitPath,
			fmt.Errorf("%w: empty key", model.ErrMalformedArtifact))
	}
	artifact, err := model.NewProofArtifact(keyFields[1:], proof, public, keyFields[0])
	if err != nil {
		return model.ProofArtifact{}, model.NewExternalToolError("create_proof", circuitPath, err)
	}
	return artifact, nil
}
