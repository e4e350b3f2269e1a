package model

import "fmt"

// ProofArtifact is a verification key, proof and public inputs triple as field numerals.
type ProofArtifact struct {
	VerificationKey []string `json:"verification_key"`
	Proof           []string `json:"proof"`
	PublicInputs    []string `json:"public_inputs"`
	KeyHash         string   `json:"key_hash"`
}

// NewProofArtifact validates the key and proof sizes expected by the recursive verifiers.
func NewProofArtifact(verificationKey, proof, publicInputs []string, keyHash string) (ProofArtifact, error) {
	if len(verificationKey) != VerificationKeyFields {
		return ProofArtifact{}, fmt.Errorf("%w: verification key has %d fields, want %d",
			ErrMalformedArtifact, len(verificationKey), VerificationKeyFields)
	}
	if len(proof) != ProofFields {
		return ProofArtifact{}, fmt.Errorf("%w: proof has %d fields, want %d",
			ErrMalformedArtifact, len(proof), ProofFields)
	}
	if keyHash == "" {
		return ProofArtifact{}, fmt.Errorf("%w: empty key hash", ErrMalformedArtifact)
	}
	return ProofArtifact{
		VerificationKey: verificationKey,
		Proof:           proof,
		PublicInputs:    publicInputs,
		KeyHash:         keyHash,
	}, nil
}

// SizedProofArtifact is produced by a circuit picked from a family indexed by input byte length.
type SizedProofArtifact struct {
	ProofArtifact
	KeyHashIndex int `json:"key_hash_index"`
}

// BlockRangeProof attests the chain from First to Last.
type BlockRangeProof struct {
	Artifact ProofArtifact `json:"proof_artifact"`
	First    Block         `json:"first_block"`
	Last     Block         `json:"last_block"`
}

// IsBuffer reports whether the range is a synthetic self-referential buffer.
func (p BlockRangeProof) IsBuffer() bool {
	return p.First.Height == p.Last.Height
}

// BlockTreeArtifact is the root of the composed chain proof.
// Height 0 is a single pair, 1 a base tree node, higher values recursive nodes.
type BlockTreeArtifact struct {
	Height int `json:"height"`
	BlockRangeProof
}

// SolidityProofArtifact is the final proof submitted on chain.
type SolidityProofArtifact struct {
	Proof string `json:"proof"`
}
