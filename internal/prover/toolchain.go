// Package prover wraps the Noir compiler and the Barretenberg backend behind the Gateway
// interface and manages the circuit source trees they operate on.
package prover

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/bridgeprover/internal/fieldenc"
	"github.com/goodnatureofminers/bridgeprover/internal/model"
	"github.com/goodnatureofminers/bridgeprover/internal/witness"
)

const (
	proverInputFile  = "Prover.toml"
	manifestFile     = "Nargo.toml"
	targetDir        = "target"
	witnessName      = "witness"
	proofFile        = "target/proof"
	proofFieldsFile  = "target/proof_fields.json"
	vkFieldsFile     = "target/vk_fields.json"
	witnessExtension = ".gz"
)

// ToolchainConfig names the toolchain binaries.
type ToolchainConfig struct {
	NargoBinary string
	BBBinary    string
}

// Toolchain implements Gateway with the nargo and bb command line tools.
type Toolchain struct {
	logger *zap.Logger
	runner CommandRunner
	nargo  string
	bb     string
}

// NewToolchain constructs a Toolchain. Empty binaries default to nargo and bb on PATH.
func NewToolchain(logger *zap.Logger, runner CommandRunner, cfg ToolchainConfig) *Toolchain {
	if cfg.NargoBinary == "" {
		cfg.NargoBinary = "nargo"
	}
	if cfg.BBBinary == "" {
		cfg.BBBinary = "bb"
	}
	return &Toolchain{
		logger: logger.Named("toolchain"),
		runner: runner,
		nargo:  cfg.NargoBinary,
		bb:     cfg.BBBinary,
	}
}

// Compile compiles the circuit project at circuitPath.
func (t *Toolchain) Compile(ctx context.Context, circuitPath string) error {
	if _, err := t.runner.Run(ctx, circuitPath, t.nargo, "compile"); err != nil {
		return model.NewExternalToolError("compile", circuitPath, err)
	}
	return nil
}

// BuildWitness writes doc as the project's prover input and solves the witness.
func (t *Toolchain) BuildWitness(ctx context.Context, doc witness.Document, circuitPath string) ([]byte, error) {
	const op = "build_witness"
	input, err := witness.Encode(doc)
	if err != nil {
		return nil, err
	}
	if err := os.WriteFile(filepath.Join(circuitPath, proverInputFile), input, 0o644); err != nil {
		return nil, model.NewExternalToolError(op, circuitPath, err)
	}
	if _, err := t.runner.Run(ctx, circuitPath, t.nargo, "execute", witnessName); err != nil {
		return nil, model.NewExternalToolError(op, circuitPath, err)
	}
	w, err := os.ReadFile(filepath.Join(circuitPath, targetDir, witnessName+witnessExtension))
	if err != nil {
		return nil, model.NewExternalToolError(op, circuitPath, err)
	}
	return w, nil
}

// BuildVerificationKey writes the raw verification key to vkPath.
func (t *Toolchain) BuildVerificationKey(ctx context.Context, vkPath, circuitPath string) error {
	const op = "build_verification_key"
	bytecode, err := bytecodePath(circuitPath)
	if err != nil {
		return model.NewExternalToolError(op, circuitPath, err)
	}
	if err := os.MkdirAll(filepath.Dir(resolve(circuitPath, vkPath)), 0o755); err != nil {
		return model.NewExternalToolError(op, circuitPath, err)
	}
	if _, err := t.runner.Run(ctx, circuitPath, t.bb, "write_vk", "-b", bytecode, "-o", vkPath); err != nil {
		return model.NewExternalToolError(op, circuitPath, err)
	}
	return nil
}

// CreateProof proves the solved witness and splits the result into public inputs and proof fields.
func (t *Toolchain) CreateProof(ctx context.Context, vkPath string, publicInputs int, circuitPath string) ([]string, []string, error) {
	const op = "create_proof"
	bytecode, err := bytecodePath(circuitPath)
	if err != nil {
		return nil, nil, model.NewExternalToolError(op, circuitPath, err)
	}
	if _, err := t.runner.Run(ctx, circuitPath, t.bb, "prove",
		"-b", bytecode, "-w", filepath.Join(targetDir, witnessName+witnessExtension), "-o", proofFile); err != nil {
		return nil, nil, model.NewExternalToolError(op, circuitPath, err)
	}
	if _, err := t.runner.Run(ctx, circuitPath, t.bb, "proof_as_fields",
		"-p", proofFile, "-k", vkPath, "-o", proofFieldsFile); err != nil {
		return nil, nil, model.NewExternalToolError(op, circuitPath, err)
	}
	fields, err := readFields(filepath.Join(circuitPath, proofFieldsFile))
	if err != nil {
		return nil, nil, model.NewExternalToolError(op, circuitPath, err)
	}
	if len(fields) != publicInputs+model.ProofFields {
		return nil, nil, model.NewExternalToolError(op, circuitPath, fmt.Errorf("%w: %d proof fields, want %d public inputs and %d proof fields",
			model.ErrMalformedArtifact, len(fields), publicInputs, model.ProofFields))
	}
	return fields[:publicInputs], fields[publicInputs:], nil
}

// Verify reports whether the last proof verifies against vkPath. A verifier rejection is
// (false, nil); failing to run the verifier is an error.
func (t *Toolchain) Verify(ctx context.Context, vkPath, circuitPath string) (bool, error) {
	_, err := t.runner.Run(ctx, circuitPath, t.bb, "verify", "-k", vkPath, "-p", proofFile)
	if err == nil {
		return true, nil
	}
	var cmdErr *CommandError
	if errors.As(err, &cmdErr) && cmdErr.ExitCode > 0 {
		t.logger.Warn("proof rejected", zap.String("circuit", circuitPath), zap.String("stderr", cmdErr.Stderr))
		return false, nil
	}
	return false, model.NewExternalToolError("verify", circuitPath, err)
}

// ExtractVerificationKeyAsFields returns [key hash, ...key fields].
func (t *Toolchain) ExtractVerificationKeyAsFields(ctx context.Context, vkPath, circuitPath string) ([]string, error) {
	const op = "extract_vk_as_fields"
	if _, err := t.runner.Run(ctx, circuitPath, t.bb, "vk_as_fields", "-k", vkPath, "-o", vkFieldsFile); err != nil {
		return nil, model.NewExternalToolError(op, circuitPath, err)
	}
	fields, err := readFields(filepath.Join(circuitPath, vkFieldsFile))
	if err != nil {
		return nil, model.NewExternalToolError(op, circuitPath, err)
	}
	if len(fields) != model.VerificationKeyFields+1 {
		return nil, model.NewExternalToolError(op, circuitPath, fmt.Errorf("%w: %d key fields, want %d",
			model.ErrMalformedArtifact, len(fields), model.VerificationKeyFields+1))
	}
	return fields, nil
}

// CreateFinalProof produces the proof submitted on chain for project, as hex.
func (t *Toolchain) CreateFinalProof(ctx context.Context, project, circuitPath string) (string, error) {
	const op = "create_final_proof"
	out := filepath.Join(targetDir, project+".proof")
	if _, err := t.runner.Run(ctx, circuitPath, t.bb, "prove",
		"-b", filepath.Join(targetDir, project+".json"),
		"-w", filepath.Join(targetDir, witnessName+witnessExtension),
		"-o", out); err != nil {
		return "", model.NewExternalToolError(op, circuitPath, err)
	}
	proof, err := os.ReadFile(filepath.Join(circuitPath, out))
	if err != nil {
		return "", model.NewExternalToolError(op, circuitPath, err)
	}
	if len(proof) == 0 {
		return "", model.NewExternalToolError(op, circuitPath, fmt.Errorf("%w: empty proof", model.ErrMalformedArtifact))
	}
	return hex.EncodeToString(proof), nil
}

// PackageName reads the package name from the project's Nargo.toml.
func PackageName(circuitPath string) (string, error) {
	raw, err := os.ReadFile(filepath.Join(circuitPath, manifestFile))
	if err != nil {
		return "", err
	}
	var manifest struct {
		Package struct {
			Name string `toml:"name"`
		} `toml:"package"`
	}
	if err := toml.Unmarshal(raw, &manifest); err != nil {
		return "", fmt.Errorf("parse %s: %w", manifestFile, err)
	}
	if manifest.Package.Name == "" {
		return "", fmt.Errorf("%s has no package name", manifestFile)
	}
	return manifest.Package.Name, nil
}

func bytecodePath(circuitPath string) (string, error) {
	name, err := PackageName(circuitPath)
	if err != nil {
		return "", err
	}
	return filepath.Join(targetDir, name+".json"), nil
}

func readFields(path string) ([]string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var fields []string
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", model.ErrMalformedArtifact, filepath.Base(path), err)
	}
	if err := fieldenc.ValidateElements(fields); err != nil {
		return nil, err
	}
	return fields, nil
}

func resolve(circuitPath, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(circuitPath, path)
}
