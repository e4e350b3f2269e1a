package artifact

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/bridgeprover/internal/model"
	"github.com/goodnatureofminers/bridgeprover/internal/prover"
	"github.com/goodnatureofminers/bridgeprover/pkg/memo"
)

// TreeCircuitConfig locates the tree circuits.
type TreeCircuitConfig struct {
	// BaseCircuit and RecursiveCircuit are project paths relative to the circuits root.
	BaseCircuit      string
	RecursiveCircuit string
	// GeneratedDir holds block_tree_height_{h}.json files of precompiled heights.
	GeneratedDir string
}

// TreeCircuitCache yields the key hash of the tree circuit used at each height.
// Height 1 is the base circuit; height h >= 2 is the recursive circuit committed to
// the key hash of height h-1. Each height is derived at most once.
type TreeCircuitCache struct {
	gateway    KeyGateway
	workspaces Workspaces
	template   SourceTemplate
	cfg        TreeCircuitConfig
	logger     *zap.Logger

	hashes *memo.Keyed[int, string]
}

// NewTreeCircuitCache constructs a TreeCircuitCache.
func NewTreeCircuitCache(logger *zap.Logger, gateway KeyGateway, workspaces Workspaces, template SourceTemplate, cfg TreeCircuitConfig) *TreeCircuitCache {
	c := &TreeCircuitCache{
		gateway:    gateway,
		workspaces: workspaces,
		template:   template,
		cfg:        cfg,
		logger:     logger.Named("tree_circuit_cache"),
	}
	c.hashes = memo.NewKeyed(c.derive)
	return c
}

// KeyHash returns the key hash of the tree circuit at height.
func (c *TreeCircuitCache) KeyHash(ctx context.Context, height int) (string, error) {
	if height < 1 {
		return "", fmt.Errorf("%w: tree circuit height %d", model.ErrInvalidLength, height)
	}
	return c.hashes.Get(ctx, height)
}

// Declaration returns the source line that commits the recursive circuit at height to
// its children's key hash.
func (c *TreeCircuitCache) Declaration(ctx context.Context, height int) (string, error) {
	child, err := c.KeyHash(ctx, height-1)
	if err != nil {
		return "", err
	}
	return prover.KeyHashDeclaration(child), nil
}

func (c *TreeCircuitCache) derive(ctx context.Context, height int) (string, error) {
	if height == 1 {
		return c.compileKeyHash(ctx, c.cfg.BaseCircuit, "")
	}

	hash, err := c.readGenerated(height)
	if err == nil {
		c.logger.Debug("tree circuit key hash loaded", zap.Int("height", height))
		return hash, nil
	}
	if !errors.Is(err, model.ErrNotFound) {
		return "", err
	}

	decl, err := c.Declaration(ctx, height)
	if err != nil {
		return "", err
	}
	return c.compileKeyHash(ctx, c.cfg.RecursiveCircuit, decl)
}

func (c *TreeCircuitCache) compileKeyHash(ctx context.Context, circuit, declaration string) (string, error) {
	var hash string
	err := c.workspaces.With(true, func(ws *prover.Workspace) error {
		path := ws.Path(circuit)
		if declaration != "" {
			if err := c.template.WriteTo(ctx, path, declaration); err != nil {
				return err
			}
		}
		if err := c.gateway.Compile(ctx, path); err != nil {
			return err
		}
		if err := c.gateway.BuildVerificationKey(ctx, prover.DefaultVerificationKeyPath, path); err != nil {
			return err
		}
		fields, err := c.gateway.ExtractVerificationKeyAsFields(ctx, prover.DefaultVerificationKeyPath, path)
		if err != nil {
			return err
		}
		if len(fields) == 0 {
			return model.NewExternalToolError("extract_vk_as_fields", path,
				fmt.Errorf("%w: no key hash", model.ErrMalformedArtifact))
		}
		hash = fields[0]
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("derive key hash of %s: %w", circuit, err)
	}
	c.logger.Info("tree circuit key hash derived", zap.String("circuit", circuit), zap.String("key_hash", hash))
	return hash, nil
}

func (c *TreeCircuitCache) readGenerated(height int) (string, error) {
	if c.cfg.GeneratedDir == "" {
		return "", model.ErrNotFound
	}
	path := filepath.Join(c.cfg.GeneratedDir, fmt.Sprintf("block_tree_height_%d.json", height))
	raw, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("%w: %s", model.ErrNotFound, path)
	}
	if err != nil {
		return "", err
	}
	var generated struct {
		VKHash string `json:"vk_hash"`
	}
	if err := json.Unmarshal(raw, &generated); err != nil {
		return "", fmt.Errorf("%w: %s: %v", model.ErrMalformedArtifact, path, err)
	}
	if generated.VKHash == "" {
		return "", fmt.Errorf("%w: %s has no vk_hash", model.ErrMalformedArtifact, path)
	}
	return generated.VKHash, nil
}
