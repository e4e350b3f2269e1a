package prover

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goodnatureofminers/bridgeprover/internal/model"
	"github.com/goodnatureofminers/bridgeprover/pkg/memo"
)

// ReplaceMarker tags the circuit source line that a Template rewrites.
const ReplaceMarker = "[REPLACE]"

// MainSource is the entry point of a Noir project.
const MainSource = "src/main.nr"

// ByteLenDeclaration fixes the input length of the recursive sha256 circuit.
func ByteLenDeclaration(n int) string {
	return fmt.Sprintf("global BYTELEN: u32 = %d;", n)
}

// KeyHashDeclaration commits a recursive tree circuit to its child circuit's key hash.
func KeyHashDeclaration(keyHash string) string {
	return fmt.Sprintf("global BLOCK_TREE_CIRCUIT_KEY_HASH: Field = %s;", keyHash)
}

// Template derives circuit source variants by replacing the first line carrying
// ReplaceMarker. Variants are cached by declaration.
type Template struct {
	source   *memo.Value[[]string]
	variants *memo.Keyed[string, string]
}

// NewTemplate loads circuit source from path on first use.
func NewTemplate(path string) *Template {
	t := &Template{}
	t.source = memo.NewValue(func(context.Context) ([]string, error) {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read circuit template: %w", err)
		}
		return strings.Split(string(raw), "\n"), nil
	})
	t.variants = memo.NewKeyed(t.render)
	return t
}

// Render returns the source with the marked line replaced by declaration.
func (t *Template) Render(ctx context.Context, declaration string) (string, error) {
	return t.variants.Get(ctx, declaration)
}

// WriteTo renders the variant into the project at circuitPath.
func (t *Template) WriteTo(ctx context.Context, circuitPath, declaration string) error {
	src, err := t.Render(ctx, declaration)
	if err != nil {
		return err
	}
	dst := filepath.Join(circuitPath, MainSource)
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return err
	}
	return os.WriteFile(dst, []byte(src), 0o644)
}

func (t *Template) render(ctx context.Context, declaration string) (string, error) {
	lines, err := t.source.Get(ctx)
	if err != nil {
		return "", err
	}
	for i, line := range lines {
		if strings.Contains(line, ReplaceMarker) {
			out := append([]string(nil), lines...)
			out[i] = declaration
			return strings.Join(out, "\n"), nil
		}
	}
	return "", fmt.Errorf("%w: circuit template has no %s line", model.ErrNotFound, ReplaceMarker)
}
