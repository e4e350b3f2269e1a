// Package artifact stores and derives verification key material reused across proofs.
package artifact

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/goodnatureofminers/bridgeprover/internal/fieldenc"
	"github.com/goodnatureofminers/bridgeprover/internal/model"
	"github.com/goodnatureofminers/bridgeprover/pkg/memo"
)

// DataHashKey is the precomputed key of the sha256 circuit for one input length.
type DataHashKey struct {
	KeyHash  string
	Fields   []string
	RawBytes []byte
}

type vkEntry struct {
	Fields         []string `json:"verification_key_as_fields"`
	RawBytes       string   `json:"verification_key_raw_bytes"`
	LegacyFields   []string `json:"vk_as_fields"`
	LegacyRawBytes string   `json:"vk_bytes"`
}

// VKCache reads data-hash keys from bucket files of VKBucketWidth lengths each.
// A bucket file is parsed once.
type VKCache struct {
	dir     string
	buckets *memo.Keyed[int, map[string]vkEntry]
}

// NewVKCache reads bucket files from dir.
func NewVKCache(dir string) *VKCache {
	c := &VKCache{dir: dir}
	c.buckets = memo.NewKeyed(c.loadBucket)
	return c
}

// ValidateByteLength checks that n bytes fit one circuit of the family.
func ValidateByteLength(n int) error {
	if n < 1 || n > model.MaxDataBytes {
		return fmt.Errorf("%w: %d bytes, supported range [1, %d]", model.ErrInvalidLength, n, model.MaxDataBytes)
	}
	return nil
}

// BucketFile names the file holding keys for byteLen.
func BucketFile(byteLen int) string {
	return bucketFileName((byteLen - 1) / model.VKBucketWidth)
}

func bucketFileName(bucket int) string {
	return fmt.Sprintf("vk_chunk_%04d.json", bucket)
}

// Load returns the key for inputs of exactly byteLen bytes.
func (c *VKCache) Load(ctx context.Context, byteLen int) (DataHashKey, error) {
	if err := ValidateByteLength(byteLen); err != nil {
		return DataHashKey{}, err
	}
	bucket, err := c.buckets.Get(ctx, (byteLen-1)/model.VKBucketWidth)
	if err != nil {
		return DataHashKey{}, err
	}
	entry, ok := bucket[strconv.Itoa(byteLen)]
	if !ok {
		return DataHashKey{}, fmt.Errorf("%w: no cached key for %d bytes in %s", model.ErrNotFound, byteLen, BucketFile(byteLen))
	}

	fields, raw := entry.Fields, entry.RawBytes
	if len(fields) == 0 {
		fields, raw = entry.LegacyFields, entry.LegacyRawBytes
	}
	if len(fields) != model.VerificationKeyFields+1 {
		return DataHashKey{}, fmt.Errorf("%w: cached key for %d bytes has %d fields, want %d",
			model.ErrMalformedArtifact, byteLen, len(fields), model.VerificationKeyFields+1)
	}
	if err := fieldenc.ValidateElements(fields); err != nil {
		return DataHashKey{}, fmt.Errorf("cached key for %d bytes: %w", byteLen, err)
	}
	rawBytes, err := fieldenc.HexToBytes(raw)
	if err != nil {
		return DataHashKey{}, fmt.Errorf("cached key bytes for %d bytes: %w", byteLen, err)
	}
	return DataHashKey{
		KeyHash:  fields[0],
		Fields:   fields[1:],
		RawBytes: rawBytes,
	}, nil
}

func (c *VKCache) loadBucket(_ context.Context, bucket int) (map[string]vkEntry, error) {
	path := filepath.Join(c.dir, bucketFileName(bucket))
	raw, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", model.ErrNotFound, path)
	}
	if err != nil {
		return nil, err
	}
	entries := make(map[string]vkEntry)
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", model.ErrMalformedArtifact, path, err)
	}
	return entries, nil
}
