// Package fieldenc encodes byte strings into scalar-field chunks consumed by the circuits.
package fieldenc

import (
	"encoding/hex"
	"fmt"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"

	"github.com/goodnatureofminers/bridgeprover/internal/model"
)

// NormalizeHex strips an optional 0x prefix and lowercases s, the same way block
// hashes are read.
func NormalizeHex(s string) string {
	return model.NormalizeHex(s)
}

// HexToBytes decodes a hex string with or without a 0x prefix.
func HexToBytes(s string) ([]byte, error) {
	b, err := hex.DecodeString(NormalizeHex(s))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrEncoding, err)
	}
	return b, nil
}

// Chunk splits hexBytes into 31-byte groups rendered as 0x-prefixed numerals.
// The final group keeps its natural width.
func Chunk(hexBytes string) ([]string, error) {
	data, err := HexToBytes(hexBytes)
	if err != nil {
		return nil, err
	}
	return ChunkBytes(data), nil
}

// ChunkPadded zero-pads hexBytes to a multiple of 31 bytes before chunking.
func ChunkPadded(hexBytes string) ([]string, error) {
	data, err := HexToBytes(hexBytes)
	if err != nil {
		return nil, err
	}
	if rem := len(data) % model.ChunkBytes; rem != 0 {
		data = append(data, make([]byte, model.ChunkBytes-rem)...)
	}
	return ChunkBytes(data), nil
}

// ChunkBytes splits data into 31-byte groups the way Chunk does.
func ChunkBytes(data []byte) []string {
	chunks := make([]string, 0, (len(data)+model.ChunkBytes-1)/model.ChunkBytes)
	for start := 0; start < len(data); start += model.ChunkBytes {
		end := min(start+model.ChunkBytes, len(data))
		chunks = append(chunks, "0x"+hex.EncodeToString(data[start:end]))
	}
	return chunks
}

// Pad returns seq extended with fill to exactly n elements.
func Pad[T any](seq []T, n int, fill T) ([]T, error) {
	if len(seq) > n {
		return nil, fmt.Errorf("%w: %d elements, capacity %d", model.ErrCapacity, len(seq), n)
	}
	out := make([]T, n)
	copy(out, seq)
	for i := len(seq); i < n; i++ {
		out[i] = fill
	}
	return out, nil
}

// Join reassembles the bytes behind chunks. totalLen fixes the width of the
// final chunk; every other chunk is 31 bytes wide.
func Join(chunks []string, totalLen int) ([]byte, error) {
	if !spans(totalLen, len(chunks)) {
		return nil, fmt.Errorf("%w: %d bytes cannot span %d chunks", model.ErrInvalidLength, totalLen, len(chunks))
	}
	out := make([]byte, 0, totalLen)
	for i, c := range chunks {
		width := model.ChunkBytes
		if i == len(chunks)-1 {
			width = totalLen - i*model.ChunkBytes
		}
		v, ok := new(big.Int).SetString(NormalizeHex(c), 16)
		if !ok {
			return nil, fmt.Errorf("%w: chunk %d is not a hex numeral", model.ErrEncoding, i)
		}
		if v.BitLen() > width*8 {
			return nil, fmt.Errorf("%w: chunk %d exceeds %d bytes", model.ErrEncoding, i, width)
		}
		out = append(out, v.FillBytes(make([]byte, width))...)
	}
	return out, nil
}

func spans(totalLen, chunks int) bool {
	if chunks == 0 {
		return totalLen == 0
	}
	return totalLen > (chunks-1)*model.ChunkBytes && totalLen <= chunks*model.ChunkBytes
}

// ByteArray decodes hex into byte values for circuit [u8; N] inputs.
func ByteArray(hexBytes string) ([]int, error) {
	data, err := HexToBytes(hexBytes)
	if err != nil {
		return nil, err
	}
	return Bytes(data), nil
}

// Bytes widens raw bytes into circuit byte values.
func Bytes(data []byte) []int {
	out := make([]int, len(data))
	for i, b := range data {
		out[i] = int(b)
	}
	return out
}

// ParseElements checks that every value is a canonical BN254 scalar-field element
// and returns the parsed elements.
func ParseElements(values []string) ([]fr.Element, error) {
	out := make([]fr.Element, len(values))
	for i, v := range values {
		n, ok := new(big.Int).SetString(NormalizeHex(v), 16)
		if !ok {
			return nil, fmt.Errorf("%w: element %d %q is not a hex numeral", model.ErrEncoding, i, v)
		}
		if n.Cmp(fr.Modulus()) >= 0 {
			return nil, fmt.Errorf("%w: element %d exceeds the scalar field modulus", model.ErrEncoding, i)
		}
		out[i].SetBigInt(n)
	}
	return out, nil
}

// ValidateElements is ParseElements without the parsed result.
func ValidateElements(values []string) error {
	_, err := ParseElements(values)
	return err
}
