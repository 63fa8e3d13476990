package compress

import (
	"fmt"

	"github.com/klauspost/compress/s2"
)

// S2Compressor stores payloads as a single S2 block.
type S2Compressor struct{}

var _ Codec = (*S2Compressor)(nil)

// NewS2Compressor returns the S2 codec.
func NewS2Compressor() S2Compressor {
	return S2Compressor{}
}

// Compress encodes data with the "better" S2 level; runs of repeated values
// in a window payload benefit from its longer match search.
func (c S2Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return s2.EncodeBetter(make([]byte, s2.MaxEncodedLen(len(data))), data), nil
}

// Decompress decodes a single S2 block. The decoded length recorded in the
// block is checked before any allocation.
func (c S2Compressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	n, err := s2.DecodedLen(data)
	if err != nil {
		return nil, fmt.Errorf("s2 decompression failed: %w", err)
	}
	if n > MaxDecodedSize {
		return nil, fmt.Errorf("s2 decompression failed: decoded size %d exceeds %d", n, MaxDecodedSize)
	}

	out, err := s2.Decode(make([]byte, n), data)
	if err != nil {
		return nil, fmt.Errorf("s2 decompression failed: %w", err)
	}

	return out, nil
}
