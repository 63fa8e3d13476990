// Package compress provides the codecs used to shrink window snapshot payloads.
//
// A snapshot payload is the window contents laid out by a decoding scheme, so it
// is a dense run of fixed-width values. Four codecs are available:
//
//   - None: the payload is stored as is
//   - Zstd: best ratio, used when snapshots are shipped across a network
//   - S2: fast with a reasonable ratio
//   - LZ4: fastest decompression
//
// Built-in codecs are stateless values; internal encoder and decoder state is
// pooled, so a codec is safe for concurrent use.
package compress

import (
	"fmt"

	"github.com/arloliu/rollstat/errs"
	"github.com/arloliu/rollstat/format"
)

// Compressor compresses a complete payload.
//
// The returned slice is owned by the caller; the input slice is not modified,
// although the no-op codec returns it as is.
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// Decompressor reverses a Compressor of the same algorithm.
//
// It returns an error if data is corrupted or was produced by another algorithm.
type Decompressor interface {
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both compression and decompression capabilities.
type Codec interface {
	Compressor
	Decompressor
}

// MaxDecodedSize is the largest payload a Decompressor produces; larger
// payloads are rejected with an error.
const MaxDecodedSize = 128 * 1024 * 1024

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone: NewNoOpCompressor(),
	format.CompressionZstd: NewZstdCompressor(),
	format.CompressionS2:   NewS2Compressor(),
	format.CompressionLZ4:  NewLZ4Compressor(),
}

// GetCodec retrieves the built-in Codec for the specified compression type.
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("%w: %s", errs.ErrUnsupportedCompression, compressionType)
}
