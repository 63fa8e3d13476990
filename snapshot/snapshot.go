package snapshot

import (
	"fmt"
	"iter"
	"math"

	"github.com/arloliu/rollstat/compress"
	"github.com/arloliu/rollstat/errs"
	"github.com/arloliu/rollstat/format"
	"github.com/arloliu/rollstat/internal/hash"
	"github.com/arloliu/rollstat/internal/options"
	"github.com/arloliu/rollstat/internal/pool"
	"github.com/arloliu/rollstat/scheme"
)

type config struct {
	compression format.CompressionType
}

// Option configures Encode.
type Option = options.Option[*config]

// WithCompression sets the payload compression. The default is none.
func WithCompression(c format.CompressionType) Option {
	return options.New(func(cfg *config) error {
		if _, err := compress.GetCodec(c); err != nil {
			return err
		}
		cfg.compression = c

		return nil
	})
}

// Frame is a decoded snapshot.
type Frame struct {
	Header
	// Payload holds the uncompressed values laid out by the scheme.
	Payload []byte
}

// Encode lays out values with c and wraps them in a frame.
func Encode[T scheme.Value](c scheme.Codec[T], values iter.Seq[T], opts ...Option) ([]byte, error) {
	cfg := &config{compression: format.CompressionNone}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	width := c.Width()
	if width <= 0 || width > math.MaxUint8 {
		return nil, fmt.Errorf("%w: %d", errs.ErrInvalidWidth, width)
	}

	buf := pool.GetPayloadBuffer()
	defer pool.PutPayloadBuffer(buf)

	count := 0
	for v := range values {
		buf.Grow(width)
		buf.B = c.Append(buf.B, v)
		count++
	}
	if count > math.MaxUint32 {
		return nil, fmt.Errorf("%w: %d values do not fit a frame", errs.ErrInvalidSnapshot, count)
	}
	if buf.Len() != count*width {
		return nil, fmt.Errorf("%w: codec appended %d bytes for %d values of width %d",
			errs.ErrSchemeMismatch, buf.Len(), count, width)
	}
	if buf.Len() > compress.MaxDecodedSize {
		return nil, fmt.Errorf("%w: %d-byte payload exceeds the %d-byte limit",
			errs.ErrInvalidSnapshot, buf.Len(), compress.MaxDecodedSize)
	}

	codec, err := compress.GetCodec(cfg.compression)
	if err != nil {
		return nil, err
	}
	stored, err := codec.Compress(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("compress snapshot payload: %w", err)
	}

	h := Header{
		Compression: cfg.compression,
		Width:       uint8(width),
		Order:       c.Order(),
		Count:       uint32(count),
		PayloadSize: uint32(len(stored)),
		Checksum:    hash.Checksum(buf.Bytes()),
	}

	// stored may alias the pooled buffer, so it is copied before the buffer is released.
	frame := make([]byte, HeaderSize+len(stored))
	h.put(frame)
	copy(frame[HeaderSize:], stored)

	return frame, nil
}

// Decode parses a frame, decompresses its payload and verifies the checksum.
// Frames declaring more than compress.MaxDecodedSize payload bytes are rejected
// before decompression.
func Decode(data []byte) (Frame, error) {
	h, err := ParseHeader(data)
	if err != nil {
		return Frame{}, err
	}

	if got := len(data) - HeaderSize; got != int(h.PayloadSize) {
		return Frame{}, fmt.Errorf("%w: payload is %d bytes, header says %d", errs.ErrInvalidSnapshot, got, h.PayloadSize)
	}

	if size := uint64(h.Count) * uint64(h.Width); size > compress.MaxDecodedSize {
		return Frame{}, fmt.Errorf("%w: %d values of width %d exceed the %d-byte payload limit",
			errs.ErrInvalidSnapshot, h.Count, h.Width, compress.MaxDecodedSize)
	}

	codec, err := compress.GetCodec(h.Compression)
	if err != nil {
		return Frame{}, fmt.Errorf("%w: %w", errs.ErrInvalidSnapshot, err)
	}
	payload, err := codec.Decompress(data[HeaderSize:])
	if err != nil {
		return Frame{}, fmt.Errorf("%w: %w", errs.ErrInvalidSnapshot, err)
	}

	if want := int(h.Count) * int(h.Width); len(payload) != want {
		return Frame{}, fmt.Errorf("%w: decompressed payload is %d bytes, want %d", errs.ErrInvalidSnapshot, len(payload), want)
	}
	if sum := hash.Checksum(payload); sum != h.Checksum {
		return Frame{}, fmt.Errorf("%w: got %016x, want %016x", errs.ErrChecksumMismatch, sum, h.Checksum)
	}

	return Frame{Header: h, Payload: payload}, nil
}

// Compatible reports whether f was laid out by a scheme interchangeable with s.
// The byte order is compared whenever s declares one, including schemes wrapped
// by scheme.Checked.
func Compatible[T scheme.Value](f Frame, s scheme.Scheme[T]) error {
	if w := s.Width(); w != int(f.Width) {
		return fmt.Errorf("%w: frame width %d, scheme width %d", errs.ErrSchemeMismatch, f.Width, w)
	}
	if order, ok := scheme.OrderOf(s); ok && order != f.Order {
		return fmt.Errorf("%w: frame order %s, scheme order %s", errs.ErrSchemeMismatch, f.Order, order)
	}

	return nil
}

// DecodeValues decodes a frame and returns its values decoded with s.
func DecodeValues[T scheme.Value](data []byte, s scheme.Scheme[T]) ([]T, error) {
	f, err := Decode(data)
	if err != nil {
		return nil, err
	}
	if err := Compatible(f, s); err != nil {
		return nil, err
	}

	width := int(f.Width)
	out := make([]T, 0, f.Count)
	for off := 0; off < len(f.Payload); off += width {
		v, err := s.Decode(f.Payload[off : off+width])
		if err != nil {
			return out, fmt.Errorf("%w: value %d: %w", errs.ErrDecodeFailure, off/width, err)
		}
		out = append(out, v)
	}

	return out, nil
}
