// Package scheme defines the decoding schemes that turn raw stream bytes into
// fixed-width typed values.
//
// A Scheme knows its byte width and how to decode one value from the first
// Width() bytes of a slice. Schemes are stateless and can be shared freely. The
// reconstructor and rolling window only depend on the Scheme interface, so new
// value types or byte layouts plug in without touching them.
//
// # Built-in Schemes
//
// Fixed-width schemes are available for every integer and float width supported by
// encoding/binary, in either byte order:
//
//	s := scheme.BigEndianInt32()                        // 4-byte two's-complement, MSB first
//	s := scheme.Float64(endian.GetLittleEndianEngine()) // 8-byte IEEE 754, LSB first
//
// All built-in schemes also implement Codec, which adds the inverse Append
// operation used for round-trip checks and window snapshots.
//
// # Custom Schemes
//
// Implement Scheme[T] for any layout with a constant width. Decode must return
// errs.ErrNotEnoughData when given fewer than Width() bytes and must ignore any
// bytes past Width(). Scheme-specific validation can be layered on any scheme
// with Checked:
//
//	s := scheme.Checked(scheme.Float32(engine), scheme.Finite[float32])
package scheme
