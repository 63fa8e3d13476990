package scheme

import (
	"math"

	"github.com/arloliu/rollstat/endian"
	"github.com/arloliu/rollstat/errs"
	"github.com/arloliu/rollstat/format"
)

// Fixed is a scheme decoding one T from a fixed number of bytes through an endian engine.
//
// Fixed is returned by value: it is immutable, holds no buffers and is safe for
// concurrent use.
type Fixed[T Value] struct {
	engine endian.EndianEngine
	width  int
	get    func(e endian.EndianEngine, b []byte) T
	put    func(e endian.EndianEngine, dst []byte, v T) []byte
}

var (
	_ Codec[int32]   = Fixed[int32]{}
	_ Codec[float64] = Fixed[float64]{}
)

// Width returns the encoded width of one value in bytes.
func (f Fixed[T]) Width() int {
	return f.width
}

// Decode reconstructs one value from the first Width() bytes of raw.
func (f Fixed[T]) Decode(raw []byte) (T, error) {
	if len(raw) < f.width {
		var zero T
		return zero, errs.ErrNotEnoughData
	}

	return f.get(f.engine, raw[:f.width]), nil
}

// Append appends the encoded form of v to dst.
func (f Fixed[T]) Append(dst []byte, v T) []byte {
	return f.put(f.engine, dst, v)
}

// Order reports the byte order used by the scheme.
func (f Fixed[T]) Order() format.ByteOrder {
	return endian.OrderOf(f.engine)
}

// LittleEndianInt32 decodes 4-byte two's-complement integers, least significant byte first.
func LittleEndianInt32() Fixed[int32] {
	return Int32(endian.GetLittleEndianEngine())
}

// BigEndianInt32 decodes 4-byte two's-complement integers, most significant byte first.
func BigEndianInt32() Fixed[int32] {
	return Int32(endian.GetBigEndianEngine())
}

// Int16 decodes 2-byte two's-complement integers with the given engine.
func Int16(engine endian.EndianEngine) Fixed[int16] {
	return Fixed[int16]{
		engine: engine,
		width:  2,
		get:    func(e endian.EndianEngine, b []byte) int16 { return int16(e.Uint16(b)) },
		put:    func(e endian.EndianEngine, dst []byte, v int16) []byte { return e.AppendUint16(dst, uint16(v)) },
	}
}

// Uint16 decodes 2-byte unsigned integers with the given engine.
func Uint16(engine endian.EndianEngine) Fixed[uint16] {
	return Fixed[uint16]{
		engine: engine,
		width:  2,
		get:    func(e endian.EndianEngine, b []byte) uint16 { return e.Uint16(b) },
		put:    func(e endian.EndianEngine, dst []byte, v uint16) []byte { return e.AppendUint16(dst, v) },
	}
}

// Int32 decodes 4-byte two's-complement integers with the given engine.
func Int32(engine endian.EndianEngine) Fixed[int32] {
	return Fixed[int32]{
		engine: engine,
		width:  4,
		get:    func(e endian.EndianEngine, b []byte) int32 { return int32(e.Uint32(b)) },
		put:    func(e endian.EndianEngine, dst []byte, v int32) []byte { return e.AppendUint32(dst, uint32(v)) },
	}
}

// Uint32 decodes 4-byte unsigned integers with the given engine.
func Uint32(engine endian.EndianEngine) Fixed[uint32] {
	return Fixed[uint32]{
		engine: engine,
		width:  4,
		get:    func(e endian.EndianEngine, b []byte) uint32 { return e.Uint32(b) },
		put:    func(e endian.EndianEngine, dst []byte, v uint32) []byte { return e.AppendUint32(dst, v) },
	}
}

// Int64 decodes 8-byte two's-complement integers with the given engine.
func Int64(engine endian.EndianEngine) Fixed[int64] {
	return Fixed[int64]{
		engine: engine,
		width:  8,
		get:    func(e endian.EndianEngine, b []byte) int64 { return int64(e.Uint64(b)) },
		put:    func(e endian.EndianEngine, dst []byte, v int64) []byte { return e.AppendUint64(dst, uint64(v)) },
	}
}

// Uint64 decodes 8-byte unsigned integers with the given engine.
func Uint64(engine endian.EndianEngine) Fixed[uint64] {
	return Fixed[uint64]{
		engine: engine,
		width:  8,
		get:    func(e endian.EndianEngine, b []byte) uint64 { return e.Uint64(b) },
		put:    func(e endian.EndianEngine, dst []byte, v uint64) []byte { return e.AppendUint64(dst, v) },
	}
}

// Float32 decodes 4-byte IEEE 754 single precision values.
func Float32(engine endian.EndianEngine) Fixed[float32] {
	return Fixed[float32]{
		engine: engine,
		width:  4,
		get: func(e endian.EndianEngine, b []byte) float32 {
			return math.Float32frombits(e.Uint32(b))
		},
		put: func(e endian.EndianEngine, dst []byte, v float32) []byte {
			return e.AppendUint32(dst, math.Float32bits(v))
		},
	}
}

// Float64 decodes 8-byte IEEE 754 double precision values.
func Float64(engine endian.EndianEngine) Fixed[float64] {
	return Fixed[float64]{
		engine: engine,
		width:  8,
		get: func(e endian.EndianEngine, b []byte) float64 {
			return math.Float64frombits(e.Uint64(b))
		},
		put: func(e endian.EndianEngine, dst []byte, v float64) []byte {
			return e.AppendUint64(dst, math.Float64bits(v))
		},
	}
}
