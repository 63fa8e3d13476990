// Package endian provides the byte order engines used by rollstat decoding schemes.
//
// An EndianEngine combines encoding/binary's ByteOrder and AppendByteOrder, so a
// single value can both read fixed-width integers out of a stream and append them
// back when a window is exported:
//
//	engine := endian.GetBigEndianEngine()
//	v := int32(engine.Uint32(raw[:4]))
//	buf = engine.AppendUint32(buf, uint32(v))
//
// # Thread Safety
//
// All functions in this package are safe for concurrent use. The returned engines
// are immutable and stateless.
package endian

import (
	"encoding/binary"
	"fmt"
	"unsafe"

	"github.com/arloliu/rollstat/format"
)

// EndianEngine combines ByteOrder and AppendByteOrder interfaces from encoding/binary.
//
// binary.LittleEndian and binary.BigEndian both satisfy it.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// CheckEndianness uses a fixed integer value to determine the host's byte order.
func CheckEndianness() EndianEngine {
	// 0x0100 is 256: the first byte in memory is 0x01 only on big-endian hosts.
	var i uint16 = 0x0100
	b := (*[2]byte)(unsafe.Pointer(&i))

	if b[0] == 0x01 {
		return binary.BigEndian
	}

	return binary.LittleEndian
}

// IsNativeLittleEndian reports whether the host stores the least significant byte first.
func IsNativeLittleEndian() bool {
	return CheckEndianness() == binary.LittleEndian
}

// GetLittleEndianEngine returns the little-endian engine.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}

// ForOrder returns the engine for the given byte order. NativeEndian resolves to
// the host order.
func ForOrder(order format.ByteOrder) (EndianEngine, error) {
	switch order {
	case format.LittleEndian:
		return binary.LittleEndian, nil
	case format.BigEndian:
		return binary.BigEndian, nil
	case format.NativeEndian:
		return CheckEndianness(), nil
	default:
		return nil, fmt.Errorf("invalid byte order: %v", order)
	}
}

// OrderOf reports the concrete byte order implemented by engine.
func OrderOf(engine EndianEngine) format.ByteOrder {
	if engine == EndianEngine(binary.BigEndian) {
		return format.BigEndian
	}

	return format.LittleEndian
}
