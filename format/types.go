package format

import (
	"fmt"
	"strings"
)

type (
	ByteOrder       uint8
	CompressionType uint8
)

const (
	LittleEndian ByteOrder = 0x1 // LittleEndian stores the least significant byte first.
	BigEndian    ByteOrder = 0x2 // BigEndian stores the most significant byte first.
	NativeEndian ByteOrder = 0x3 // NativeEndian resolves to the host byte order.

	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
)

// String returns the name of the byte order.
func (o ByteOrder) String() string {
	switch o {
	case LittleEndian:
		return "Little"
	case BigEndian:
		return "Big"
	case NativeEndian:
		return "Native"
	default:
		return "Unknown"
	}
}

// String returns the name of the compression type.
func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

// ParseByteOrder maps a case-insensitive name ("little", "big", "native") to a ByteOrder.
func ParseByteOrder(name string) (ByteOrder, error) {
	switch strings.ToLower(name) {
	case "little", "le":
		return LittleEndian, nil
	case "big", "be":
		return BigEndian, nil
	case "native":
		return NativeEndian, nil
	default:
		return 0, fmt.Errorf("unknown byte order: %q", name)
	}
}

// ParseCompression maps a case-insensitive name to a CompressionType.
func ParseCompression(name string) (CompressionType, error) {
	switch strings.ToLower(name) {
	case "none", "":
		return CompressionNone, nil
	case "zstd":
		return CompressionZstd, nil
	case "s2":
		return CompressionS2, nil
	case "lz4":
		return CompressionLZ4, nil
	default:
		return 0, fmt.Errorf("unknown compression: %q", name)
	}
}
