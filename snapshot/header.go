package snapshot

import (
	"encoding/binary"
	"fmt"

	"github.com/arloliu/rollstat/errs"
	"github.com/arloliu/rollstat/format"
)

const (
	// Magic identifies a snapshot frame.
	Magic uint16 = 0xE152
	// Version is the frame layout version written by Encode.
	Version uint8 = 1
	// HeaderSize is the size of the fixed header in bytes.
	HeaderSize = 24
)

// Header describes a snapshot payload.
type Header struct {
	Compression format.CompressionType
	Width       uint8
	Order       format.ByteOrder
	Count       uint32
	PayloadSize uint32
	Checksum    uint64
}

// Bytes serializes the header.
func (h Header) Bytes() []byte {
	b := make([]byte, HeaderSize)
	h.put(b)

	return b
}

func (h Header) put(b []byte) {
	binary.LittleEndian.PutUint16(b[0:2], Magic)
	b[2] = Version
	b[3] = uint8(h.Compression)
	b[4] = h.Width
	b[5] = uint8(h.Order)
	b[6], b[7] = 0, 0
	binary.LittleEndian.PutUint32(b[8:12], h.Count)
	binary.LittleEndian.PutUint32(b[12:16], h.PayloadSize)
	binary.LittleEndian.PutUint64(b[16:24], h.Checksum)
}

// ParseHeader parses and validates the header at the start of data.
func ParseHeader(data []byte) (Header, error) {
	if len(data) < HeaderSize {
		return Header{}, fmt.Errorf("%w: %d bytes is shorter than the header", errs.ErrInvalidSnapshot, len(data))
	}

	if magic := binary.LittleEndian.Uint16(data[0:2]); magic != Magic {
		return Header{}, fmt.Errorf("%w: bad magic 0x%04x", errs.ErrInvalidSnapshot, magic)
	}
	if v := data[2]; v != Version {
		return Header{}, fmt.Errorf("%w: unsupported version %d", errs.ErrInvalidSnapshot, v)
	}
	if data[6] != 0 || data[7] != 0 {
		return Header{}, fmt.Errorf("%w: reserved bytes set", errs.ErrInvalidSnapshot)
	}

	h := Header{
		Compression: format.CompressionType(data[3]),
		Width:       data[4],
		Order:       format.ByteOrder(data[5]),
		Count:       binary.LittleEndian.Uint32(data[8:12]),
		PayloadSize: binary.LittleEndian.Uint32(data[12:16]),
		Checksum:    binary.LittleEndian.Uint64(data[16:24]),
	}
	if h.Width == 0 {
		return Header{}, fmt.Errorf("%w: zero value width", errs.ErrInvalidSnapshot)
	}

	return h, nil
}
