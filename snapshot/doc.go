// Package snapshot exports the contents of a rolling window as a self-describing
// byte frame and reads it back.
//
// A frame is a fixed 24-byte header followed by the payload. The payload is the
// window values laid out by their decoding scheme, oldest first, optionally
// compressed. Writing a decompressed payload into an empty window with the same
// scheme reproduces the window, because the payload is exactly the byte stream
// that would have produced those values.
//
// # Header Layout
//
// All header fields are little-endian regardless of the scheme's byte order:
//
//	offset  size  field
//	0       2     magic (0xE152)
//	2       1     version (1)
//	3       1     compression (format.CompressionType)
//	4       1     value width in bytes
//	5       1     byte order (format.ByteOrder)
//	6       2     reserved, zero
//	8       4     value count
//	12      4     stored payload size in bytes
//	16      8     xxHash64 of the uncompressed payload
//
// Snapshots are in-memory values; storing them is up to the caller.
package snapshot
