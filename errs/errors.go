// Package errs defines the sentinel errors returned by rollstat packages.
//
// Callers match them with errors.Is; packages wrap them with additional context
// using fmt.Errorf and the %w verb.
package errs

import "errors"

// Decoding errors.
var (
	// ErrNotEnoughData is returned by a scheme asked to decode fewer bytes than its width.
	ErrNotEnoughData = errors.New("not enough data to decode value")
	// ErrDecodeFailure wraps a scheme-specific failure on a byte-complete value.
	ErrDecodeFailure = errors.New("value decode failed")
	// ErrInvalidWidth is returned when a scheme reports a non-positive width.
	ErrInvalidWidth = errors.New("invalid scheme width")
)

// Window and statistics errors.
var (
	// ErrInvalidWindowSize is returned when a window is created with a capacity below one.
	ErrInvalidWindowSize = errors.New("window size must be at least 1")
	// ErrInvalidDistribution is returned when the window mean or standard deviation
	// cannot parameterize a normal distribution.
	ErrInvalidDistribution = errors.New("invalid normal distribution parameters")
	// ErrEmptyWindow is returned by summaries of a window holding no values.
	ErrEmptyWindow = errors.New("window is empty")
)

// Snapshot errors.
var (
	// ErrSchemeNotEncodable is returned when a snapshot is requested for a scheme
	// that cannot lay values out.
	ErrSchemeNotEncodable = errors.New("scheme does not support encoding")
	// ErrInvalidSnapshot is returned for malformed or oversized snapshot frames.
	ErrInvalidSnapshot = errors.New("invalid snapshot frame")
	// ErrChecksumMismatch is returned when a snapshot payload fails its checksum.
	ErrChecksumMismatch = errors.New("snapshot checksum mismatch")
	// ErrSchemeMismatch is returned when a frame's width or byte order differs from the scheme.
	ErrSchemeMismatch = errors.New("snapshot layout does not match scheme")
	// ErrUnsupportedCompression is returned for an unknown compression type.
	ErrUnsupportedCompression = errors.New("unsupported compression type")
)
