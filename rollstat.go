// Package rollstat computes rolling statistics over a stream of fixed-width
// values delivered as raw bytes in arbitrarily sized chunks.
//
// A RollingStats is an io.Writer. Bytes written to it are reconstructed into
// typed values by a decoding scheme, even when a value is split across writes;
// each completed value enters a fixed-size rolling window that keeps only the
// most recent values, and the mean, sample standard deviation and a normal
// random draw are computed over that window on demand.
//
// # Core Features
//
//   - Chunking-independent reconstruction: any fragmentation of a stream yields
//     the same values
//   - Pluggable decoding schemes for 16, 32 and 64-bit integers and floats in
//     little, big or native byte order
//   - O(1) push and eviction on a deque-backed window
//   - Mean, Bessel-corrected standard deviation, normal draws and percentiles
//   - Checksummed, optionally compressed window snapshots (None, Zstd, S2, LZ4)
//
// # Basic Usage
//
//	rs, _ := rollstat.NewBigEndianInt32(3)
//
//	// [1, 2, 3, 4] as big-endian int32, split mid-value across two writes
//	rs.Write([]byte{0, 0, 0, 1, 0, 0})
//	rs.Write([]byte{0, 2, 0, 0, 0, 3, 0, 0, 0, 4})
//
//	fmt.Println(rs.Len())    // 3
//	fmt.Println(rs.Mean())   // 3
//	fmt.Println(rs.StdDev()) // 1
//
// # Package Structure
//
// This package provides convenient top-level constructors around the rolling
// package. Decoding schemes live in the scheme package, snapshot frames in the
// snapshot package and the statistics functions in the statistics package.
package rollstat

import (
	"github.com/arloliu/rollstat/rolling"
	"github.com/arloliu/rollstat/scheme"
)

// RollingStats is the rolling statistics facade for values of type T.
type RollingStats[T scheme.Value] = rolling.RollingStats[T]

// New creates a RollingStats decoding values with a custom scheme.
//
// This is the most flexible factory function. Any scheme.Scheme works, including
// the fixed-width schemes of the scheme package and schemes wrapped by
// scheme.Checked to reject malformed values.
//
// Parameters:
//   - s: The decoding scheme; its width must be greater than zero
//   - windowSize: The number of most recent values kept; must be at least 1
//   - opts: Optional configuration (see rolling.Option)
//
// Returns:
//   - *RollingStats[T]: The created instance with an empty window.
//   - error: errs.ErrInvalidWidth or errs.ErrInvalidWindowSize on invalid input.
//
// Example:
//
//	rs, err := rollstat.New[float64](scheme.Float64(endian.GetLittleEndianEngine()), 128,
//	    rolling.WithRandSource(rand.NewPCG(1, 2)),
//	)
func New[T scheme.Value](s scheme.Scheme[T], windowSize int, opts ...rolling.Option) (*RollingStats[T], error) {
	return rolling.New(s, windowSize, opts...)
}

// NewLittleEndianInt32 creates a RollingStats over little-endian 4-byte signed integers.
//
// Example:
//
//	rs, err := rollstat.NewLittleEndianInt32(60)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	io.Copy(rs, conn)
func NewLittleEndianInt32(windowSize int, opts ...rolling.Option) (*RollingStats[int32], error) {
	return rolling.New[int32](scheme.LittleEndianInt32(), windowSize, opts...)
}

// NewBigEndianInt32 creates a RollingStats over big-endian 4-byte signed integers,
// the network byte order.
func NewBigEndianInt32(windowSize int, opts ...rolling.Option) (*RollingStats[int32], error) {
	return rolling.New[int32](scheme.BigEndianInt32(), windowSize, opts...)
}
