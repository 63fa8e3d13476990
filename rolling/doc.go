// Package rolling combines stream reconstruction, a rolling window and the
// statistics engine behind a single io.Writer.
//
// Bytes written to a RollingStats are reconstructed into values by a decoding
// scheme regardless of how the stream is chunked; every completed value is pushed
// into a window holding the most recent Cap() values, and statistics are computed
// over that window on demand:
//
//	rs, _ := rolling.New[int32](scheme.BigEndianInt32(), 3)
//	rs.Write([]byte{0, 0, 0, 1, 0, 0})
//	rs.Write([]byte{0, 2, 0, 0, 0, 3, 0, 0, 0, 4})
//	rs.Mean()   // 3
//	rs.StdDev() // 1
//
// The buffering strategy is chosen at build time. The default build hands each
// value straight to the window; building with the rollstat_queue tag queues the
// values of a write and moves them into the window once the write returns. Both
// strategies observe the same values in the same order.
//
// A RollingStats is not safe for concurrent use.
package rolling
