// Package reconstruct rebuilds fixed-width values from a byte stream whose chunk
// boundaries do not line up with value boundaries.
//
// Two buffering strategies share the same byte accounting:
//
//   - PartialBuffer emits decoded values to a callback as soon as they are complete
//     and retains nothing but the trailing partial value.
//   - Reconstructor is an io.Writer that queues decoded values until the caller
//     drains them and calls Flush.
//
// Both guarantee that every byte of every chunk either ends up in exactly one
// decoded value or is held in the leftover buffer, which is always shorter than
// one value between calls.
package reconstruct
