package reconstruct

import (
	"io"
	"iter"
	"slices"

	"github.com/arloliu/rollstat/scheme"
)

// Reconstructor is an io.Writer that parses written bytes into values of type T
// and queues them until Flush is called.
//
// Leftover bytes of a value split across writes are kept between calls, so the
// caller may write the stream in any fragmentation.
type Reconstructor[T scheme.Value] struct {
	partial *PartialBuffer[T]
	values  []T
	push    func(T)
}

var _ io.Writer = (*Reconstructor[int32])(nil)

// NewReconstructor creates an empty reconstructor for values decoded by s.
func NewReconstructor[T scheme.Value](s scheme.Scheme[T]) (*Reconstructor[T], error) {
	partial, err := NewPartialBuffer(s)
	if err != nil {
		return nil, err
	}

	r := &Reconstructor[T]{partial: partial}
	r.push = func(v T) { r.values = append(r.values, v) }

	return r, nil
}

// Write parses p and appends the decoded values to the queue.
//
// It returns len(p) on success. On a decode failure the values parsed before the
// failing one remain queued and the error wraps errs.ErrDecodeFailure.
func (r *Reconstructor[T]) Write(p []byte) (int, error) {
	return r.partial.Consume(p, r.push)
}

// Values returns the queued values. The slice is valid until the next Write or Flush.
func (r *Reconstructor[T]) Values() []T {
	return r.values
}

// All returns an iterator over the queued values.
func (r *Reconstructor[T]) All() iter.Seq[T] {
	return slices.Values(r.values)
}

// Len returns the number of queued values.
func (r *Reconstructor[T]) Len() int {
	return len(r.values)
}

// Flush clears the queued values. Leftover bytes are kept.
func (r *Reconstructor[T]) Flush() error {
	r.values = r.values[:0]
	return nil
}

// Buffered returns the number of leftover bytes waiting for the rest of a value.
func (r *Reconstructor[T]) Buffered() int {
	return r.partial.Buffered()
}

// Reset clears both the queue and the leftover bytes.
func (r *Reconstructor[T]) Reset() {
	r.values = r.values[:0]
	r.partial.Reset()
}
