package reconstruct

import (
	"errors"
	"fmt"

	"github.com/arloliu/rollstat/errs"
	"github.com/arloliu/rollstat/scheme"
)

// PartialBuffer carries the bytes of a value split across consecutive chunks.
//
// It does not retain decoded values: Consume hands every value to the emit
// callback in stream order.
type PartialBuffer[T scheme.Value] struct {
	scheme  scheme.Scheme[T]
	width   int
	pending []byte
}

// NewPartialBuffer creates an empty buffer for values decoded by s.
func NewPartialBuffer[T scheme.Value](s scheme.Scheme[T]) (*PartialBuffer[T], error) {
	if err := scheme.Validate(s); err != nil {
		return nil, err
	}

	width := s.Width()

	return &PartialBuffer[T]{
		scheme:  s,
		width:   width,
		pending: make([]byte, 0, width),
	}, nil
}

// Consume decodes as many values as the leftover bytes plus chunk allow and
// passes them to emit in order. Trailing bytes that do not complete a value are
// kept for the next call.
//
// On success it returns len(chunk). When a value fails to decode, processing of
// the chunk stops: values emitted before the failure stay emitted, the returned
// count covers only the chunk bytes folded into them, and the error wraps
// errs.ErrDecodeFailure. If the failing value was the one completing the leftover
// bytes, the leftover is left as it was before the call.
func (b *PartialBuffer[T]) Consume(chunk []byte, emit func(T)) (int, error) {
	w := b.width
	if len(b.pending)+len(chunk) < w {
		b.pending = append(b.pending, chunk...)
		return len(chunk), nil
	}

	offset := 0
	if held := len(b.pending); held > 0 {
		offset = w - held
		b.pending = append(b.pending, chunk[:offset]...)

		v, err := b.decode(b.pending)
		if err != nil {
			b.pending = b.pending[:held]
			return 0, err
		}

		b.pending = b.pending[:0]
		emit(v)
	}

	body := chunk[offset:]
	aligned := len(body) - len(body)%w

	for i := 0; i < aligned; i += w {
		v, err := b.decode(body[i : i+w])
		if err != nil {
			return offset + i, err
		}
		emit(v)
	}

	b.pending = append(b.pending, body[aligned:]...)

	return len(chunk), nil
}

// Buffered returns the number of leftover bytes waiting for the rest of a value.
func (b *PartialBuffer[T]) Buffered() int {
	return len(b.pending)
}

// Pending returns a copy of the leftover bytes.
func (b *PartialBuffer[T]) Pending() []byte {
	return append([]byte(nil), b.pending...)
}

// Width returns the width of one value in bytes.
func (b *PartialBuffer[T]) Width() int {
	return b.width
}

// Reset discards the leftover bytes.
func (b *PartialBuffer[T]) Reset() {
	b.pending = b.pending[:0]
}

// decode decodes exactly one width-sized group.
func (b *PartialBuffer[T]) decode(group []byte) (T, error) {
	v, err := b.scheme.Decode(group)
	if err == nil {
		return v, nil
	}

	if errors.Is(err, errs.ErrNotEnoughData) {
		// group is always exactly Width() bytes, so the scheme contradicts its own width.
		panic(fmt.Sprintf("reconstruct: scheme %T rejected a %d-byte group as too short", b.scheme, len(group)))
	}

	return v, fmt.Errorf("%w: %w", errs.ErrDecodeFailure, err)
}
