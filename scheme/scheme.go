package scheme

import (
	"fmt"
	"math"

	"golang.org/x/exp/constraints"

	"github.com/arloliu/rollstat/errs"
	"github.com/arloliu/rollstat/format"
)

// Value is the set of fixed-width types a scheme can produce.
//
// Every Value supports copying, a zero value, native addition and a lossy
// conversion to floating point, which is all the statistics engine requires.
type Value interface {
	constraints.Integer | constraints.Float
}

// Scheme decodes a fixed-width value of type T from raw bytes.
type Scheme[T Value] interface {
	// Width returns the constant number of bytes occupied by one encoded value.
	// It must be greater than zero.
	Width() int

	// Decode reconstructs one value from the first Width() bytes of raw.
	//
	// It returns errs.ErrNotEnoughData if len(raw) < Width(). Bytes past Width()
	// are ignored.
	Decode(raw []byte) (T, error)
}

// Codec is a Scheme that can also lay out values in its own byte format.
type Codec[T Value] interface {
	Scheme[T]

	// Append appends the encoded form of v to dst and returns the extended slice.
	Append(dst []byte, v T) []byte

	// Order reports the byte order of the encoded form.
	Order() format.ByteOrder
}

// Ordered is implemented by schemes that know the byte order of their encoded form.
type Ordered interface {
	Order() format.ByteOrder
}

// OrderOf reports the byte order of s. The second result is false when s does
// not declare one.
func OrderOf[T Value](s Scheme[T]) (format.ByteOrder, bool) {
	o, ok := s.(Ordered)
	if !ok {
		return 0, false
	}
	order := o.Order()

	return order, order != 0
}

// Check validates a decoded value. A non-nil error marks the value as malformed.
type Check[T Value] func(v T) error

type checked[T Value] struct {
	Scheme[T]
	check Check[T]
}

// Checked wraps s so that every decoded value must also pass check.
//
// A failing check is reported as a decode failure of the byte-complete value.
func Checked[T Value](s Scheme[T], check Check[T]) Scheme[T] {
	return checked[T]{Scheme: s, check: check}
}

// Order passes through the byte order of the wrapped scheme, or 0 if it has none.
func (c checked[T]) Order() format.ByteOrder {
	if o, ok := c.Scheme.(Ordered); ok {
		return o.Order()
	}

	return 0
}

func (c checked[T]) Decode(raw []byte) (T, error) {
	v, err := c.Scheme.Decode(raw)
	if err != nil {
		return v, err
	}

	if err := c.check(v); err != nil {
		return v, err
	}

	return v, nil
}

// Finite rejects NaN and infinite values. It accepts every integer.
func Finite[T Value](v T) error {
	f := float64(v)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return fmt.Errorf("non-finite value %v", f)
	}

	return nil
}

// Validate reports whether s has a usable width.
func Validate[T Value](s Scheme[T]) error {
	if s == nil {
		return fmt.Errorf("%w: nil scheme", errs.ErrInvalidWidth)
	}
	if w := s.Width(); w <= 0 {
		return fmt.Errorf("%w: %d", errs.ErrInvalidWidth, w)
	}

	return nil
}
