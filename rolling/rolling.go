package rolling

import (
	"fmt"
	"io"
	"math/rand/v2"

	"github.com/arloliu/rollstat/errs"
	"github.com/arloliu/rollstat/internal/options"
	"github.com/arloliu/rollstat/scheme"
	"github.com/arloliu/rollstat/snapshot"
	"github.com/arloliu/rollstat/statistics"
	"github.com/arloliu/rollstat/window"
)

// RollingStats reconstructs values of type T from a byte stream and keeps
// running statistics over the most recent of them.
type RollingStats[T scheme.Value] struct {
	scheme   scheme.Scheme[T]
	window   *window.Window[T]
	consumer *consumer[T]
	rng      rand.Source
}

var (
	_ io.Writer             = (*RollingStats[int32])(nil)
	_ statistics.Statistics = (*RollingStats[int32])(nil)
)

// New creates an empty RollingStats decoding values with s and keeping the last
// windowSize of them.
//
// It returns errs.ErrInvalidWidth if s has no usable width and
// errs.ErrInvalidWindowSize if windowSize is less than one.
func New[T scheme.Value](s scheme.Scheme[T], windowSize int, opts ...Option) (*RollingStats[T], error) {
	cfg := &config{}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	if err := scheme.Validate(s); err != nil {
		return nil, err
	}

	win, err := window.New[T](windowSize)
	if err != nil {
		return nil, err
	}

	c, err := newConsumer(s, win)
	if err != nil {
		return nil, err
	}

	return &RollingStats[T]{
		scheme:   s,
		window:   win,
		consumer: c,
		rng:      cfg.rng,
	}, nil
}

// Write reconstructs values from p and pushes them into the window. Bytes that
// do not complete a value are kept until the next write.
//
// It returns len(p) on success. On a decode failure the values completed before
// the failing one are already in the window, n counts the bytes folded into
// them, and the error wraps errs.ErrDecodeFailure.
func (r *RollingStats[T]) Write(p []byte) (int, error) {
	return r.consumer.consume(p)
}

// Len returns the number of values currently in the window.
func (r *RollingStats[T]) Len() int {
	return r.window.Len()
}

// Cap returns the window size.
func (r *RollingStats[T]) Cap() int {
	return r.window.Cap()
}

// Buffered returns the number of bytes waiting for the rest of a split value.
func (r *RollingStats[T]) Buffered() int {
	return r.consumer.buffered()
}

// Mean returns the mean of the window; an empty window has mean 0.
func (r *RollingStats[T]) Mean() float32 {
	return statistics.Mean[T](r.window, r.window.Cap())
}

// StdDev returns the sample standard deviation of the window.
func (r *RollingStats[T]) StdDev() float32 {
	return statistics.StdDev[T](r.window, r.window.Cap())
}

// Rand draws one sample from the normal distribution with the window's mean
// and standard deviation.
func (r *RollingStats[T]) Rand() (float32, error) {
	return statistics.Rand(r.Mean(), r.StdDev(), r.rng)
}

// Summary returns descriptive statistics of the window.
func (r *RollingStats[T]) Summary() (statistics.Summary, error) {
	return statistics.Summarize[T](r.window, r.window.Cap())
}

// Values returns a copy of the window from oldest to newest.
func (r *RollingStats[T]) Values() []T {
	return r.window.Values()
}

// Snapshot encodes the window into a snapshot frame. Bytes of a split value
// are not part of the snapshot.
//
// It returns errs.ErrSchemeNotEncodable if the scheme cannot lay values out,
// which is the case for schemes wrapped by scheme.Checked.
func (r *RollingStats[T]) Snapshot(opts ...snapshot.Option) ([]byte, error) {
	codec, ok := r.scheme.(scheme.Codec[T])
	if !ok {
		return nil, fmt.Errorf("%w: %T", errs.ErrSchemeNotEncodable, r.scheme)
	}

	return snapshot.Encode(codec, r.window.All(), opts...)
}

// Restore replaces the window with the values of a snapshot frame and drops any
// split-value bytes. When the frame holds more values than Cap(), the newest
// Cap() values are kept.
//
// The frame must have been produced by a compatible scheme. On error the
// RollingStats is left unchanged.
func (r *RollingStats[T]) Restore(frame []byte) error {
	f, err := snapshot.Decode(frame)
	if err != nil {
		return err
	}
	if err := snapshot.Compatible(f, r.scheme); err != nil {
		return err
	}

	win, err := window.New[T](r.window.Cap())
	if err != nil {
		return err
	}
	c, err := newConsumer(r.scheme, win)
	if err != nil {
		return err
	}
	if _, err := c.consume(f.Payload); err != nil {
		return fmt.Errorf("restore snapshot: %w", err)
	}

	r.window, r.consumer = win, c

	return nil
}

// Reset empties the window and drops any split-value bytes.
func (r *RollingStats[T]) Reset() {
	r.window.Reset()
	r.consumer.reset()
}

// String implements fmt.Stringer.
func (r *RollingStats[T]) String() string {
	return fmt.Sprintf("RollingStats[%T]{len=%d cap=%d mean=%g stddev=%g}",
		*new(T), r.Len(), r.Cap(), r.Mean(), r.StdDev())
}
