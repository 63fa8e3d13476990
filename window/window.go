// Package window implements a fixed-capacity rolling window of values.
//
// New values are appended at the tail; once the window holds more than its
// capacity, the oldest values are evicted from the head, so the window always
// holds the most recent Cap() values in arrival order.
package window

import (
	"fmt"
	"iter"

	"github.com/gammazero/deque"

	"github.com/arloliu/rollstat/errs"
)

// Window is a bounded, order-preserving buffer backed by a ring deque.
//
// Push and eviction are O(1). Window is not safe for concurrent use.
type Window[T any] struct {
	values   deque.Deque[T]
	capacity int
}

// New creates an empty window holding at most capacity values.
func New[T any](capacity int) (*Window[T], error) {
	if capacity < 1 {
		return nil, fmt.Errorf("%w: %d", errs.ErrInvalidWindowSize, capacity)
	}

	return &Window[T]{capacity: capacity}, nil
}

// Push appends v at the tail and evicts from the head until Len() <= Cap().
func (w *Window[T]) Push(v T) {
	w.values.PushBack(v)
	for w.values.Len() > w.capacity {
		w.values.PopFront()
	}
}

// PushAll appends vs in order.
func (w *Window[T]) PushAll(vs []T) {
	// Only the last capacity values can survive.
	if len(vs) > w.capacity {
		vs = vs[len(vs)-w.capacity:]
	}
	for _, v := range vs {
		w.Push(v)
	}
}

// Len returns the number of values currently held.
func (w *Window[T]) Len() int {
	return w.values.Len()
}

// Cap returns the fixed capacity of the window.
func (w *Window[T]) Cap() int {
	return w.capacity
}

// At returns the i-th oldest value. It panics if i is out of range.
func (w *Window[T]) At(i int) T {
	return w.values.At(i)
}

// All returns an iterator over the values from oldest to newest.
func (w *Window[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := range w.values.Len() {
			if !yield(w.values.At(i)) {
				return
			}
		}
	}
}

// Values returns a copy of the values from oldest to newest.
func (w *Window[T]) Values() []T {
	out := make([]T, w.values.Len())
	for i := range out {
		out[i] = w.values.At(i)
	}

	return out
}

// Reset removes all values.
func (w *Window[T]) Reset() {
	w.values.Clear()
}
