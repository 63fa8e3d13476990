//go:build rollstat_queue

package rolling

import (
	"github.com/arloliu/rollstat/internal/reconstruct"
	"github.com/arloliu/rollstat/scheme"
	"github.com/arloliu/rollstat/window"
)

const strategy = "queue"

// consumer queues the values of one write and moves them into the window
// afterwards, including the values decoded before a failure.
type consumer[T scheme.Value] struct {
	rec *reconstruct.Reconstructor[T]
	win *window.Window[T]
}

func newConsumer[T scheme.Value](s scheme.Scheme[T], win *window.Window[T]) (*consumer[T], error) {
	rec, err := reconstruct.NewReconstructor(s)
	if err != nil {
		return nil, err
	}

	return &consumer[T]{rec: rec, win: win}, nil
}

func (c *consumer[T]) consume(p []byte) (int, error) {
	n, err := c.rec.Write(p)
	c.win.PushAll(c.rec.Values())
	_ = c.rec.Flush()

	return n, err
}

func (c *consumer[T]) buffered() int {
	return c.rec.Buffered()
}

func (c *consumer[T]) reset() {
	c.rec.Reset()
}
