//go:build !rollstat_queue

package rolling

import (
	"github.com/arloliu/rollstat/internal/reconstruct"
	"github.com/arloliu/rollstat/scheme"
	"github.com/arloliu/rollstat/window"
)

const strategy = "direct"

// consumer feeds every completed value straight into the window.
type consumer[T scheme.Value] struct {
	buf  *reconstruct.PartialBuffer[T]
	push func(T)
}

func newConsumer[T scheme.Value](s scheme.Scheme[T], win *window.Window[T]) (*consumer[T], error) {
	buf, err := reconstruct.NewPartialBuffer(s)
	if err != nil {
		return nil, err
	}

	return &consumer[T]{buf: buf, push: win.Push}, nil
}

func (c *consumer[T]) consume(p []byte) (int, error) {
	return c.buf.Consume(p, c.push)
}

func (c *consumer[T]) buffered() int {
	return c.buf.Buffered()
}

func (c *consumer[T]) reset() {
	c.buf.Reset()
}
