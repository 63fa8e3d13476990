package pool

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewByteBuffer(t *testing.T) {
	bb := NewByteBuffer(64)

	require.NotNil(t, bb)
	assert.Equal(t, 0, bb.Len())
	assert.Equal(t, 64, cap(bb.B))
}

func TestByteBuffer_Write(t *testing.T) {
	bb := NewByteBuffer(2)

	n, err := bb.Write([]byte{0, 0, 0, 1})
	require.NoError(t, err)
	assert.Equal(t, 4, n)

	_, err = bb.Write([]byte{0, 0, 0, 2})
	require.NoError(t, err)
	assert.Equal(t, []byte{0, 0, 0, 1, 0, 0, 0, 2}, bb.Bytes())
}

func TestByteBuffer_Reset(t *testing.T) {
	bb := NewByteBuffer(16)
	_, _ = bb.Write([]byte("payload"))
	capBefore := cap(bb.B)

	bb.Reset()
	assert.Equal(t, 0, bb.Len())
	assert.Equal(t, capBefore, cap(bb.B))
}

func TestByteBuffer_Grow(t *testing.T) {
	t.Run("no-op with enough capacity", func(t *testing.T) {
		bb := NewByteBuffer(32)
		bb.Grow(16)
		assert.Equal(t, 32, cap(bb.B))
	})

	t.Run("small buffer grows by default size", func(t *testing.T) {
		bb := NewByteBuffer(8)
		_, _ = bb.Write([]byte{1, 2, 3})
		bb.Grow(64)
		assert.Equal(t, 3+PayloadBufferDefaultSize, cap(bb.B))
		assert.Equal(t, []byte{1, 2, 3}, bb.Bytes())
	})

	t.Run("grows at least by the request", func(t *testing.T) {
		bb := NewByteBuffer(0)
		bb.Grow(PayloadBufferDefaultSize * 2)
		assert.GreaterOrEqual(t, cap(bb.B), PayloadBufferDefaultSize*2)
	})

	t.Run("large buffer grows by a quarter", func(t *testing.T) {
		size := 8 * PayloadBufferDefaultSize
		bb := NewByteBuffer(size)
		bb.B = bb.B[:size]
		bb.Grow(1)
		assert.Equal(t, size+size/4, cap(bb.B))
	})
}

func TestByteBufferPool(t *testing.T) {
	p := NewByteBufferPool(16, 64)

	bb := p.Get()
	require.NotNil(t, bb)
	_, _ = bb.Write([]byte("abc"))
	p.Put(bb)

	again := p.Get()
	require.NotNil(t, again)
	assert.Equal(t, 0, again.Len(), "buffers come back empty")

	// nil and oversized buffers are ignored.
	p.Put(nil)
	p.Put(NewByteBuffer(128))
}

func TestPayloadBuffer(t *testing.T) {
	bb := GetPayloadBuffer()
	require.NotNil(t, bb)
	assert.Equal(t, 0, bb.Len())
	PutPayloadBuffer(bb)
}
