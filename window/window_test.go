package window

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/rollstat/errs"
)

func TestNew_InvalidCapacity(t *testing.T) {
	for _, c := range []int{0, -1} {
		_, err := New[int32](c)
		require.ErrorIs(t, err, errs.ErrInvalidWindowSize)
	}
}

func TestWindow_PushEvictsOldest(t *testing.T) {
	w, err := New[int32](3)
	require.NoError(t, err)
	require.Equal(t, 0, w.Len())
	require.Equal(t, 3, w.Cap())

	for i := int32(1); i <= 5; i++ {
		w.Push(i)
		require.LessOrEqual(t, w.Len(), w.Cap())
	}

	require.Equal(t, 3, w.Len())
	require.Equal(t, []int32{3, 4, 5}, w.Values())
	require.Equal(t, int32(3), w.At(0))
	require.Equal(t, int32(5), w.At(2))
}

func TestWindow_PushAll(t *testing.T) {
	w, err := New[int](4)
	require.NoError(t, err)

	w.PushAll([]int{1, 2})
	require.Equal(t, []int{1, 2}, w.Values())

	w.PushAll([]int{3, 4, 5})
	require.Equal(t, []int{2, 3, 4, 5}, w.Values())

	w.PushAll([]int{10, 11, 12, 13, 14, 15})
	require.Equal(t, []int{12, 13, 14, 15}, w.Values())

	w.PushAll(nil)
	require.Equal(t, 4, w.Len())
}

func TestWindow_CapacityOne(t *testing.T) {
	w, err := New[float64](1)
	require.NoError(t, err)

	w.Push(1.5)
	w.Push(2.5)
	require.Equal(t, []float64{2.5}, w.Values())
}

func TestWindow_All(t *testing.T) {
	w, err := New[int](3)
	require.NoError(t, err)
	w.PushAll([]int{7, 8, 9})

	require.Equal(t, []int{7, 8, 9}, slices.Collect(w.All()))

	var first []int
	for v := range w.All() {
		first = append(first, v)
		break
	}
	require.Equal(t, []int{7}, first)
}

func TestWindow_ValuesIsCopy(t *testing.T) {
	w, err := New[int](2)
	require.NoError(t, err)
	w.PushAll([]int{1, 2})

	vs := w.Values()
	vs[0] = 100
	require.Equal(t, 1, w.At(0))
}

func TestWindow_Reset(t *testing.T) {
	w, err := New[int](2)
	require.NoError(t, err)
	w.PushAll([]int{1, 2})

	w.Reset()
	require.Equal(t, 0, w.Len())
	require.Empty(t, w.Values())

	w.Push(3)
	require.Equal(t, []int{3}, w.Values())
}
