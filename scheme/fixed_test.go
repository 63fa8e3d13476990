package scheme

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/rollstat/endian"
	"github.com/arloliu/rollstat/errs"
	"github.com/arloliu/rollstat/format"
)

func TestInt32_ByteOrders(t *testing.T) {
	raw := []byte{0x00, 0x00, 0x01, 0x02}

	be, err := BigEndianInt32().Decode(raw)
	require.NoError(t, err)
	require.Equal(t, int32(0x0102), be)

	le, err := LittleEndianInt32().Decode(raw)
	require.NoError(t, err)
	require.Equal(t, int32(0x02010000), le)

	require.Equal(t, 4, BigEndianInt32().Width())
	require.Equal(t, format.BigEndian, BigEndianInt32().Order())
	require.Equal(t, format.LittleEndian, LittleEndianInt32().Order())
}

func TestInt32_Negative(t *testing.T) {
	v, err := BigEndianInt32().Decode([]byte{0xFF, 0xFF, 0xFF, 0xFE})
	require.NoError(t, err)
	require.Equal(t, int32(-2), v)

	v, err = LittleEndianInt32().Decode([]byte{0xFE, 0xFF, 0xFF, 0xFF})
	require.NoError(t, err)
	require.Equal(t, int32(-2), v)
}

func TestFixed_NotEnoughData(t *testing.T) {
	for n := range 4 {
		_, err := BigEndianInt32().Decode(make([]byte, n))
		require.ErrorIs(t, err, errs.ErrNotEnoughData)
	}

	_, err := Float64(endian.GetLittleEndianEngine()).Decode(make([]byte, 7))
	require.ErrorIs(t, err, errs.ErrNotEnoughData)
}

func TestFixed_IgnoresExcessBytes(t *testing.T) {
	v, err := BigEndianInt32().Decode([]byte{0, 0, 0, 7, 0xAA, 0xBB})
	require.NoError(t, err)
	require.Equal(t, int32(7), v)
}

func roundTrip[T Value](t *testing.T, c Codec[T], values []T) {
	t.Helper()

	var buf []byte
	for _, v := range values {
		buf = c.Append(buf, v)
	}
	require.Len(t, buf, len(values)*c.Width())

	for i, want := range values {
		got, err := c.Decode(buf[i*c.Width():])
		require.NoError(t, err)
		require.Equal(t, want, got)
	}
}

func TestFixed_RoundTrip(t *testing.T) {
	engines := map[string]endian.EndianEngine{
		"little": endian.GetLittleEndianEngine(),
		"big":    endian.GetBigEndianEngine(),
	}

	for name, engine := range engines {
		t.Run(name, func(t *testing.T) {
			roundTrip(t, Int16(engine), []int16{0, 1, -1, math.MaxInt16, math.MinInt16})
			roundTrip(t, Uint16(engine), []uint16{0, 1, math.MaxUint16})
			roundTrip(t, Int32(engine), []int32{0, 1, -1, math.MaxInt32, math.MinInt32})
			roundTrip(t, Uint32(engine), []uint32{0, 42, math.MaxUint32})
			roundTrip(t, Int64(engine), []int64{0, -5, math.MaxInt64, math.MinInt64})
			roundTrip(t, Uint64(engine), []uint64{0, 7, math.MaxUint64})
			roundTrip(t, Float32(engine), []float32{0, 1.5, -3.25, math.MaxFloat32})
			roundTrip(t, Float64(engine), []float64{0, math.Pi, -math.E, math.SmallestNonzeroFloat64})
		})
	}
}

func TestChecked(t *testing.T) {
	engine := endian.GetLittleEndianEngine()
	s := Checked(Float32(engine), Finite[float32])
	require.Equal(t, 4, s.Width())

	ok := Float32(engine).Append(nil, 2.5)
	v, err := s.Decode(ok)
	require.NoError(t, err)
	require.Equal(t, float32(2.5), v)

	nan := Float32(engine).Append(nil, float32(math.NaN()))
	_, err = s.Decode(nan)
	require.Error(t, err)
	require.Contains(t, err.Error(), "non-finite")

	// Short input is still reported by the inner scheme.
	_, err = s.Decode(ok[:2])
	require.ErrorIs(t, err, errs.ErrNotEnoughData)
}

func TestChecked_Custom(t *testing.T) {
	errOdd := errors.New("odd value")
	s := Checked[int32](BigEndianInt32(), func(v int32) error {
		if v%2 != 0 {
			return errOdd
		}
		return nil
	})

	_, err := s.Decode([]byte{0, 0, 0, 3})
	require.ErrorIs(t, err, errOdd)

	v, err := s.Decode([]byte{0, 0, 0, 4})
	require.NoError(t, err)
	require.Equal(t, int32(4), v)
}

func TestOrderOf(t *testing.T) {
	order, ok := OrderOf[int32](BigEndianInt32())
	require.True(t, ok)
	require.Equal(t, format.BigEndian, order)

	order, ok = OrderOf(Checked[int32](LittleEndianInt32(), Finite[int32]))
	require.True(t, ok)
	require.Equal(t, format.LittleEndian, order)

	order, ok = OrderOf(Checked(Checked[int32](LittleEndianInt32(), Finite[int32]), Finite[int32]))
	require.True(t, ok)
	require.Equal(t, format.LittleEndian, order)

	bare := widthOnly{s: BigEndianInt32()}
	_, ok = OrderOf[int32](bare)
	require.False(t, ok)

	_, ok = OrderOf(Checked[int32](bare, Finite[int32]))
	require.False(t, ok)
}

// widthOnly hides every method of a scheme except Width and Decode.
type widthOnly struct {
	s Scheme[int32]
}

func (w widthOnly) Width() int                       { return w.s.Width() }
func (w widthOnly) Decode(raw []byte) (int32, error) { return w.s.Decode(raw) }

func TestFinite_Integers(t *testing.T) {
	require.NoError(t, Finite(int32(math.MaxInt32)))
	require.NoError(t, Finite(uint64(math.MaxUint64)))
	require.Error(t, Finite(math.Inf(-1)))
}

type zeroWidth struct{}

func (zeroWidth) Width() int                   { return 0 }
func (zeroWidth) Decode([]byte) (int32, error) { return 0, nil }

func TestValidate(t *testing.T) {
	require.NoError(t, Validate[int32](BigEndianInt32()))
	require.ErrorIs(t, Validate[int32](zeroWidth{}), errs.ErrInvalidWidth)
	require.ErrorIs(t, Validate[int32](nil), errs.ErrInvalidWidth)
}
