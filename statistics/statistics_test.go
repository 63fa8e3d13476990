package statistics

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat"

	"github.com/arloliu/rollstat/errs"
)

// values is a slice-backed Source.
type values[T int32 | int64 | float64] []T

func (v values[T]) Len() int   { return len(v) }
func (v values[T]) At(i int) T { return v[i] }

func (v values[T]) f64() []float64 {
	out := make([]float64, len(v))
	for i, x := range v {
		out[i] = float64(x)
	}
	return out
}

func TestMean(t *testing.T) {
	require.InDelta(t, 5.0, Mean(values[int32]{5, 5, 5}, 3), 1e-6)
	require.InDelta(t, 3.0, Mean(values[int32]{2, 3, 4}, 3), 1e-6)
	require.InDelta(t, 2.5, Mean(values[float64]{1, 4}, 10), 1e-6)
}

func TestMean_EmptyIsZero(t *testing.T) {
	m := Mean(values[int32]{}, 3)
	require.Equal(t, float32(0), m)
	require.False(t, math.IsNaN(float64(m)))
}

func TestMean_NativeOverflowWraps(t *testing.T) {
	// int32 addition wraps: MaxInt32 + 1 == MinInt32.
	m := Mean(values[int32]{math.MaxInt32, 1}, 2)
	require.InDelta(t, float64(math.MinInt32)/2, float64(m), 1)
}

func TestStdDev(t *testing.T) {
	require.InDelta(t, 1.0, StdDev(values[int32]{2, 3, 4}, 3), 1e-6)
	require.InDelta(t, 0.0, StdDev(values[int32]{5, 5, 5}, 3), 1e-6)
}

func TestStdDev_MatchesSampleStdDev(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	data := make(values[float64], 64)
	for i := range data {
		data[i] = rng.NormFloat64()*3 + 10
	}

	want := stat.StdDev(data.f64(), nil)
	require.InDelta(t, want, float64(StdDev(data, len(data))), 1e-4)
}

func TestStdDev_FewValues(t *testing.T) {
	// With fewer than two values the divisor is forced to 1.
	require.Equal(t, float32(0), StdDev(values[int32]{}, 3))
	require.Equal(t, float32(0), StdDev(values[int32]{42}, 3))
}

func TestSum(t *testing.T) {
	require.Equal(t, int64(6), Sum(values[int64]{1, 2, 3}))
	require.Equal(t, int32(0), Sum(values[int32]{}))
}

func TestRand(t *testing.T) {
	src := rand.NewPCG(1, 1)

	var sum float64
	const n = 2000
	for range n {
		v, err := Rand(100, 5, src)
		require.NoError(t, err)
		sum += float64(v)
	}
	assert.InDelta(t, 100, sum/n, 1)
}

func TestRand_Deterministic(t *testing.T) {
	a, err := Rand(3, 1, rand.NewPCG(9, 9))
	require.NoError(t, err)
	b, err := Rand(3, 1, rand.NewPCG(9, 9))
	require.NoError(t, err)
	require.Equal(t, a, b)
}

func TestRand_ZeroStdDev(t *testing.T) {
	v, err := Rand(4, 0, nil)
	require.NoError(t, err)
	require.Equal(t, float32(4), v)
}

func TestRand_InvalidParameters(t *testing.T) {
	nan := float32(math.NaN())
	inf := float32(math.Inf(1))

	cases := []struct {
		name         string
		mean, stddev float32
	}{
		{"negative stddev", 0, -1},
		{"nan stddev", 0, nan},
		{"inf stddev", 0, inf},
		{"nan mean", nan, 1},
		{"inf mean", -inf, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Rand(tc.mean, tc.stddev, nil)
			require.ErrorIs(t, err, errs.ErrInvalidDistribution)
		})
	}
}
