// Package statistics computes running statistics over the contents of a rolling window.
//
// All functions are pure reads over a Source; none of them mutate it. The window
// size is passed explicitly so that divisors follow the logical window capacity:
//
//   - Mean divides by max(min(windowSize, n), 1), so an empty window has mean 0.
//   - StdDev applies Bessel's correction with divisor max(min(windowSize, n), 2) - 1.
//     With fewer than two values the divisor is 1 and the result is defined but not
//     statistically meaningful.
package statistics

import (
	"fmt"
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/arloliu/rollstat/errs"
	"github.com/arloliu/rollstat/scheme"
)

// Statistics is the query surface of a rolling window.
type Statistics interface {
	// Mean returns the arithmetic mean of the window.
	Mean() float32
	// StdDev returns the sample standard deviation of the window.
	StdDev() float32
	// Rand draws one sample from the normal distribution fitted to the window.
	Rand() (float32, error)
}

// Source is a read-only, indexable view of window values from oldest to newest.
type Source[T scheme.Value] interface {
	Len() int
	At(i int) T
}

// Sum adds all values of src using T's native addition.
//
// Integer sums wrap on overflow exactly like T does.
func Sum[T scheme.Value](src Source[T]) T {
	var sum T
	for i := range src.Len() {
		sum += src.At(i)
	}

	return sum
}

// Mean returns the sum of src divided by the number of values, bounded by windowSize.
func Mean[T scheme.Value](src Source[T], windowSize int) float32 {
	n := max(min(windowSize, src.Len()), 1)

	return float32(float64(Sum(src)) / float64(n))
}

// StdDev returns the Bessel-corrected sample standard deviation of src around Mean.
func StdDev[T scheme.Value](src Source[T], windowSize int) float32 {
	mean := float64(Mean(src, windowSize))

	var sq float64
	for i := range src.Len() {
		d := float64(src.At(i)) - mean
		sq += d * d
	}

	divisor := max(min(windowSize, src.Len()), 2) - 1

	return float32(math.Sqrt(sq / float64(divisor)))
}

// Rand draws one sample from a normal distribution with the given parameters.
//
// It returns errs.ErrInvalidDistribution if either parameter is not finite or
// stdDev is negative. A zero stdDev yields mean. If src is nil the global
// math/rand/v2 source is used.
func Rand(mean, stdDev float32, src rand.Source) (float32, error) {
	mu, sigma := float64(mean), float64(stdDev)
	if !isFinite(mu) || !isFinite(sigma) || sigma < 0 {
		return 0, fmt.Errorf("%w: mean=%v stddev=%v", errs.ErrInvalidDistribution, mean, stdDev)
	}

	dist := distuv.Normal{Mu: mu, Sigma: sigma, Src: src}

	return float32(dist.Rand()), nil
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
