package statistics

import (
	"fmt"

	"github.com/montanaflynn/stats"

	"github.com/arloliu/rollstat/errs"
	"github.com/arloliu/rollstat/scheme"
)

// Summary describes the distribution of the values in a window.
type Summary struct {
	Count  int
	Mean   float32
	StdDev float32
	Min    float64
	Max    float64
	Median float64
	P90    float64
	P99    float64
}

// String returns a one-line representation of the summary.
func (s Summary) String() string {
	return fmt.Sprintf("Summary{Count: %d, Mean: %.4f, StdDev: %.4f, Min: %g, Max: %g, Median: %g, P90: %g, P99: %g}",
		s.Count, s.Mean, s.StdDev, s.Min, s.Max, s.Median, s.P90, s.P99)
}

// Summarize computes a Summary of src. It returns errs.ErrEmptyWindow when src is empty.
func Summarize[T scheme.Value](src Source[T], windowSize int) (Summary, error) {
	n := src.Len()
	if n == 0 {
		return Summary{}, errs.ErrEmptyWindow
	}

	data := make(stats.Float64Data, n)
	for i := range n {
		data[i] = float64(src.At(i))
	}

	s := Summary{
		Count:  n,
		Mean:   Mean(src, windowSize),
		StdDev: StdDev(src, windowSize),
	}

	if n == 1 {
		s.Min, s.Max, s.Median, s.P90, s.P99 = data[0], data[0], data[0], data[0], data[0]
		return s, nil
	}

	var err error
	if s.Min, err = data.Min(); err != nil {
		return Summary{}, fmt.Errorf("min: %w", err)
	}
	if s.Max, err = data.Max(); err != nil {
		return Summary{}, fmt.Errorf("max: %w", err)
	}
	if s.Median, err = data.Median(); err != nil {
		return Summary{}, fmt.Errorf("median: %w", err)
	}
	if s.P90, err = data.Percentile(90); err != nil {
		return Summary{}, fmt.Errorf("p90: %w", err)
	}
	if s.P99, err = data.Percentile(99); err != nil {
		return Summary{}, fmt.Errorf("p99: %w", err)
	}

	return s, nil
}
