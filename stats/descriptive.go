package stats

import (
	"fmt"
	"math"
	"slices"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/arloliu/hellomath/errs"
)

// Descriptive accumulates a sequence of float64 samples and reports
// descriptive statistics over them.
//
// Insertion order is preserved. None of the statistics depend on it.
type Descriptive struct {
	values []float64
}

// Summary is a snapshot of the most common statistics of a sample set.
type Summary struct {
	N      int
	Mean   float64
	StdDev float64
	Min    float64
	Max    float64
	Sum    float64
}

// String returns a string representation of the summary.
func (s Summary) String() string {
	return fmt.Sprintf("Summary{N: %d, Mean: %g, StdDev: %g, Min: %g, Max: %g, Sum: %g}",
		s.N, s.Mean, s.StdDev, s.Min, s.Max, s.Sum)
}

// NewDescriptive creates an empty accumulator.
func NewDescriptive() *Descriptive {
	return &Descriptive{}
}

// Add appends a value to the sample set.
func (d *Descriptive) Add(value float64) {
	d.values = append(d.values, value)
}

// AddAll appends values to the sample set in order.
func (d *Descriptive) AddAll(values ...float64) {
	d.values = append(d.values, values...)
}

// N returns the number of values added.
func (d *Descriptive) N() int {
	return len(d.values)
}

// Values returns a copy of the samples in insertion order.
func (d *Descriptive) Values() []float64 {
	return slices.Clone(d.values)
}

// Clear removes all samples.
func (d *Descriptive) Clear() {
	d.values = d.values[:0]
}

// Sum returns the sum of all samples, or 0 for an empty set.
func (d *Descriptive) Sum() float64 {
	return floats.Sum(d.values)
}

// Mean returns the arithmetic mean of the samples.
//
// Returns:
//   - float64: Arithmetic mean
//   - error: errs.ErrInsufficientData if no samples were added
func (d *Descriptive) Mean() (float64, error) {
	if err := d.require(1, "mean"); err != nil {
		return 0, err
	}

	return stat.Mean(d.values, nil), nil
}

// StandardDeviation returns the sample standard deviation, using the n-1
// (Bessel corrected) denominator: sqrt(Σ(xi - mean)² / (n - 1)).
//
// Returns:
//   - float64: Sample standard deviation
//   - error: errs.ErrInsufficientData if fewer than 2 samples were added
func (d *Descriptive) StandardDeviation() (float64, error) {
	if err := d.require(2, "standard deviation"); err != nil {
		return 0, err
	}

	return stat.StdDev(d.values, nil), nil
}

// Variance returns the sample variance with the n-1 denominator.
func (d *Descriptive) Variance() (float64, error) {
	if err := d.require(2, "variance"); err != nil {
		return 0, err
	}

	return stat.Variance(d.values, nil), nil
}

// PopulationVariance returns the variance with the n denominator.
// A single sample has a population variance of 0.
func (d *Descriptive) PopulationVariance() (float64, error) {
	if err := d.require(1, "population variance"); err != nil {
		return 0, err
	}

	n := len(d.values)
	if n == 1 {
		return 0, nil
	}

	return stat.Variance(d.values, nil) * float64(n-1) / float64(n), nil
}

// Min returns the smallest sample.
func (d *Descriptive) Min() (float64, error) {
	if err := d.require(1, "min"); err != nil {
		return 0, err
	}

	return floats.Min(d.values), nil
}

// Max returns the largest sample.
func (d *Descriptive) Max() (float64, error) {
	if err := d.require(1, "max"); err != nil {
		return 0, err
	}

	return floats.Max(d.values), nil
}

// Percentile returns the p-th percentile of the samples, p in (0, 100].
//
// The estimate interpolates linearly between the two closest ranks at
// position p(n+1)/100 of the sorted samples. Positions before the first or
// past the last sample clamp to Min and Max.
func (d *Descriptive) Percentile(p float64) (float64, error) {
	if math.IsNaN(p) || p <= 0 || p > 100 {
		return 0, fmt.Errorf("%w: percentile %v out of range (0, 100]", errs.ErrInvalidArgument, p)
	}
	if err := d.require(1, "percentile"); err != nil {
		return 0, err
	}

	sorted := slices.Clone(d.values)
	slices.Sort(sorted)

	n := len(sorted)
	pos := p * float64(n+1) / 100
	switch {
	case pos < 1:
		return sorted[0], nil
	case pos >= float64(n):
		return sorted[n-1], nil
	}

	rank, frac := math.Modf(pos)
	lower := sorted[int(rank)-1]
	upper := sorted[int(rank)]

	return lower + frac*(upper-lower), nil
}

// Summary returns N, mean, standard deviation, min, max and sum in one call.
func (d *Descriptive) Summary() (Summary, error) {
	sd, err := d.StandardDeviation()
	if err != nil {
		return Summary{}, err
	}

	return Summary{
		N:      len(d.values),
		Mean:   stat.Mean(d.values, nil),
		StdDev: sd,
		Min:    floats.Min(d.values),
		Max:    floats.Max(d.values),
		Sum:    floats.Sum(d.values),
	}, nil
}

func (d *Descriptive) require(n int, what string) error {
	if len(d.values) < n {
		return fmt.Errorf("%w: %s needs at least %d values, have %d", errs.ErrInsufficientData, what, n, len(d.values))
	}

	return nil
}
