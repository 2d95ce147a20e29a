package stats

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/hellomath/errs"
)

func TestDescriptive_MeanAndStandardDeviation(t *testing.T) {
	d := NewDescriptive()
	d.AddAll(1, 2, 3, 4, 5)

	mean, err := d.Mean()
	require.NoError(t, err)
	require.Equal(t, 3.0, mean)

	sd, err := d.StandardDeviation()
	require.NoError(t, err)
	require.InDelta(t, math.Sqrt(2.5), sd, 1e-12)
	require.InDelta(t, 1.5811, sd, 1e-4)
}

func TestDescriptive_InsufficientData(t *testing.T) {
	t.Run("empty set", func(t *testing.T) {
		d := NewDescriptive()

		_, err := d.Mean()
		require.ErrorIs(t, err, errs.ErrInsufficientData)

		_, err = d.StandardDeviation()
		require.ErrorIs(t, err, errs.ErrInsufficientData)

		_, err = d.Min()
		require.ErrorIs(t, err, errs.ErrInsufficientData)

		_, err = d.Max()
		require.ErrorIs(t, err, errs.ErrInsufficientData)

		_, err = d.Percentile(50)
		require.ErrorIs(t, err, errs.ErrInsufficientData)

		_, err = d.PopulationVariance()
		require.ErrorIs(t, err, errs.ErrInsufficientData)

		require.Equal(t, 0.0, d.Sum())
	})

	t.Run("single value", func(t *testing.T) {
		d := NewDescriptive()
		d.Add(42)

		mean, err := d.Mean()
		require.NoError(t, err)
		require.Equal(t, 42.0, mean)

		_, err = d.StandardDeviation()
		require.ErrorIs(t, err, errs.ErrInsufficientData)

		_, err = d.Variance()
		require.ErrorIs(t, err, errs.ErrInsufficientData)

		_, err = d.Summary()
		require.ErrorIs(t, err, errs.ErrInsufficientData)

		pv, err := d.PopulationVariance()
		require.NoError(t, err)
		require.Equal(t, 0.0, pv)
	})
}

func TestDescriptive_Variance(t *testing.T) {
	d := NewDescriptive()
	d.AddAll(40, 10, 30, 20)

	v, err := d.Variance()
	require.NoError(t, err)
	require.InDelta(t, 500.0/3.0, v, 1e-9)

	pv, err := d.PopulationVariance()
	require.NoError(t, err)
	require.InDelta(t, 125.0, pv, 1e-9)
}

func TestDescriptive_Extrema(t *testing.T) {
	d := NewDescriptive()
	d.AddAll(3, -1.5, 7, 2)

	lo, err := d.Min()
	require.NoError(t, err)
	require.Equal(t, -1.5, lo)

	hi, err := d.Max()
	require.NoError(t, err)
	require.Equal(t, 7.0, hi)

	require.Equal(t, 10.5, d.Sum())
}

func TestDescriptive_Percentile(t *testing.T) {
	d := NewDescriptive()
	d.AddAll(5, 1, 4, 2, 3)

	tests := []struct {
		p        float64
		expected float64
	}{
		{10, 1},
		{20, 1.2},
		{30, 1.8},
		{50, 3},
		{75, 4.5},
		{90, 5},
		{100, 5},
	}
	for _, tt := range tests {
		got, err := d.Percentile(tt.p)
		require.NoError(t, err)
		require.InDelta(t, tt.expected, got, 1e-12, "p=%v", tt.p)
	}

	single := NewDescriptive()
	single.Add(7)
	for _, p := range []float64{1, 50, 100} {
		got, err := single.Percentile(p)
		require.NoError(t, err)
		require.Equal(t, 7.0, got, "p=%v", p)
	}

	even := NewDescriptive()
	even.AddAll(10, 20, 30, 40)
	median, err := even.Percentile(50)
	require.NoError(t, err)
	require.InDelta(t, 25.0, median, 1e-12)

	for _, p := range []float64{0, -1, 100.5, math.NaN()} {
		_, err := d.Percentile(p)
		require.ErrorIs(t, err, errs.ErrInvalidArgument, "p=%v", p)
	}

	// Percentile must not reorder the stored samples.
	require.Equal(t, []float64{5, 1, 4, 2, 3}, d.Values())
}

func TestDescriptive_Summary(t *testing.T) {
	d := NewDescriptive()
	d.AddAll(1, 2, 3, 4, 5)

	s, err := d.Summary()
	require.NoError(t, err)
	require.Equal(t, 5, s.N)
	require.Equal(t, 3.0, s.Mean)
	require.InDelta(t, math.Sqrt(2.5), s.StdDev, 1e-12)
	require.Equal(t, 1.0, s.Min)
	require.Equal(t, 5.0, s.Max)
	require.Equal(t, 15.0, s.Sum)
	require.Contains(t, s.String(), "N: 5")
}

func TestDescriptive_PermutationInvariance(t *testing.T) {
	orders := [][]float64{
		{1, 2, 3, 4, 5},
		{5, 4, 3, 2, 1},
		{3, 1, 5, 2, 4},
		{2, 5, 1, 4, 3},
	}

	ref := NewDescriptive()
	ref.AddAll(orders[0]...)
	refMean, err := ref.Mean()
	require.NoError(t, err)
	refSD, err := ref.StandardDeviation()
	require.NoError(t, err)

	for _, order := range orders[1:] {
		d := NewDescriptive()
		d.AddAll(order...)

		mean, err := d.Mean()
		require.NoError(t, err)
		require.InDelta(t, refMean, mean, 1e-12)

		sd, err := d.StandardDeviation()
		require.NoError(t, err)
		require.InDelta(t, refSD, sd, 1e-12)
	}
}

func TestDescriptive_ValuesAndClear(t *testing.T) {
	d := NewDescriptive()
	d.Add(2)
	d.Add(1)

	values := d.Values()
	require.Equal(t, []float64{2, 1}, values)

	// Values returns a copy.
	values[0] = 100
	require.Equal(t, []float64{2, 1}, d.Values())

	d.Clear()
	require.Equal(t, 0, d.N())
	_, err := d.Mean()
	require.ErrorIs(t, err, errs.ErrInsufficientData)
}
