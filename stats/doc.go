// Package stats provides descriptive statistics over an accumulated sample set.
//
// The Descriptive accumulator owns the values added to it and answers queries
// such as mean, sample standard deviation, variance, extrema and percentiles.
// All numeric work is delegated to gonum's stat and floats packages.
//
// # Basic Usage
//
//	d := stats.NewDescriptive()
//	d.AddAll(1, 2, 3, 4, 5)
//
//	mean, err := d.Mean()              // 3
//	sd, err := d.StandardDeviation()   // sqrt(2.5)
//
// # Error Handling
//
// Queries that are undefined for the current sample count return an error
// wrapping errs.ErrInsufficientData:
//
//   - Mean, Min, Max, Percentile and PopulationVariance need at least 1 value
//   - StandardDeviation, Variance and Summary need at least 2 values
//
// # Thread Safety
//
// Descriptive is not safe for concurrent use. Each accumulator is meant to be
// owned and mutated by a single caller.
package stats
