// Package hellomath computes descriptive statistics and a simple linear
// regression over paired samples and renders them as a short text report.
//
// Run is the pure entry point used by the hellomath command:
//
//	report, err := hellomath.Run(xs, ys)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	report.WriteTo(os.Stdout)
//
// prints three lines of the form
//
//	avg=3.0, std.dev=1.5811388300841898
//	regression: y = <slope> * x + <intercept>
//	R²=<coefficient of determination>
//
// where slope ≈ 2.03, intercept ≈ -0.03 and R² ≈ 0.99896 for the demo
// samples x = [1, 2, 3, 4, 5], y = [2, 4.1, 5.9, 8.2, 10.1].
// The mean and standard deviation describe the x values; the regression is
// fitted on the (x, y) pairs.
//
// # Package Structure
//
//   - stats: descriptive statistics accumulator
//   - regression: simple least-squares regression accumulator
//   - dataset: CSV dataset loading, optionally compressed
//   - compress: streaming codecs used by dataset
//   - errs: sentinel errors shared by all packages
package hellomath

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/arloliu/hellomath/errs"
	"github.com/arloliu/hellomath/internal/hash"
	"github.com/arloliu/hellomath/internal/options"
	"github.com/arloliu/hellomath/regression"
	"github.com/arloliu/hellomath/stats"
)

// RunConfig holds the configuration of a Run.
type RunConfig struct {
	HasIntercept bool
}

// RunOption is a functional option for RunConfig.
type RunOption = options.Option[*RunConfig]

// WithIntercept sets whether the regression includes an intercept term.
// The default is true.
func WithIntercept(enabled bool) RunOption {
	return options.NoError(func(cfg *RunConfig) {
		cfg.HasIntercept = enabled
	})
}

// Report holds the results of a Run.
type Report struct {
	// N is the number of (x, y) pairs.
	N int
	// Mean is the arithmetic mean of the x values.
	Mean float64
	// StdDev is the sample standard deviation of the x values.
	StdDev float64
	// Slope, Intercept and RSquared describe the fitted line.
	Slope        float64
	Intercept    float64
	RSquared     float64
	HasIntercept bool
	// Fingerprint is the xxHash64 of the input series.
	Fingerprint uint64
}

// Run computes the mean and sample standard deviation of xs and fits a simple
// linear regression to the pairs (xs[i], ys[i]).
//
// Parameters:
//   - xs: Explanatory values, also used for the descriptive statistics
//   - ys: Response values, paired with xs by index
//   - opts: Optional run options
//
// Returns:
//   - *Report: Computed statistics
//   - error: errs.ErrMismatchedLength for unpaired input, errs.ErrInsufficientData
//     for fewer than 2 pairs, x values that fix no slope, or identical y values
//     (R² is undefined when y does not vary)
func Run(xs, ys []float64, opts ...RunOption) (*Report, error) {
	cfg := RunConfig{HasIntercept: true}
	if err := options.Apply(&cfg, opts...); err != nil {
		return nil, err
	}
	if len(xs) != len(ys) {
		return nil, fmt.Errorf("%w: %d x values vs %d y values", errs.ErrMismatchedLength, len(xs), len(ys))
	}

	desc := stats.NewDescriptive()
	desc.AddAll(xs...)

	mean, err := desc.Mean()
	if err != nil {
		return nil, err
	}
	sd, err := desc.StandardDeviation()
	if err != nil {
		return nil, err
	}

	reg, err := regression.NewSimple(regression.WithIntercept(cfg.HasIntercept))
	if err != nil {
		return nil, err
	}
	for i := range xs {
		reg.AddData(xs[i], ys[i])
	}

	model, err := reg.Fit()
	if err != nil {
		return nil, fmt.Errorf("regression: %w", err)
	}

	return &Report{
		N:            len(xs),
		Mean:         mean,
		StdDev:       sd,
		Slope:        model.Slope,
		Intercept:    model.Intercept,
		RSquared:     model.RSquared,
		HasIntercept: cfg.HasIntercept,
		Fingerprint:  hash.Samples(xs, ys),
	}, nil
}

// Lines returns the report as printable lines, without trailing newlines.
func (r *Report) Lines() []string {
	return []string{
		"avg=" + formatFloat(r.Mean) + ", std.dev=" + formatFloat(r.StdDev),
		"regression: y = " + formatFloat(r.Slope) + " * x + " + formatFloat(r.Intercept),
		"R²=" + formatFloat(r.RSquared),
	}
}

// WriteTo writes the report lines to w, one per line.
func (r *Report) WriteTo(w io.Writer) (int64, error) {
	var sb strings.Builder
	for _, line := range r.Lines() {
		sb.WriteString(line)
		sb.WriteByte('\n')
	}
	n, err := io.WriteString(w, sb.String())

	return int64(n), err
}

// formatFloat renders v as the shortest decimal that round-trips, keeping a
// fractional digit on integral values (3 -> "3.0").
func formatFloat(v float64) string {
	s := strconv.FormatFloat(v, 'g', -1, 64)
	if strings.ContainsAny(s, ".eIN") {
		return s
	}

	return s + ".0"
}
