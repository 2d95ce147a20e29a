package regression

import (
	"fmt"
	"math"
	"slices"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/arloliu/hellomath/errs"
	"github.com/arloliu/hellomath/internal/options"
)

// Simple accumulates (x, y) pairs and fits a single-variable least-squares line.
type Simple struct {
	xs           []float64
	ys           []float64
	hasIntercept bool
}

// NewSimple creates an empty regression. The model includes an intercept
// unless WithIntercept(false) is given.
//
// Parameters:
//   - opts: Optional configuration options
//
// Returns:
//   - *Simple: New regression accumulator
//   - error: Error if any option fails to apply
func NewSimple(opts ...Option) (*Simple, error) {
	cfg := defaultConfig()
	if err := options.Apply(&cfg, opts...); err != nil {
		return nil, err
	}

	return &Simple{hasIntercept: cfg.HasIntercept}, nil
}

// HasIntercept reports whether the fitted model includes an intercept term.
func (s *Simple) HasIntercept() bool {
	return s.hasIntercept
}

// AddData appends the pair (x, y).
func (s *Simple) AddData(x, y float64) {
	s.xs = append(s.xs, x)
	s.ys = append(s.ys, y)
}

// AddAll appends the pairs (xs[i], ys[i]) in order.
// Nothing is added if the slices differ in length.
func (s *Simple) AddAll(xs, ys []float64) error {
	if len(xs) != len(ys) {
		return fmt.Errorf("%w: %d x values vs %d y values", errs.ErrMismatchedLength, len(xs), len(ys))
	}
	s.xs = append(s.xs, xs...)
	s.ys = append(s.ys, ys...)

	return nil
}

// N returns the number of pairs added.
func (s *Simple) N() int {
	return len(s.xs)
}

// Points returns copies of the x and y values in insertion order.
func (s *Simple) Points() (xs, ys []float64) {
	return slices.Clone(s.xs), slices.Clone(s.ys)
}

// Clear removes all pairs. The intercept setting is kept.
func (s *Simple) Clear() {
	s.xs = s.xs[:0]
	s.ys = s.ys[:0]
}

// Slope returns the least-squares slope.
//
// Returns:
//   - float64: Fitted slope
//   - error: errs.ErrInsufficientData if fewer than 2 pairs were added or
//     the x values do not determine a slope
func (s *Simple) Slope() (float64, error) {
	_, beta, err := s.fit()
	return beta, err
}

// Intercept returns the fitted intercept, ȳ - slope*x̄.
// Without an intercept term it always returns 0.
func (s *Simple) Intercept() (float64, error) {
	if !s.hasIntercept {
		return 0, nil
	}
	alpha, _, err := s.fit()

	return alpha, err
}

// RSquared returns the coefficient of determination 1 - SSres/SStot.
//
// Returns:
//   - float64: R² (1.0 is a perfect fit; may be negative through the origin)
//   - error: errs.ErrInsufficientData if the slope is undefined or all y
//     values are identical
func (s *Simple) RSquared() (float64, error) {
	alpha, beta, err := s.fit()
	if err != nil {
		return 0, err
	}
	if err := s.requireYSpread(); err != nil {
		return 0, err
	}

	return stat.RSquared(s.xs, s.ys, nil, alpha, beta), nil
}

// R returns the Pearson correlation coefficient of the stored pairs.
func (s *Simple) R() (float64, error) {
	if err := s.requireSlope(); err != nil {
		return 0, err
	}
	if err := s.requireYSpread(); err != nil {
		return 0, err
	}
	if !s.hasIntercept && floats.Min(s.xs) == floats.Max(s.xs) {
		return 0, fmt.Errorf("%w: correlation needs varying x values", errs.ErrInsufficientData)
	}

	return stat.Correlation(s.xs, s.ys, nil), nil
}

// Predict returns the fitted value slope*x + intercept.
func (s *Simple) Predict(x float64) (float64, error) {
	alpha, beta, err := s.fit()
	if err != nil {
		return 0, err
	}

	return beta*x + alpha, nil
}

// SumSquaredErrors returns the residual sum of squares Σ(yi - ŷi)².
func (s *Simple) SumSquaredErrors() (float64, error) {
	alpha, beta, err := s.fit()
	if err != nil {
		return 0, err
	}

	return s.sse(alpha, beta), nil
}

// TotalSumSquares returns Σ(yi - ȳ)².
func (s *Simple) TotalSumSquares() (float64, error) {
	if len(s.ys) < 2 {
		return 0, fmt.Errorf("%w: total sum of squares needs at least 2 points, have %d", errs.ErrInsufficientData, len(s.ys))
	}

	return stat.Variance(s.ys, nil) * float64(len(s.ys)-1), nil
}

// MeanSquareError returns SSE divided by the residual degrees of freedom,
// n-2 with an intercept and n-1 through the origin.
func (s *Simple) MeanSquareError() (float64, error) {
	alpha, beta, err := s.fit()
	if err != nil {
		return 0, err
	}

	df := len(s.xs) - 1
	if s.hasIntercept {
		df--
	}
	if df < 1 {
		return 0, fmt.Errorf("%w: mean square error needs at least 1 residual degree of freedom", errs.ErrInsufficientData)
	}

	return s.sse(alpha, beta) / float64(df), nil
}

// Fit returns a detached snapshot of the fitted model.
func (s *Simple) Fit() (*Model, error) {
	alpha, beta, err := s.fit()
	if err != nil {
		return nil, err
	}
	r2, err := s.RSquared()
	if err != nil {
		return nil, err
	}

	n := len(s.xs)

	return &Model{
		Slope:        beta,
		Intercept:    alpha,
		RSquared:     r2,
		RMSE:         math.Sqrt(s.sse(alpha, beta) / float64(n)),
		N:            n,
		HasIntercept: s.hasIntercept,
		Formula:      formula(beta, alpha, s.hasIntercept),
	}, nil
}

// fit returns intercept (alpha) and slope (beta) of the current data.
func (s *Simple) fit() (alpha, beta float64, err error) {
	if err := s.requireSlope(); err != nil {
		return 0, 0, err
	}
	alpha, beta = stat.LinearRegression(s.xs, s.ys, nil, !s.hasIntercept)

	return alpha, beta, nil
}

func (s *Simple) requireSlope() error {
	n := len(s.xs)
	if n < 2 {
		return fmt.Errorf("%w: regression needs at least 2 points, have %d", errs.ErrInsufficientData, n)
	}
	if s.hasIntercept {
		if floats.Min(s.xs) == floats.Max(s.xs) {
			return fmt.Errorf("%w: all x values are identical", errs.ErrInsufficientData)
		}

		return nil
	}
	if floats.Dot(s.xs, s.xs) == 0 {
		return fmt.Errorf("%w: all x values are zero", errs.ErrInsufficientData)
	}

	return nil
}

func (s *Simple) requireYSpread() error {
	if floats.Min(s.ys) == floats.Max(s.ys) {
		return fmt.Errorf("%w: all y values are identical", errs.ErrInsufficientData)
	}

	return nil
}

func (s *Simple) sse(alpha, beta float64) float64 {
	var sum float64
	for i, x := range s.xs {
		d := s.ys[i] - (beta*x + alpha)
		sum += d * d
	}

	return sum
}
