package regression

import "fmt"

// Model is a snapshot of a fitted simple linear regression.
//
// A Model is detached from the Simple accumulator that produced it: adding
// more data points afterwards does not change an existing Model.
//
// Fields:
//   - Slope: Least-squares slope
//   - Intercept: Fitted intercept (always 0 when HasIntercept is false)
//   - RSquared: Coefficient of determination (1.0 is a perfect fit)
//   - RMSE: Root mean square error of the residuals
//   - N: Number of data points the model was fitted on
//   - HasIntercept: Whether the model was fitted with an intercept term
//   - Formula: Human-readable formula
type Model struct {
	Slope        float64
	Intercept    float64
	RSquared     float64
	RMSE         float64
	N            int
	HasIntercept bool
	Formula      string
}

// Predict returns the fitted value for x.
func (m *Model) Predict(x float64) float64 {
	return m.Slope*x + m.Intercept
}

// String returns a string representation of the model.
func (m *Model) String() string {
	return fmt.Sprintf("Model{N: %d, R²: %.4f, RMSE: %.4f, Formula: %s}",
		m.N, m.RSquared, m.RMSE, m.Formula)
}

func formula(slope, intercept float64, hasIntercept bool) string {
	if !hasIntercept {
		return fmt.Sprintf("y = %.4f * x", slope)
	}

	return fmt.Sprintf("y = %.4f * x + %.4f", slope, intercept)
}
