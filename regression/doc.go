// Package regression provides ordinary least-squares simple linear regression.
//
// A Simple accumulator collects (x, y) pairs and fits either
//
//   - y = slope * x + intercept (the default), or
//   - y = slope * x, forced through the origin, when created with WithIntercept(false)
//
// The fit is recomputed from the stored pairs on every query, so queries can be
// interleaved freely with AddData. Least-squares math is delegated to gonum's
// stat package.
//
// # Usage
//
//	r, err := regression.NewSimple()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	r.AddData(1, 2)
//	r.AddData(2, 4.1)
//	r.AddData(3, 5.9)
//
//	slope, err := r.Slope()
//	intercept, err := r.Intercept()
//	r2, err := r.RSquared()
//
// Fit returns all of the above as a detached Model:
//
//	model, err := r.Fit()
//	fmt.Println(model.Formula)
//
// # Formulas
//
// With an intercept:
//
//	slope     = Σ((xi - x̄)(yi - ȳ)) / Σ((xi - x̄)²)
//	intercept = ȳ - slope * x̄
//
// Through the origin:
//
//	slope     = Σ(xi * yi) / Σ(xi²)
//	intercept = 0
//
// In both cases R² = 1 - SSres / SStot, with SSres = Σ(yi - ŷi)² and
// SStot = Σ(yi - ȳ)².
//
// # Errors
//
// The slope is undefined for fewer than 2 points, or when the x values carry no
// information (all identical with an intercept, all zero without). Those cases
// return an error wrapping errs.ErrInsufficientData. RSquared additionally needs
// the y values to vary.
//
// Simple is not safe for concurrent use.
package regression
