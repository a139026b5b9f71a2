// Package nls solves scalar nonlinear equations by Newton-Raphson with an
// analytic derivative. Implicit skin friction laws are its only customer and
// they converge in a handful of steps from a decent guess, so the solver
// stays deliberately small.
package nls

import (
	"errors"
	"math"
)

// ErrNoConvergence reports the residual did not close within the iteration
// cap. The accompanying value is the last iterate and remains usable as an
// approximation.
var ErrNoConvergence = errors.New("nls: iteration cap reached before convergence")

// FindRoot iterates x -= f(x)/fp(x) from x0 until |f(x)| <= ftol or maxIter
// steps have run. A vanishing or non-finite derivative stops the iteration
// early with ErrNoConvergence.
func FindRoot(f, fp func(float64) float64, x0, ftol float64, maxIter int) (float64, error) {
	x := x0
	for i := 0; i < maxIter; i++ {
		fx := f(x)
		if math.Abs(fx) <= ftol {
			return x, nil
		}
		d := fp(x)
		if d == 0 || math.IsNaN(d) || math.IsInf(d, 0) {
			return x, ErrNoConvergence
		}
		xn := x - fx/d
		if math.IsNaN(xn) || math.IsInf(xn, 0) {
			return x, ErrNoConvergence
		}
		x = xn
	}
	if math.Abs(f(x)) <= ftol {
		return x, nil
	}
	return x, ErrNoConvergence
}
