package newton

import (
	"fmt"

	"github.com/katalvlaran/rootfind/converge"
	"github.com/katalvlaran/rootfind/numeric"
)

// Secant — the two-point finite-difference approximation to Newton:
//
//	x_{n+1} = x_n − f(x_n)·(x_n − x_{n−1}) / (f(x_n) − f(x_{n−1}))
//
// Needs no derivative; superlinear (~1.62) convergence near simple roots.
// Equal function values at the two working points make the update undefined
// and surface a SingularityError.
func Secant(f func(float64) float64, x0, x1 float64, opts ...Option) (float64, error) {
	x, _, err := SecantIn(numeric.F64{}, f, x0, x1, opts...)

	return x, err
}

// SecantIn is Secant over an arbitrary numeric backend.
func SecantIn[T any](ar numeric.Arith[T], f func(T) T, x0, x1 T, opts ...Option) (T, int, error) {
	o := buildOptions(opts)

	var zero T
	if !ar.IsFinite(x0) || !ar.IsFinite(x1) || ar.Cmp(x0, x1) == 0 {
		return zero, 0, ErrBadGuess
	}

	pol := converge.NewPolicy(ar, o.MaxIter)
	pol.Cancel = o.Cancel

	fp := f(x0)
	if !ar.IsFinite(fp) {
		return zero, 0, &converge.DivergenceError[T]{At: x0}
	}
	if ar.Sign(fp) == 0 {
		return x0, 0, nil
	}

	fx := f(x1)
	if !ar.IsFinite(fx) {
		return zero, 0, &converge.DivergenceError[T]{At: x1}
	}

	var (
		xp, x        = x0, x1
		bestX, bestF = x1, fx
	)
	if ar.Cmp(ar.Abs(fp), ar.Abs(fx)) < 0 {
		bestX, bestF = x0, fp
	}

	for i := 1; i <= pol.MaxIter; i++ {
		if pol.Canceled() {
			return zero, i - 1, fmt.Errorf("newton: %w", converge.ErrCanceled)
		}

		if ar.Sign(fx) == 0 || pol.ResidualWithin(x, fx) {
			return x, i - 1, nil
		}

		den := ar.Sub(fx, fp)
		if ar.Sign(den) == 0 {
			return zero, i - 1, &SingularityError[T]{At: x, Iterations: i - 1}
		}

		step := ar.Div(ar.Mul(fx, ar.Sub(x, xp)), den)
		xn := ar.Sub(x, step)
		if !ar.IsFinite(xn) {
			return zero, i, &converge.DivergenceError[T]{At: x, Iterations: i}
		}

		fxn := f(xn)
		if !ar.IsFinite(fxn) {
			return zero, i, &converge.DivergenceError[T]{At: xn, Iterations: i}
		}

		if ar.Cmp(ar.Abs(fxn), ar.Abs(bestF)) < 0 {
			bestX, bestF = xn, fxn
		}

		if pol.Done(xn, fxn, step) {
			return xn, i, nil
		}

		xp, fp = x, fx
		x, fx = xn, fxn
	}

	return zero, pol.MaxIter, &converge.NonConvergenceError[T]{
		Best: bestX, FBest: bestF, Iterations: pol.MaxIter,
		Reason: "secant budget exhausted",
	}
}
