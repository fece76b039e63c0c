package newton

import (
	"fmt"

	"github.com/katalvlaran/rootfind/converge"
	"github.com/katalvlaran/rootfind/numeric"
)

// Newton — x_{n+1} = x_n − f(x_n)/f′(x_n) with the derivative obtained from
// the injected Derivator at every iterate.
//
// Quadratic convergence near a simple root, no global guarantee. A zero
// derivative is a typed SingularityError; Derivator failures pass through
// unchanged.
func Newton(f func(float64) float64, d Derivator[float64], x0 float64, opts ...Option) (float64, error) {
	x, _, err := NewtonIn(numeric.F64{}, f, d, x0, opts...)

	return x, err
}

// NewtonD is Newton with an explicit closed-form derivative.
func NewtonD(f, fprime func(float64) float64, x0 float64, opts ...Option) (float64, error) {
	x, _, err := NewtonDIn(numeric.F64{}, f, fprime, x0, opts...)

	return x, err
}

// NewtonFD is the fast path: one callable returning (f(x), f′(x)) per
// iterate.
func NewtonFD(fdf func(float64) (float64, float64), x0 float64, opts ...Option) (float64, error) {
	x, _, err := NewtonFDIn(numeric.F64{}, fdf, x0, opts...)

	return x, err
}

// NewtonIn is Newton over an arbitrary numeric backend.
func NewtonIn[T any](ar numeric.Arith[T], f func(T) T, d Derivator[T], x0 T, opts ...Option) (T, int, error) {
	return newtonCore(ar, func(x T) (T, T, error) {
		fpx, err := d.Derive(f, x, 1)
		if err != nil {
			var zero T

			return zero, zero, err
		}

		return f(x), fpx, nil
	}, x0, opts)
}

// NewtonDIn is NewtonD over an arbitrary numeric backend.
func NewtonDIn[T any](ar numeric.Arith[T], f, fprime func(T) T, x0 T, opts ...Option) (T, int, error) {
	return newtonCore(ar, func(x T) (T, T, error) {
		return f(x), fprime(x), nil
	}, x0, opts)
}

// NewtonFDIn is NewtonFD over an arbitrary numeric backend.
func NewtonFDIn[T any](ar numeric.Arith[T], fdf func(T) (T, T), x0 T, opts ...Option) (T, int, error) {
	return newtonCore(ar, func(x T) (T, T, error) {
		fx, fpx := fdf(x)

		return fx, fpx, nil
	}, x0, opts)
}

// newtonCore drives the shared Newton loop over a (f, f′) supplier.
func newtonCore[T any](ar numeric.Arith[T], sup func(T) (T, T, error), x0 T, opts []Option) (T, int, error) {
	o := buildOptions(opts)

	var zero T
	if !ar.IsFinite(x0) {
		return zero, 0, ErrBadGuess
	}

	pol := converge.NewPolicy(ar, o.MaxIter)
	pol.Cancel = o.Cancel

	var (
		x        = x0
		lastStep T
		hasStep  bool
		bestX    = x0
		bestF    T
		hasBest  bool
	)

	for i := 1; i <= pol.MaxIter; i++ {
		if pol.Canceled() {
			return zero, i - 1, fmt.Errorf("newton: %w", converge.ErrCanceled)
		}

		fx, fpx, err := sup(x)
		if err != nil {
			return zero, i - 1, err
		}
		if !ar.IsFinite(fx) || !ar.IsFinite(fpx) {
			return zero, i - 1, &converge.DivergenceError[T]{At: x, Iterations: i - 1}
		}

		if !hasBest || ar.Cmp(ar.Abs(fx), ar.Abs(bestF)) < 0 {
			bestX, bestF, hasBest = x, fx, true
		}

		if ar.Sign(fx) == 0 || pol.ResidualWithin(x, fx) {
			return x, i - 1, nil
		}
		if hasStep && pol.StepWithin(x, lastStep) && pol.ResidualPlausible(x, fx) {
			return x, i - 1, nil
		}

		if ar.Sign(fpx) == 0 {
			return zero, i - 1, &SingularityError[T]{At: x, Iterations: i - 1}
		}

		step := ar.Div(fx, fpx)
		x1 := ar.Sub(x, step)
		if !ar.IsFinite(x1) {
			return zero, i, &converge.DivergenceError[T]{At: x, Iterations: i}
		}

		x, lastStep, hasStep = x1, step, true
	}

	return zero, pol.MaxIter, &converge.NonConvergenceError[T]{
		Best: bestX, FBest: bestF, Iterations: pol.MaxIter,
		Reason: "newton budget exhausted",
	}
}
