package newton

import (
	"fmt"

	"github.com/katalvlaran/rootfind/converge"
	"github.com/katalvlaran/rootfind/numeric"
)

// Halley — cubic-convergence update
//
//	x_{n+1} = x_n − 2·f·f′ / (2·f′² − f·f″)
//
// with explicit closed-form first and second derivatives. A vanishing
// denominator is a typed SingularityError, exactly as for Newton.
func Halley(f, fprime, fpprime func(float64) float64, x0 float64, opts ...Option) (float64, error) {
	x, _, err := HalleyDIn(numeric.F64{}, f, fprime, fpprime, x0, opts...)

	return x, err
}

// HalleyFD is the fast path: one callable returning (f, f′, f″) per iterate.
func HalleyFD(fdf2 func(float64) (float64, float64, float64), x0 float64, opts ...Option) (float64, error) {
	x, _, err := HalleyFDIn(numeric.F64{}, fdf2, x0, opts...)

	return x, err
}

// HalleyIn asks the injected Derivator for both derivatives at each iterate.
func HalleyIn[T any](ar numeric.Arith[T], f func(T) T, d Derivator[T], x0 T, opts ...Option) (T, int, error) {
	return halleyCore(ar, func(x T) (T, T, T, error) {
		var zero T
		fpx, err := d.Derive(f, x, 1)
		if err != nil {
			return zero, zero, zero, err
		}
		fppx, err := d.Derive(f, x, 2)
		if err != nil {
			return zero, zero, zero, err
		}

		return f(x), fpx, fppx, nil
	}, x0, opts)
}

// HalleyDIn is Halley over an arbitrary numeric backend.
func HalleyDIn[T any](ar numeric.Arith[T], f, fprime, fpprime func(T) T, x0 T, opts ...Option) (T, int, error) {
	return halleyCore(ar, func(x T) (T, T, T, error) {
		return f(x), fprime(x), fpprime(x), nil
	}, x0, opts)
}

// HalleyFDIn is HalleyFD over an arbitrary numeric backend.
func HalleyFDIn[T any](ar numeric.Arith[T], fdf2 func(T) (T, T, T), x0 T, opts ...Option) (T, int, error) {
	return halleyCore(ar, func(x T) (T, T, T, error) {
		fx, fpx, fppx := fdf2(x)

		return fx, fpx, fppx, nil
	}, x0, opts)
}

func halleyCore[T any](ar numeric.Arith[T], sup func(T) (T, T, T, error), x0 T, opts []Option) (T, int, error) {
	o := buildOptions(opts)

	var zero T
	if !ar.IsFinite(x0) {
		return zero, 0, ErrBadGuess
	}

	pol := converge.NewPolicy(ar, o.MaxIter)
	pol.Cancel = o.Cancel

	var (
		two      = ar.FromInt64(2)
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

		fx, fpx, fppx, err := sup(x)
		if err != nil {
			return zero, i - 1, err
		}
		if !ar.IsFinite(fx) || !ar.IsFinite(fpx) || !ar.IsFinite(fppx) {
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

		// 2·f′² − f·f″
		den := ar.Sub(ar.Mul(two, ar.Mul(fpx, fpx)), ar.Mul(fx, fppx))
		if ar.Sign(den) == 0 {
			return zero, i - 1, &SingularityError[T]{At: x, Iterations: i - 1}
		}

		step := ar.Div(ar.Mul(two, ar.Mul(fx, fpx)), den)
		x1 := ar.Sub(x, step)
		if !ar.IsFinite(x1) {
			return zero, i, &converge.DivergenceError[T]{At: x, Iterations: i}
		}

		x, lastStep, hasStep = x1, step, true
	}

	return zero, pol.MaxIter, &converge.NonConvergenceError[T]{
		Best: bestX, FBest: bestF, Iterations: pol.MaxIter,
		Reason: "halley budget exhausted",
	}
}
