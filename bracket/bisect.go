package bracket

import (
	"github.com/katalvlaran/rootfind/converge"
	"github.com/katalvlaran/rootfind/numeric"
)

// Bisect — guaranteed enclosure of a sign change.
//
// Description:
//
//	Classic bisection on [a, b] with f(a)·f(b) < 0. Each iteration
//	evaluates the midpoint and replaces the endpoint sharing its sign, so
//	the interval width is monotonically non-increasing and the
//	sign-opposition invariant holds throughout.
//
// Termination:
//   - an endpoint or midpoint evaluates to exactly zero, or
//   - the two endpoints are adjacent representable values (the midpoint
//     rounds onto an endpoint — no representable value lies between), or
//   - the optional Tol early stop fires.
//
// On adjacency the endpoint with the smaller |f| is returned; the returned x
// satisfies f(x) = 0, or f(prev(x))·f(x) < 0, or f(x)·f(next(x)) < 0.
//
// Complexity: O(log₂(width/ulp)) evaluations — at most ~1100 for float64.
//
// Errors: ErrInvalidBracket, ErrNoSignChange, ErrNonFinite.
func Bisect(f func(float64) float64, a, b float64, opts ...Option) (float64, error) {
	x, _, err := BisectIn(numeric.F64{}, f, a, b, opts...)

	return x, err
}

// BisectIn is Bisect over an arbitrary numeric backend. It also reports the
// number of midpoint evaluations performed.
func BisectIn[T any](ar numeric.Arith[T], f func(T) T, a, b T, opts ...Option) (T, int, error) {
	o := buildOptions(opts)

	var zero T
	if !ar.IsFinite(a) || !ar.IsFinite(b) || ar.Cmp(a, b) == 0 {
		return zero, 0, ErrInvalidBracket
	}
	if ar.Cmp(a, b) > 0 {
		a, b = b, a
	}

	fa := f(a)
	if !ar.IsFinite(fa) {
		return zero, 0, ErrNonFinite
	}
	if ar.Sign(fa) == 0 {
		return a, 0, nil
	}

	fb := f(b)
	if !ar.IsFinite(fb) {
		return zero, 0, ErrNonFinite
	}
	if ar.Sign(fb) == 0 {
		return b, 0, nil
	}

	if ar.Sign(fa) == ar.Sign(fb) {
		return zero, 0, ErrNoSignChange
	}

	tol := ar.FromFloat64(o.Tol)
	for i := 1; i <= o.MaxIter; i++ {
		m := numeric.Mid(ar, a, b)
		// Midpoint rounding onto an endpoint is the adjacency limit.
		if ar.Cmp(m, a) <= 0 || ar.Cmp(m, b) >= 0 {
			return closerEndpoint(ar, a, fa, b, fb), i, nil
		}

		fm := f(m)
		if !ar.IsFinite(fm) {
			return zero, i, ErrNonFinite
		}
		if ar.Sign(fm) == 0 {
			return m, i, nil
		}

		if ar.Sign(fm) == ar.Sign(fa) {
			a, fa = m, fm
		} else {
			b, fb = m, fm
		}

		if o.Tol > 0 {
			width := ar.Sub(b, a)
			scale := numeric.MaxAbs(ar, m, ar.One())
			if ar.Cmp(width, ar.Mul(tol, scale)) <= 0 {
				return closerEndpoint(ar, a, fa, b, fb), i, nil
			}
		}
	}

	best := closerEndpoint(ar, a, fa, b, fb)

	return zero, o.MaxIter, &converge.NonConvergenceError[T]{
		Best:       best,
		FBest:      f(best),
		Iterations: o.MaxIter,
		Reason:     "bisection iteration cap reached before adjacency",
	}
}

// closerEndpoint picks the endpoint with the smaller residual.
func closerEndpoint[T any](ar numeric.Arith[T], a, fa, b, fb T) T {
	if ar.Cmp(ar.Abs(fa), ar.Abs(fb)) <= 0 {
		return a
	}

	return b
}
