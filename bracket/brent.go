package bracket

import (
	"github.com/katalvlaran/rootfind/converge"
	"github.com/katalvlaran/rootfind/numeric"
)

// Brent — accelerated enclosure of a sign change.
//
// Description:
//
//	The zeroin scheme of Forsythe, Malcolm and Moler: bisection combined
//	with secant and inverse-quadratic interpolation. The solver keeps three
//	abscissae — b, the best approximation so far; a, the previous one; and
//	c, an earlier point chosen so that f(b) and f(c) have opposite signs
//	and |f(b)| <= |f(c)|, so [b, c] always confines the root.
//
//	Each iteration proposes an interpolated step (quadratic when a, b, c
//	are distinct, secant otherwise) and accepts it only if it lands well
//	inside [b, c] and undercuts half the previous step; otherwise the
//	midpoint of [b, c] is used. Acceleration therefore never forfeits the
//	enclosure guarantee.
//
// Termination: exact zero, or endpoints of [b, c] adjacent in the backend's
// representable ordering. Reaching the zeroin tolerance 2·eps·|b| switches
// to terminal bisection steps that close the remaining interval down to
// adjacency; only an explicit WithTolerance stops earlier than that.
//
// Complexity: superlinear (~1.84 with quadratic steps) near simple roots;
// never worse than twice bisection.
//
// Errors: ErrInvalidBracket, ErrNoSignChange, ErrNonFinite.
func Brent(f func(float64) float64, a, b float64, opts ...Option) (float64, error) {
	x, _, err := BrentIn(numeric.F64{}, f, a, b, opts...)

	return x, err
}

// BrentIn is Brent over an arbitrary numeric backend, reporting the number
// of function evaluations beyond the two endpoint probes.
func BrentIn[T any](ar numeric.Arith[T], f func(T) T, a, b T, opts ...Option) (T, int, error) {
	o := buildOptions(opts)

	var zero T
	if !ar.IsFinite(a) || !ar.IsFinite(b) || ar.Cmp(a, b) == 0 {
		return zero, 0, ErrInvalidBracket
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

	var (
		two     = ar.FromInt64(2)
		half    = func(x T) T { return ar.Div(x, two) }
		tolHalf = half(ar.FromFloat64(o.Tol))
		c, fc   = a, fa
	)

	for i := 1; i <= o.MaxIter; i++ {
		prevStep := ar.Sub(b, a)

		// Keep b the best approximation: |f(b)| <= |f(c)|.
		if ar.Cmp(ar.Abs(fc), ar.Abs(fb)) < 0 {
			a, b, c = b, c, b
			fa, fb, fc = fb, fc, fb
		}

		// tolAct = 2·eps·|b| + Tol/2
		tolAct := ar.Add(ar.Mul(two, ar.Mul(ar.Eps(), ar.Abs(b))), tolHalf)
		newStep := half(ar.Sub(c, b))

		if ar.Sign(fb) == 0 || adjacentUnordered(ar, b, c) {
			return b, i, nil
		}
		if ar.Cmp(ar.Abs(newStep), tolAct) <= 0 {
			// An explicit Tol is a requested early stop. Otherwise the
			// few remaining ulps are closed by bisection, so acceleration
			// keeps the same enclosure guarantee as Bisect.
			if o.Tol > 0 {
				return b, i, nil
			}

			return closeEnclosure(ar, f, b, fb, c, fc, i)
		}

		// Try interpolation when the previous step was substantial and f
		// is still decreasing in magnitude.
		if ar.Cmp(ar.Abs(prevStep), tolAct) >= 0 && ar.Cmp(ar.Abs(fa), ar.Abs(fb)) > 0 {
			cb := ar.Sub(c, b)
			var p, q T
			if ar.Cmp(a, c) == 0 {
				// Secant (linear) interpolation.
				t1 := ar.Div(fb, fa)
				p = ar.Mul(cb, t1)
				q = ar.Sub(ar.One(), t1)
			} else {
				// Inverse quadratic interpolation through a, b, c.
				q = ar.Div(fa, fc)
				t1 := ar.Div(fb, fc)
				t2 := ar.Div(fb, fa)
				p = ar.Mul(t2, ar.Sub(
					ar.Mul(cb, ar.Mul(q, ar.Sub(q, t1))),
					ar.Mul(ar.Sub(b, a), ar.Sub(t1, ar.One())),
				))
				q = ar.Mul(ar.Sub(q, ar.One()), ar.Mul(ar.Sub(t1, ar.One()), ar.Sub(t2, ar.One())))
			}
			if ar.Sign(p) > 0 {
				q = ar.Neg(q)
			} else {
				p = ar.Neg(p)
			}

			// Accept only a step well inside [b, c] that beats half the
			// previous step; bisection otherwise.
			inRange := ar.Cmp(p, ar.Sub(
				ar.Mul(ar.FromFloat64(0.75), ar.Mul(cb, q)),
				half(ar.Abs(ar.Mul(tolAct, q))),
			)) < 0
			beatsPrev := ar.Cmp(p, ar.Abs(half(ar.Mul(prevStep, q)))) < 0
			if inRange && beatsPrev {
				newStep = ar.Div(p, q)
			}
		}

		// Never step by less than the tolerance.
		if ar.Cmp(ar.Abs(newStep), tolAct) < 0 {
			if ar.Sign(newStep) > 0 {
				newStep = tolAct
			} else {
				newStep = ar.Neg(tolAct)
			}
		}

		a, fa = b, fb
		b = ar.Add(b, newStep)
		fb = f(b)
		if !ar.IsFinite(fb) {
			return zero, i, ErrNonFinite
		}
		if ar.Sign(fb) == 0 {
			return b, i, nil
		}

		// Restore the confinement invariant: f(b) and f(c) must oppose.
		if ar.Sign(fb) == ar.Sign(fc) {
			c, fc = a, fa
		}
	}

	return zero, o.MaxIter, &converge.NonConvergenceError[T]{
		Best:       b,
		FBest:      fb,
		Iterations: o.MaxIter,
		Reason:     "zeroin iteration cap reached",
	}
}

// adjacentUnordered is numeric.Adjacent over endpoints in either order.
func adjacentUnordered[T any](ar numeric.Arith[T], x, y T) bool {
	if ar.Cmp(x, y) > 0 {
		x, y = y, x
	}

	return numeric.Adjacent(ar, x, y)
}

// closeEnclosure finishes the confining interval [b, c] to representable
// adjacency with plain bisection and returns the endpoint with the smaller
// residual.
func closeEnclosure[T any](ar numeric.Arith[T], f func(T) T, b, fb, c, fc T, evals int) (T, int, error) {
	lo, flo, hi, fhi := b, fb, c, fc
	if ar.Cmp(lo, hi) > 0 {
		lo, hi = hi, lo
		flo, fhi = fhi, flo
	}

	for !numeric.Adjacent(ar, lo, hi) {
		m := numeric.Mid(ar, lo, hi)
		if ar.Cmp(m, lo) <= 0 || ar.Cmp(m, hi) >= 0 {
			break
		}

		fm := f(m)
		evals++
		if !ar.IsFinite(fm) {
			var zero T

			return zero, evals, ErrNonFinite
		}
		if ar.Sign(fm) == 0 {
			return m, evals, nil
		}

		if ar.Sign(fm) == ar.Sign(flo) {
			lo, flo = m, fm
		} else {
			hi, fhi = m, fm
		}
	}

	return closerEndpoint(ar, lo, flo, hi, fhi), evals, nil
}
