package fixedpoint

import (
	"errors"
	"math"

	"github.com/katalvlaran/rootfind/converge"
	"github.com/katalvlaran/rootfind/numeric"
)

// errStall signals a step that cannot make progress (flat divided
// difference, probe collapse). Bracketed solves convert it into a bisection
// step; unbracketed solves surface NonConvergenceError.
var errStall = errors.New("fixedpoint: stalled step")

// stepFunc maps an order to its update formula.
func (s *state[T]) stepFunc(o Order) func() (T, error) {
	switch o {
	case Order0, Order1:
		return s.secantStep
	case Order2:
		return s.steffensenStep
	case Order5:
		return func() (T, error) { return s.multipointFrom(s.x, s.fx, false) }
	case Order8:
		return func() (T, error) { return s.multipointFrom(s.x, s.fx, true) }
	case Order16:
		return s.doubleEightStep
	default:
		return func() (T, error) { var zero T; return zero, ErrBadOrder }
	}
}

// eval probes f at x. Non-finite input or output is a stall inside a
// bracket (one bisection step recovers) and a divergence otherwise.
func (s *state[T]) eval(x T) (T, error) {
	var zero T
	if !s.ar.IsFinite(x) {
		if s.bracketed {
			return zero, errStall
		}

		return zero, &converge.DivergenceError[T]{At: s.x, Iterations: s.iters}
	}

	v := s.f(x)
	if !s.ar.IsFinite(v) {
		if s.bracketed {
			return zero, errStall
		}

		return zero, &converge.DivergenceError[T]{At: x, Iterations: s.iters}
	}

	return v, nil
}

// secantStep — orders 0 and 1. On the first call the previous point is
// seeded a relative cube-root-of-eps away from the guess, which makes the
// first secant slope a good surrogate derivative.
func (s *state[T]) secantStep() (T, error) {
	ar := s.ar
	var zero T

	if !s.hasPrev {
		h := s.seedStep()
		xp := ar.Add(s.x, h)
		fp, err := s.eval(xp)
		if err != nil {
			return zero, err
		}
		s.xp, s.fp, s.hasPrev = xp, fp, true
	}

	den := ar.Sub(s.fx, s.fp)
	if ar.Sign(den) == 0 {
		return zero, errStall
	}

	return ar.Sub(s.x, ar.Div(ar.Mul(s.fx, ar.Sub(s.x, s.xp)), den)), nil
}

// seedStep returns cbrt(eps)·max(1, |x|).
func (s *state[T]) seedStep() T {
	ar := s.ar

	var h T
	if ef := ar.Float64(ar.Eps()); ef > 0 {
		h = ar.FromFloat64(math.Cbrt(ef))
	} else {
		// Extended precision whose eps underflows float64: fall back to
		// the backend's own eps, which is still a valid relative offset.
		h = ar.Eps()
	}

	return ar.Mul(h, numeric.MaxAbs(ar, s.x, ar.One()))
}

// steffPoint returns the Steffensen probe w = x + f(x), with the offset
// clamped to max(1, |x|) so a large residual cannot throw the probe out of
// the function's sane range.
func (s *state[T]) steffPoint(x, fx T) T {
	ar := s.ar

	h := fx
	limit := numeric.MaxAbs(ar, x, ar.One())
	if ar.Cmp(ar.Abs(h), limit) > 0 {
		if ar.Sign(h) < 0 {
			h = ar.Neg(limit)
		} else {
			h = limit
		}
	}

	w := ar.Add(x, h)
	if s.bracketed && (ar.Cmp(w, s.lo) <= 0 || ar.Cmp(w, s.hi) >= 0) {
		w = ar.Sub(x, h)
		if ar.Cmp(w, s.lo) <= 0 || ar.Cmp(w, s.hi) >= 0 {
			w = numeric.Mid(ar, s.lo, s.hi)
		}
	}

	return w
}

// steffensenStep — order 2: x - f(x)/f[x, x+f(x)].
func (s *state[T]) steffensenStep() (T, error) {
	ar := s.ar
	var zero T

	w := s.steffPoint(s.x, s.fx)
	fw, err := s.eval(w)
	if err != nil {
		return zero, err
	}
	if ar.Sign(fw) == 0 {
		return w, nil
	}

	den := ar.Sub(fw, s.fx)
	if ar.Sign(den) == 0 {
		return zero, errStall
	}

	return ar.Sub(s.x, ar.Div(ar.Mul(s.fx, ar.Sub(w, s.x)), den)), nil
}

// multipointFrom — orders 5 and 8: a Steffensen sub-step, then inverse
// interpolation through all points evaluated so far. deep=false stops at
// the three-point (inverse quadratic) correction, deep=true adds the
// four-point (inverse cubic) one.
func (s *state[T]) multipointFrom(x, fx T, deep bool) (T, error) {
	ar := s.ar
	var zero T

	w := s.steffPoint(x, fx)
	fw, err := s.eval(w)
	if err != nil {
		return zero, err
	}
	if ar.Sign(fw) == 0 {
		return w, nil
	}

	den := ar.Sub(fw, fx)
	if ar.Sign(den) == 0 {
		return zero, errStall
	}
	y := ar.Sub(x, ar.Div(ar.Mul(fx, ar.Sub(w, x)), den))

	fy, err := s.eval(y)
	if err != nil {
		return zero, err
	}
	if ar.Sign(fy) == 0 {
		return y, nil
	}

	xs := []T{x, w, y}
	fs := []T{fx, fw, fy}
	z, ok := invInterp(ar, xs, fs)
	if !ok || !ar.IsFinite(z) {
		return y, nil
	}
	if !deep {
		return z, nil
	}

	fz, err := s.eval(z)
	if err != nil {
		return zero, err
	}
	if ar.Sign(fz) == 0 {
		return z, nil
	}

	x1, ok := invInterp(ar, append(xs, z), append(fs, fz))
	if !ok || !ar.IsFinite(x1) {
		return z, nil
	}

	return x1, nil
}

// doubleEightStep — order 16: two chained order-8 composites per iteration.
func (s *state[T]) doubleEightStep() (T, error) {
	ar := s.ar
	var zero T

	mid, err := s.multipointFrom(s.x, s.fx, true)
	if err != nil {
		return zero, err
	}

	fmid, err := s.eval(mid)
	if err != nil {
		return zero, err
	}
	if ar.Sign(fmid) == 0 {
		return mid, nil
	}

	x1, err := s.multipointFrom(mid, fmid, true)
	if err == errStall {
		// The first composite already landed; keep it.
		return mid, nil
	}

	return x1, err
}

// invInterp interpolates x as a polynomial in f (Newton divided differences
// over the swapped coordinates) and evaluates it at f = 0 — the multipoint
// generalization of the secant and inverse-quadratic steps.
func invInterp[T any](ar numeric.Arith[T], xs, fs []T) (T, bool) {
	var zero T
	n := len(xs)

	coef := make([]T, n)
	copy(coef, xs)
	for j := 1; j < n; j++ {
		for i := n - 1; i >= j; i-- {
			den := ar.Sub(fs[i], fs[i-j])
			if ar.Sign(den) == 0 {
				return zero, false
			}
			coef[i] = ar.Div(ar.Sub(coef[i], coef[i-1]), den)
		}
	}

	// Horner in the inverse coordinate at f = 0.
	acc := coef[n-1]
	for i := n - 2; i >= 0; i-- {
		acc = ar.Add(coef[i], ar.Mul(ar.Neg(fs[i]), acc))
	}

	return acc, true
}
