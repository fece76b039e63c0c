package fixedpoint

import (
	"fmt"

	"github.com/katalvlaran/rootfind/bracket"
	"github.com/katalvlaran/rootfind/converge"
	"github.com/katalvlaran/rootfind/numeric"
)

// Solve runs the derivative-free family on float64 values from the initial
// guess x0. See SolveIn for the mechanics.
func Solve(f func(float64) float64, x0 float64, opts ...Option[float64]) (float64, error) {
	x, _, err := SolveIn(numeric.F64{}, f, x0, opts...)

	return x, err
}

// SolveIn — derivative-free fixed-point iteration of selectable order.
//
// Description:
//
//	One generic loop drives every order: the order-specific step proposes
//	the next iterate from the current one (secant memory for orders 0/1,
//	multi-point sub-evaluations for orders 2/5/8/16), the bracket
//	constraint — when present — clamps or replaces the proposal, and the
//	convergence policy gates termination after every accepted step. A
//	bracket that has collapsed to adjacent representable values ends the
//	solve at the endpoint with the smaller residual, whatever the
//	tolerances say.
//
// Iterate state is created at entry, mutated per iteration, and discarded
// on return; nothing is shared across calls.
//
// Returns the root, the number of iterations, and a typed error on failure:
//
//   - ErrBadOrder / ErrBadGuess / bracket.ErrNoSignChange — preconditions;
//   - converge.DivergenceError — a non-finite value appeared (unbracketed);
//   - converge.NonConvergenceError — budget exhausted or iteration stalled,
//     carrying the best iterate seen;
//   - converge.ErrCanceled — the cancellation hook fired.
func SolveIn[T any](ar numeric.Arith[T], f func(T) T, x0 T, opts ...Option[T]) (T, int, error) {
	o := buildOptions(opts)

	var zero T
	if !o.Order.valid() {
		return zero, 0, ErrBadOrder
	}
	if !ar.IsFinite(x0) {
		return zero, 0, ErrBadGuess
	}

	pol := converge.NewPolicy(ar, o.MaxIter)
	pol.Cancel = o.Cancel

	s := &state[T]{ar: ar, f: f, pol: pol, capture: o.Order == Order0}

	// Validate an explicit bracket before touching the guess.
	if o.Bracket != nil {
		lo, hi := o.Bracket[0], o.Bracket[1]
		if ar.Cmp(lo, hi) > 0 {
			lo, hi = hi, lo
		}
		if !ar.IsFinite(lo) || !ar.IsFinite(hi) || ar.Cmp(lo, hi) == 0 {
			return zero, 0, bracket.ErrInvalidBracket
		}

		flo := f(lo)
		if !ar.IsFinite(flo) {
			return zero, 0, bracket.ErrNonFinite
		}
		if ar.Sign(flo) == 0 {
			return lo, 0, nil
		}
		fhi := f(hi)
		if !ar.IsFinite(fhi) {
			return zero, 0, bracket.ErrNonFinite
		}
		if ar.Sign(fhi) == 0 {
			return hi, 0, nil
		}
		if ar.Sign(flo) == ar.Sign(fhi) {
			return zero, 0, bracket.ErrNoSignChange
		}
		if ar.Cmp(x0, lo) < 0 || ar.Cmp(x0, hi) > 0 {
			return zero, 0, ErrBadGuess
		}
		s.lo, s.hi, s.flo, s.fhi = lo, hi, flo, fhi
		s.bracketed = true
	}

	s.x = x0
	s.fx = f(x0)
	if !ar.IsFinite(s.fx) {
		return zero, 0, &converge.DivergenceError[T]{At: x0}
	}
	if ar.Sign(s.fx) == 0 {
		return x0, 0, nil
	}
	s.bestX, s.bestF = s.x, s.fx

	step := s.stepFunc(o.Order)

	for s.iters = 1; s.iters <= pol.MaxIter; s.iters++ {
		if pol.Canceled() {
			return zero, s.iters - 1, fmt.Errorf("fixedpoint: %w", converge.ErrCanceled)
		}

		// A bracket collapsed to adjacent representable values is the hard
		// termination: no further iterate can land strictly inside it.
		if s.bracketed && numeric.Adjacent(ar, s.lo, s.hi) {
			if ar.Cmp(ar.Abs(s.flo), ar.Abs(s.fhi)) <= 0 {
				return s.lo, s.iters - 1, nil
			}

			return s.hi, s.iters - 1, nil
		}

		x1, err := step()
		switch {
		case err == errStall || (err == nil && !ar.IsFinite(x1)):
			if !s.bracketed {
				return zero, s.iters, &converge.NonConvergenceError[T]{
					Best: s.bestX, FBest: s.bestF, Iterations: s.iters,
					Reason: "iteration stalled (flat divided difference)",
				}
			}
			x1 = numeric.Mid(ar, s.lo, s.hi)
		case err != nil:
			return zero, s.iters, err
		}

		// Bracket constraint: a proposal outside the interval is replaced
		// by a bisection step.
		if s.bracketed && (ar.Cmp(x1, s.lo) <= 0 || ar.Cmp(x1, s.hi) >= 0) {
			x1 = numeric.Mid(ar, s.lo, s.hi)
		}

		fx1 := f(x1)
		if !ar.IsFinite(fx1) {
			if !s.bracketed {
				return zero, s.iters, &converge.DivergenceError[T]{At: x1, Iterations: s.iters}
			}
			// Inside a bracket a blown-up probe costs one bisection step.
			x1 = numeric.Mid(ar, s.lo, s.hi)
			fx1 = f(x1)
			if !ar.IsFinite(fx1) {
				return zero, s.iters, &converge.DivergenceError[T]{At: x1, Iterations: s.iters}
			}
		}

		s.observe(x1, fx1)

		if pol.Done(x1, fx1, ar.Sub(x1, s.x)) {
			return x1, s.iters, nil
		}

		s.xp, s.fp, s.hasPrev = s.x, s.fx, true
		s.x, s.fx = x1, fx1
	}

	return zero, pol.MaxIter, &converge.NonConvergenceError[T]{
		Best: s.bestX, FBest: s.bestF, Iterations: pol.MaxIter,
		Reason: "iteration budget exhausted",
	}
}

// state is the per-solve iterate history: the current and previous points,
// the (possibly captured) bracket, and the best iterate seen.
type state[T any] struct {
	ar  numeric.Arith[T]
	f   func(T) T
	pol converge.Policy[T]

	x, fx   T
	xp, fp  T
	hasPrev bool

	lo, hi    T
	flo, fhi  T
	bracketed bool
	capture   bool

	bestX, bestF T
	iters        int
}

// observe folds an accepted iterate into the bracket and best-so-far state.
func (s *state[T]) observe(x1, fx1 T) {
	ar := s.ar

	if ar.Cmp(ar.Abs(fx1), ar.Abs(s.bestF)) < 0 {
		s.bestX, s.bestF = x1, fx1
	}

	switch {
	case s.bracketed:
		if ar.Cmp(x1, s.lo) > 0 && ar.Cmp(x1, s.hi) < 0 {
			if ar.Sign(fx1) == ar.Sign(s.flo) {
				s.lo, s.flo = x1, fx1
			} else {
				s.hi, s.fhi = x1, fx1
			}
		}
	case s.capture && ar.Sign(fx1) != ar.Sign(s.fx) && ar.Sign(fx1) != 0:
		// Order 0: first observed sign change becomes the bracket.
		lo, flo, hi, fhi := s.x, s.fx, x1, fx1
		if ar.Cmp(lo, hi) > 0 {
			lo, hi = hi, lo
			flo, fhi = fhi, flo
		}
		s.lo, s.flo, s.hi, s.fhi = lo, flo, hi, fhi
		s.bracketed = true
	}
}
