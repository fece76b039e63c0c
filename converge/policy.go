package converge

import (
	"math"

	"github.com/katalvlaran/rootfind/numeric"
)

// DefaultMaxIter is the iteration budget used when a Policy is built with
// maxIter == 0.
const DefaultMaxIter = 100

// relaxFactor loosens the residual test when convergence is claimed on step
// size alone; a tiny step with a wildly non-zero residual is a stall, not a
// root.
const relaxFactor = 100

// Policy gates termination of every iterative solver. Tolerances are
// relative to the magnitude of the current iterate and derive from the
// backend's epsilon unless overridden.
type Policy[T any] struct {
	ar numeric.Arith[T]

	// XTolAbs / XTolRel bound the accepted step size:
	// |Δx| <= XTolAbs + XTolRel·|x|.
	XTolAbs T
	XTolRel T

	// FTolAbs / FTolRel bound the accepted residual:
	// |f(x)| <= FTolAbs + FTolRel·max(1, |x|).
	FTolAbs T
	FTolRel T

	// MaxIter is the iteration budget; the budget is a hard stop, not a
	// retry trigger.
	MaxIter int

	// Cancel, when non-nil, is polled once per iteration; returning true
	// aborts the solve with ErrCanceled.
	Cancel func() bool
}

// NewPolicy returns the default policy for a backend: all four tolerances at
// 4·eps, budget maxIter (DefaultMaxIter if 0).
func NewPolicy[T any](ar numeric.Arith[T], maxIter int) Policy[T] {
	if maxIter <= 0 {
		maxIter = DefaultMaxIter
	}
	tol := ar.Mul(ar.FromInt64(4), ar.Eps())

	return Policy[T]{
		ar:      ar,
		XTolAbs: tol,
		XTolRel: tol,
		FTolAbs: tol,
		FTolRel: tol,
		MaxIter: maxIter,
	}
}

// Arith returns the backend the policy was built for.
func (p Policy[T]) Arith() numeric.Arith[T] { return p.ar }

// StepWithin reports |step| <= XTolAbs + XTolRel·|x|.
func (p Policy[T]) StepWithin(x, step T) bool {
	bound := p.ar.Add(p.XTolAbs, p.ar.Mul(p.XTolRel, p.ar.Abs(x)))

	return p.ar.Cmp(p.ar.Abs(step), bound) <= 0
}

// ResidualWithin reports |fx| <= FTolAbs + FTolRel·max(1, |x|).
func (p Policy[T]) ResidualWithin(x, fx T) bool {
	return p.ar.Cmp(p.ar.Abs(fx), p.residualBound(x)) <= 0
}

// ResidualPlausible is the relaxed residual test applied when a solve wants
// to stop on step size alone. The iteration cannot move any further at that
// point, so residuals explained by a steep slope over the last few ulps are
// accepted: the band is sqrt(eps)·max(1, |x|) on top of the relaxed
// tolerance.
func (p Policy[T]) ResidualPlausible(x, fx T) bool {
	scale := numeric.MaxAbs(p.ar, x, p.ar.One())
	lax := p.ar.Mul(p.ar.FromFloat64(math.Sqrt(p.ar.Float64(p.ar.Eps()))), scale)
	bound := p.ar.Add(lax, p.ar.Mul(p.ar.FromInt64(relaxFactor), p.residualBound(x)))

	return p.ar.Cmp(p.ar.Abs(fx), bound) <= 0
}

func (p Policy[T]) residualBound(x T) T {
	scale := numeric.MaxAbs(p.ar, x, p.ar.One())

	return p.ar.Add(p.FTolAbs, p.ar.Mul(p.FTolRel, scale))
}

// Done applies the stop-priority ladder to one completed step and reports
// whether the solve has converged at x.
//
// Order: exact zero, then residual, then small-step-with-plausible-residual.
func (p Policy[T]) Done(x, fx, step T) bool {
	if p.ar.Sign(fx) == 0 {
		return true
	}
	if p.ResidualWithin(x, fx) {
		return true
	}

	return p.StepWithin(x, step) && p.ResidualPlausible(x, fx)
}

// Canceled polls the cancellation hook.
func (p Policy[T]) Canceled() bool { return p.Cancel != nil && p.Cancel() }
