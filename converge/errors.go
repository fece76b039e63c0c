package converge

import (
	"errors"
	"fmt"
)

var (
	// ErrNonConvergence indicates the iteration budget ran out before the
	// stopping criteria were met.
	ErrNonConvergence = errors.New("converge: iteration budget exhausted")

	// ErrDivergence indicates the function or the iteration produced a
	// non-finite value; such evaluations are never retried.
	ErrDivergence = errors.New("converge: non-finite value during iteration")

	// ErrCanceled indicates the caller's Cancel hook requested an early stop.
	ErrCanceled = errors.New("converge: canceled by caller")
)

// NonConvergenceError reports a solve that exhausted its budget. Best is the
// best iterate found so far (smallest |f|), FBest its function value.
type NonConvergenceError[T any] struct {
	Best       T
	FBest      T
	Iterations int
	Reason     string
}

func (e *NonConvergenceError[T]) Error() string {
	return fmt.Sprintf("converge: no convergence after %d iterations (%s): best x=%v, f(x)=%v",
		e.Iterations, e.Reason, e.Best, e.FBest)
}

// Unwrap lets errors.Is(err, ErrNonConvergence) match.
func (e *NonConvergenceError[T]) Unwrap() error { return ErrNonConvergence }

// DivergenceError reports a non-finite value produced at iterate At.
type DivergenceError[T any] struct {
	At         T
	Iterations int
}

func (e *DivergenceError[T]) Error() string {
	return fmt.Sprintf("converge: divergence at iteration %d: non-finite value near x=%v",
		e.Iterations, e.At)
}

// Unwrap lets errors.Is(err, ErrDivergence) match.
func (e *DivergenceError[T]) Unwrap() error { return ErrDivergence }
