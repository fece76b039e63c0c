package newton

import (
	"errors"
	"fmt"
)

// Derivator is the external collaborator classical methods call when no
// explicit derivative was supplied: given f and a point, it produces the
// order-th derivative of f at x (order 1 or 2).
//
// Implementations must be stateless or internally synchronized; solvers may
// call Derive any number of times, at any point.
type Derivator[T any] interface {
	Derive(f func(T) T, x T, order int) (T, error)
}

// Sentinel errors.
var (
	// ErrSingularDerivative indicates the method hit an iterate where the
	// update's denominator vanished (zero derivative for Newton/Halley,
	// flat secant), so the step is undefined.
	ErrSingularDerivative = errors.New("newton: zero derivative at iterate")

	// ErrBadGuess indicates a non-finite starting point.
	ErrBadGuess = errors.New("newton: initial guess is not finite")
)

// SingularityError reports the iterate at which the update denominator
// vanished.
type SingularityError[T any] struct {
	At         T
	Iterations int
}

func (e *SingularityError[T]) Error() string {
	return fmt.Sprintf("newton: singular update at iteration %d, x=%v", e.Iterations, e.At)
}

// Unwrap lets errors.Is(err, ErrSingularDerivative) match.
func (e *SingularityError[T]) Unwrap() error { return ErrSingularDerivative }

// Options configures a classical solve.
type Options struct {
	// MaxIter is the iteration budget (converge.DefaultMaxIter when 0).
	MaxIter int

	// Cancel, when non-nil, is polled once per iteration.
	Cancel func() bool
}

// Option is a functional option for configuring a solve.
type Option func(*Options)

// WithMaxIter overrides the iteration budget. Non-positive values are
// ignored.
func WithMaxIter(n int) Option {
	return func(o *Options) {
		if n > 0 {
			o.MaxIter = n
		}
	}
}

// WithCancel installs a cancellation hook polled once per iteration.
func WithCancel(fn func() bool) Option {
	return func(o *Options) { o.Cancel = fn }
}

func buildOptions(opts []Option) Options {
	var o Options
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
