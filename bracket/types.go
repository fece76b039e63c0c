package bracket

import "errors"

// Sentinel errors returned by the bracketing solvers.
var (
	// ErrInvalidBracket indicates the endpoints do not form a usable
	// interval (equal, or not finite numbers).
	ErrInvalidBracket = errors.New("bracket: endpoints do not form a valid interval")

	// ErrNoSignChange indicates f(a) and f(b) share a sign, so the interval
	// carries no enclosure guarantee. No partial result is produced.
	ErrNoSignChange = errors.New("bracket: f(a) and f(b) must have opposite signs")

	// ErrNonFinite indicates the function produced NaN or an infinity at an
	// interior point; the solve is abandoned rather than retried.
	ErrNonFinite = errors.New("bracket: function produced a non-finite value")
)

// DefaultMaxIter caps a bisection run. Adjacency terminates a float64 solve
// in at most ~1100 halvings; the cap only guards pathological backends.
const DefaultMaxIter = 4096

// Options configures a bracketing solve.
//
//   - MaxIter — hard iteration cap (default DefaultMaxIter). Adjacency or an
//     exact zero normally terminates long before it.
//   - Tol     — optional early stop: accept when the interval width falls
//     below Tol·max(1, |mid|). Zero (the default) disables the early stop
//     and runs to the representable-adjacency limit.
type Options struct {
	MaxIter int
	Tol     float64
}

// Option is a functional option for configuring a bracketing solve.
type Option func(*Options)

// WithMaxIter overrides the iteration cap. Non-positive values are ignored.
func WithMaxIter(n int) Option {
	return func(o *Options) {
		if n > 0 {
			o.MaxIter = n
		}
	}
}

// WithTolerance enables the relative-width early stop. Non-positive values
// are ignored (the solver then runs to the adjacency limit).
func WithTolerance(tol float64) Option {
	return func(o *Options) {
		if tol > 0 {
			o.Tol = tol
		}
	}
}

// DefaultOptions returns the options used when none are supplied:
// MaxIter = DefaultMaxIter, no tolerance early stop.
func DefaultOptions() Options {
	return Options{MaxIter: DefaultMaxIter}
}

func buildOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
