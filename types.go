package rootfind

import "github.com/katalvlaran/rootfind/fixedpoint"

// Options configures the dispatcher entry points. Each solver reads only
// the fields that apply to it.
type Options struct {
	// Order selects the derivative-free scheme for FindRootFree.
	Order fixedpoint.Order

	// MaxIter overrides the underlying solver's iteration budget.
	MaxIter int

	// Accelerated switches FindRootBracketed from bisection to Brent.
	Accelerated bool

	// Bracket confines FindRootFree iterates to a sign-changing interval.
	Bracket *[2]float64

	// Subdivisions tunes the grid resolution of the scanning solvers.
	Subdivisions int

	// Cancel is polled once per iteration; returning true aborts the solve.
	Cancel func() bool
}

// Option mutates Options.
type Option func(*Options)

// WithOrder selects the derivative-free convergence order.
func WithOrder(order fixedpoint.Order) Option {
	return func(o *Options) { o.Order = order }
}

// WithMaxIter overrides the iteration budget. Values ≤ 0 are ignored.
func WithMaxIter(n int) Option {
	return func(o *Options) {
		if n > 0 {
			o.MaxIter = n
		}
	}
}

// WithAcceleration selects the Brent-accelerated bracketing solver.
func WithAcceleration() Option {
	return func(o *Options) { o.Accelerated = true }
}

// WithBracket supplies a confining interval to the free solver.
func WithBracket(a, b float64) Option {
	return func(o *Options) { o.Bracket = &[2]float64{a, b} }
}

// WithSubdivisions tunes the root-scanning grid. Values < 1 are ignored.
func WithSubdivisions(n int) Option {
	return func(o *Options) {
		if n >= 1 {
			o.Subdivisions = n
		}
	}
}

// WithCancel installs a cooperative cancellation hook.
func WithCancel(fn func() bool) Option {
	return func(o *Options) { o.Cancel = fn }
}

// DefaultOptions returns the baseline configuration: hybrid order 0, the
// solvers' own iteration budgets, plain bisection, default scan grid.
func DefaultOptions() Options {
	return Options{}
}

func buildOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
