package fixedpoint

import "errors"

// Order selects the update formula of the derivative-free family. See the
// package documentation for the trade-offs.
type Order int

// Supported orders. The zero value (Order0, the bracket-capturing hybrid)
// is the default.
const (
	Order0  Order = 0
	Order1  Order = 1
	Order2  Order = 2
	Order5  Order = 5
	Order8  Order = 8
	Order16 Order = 16
)

func (o Order) valid() bool {
	switch o {
	case Order0, Order1, Order2, Order5, Order8, Order16:
		return true
	default:
		return false
	}
}

// Sentinel errors specific to this package. Convergence failures come from
// package converge; bracket precondition failures reuse package bracket's
// sentinels.
var (
	// ErrBadOrder indicates an order outside {0, 1, 2, 5, 8, 16}.
	ErrBadOrder = errors.New("fixedpoint: order must be one of 0, 1, 2, 5, 8, 16")

	// ErrBadGuess indicates a non-finite initial guess, or a guess outside
	// a supplied bracket.
	ErrBadGuess = errors.New("fixedpoint: initial guess is not usable")
)

// Options configures a derivative-free solve.
//
//   - Order    — update formula (default Order0).
//   - MaxIter  — iteration budget (default converge.DefaultMaxIter via 0).
//   - Bracket  — optional constraining interval; endpoints must produce
//     opposite-sign function values.
//   - Cancel   — optional hook polled once per iteration.
type Options[T any] struct {
	Order   Order
	MaxIter int
	Bracket *[2]T
	Cancel  func() bool
}

// Option is a functional option for configuring a solve.
type Option[T any] func(*Options[T])

// WithOrder selects the update formula.
func WithOrder[T any](order Order) Option[T] {
	return func(o *Options[T]) { o.Order = order }
}

// WithMaxIter overrides the iteration budget. Non-positive values are
// ignored.
func WithMaxIter[T any](n int) Option[T] {
	return func(o *Options[T]) {
		if n > 0 {
			o.MaxIter = n
		}
	}
}

// WithBracket constrains the solve to [a, b]. The endpoints must evaluate
// to opposite signs; this is validated at solve entry.
func WithBracket[T any](a, b T) Option[T] {
	return func(o *Options[T]) { o.Bracket = &[2]T{a, b} }
}

// WithCancel installs a cancellation hook polled once per iteration.
func WithCancel[T any](fn func() bool) Option[T] {
	return func(o *Options[T]) { o.Cancel = fn }
}

// DefaultOptions returns the defaults: Order0, converge.DefaultMaxIter
// budget, no bracket.
func DefaultOptions[T any]() Options[T] {
	return Options[T]{}
}

func buildOptions[T any](opts []Option[T]) Options[T] {
	o := DefaultOptions[T]()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
