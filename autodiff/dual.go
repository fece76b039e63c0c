package autodiff

import (
	"errors"

	"gonum.org/v1/gonum/num/dual"
	"gonum.org/v1/gonum/num/hyperdual"
)

// ErrNoDualForm - the DualDerivator was asked for an order it has no
// dual-form callable for.
var ErrNoDualForm = errors.New("autodiff: no dual-form callable supplied for requested order")

// Derivative evaluates f′(x) exactly by seeding the infinitesimal part and
// reading it back after one evaluation.
func Derivative(f func(dual.Number) dual.Number, x float64) float64 {
	return f(dual.Number{Real: x, Emag: 1}).Emag
}

// ValueAndDerivative returns (f(x), f′(x)) from a single dual evaluation.
// Pairs naturally with newton.NewtonFD:
//
//	newton.NewtonFD(func(x float64) (float64, float64) {
//		return autodiff.ValueAndDerivative(g, x)
//	}, x0)
func ValueAndDerivative(f func(dual.Number) dual.Number, x float64) (float64, float64) {
	y := f(dual.Number{Real: x, Emag: 1})

	return y.Real, y.Emag
}

// SecondDerivative evaluates f″(x) exactly via hyperdual arithmetic.
func SecondDerivative(f func(hyperdual.Number) hyperdual.Number, x float64) float64 {
	return f(hyperdual.Number{Real: x, E1mag: 1, E2mag: 1}).E1E2mag
}

// DualDerivator adapts dual-form callables to the Derivator interface. The
// plain callable passed to Derive is ignored; derivatives come from F (order
// 1) and F2 (order 2). F2 may be left nil when only first derivatives are
// needed.
type DualDerivator struct {
	F  func(dual.Number) dual.Number
	F2 func(hyperdual.Number) hyperdual.Number
}

// Derive implements newton.Derivator[float64].
func (d DualDerivator) Derive(_ func(float64) float64, x float64, order int) (float64, error) {
	switch order {
	case 1:
		if d.F == nil {
			return 0, ErrNoDualForm
		}

		return Derivative(d.F, x), nil
	case 2:
		if d.F2 == nil {
			return 0, ErrNoDualForm
		}

		return SecondDerivative(d.F2, x), nil
	default:
		return 0, ErrUnsupportedOrder
	}
}
