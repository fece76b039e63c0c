// Package autodiff supplies derivative providers for the solvers that need
// f′ (and sometimes f″) but are handed only a plain callable.
//
// Two providers are available:
//
//   - FiniteDiff — central finite differences on the callable itself. Works
//     for any f, costs two (order 1) or three (order 2) extra evaluations
//     per point, accurate to roughly eps^(2/3) for the first derivative.
//   - DualDerivator — exact derivatives via dual / hyperdual arithmetic,
//     for functions the caller can express over gonum's dual number types.
//     No truncation error, one evaluation per point.
//
// Both satisfy newton.Derivator[float64], so either can be injected into
// newton.Newton or newton.HalleyIn unchanged:
//
//	x, err := newton.Newton(f, autodiff.FiniteDiff{}, 1.0)
//
//	d := autodiff.DualDerivator{F: func(v dual.Number) dual.Number {
//		return dual.Sub(dual.Exp(v), dual.Number{Real: 2})
//	}}
//	x, err := newton.Newton(f, d, 1.0)
//
// Derivative orders above 2 are not provided; requesting one returns
// ErrUnsupportedOrder.
package autodiff
