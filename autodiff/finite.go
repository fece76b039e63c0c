package autodiff

import (
	"errors"
	"math"
)

// ErrUnsupportedOrder - requested derivative order is not 1 or 2.
var ErrUnsupportedOrder = errors.New("autodiff: unsupported derivative order")

// FiniteDiff approximates derivatives of an arbitrary callable with central
// differences.
//
// Step sizes follow the usual truncation/round-off balance:
//
//	order 1:  h = ∛eps · max(1, |x|),   f′ ≈ (f(x+h) − f(x−h)) / 2h
//	order 2:  h = eps¼ · max(1, |x|),   f″ ≈ (f(x+h) − 2f(x) + f(x−h)) / h²
//
// The zero value is ready to use.
type FiniteDiff struct{}

// Derive implements newton.Derivator[float64] for orders 1 and 2.
func (FiniteDiff) Derive(f func(float64) float64, x float64, order int) (float64, error) {
	scale := math.Max(1, math.Abs(x))

	switch order {
	case 1:
		h := math.Cbrt(epsF64) * scale

		return (f(x+h) - f(x-h)) / (2 * h), nil
	case 2:
		h := math.Sqrt(math.Sqrt(epsF64)) * scale

		return (f(x+h) - 2*f(x) + f(x-h)) / (h * h), nil
	default:
		return 0, ErrUnsupportedOrder
	}
}

// epsF64 is the float64 machine epsilon, 2^-52.
const epsF64 = 0x1p-52
