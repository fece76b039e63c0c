package numeric

// Arith is the arithmetic capability a numeric backend must supply for the
// solvers in this module to run over its value type T.
//
// Contracts:
//   - Operations never mutate their operands; reference types (big.Float,
//     apd.Decimal) always allocate a fresh result.
//   - Cmp follows the usual -1/0/+1 convention; Sign(x) == Cmp(x, Zero()).
//   - Eps is the relative spacing of representable values near 1 (machine
//     epsilon for float64, 10^(1-digits) for a decimal context).
//   - Next(x) is the closest representable value above x at the backend's
//     working precision; Prev(x) the closest below. Backends without exact
//     neighbour enumeration may step by one unit in the last place.
//   - IsFinite reports whether x is an ordinary number (not NaN, not ±Inf).
type Arith[T any] interface {
	Add(a, b T) T
	Sub(a, b T) T
	Mul(a, b T) T
	Div(a, b T) T
	Neg(a T) T
	Abs(a T) T

	Cmp(a, b T) int
	Sign(a T) int

	Zero() T
	One() T
	FromInt64(v int64) T
	FromFloat64(v float64) T
	Float64(a T) float64

	Eps() T
	Next(a T) T
	Prev(a T) T
	IsFinite(a T) bool
}

// Mid returns the midpoint of a and b computed as a + (b-a)/2, which stays
// inside [a, b] even when a + b would overflow.
func Mid[T any](ar Arith[T], a, b T) T {
	half := ar.Div(ar.Sub(b, a), ar.FromInt64(2))

	return ar.Add(a, half)
}

// Adjacent reports whether no representable value lies strictly between
// lo and hi. It requires lo <= hi; equal endpoints are adjacent.
func Adjacent[T any](ar Arith[T], lo, hi T) bool {
	if ar.Cmp(lo, hi) >= 0 {
		return true
	}

	return ar.Cmp(ar.Next(lo), hi) >= 0
}

// EqualWithin reports |a-b| <= tol.
func EqualWithin[T any](ar Arith[T], a, b, tol T) bool {
	return ar.Cmp(ar.Abs(ar.Sub(a, b)), tol) <= 0
}

// MaxAbs returns the larger of |a| and |b|.
func MaxAbs[T any](ar Arith[T], a, b T) T {
	aa, ab := ar.Abs(a), ar.Abs(b)
	if ar.Cmp(aa, ab) >= 0 {
		return aa
	}

	return ab
}
