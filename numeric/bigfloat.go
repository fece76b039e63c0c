package numeric

import "math/big"

// DefaultBigPrec is the mantissa precision (in bits) used by NewBig when the
// caller passes 0.
const DefaultBigPrec = 256

// Big is the math/big backend: *big.Float values at a fixed mantissa
// precision. All operations round to that precision.
type Big struct {
	prec uint
}

var _ Arith[*big.Float] = Big{}

// NewBig returns a Big backend at the given mantissa precision in bits
// (DefaultBigPrec if prec == 0).
func NewBig(prec uint) Big {
	if prec == 0 {
		prec = DefaultBigPrec
	}

	return Big{prec: prec}
}

// Prec returns the backend's mantissa precision in bits.
func (b Big) Prec() uint { return b.prec }

func (b Big) new() *big.Float { return new(big.Float).SetPrec(b.prec) }

func (b Big) Add(x, y *big.Float) *big.Float { return b.new().Add(x, y) }
func (b Big) Sub(x, y *big.Float) *big.Float { return b.new().Sub(x, y) }
func (b Big) Mul(x, y *big.Float) *big.Float { return b.new().Mul(x, y) }

func (b Big) Div(x, y *big.Float) *big.Float {
	if y.Sign() == 0 {
		// big.Float panics on 0/0; surface an infinity instead so the
		// solvers' IsFinite checks can classify it as divergence.
		return b.new().SetInf(x.Sign() < 0)
	}

	return b.new().Quo(x, y)
}

func (b Big) Neg(x *big.Float) *big.Float { return b.new().Neg(x) }
func (b Big) Abs(x *big.Float) *big.Float { return b.new().Abs(x) }

func (Big) Cmp(x, y *big.Float) int { return x.Cmp(y) }
func (Big) Sign(x *big.Float) int   { return x.Sign() }

func (b Big) Zero() *big.Float              { return b.new() }
func (b Big) One() *big.Float               { return b.new().SetInt64(1) }
func (b Big) FromInt64(v int64) *big.Float  { return b.new().SetInt64(v) }
func (b Big) FromFloat64(v float64) *big.Float { return b.new().SetFloat64(v) }

func (Big) Float64(x *big.Float) float64 {
	f, _ := x.Float64()

	return f
}

// Eps returns 2^(1-prec), the relative spacing of values near 1.
func (b Big) Eps() *big.Float {
	return b.new().SetMantExp(b.new().SetInt64(1), 1-int(b.prec))
}

// ulp returns one unit in the last place of x at the working precision.
// For x == 0 it falls back to Eps, which is adjacency-conservative.
func (b Big) ulp(x *big.Float) *big.Float {
	if x.Sign() == 0 {
		return b.Eps()
	}
	exp := x.MantExp(nil)

	return b.new().SetMantExp(b.new().SetInt64(1), exp-int(b.prec))
}

func (b Big) Next(x *big.Float) *big.Float { return b.new().Add(x, b.ulp(x)) }
func (b Big) Prev(x *big.Float) *big.Float { return b.new().Sub(x, b.ulp(x)) }

func (Big) IsFinite(x *big.Float) bool { return !x.IsInf() }
