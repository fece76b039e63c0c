package numeric

import (
	"github.com/cockroachdb/apd/v3"
	"github.com/pkg/errors"
)

// DefaultDecDigits is the decimal precision used by NewDec when the caller
// passes 0.
const DefaultDecDigits = 34

// Dec is the arbitrary-precision decimal backend, built on a
// cockroachdb/apd context. All operations round to the context's precision.
type Dec struct {
	ctx *apd.Context
}

var _ Arith[*apd.Decimal] = Dec{}

// NewDec returns a Dec backend with the given number of significant decimal
// digits (DefaultDecDigits if digits == 0).
func NewDec(digits uint32) Dec {
	if digits == 0 {
		digits = DefaultDecDigits
	}

	return Dec{ctx: apd.BaseContext.WithPrecision(digits)}
}

// Context exposes the underlying apd context (for callers constructing
// decimals of their own).
func (d Dec) Context() *apd.Context { return d.ctx }

// Parse converts a decimal string into a value of this backend.
func (d Dec) Parse(s string) (*apd.Decimal, error) {
	v, _, err := d.ctx.NewFromString(s)
	if err != nil {
		return nil, errors.Wrapf(err, "numeric: parse decimal %q", s)
	}

	return v, nil
}

// Arithmetic errors (overflow, division by zero) surface as non-finite
// results, which the solvers classify as divergence via IsFinite.

func (d Dec) Add(x, y *apd.Decimal) *apd.Decimal {
	r := new(apd.Decimal)
	_, _ = d.ctx.Add(r, x, y)

	return r
}

func (d Dec) Sub(x, y *apd.Decimal) *apd.Decimal {
	r := new(apd.Decimal)
	_, _ = d.ctx.Sub(r, x, y)

	return r
}

func (d Dec) Mul(x, y *apd.Decimal) *apd.Decimal {
	r := new(apd.Decimal)
	_, _ = d.ctx.Mul(r, x, y)

	return r
}

func (d Dec) Div(x, y *apd.Decimal) *apd.Decimal {
	r := new(apd.Decimal)
	_, _ = d.ctx.Quo(r, x, y)

	return r
}

func (d Dec) Neg(x *apd.Decimal) *apd.Decimal {
	r := new(apd.Decimal)
	_, _ = d.ctx.Neg(r, x)

	return r
}

func (d Dec) Abs(x *apd.Decimal) *apd.Decimal {
	r := new(apd.Decimal)
	_, _ = d.ctx.Abs(r, x)

	return r
}

func (Dec) Cmp(x, y *apd.Decimal) int { return x.Cmp(y) }
func (Dec) Sign(x *apd.Decimal) int   { return x.Sign() }

func (Dec) Zero() *apd.Decimal             { return new(apd.Decimal) }
func (Dec) One() *apd.Decimal              { return apd.New(1, 0) }
func (Dec) FromInt64(v int64) *apd.Decimal { return apd.New(v, 0) }

func (d Dec) FromFloat64(v float64) *apd.Decimal {
	r, err := new(apd.Decimal).SetFloat64(v)
	if err != nil {
		r = &apd.Decimal{Form: apd.NaN}
	}

	return r
}

func (Dec) Float64(x *apd.Decimal) float64 {
	f, err := x.Float64()
	if err != nil {
		return 0
	}

	return f
}

// Eps returns 10^(1-digits), the relative spacing of values near 1.
func (d Dec) Eps() *apd.Decimal {
	return apd.New(1, 1-int32(d.ctx.Precision))
}

// ulp returns one unit in the last significant digit of x. For x == 0 it
// falls back to Eps, which is adjacency-conservative.
func (d Dec) ulp(x *apd.Decimal) *apd.Decimal {
	if x.Sign() == 0 || x.Form != apd.Finite {
		return d.Eps()
	}
	// adjusted exponent of x, then drop to the last of Precision digits.
	adj := x.Exponent + int32(x.NumDigits()) - 1

	return apd.New(1, adj-int32(d.ctx.Precision)+1)
}

func (d Dec) Next(x *apd.Decimal) *apd.Decimal { return d.Add(x, d.ulp(x)) }
func (d Dec) Prev(x *apd.Decimal) *apd.Decimal { return d.Sub(x, d.ulp(x)) }

func (Dec) IsFinite(x *apd.Decimal) bool { return x.Form == apd.Finite }
