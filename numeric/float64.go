package numeric

import "math"

// F64 is the machine-float backend. It is a zero-size value; pass F64{}
// wherever an Arith[float64] is expected.
type F64 struct{}

// compile-time conformance check.
var _ Arith[float64] = F64{}

func (F64) Add(a, b float64) float64 { return a + b }
func (F64) Sub(a, b float64) float64 { return a - b }
func (F64) Mul(a, b float64) float64 { return a * b }
func (F64) Div(a, b float64) float64 { return a / b }
func (F64) Neg(a float64) float64    { return -a }
func (F64) Abs(a float64) float64    { return math.Abs(a) }

func (F64) Cmp(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func (f F64) Sign(a float64) int { return f.Cmp(a, 0) }

func (F64) Zero() float64                { return 0 }
func (F64) One() float64                 { return 1 }
func (F64) FromInt64(v int64) float64    { return float64(v) }
func (F64) FromFloat64(v float64) float64 { return v }
func (F64) Float64(a float64) float64    { return a }

// Eps is the float64 machine epsilon, 2^-52.
func (F64) Eps() float64 { return 0x1p-52 }

func (F64) Next(a float64) float64 { return math.Nextafter(a, math.Inf(1)) }
func (F64) Prev(a float64) float64 { return math.Nextafter(a, math.Inf(-1)) }

func (F64) IsFinite(a float64) bool { return !math.IsNaN(a) && !math.IsInf(a, 0) }
