package numeric_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rootfind/numeric"
)

// TestF64_Adjacency verifies that Next/Prev enumerate exact float64
// neighbours and that Adjacent detects them.
func TestF64_Adjacency(t *testing.T) {
	ar := numeric.F64{}

	x := 1.5
	assert.Equal(t, math.Nextafter(x, math.Inf(1)), ar.Next(x), "Next must match Nextafter")
	assert.Equal(t, math.Nextafter(x, math.Inf(-1)), ar.Prev(x), "Prev must match Nextafter")

	assert.True(t, numeric.Adjacent(ar, x, ar.Next(x)), "x and Next(x) are adjacent")
	assert.False(t, numeric.Adjacent(ar, x, ar.Next(ar.Next(x))), "one value lies between")
	assert.True(t, numeric.Adjacent(ar, x, x), "equal endpoints are adjacent")
}

// TestF64_MidStaysInside checks the overflow-safe midpoint.
func TestF64_MidStaysInside(t *testing.T) {
	ar := numeric.F64{}

	a, b := math.MaxFloat64/2, math.MaxFloat64
	m := numeric.Mid(ar, a, b)
	assert.True(t, ar.IsFinite(m), "midpoint of large interval must stay finite")
	assert.True(t, a <= m && m <= b, "midpoint must stay inside the interval")
}

// TestF64_FiniteClassification covers NaN and infinities.
func TestF64_FiniteClassification(t *testing.T) {
	ar := numeric.F64{}

	assert.True(t, ar.IsFinite(0))
	assert.False(t, ar.IsFinite(math.NaN()))
	assert.False(t, ar.IsFinite(math.Inf(1)))
	assert.False(t, ar.IsFinite(math.Inf(-1)))
}

// TestBig_UlpStep verifies that Next moves by one unit in the last place at
// the working precision.
func TestBig_UlpStep(t *testing.T) {
	ar := numeric.NewBig(128)

	one := ar.One()
	next := ar.Next(one)
	require.Equal(t, 1, ar.Cmp(next, one), "Next(1) must exceed 1")

	gap := ar.Sub(next, one)
	assert.Equal(t, 0, ar.Cmp(gap, ar.Eps()), "gap above 1 equals Eps at this precision")
	assert.True(t, numeric.Adjacent(ar, one, next), "1 and Next(1) are adjacent")
}

// TestBig_DivByZeroIsInfinite ensures the backend reports division blowups
// through IsFinite instead of panicking.
func TestBig_DivByZeroIsInfinite(t *testing.T) {
	ar := numeric.NewBig(64)

	q := ar.Div(ar.One(), ar.Zero())
	assert.False(t, ar.IsFinite(q), "1/0 must be classified non-finite")
}

// TestDec_Basics exercises decimal arithmetic, epsilon scale and parsing.
func TestDec_Basics(t *testing.T) {
	ar := numeric.NewDec(20)

	two := ar.FromInt64(2)
	half := ar.Div(ar.One(), two)
	assert.Equal(t, 0, ar.Cmp(half, ar.FromFloat64(0.5)), "1/2 == 0.5")

	v, err := ar.Parse("1.25")
	require.NoError(t, err)
	assert.Equal(t, 1.25, ar.Float64(v))

	_, err = ar.Parse("not-a-number")
	assert.Error(t, err, "garbage must not parse")

	next := ar.Next(ar.One())
	gap := ar.Sub(next, ar.One())
	assert.Equal(t, 0, ar.Cmp(gap, ar.Eps()), "decimal ulp above 1 equals Eps")
}

// TestDec_DivByZeroIsNonFinite mirrors the big.Float blowup policy.
func TestDec_DivByZeroIsNonFinite(t *testing.T) {
	ar := numeric.NewDec(10)

	q := ar.Div(ar.One(), ar.Zero())
	assert.False(t, ar.IsFinite(q), "1/0 must be classified non-finite")
}
