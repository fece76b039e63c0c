package poly_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rootfind/poly"
)

func TestNew_TrimsTrailingZeros(t *testing.T) {
	p := poly.New(1, 2, 0, 0)
	assert.Equal(t, 1, p.Degree())
	assert.Equal(t, poly.Poly{1, 2}, p)

	assert.True(t, poly.New(0, 0).IsZero())
	assert.Equal(t, -1, poly.New().Degree())
}

func TestEval_Horner(t *testing.T) {
	// x³ − 5x² + 7x − 3 = (x−1)²(x−3)
	p := poly.New(-3, 7, -5, 1)

	assert.Equal(t, 0.0, p.Eval(1))
	assert.Equal(t, 0.0, p.Eval(3))
	assert.Equal(t, -1.0, p.Eval(2))
	assert.Equal(t, -3.0, p.Eval(0))
}

func TestFromRoots(t *testing.T) {
	p := poly.FromRoots(1, 1, 3)
	assert.Equal(t, poly.Poly{-3, 7, -5, 1}, p)
}

func TestDerivative(t *testing.T) {
	p := poly.New(-3, 7, -5, 1)
	assert.Equal(t, poly.Poly{7, -10, 3}, p.Derivative())

	assert.True(t, poly.New(5).Derivative().IsZero())
	assert.True(t, poly.Poly(nil).Derivative().IsZero())
}

func TestArithmetic(t *testing.T) {
	p := poly.New(1, 1)  // x + 1
	q := poly.New(-1, 1) // x − 1

	assert.Equal(t, poly.Poly{0, 2}, p.Add(q))
	assert.Equal(t, poly.Poly{2}, p.Sub(q))
	assert.Equal(t, poly.Poly{-1, 0, 1}, p.Mul(q)) // x² − 1
	assert.Equal(t, poly.Poly{3, 3}, p.Scale(3))
	assert.True(t, p.Mul(nil).IsZero())
}

func TestMonic(t *testing.T) {
	p := poly.New(-6, 0, 2) // 2x² − 6
	assert.Equal(t, poly.Poly{-3, 0, 1}, p.Monic())
}

func TestDiv_QuotientAndRemainder(t *testing.T) {
	p := poly.New(-3, 7, -5, 1)
	q := poly.New(-1, 1) // x − 1

	quo, rem, err := p.Div(q)
	require.NoError(t, err)
	assert.Equal(t, poly.Poly{3, -4, 1}, quo) // (x−1)(x−3)
	assert.True(t, rem.IsZero())
}

func TestDiv_NonZeroRemainder(t *testing.T) {
	p := poly.New(1, 0, 1) // x² + 1
	q := poly.New(-1, 1)   // x − 1

	quo, rem, err := p.Div(q)
	require.NoError(t, err)
	assert.Equal(t, poly.Poly{1, 1}, quo)
	assert.Equal(t, poly.Poly{2}, rem) // p(1) = 2

	// Invariant: p = quo·q + rem.
	assert.Equal(t, p, quo.Mul(q).Add(rem))
}

func TestDiv_ByZero(t *testing.T) {
	_, _, err := poly.New(1, 1).Div(nil)
	assert.ErrorIs(t, err, poly.ErrZeroDivisor)
}

func TestGCD_SharedFactor(t *testing.T) {
	// p = (x−1)²(x−3), p′ = (x−1)(3x−7): common factor x − 1.
	p := poly.New(-3, 7, -5, 1)
	g := poly.GCD(p, p.Derivative(), 0)

	require.Equal(t, 1, g.Degree())
	assert.InDelta(t, -1.0, g[0], 1e-9)
	assert.InDelta(t, 1.0, g[1], 1e-9)
}

func TestGCD_Coprime(t *testing.T) {
	p := poly.New(-1, 1) // x − 1
	q := poly.New(-2, 1) // x − 2

	assert.Equal(t, poly.Poly{1}, poly.GCD(p, q, 0))
}

func TestGCD_TripleRoot(t *testing.T) {
	// (x−2)³: GCD with the derivative is (x−2)².
	p := poly.FromRoots(2, 2, 2)
	g := poly.GCD(p, p.Derivative(), 0)

	require.Equal(t, 2, g.Degree())
	assert.InDelta(t, 4.0, g[0], 1e-8)
	assert.InDelta(t, -4.0, g[1], 1e-8)
	assert.InDelta(t, 1.0, g[2], 1e-8)
}

func TestCauchyBound_ContainsRoots(t *testing.T) {
	p := poly.FromRoots(-4, 0.5, 3)
	b := p.CauchyBound()

	for _, r := range []float64{-4, 0.5, 3} {
		assert.LessOrEqual(t, -b, r)
		assert.GreaterOrEqual(t, b, r)
	}

	assert.Equal(t, 0.0, poly.New(7).CauchyBound())
}

func TestString(t *testing.T) {
	assert.Equal(t, "x^3 - 5x^2 + 7x - 3", poly.New(-3, 7, -5, 1).String())
	assert.Equal(t, "0", poly.Poly(nil).String())
	assert.Equal(t, "2x", poly.New(0, 2).String())
	assert.Equal(t, "-x^2 + 1", poly.New(1, 0, -1).String())
}
