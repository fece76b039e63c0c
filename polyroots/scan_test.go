package polyroots_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rootfind/poly"
	"github.com/katalvlaran/rootfind/polyroots"
)

func TestRealRoots_Cubic(t *testing.T) {
	// (x−1)²(x−3): the double root reports once.
	p := poly.New(-3, 7, -5, 1)

	roots, err := polyroots.RealRoots(p)
	require.NoError(t, err)
	require.Len(t, roots, 2)
	assert.InDelta(t, 1.0, roots[0], 1e-9)
	assert.InDelta(t, 3.0, roots[1], 1e-9)
}

func TestRealRoots_AllSimple(t *testing.T) {
	want := []float64{-2, 0.5, 1, 4}
	p := poly.FromRoots(want...)

	roots, err := polyroots.RealRoots(p)
	require.NoError(t, err)
	require.Len(t, roots, len(want))
	for i, w := range want {
		assert.InDelta(t, w, roots[i], 1e-9)
	}
}

func TestRealRoots_Linear(t *testing.T) {
	roots, err := polyroots.RealRoots(poly.New(-4, 2))
	require.NoError(t, err)
	assert.Equal(t, []float64{2}, roots)
}

func TestRealRoots_NoRealRoots(t *testing.T) {
	roots, err := polyroots.RealRoots(poly.New(1, 0, 1)) // x² + 1
	require.NoError(t, err)
	assert.Empty(t, roots)
}

func TestRealRoots_Degenerate(t *testing.T) {
	_, err := polyroots.RealRoots(nil)
	assert.ErrorIs(t, err, polyroots.ErrZeroPoly)

	roots, err := polyroots.RealRoots(poly.New(7))
	require.NoError(t, err)
	assert.Empty(t, roots)
}

func TestRealRoots_CrowdedNeedsResolution(t *testing.T) {
	// Two roots 1e-4 apart sit inside one default grid cell and are
	// invisible; a finer grid separates them.
	p := poly.FromRoots(0.7, 0.7001)

	coarse, err := polyroots.RealRoots(p)
	require.NoError(t, err)
	assert.Empty(t, coarse)

	fine, err := polyroots.RealRoots(p, polyroots.WithSubdivisions(200_000))
	require.NoError(t, err)
	require.Len(t, fine, 2)
	assert.InDelta(t, 0.7, fine[0], 1e-9)
	assert.InDelta(t, 0.7001, fine[1], 1e-9)
}

func TestFZeros_Sine(t *testing.T) {
	roots, err := polyroots.FZeros(math.Sin, 3, 7)
	require.NoError(t, err)
	require.Len(t, roots, 2)
	assert.InDelta(t, math.Pi, roots[0], 1e-9)
	assert.InDelta(t, 2*math.Pi, roots[1], 1e-9)
}

func TestFZeros_GridPointRoot(t *testing.T) {
	// x = 0 lands exactly on the grid and must be reported once.
	id := func(x float64) float64 { return x }

	roots, err := polyroots.FZeros(id, -1, 1, polyroots.WithSubdivisions(2))
	require.NoError(t, err)
	assert.Equal(t, []float64{0}, roots)
}

func TestFZeros_EvenTouchIsInvisible(t *testing.T) {
	// x² touches zero without crossing: the documented blind spot.
	sq := func(x float64) float64 { return x * x }

	roots, err := polyroots.FZeros(sq, -1.05, 1.1)
	require.NoError(t, err)
	assert.Empty(t, roots)
}

func TestFZeros_InvalidInterval(t *testing.T) {
	f := func(x float64) float64 { return x }

	for _, c := range [][2]float64{{1, 1}, {2, 1}, {math.NaN(), 1}, {0, math.Inf(1)}} {
		_, err := polyroots.FZeros(f, c[0], c[1])
		assert.ErrorIs(t, err, polyroots.ErrInvalidInterval, "interval %v", c)
	}
}
