package fixedpoint_test

import (
	"errors"
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rootfind/bracket"
	"github.com/katalvlaran/rootfind/converge"
	"github.com/katalvlaran/rootfind/fixedpoint"
	"github.com/katalvlaran/rootfind/numeric"
)

func expMinusX4(x float64) float64 { return math.Exp(x) - x*x*x*x }

// TestSolve_Order0Reference is the reference scenario: exp(x) - x^4 from
// x0 = 3 with the default order-0 hybrid.
func TestSolve_Order0Reference(t *testing.T) {
	x, err := fixedpoint.Solve(expMinusX4, 3)
	require.NoError(t, err)
	assert.InDelta(t, 1.4296118247255558, x, 1e-10)
}

// TestSolve_Order16Sin is the reference scenario: sin from x0 = 3 at the
// highest order lands on pi.
func TestSolve_Order16Sin(t *testing.T) {
	x, err := fixedpoint.Solve(math.Sin, 3, fixedpoint.WithOrder[float64](fixedpoint.Order16))
	require.NoError(t, err)
	assert.InDelta(t, math.Pi, x, 1e-14)
}

// TestSolve_AllOrdersConverge runs every order on a smooth function with a
// good guess.
func TestSolve_AllOrdersConverge(t *testing.T) {
	orders := []fixedpoint.Order{
		fixedpoint.Order0, fixedpoint.Order1, fixedpoint.Order2,
		fixedpoint.Order5, fixedpoint.Order8, fixedpoint.Order16,
	}
	for _, ord := range orders {
		x, err := fixedpoint.Solve(math.Sin, 3, fixedpoint.WithOrder[float64](ord))
		require.NoError(t, err, "order %d", ord)
		assert.InDelta(t, math.Pi, x, 1e-12, "order %d", ord)
	}
}

// TestSolveIn_OrderMonotonicity checks the non-strict property: higher
// orders need no more iterations than order 0 on a smooth problem.
func TestSolveIn_OrderMonotonicity(t *testing.T) {
	ar := numeric.F64{}
	iters := func(ord fixedpoint.Order) int {
		_, n, err := fixedpoint.SolveIn[float64](ar, math.Sin, 3,
			fixedpoint.WithOrder[float64](ord))
		require.NoError(t, err, "order %d", ord)
		return n
	}

	base := iters(fixedpoint.Order0)
	for _, ord := range []fixedpoint.Order{
		fixedpoint.Order1, fixedpoint.Order2, fixedpoint.Order5,
		fixedpoint.Order8, fixedpoint.Order16,
	} {
		assert.LessOrEqual(t, iters(ord), base, "order %d vs order 0", ord)
	}
}

// TestSolve_Idempotence re-runs the solver from a converged root; it must
// finish in at most one extra iteration.
func TestSolve_Idempotence(t *testing.T) {
	ar := numeric.F64{}

	root, _, err := fixedpoint.SolveIn[float64](ar, math.Sin, 3)
	require.NoError(t, err)

	again, n, err := fixedpoint.SolveIn[float64](ar, math.Sin, root)
	require.NoError(t, err)
	assert.LessOrEqual(t, n, 1, "already at the fixed point")
	assert.InDelta(t, root, again, 1e-14)
}

// TestSolve_BadOrder rejects unsupported orders.
func TestSolve_BadOrder(t *testing.T) {
	_, err := fixedpoint.Solve(math.Sin, 3, fixedpoint.WithOrder[float64](3))
	assert.ErrorIs(t, err, fixedpoint.ErrBadOrder)
}

// TestSolve_BracketConstrained keeps every iterate inside the supplied
// interval and still converges.
func TestSolve_BracketConstrained(t *testing.T) {
	x, err := fixedpoint.Solve(expMinusX4, 8.5,
		fixedpoint.WithBracket[float64](8, 9))
	require.NoError(t, err)
	assert.InDelta(t, 8.613169456441398, x, 1e-9)
	assert.True(t, x >= 8 && x <= 9)
}

// TestSolve_BracketCollapseTerminates: when no residual can ever satisfy
// the tolerance (here f is scaled by 1e20), the bracket still collapses to
// adjacent floats and the solve ends there instead of burning the budget.
func TestSolve_BracketCollapseTerminates(t *testing.T) {
	f := func(x float64) float64 { return 1e20 * (x*x - 2) }

	x, iters, err := fixedpoint.SolveIn[float64](numeric.F64{}, f, 1.5,
		fixedpoint.WithBracket[float64](1, 2))
	require.NoError(t, err)
	assert.InDelta(t, math.Sqrt2, x, 1e-15)
	assert.Less(t, iters, 100)

	// The accepted endpoint sits on a sign change between adjacent floats.
	fx := f(x)
	if fx != 0 {
		prev := math.Nextafter(x, math.Inf(-1))
		next := math.Nextafter(x, math.Inf(1))
		assert.True(t, f(prev)*fx < 0 || fx*f(next) < 0)
	}
}

// TestSolve_BracketPreconditions validates the supplied bracket before
// iterating.
func TestSolve_BracketPreconditions(t *testing.T) {
	// Same-sign endpoints.
	_, err := fixedpoint.Solve(expMinusX4, 1.5, fixedpoint.WithBracket[float64](1, 2))
	assert.ErrorIs(t, err, bracket.ErrNoSignChange)

	// Guess outside the bracket.
	_, err = fixedpoint.Solve(expMinusX4, 12, fixedpoint.WithBracket[float64](8, 9))
	assert.ErrorIs(t, err, fixedpoint.ErrBadGuess)

	// Degenerate bracket.
	_, err = fixedpoint.Solve(expMinusX4, 8, fixedpoint.WithBracket[float64](8, 8))
	assert.ErrorIs(t, err, bracket.ErrInvalidBracket)
}

// TestSolve_DivergenceTyped surfaces non-finite values as a typed
// divergence, not a wrong answer.
func TestSolve_DivergenceTyped(t *testing.T) {
	blowup := func(x float64) float64 {
		if x > 2 {
			return math.NaN()
		}
		return x*x + 1 // no real root; iterates wander
	}

	_, err := fixedpoint.Solve(blowup, 1.9, fixedpoint.WithOrder[float64](fixedpoint.Order1))
	require.Error(t, err)
	rootless := errors.Is(err, converge.ErrDivergence) || errors.Is(err, converge.ErrNonConvergence)
	assert.True(t, rootless, "expected divergence or non-convergence, got %v", err)
}

// TestSolve_NonConvergenceCarriesBest exhausts the budget on a rootless
// function and checks the typed error payload.
func TestSolve_NonConvergenceCarriesBest(t *testing.T) {
	f := func(x float64) float64 { return x*x + 1 }

	_, _, err := fixedpoint.SolveIn[float64](numeric.F64{}, f, 0.5,
		fixedpoint.WithOrder[float64](fixedpoint.Order1),
		fixedpoint.WithMaxIter[float64](20))
	require.Error(t, err)
	assert.ErrorIs(t, err, converge.ErrNonConvergence)

	var nc *converge.NonConvergenceError[float64]
	require.ErrorAs(t, err, &nc)
	assert.True(t, math.Abs(nc.FBest) >= 1, "f = x^2+1 never drops below 1")
	assert.NotZero(t, nc.Iterations)
}

// TestSolve_Cancel aborts between iterations via the hook.
func TestSolve_Cancel(t *testing.T) {
	calls := 0
	_, err := fixedpoint.Solve(math.Sin, 3,
		fixedpoint.WithOrder[float64](fixedpoint.Order1),
		fixedpoint.WithCancel[float64](func() bool { calls++; return true }))
	assert.ErrorIs(t, err, converge.ErrCanceled)
	assert.Equal(t, 1, calls, "cancel is polled once per iteration")
}

// TestSolveIn_BigFloat runs order 8 over 256-bit floats; extra evaluations
// per step are where extended precision pays off.
func TestSolveIn_BigFloat(t *testing.T) {
	ar := numeric.NewBig(256)
	f := func(x *big.Float) *big.Float {
		return ar.Sub(ar.Mul(x, x), ar.FromInt64(2))
	}

	x, _, err := fixedpoint.SolveIn[*big.Float](ar, f, ar.FromInt64(1),
		fixedpoint.WithOrder[*big.Float](fixedpoint.Order8))
	require.NoError(t, err)

	resid := ar.Abs(f(x))
	assert.True(t, ar.Cmp(resid, ar.FromFloat64(1e-60)) <= 0,
		"256-bit order-8 solve must beat 1e-60, got %v", resid)
}
