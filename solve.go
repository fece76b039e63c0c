package rootfind

import (
	"github.com/katalvlaran/rootfind/autodiff"
	"github.com/katalvlaran/rootfind/bracket"
	"github.com/katalvlaran/rootfind/converge"
	"github.com/katalvlaran/rootfind/fixedpoint"
	"github.com/katalvlaran/rootfind/multroot"
	"github.com/katalvlaran/rootfind/newton"
	"github.com/katalvlaran/rootfind/numeric"
	"github.com/katalvlaran/rootfind/poly"
	"github.com/katalvlaran/rootfind/polyroots"
)

// Result is a solved root with its diagnostics.
type Result struct {
	// Root is the accepted iterate.
	Root float64

	// Residual is f(Root) as last evaluated.
	Residual float64

	// Iterations counts solver iterations spent.
	Iterations int

	// Method names the algorithm that produced the root.
	Method string
}

// Verify re-checks the fixed-point property: the root evaluates to exactly
// zero or to a residual any solver here would accept without iterating.
func (r Result) Verify(f func(float64) float64) bool {
	fx := f(r.Root)
	if fx == 0 {
		return true
	}

	pol := converge.NewPolicy[float64](numeric.F64{}, 1)

	return pol.ResidualWithin(r.Root, fx) || pol.ResidualPlausible(r.Root, fx)
}

// FindRootBracketed solves f on a sign-changing interval [a, b]. Plain
// bisection by default; WithAcceleration selects the Brent variant. Either
// way the result carries the enclosure guarantee.
//
// Component errors (ErrNoSignChange, ErrInvalidBracket, ErrNonFinite) pass
// through unchanged.
func FindRootBracketed(f func(float64) float64, a, b float64, opts ...Option) (Result, error) {
	o := buildOptions(opts)

	var bopts []bracket.Option
	if o.MaxIter > 0 {
		bopts = append(bopts, bracket.WithMaxIter(o.MaxIter))
	}

	solve, method := bracket.BisectIn[float64], "bisect"
	if o.Accelerated {
		solve, method = bracket.BrentIn[float64], "brent"
	}

	x, iters, err := solve(numeric.F64{}, f, a, b, bopts...)
	if err != nil {
		return Result{}, err
	}

	return Result{Root: x, Residual: f(x), Iterations: iters, Method: method}, nil
}

// FindRootFree solves f from a single starting point with the
// derivative-free family. Order 0 (the bracket-capturing hybrid) is the
// default; WithOrder picks a faster scheme, WithBracket confines the
// iterates.
func FindRootFree(f func(float64) float64, x0 float64, opts ...Option) (Result, error) {
	o := buildOptions(opts)

	fpOpts := []fixedpoint.Option[float64]{
		fixedpoint.WithOrder[float64](o.Order),
	}
	if o.MaxIter > 0 {
		fpOpts = append(fpOpts, fixedpoint.WithMaxIter[float64](o.MaxIter))
	}
	if o.Bracket != nil {
		fpOpts = append(fpOpts, fixedpoint.WithBracket(o.Bracket[0], o.Bracket[1]))
	}
	if o.Cancel != nil {
		fpOpts = append(fpOpts, fixedpoint.WithCancel[float64](o.Cancel))
	}

	x, iters, err := fixedpoint.SolveIn(numeric.F64{}, f, x0, fpOpts...)
	if err != nil {
		return Result{}, err
	}

	return Result{Root: x, Residual: f(x), Iterations: iters, Method: methodName(o.Order)}, nil
}

// FindRootsPolynomial returns the distinct real roots of p, ascending,
// via square-free reduction and the subdivision scan.
func FindRootsPolynomial(p poly.Poly, opts ...Option) ([]float64, error) {
	return polyroots.RealRoots(p, scanOpts(buildOptions(opts))...)
}

// FindRootsNaive scans an arbitrary f over [a, b] for bracketable zeros.
// Same blind spots as the underlying scan: even-multiplicity roots and
// more than one root per grid cell go unseen.
func FindRootsNaive(f func(float64) float64, a, b float64, opts ...Option) ([]float64, error) {
	return polyroots.FZeros(f, a, b, scanOpts(buildOptions(opts))...)
}

// FindRootsWithMultiplicity recovers p's distinct real roots together with
// their multiplicities.
func FindRootsWithMultiplicity(p poly.Poly, opts ...Option) ([]multroot.Root, error) {
	o := buildOptions(opts)

	var mopts []multroot.Option
	if o.Subdivisions > 0 {
		mopts = append(mopts, multroot.WithSubdivisions(o.Subdivisions))
	}

	return multroot.Solve(p, mopts...)
}

// Newton solves with derivatives supplied by central finite differences;
// inject an exact provider via NewtonD when f′ is available in closed form.
func Newton(f func(float64) float64, x0 float64, opts ...Option) (Result, error) {
	o := buildOptions(opts)

	x, iters, err := newton.NewtonIn(numeric.F64{}, f, autodiff.FiniteDiff{}, x0, newtonOpts(o)...)
	if err != nil {
		return Result{}, err
	}

	return Result{Root: x, Residual: f(x), Iterations: iters, Method: "newton"}, nil
}

// NewtonD solves with an explicit derivative.
func NewtonD(f, fprime func(float64) float64, x0 float64, opts ...Option) (Result, error) {
	o := buildOptions(opts)

	x, iters, err := newton.NewtonDIn(numeric.F64{}, f, fprime, x0, newtonOpts(o)...)
	if err != nil {
		return Result{}, err
	}

	return Result{Root: x, Residual: f(x), Iterations: iters, Method: "newton"}, nil
}

// Halley solves with explicit first and second derivatives.
func Halley(f, fprime, fpprime func(float64) float64, x0 float64, opts ...Option) (Result, error) {
	o := buildOptions(opts)

	x, iters, err := newton.HalleyDIn(numeric.F64{}, f, fprime, fpprime, x0, newtonOpts(o)...)
	if err != nil {
		return Result{}, err
	}

	return Result{Root: x, Residual: f(x), Iterations: iters, Method: "halley"}, nil
}

// Secant solves from two starting points, derivative-free.
func Secant(f func(float64) float64, x0, x1 float64, opts ...Option) (Result, error) {
	o := buildOptions(opts)

	x, iters, err := newton.SecantIn(numeric.F64{}, f, x0, x1, newtonOpts(o)...)
	if err != nil {
		return Result{}, err
	}

	return Result{Root: x, Residual: f(x), Iterations: iters, Method: "secant"}, nil
}

func newtonOpts(o Options) []newton.Option {
	var out []newton.Option
	if o.MaxIter > 0 {
		out = append(out, newton.WithMaxIter(o.MaxIter))
	}
	if o.Cancel != nil {
		out = append(out, newton.WithCancel(o.Cancel))
	}

	return out
}

func scanOpts(o Options) []polyroots.Option {
	var out []polyroots.Option
	if o.Subdivisions > 0 {
		out = append(out, polyroots.WithSubdivisions(o.Subdivisions))
	}

	return out
}

func methodName(o fixedpoint.Order) string {
	switch o {
	case fixedpoint.Order1:
		return "secant"
	case fixedpoint.Order2:
		return "steffensen"
	case fixedpoint.Order5:
		return "order-5"
	case fixedpoint.Order8:
		return "order-8"
	case fixedpoint.Order16:
		return "order-16"
	default:
		return "hybrid"
	}
}
