package polyroots

import (
	"math"
	"sort"

	"github.com/katalvlaran/rootfind/bracket"
	"github.com/katalvlaran/rootfind/poly"
)

// RealRoots returns the distinct real roots of p in ascending order.
//
// The polynomial is first made square-free (divided by GCD(p, p′)), so
// repeated roots are reported once; use multroot for multiplicities. The
// scan interval is [−B, B] with B the Cauchy bound.
//
// Errors: ErrZeroPoly for the zero polynomial; bracketed-solve failures
// pass through unchanged.
func RealRoots(p poly.Poly, opts ...Option) ([]float64, error) {
	p = p.Trim()
	if p.IsZero() {
		return nil, ErrZeroPoly
	}

	switch p.Degree() {
	case 0:
		return nil, nil
	case 1:
		return []float64{-p[0] / p[1]}, nil
	}

	q := squareFree(p)
	if q.Degree() == 1 {
		return []float64{-q[0] / q[1]}, nil
	}

	b := q.CauchyBound()

	roots, err := scan(q.Eval, -b, b, buildOptions(opts).Subdivisions)
	if err != nil {
		return nil, err
	}

	return dedupe(roots), nil
}

// FZeros scans f over [a, b] and returns the roots it can bracket, in
// ascending order. See the package comment for what a grid scan cannot
// see.
func FZeros(f func(float64) float64, a, b float64, opts ...Option) ([]float64, error) {
	if math.IsNaN(a) || math.IsNaN(b) || math.IsInf(a, 0) || math.IsInf(b, 0) || a >= b {
		return nil, ErrInvalidInterval
	}

	roots, err := scan(f, a, b, buildOptions(opts).Subdivisions)
	if err != nil {
		return nil, err
	}

	return dedupe(roots), nil
}

// squareFree strips repeated factors: q = p / GCD(p, p′).
func squareFree(p poly.Poly) poly.Poly {
	g := poly.GCD(p, p.Derivative(), 0)
	if g.Degree() < 1 {
		return p
	}

	q, _, err := p.Div(g)
	if err != nil || q.IsZero() {
		return p
	}

	return q
}

// scan walks a uniform grid over [a, b], records exact grid-point zeros,
// and solves every sign-changing cell with Brent's method.
func scan(f func(float64) float64, a, b float64, cells int) ([]float64, error) {
	var roots []float64

	h := (b - a) / float64(cells)
	x0, f0 := a, f(a)

	for i := 1; i <= cells; i++ {
		x1 := a + float64(i)*h
		if i == cells {
			x1 = b
		}
		f1 := f(x1)

		switch {
		case f0 == 0:
			roots = append(roots, x0)
		case f1 != 0 && math.Signbit(f0) != math.Signbit(f1):
			r, err := bracket.Brent(f, x0, x1)
			if err != nil {
				return nil, err
			}
			roots = append(roots, r)
		}

		x0, f0 = x1, f1
	}
	if f0 == 0 {
		roots = append(roots, x0)
	}

	return roots, nil
}

// dedupe sorts and merges near-identical roots (a grid point sitting on a
// root can be reported by both adjacent cells).
func dedupe(roots []float64) []float64 {
	if len(roots) < 2 {
		return roots
	}

	sort.Float64s(roots)

	out := roots[:1]
	for _, r := range roots[1:] {
		last := out[len(out)-1]
		if math.Abs(r-last) > mergeTol*math.Max(1, math.Abs(r)) {
			out = append(out, r)
		}
	}

	return out
}

// mergeTol is deliberately coarse next to solver accuracy: distinct roots
// from a square-free scan are at least a grid cell apart.
const mergeTol = 1e-9
