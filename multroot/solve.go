package multroot

import (
	"math"
	"sort"

	"github.com/emirpasic/gods/maps/treemap"
	"github.com/emirpasic/gods/utils"

	"github.com/katalvlaran/rootfind/poly"
	"github.com/katalvlaran/rootfind/polyroots"
)

// Solve returns the distinct real roots of p with multiplicities, sorted
// ascending by value.
//
// Degenerate inputs: the zero polynomial is ErrZeroPoly, constants solve
// to an empty set. When every root is real the answers are Gauss–Newton
// polished against the input coefficients; a structure that cannot
// reproduce the coefficients surfaces ErrIllConditioned.
func Solve(p poly.Poly, opts ...Option) ([]Root, error) {
	o := buildOptions(opts)

	p = p.Trim()
	if p.IsZero() {
		return nil, ErrZeroPoly
	}
	if p.Degree() == 0 {
		return nil, nil
	}

	roots, err := cluster(squareFreeChain(p.Monic()), o)
	if err != nil {
		return nil, err
	}
	if len(roots) == 0 {
		return nil, nil
	}

	// The coefficient polish needs the full factorization, which only the
	// all-real case provides.
	total := 0
	for _, r := range roots {
		total += r.Multiplicity
	}
	if total == p.Degree() && o.RefineIters > 0 {
		if err := refine(p.Monic(), roots, o.RefineIters); err != nil {
			return nil, err
		}
	}

	return roots, nil
}

// squareFreeChain builds u₀ = p, u_{k+1} = GCD(u_k, u_k′) down to a
// constant and returns the quotient levels v_k = u_{k−1}/u_k.
func squareFreeChain(p poly.Poly) []poly.Poly {
	var levels []poly.Poly

	u := p
	for u.Degree() >= 1 {
		next := poly.GCD(u, u.Derivative(), 0)

		v, _, err := u.Div(next)
		if err != nil || v.IsZero() {
			break
		}
		levels = append(levels, v)

		u = next
	}

	return levels
}

// cluster scans every level for roots and groups matching values across
// levels; the group size is the multiplicity.
func cluster(levels []poly.Poly, o Options) ([]Root, error) {
	type group struct {
		sum   float64
		count int
	}

	var scanOpts []polyroots.Option
	if o.Subdivisions > 0 {
		scanOpts = append(scanOpts, polyroots.WithSubdivisions(o.Subdivisions))
	}

	tm := treemap.NewWith(utils.Float64Comparator)

	for _, v := range levels {
		found, err := polyroots.RealRoots(v, scanOpts...)
		if err != nil {
			return nil, err
		}

		for _, r := range found {
			if key, val := nearestKey(tm, r); val != nil && withinCluster(key, r) {
				g := val.(*group)
				g.sum += r
				g.count++

				continue
			}

			tm.Put(r, &group{sum: r, count: 1})
		}
	}

	roots := make([]Root, 0, tm.Size())
	tm.Each(func(_, val interface{}) {
		g := val.(*group)
		roots = append(roots, Root{
			Value:        g.sum / float64(g.count),
			Multiplicity: g.count,
		})
	})
	sort.Slice(roots, func(i, j int) bool { return roots[i].Value < roots[j].Value })

	return roots, nil
}

// nearestKey returns the stored key closest to r, or nil values on an
// empty map.
func nearestKey(tm *treemap.Map, r float64) (float64, interface{}) {
	fk, fv := tm.Floor(r)
	ck, cv := tm.Ceiling(r)

	switch {
	case fv == nil && cv == nil:
		return 0, nil
	case fv == nil:
		return ck.(float64), cv
	case cv == nil:
		return fk.(float64), fv
	case r-fk.(float64) <= ck.(float64)-r:
		return fk.(float64), fv
	default:
		return ck.(float64), cv
	}
}

// withinCluster decides whether two per-level estimates are the same root.
// GCD noise separates estimates of one root by far less than this; distinct
// roots the scanner can resolve sit far above it.
func withinCluster(a, b float64) bool {
	return math.Abs(a-b) <= 1e-5*math.Max(1, math.Abs(b))
}
