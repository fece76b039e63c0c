package multroot

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/rootfind/poly"
)

// refine runs a Gauss–Newton iteration on the root values with the
// multiplicity structure held fixed: minimize the coefficient residual
// coeffs(∏(x−z_j)^{m_j}) − coeffs(p) in least squares. Updates roots in
// place.
func refine(p poly.Poly, roots []Root, iters int) error {
	var (
		n     = p.Degree()
		k     = len(roots)
		scale = math.Max(1, p.MaxNorm())
		jac   = mat.NewDense(n, k, nil)
		res   = mat.NewVecDense(n, nil)
		delta mat.VecDense
		qr    mat.QR
	)

	for iter := 0; iter < iters; iter++ {
		if residual(p, roots, res) <= polishTol*scale {
			return nil
		}

		for j := range roots {
			// ∂coeffs/∂z_j = −m_j · coeffs(P / (x − z_j))
			partial := productSkipping(roots, j)
			mj := float64(roots[j].Multiplicity)
			for i := 0; i < n; i++ {
				var c float64
				if i < len(partial) {
					c = partial[i]
				}
				jac.Set(i, j, -mj*c)
			}
		}

		qr.Factorize(jac)
		if err := qr.SolveVecTo(&delta, false, res); err != nil {
			return fmt.Errorf("%w: %v", ErrIllConditioned, err)
		}

		for j := range roots {
			roots[j].Value -= delta.AtVec(j)
		}
	}

	if residual(p, roots, res) > acceptTol*scale {
		return ErrIllConditioned
	}

	return nil
}

// residual fills res with coeffs(∏(x−z_j)^{m_j}) − coeffs(p) for the n
// non-leading coefficients and returns its max norm.
func residual(p poly.Poly, roots []Root, res *mat.VecDense) float64 {
	prod := product(roots)

	var norm float64
	for i := 0; i < p.Degree(); i++ {
		var c float64
		if i < len(prod) {
			c = prod[i]
		}
		d := c - p[i]
		res.SetVec(i, d)
		norm = math.Max(norm, math.Abs(d))
	}

	return norm
}

// product expands ∏(x−z_j)^{m_j}.
func product(roots []Root) poly.Poly {
	prod := poly.Poly{1}
	for _, r := range roots {
		for k := 0; k < r.Multiplicity; k++ {
			prod = prod.Mul(poly.Poly{-r.Value, 1})
		}
	}

	return prod
}

// productSkipping expands the same product with one power of (x−z_j)
// removed.
func productSkipping(roots []Root, j int) poly.Poly {
	prod := poly.Poly{1}
	for i, r := range roots {
		times := r.Multiplicity
		if i == j {
			times--
		}
		for k := 0; k < times; k++ {
			prod = prod.Mul(poly.Poly{-r.Value, 1})
		}
	}

	return prod
}

const (
	// polishTol stops the iteration once the coefficients match to near
	// round-off.
	polishTol = 1e-13

	// acceptTol is the widest residual still reported as a success.
	acceptTol = 1e-7
)
