// Package poly implements dense univariate polynomials with real (float64)
// coefficients, sized for the root-finding pipeline: construction, Horner
// evaluation, differentiation, ring arithmetic, Euclidean division and a
// tolerance-aware GCD, plus the Cauchy root bound used to box every real
// root.
//
// Representation: a Poly is a coefficient slice indexed by power, so
// p[i]·xⁱ. New trims trailing zero coefficients; the zero polynomial is the
// empty slice and reports degree −1.
//
//	p := poly.New(-3, 7, -5, 1)         // x³ − 5x² + 7x − 3
//	p.Eval(2)                           // −1
//	p.Derivative()                      // 3x² − 10x + 7
//	poly.FromRoots(1, 1, 3)             // same p, built from its roots
//
// The GCD is computed with the classic Euclidean remainder sequence, monic
// at every step, declaring a remainder zero once its coefficients drop
// below a relative tolerance. Exact symbolic GCDs do not survive floating
// point; the tolerance is what makes square-free factorization of
// numerically-represented polynomials possible at all.
package poly
