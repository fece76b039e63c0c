// Package polyroots finds the real roots of polynomials, and of arbitrary
// scalar functions over an interval, by bracketing.
//
// # Algorithm
//
//  1. Reduce to a square-free polynomial q = p / GCD(p, p′), so every real
//     root of p appears in q exactly once and all brackets are clean sign
//     changes.
//  2. Box all real roots with the Cauchy bound B = 1 + max|pᵢ|/|p_n|.
//  3. Scan [−B, B] on a uniform grid (256 cells unless overridden) and run
//     a bracketed solve on every cell whose endpoints change sign.
//
// Degrees 0 and 1 bypass the scan: constants have no roots and the linear
// root is closed-form.
//
// FZeros applies the same grid-and-bracket scan to any callable on a
// caller-chosen interval.
//
// # Blind spots
//
// A grid scan sees only sign changes. Roots of even multiplicity (the
// function touches zero without crossing) and pairs of roots closer
// together than one grid cell are invisible. Raise the subdivision count
// for crowded root sets, or use multroot when multiplicities matter.
package polyroots
