// Package rootfind finds zeros of scalar real functions and real roots of
// polynomials through a family of complementary algorithms, selected by how
// the caller poses the problem.
//
// 🚀 What is rootfind?
//
//	A pure-Go numerical library that brings together:
//		• Bracketing solvers: bisection with a floating-point enclosure
//		  guarantee, plus a Brent-style accelerated variant
//		• A derivative-free iterator family of selectable convergence
//		  order (0, 1, 2, 5, 8, 16), optionally bracket-constrained
//		• Classical methods: Newton, Halley, secant — with explicit,
//		  tuple-valued, or automatically derived derivatives
//		• Polynomial real-root extraction via square-free reduction
//		  (GCD with the derivative) and subdivision scanning
//		• Multiplicity-aware root finding (Zeng's multroot)
//
// ✨ Why choose rootfind?
//
//   - Hard guarantees — the bracketing solver terminates only when the two
//     endpoints are adjacent representable values (or an exact zero is hit)
//   - Typed failures — every non-convergent solve surfaces a typed error
//     carrying the best iterate; nothing is silently substituted or retried
//   - Generic numerics — the iterative solvers are written once against a
//     small arithmetic capability and run over machine floats, math/big
//     floats and arbitrary-precision decimals alike
//   - Pure Go — synchronous, allocation-light, safe for concurrent use as
//     long as the supplied callables are
//
// Everything is organized as one package per algorithm family:
//
//	numeric/    — the Arith capability + float64, big.Float, apd.Decimal backends
//	converge/   — shared tolerance and iteration-budget policy
//	bracket/    — bisection and Brent on a sign-changing interval
//	fixedpoint/ — the derivative-free order family
//	newton/     — Newton, Halley, secant over injected derivatives
//	autodiff/   — default derivative providers (finite difference, dual numbers)
//	poly/       — polynomial arithmetic (Horner, division, GCD, Cauchy bound)
//	polyroots/  — square-free + subdivision real-root extraction, FZeros scan
//	multroot/   — Zeng's multiplicity recovery and refinement
//
// The root package is the dispatcher: it routes a call shape — bracket,
// single guess, guess plus bracket, or coefficient vector — to the matching
// solver and passes component errors through unchanged.
//
// Quick example:
//
//	f := func(x float64) float64 { return math.Exp(x) - x*x*x*x }
//	res, err := rootfind.FindRootBracketed(f, 8, 9)
//	// res.Root ≈ 8.613169456441398
//
//	go get github.com/katalvlaran/rootfind
package rootfind
