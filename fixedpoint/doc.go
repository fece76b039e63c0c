// Package fixedpoint implements a single derivative-free iteration scheme
// parameterized by "order" — the convergence-speed class of the update
// formula — trading robustness for asymptotic speed.
//
// Orders:
//
//   - 0  — the safeguarded variant: secant updates wrapped in a
//     safeguard that captures a bracket as soon as two iterates with
//     opposite-sign function values are seen, then never lets a step leave
//     it, substituting bisection for any step that would. Best choice for a
//     poor initial guess.
//   - 1  — the secant method: one evaluation per step, memory of one
//     previous iterate.
//   - 2  — Steffensen's method: a finite-difference surrogate derivative
//     f[x, x+f(x)] gives quadratic convergence without memory, at the cost
//     of sensitivity to initial-guess quality.
//   - 5  — a three-point scheme: a Steffensen sub-step followed by inverse
//     quadratic interpolation through the three points evaluated so far.
//   - 8  — a four-point scheme: as order 5, plus an inverse cubic
//     correction through all four points.
//   - 16 — two chained order-8 composites per iteration.
//
// The higher orders spend more function evaluations per iteration for
// faster asymptotic convergence — most profitable in extended precision,
// where evaluations are cheap relative to the digits gained per step.
//
// An optional bracket constrains any order: every proposed step is clamped
// to the current interval, a proposal that would exit it (or goes
// non-finite) is replaced by a bisection step, and the interval shrinks by
// sign as iterates land inside it.
//
// Termination and failure follow package converge: exact zero or tolerance
// convergence on success; NonConvergenceError (budget/stall) or
// DivergenceError (non-finite value, never retried) otherwise.
package fixedpoint
