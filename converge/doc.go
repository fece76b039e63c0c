// Package converge holds the tolerance and iteration-budget policy shared by
// every iterative solver in this module, together with the typed failures a
// non-convergent solve surfaces.
//
// Stopping conditions are checked in a fixed priority order:
//
//  1. exact zero found;
//  2. step size or residual below tolerance;
//  3. (whenever a confining interval exists — the bracket solvers and the
//     bracket-constrained fixed-point loop) the two endpoints are adjacent
//     representable values — a hard termination independent of any
//     tolerance, applied by those solvers via numeric.Adjacent;
//  4. iteration budget exhausted — reported as a NonConvergenceError carrying
//     the best iterate, never a silently wrong answer.
//
// Tolerances default from the numeric backend's machine epsilon, so the same
// policy scales from float64 to arbitrary precision. No solve retries
// automatically: one non-convergent attempt is one typed error.
//
// Errors (sentinel, matchable with errors.Is):
//
//   - ErrNonConvergence — budget exhausted; errors.As to NonConvergenceError.
//   - ErrDivergence     — a non-finite value appeared; errors.As to DivergenceError.
//   - ErrCanceled       — the caller's Cancel hook fired between iterations.
package converge
