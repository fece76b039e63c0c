// Package newton implements the classical derivative-based methods —
// Newton, Halley and secant — over explicit, tuple-valued, or injected
// derivatives.
//
// Derivatives come from one of three places, fastest first:
//
//   - the caller already has closed forms: NewtonD(f, fprime, x0),
//     Halley(f, fprime, fpprime, x0);
//   - the caller can compute value and derivatives together:
//     NewtonFD(f, x0) where f returns (fx, f'x), HalleyFD where it returns
//     (fx, f'x, f''x) — one evaluation per iterate;
//   - neither: Newton(f, d, x0) asks the injected Derivator collaborator
//     for f'(x) (and Halley for f''(x)) at each iterate. Package autodiff
//     ships ready-made Derivators.
//
// The secant method needs no derivative at all.
//
// Failure policy: a zero derivative at an iterate is a typed
// SingularityError (division singularity), never a silent wrong answer;
// non-finite values are DivergenceError; an exhausted budget is
// NonConvergenceError with the best iterate. None of these methods has a
// global convergence guarantee from arbitrary starting points — pick a
// bracketing solver when a bracket is known.
package newton
