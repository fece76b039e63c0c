// Package bracket solves f(x) = 0 on an interval whose endpoints have
// function values of opposite sign.
//
// Two solvers are provided:
//
//   - Bisect — plain bisection. Each step halves the enclosing interval and
//     keeps the sign-opposition invariant. Termination is hard: the solver
//     stops only when an exact zero is hit or the two endpoints become
//     adjacent representable values of the numeric backend (no representable
//     value lies strictly between them). That is the tightest enclosure the
//     arithmetic admits, not a tolerance heuristic.
//
//   - Brent — bisection combined with secant and inverse-quadratic
//     interpolation, after the classic zeroin routine. Usually far fewer
//     function evaluations; same enclosure guarantee, because every
//     interpolated step is accepted only while it stays safely inside the
//     current interval and bisection takes over otherwise.
//
// The function need not be continuous: the solvers only require that it can
// be evaluated, and they guarantee that the final interval, at the
// adjacency limit, still encloses a sign change (or an exact zero).
//
// Generic variants (BisectIn, BrentIn) run over any numeric.Arith backend;
// Bisect and Brent are the float64 conveniences.
//
// Errors (sentinel):
//
//   - ErrInvalidBracket — endpoints equal or non-finite.
//   - ErrNoSignChange   — f(a) and f(b) share a sign (precondition violated).
//   - ErrNonFinite      — f produced NaN/Inf inside the interval.
package bracket
