// Package multroot recovers the real roots of a polynomial together with
// their multiplicities, and stays accurate where plain Newton degrades to
// linear convergence and half-precision answers on repeated roots.
//
// # Algorithm
//
// The multiplicity structure comes from the square-free chain
//
//	u₀ = p,  u_{k+1} = GCD(u_k, u_k′)
//
// whose quotients v_k = u_{k−1}/u_k are square-free and vanish exactly at
// the roots of multiplicity ≥ k. Each v_k is solved with the bracketing
// scanner, the per-level roots are clustered (an ordered map keyed by root
// value makes nearest-neighbour lookup trivial), and a root's multiplicity
// is the number of levels its cluster spans.
//
// When the multiplicities account for the full degree — all roots real —
// the estimates are polished by a Gauss–Newton iteration on the coefficient
// residual coeffs(∏(x−z_j)^{m_j}) − coeffs(p), solved in least squares via
// QR. The polish restores full accuracy: the multiplicity structure is
// held fixed, and on that constraint surface the repeated root is no longer
// ill-conditioned.
//
// A residual that refuses to come down signals that the assumed structure
// does not match the input; Solve then returns ErrIllConditioned rather
// than confidently wrong roots.
package multroot
