// Package numeric defines the arithmetic capability every solver in this
// module is written against, together with ready-made backends for machine
// floats, math/big floats, and arbitrary-precision decimals.
//
// The capability is deliberately small: field arithmetic, comparison,
// absolute value, conversions, a machine epsilon, and representable-value
// adjacency (Next/Prev). Tolerances everywhere in the module derive from the
// backend's own Eps, never from a hardcoded constant, which is what lets the
// same solver code run transparently at 53 bits, 500 bits, or 50 decimal
// digits.
//
// Backends:
//
//   - F64 — float64; Next/Prev are exact (math.Nextafter).
//   - Big — *big.Float at a fixed precision; Next/Prev step by one unit in
//     the last place of the operand (approximate at exactly zero).
//   - Dec — *apd.Decimal under a cockroachdb/apd context; Next/Prev step by
//     one unit in the last significant digit.
//
// Adjacency is the hard termination condition of the bracketing solver: two
// endpoints with no representable value strictly between them cannot be
// narrowed further, whatever the tolerance settings say.
package numeric
