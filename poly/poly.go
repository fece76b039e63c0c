package poly

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// ErrZeroDivisor - Euclidean division by the zero polynomial.
var ErrZeroDivisor = errors.New("poly: division by zero polynomial")

// Poly is a dense univariate polynomial: the coefficient of xⁱ lives at
// index i. The zero polynomial is the empty (or nil) slice.
type Poly []float64

// New builds a polynomial from coefficients in ascending power order and
// trims trailing zeros.
func New(coeffs ...float64) Poly {
	return Poly(coeffs).Trim()
}

// FromRoots builds the monic polynomial ∏(x − rᵢ).
func FromRoots(roots ...float64) Poly {
	p := Poly{1}
	for _, r := range roots {
		p = p.Mul(Poly{-r, 1})
	}

	return p
}

// Degree reports the polynomial degree; the zero polynomial has degree −1.
func (p Poly) Degree() int {
	return len(p) - 1
}

// IsZero reports whether p is the zero polynomial.
func (p Poly) IsZero() bool {
	return len(p) == 0
}

// Trim drops trailing coefficients that are exactly zero.
func (p Poly) Trim() Poly {
	n := len(p)
	for n > 0 && p[n-1] == 0 {
		n--
	}

	return p[:n]
}

// Eval computes p(x) by Horner's rule.
func (p Poly) Eval(x float64) float64 {
	var acc float64
	for i := len(p) - 1; i >= 0; i-- {
		acc = acc*x + p[i]
	}

	return acc
}

// Derivative returns p′.
func (p Poly) Derivative() Poly {
	if len(p) <= 1 {
		return nil
	}

	d := make(Poly, len(p)-1)
	for i := 1; i < len(p); i++ {
		d[i-1] = float64(i) * p[i]
	}

	return d.Trim()
}

// Add returns p + q.
func (p Poly) Add(q Poly) Poly {
	n := max(len(p), len(q))
	out := make(Poly, n)
	copy(out, p)
	for i, c := range q {
		out[i] += c
	}

	return out.Trim()
}

// Sub returns p − q.
func (p Poly) Sub(q Poly) Poly {
	n := max(len(p), len(q))
	out := make(Poly, n)
	copy(out, p)
	for i, c := range q {
		out[i] -= c
	}

	return out.Trim()
}

// Mul returns p · q by schoolbook convolution; degrees here are small.
func (p Poly) Mul(q Poly) Poly {
	if p.IsZero() || q.IsZero() {
		return nil
	}

	out := make(Poly, len(p)+len(q)-1)
	for i, a := range p {
		for j, b := range q {
			out[i+j] += a * b
		}
	}

	return out.Trim()
}

// Scale returns c · p.
func (p Poly) Scale(c float64) Poly {
	if c == 0 {
		return nil
	}

	out := make(Poly, len(p))
	for i, a := range p {
		out[i] = c * a
	}

	return out
}

// Monic divides p by its leading coefficient. The zero polynomial is
// returned unchanged.
func (p Poly) Monic() Poly {
	if p.IsZero() || p[len(p)-1] == 1 {
		return p
	}

	return p.Scale(1 / p[len(p)-1])
}

// MaxNorm is the largest coefficient magnitude, 0 for the zero polynomial.
func (p Poly) MaxNorm() float64 {
	var m float64
	for _, c := range p {
		m = math.Max(m, math.Abs(c))
	}

	return m
}

// Div performs Euclidean division, returning quotient and remainder with
// p = quo·q + rem and deg(rem) < deg(q).
func (p Poly) Div(q Poly) (quo, rem Poly, err error) {
	if q.IsZero() {
		return nil, nil, ErrZeroDivisor
	}
	if p.Degree() < q.Degree() {
		return nil, append(Poly(nil), p...), nil
	}

	rem = append(Poly(nil), p...)
	quo = make(Poly, p.Degree()-q.Degree()+1)
	lead := q[len(q)-1]

	for rem.Degree() >= q.Degree() {
		shift := rem.Degree() - q.Degree()
		c := rem[len(rem)-1] / lead
		quo[shift] = c
		for i, b := range q {
			rem[shift+i] -= c * b
		}
		// The leading term cancels by construction; clear it exactly so
		// Trim always makes progress.
		rem[len(rem)-1] = 0
		rem = rem.Trim()
	}

	return quo, rem, nil
}

// GCD computes a monic greatest common divisor of p and q with the
// Euclidean remainder sequence. A remainder counts as zero once its max
// norm falls below tol relative to the working operands; tol ≤ 0 selects
// a default of 1e-10.
//
// For coprime inputs the result is the constant 1.
func GCD(p, q Poly, tol float64) Poly {
	if tol <= 0 {
		tol = defaultGCDTol
	}

	a, b := p.Monic(), q.Monic()
	if a.Degree() < b.Degree() {
		a, b = b, a
	}

	for !b.IsZero() {
		_, r, err := a.Div(b)
		if err != nil {
			break
		}
		if r.MaxNorm() <= tol*math.Max(1, b.MaxNorm()) {
			r = nil
		}
		a, b = b, r.Monic()
	}

	if a.IsZero() {
		return nil
	}
	if a.Degree() == 0 {
		return Poly{1}
	}

	return a
}

// CauchyBound returns B such that every real root of p lies in [−B, B]:
//
//	B = 1 + max |pᵢ| / |p_n|
//
// The zero and constant polynomials have no roots; the bound is 0.
func (p Poly) CauchyBound() float64 {
	if p.Degree() < 1 {
		return 0
	}

	lead := math.Abs(p[len(p)-1])
	var m float64
	for _, c := range p[:len(p)-1] {
		m = math.Max(m, math.Abs(c))
	}

	return 1 + m/lead
}

// String renders p in conventional descending-power notation, e.g.
// "x^3 - 5x^2 + 7x - 3".
func (p Poly) String() string {
	if p.IsZero() {
		return "0"
	}

	var sb strings.Builder
	for i := len(p) - 1; i >= 0; i-- {
		c := p[i]
		if c == 0 && len(p) > 1 {
			continue
		}

		switch {
		case sb.Len() == 0 && c < 0:
			sb.WriteString("-")
		case sb.Len() > 0 && c < 0:
			sb.WriteString(" - ")
		case sb.Len() > 0:
			sb.WriteString(" + ")
		}

		abs := math.Abs(c)
		if abs != 1 || i == 0 {
			fmt.Fprintf(&sb, "%g", abs)
		}

		switch {
		case i > 1:
			fmt.Fprintf(&sb, "x^%d", i)
		case i == 1:
			sb.WriteString("x")
		}
	}

	return sb.String()
}

const defaultGCDTol = 1e-10
