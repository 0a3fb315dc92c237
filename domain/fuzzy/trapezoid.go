package fuzzy

import (
	"fmt"

	"goamb/domain/core"
)

// Trapezoid represents a trapezoidal fuzzy number Tra(a, b, c, d) with
// a <= b <= c <= d. [a, d] is the support (values with non-zero
// membership) and [b, c] is the core (values with full membership).
//
// Trapezoids are immutable values: every operation returns a fresh
// instance, so numbers can be reused across expressions and samples
// without aliasing concerns.
type Trapezoid struct {
	a, b, c, d float64
}

// New constructs a trapezoid after validating the boundary ordering.
// Boundaries are never reordered silently; a violation is an error so
// caller bugs stay visible.
func New(a, b, c, d float64) (Trapezoid, error) {
	t := Trapezoid{a, b, c, d}
	if !t.wellFormed() {
		return Trapezoid{}, core.NewShapeError(a, b, c, d)
	}
	return t, nil
}

// MustNew is New for statically known boundaries; it panics on invalid
// input and is intended for fixtures and literals in tests.
func MustNew(a, b, c, d float64) Trapezoid {
	t, err := New(a, b, c, d)
	if err != nil {
		panic(err)
	}
	return t
}

// Crisp returns the degenerate trapezoid with all four boundaries at v.
func Crisp(v float64) Trapezoid {
	return Trapezoid{v, v, v, v}
}

// wellFormed reports whether a <= b <= c <= d. NaN boundaries fail every
// comparison, so results polluted by NaN are rejected here too.
func (t Trapezoid) wellFormed() bool {
	return t.a <= t.b && t.b <= t.c && t.c <= t.d
}

// checked re-validates an arithmetic result before handing it out,
// catching numeric edge cases such as Inf-Inf producing NaN.
func checked(t Trapezoid) (Trapezoid, error) {
	if !t.wellFormed() {
		return Trapezoid{}, core.NewShapeError(t.a, t.b, t.c, t.d)
	}
	return t, nil
}

// Bounds returns the four boundaries in ascending order.
func (t Trapezoid) Bounds() (a, b, c, d float64) {
	return t.a, t.b, t.c, t.d
}

// Support returns the interval [a, d] of values with non-zero membership.
func (t Trapezoid) Support() (float64, float64) {
	return t.a, t.d
}

// Core returns the interval [b, c] of values with full membership.
func (t Trapezoid) Core() (float64, float64) {
	return t.b, t.c
}

// Ambiguity returns the dispersion measure
//
//	Amb(A) = (c-b)/2 + ((b-a) + (d-c))/6
//
// The core spread is weighted three times heavier than the support wings.
// It is non-negative for every well-formed trapezoid and zero exactly for
// a crisp number.
func (t Trapezoid) Ambiguity() float64 {
	return (t.c-t.b)/2 + ((t.b-t.a)+(t.d-t.c))/6
}

// AlphaInterval returns ((a + 2b)/6, (d + 2c)/6), the membership-weighted
// integral of the alpha-cut endpoints.
func (t Trapezoid) AlphaInterval() (float64, float64) {
	return (t.a + 2*t.b) / 6, (t.d + 2*t.c) / 6
}

// ExpectedInterval returns ((a+b)/2, (c+d)/2).
func (t Trapezoid) ExpectedInterval() (float64, float64) {
	return (t.a + t.b) / 2, (t.c + t.d) / 2
}

// ExpectedValue returns the midpoint of the expected interval.
func (t Trapezoid) ExpectedValue() float64 {
	lo, hi := t.ExpectedInterval()
	return (lo + hi) / 2
}

// Width returns the length of the expected interval.
func (t Trapezoid) Width() float64 {
	lo, hi := t.ExpectedInterval()
	return hi - lo
}

// Value returns (a + 2b + 2c + d)/6, the sum of the alpha-interval
// endpoints.
func (t Trapezoid) Value() float64 {
	lo, hi := t.AlphaInterval()
	return lo + hi
}

// MembershipAt evaluates the piecewise-linear membership function at x:
// zero outside the support, one on the core, linear ramps on the wings.
// A degenerate wing (a == b or c == d) is a vertical edge; its shared
// endpoint belongs to the core.
func (t Trapezoid) MembershipAt(x float64) float64 {
	switch {
	case x < t.a || x > t.d:
		return 0
	case x < t.b:
		return (x - t.a) / (t.b - t.a)
	case x <= t.c:
		return 1
	case t.c == t.d:
		return 1
	default:
		return (t.d - x) / (t.d - t.c)
	}
}

// IsPositive reports whether the whole support is non-negative.
func (t Trapezoid) IsPositive() bool {
	return t.a >= 0
}

// IsNegative reports whether the whole support is non-positive.
func (t Trapezoid) IsNegative() bool {
	return t.d <= 0
}

// StraddlesZero reports whether the support has strictly negative and
// strictly positive parts. Such operands force the interval product rule
// in Mul; a component-wise product would break the boundary ordering.
func (t Trapezoid) StraddlesZero() bool {
	return t.a < 0 && 0 < t.d
}

// Add returns the component-wise sum of the two trapezoids.
func (t Trapezoid) Add(u Trapezoid) (Trapezoid, error) {
	return checked(Trapezoid{t.a + u.a, t.b + u.b, t.c + u.c, t.d + u.d})
}

// Neg mirrors the trapezoid about zero. The boundary order is reversed so
// the result stays ascending.
func (t Trapezoid) Neg() Trapezoid {
	return Trapezoid{-t.d, -t.c, -t.b, -t.a}
}

// Sub returns t + (-u), i.e. (a1-d2, b1-c2, c1-b2, d1-a2).
func (t Trapezoid) Sub(u Trapezoid) (Trapezoid, error) {
	return t.Add(u.Neg())
}

// Mul returns the interval product computed independently at the support
// and core levels. The support product always contains the core product
// because the operand cores are nested in their supports, so the result
// ordering holds whenever the inputs are finite.
func (t Trapezoid) Mul(u Trapezoid) (Trapezoid, error) {
	a, d := intervalMul(t.a, t.d, u.a, u.d)
	b, c := intervalMul(t.b, t.c, u.b, u.c)
	return checked(Trapezoid{a, b, c, d})
}

// Div returns the interval quotient at the support and core levels. It is
// defined only when the divisor's support excludes zero.
func (t Trapezoid) Div(u Trapezoid) (Trapezoid, error) {
	if u.a <= 0 && 0 <= u.d {
		return Trapezoid{}, fmt.Errorf("%w: divisor %s", core.ErrDivisionByZero, u)
	}
	a, d := intervalDiv(t.a, t.d, u.a, u.d)
	b, c := intervalDiv(t.b, t.c, u.b, u.c)
	return checked(Trapezoid{a, b, c, d})
}

// Scale multiplies every boundary by the scalar k, reversing the order
// for negative k.
func (t Trapezoid) Scale(k float64) Trapezoid {
	if k < 0 {
		return Trapezoid{k * t.d, k * t.c, k * t.b, k * t.a}
	}
	return Trapezoid{k * t.a, k * t.b, k * t.c, k * t.d}
}

// String renders the trapezoid as Tra(a, b, c, d).
func (t Trapezoid) String() string {
	return fmt.Sprintf("Tra(%g, %g, %g, %g)", t.a, t.b, t.c, t.d)
}
