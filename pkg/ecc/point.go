package ecc

import "math/big"

// Element is the coordinate algebra a Point is parameterized over: the
// capability set {add, sub, mul, div, pow, equality, is_zero} the group law
// needs. FieldElement is the only instantiation this module ships, used
// both for small test curves (e.g. F_19, F_223) and, via package
// secp256k1, for the production curve.
type Element[T any] interface {
	Add(T) (T, error)
	Sub(T) (T, error)
	Mul(T) (T, error)
	Div(T) (T, error)
	Pow(*big.Int) T
	Equal(T) bool
	IsZero() bool
}

// Point is an affine point on y^2 = x^3 + a*x + b over coordinate algebra T.
// The identity (point at infinity) is represented by the infinity flag;
// X and Y are meaningless (zero value) in that case. Points are immutable.
type Point[T Element[T]] struct {
	X, Y T
	A, B T

	infinity bool
}

// NewPoint constructs a non-identity point, validating the curve equation.
func NewPoint[T Element[T]](x, y, a, b T) (*Point[T], error) {
	lhs, err := y.Mul(y)
	if err != nil {
		return nil, err
	}
	x2, err := x.Mul(x)
	if err != nil {
		return nil, err
	}
	x3, err := x2.Mul(x)
	if err != nil {
		return nil, err
	}
	ax, err := a.Mul(x)
	if err != nil {
		return nil, err
	}
	rhs, err := x3.Add(ax)
	if err != nil {
		return nil, err
	}
	rhs, err = rhs.Add(b)
	if err != nil {
		return nil, err
	}
	if !lhs.Equal(rhs) {
		return nil, ErrNotOnCurve
	}
	return &Point[T]{X: x, Y: y, A: a, B: b}, nil
}

// Infinity constructs the identity element for the curve (a, b).
func Infinity[T Element[T]](a, b T) *Point[T] {
	return &Point[T]{A: a, B: b, infinity: true}
}

// IsInfinity reports whether p is the point at infinity.
func (p *Point[T]) IsInfinity() bool { return p.infinity }

func (p *Point[T]) sameCurve(q *Point[T]) bool {
	return p.A.Equal(q.A) && p.B.Equal(q.B)
}

// Equal reports whether two points are the same point on the same curve.
func (p *Point[T]) Equal(q *Point[T]) bool {
	if !p.sameCurve(q) {
		return false
	}
	if p.infinity || q.infinity {
		return p.infinity == q.infinity
	}
	return p.X.Equal(q.X) && p.Y.Equal(q.Y)
}

// Add implements the elliptic-curve group law.
func (p *Point[T]) Add(q *Point[T]) (*Point[T], error) {
	if !p.sameCurve(q) {
		return nil, ErrMixedCurve
	}
	if p.infinity {
		return q, nil
	}
	if q.infinity {
		return p, nil
	}

	if p.X.Equal(q.X) && !p.Y.Equal(q.Y) {
		return Infinity[T](p.A, p.B), nil
	}

	if p.X.Equal(q.X) && p.Y.Equal(q.Y) {
		if p.Y.IsZero() {
			return Infinity[T](p.A, p.B), nil
		}
		return p.double()
	}

	dy, err := q.Y.Sub(p.Y)
	if err != nil {
		return nil, err
	}
	dx, err := q.X.Sub(p.X)
	if err != nil {
		return nil, err
	}
	s, err := dy.Div(dx)
	if err != nil {
		return nil, err
	}
	return p.closeWithSlope(q.X, s)
}

// double computes p + p via the tangent-line formula
// s = (3x^2 + a) / (2y). Element exposes no scalar-by-int multiplication,
// so 3*x^2 is built from two Adds rather than a ScalarMul.
func (p *Point[T]) double() (*Point[T], error) {
	x2, err := p.X.Mul(p.X)
	if err != nil {
		return nil, err
	}
	numerator, err := x2.Add(x2)
	if err != nil {
		return nil, err
	}
	numerator, err = numerator.Add(x2)
	if err != nil {
		return nil, err
	}
	numerator, err = numerator.Add(p.A)
	if err != nil {
		return nil, err
	}

	twoY, err := p.Y.Add(p.Y)
	if err != nil {
		return nil, err
	}
	s, err := numerator.Div(twoY)
	if err != nil {
		return nil, err
	}
	return p.closeWithSlope(p.X, s)
}

// closeWithSlope finishes an addition/doubling given the slope s and the
// other point's x-coordinate (== p.X for doubling).
func (p *Point[T]) closeWithSlope(otherX T, s T) (*Point[T], error) {
	s2, err := s.Mul(s)
	if err != nil {
		return nil, err
	}
	x3, err := s2.Sub(p.X)
	if err != nil {
		return nil, err
	}
	x3, err = x3.Sub(otherX)
	if err != nil {
		return nil, err
	}
	dx, err := p.X.Sub(x3)
	if err != nil {
		return nil, err
	}
	sdx, err := s.Mul(dx)
	if err != nil {
		return nil, err
	}
	y3, err := sdx.Sub(p.Y)
	if err != nil {
		return nil, err
	}
	return &Point[T]{X: x3, Y: y3, A: p.A, B: p.B}, nil
}

// ScalarMul computes k*p via right-to-left (least-significant bit first)
// double-and-add over the bits of k, starting from the identity; k == 0
// yields the identity. Reduction modulo the group order is left to callers
// where that concept applies (see secp256k1.S256Point.ScalarMul); here k
// must be non-negative.
func (p *Point[T]) ScalarMul(k *big.Int) (*Point[T], error) {
	result := Infinity[T](p.A, p.B)
	current := p
	n := new(big.Int).Set(k)
	zero := big.NewInt(0)
	for n.Cmp(zero) > 0 {
		if n.Bit(0) == 1 {
			sum, err := result.Add(current)
			if err != nil {
				return nil, err
			}
			result = sum
		}
		doubled, err := current.Add(current)
		if err != nil {
			return nil, err
		}
		current = doubled
		n.Rsh(n, 1)
	}
	return result, nil
}
