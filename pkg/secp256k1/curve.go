// Package secp256k1 specializes the generic ecc.FieldElement/ecc.Point
// arithmetic to Bitcoin's curve: p = 2^256 - 2^32 - 977, a = 0, b = 7,
// generator G of prime order n.
package secp256k1

import (
	"math/big"

	"github.com/bitcoinecho/node/pkg/ecc"
)

var (
	// P is the secp256k1 field prime.
	P *big.Int
	// N is the order of the generator G.
	N *big.Int
	// A and B are the curve coefficients: y^2 = x^3 + A*x + B.
	A = big.NewInt(0)
	B = big.NewInt(7)

	gx, gy *big.Int

	fieldA, fieldB *ecc.FieldElement
)

func mustHex(s string) *big.Int {
	n, ok := new(big.Int).SetString(s, 16)
	if !ok {
		panic("secp256k1: bad constant " + s)
	}
	return n
}

func init() {
	two := big.NewInt(2)
	p32 := new(big.Int).Exp(two, big.NewInt(32), nil)
	p256 := new(big.Int).Exp(two, big.NewInt(256), nil)
	P = new(big.Int).Sub(p256, p32)
	P.Sub(P, big.NewInt(977))

	N = mustHex("FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEBAAEDCE6AF48A03BBFD25E8CD0364141")
	gx = mustHex("79BE667EF9DCBBAC55A06295CE870B07029BFCDB2DCE28D959F2815B16F81798")
	gy = mustHex("483ADA7726A3C4655DA4FBFC0E1108A8FD17B448A68554199C47D08FFB10D4B8")

	var err error
	fieldA, err = ecc.NewFieldElement(new(big.Int).Mod(A, P), P)
	if err != nil {
		panic(err)
	}
	fieldB, err = ecc.NewFieldElement(B, P)
	if err != nil {
		panic(err)
	}

	G = Generator()
}

// NewFieldElement constructs an element of F_p, the secp256k1 base field.
func NewFieldElement(num *big.Int) (*ecc.FieldElement, error) {
	reduced := new(big.Int).Mod(num, P)
	return ecc.NewFieldElement(reduced, P)
}

// Sqrt returns a square root of v in F_p, exploiting p === 3 (mod 4):
// sqrt(v) = v^((p+1)/4).
func Sqrt(v *ecc.FieldElement) *ecc.FieldElement {
	exp := new(big.Int).Add(P, big.NewInt(1))
	exp.Div(exp, big.NewInt(4))
	return v.Pow(exp)
}

// S256Point is an affine point on secp256k1.
type S256Point struct {
	pt *ecc.Point[*ecc.FieldElement]
}

// NewS256Point constructs a non-identity point, validating it lies on the
// curve.
func NewS256Point(x, y *big.Int) (*S256Point, error) {
	xf, err := NewFieldElement(x)
	if err != nil {
		return nil, err
	}
	yf, err := NewFieldElement(y)
	if err != nil {
		return nil, err
	}
	pt, err := ecc.NewPoint[*ecc.FieldElement](xf, yf, fieldA, fieldB)
	if err != nil {
		return nil, err
	}
	return &S256Point{pt: pt}, nil
}

func wrap(pt *ecc.Point[*ecc.FieldElement]) *S256Point { return &S256Point{pt: pt} }

// Identity returns the point at infinity on secp256k1.
func Identity() *S256Point {
	return wrap(ecc.Infinity[*ecc.FieldElement](fieldA, fieldB))
}

// Generator returns the secp256k1 base point G.
func Generator() *S256Point {
	p, err := NewS256Point(gx, gy)
	if err != nil {
		panic(err)
	}
	return p
}

// G is the secp256k1 generator, computed once at init time as a
// process-wide immutable constant. It is assigned inside init() rather
// than as a var initializer so it runs after P, N, and the field
// coefficients are set up.
var G *S256Point

// IsInfinity reports whether p is the identity.
func (p *S256Point) IsInfinity() bool { return p.pt.IsInfinity() }

// X returns the affine x-coordinate, or nil at infinity.
func (p *S256Point) X() *big.Int {
	if p.pt.IsInfinity() {
		return nil
	}
	return p.pt.X.Num()
}

// Y returns the affine y-coordinate, or nil at infinity.
func (p *S256Point) Y() *big.Int {
	if p.pt.IsInfinity() {
		return nil
	}
	return p.pt.Y.Num()
}

// Equal reports whether p and q are the same point.
func (p *S256Point) Equal(q *S256Point) bool { return p.pt.Equal(q.pt) }

// Add implements the group law.
func (p *S256Point) Add(q *S256Point) (*S256Point, error) {
	sum, err := p.pt.Add(q.pt)
	if err != nil {
		return nil, err
	}
	return wrap(sum), nil
}

// ScalarMul computes k*p, reducing k modulo the group order n first.
func (p *S256Point) ScalarMul(k *big.Int) (*S256Point, error) {
	reduced := new(big.Int).Mod(k, N)
	result, err := p.pt.ScalarMul(reduced)
	if err != nil {
		return nil, err
	}
	return wrap(result), nil
}
