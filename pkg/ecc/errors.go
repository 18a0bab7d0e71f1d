// Package ecc implements generic finite-field and elliptic-curve group
// law arithmetic: FieldElement over F_p and affine Point on y^2 = x^3 + ax + b.
//
// The secp256k1-specific specialization (constants, SEC encoding, addresses)
// lives in package secp256k1; this package only knows about the algebra.
package ecc

import "errors"

// Error taxonomy for the field/curve layer.
var (
	// ErrOutOfRange is returned when a FieldElement's num falls outside
	// [0, p), or p itself is negative.
	ErrOutOfRange = errors.New("ecc: value out of field range")

	// ErrMismatchedField is returned when a binary FieldElement operation
	// is attempted between elements of different prime moduli.
	ErrMismatchedField = errors.New("ecc: operands belong to different fields")

	// ErrZeroDivision is returned by Div when the divisor is the zero element.
	ErrZeroDivision = errors.New("ecc: division by zero field element")

	// ErrMixedCurve is returned when adding two points with different (a, b).
	ErrMixedCurve = errors.New("ecc: points are not on the same curve")

	// ErrNotOnCurve is returned when constructing a non-identity point that
	// fails to satisfy y^2 = x^3 + ax + b.
	ErrNotOnCurve = errors.New("ecc: point is not on the curve")
)
