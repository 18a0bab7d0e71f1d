package ecc_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bitcoinecho/node/pkg/ecc"
)

// Test curve: y^2 = x^3 + 7 over F_223.
const testPrime = 223

func f223(t *testing.T, n int64) *ecc.FieldElement {
	t.Helper()
	fld, err := ecc.NewFieldElement(big.NewInt(n), big.NewInt(testPrime))
	require.NoError(t, err)
	return fld
}

func curve223AB(t *testing.T) (*ecc.FieldElement, *ecc.FieldElement) {
	return f223(t, 0), f223(t, 7)
}

func point223(t *testing.T, x, y int64) *ecc.Point[*ecc.FieldElement] {
	t.Helper()
	a, b := curve223AB(t)
	p, err := ecc.NewPoint[*ecc.FieldElement](f223(t, x), f223(t, y), a, b)
	require.NoError(t, err)
	return p
}

func infinity223(t *testing.T) *ecc.Point[*ecc.FieldElement] {
	a, b := curve223AB(t)
	return ecc.Infinity[*ecc.FieldElement](a, b)
}

func TestPoint_NotOnCurve(t *testing.T) {
	a, b := curve223AB(t)
	_, err := ecc.NewPoint[*ecc.FieldElement](f223(t, 200), f223(t, 119), a, b)
	require.ErrorIs(t, err, ecc.ErrNotOnCurve)
}

func TestPoint_IdentityAbsorbsAndInverseCancels(t *testing.T) {
	p := point223(t, 192, 105)
	inf := infinity223(t)

	sum, err := p.Add(inf)
	require.NoError(t, err)
	require.True(t, sum.Equal(p))

	sum, err = inf.Add(p)
	require.NoError(t, err)
	require.True(t, sum.Equal(p))

	a, b := curve223AB(t)
	negP, err := ecc.NewPoint[*ecc.FieldElement](f223(t, 192), f223(t, 223-105), a, b)
	require.NoError(t, err)

	sum, err = p.Add(negP)
	require.NoError(t, err)
	require.True(t, sum.Equal(inf))
}

func TestPoint_MixedCurveFails(t *testing.T) {
	p1 := point223(t, 192, 105)
	a, bOther := f223(t, 0), f223(t, 8)
	otherInf := ecc.Infinity[*ecc.FieldElement](a, bOther)
	_, err := p1.Add(otherInf)
	require.ErrorIs(t, err, ecc.ErrMixedCurve)
}

func TestPoint_ScalarMulDistributesOverAddition(t *testing.T) {
	p := point223(t, 192, 105)

	k1 := big.NewInt(7)
	k2 := big.NewInt(11)

	lhs, err := p.ScalarMul(new(big.Int).Add(k1, k2))
	require.NoError(t, err)

	k1p, err := p.ScalarMul(k1)
	require.NoError(t, err)
	k2p, err := p.ScalarMul(k2)
	require.NoError(t, err)
	rhs, err := k1p.Add(k2p)
	require.NoError(t, err)

	require.True(t, lhs.Equal(rhs))
}

func TestPoint_KnownOrders(t *testing.T) {
	// (15, 86) has order 7 on y^2 = x^3 + 7 over F_223.
	p := point223(t, 15, 86)
	result, err := p.ScalarMul(big.NewInt(7))
	require.NoError(t, err)
	require.True(t, result.IsInfinity())
}
