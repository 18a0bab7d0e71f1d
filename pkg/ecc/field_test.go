package ecc_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bitcoinecho/node/pkg/ecc"
)

func fe(t *testing.T, num, prime int64) *ecc.FieldElement {
	t.Helper()
	f, err := ecc.NewFieldElement(big.NewInt(num), big.NewInt(prime))
	require.NoError(t, err)
	return f
}

func TestFieldElement_OutOfRange(t *testing.T) {
	_, err := ecc.NewFieldElement(big.NewInt(19), big.NewInt(19))
	require.ErrorIs(t, err, ecc.ErrOutOfRange)

	_, err = ecc.NewFieldElement(big.NewInt(0), big.NewInt(-1))
	require.ErrorIs(t, err, ecc.ErrOutOfRange)
}

func TestFieldElement_AddMulCommuteAndAddAssociates(t *testing.T) {
	const p = 19
	for a := int64(0); a < p; a++ {
		for b := int64(0); b < p; b++ {
			A, B := fe(t, a, p), fe(t, b, p)

			ab, err := A.Add(B)
			require.NoError(t, err)
			ba, err := B.Add(A)
			require.NoError(t, err)
			require.True(t, ab.Equal(ba))

			abMul, err := A.Mul(B)
			require.NoError(t, err)
			baMul, err := B.Mul(A)
			require.NoError(t, err)
			require.True(t, abMul.Equal(baMul))
		}
	}

	a, b, c := fe(t, 3, p), fe(t, 7, p), fe(t, 11, p)
	abc1, err := mustAdd(t, a, b).Add(c)
	require.NoError(t, err)
	abc2, err := a.Add(mustAdd(t, b, c))
	require.NoError(t, err)
	require.True(t, abc1.Equal(abc2))
}

func mustAdd(t *testing.T, a, b *ecc.FieldElement) *ecc.FieldElement {
	t.Helper()
	r, err := a.Add(b)
	require.NoError(t, err)
	return r
}

func TestFieldElement_MismatchedField(t *testing.T) {
	a := fe(t, 2, 19)
	b := fe(t, 2, 23)
	_, err := a.Add(b)
	require.ErrorIs(t, err, ecc.ErrMismatchedField)
}

func TestFieldElement_InverseAndFermat(t *testing.T) {
	const p = 19
	one := fe(t, 1, p)
	for n := int64(1); n < p; n++ {
		a := fe(t, n, p)

		inv, err := one.Div(a)
		require.NoError(t, err)
		product, err := a.Mul(inv)
		require.NoError(t, err)
		require.True(t, product.Equal(one), "a * a^-1 != 1 for a=%d", n)

		fermat := a.Pow(big.NewInt(p - 1))
		require.True(t, fermat.Equal(one), "a^(p-1) != 1 for a=%d", n)
	}
}

func TestFieldElement_ZeroDivision(t *testing.T) {
	a := fe(t, 5, 19)
	zero := fe(t, 0, 19)
	_, err := a.Div(zero)
	require.ErrorIs(t, err, ecc.ErrZeroDivision)
}

func TestFieldElement_PowZeroIsZero(t *testing.T) {
	zero := fe(t, 0, 19)
	require.True(t, zero.Pow(big.NewInt(5)).IsZero())
	require.True(t, zero.Pow(big.NewInt(0)).IsZero())
}

func TestFieldElement_PowNegativeExponent(t *testing.T) {
	const p = 19
	a := fe(t, 7, p)
	inv, err := fe(t, 1, p).Div(a)
	require.NoError(t, err)

	negPow := a.Pow(big.NewInt(-1))
	require.True(t, negPow.Equal(inv))
}

func TestFieldElement_ScalarMul(t *testing.T) {
	a := fe(t, 5, 19)
	r := a.ScalarMul(big.NewInt(-2))
	// -2 * 5 = -10 mod 19 == 9
	require.Equal(t, int64(9), r.Num().Int64())
}
