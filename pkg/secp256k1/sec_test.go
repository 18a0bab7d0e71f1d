package secp256k1

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSEC_RoundtripCompressed(t *testing.T) {
	secret := big.NewInt(5001)
	point, err := G.ScalarMul(secret)
	require.NoError(t, err)

	encoded := point.SEC(true)
	require.Len(t, encoded, 33)

	parsed, err := ParseSEC(encoded)
	require.NoError(t, err)
	require.True(t, point.Equal(parsed), "parsed point does not match original")
}

func TestSEC_RoundtripUncompressed(t *testing.T) {
	secret := big.NewInt(33466)
	point, err := G.ScalarMul(secret)
	require.NoError(t, err)

	encoded := point.SEC(false)
	require.Len(t, encoded, 65)
	require.Equal(t, byte(0x04), encoded[0])

	parsed, err := ParseSEC(encoded)
	require.NoError(t, err)
	require.True(t, point.Equal(parsed), "parsed point does not match original")
}

func TestParseSEC_RejectsGarbage(t *testing.T) {
	_, err := ParseSEC(nil)
	require.ErrorIs(t, err, ErrBadSEC)

	_, err = ParseSEC([]byte{0x05, 0x01})
	require.ErrorIs(t, err, ErrBadSEC)
}

func TestAddress_KnownVectors(t *testing.T) {
	cases := []struct {
		secret     int64
		compressed bool
		testnet    bool
		want       string
	}{
		{5002, false, true, "mmTPbXQFxboEtNRkwfh6K51jvdtHLxGeMA"},
		{0x12345deadbeef, true, false, "1F1Pn2y6pDb68E5nYJJeba4TLg2U7B6KF1"},
	}
	for _, c := range cases {
		point, err := G.ScalarMul(big.NewInt(c.secret))
		require.NoError(t, err)
		require.Equal(t, c.want, point.Address(c.compressed, c.testnet))
	}
}
