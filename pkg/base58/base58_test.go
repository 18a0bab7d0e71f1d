package base58

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncode_KnownVector(t *testing.T) {
	num, ok := new(big.Int).SetString("7c076ff316692a3d7eb3c3bb0f8b1488cf72e1afcd929e29307032997a838a3d", 16)
	require.True(t, ok, "bad test constant")
	b := num.Bytes()
	padded := make([]byte, 32)
	copy(padded[32-len(b):], b)

	got := Encode(padded)
	require.Equal(t, "9MA8fRQrT4u8Zj8ZRd6MAiiyaxb2Y1CMpvVkHQu5hVM6", got)
}

func TestEncode_LeadingZeros(t *testing.T) {
	got := Encode([]byte{0, 0, 1})
	want := "11" + Encode([]byte{1})
	require.Equal(t, want, got)
}

func TestEncodeCheck_NonEmpty(t *testing.T) {
	payload := []byte{0x00, 0x01, 0x02, 0x03, 0x04}
	encoded := EncodeCheck(payload)
	require.NotEmpty(t, encoded)
}
