// Package base58 implements Bitcoin's base-58 text encoding and its
// checksummed variant.
package base58

import (
	"math/big"

	"github.com/bitcoinecho/node/pkg/bhash"
)

const alphabet = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"

// Encode converts b into base-58, preserving a '1' for every leading
// zero byte (the alphabet's zero-index character).
func Encode(b []byte) string {
	var leadingZeros int
	for _, c := range b {
		if c != 0 {
			break
		}
		leadingZeros++
	}

	num := new(big.Int).SetBytes(b)
	zero := big.NewInt(0)
	base := big.NewInt(58)
	mod := new(big.Int)

	var digits []byte
	for num.Cmp(zero) > 0 {
		num.DivMod(num, base, mod)
		digits = append(digits, alphabet[mod.Int64()])
	}

	// digits were appended least-significant first; reverse them.
	for i, j := 0, len(digits)-1; i < j; i, j = i+1, j-1 {
		digits[i], digits[j] = digits[j], digits[i]
	}

	result := make([]byte, 0, leadingZeros+len(digits))
	for i := 0; i < leadingZeros; i++ {
		result = append(result, alphabet[0])
	}
	result = append(result, digits...)
	return string(result)
}

// EncodeCheck appends the first 4 bytes of hash256(payload) before
// base-58-encoding it.
func EncodeCheck(payload []byte) string {
	checksum := bhash.Hash256Bytes(payload)
	return Encode(append(append([]byte{}, payload...), checksum.Bytes()[:4]...))
}
