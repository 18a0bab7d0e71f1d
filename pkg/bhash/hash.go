// Package bhash implements the hashing primitives the rest of the core
// builds on: SHA-256, double-SHA-256 ("hash256"), and
// RIPEMD-160(SHA-256(...)) ("hash160"). It has no dependency on any other
// package in this module, matching its position as the leaf of the
// dependency order.
package bhash

import (
	"crypto/sha1" //nolint:gosec // OP_SHA1 is a historical script opcode, not used for security here.
	"crypto/sha256"
	"encoding/hex"

	"golang.org/x/crypto/ripemd160" //nolint:staticcheck // required for Bitcoin's hash160, not a modern choice.
)

// Hash256 is a 32-byte double-SHA-256 digest, displayed in the
// conventional big-endian / display byte order.
type Hash256 [32]byte

// ZeroHash256 is the all-zero digest, used as the previous-tx reference of a
// coinbase input.
var ZeroHash256 = Hash256{}

// Hash256FromBytes copies exactly 32 bytes into a Hash256.
func Hash256FromBytes(b []byte) (Hash256, error) {
	if len(b) != 32 {
		return ZeroHash256, ErrBadLength
	}
	var h Hash256
	copy(h[:], b)
	return h, nil
}

// Hash256FromHex decodes a hex string into a Hash256.
func Hash256FromHex(s string) (Hash256, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return ZeroHash256, err
	}
	return Hash256FromBytes(b)
}

func (h Hash256) String() string  { return hex.EncodeToString(h[:]) }
func (h Hash256) Bytes() []byte   { return h[:] }
func (h Hash256) IsZero() bool    { return h == ZeroHash256 }
func (h Hash256) Reversed() Hash256 {
	var r Hash256
	for i, b := range h {
		r[len(h)-1-i] = b
	}
	return r
}

// Hash160 is a 20-byte RIPEMD-160(SHA-256(...)) digest, used for P2PKH
// address and script-hash derivation.
type Hash160 [20]byte

// ZeroHash160 is the all-zero digest.
var ZeroHash160 = Hash160{}

func (h Hash160) String() string { return hex.EncodeToString(h[:]) }
func (h Hash160) Bytes() []byte  { return h[:] }

// Sha256 returns the single SHA-256 digest of data.
func Sha256(data []byte) [32]byte {
	return sha256.Sum256(data)
}

// Sha1 returns the SHA-1 digest of data, used only by the OP_SHA1 opcode.
func Sha1(data []byte) [20]byte {
	return sha1.Sum(data)
}

// Ripemd160 returns the RIPEMD-160 digest of data, used only by the
// OP_RIPEMD160 opcode and as the inner step of Hash160Bytes.
func Ripemd160(data []byte) []byte {
	h := ripemd160.New()
	h.Write(data) //nolint:errcheck // ripemd160.Write never errors.
	return h.Sum(nil)
}

// Hash256Bytes computes SHA-256(SHA-256(data)).
func Hash256Bytes(data []byte) Hash256 {
	first := sha256.Sum256(data)
	second := sha256.Sum256(first[:])
	return Hash256(second)
}

// Hash160Bytes computes RIPEMD-160(SHA-256(data)).
func Hash160Bytes(data []byte) Hash160 {
	first := sha256.Sum256(data)
	digest := Ripemd160(first[:])
	var h Hash160
	copy(h[:], digest)
	return h
}
