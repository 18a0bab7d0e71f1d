// Package ecdsa implements deterministic ECDSA signing and verification over
// secp256k1, plus DER signature codec and WIF private key serialization.
package ecdsa

import (
	"crypto/hmac"
	"crypto/sha256"
	"math/big"

	"github.com/bitcoinecho/node/pkg/base58"
	"github.com/bitcoinecho/node/pkg/secp256k1"
)

var (
	n       = secp256k1.N
	nMinus2 = new(big.Int).Sub(n, big.NewInt(2))
)

// PrivateKey is a secp256k1 scalar together with its public point.
type PrivateKey struct {
	Secret *big.Int
	Point  *secp256k1.S256Point
}

// NewPrivateKey derives the public point for secret and returns the key.
func NewPrivateKey(secret *big.Int) (*PrivateKey, error) {
	point, err := secp256k1.G.ScalarMul(secret)
	if err != nil {
		return nil, err
	}
	return &PrivateKey{Secret: new(big.Int).Set(secret), Point: point}, nil
}

// Sign produces a deterministic ECDSA signature over the message hash z,
// using an RFC 6979-style HMAC-SHA256 derived nonce, and canonicalizes s to
// its low-s form (s > n/2 is replaced by n - s) so only one of the two
// equally-valid signatures for a given (z, secret) is ever produced.
func (pk *PrivateKey) Sign(z *big.Int) (*Signature, error) {
	k := deterministicK(pk.Secret, z)

	r, err := secp256k1.G.ScalarMul(k)
	if err != nil {
		return nil, err
	}
	rx := r.X()

	kInv := new(big.Int).Exp(k, nMinus2, n)

	s := new(big.Int).Mul(rx, pk.Secret)
	s.Add(s, new(big.Int).Mod(z, n))
	s.Mul(s, kInv)
	s.Mod(s, n)

	if s.Sign() == 0 || rx.Sign() == 0 {
		return nil, ErrInvalidSignature
	}

	halfN := new(big.Int).Rsh(n, 1)
	if s.Cmp(halfN) > 0 {
		s = new(big.Int).Sub(n, s)
	}

	return NewSignature(rx, s), nil
}

// Verify reports whether sig is a valid signature over z for pub.
func Verify(pub *secp256k1.S256Point, z *big.Int, sig *Signature) bool {
	sInv := new(big.Int).Exp(sig.S, nMinus2, n)

	u := new(big.Int).Mod(new(big.Int).Mul(new(big.Int).Mod(z, n), sInv), n)
	v := new(big.Int).Mod(new(big.Int).Mul(sig.R, sInv), n)

	uG, err := secp256k1.G.ScalarMul(u)
	if err != nil {
		return false
	}
	vPub, err := pub.ScalarMul(v)
	if err != nil {
		return false
	}
	total, err := uG.Add(vPub)
	if err != nil {
		return false
	}
	if total.IsInfinity() {
		return false
	}
	return total.X().Cmp(sig.R) == 0
}

// deterministicK derives a per-signature nonce from the secret and message
// hash following RFC 6979's HMAC-DRBG construction specialized to
// HMAC-SHA256, so the same (secret, z) always yields the same k without
// ever needing a random source. z is fully reduced modulo n before use,
// rather than adjusted by a single conditional subtraction, since z can
// exceed n by more than one multiple of n for arbitrary hash inputs.
func deterministicK(secret, z *big.Int) *big.Int {
	zReduced := new(big.Int).Mod(z, n)

	k := make([]byte, 32)
	v := make([]byte, 32)
	for i := range v {
		v[i] = 0x01
	}

	secretBytes := make([]byte, 32)
	secret.FillBytes(secretBytes)
	zBytes := make([]byte, 32)
	zReduced.FillBytes(zBytes)

	mac := hmac.New(sha256.New, k)
	mac.Write(v)
	mac.Write([]byte{0x00})
	mac.Write(secretBytes)
	mac.Write(zBytes)
	k = mac.Sum(nil)

	mac = hmac.New(sha256.New, k)
	mac.Write(v)
	v = mac.Sum(nil)

	mac = hmac.New(sha256.New, k)
	mac.Write(v)
	mac.Write([]byte{0x01})
	mac.Write(secretBytes)
	mac.Write(zBytes)
	k = mac.Sum(nil)

	mac = hmac.New(sha256.New, k)
	mac.Write(v)
	v = mac.Sum(nil)

	for {
		mac = hmac.New(sha256.New, k)
		mac.Write(v)
		v = mac.Sum(nil)

		candidate := new(big.Int).SetBytes(v)
		if candidate.Sign() > 0 && candidate.Cmp(n) < 0 {
			return candidate
		}

		mac = hmac.New(sha256.New, k)
		mac.Write(v)
		mac.Write([]byte{0x00})
		k = mac.Sum(nil)

		mac = hmac.New(sha256.New, k)
		mac.Write(v)
		v = mac.Sum(nil)
	}
}

// Wif serializes the private key in Wallet Import Format.
func (pk *PrivateKey) Wif(compressed, testnet bool) string {
	secretBytes := make([]byte, 32)
	pk.Secret.FillBytes(secretBytes)

	prefix := byte(0x80)
	if testnet {
		prefix = 0xef
	}

	payload := append([]byte{prefix}, secretBytes...)
	if compressed {
		payload = append(payload, 0x01)
	}
	return base58.EncodeCheck(payload)
}
