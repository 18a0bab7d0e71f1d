package secp256k1

import (
	"math/big"

	"github.com/bitcoinecho/node/pkg/base58"
	"github.com/bitcoinecho/node/pkg/bhash"
	"github.com/bitcoinecho/node/pkg/ecc"
)

var (
	two = big.NewInt(2)
)

// SEC serializes p in the Standard Elliptic Curve Cryptography format:
// compressed is 33 bytes (a parity-tagged x-coordinate), uncompressed is 65
// bytes (x and y in full).
func (p *S256Point) SEC(compressed bool) []byte {
	x := p.X()
	y := p.Y()

	xBytes := make([]byte, 32)
	x.FillBytes(xBytes)

	if compressed {
		prefix := byte(0x02)
		if new(big.Int).Mod(y, two).Sign() != 0 {
			prefix = 0x03
		}
		out := make([]byte, 0, 33)
		out = append(out, prefix)
		return append(out, xBytes...)
	}

	yBytes := make([]byte, 32)
	y.FillBytes(yBytes)
	out := make([]byte, 0, 65)
	out = append(out, 0x04)
	out = append(out, xBytes...)
	return append(out, yBytes...)
}

// ParseSEC parses an SEC-encoded point, recovering the y-coordinate's parity
// from the compressed prefix byte via the curve's square root.
func ParseSEC(data []byte) (*S256Point, error) {
	if len(data) == 0 {
		return nil, ErrBadSEC
	}

	if data[0] == 0x04 {
		if len(data) != 65 {
			return nil, ErrBadSEC
		}
		x := new(big.Int).SetBytes(data[1:33])
		y := new(big.Int).SetBytes(data[33:65])
		return NewS256Point(x, y)
	}

	if data[0] != 0x02 && data[0] != 0x03 {
		return nil, ErrBadSEC
	}
	if len(data) != 33 {
		return nil, ErrBadSEC
	}

	x := new(big.Int).SetBytes(data[1:33])
	xField, err := NewFieldElement(x)
	if err != nil {
		return nil, err
	}

	// alpha = x^3 + b
	x3, err := xField.Pow(big.NewInt(3)).Add(fieldB)
	if err != nil {
		return nil, err
	}
	beta := Sqrt(x3)

	var evenBeta, oddBeta *ecc.FieldElement
	if new(big.Int).Mod(beta.Num(), two).Sign() == 0 {
		evenBeta = beta
		oddBeta, err = NewFieldElement(new(big.Int).Sub(P, beta.Num()))
	} else {
		oddBeta = beta
		evenBeta, err = NewFieldElement(new(big.Int).Sub(P, beta.Num()))
	}
	if err != nil {
		return nil, err
	}

	wantEven := data[0] == 0x02
	if wantEven {
		return NewS256Point(x, evenBeta.Num())
	}
	return NewS256Point(x, oddBeta.Num())
}

// Address derives the base58check P2PKH address for p.
func (p *S256Point) Address(compressed, testnet bool) string {
	h160 := bhash.Hash160Bytes(p.SEC(compressed))
	prefix := byte(0x00)
	if testnet {
		prefix = 0x6f
	}
	payload := append([]byte{prefix}, h160.Bytes()...)
	return base58.EncodeCheck(payload)
}
