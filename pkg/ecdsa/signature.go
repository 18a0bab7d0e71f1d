package ecdsa

import "math/big"

// Signature is an ECDSA signature (r, s) over secp256k1.
type Signature struct {
	R *big.Int
	S *big.Int
}

// NewSignature constructs a Signature from its two components.
func NewSignature(r, s *big.Int) *Signature {
	return &Signature{R: new(big.Int).Set(r), S: new(big.Int).Set(s)}
}

// derInt encodes an unsigned big.Int as a DER INTEGER's value bytes: the
// minimal big-endian encoding, with a leading 0x00 prepended if the
// high bit of the first byte would otherwise be set (so it is never read
// as a negative two's-complement value).
func derInt(n *big.Int) []byte {
	b := n.Bytes()
	if len(b) == 0 {
		b = []byte{0x00}
	}
	if b[0]&0x80 != 0 {
		b = append([]byte{0x00}, b...)
	}
	return b
}

// Serialize encodes the signature as DER:
//
//	0x30 <total-len> 0x02 <r-len> <r-bytes> 0x02 <s-len> <s-bytes>
func (sig *Signature) Serialize() []byte {
	rbin := derInt(sig.R)
	sbin := derInt(sig.S)

	result := make([]byte, 0, 6+len(rbin)+len(sbin))
	result = append(result, 0x02, byte(len(rbin)))
	result = append(result, rbin...)
	result = append(result, 0x02, byte(len(sbin)))
	result = append(result, sbin...)

	out := make([]byte, 0, len(result)+2)
	out = append(out, 0x30, byte(len(result)))
	out = append(out, result...)
	return out
}

// ParseDER parses a DER-encoded signature. Two length invariants are
// checked independently and must both hold: the outer length byte must
// describe exactly the remainder of the buffer (sig_len == length-byte+2),
// and the sum of the two integers' encoded lengths plus the six marker/
// length overhead bytes must equal the buffer's total length.
func ParseDER(data []byte) (*Signature, error) {
	if len(data) < 6 || data[0] != 0x30 {
		return nil, ErrBadDER
	}

	totalLen := int(data[1])
	if len(data) != totalLen+2 {
		return nil, ErrBadDER
	}

	if data[2] != 0x02 {
		return nil, ErrBadDER
	}
	rLen := int(data[3])
	if 4+rLen > len(data) {
		return nil, ErrBadDER
	}
	r := new(big.Int).SetBytes(data[4 : 4+rLen])

	sMarkerIdx := 4 + rLen
	if sMarkerIdx+2 > len(data) || data[sMarkerIdx] != 0x02 {
		return nil, ErrBadDER
	}
	sLen := int(data[sMarkerIdx+1])
	sStart := sMarkerIdx + 2
	if sStart+sLen != len(data) {
		return nil, ErrBadDER
	}
	s := new(big.Int).SetBytes(data[sStart : sStart+sLen])

	if 6+rLen+sLen != len(data) {
		return nil, ErrBadDER
	}

	return NewSignature(r, s), nil
}
