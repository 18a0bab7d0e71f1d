// Package codec implements Bitcoin's byte-level wire primitives:
// fixed-width little-endian integer conversion and the self-delimiting
// varint framing.
package codec

import (
	"encoding/binary"
	"errors"
	"io"
	"math"
	"math/big"
)

// ErrVarintOverflow is returned when encoding a value that does not fit in
// 64 bits.
var ErrVarintOverflow = errors.New("codec: value too large for a varint")

// MaxVarint is the largest value a varint can represent.
const MaxVarint = math.MaxUint64

var maxVarintBig = new(big.Int).SetUint64(MaxVarint)

// EncodeVarint encodes value using Bitcoin's variable-length integer
// framing: values below 0xfd are a single byte; 0xfd/0xfe/0xff prefix a
// 2/4/8-byte little-endian payload. value must be non-negative; a value
// above 2^64-1 fails with ErrVarintOverflow. EncodeVarintUint64 is the
// common-case helper for values that already fit in a uint64.
func EncodeVarint(value *big.Int) ([]byte, error) {
	if value.Sign() < 0 || value.Cmp(maxVarintBig) > 0 {
		return nil, ErrVarintOverflow
	}
	return EncodeVarintUint64(value.Uint64()), nil
}

// EncodeVarintUint64 encodes value, which always fits since uint64's range
// never exceeds MaxVarint.
func EncodeVarintUint64(value uint64) []byte {
	switch {
	case value < 0xfd:
		return []byte{byte(value)}
	case value <= 0xffff:
		buf := make([]byte, 3)
		buf[0] = 0xfd
		binary.LittleEndian.PutUint16(buf[1:], uint16(value))
		return buf
	case value <= 0xffffffff:
		buf := make([]byte, 5)
		buf[0] = 0xfe
		binary.LittleEndian.PutUint32(buf[1:], uint32(value))
		return buf
	default:
		buf := make([]byte, 9)
		buf[0] = 0xff
		binary.LittleEndian.PutUint64(buf[1:], value)
		return buf
	}
}

// ReadVarint reads a varint from r, returning the decoded value.
func ReadVarint(r io.Reader) (uint64, error) {
	var prefix [1]byte
	if _, err := io.ReadFull(r, prefix[:]); err != nil {
		return 0, err
	}
	switch prefix[0] {
	case 0xfd:
		var buf [2]byte
		if _, err := io.ReadFull(r, buf[:]); err != nil {
			return 0, err
		}
		return uint64(binary.LittleEndian.Uint16(buf[:])), nil
	case 0xfe:
		var buf [4]byte
		if _, err := io.ReadFull(r, buf[:]); err != nil {
			return 0, err
		}
		return uint64(binary.LittleEndian.Uint32(buf[:])), nil
	case 0xff:
		var buf [8]byte
		if _, err := io.ReadFull(r, buf[:]); err != nil {
			return 0, err
		}
		return binary.LittleEndian.Uint64(buf[:]), nil
	default:
		return uint64(prefix[0]), nil
	}
}

// LE32/LE64 encode fixed-width little-endian integers; the *From siblings
// decode them back. Bitcoin's legacy wire format (amounts, prev_index,
// sequence, locktime) is little-endian throughout, so that is the only
// discipline this package exposes; display-order hashes are handled by
// package bhash's own byte-reversal, not a big-endian codec here.

func LE32(v uint32) []byte {
	buf := make([]byte, 4)
	binary.LittleEndian.PutUint32(buf, v)
	return buf
}

func LE32From(b []byte) uint32 { return binary.LittleEndian.Uint32(b) }

func LE64(v uint64) []byte {
	buf := make([]byte, 8)
	binary.LittleEndian.PutUint64(buf, v)
	return buf
}

func LE64From(b []byte) uint64 { return binary.LittleEndian.Uint64(b) }
