package codec

import (
	"bytes"
	"math/big"
	"testing"
)

func TestVarint_Roundtrip(t *testing.T) {
	values := []uint64{0, 0xfc, 0xfd, 0xffff, 0x10000, 0xffffffff, 0x100000000, MaxVarint}
	for _, v := range values {
		encoded := EncodeVarintUint64(v)
		got, err := ReadVarint(bytes.NewReader(encoded))
		if err != nil {
			t.Fatalf("ReadVarint(%d): %v", v, err)
		}
		if got != v {
			t.Errorf("roundtrip mismatch: want %d got %d", v, got)
		}
	}
}

func TestVarint_EncodeOverflow(t *testing.T) {
	tooBig := new(big.Int).Add(new(big.Int).SetUint64(MaxVarint), big.NewInt(1))
	if _, err := EncodeVarint(tooBig); err != ErrVarintOverflow {
		t.Fatalf("expected ErrVarintOverflow, got %v", err)
	}
}

func TestVarint_KnownEncoding(t *testing.T) {
	got, err := ReadVarint(bytes.NewReader([]byte{0xfd, 0x2b, 0x02}))
	if err != nil {
		t.Fatal(err)
	}
	if got != 555 {
		t.Errorf("want 555, got %d", got)
	}

	encoded := EncodeVarintUint64(18005558675309)
	want := []byte{0xff, 0x6d, 0xc7, 0xed, 0x3e, 0x60, 0x10, 0x00, 0x00}
	if !bytes.Equal(encoded, want) {
		t.Errorf("want % x, got % x", want, encoded)
	}
}

func TestLE32_Roundtrip(t *testing.T) {
	v := uint32(0x01ef35a1)
	if LE32From(LE32(v)) != v {
		t.Errorf("LE32 roundtrip failed")
	}
}
