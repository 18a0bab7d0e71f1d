package bhash

import "testing"

func TestHash256FromBytes(t *testing.T) {
	tests := []struct {
		name        string
		input       []byte
		expectError bool
		expected    string
	}{
		{
			name:     "valid 32-byte input",
			input:    make([]byte, 32),
			expected: "0000000000000000000000000000000000000000000000000000000000000000",
		},
		{
			name:        "too short input",
			input:       make([]byte, 31),
			expectError: true,
		},
		{
			name:        "too long input",
			input:       make([]byte, 33),
			expectError: true,
		},
		{
			name:        "empty input",
			input:       []byte{},
			expectError: true,
		},
		{
			name:        "nil input",
			input:       nil,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash, err := Hash256FromBytes(tt.input)
			if tt.expectError {
				if err == nil {
					t.Error("expected error but got none")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if hash.String() != tt.expected {
				t.Errorf("want %s, got %s", tt.expected, hash.String())
			}
		})
	}
}

func TestHash256FromHex_Roundtrip(t *testing.T) {
	want := "452c629d67e41baec3ac6f04fe744b4b9617f8f859c63b3002f8684e7a4fee03"
	hash, err := Hash256FromHex(want)
	if err != nil {
		t.Fatal(err)
	}
	if hash.String() != want {
		t.Errorf("want %s, got %s", want, hash.String())
	}
}

func TestHash256_Reversed(t *testing.T) {
	hash, err := Hash256FromHex("0102030400000000000000000000000000000000000000000000000000000000")
	if err != nil {
		t.Fatal(err)
	}
	reversed := hash.Reversed()
	want := "0000000000000000000000000000000000000000000000000000000004030201"
	if reversed.String() != want {
		t.Errorf("want %s, got %s", want, reversed.String())
	}
	if reversed.Reversed().String() != hash.String() {
		t.Error("double reversal should restore the original")
	}
}

func TestHash256Bytes_KnownVector(t *testing.T) {
	// hash256("") = sha256(sha256("")).
	got := Hash256Bytes(nil)
	want := "5df6e0e2761359d30a8275058e299fcc0381534545f55cf43e41983f5d4c9456"
	if got.String() != want {
		t.Errorf("want %s, got %s", want, got.String())
	}
}

func TestHash160Bytes_Length(t *testing.T) {
	got := Hash160Bytes([]byte("programmingbitcoin"))
	if len(got.Bytes()) != 20 {
		t.Errorf("want 20-byte digest, got %d", len(got.Bytes()))
	}
}
