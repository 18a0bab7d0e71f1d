package ecc

import "math/big"

// FieldElement is an integer num in [0, prime) together with its modulus.
// FieldElement values are immutable: every arithmetic method returns a new
// value rather than mutating the receiver.
type FieldElement struct {
	num   *big.Int
	prime *big.Int
}

// NewFieldElement constructs a FieldElement, validating that 0 <= num < prime
// and prime > 0.
func NewFieldElement(num, prime *big.Int) (*FieldElement, error) {
	if prime.Sign() < 0 {
		return nil, ErrOutOfRange
	}
	if num.Sign() < 0 || num.Cmp(prime) >= 0 {
		return nil, ErrOutOfRange
	}
	return &FieldElement{num: new(big.Int).Set(num), prime: new(big.Int).Set(prime)}, nil
}

// Num returns a copy of the element's residue.
func (f *FieldElement) Num() *big.Int { return new(big.Int).Set(f.num) }

// Prime returns a copy of the element's modulus.
func (f *FieldElement) Prime() *big.Int { return new(big.Int).Set(f.prime) }

// Equal reports whether two elements have the same num and prime.
func (f *FieldElement) Equal(other *FieldElement) bool {
	if f == nil || other == nil {
		return f == other
	}
	return f.num.Cmp(other.num) == 0 && f.prime.Cmp(other.prime) == 0
}

func (f *FieldElement) samePrime(other *FieldElement) error {
	if f.prime.Cmp(other.prime) != 0 {
		return ErrMismatchedField
	}
	return nil
}

// Add returns f + other (mod p).
func (f *FieldElement) Add(other *FieldElement) (*FieldElement, error) {
	if err := f.samePrime(other); err != nil {
		return nil, err
	}
	result := new(big.Int).Mod(new(big.Int).Add(f.num, other.num), f.prime)
	return &FieldElement{result, new(big.Int).Set(f.prime)}, nil
}

// Sub returns f - other (mod p).
func (f *FieldElement) Sub(other *FieldElement) (*FieldElement, error) {
	if err := f.samePrime(other); err != nil {
		return nil, err
	}
	result := new(big.Int).Mod(new(big.Int).Sub(f.num, other.num), f.prime)
	return &FieldElement{result, new(big.Int).Set(f.prime)}, nil
}

// Mul returns f * other (mod p).
func (f *FieldElement) Mul(other *FieldElement) (*FieldElement, error) {
	if err := f.samePrime(other); err != nil {
		return nil, err
	}
	result := new(big.Int).Mod(new(big.Int).Mul(f.num, other.num), f.prime)
	return &FieldElement{result, new(big.Int).Set(f.prime)}, nil
}

// Pow returns f^exponent (mod p). Every exponent, including a negative one,
// is reduced modulo p-1 via Fermat's little theorem before exponentiating.
// num == 0 always yields 0, for any exponent including 0: the reduction
// maps any multiple of p-1 to exponent 0, and 0^0 would otherwise come out
// as 1.
func (f *FieldElement) Pow(exponent *big.Int) *FieldElement {
	if f.num.Sign() == 0 {
		return &FieldElement{big.NewInt(0), new(big.Int).Set(f.prime)}
	}
	pMinusOne := new(big.Int).Sub(f.prime, big.NewInt(1))
	n := new(big.Int).Mod(exponent, pMinusOne)
	result := new(big.Int).Exp(f.num, n, f.prime)
	return &FieldElement{result, new(big.Int).Set(f.prime)}
}

// Div returns f / other (mod p), computed as f * other^(p-2) (Fermat inverse).
func (f *FieldElement) Div(other *FieldElement) (*FieldElement, error) {
	if err := f.samePrime(other); err != nil {
		return nil, err
	}
	if other.num.Sign() == 0 {
		return nil, ErrZeroDivision
	}
	inv := other.Pow(new(big.Int).Sub(other.prime, big.NewInt(2)))
	return f.Mul(inv)
}

// ScalarMul returns (k * f) mod p for any integer k, including negative k.
func (f *FieldElement) ScalarMul(k *big.Int) *FieldElement {
	result := new(big.Int).Mod(new(big.Int).Mul(k, f.num), f.prime)
	return &FieldElement{result, new(big.Int).Set(f.prime)}
}

// IsZero reports whether the element is the additive identity.
func (f *FieldElement) IsZero() bool { return f.num.Sign() == 0 }
