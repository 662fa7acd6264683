package parity

import (
	"errors"
	"fmt"
)

// ErrInvalidParity indicates an integer other than ±1 or a literal other
// than "even"/"odd".
var ErrInvalidParity = errors.New("parity: value must be +1 (even) or -1 (odd)")

// Parity is +1 (Even) or -1 (Odd). The zero value is not a valid parity;
// use Even or Odd.
type Parity int8

const (
	// Even parity, the group identity.
	Even Parity = 1
	// Odd parity.
	Odd Parity = -1
)

// FromInt converts ±1 into a Parity.
func FromInt(v int) (Parity, error) {
	switch v {
	case 1:
		return Even, nil
	case -1:
		return Odd, nil
	}
	return 0, fmt.Errorf("%w: got %d", ErrInvalidParity, v)
}

// Of returns (-1)^l, the parity of an orbital with angular momentum l.
func Of(l int) Parity {
	if l%2 == 0 {
		return Even
	}
	return Odd
}

// Parse reads the literals "even" and "odd".
func Parse(s string) (Parity, error) {
	switch s {
	case "even":
		return Even, nil
	case "odd":
		return Odd, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidParity, s)
}

// Valid reports whether p is Even or Odd.
func (p Parity) Valid() bool { return p == Even || p == Odd }

// Mul returns the group product p·q.
func (p Parity) Mul(q Parity) Parity { return p * q }

// Neg flips the parity.
func (p Parity) Neg() Parity { return -p }

// Pow returns p^n for n >= 0.
func (p Parity) Pow(n int) Parity {
	if p == Odd && n%2 != 0 {
		return Odd
	}
	return Even
}

// Int returns +1 or -1.
func (p Parity) Int() int { return int(p) }

// Less orders Odd before Even.
func (p Parity) Less(q Parity) bool { return p < q }

// Compare returns -1, 0 or +1 under the Odd < Even order.
func (p Parity) Compare(q Parity) int {
	switch {
	case p < q:
		return -1
	case p > q:
		return 1
	}
	return 0
}

// String returns "even" or "odd".
func (p Parity) String() string {
	switch p {
	case Even:
		return "even"
	case Odd:
		return "odd"
	}
	return fmt.Sprintf("Parity(%d)", int8(p))
}
