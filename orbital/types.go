package orbital

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/atomlevels/halfint"
	"github.com/katalvlaran/atomlevels/parity"
)

// ErrInvalidOrbital indicates quantum numbers that do not label a physical
// orbital.
var ErrInvalidOrbital = errors.New("orbital: invalid quantum numbers")

// Subshell is the capability every orbital variant provides. Configurations
// and combinatorial generators are generic over it.
type Subshell[O any] interface {
	comparable
	fmt.Stringer

	// Degeneracy is the number of electrons the subshell can hold.
	Degeneracy() int
	// Parity is (-1)^ℓ.
	Parity() parity.Parity
	// IsBound reports whether n is an integer rather than a continuum label.
	IsBound() bool
	// AngularMomenta lists the angular momenta whose projections are still
	// free, e.g. (ℓ, 1/2) for an Orbital and (j) for a RelativisticOrbital.
	AngularMomenta() []halfint.HalfInt
	// AngularMomentumRanges lists, per free angular momentum, the projection
	// values in enumeration order.
	AngularMomentumRanges() [][]halfint.HalfInt
	// Compare orders subshells within a configuration.
	Compare(other O) int
}

// Principal is a principal quantum number: a positive integer for bound
// orbitals or a continuum label.
type Principal struct {
	n     int
	label string
}

// N returns the integer principal quantum number n.
// Validity (n > 0) is checked by the orbital constructors.
func N(n int) Principal { return Principal{n: n} }

// Continuum returns a continuum label such as "k".
func Continuum(label string) Principal { return Principal{label: label} }

// IsBound reports whether p is an integer.
func (p Principal) IsBound() bool { return p.label == "" }

// Int returns the integer value and true for bound p.
func (p Principal) Int() (int, bool) {
	if !p.IsBound() {
		return 0, false
	}
	return p.n, true
}

// Label returns the continuum label, or "" for bound p.
func (p Principal) Label() string { return p.label }

// Compare orders integers numerically, then all continuum labels lexically.
func (p Principal) Compare(q Principal) int {
	switch {
	case p.IsBound() && q.IsBound():
		return cmpInt(p.n, q.n)
	case p.IsBound():
		return -1
	case q.IsBound():
		return 1
	}
	switch {
	case p.label < q.label:
		return -1
	case p.label > q.label:
		return 1
	}
	return 0
}

// String returns the digits of n or the continuum label.
func (p Principal) String() string {
	if p.IsBound() {
		return fmt.Sprintf("%d", p.n)
	}
	return p.label
}

func (p Principal) validate(l int) error {
	if l < 0 {
		return fmt.Errorf("%w: ℓ=%d is negative", ErrInvalidOrbital, l)
	}
	if !p.IsBound() {
		if p.label == "" {
			return fmt.Errorf("%w: empty continuum label", ErrInvalidOrbital)
		}
		return nil
	}
	if p.n <= 0 {
		return fmt.Errorf("%w: n=%d must be positive", ErrInvalidOrbital, p.n)
	}
	if l >= p.n {
		return fmt.Errorf("%w: ℓ=%d must be below n=%d", ErrInvalidOrbital, l, p.n)
	}
	return nil
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// Must unwraps a constructor result and panics on error. Intended for
// literals in tests, examples and package-level tables.
func Must[T any](v T, err error) T {
	if err != nil {
		panic(err.Error())
	}
	return v
}
