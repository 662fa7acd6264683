package orbital

import (
	"github.com/katalvlaran/atomlevels/halfint"
	"github.com/katalvlaran/atomlevels/parity"
)

// Orbital labels a nonrelativistic subshell nℓ.
type Orbital struct {
	n Principal
	l int
}

// New returns the orbital nℓ. For bound n it requires 0 <= ℓ < n.
func New(n Principal, l int) (Orbital, error) {
	if err := n.validate(l); err != nil {
		return Orbital{}, err
	}
	return Orbital{n: n, l: l}, nil
}

// N returns the principal quantum number.
func (o Orbital) N() Principal { return o.n }

// L returns ℓ.
func (o Orbital) L() int { return o.l }

// Symmetry returns ℓ, the quantity that labels the angular symmetry.
func (o Orbital) Symmetry() int { return o.l }

// Degeneracy returns 2(2ℓ+1).
func (o Orbital) Degeneracy() int { return 2 * (2*o.l + 1) }

// Parity returns (-1)^ℓ.
func (o Orbital) Parity() parity.Parity { return parity.Of(o.l) }

// IsBound reports whether n is an integer.
func (o Orbital) IsBound() bool { return o.n.IsBound() }

// MLRange returns -ℓ..ℓ.
func (o Orbital) MLRange() []halfint.HalfInt { return halfint.Projections(halfint.Int(o.l)) }

// AngularMomenta returns (ℓ, 1/2).
func (o Orbital) AngularMomenta() []halfint.HalfInt {
	return []halfint.HalfInt{halfint.Int(o.l), halfint.Half(1)}
}

// AngularMomentumRanges returns mℓ ascending and ms as (+1/2, -1/2), so that
// spin-up (α) is enumerated before spin-down (β).
func (o Orbital) AngularMomentumRanges() [][]halfint.HalfInt {
	return [][]halfint.HalfInt{o.MLRange(), {halfint.Half(1), halfint.Half(-1)}}
}

// Compare orders by n, then ℓ.
func (o Orbital) Compare(other Orbital) int {
	if c := o.n.Compare(other.n); c != 0 {
		return c
	}
	return cmpInt(o.l, other.l)
}

// String renders the canonical form, e.g. "2p" or "kd".
func (o Orbital) String() string { return o.n.String() + Letter(o.l) }
