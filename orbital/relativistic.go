package orbital

import (
	"fmt"

	"github.com/katalvlaran/atomlevels/halfint"
	"github.com/katalvlaran/atomlevels/parity"
)

// RelativisticOrbital labels a jj subshell by n and κ.
// κ = -(ℓ+1) for j = ℓ+1/2 and κ = ℓ for j = ℓ-1/2.
type RelativisticOrbital struct {
	n     Principal
	kappa int
}

// NewRelativistic returns the orbital (n, κ). κ must be nonzero and the
// implied ℓ must satisfy 0 <= ℓ < n for bound n.
func NewRelativistic(n Principal, kappa int) (RelativisticOrbital, error) {
	if kappa == 0 {
		return RelativisticOrbital{}, fmt.Errorf("%w: κ must be nonzero", ErrInvalidOrbital)
	}
	if err := n.validate(KappaToL(kappa)); err != nil {
		return RelativisticOrbital{}, err
	}
	return RelativisticOrbital{n: n, kappa: kappa}, nil
}

// NewRelativisticLJ returns the orbital with the given ℓ and j = ℓ ± 1/2.
func NewRelativisticLJ(n Principal, l int, j halfint.HalfInt) (RelativisticOrbital, error) {
	kappa, err := LJToKappa(l, j)
	if err != nil {
		return RelativisticOrbital{}, err
	}
	return NewRelativistic(n, kappa)
}

// KappaToJ returns j = |κ| - 1/2.
func KappaToJ(kappa int) halfint.HalfInt {
	if kappa < 0 {
		kappa = -kappa
	}
	return halfint.Half(2*kappa - 1)
}

// KappaToL returns ℓ = κ for κ > 0 and -κ-1 otherwise.
func KappaToL(kappa int) int {
	if kappa > 0 {
		return kappa
	}
	return -kappa - 1
}

// LJToKappa maps a physical (ℓ, j) pair to κ.
func LJToKappa(l int, j halfint.HalfInt) (int, error) {
	if l < 0 {
		return 0, fmt.Errorf("%w: ℓ=%d is negative", ErrInvalidOrbital, l)
	}
	switch j.Twice() {
	case 2*l + 1:
		return -(l + 1), nil
	case 2*l - 1:
		if l > 0 {
			return l, nil
		}
	}
	return 0, fmt.Errorf("%w: j=%s is not ℓ±1/2 for ℓ=%d", ErrInvalidOrbital, j, l)
}

// N returns the principal quantum number.
func (o RelativisticOrbital) N() Principal { return o.n }

// Kappa returns κ.
func (o RelativisticOrbital) Kappa() int { return o.kappa }

// Symmetry returns κ.
func (o RelativisticOrbital) Symmetry() int { return o.kappa }

// L returns ℓ.
func (o RelativisticOrbital) L() int { return KappaToL(o.kappa) }

// J returns j.
func (o RelativisticOrbital) J() halfint.HalfInt { return KappaToJ(o.kappa) }

// Degeneracy returns 2j+1.
func (o RelativisticOrbital) Degeneracy() int { return o.J().Twice() + 1 }

// Parity returns (-1)^ℓ.
func (o RelativisticOrbital) Parity() parity.Parity { return parity.Of(o.L()) }

// IsBound reports whether n is an integer.
func (o RelativisticOrbital) IsBound() bool { return o.n.IsBound() }

// MJRange returns -j..j.
func (o RelativisticOrbital) MJRange() []halfint.HalfInt { return halfint.Projections(o.J()) }

// AngularMomenta returns (j).
func (o RelativisticOrbital) AngularMomenta() []halfint.HalfInt {
	return []halfint.HalfInt{o.J()}
}

// AngularMomentumRanges returns (-j..j).
func (o RelativisticOrbital) AngularMomentumRanges() [][]halfint.HalfInt {
	return [][]halfint.HalfInt{o.MJRange()}
}

// Compare orders by n, then ℓ, then j.
func (o RelativisticOrbital) Compare(other RelativisticOrbital) int {
	if c := o.n.Compare(other.n); c != 0 {
		return c
	}
	if c := cmpInt(o.L(), other.L()); c != 0 {
		return c
	}
	return o.J().Cmp(other.J())
}

// NonRelativistic returns the nℓ orbital this subshell belongs to.
func (o RelativisticOrbital) NonRelativistic() Orbital {
	return Orbital{n: o.n, l: o.L()}
}

// String renders "2p" for j = ℓ+1/2 and "2p-" for j = ℓ-1/2.
func (o RelativisticOrbital) String() string {
	s := o.n.String() + Letter(o.L())
	if o.kappa > 0 {
		s += "-"
	}
	return s
}

// Relativistic returns the jj subshells of o: nℓ- (when ℓ > 0) then nℓ.
func (o Orbital) Relativistic() []RelativisticOrbital {
	out := make([]RelativisticOrbital, 0, 2)
	if o.l > 0 {
		out = append(out, RelativisticOrbital{n: o.n, kappa: o.l})
	}
	return append(out, RelativisticOrbital{n: o.n, kappa: -(o.l + 1)})
}
