package orbital

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/atomlevels/halfint"
	"github.com/katalvlaran/atomlevels/parity"
)

// maxProjections bounds the number of free angular momenta of any parent
// orbital variant.
const maxProjections = 2

// SpinOrbital is a single state of the subshell O: every projection quantum
// number is fixed.
type SpinOrbital[O Subshell[O]] struct {
	orb O
	m   [maxProjections]halfint.HalfInt
	nm  int
}

// NewSpinOrbital fixes the projections of o, one per free angular momentum,
// e.g. (mℓ, ms) for an Orbital or (mj) for a RelativisticOrbital.
func NewSpinOrbital[O Subshell[O]](o O, m ...halfint.HalfInt) (SpinOrbital[O], error) {
	ranges := o.AngularMomentumRanges()
	if len(m) != len(ranges) || len(m) > maxProjections {
		return SpinOrbital[O]{}, fmt.Errorf("%w: %s takes %d projections, got %d",
			ErrInvalidOrbital, o, len(ranges), len(m))
	}
	so := SpinOrbital[O]{orb: o, nm: len(m)}
	for i, mi := range m {
		if indexOf(ranges[i], mi) < 0 {
			return SpinOrbital[O]{}, fmt.Errorf("%w: projection %s outside range of %s",
				ErrInvalidOrbital, mi, o)
		}
		so.m[i] = mi
	}
	return so, nil
}

// SpinOrbitals enumerates every state of o in Cartesian order of its
// projection ranges; for an Orbital that is mℓ ascending with α before β.
func SpinOrbitals[O Subshell[O]](o O) []SpinOrbital[O] {
	ranges := o.AngularMomentumRanges()
	out := []SpinOrbital[O]{{orb: o, nm: len(ranges)}}
	for i, r := range ranges {
		next := make([]SpinOrbital[O], 0, len(out)*len(r))
		for _, so := range out {
			for _, mi := range r {
				so.m[i] = mi
				next = append(next, so)
			}
		}
		out = next
	}
	return out
}

// Orbital returns the parent subshell.
func (s SpinOrbital[O]) Orbital() O { return s.orb }

// Projections returns the fixed projection quantum numbers.
func (s SpinOrbital[O]) Projections() []halfint.HalfInt {
	return append([]halfint.HalfInt(nil), s.m[:s.nm]...)
}

// Degeneracy is always 1.
func (s SpinOrbital[O]) Degeneracy() int { return 1 }

// Parity returns the parent parity.
func (s SpinOrbital[O]) Parity() parity.Parity { return s.orb.Parity() }

// IsBound returns the parent boundedness.
func (s SpinOrbital[O]) IsBound() bool { return s.orb.IsBound() }

// AngularMomenta is empty: nothing is left to vary.
func (s SpinOrbital[O]) AngularMomenta() []halfint.HalfInt { return nil }

// AngularMomentumRanges is empty.
func (s SpinOrbital[O]) AngularMomentumRanges() [][]halfint.HalfInt { return nil }

// Compare orders by parent, then by position of each projection in the
// parent's enumeration order.
func (s SpinOrbital[O]) Compare(other SpinOrbital[O]) int {
	if c := s.orb.Compare(other.orb); c != 0 {
		return c
	}
	ranges := s.orb.AngularMomentumRanges()
	for i := 0; i < s.nm && i < len(ranges); i++ {
		if c := cmpInt(indexOf(ranges[i], s.m[i]), indexOf(ranges[i], other.m[i])); c != 0 {
			return c
		}
	}
	return 0
}

// String renders e.g. "2p(-1,α)" or "2p-(1/2)".
func (s SpinOrbital[O]) String() string {
	parts := make([]string, s.nm)
	for i := 0; i < s.nm; i++ {
		parts[i] = s.m[i].String()
	}
	// The second projection of a nonrelativistic orbital is ms.
	if s.nm == 2 {
		if s.m[1].Twice() > 0 {
			parts[1] = "α"
		} else {
			parts[1] = "β"
		}
	}
	return s.orb.String() + "(" + strings.Join(parts, ",") + ")"
}

func indexOf(r []halfint.HalfInt, v halfint.HalfInt) int {
	for i, x := range r {
		if x == v {
			return i
		}
	}
	return -1
}
