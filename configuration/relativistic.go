package configuration

import (
	"fmt"

	"github.com/katalvlaran/atomlevels/orbital"
)

// RelativisticExpansion returns every jj configuration that N electrons in
// the nonrelativistic subshell o split into, starting with the ℓ- subshell
// as full as possible: 3p² → 3p-², 3p- 3p, 3p².
func RelativisticExpansion(o orbital.Orbital, n int) ([]*Configuration[orbital.RelativisticOrbital], error) {
	if n < 0 || n > o.Degeneracy() {
		return nil, fmt.Errorf("%w: %d electrons in %s (degeneracy %d)", ErrInvalidOccupancy, n, o, o.Degeneracy())
	}
	rs := o.Relativistic()
	if len(rs) == 1 {
		c, err := New(nonEmpty([]Entry[orbital.RelativisticOrbital]{{Orbital: rs[0], Occupancy: n}}))
		if err != nil {
			return nil, err
		}
		return []*Configuration[orbital.RelativisticOrbital]{c}, nil
	}
	minus, plus := rs[0], rs[1]
	var out []*Configuration[orbital.RelativisticOrbital]
	for nm := min(n, minus.Degeneracy()); nm >= max(0, n-plus.Degeneracy()); nm-- {
		c, err := New(nonEmpty([]Entry[orbital.RelativisticOrbital]{
			{Orbital: minus, Occupancy: nm},
			{Orbital: plus, Occupancy: n - nm},
		}))
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

func nonEmpty[O orbital.Subshell[O]](es []Entry[O]) []Entry[O] {
	out := es[:0]
	for _, e := range es {
		if e.Occupancy > 0 {
			out = append(out, e)
		}
	}
	return out
}
