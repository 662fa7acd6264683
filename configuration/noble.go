package configuration

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/atomlevels/orbital"
)

// nobleShell is one filled nℓ subshell of a noble-gas core.
type nobleShell struct{ n, l int }

// nobleGases lists the closed cores from lightest to heaviest.
var nobleGases = []struct {
	name   string
	shells []nobleShell
}{
	{"He", []nobleShell{{1, 0}}},
	{"Ne", []nobleShell{{1, 0}, {2, 0}, {2, 1}}},
	{"Ar", []nobleShell{{1, 0}, {2, 0}, {2, 1}, {3, 0}, {3, 1}}},
	{"Kr", []nobleShell{{1, 0}, {2, 0}, {2, 1}, {3, 0}, {3, 1}, {3, 2}, {4, 0}, {4, 1}}},
	{"Xe", []nobleShell{{1, 0}, {2, 0}, {2, 1}, {3, 0}, {3, 1}, {3, 2}, {4, 0}, {4, 1}, {4, 2}, {5, 0}, {5, 1}}},
	{"Rn", []nobleShell{{1, 0}, {2, 0}, {2, 1}, {3, 0}, {3, 1}, {3, 2}, {4, 0}, {4, 1}, {4, 2}, {4, 3},
		{5, 0}, {5, 1}, {5, 2}, {6, 0}, {6, 1}}},
}

// NobleGasNames returns the supported core names, lightest first.
func NobleGasNames() []string {
	out := make([]string, len(nobleGases))
	for i, g := range nobleGases {
		out[i] = g.name
	}
	return out
}

func nobleShells(name string) ([]orbital.Orbital, error) {
	for _, g := range nobleGases {
		if g.name == name {
			out := make([]orbital.Orbital, len(g.shells))
			for i, s := range g.shells {
				out[i] = orbital.Must(orbital.New(orbital.N(s.n), s.l))
			}
			return out, nil
		}
	}
	return nil, fmt.Errorf("%w: unknown noble gas %q", ErrOrbitalNotFound, name)
}

// NobleGas returns the closed, filled core of the named noble gas
// ("He", "Ne", "Ar", "Kr", "Xe", "Rn").
func NobleGas(name string) (*Configuration[orbital.Orbital], error) {
	shells, err := nobleShells(name)
	if err != nil {
		return nil, err
	}
	entries := make([]Entry[orbital.Orbital], len(shells))
	for i, o := range shells {
		entries[i] = Entry[orbital.Orbital]{Orbital: o, Occupancy: o.Degeneracy(), State: Closed}
	}
	return New(entries)
}

// RelativisticNobleGas returns the closed core of the named noble gas in jj
// subshells (1s 2s 2p- 2p ...).
func RelativisticNobleGas(name string) (*Configuration[orbital.RelativisticOrbital], error) {
	shells, err := nobleShells(name)
	if err != nil {
		return nil, err
	}
	var entries []Entry[orbital.RelativisticOrbital]
	for _, o := range shells {
		for _, r := range o.Relativistic() {
			entries = append(entries, Entry[orbital.RelativisticOrbital]{Orbital: r, Occupancy: r.Degeneracy(), State: Closed})
		}
	}
	return New(entries)
}

// NobleCoreName returns the heaviest noble gas whose filled subshells are
// exactly the leading closed subshells of c, or "" if there is none.
func NobleCoreName[O orbital.Subshell[O]](c *Configuration[O]) string {
	var zero O
	_, relativistic := any(zero).(orbital.RelativisticOrbital)
	if _, ok := any(zero).(orbital.Orbital); !ok && !relativistic {
		return ""
	}
	core := c.Core().entries
	for gi := len(nobleGases) - 1; gi >= 0; gi-- {
		if matchesNobleCore(core, nobleGases[gi].shells, relativistic) {
			return nobleGases[gi].name
		}
	}
	return ""
}

// SplitNobleCore returns NobleCoreName(c) together with c minus that core.
// When c has no noble-gas core it returns "" and a copy of c.
func SplitNobleCore[O orbital.Subshell[O]](c *Configuration[O]) (string, *Configuration[O]) {
	name := NobleCoreName(c)
	if name == "" {
		return "", c.Clone()
	}
	var zero O
	_, relativistic := any(zero).(orbital.RelativisticOrbital)
	var shells []nobleShell
	for _, g := range nobleGases {
		if g.name == name {
			shells = g.shells
		}
	}
	in := make(map[string]struct{})
	for _, s := range nobleNames(shells, relativistic) {
		in[s] = struct{}{}
	}
	rest := c.Filter(func(e Entry[O]) bool {
		_, core := in[e.Orbital.String()]
		return !(core && e.State == Closed)
	})
	return name, rest
}

// nobleNames lists the canonical names of a core's subshells.
func nobleNames(shells []nobleShell, relativistic bool) []string {
	var out []string
	for _, s := range shells {
		o := orbital.Must(orbital.New(orbital.N(s.n), s.l))
		if relativistic {
			for _, r := range o.Relativistic() {
				out = append(out, r.String())
			}
		} else {
			out = append(out, o.String())
		}
	}
	return out
}

// matchesNobleCore compares by canonical orbital names, which identify
// orbitals uniquely within each variant.
func matchesNobleCore[O orbital.Subshell[O]](core []Entry[O], shells []nobleShell, relativistic bool) bool {
	want := nobleNames(shells, relativistic)
	if len(core) < len(want) {
		return false
	}
	got := make([]string, len(want))
	for i := range want {
		e := core[i]
		if e.Occupancy != e.Orbital.Degeneracy() {
			return false
		}
		got[i] = e.Orbital.String()
	}
	sort.Strings(want)
	sort.Strings(got)
	for i := range want {
		if want[i] != got[i] {
			return false
		}
	}
	return true
}
