package configuration

import (
	"fmt"

	"github.com/katalvlaran/atomlevels/orbital"
)

// SpinConfigurations returns every way of placing c's electrons into
// distinct spin-orbitals. Each subshell contributes the k-combinations of
// its spin-orbitals (k = occupancy, lexicographic in spin-orbital order);
// subshells are combined by Cartesian product with the first subshell
// varying slowest. Every spin-orbital inherits its subshell's state.
func SpinConfigurations[O orbital.Subshell[O]](c *Configuration[O]) []*Configuration[orbital.SpinOrbital[O]] {
	acc := [][]Entry[orbital.SpinOrbital[O]]{{}}
	for _, e := range c.entries {
		sos := orbital.SpinOrbitals(e.Orbital)
		combos := combinations(len(sos), e.Occupancy)
		next := make([][]Entry[orbital.SpinOrbital[O]], 0, len(acc)*len(combos))
		for _, p := range acc {
			for _, combo := range combos {
				q := make([]Entry[orbital.SpinOrbital[O]], len(p), len(p)+len(combo))
				copy(q, p)
				for _, k := range combo {
					q = append(q, Entry[orbital.SpinOrbital[O]]{Orbital: sos[k], Occupancy: 1, State: e.State})
				}
				next = append(next, q)
			}
		}
		acc = next
	}
	out := make([]*Configuration[orbital.SpinOrbital[O]], len(acc))
	for i, p := range acc {
		out[i] = &Configuration[orbital.SpinOrbital[O]]{entries: p, sorted: c.sorted}
		out[i].normalize()
	}
	return out
}

// SpinConfigurationsOf applies SpinConfigurations to each configuration and
// concatenates the results.
func SpinConfigurationsOf[O orbital.Subshell[O]](cs []*Configuration[O]) []*Configuration[orbital.SpinOrbital[O]] {
	var out []*Configuration[orbital.SpinOrbital[O]]
	for _, c := range cs {
		out = append(out, SpinConfigurations(c)...)
	}
	return out
}

// Substitution is one orbital replacement From → To.
type Substitution[O orbital.Subshell[O]] struct {
	From O
	To   O
}

// String renders "from → to".
func (s Substitution[O]) String() string { return fmt.Sprintf("%s → %s", s.From, s.To) }

// Substitutions returns the orbital substitutions that turn src into dst:
// the orbitals only in src, in src order, paired with the orbitals only in
// dst, in dst order. Both must hold the same number of electrons and differ
// in the same number of orbitals, as spin configurations do.
func Substitutions[O orbital.Subshell[O]](src, dst *Configuration[O]) ([]Substitution[O], error) {
	if src.NumElectrons() != dst.NumElectrons() {
		return nil, fmt.Errorf("%w: %d vs %d electrons", ErrInvalidOccupancy, src.NumElectrons(), dst.NumElectrons())
	}
	var from, to []O
	for _, e := range src.entries {
		if !dst.Contains(e.Orbital) {
			from = append(from, e.Orbital)
		}
	}
	for _, e := range dst.entries {
		if !src.Contains(e.Orbital) {
			to = append(to, e.Orbital)
		}
	}
	if len(from) != len(to) {
		return nil, fmt.Errorf("%w: %d orbitals removed but %d added", ErrInvalidOccupancy, len(from), len(to))
	}
	out := make([]Substitution[O], len(from))
	for i := range from {
		out[i] = Substitution[O]{From: from[i], To: to[i]}
	}
	return out, nil
}

// combinations returns the k-subsets of {0..n-1} in lexicographic order.
func combinations(n, k int) [][]int {
	if k < 0 || k > n {
		return nil
	}
	var out [][]int
	idx := make([]int, k)
	for i := range idx {
		idx[i] = i
	}
	for {
		out = append(out, append([]int(nil), idx...))
		i := k - 1
		for i >= 0 && idx[i] == n-k+i {
			i--
		}
		if i < 0 {
			return out
		}
		idx[i]++
		for j := i + 1; j < k; j++ {
			idx[j] = idx[j-1] + 1
		}
	}
}
