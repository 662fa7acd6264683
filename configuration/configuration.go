package configuration

import (
	"fmt"
	"sort"
	"strings"

	"github.com/katalvlaran/atomlevels/orbital"
	"github.com/katalvlaran/atomlevels/parity"
)

// Configuration is a list of distinct subshells with occupancies and states.
// Methods that return a *Configuration never alias the receiver's storage.
type Configuration[O orbital.Subshell[O]] struct {
	entries []Entry[O]
	sorted  bool
}

// New validates entries and builds a Configuration. Orbitals must be
// distinct and each occupancy must lie in [0, degeneracy].
// Complexity: O(k log k) for k entries.
func New[O orbital.Subshell[O]](entries []Entry[O], opts ...Option) (*Configuration[O], error) {
	o := newOptions(opts)
	seen := make(map[O]struct{}, len(entries))
	for _, e := range entries {
		if _, dup := seen[e.Orbital]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateOrbital, e.Orbital)
		}
		seen[e.Orbital] = struct{}{}
		if e.Occupancy < 0 || e.Occupancy > e.Orbital.Degeneracy() {
			return nil, fmt.Errorf("%w: %d electrons in %s (degeneracy %d)",
				ErrInvalidOccupancy, e.Occupancy, e.Orbital, e.Orbital.Degeneracy())
		}
		if !e.State.Valid() {
			return nil, fmt.Errorf("%w: %d for %s", ErrInvalidState, uint8(e.State), e.Orbital)
		}
	}
	c := &Configuration[O]{entries: append([]Entry[O](nil), entries...), sorted: o.sorted}
	c.normalize()
	return c, nil
}

// FromLists builds a Configuration from parallel slices. states may be
// shorter than orbitals; missing states default to Open.
func FromLists[O orbital.Subshell[O]](orbitals []O, occupancy []int, states []State, opts ...Option) (*Configuration[O], error) {
	if len(orbitals) != len(occupancy) {
		return nil, fmt.Errorf("%w: %d orbitals but %d occupancies",
			ErrInvalidOccupancy, len(orbitals), len(occupancy))
	}
	if len(states) > len(orbitals) {
		return nil, fmt.Errorf("%w: %d states for %d orbitals", ErrInvalidState, len(states), len(orbitals))
	}
	entries := make([]Entry[O], len(orbitals))
	for i, orb := range orbitals {
		entries[i] = Entry[O]{Orbital: orb, Occupancy: occupancy[i], State: Open}
		if i < len(states) {
			entries[i].State = states[i]
		}
	}
	return New(entries, opts...)
}

// Empty returns a configuration with no subshells.
func Empty[O orbital.Subshell[O]](opts ...Option) *Configuration[O] {
	return &Configuration[O]{sorted: newOptions(opts).sorted}
}

// Single returns the configuration of one open subshell. It panics when the
// occupancy is invalid; use New for checked construction.
func Single[O orbital.Subshell[O]](o O, occupancy int) *Configuration[O] {
	c, err := New([]Entry[O]{{Orbital: o, Occupancy: occupancy}})
	if err != nil {
		panic(err.Error())
	}
	return c
}

func (c *Configuration[O]) normalize() {
	if c.sorted {
		sort.SliceStable(c.entries, func(i, j int) bool {
			return c.entries[i].Orbital.Compare(c.entries[j].Orbital) < 0
		})
	}
}

// derive returns a configuration sharing c's ordering mode over entries.
func (c *Configuration[O]) derive(entries []Entry[O]) *Configuration[O] {
	d := &Configuration[O]{entries: entries, sorted: c.sorted}
	d.normalize()
	return d
}

// Clone returns an independent copy.
func (c *Configuration[O]) Clone() *Configuration[O] {
	return &Configuration[O]{entries: append([]Entry[O](nil), c.entries...), sorted: c.sorted}
}

// IsSorted reports whether c keeps canonical order.
func (c *Configuration[O]) IsSorted() bool { return c.sorted }

// Len returns the number of subshells.
func (c *Configuration[O]) Len() int { return len(c.entries) }

// Entries returns a copy of the triples in stored order.
func (c *Configuration[O]) Entries() []Entry[O] {
	return append([]Entry[O](nil), c.entries...)
}

// Orbitals returns the orbitals in stored order.
func (c *Configuration[O]) Orbitals() []O {
	out := make([]O, len(c.entries))
	for i, e := range c.entries {
		out[i] = e.Orbital
	}
	return out
}

// At returns the i-th triple.
func (c *Configuration[O]) At(i int) (Entry[O], error) {
	if i < 0 || i >= len(c.entries) {
		return Entry[O]{}, fmt.Errorf("%w: %d of %d", ErrIndexOutOfRange, i, len(c.entries))
	}
	return c.entries[i], nil
}

// Slice returns the sub-configuration of positions [i, j).
func (c *Configuration[O]) Slice(i, j int) (*Configuration[O], error) {
	if i < 0 || j > len(c.entries) || i > j {
		return nil, fmt.Errorf("%w: [%d:%d] of %d", ErrIndexOutOfRange, i, j, len(c.entries))
	}
	return c.derive(append([]Entry[O](nil), c.entries[i:j]...)), nil
}

// Select returns the sub-configuration of the given positions. A sorted
// configuration re-sorts the result; an unsorted one keeps idx order.
func (c *Configuration[O]) Select(idx ...int) (*Configuration[O], error) {
	out := make([]Entry[O], 0, len(idx))
	seen := make(map[int]struct{}, len(idx))
	for _, i := range idx {
		if i < 0 || i >= len(c.entries) {
			return nil, fmt.Errorf("%w: %d of %d", ErrIndexOutOfRange, i, len(c.entries))
		}
		if _, dup := seen[i]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateOrbital, c.entries[i].Orbital)
		}
		seen[i] = struct{}{}
		out = append(out, c.entries[i])
	}
	return c.derive(out), nil
}

func (c *Configuration[O]) index(o O) int {
	for i, e := range c.entries {
		if e.Orbital == o {
			return i
		}
	}
	return -1
}

// Contains reports whether o is one of c's subshells.
func (c *Configuration[O]) Contains(o O) bool { return c.index(o) >= 0 }

// Lookup returns the triple for o.
func (c *Configuration[O]) Lookup(o O) (Entry[O], bool) {
	if i := c.index(o); i >= 0 {
		return c.entries[i], true
	}
	return Entry[O]{}, false
}

// NumElectrons returns the total occupancy.
func (c *Configuration[O]) NumElectrons() int {
	n := 0
	for _, e := range c.entries {
		n += e.Occupancy
	}
	return n
}

// Count returns the occupancy of o, or 0 if o is absent.
func (c *Configuration[O]) Count(o O) int {
	if e, ok := c.Lookup(o); ok {
		return e.Occupancy
	}
	return 0
}

// Parity returns Π (-1)^(ℓ·occupancy) over all subshells.
func (c *Configuration[O]) Parity() parity.Parity {
	p := parity.Even
	for _, e := range c.entries {
		p = p.Mul(e.Orbital.Parity().Pow(e.Occupancy))
	}
	return p
}

// Equal reports equality of order, occupancies and states.
func (c *Configuration[O]) Equal(other *Configuration[O]) bool {
	if len(c.entries) != len(other.entries) {
		return false
	}
	for i, e := range c.entries {
		if e != other.entries[i] {
			return false
		}
	}
	return true
}

// Similar reports equality of the orbital/occupancy pairs, ignoring order
// and states.
func (c *Configuration[O]) Similar(other *Configuration[O]) bool {
	if len(c.entries) != len(other.entries) {
		return false
	}
	for _, e := range c.entries {
		if other.Count(e.Orbital) != e.Occupancy || !other.Contains(e.Orbital) {
			return false
		}
	}
	return true
}

// String renders the space-separated canonical form, or "∅" when empty.
func (c *Configuration[O]) String() string {
	if len(c.entries) == 0 {
		return "∅"
	}
	parts := make([]string, len(c.entries))
	for i, e := range c.entries {
		parts[i] = e.String()
	}
	return strings.Join(parts, " ")
}

// key identifies c up to ordering: equal keys mean the same set of
// (orbital, occupancy, state) triples. Empty subshells are ignored.
func (c *Configuration[O]) key() string {
	es := make([]Entry[O], 0, len(c.entries))
	for _, e := range c.entries {
		if e.Occupancy > 0 {
			es = append(es, e)
		}
	}
	sort.Slice(es, func(i, j int) bool { return es[i].Orbital.Compare(es[j].Orbital) < 0 })
	var b strings.Builder
	for _, e := range es {
		fmt.Fprintf(&b, "%s/%d/%d;", e.Orbital, e.Occupancy, e.State)
	}
	return b.String()
}
