package configuration

import (
	"fmt"

	"github.com/katalvlaran/atomlevels/orbital"
)

// Filter returns the subshells for which keep returns true, in order.
func (c *Configuration[O]) Filter(keep func(Entry[O]) bool) *Configuration[O] {
	out := make([]Entry[O], 0, len(c.entries))
	for _, e := range c.entries {
		if keep(e) {
			out = append(out, e)
		}
	}
	return c.derive(out)
}

// Core returns the closed subshells.
func (c *Configuration[O]) Core() *Configuration[O] {
	return c.Filter(func(e Entry[O]) bool { return e.State == Closed })
}

// Peel returns the subshells that are not closed.
func (c *Configuration[O]) Peel() *Configuration[O] {
	return c.Filter(func(e Entry[O]) bool { return e.State != Closed })
}

// Active returns the open subshells.
func (c *Configuration[O]) Active() *Configuration[O] {
	return c.Filter(func(e Entry[O]) bool { return e.State == Open })
}

// Inactive returns the inactive subshells.
func (c *Configuration[O]) Inactive() *Configuration[O] {
	return c.Filter(func(e Entry[O]) bool { return e.State == Inactive })
}

// Bound returns the subshells with an integer principal quantum number.
func (c *Configuration[O]) Bound() *Configuration[O] {
	return c.Filter(func(e Entry[O]) bool { return e.Orbital.IsBound() })
}

// Continuum returns the subshells with a continuum label.
func (c *Configuration[O]) Continuum() *Configuration[O] {
	return c.Filter(func(e Entry[O]) bool { return !e.Orbital.IsBound() })
}

// CloseAll marks every subshell closed. It modifies c in place; Closed is
// the pure form.
func (c *Configuration[O]) CloseAll() {
	for i := range c.entries {
		c.entries[i].State = Closed
	}
}

// Closed returns a copy with every subshell closed.
func (c *Configuration[O]) Closed() *Configuration[O] {
	d := c.Clone()
	d.CloseAll()
	return d
}

// FillAll sets every occupancy to the subshell degeneracy. It modifies c in
// place; Filled is the pure form.
func (c *Configuration[O]) FillAll() {
	for i := range c.entries {
		c.entries[i].Occupancy = c.entries[i].Orbital.Degeneracy()
	}
}

// Filled returns a copy with every subshell full.
func (c *Configuration[O]) Filled() *Configuration[O] {
	d := c.Clone()
	d.FillAll()
	return d
}

// Delete removes the subshell o in place. Deleting an absent orbital is a
// no-op.
func (c *Configuration[O]) Delete(o O) {
	if i := c.index(o); i >= 0 {
		c.entries = append(c.entries[:i], c.entries[i+1:]...)
	}
}

// Add merges c and other: shared orbitals have their occupancies summed and
// must agree on state. Unsorted results keep c's order followed by the
// orbitals new in other. The result is sorted only if both operands are.
func (c *Configuration[O]) Add(other *Configuration[O]) (*Configuration[O], error) {
	out := c.Entries()
	for _, e := range other.entries {
		i := -1
		for k := range out {
			if out[k].Orbital == e.Orbital {
				i = k
				break
			}
		}
		if i < 0 {
			out = append(out, e)
			continue
		}
		if out[i].State != e.State {
			return nil, fmt.Errorf("%w: %s is %s and %s", ErrStateConflict, e.Orbital, out[i].State, e.State)
		}
		out[i].Occupancy += e.Occupancy
		if out[i].Occupancy > e.Orbital.Degeneracy() {
			return nil, fmt.Errorf("%w: %d electrons in %s (degeneracy %d)",
				ErrInvalidOccupancy, out[i].Occupancy, e.Orbital, e.Orbital.Degeneracy())
		}
	}
	d := &Configuration[O]{entries: out, sorted: c.sorted && other.sorted}
	d.normalize()
	return d, nil
}

// Remove takes n electrons out of o. The subshell reverts to Open; it is
// dropped when its occupancy reaches zero.
func (c *Configuration[O]) Remove(o O, n int) (*Configuration[O], error) {
	i := c.index(o)
	if i < 0 {
		return nil, fmt.Errorf("%w: %s in %s", ErrOrbitalNotFound, o, c)
	}
	if n < 0 || n > c.entries[i].Occupancy {
		return nil, fmt.Errorf("%w: cannot remove %d of %d electrons from %s",
			ErrInvalidOccupancy, n, c.entries[i].Occupancy, o)
	}
	d := c.Clone()
	d.entries[i].Occupancy -= n
	d.entries[i].State = Open
	if d.entries[i].Occupancy == 0 {
		d.entries = append(d.entries[:i], d.entries[i+1:]...)
	}
	return d, nil
}

// ReplaceOption configures Replace.
type ReplaceOption func(*replaceOptions)

type replaceOptions struct {
	appendNew bool
}

// AppendReplacement puts a new destination orbital at the end of an unsorted
// configuration instead of in the source's position.
func AppendReplacement() ReplaceOption {
	return func(o *replaceOptions) { o.appendNew = true }
}

// Replace moves every electron of src into dst. If dst is already present
// its occupancy grows; otherwise dst is inserted in canonical position
// (sorted), in src's position, or at the end with AppendReplacement.
// A new destination subshell is Open.
func (c *Configuration[O]) Replace(src, dst O, opts ...ReplaceOption) (*Configuration[O], error) {
	var ro replaceOptions
	for _, opt := range opts {
		opt(&ro)
	}
	i := c.index(src)
	if i < 0 {
		return nil, fmt.Errorf("%w: %s in %s", ErrOrbitalNotFound, src, c)
	}
	if src == dst {
		return c.Clone(), nil
	}
	moved := c.entries[i].Occupancy
	out := c.Entries()
	if j := c.index(dst); j >= 0 {
		out[j].Occupancy += moved
		if out[j].Occupancy > dst.Degeneracy() {
			return nil, fmt.Errorf("%w: %d electrons in %s (degeneracy %d)",
				ErrInvalidOccupancy, out[j].Occupancy, dst, dst.Degeneracy())
		}
		out = append(out[:i], out[i+1:]...)
		return c.derive(out), nil
	}
	if moved > dst.Degeneracy() {
		return nil, fmt.Errorf("%w: %d electrons in %s (degeneracy %d)",
			ErrInvalidOccupancy, moved, dst, dst.Degeneracy())
	}
	repl := Entry[O]{Orbital: dst, Occupancy: moved, State: Open}
	if ro.appendNew && !c.sorted {
		out = append(out[:i], out[i+1:]...)
		out = append(out, repl)
	} else {
		out[i] = repl
	}
	return c.derive(out), nil
}

// Juxtapose returns a+b for every a in as and b in bs, as-major. It is the
// ⊗ product used to compose configuration lists from independent parts.
func Juxtapose[O orbital.Subshell[O]](as, bs []*Configuration[O]) ([]*Configuration[O], error) {
	out := make([]*Configuration[O], 0, len(as)*len(bs))
	for _, a := range as {
		for _, b := range bs {
			ab, err := a.Add(b)
			if err != nil {
				return nil, err
			}
			out = append(out, ab)
		}
	}
	return out, nil
}
