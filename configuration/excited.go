package configuration

import (
	"context"
	"fmt"

	"github.com/katalvlaran/atomlevels/orbital"
)

// DefaultMaxExcitations allows single and double excitations.
const DefaultMaxExcitations = 2

// ExcitationOptions bounds the excited-configuration search.
type ExcitationOptions struct {
	// MinExcitations and MaxExcitations bound the number of electrons that
	// leave the reference active subshells.
	MinExcitations int
	MaxExcitations int
	// MinOccupancy and MaxOccupancy bound, per active subshell of the
	// reference in stored order, the occupancy left behind. Nil means
	// [0, degeneracy] for every subshell.
	MinOccupancy []int
	MaxOccupancy []int
	// KeepParity drops configurations whose parity differs from the
	// reference.
	KeepParity bool
	// Ctx allows cancellation between excitation levels.
	Ctx context.Context
}

// ExcitationOption configures Excited.
type ExcitationOption func(*ExcitationOptions)

// DefaultExcitationOptions returns singles and doubles with parity kept.
func DefaultExcitationOptions() ExcitationOptions {
	return ExcitationOptions{MaxExcitations: DefaultMaxExcitations, KeepParity: true, Ctx: context.Background()}
}

// WithContext makes the search stop with ctx.Err() once ctx is done.
// Panics on nil ctx.
func WithContext(ctx context.Context) ExcitationOption {
	if ctx == nil {
		panic("configuration: WithContext(nil)")
	}
	return func(o *ExcitationOptions) { o.Ctx = ctx }
}

// WithMinExcitations drops configurations with fewer than n excited electrons.
// Panics if n < 0.
func WithMinExcitations(n int) ExcitationOption {
	if n < 0 {
		panic("configuration: WithMinExcitations(n) requires n >= 0")
	}
	return func(o *ExcitationOptions) { o.MinExcitations = n }
}

// WithMaxExcitations caps the number of excited electrons. Panics if n < 0.
func WithMaxExcitations(n int) ExcitationOption {
	if n < 0 {
		panic("configuration: WithMaxExcitations(n) requires n >= 0")
	}
	return func(o *ExcitationOptions) { o.MaxExcitations = n }
}

// WithMinOccupancy sets per-subshell lower bounds for the reference's active
// subshells.
func WithMinOccupancy(bounds ...int) ExcitationOption {
	return func(o *ExcitationOptions) { o.MinOccupancy = append([]int(nil), bounds...) }
}

// WithMaxOccupancy sets per-subshell upper bounds for the reference's active
// subshells.
func WithMaxOccupancy(bounds ...int) ExcitationOption {
	return func(o *ExcitationOptions) { o.MaxOccupancy = append([]int(nil), bounds...) }
}

// WithKeepParity toggles the parity filter.
func WithKeepParity(keep bool) ExcitationOption {
	return func(o *ExcitationOptions) { o.KeepParity = keep }
}

// Excited enumerates the configurations reachable from cfg by moving
// electrons out of its open subshells into targets. See ExcitedWith.
func Excited[O orbital.Subshell[O]](cfg *Configuration[O], targets []O, opts ...ExcitationOption) ([]*Configuration[O], error) {
	return ExcitedWith(func(dst, _ O) (O, bool) { return dst, true }, cfg, targets, opts...)
}

// ExcitedWith is Excited with a substitution hook: fn(dst, src) returns the
// orbital that actually receives an electron leaving src for dst, or false
// to forbid that move.
//
// The reference comes first. Each further configuration is produced by one
// more single-electron move than its parent, so results appear in order of
// increasing excitation count; within a level, parents are expanded in
// order, sources in the reference's active order and targets in the given
// order. Configurations equal up to subshell order are emitted once.
func ExcitedWith[O orbital.Subshell[O]](fn func(dst, src O) (O, bool), cfg *Configuration[O], targets []O, opts ...ExcitationOption) ([]*Configuration[O], error) {
	o := DefaultExcitationOptions()
	for _, opt := range opts {
		opt(&o)
	}
	active := cfg.Active()
	lo, hi, err := occupancyBounds(active, o)
	if err != nil {
		return nil, err
	}
	if o.MinExcitations > o.MaxExcitations {
		return nil, fmt.Errorf("%w: min excitations %d exceed max %d",
			ErrInvalidOccupancy, o.MinExcitations, o.MaxExcitations)
	}
	sources := active.Orbitals()
	refParity := cfg.Parity()

	seen := map[string]struct{}{cfg.key(): {}}
	level := []*Configuration[O]{cfg.Clone()}
	var all []*Configuration[O]
	all = append(all, level...)
	for k := 1; k <= o.MaxExcitations && len(level) > 0; k++ {
		if err := o.Ctx.Err(); err != nil {
			return nil, err
		}
		var next []*Configuration[O]
		for _, c := range level {
			for _, src := range sources {
				if c.Count(src) == 0 {
					continue
				}
				for _, t := range targets {
					dst, ok := fn(t, src)
					if !ok || dst == src {
						continue
					}
					d, ok := moveElectron(c, src, dst)
					if !ok {
						continue
					}
					key := d.key()
					if _, dup := seen[key]; dup {
						continue
					}
					seen[key] = struct{}{}
					next = append(next, d)
				}
			}
		}
		all = append(all, next...)
		level = next
	}

	out := make([]*Configuration[O], 0, len(all))
	for _, c := range all {
		n := excitationCount(cfg, c)
		if n < o.MinExcitations || n > o.MaxExcitations {
			continue
		}
		if o.KeepParity && c.Parity() != refParity {
			continue
		}
		if !withinBounds(c, sources, lo, hi) {
			continue
		}
		out = append(out, c)
	}
	return out, nil
}

func occupancyBounds[O orbital.Subshell[O]](active *Configuration[O], o ExcitationOptions) (lo, hi []int, err error) {
	n := active.Len()
	lo, hi = make([]int, n), make([]int, n)
	for i, e := range active.entries {
		hi[i] = e.Orbital.Degeneracy()
	}
	if o.MinOccupancy != nil {
		if len(o.MinOccupancy) != n {
			return nil, nil, fmt.Errorf("%w: %d minimum occupancies for %d active subshells",
				ErrInvalidOccupancy, len(o.MinOccupancy), n)
		}
		copy(lo, o.MinOccupancy)
	}
	if o.MaxOccupancy != nil {
		if len(o.MaxOccupancy) != n {
			return nil, nil, fmt.Errorf("%w: %d maximum occupancies for %d active subshells",
				ErrInvalidOccupancy, len(o.MaxOccupancy), n)
		}
		copy(hi, o.MaxOccupancy)
	}
	for i, e := range active.entries {
		if lo[i] < 0 || hi[i] > e.Orbital.Degeneracy() || lo[i] > hi[i] {
			return nil, nil, fmt.Errorf("%w: bounds [%d, %d] for %s (degeneracy %d)",
				ErrInvalidOccupancy, lo[i], hi[i], e.Orbital, e.Orbital.Degeneracy())
		}
	}
	return lo, hi, nil
}

// moveElectron takes one electron from src and puts it into dst. It fails
// when dst is full or is not open.
func moveElectron[O orbital.Subshell[O]](c *Configuration[O], src, dst O) (*Configuration[O], bool) {
	if e, ok := c.Lookup(dst); ok && (e.State != Open || e.Occupancy >= dst.Degeneracy()) {
		return nil, false
	}
	d, err := c.Remove(src, 1)
	if err != nil {
		return nil, false
	}
	if i := d.index(dst); i >= 0 {
		d.entries[i].Occupancy++
		return d, true
	}
	d.entries = append(d.entries, Entry[O]{Orbital: dst, Occupancy: 1, State: Open})
	d.normalize()
	return d, true
}

// excitationCount is the number of electrons of c outside ref's occupancy.
func excitationCount[O orbital.Subshell[O]](ref, c *Configuration[O]) int {
	n := 0
	for _, e := range c.entries {
		if extra := e.Occupancy - ref.Count(e.Orbital); extra > 0 {
			n += extra
		}
	}
	return n
}

func withinBounds[O orbital.Subshell[O]](c *Configuration[O], orbs []O, lo, hi []int) bool {
	for i, o := range orbs {
		if n := c.Count(o); n < lo[i] || n > hi[i] {
			return false
		}
	}
	return true
}
