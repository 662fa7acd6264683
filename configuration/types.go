package configuration

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/atomlevels/orbital"
)

// Sentinel errors for configuration operations.
var (
	// ErrDuplicateOrbital indicates an orbital listed more than once.
	ErrDuplicateOrbital = errors.New("configuration: duplicate orbital")

	// ErrInvalidOccupancy indicates an occupancy outside [0, degeneracy] or
	// inconsistent occupancy bounds.
	ErrInvalidOccupancy = errors.New("configuration: invalid occupancy")

	// ErrStateConflict indicates that the same orbital carries different
	// states in two operands being merged.
	ErrStateConflict = errors.New("configuration: conflicting orbital states")

	// ErrInvalidState indicates a State value other than Open, Closed, Inactive.
	ErrInvalidState = errors.New("configuration: invalid orbital state")

	// ErrOrbitalNotFound indicates that a referenced orbital is absent.
	ErrOrbitalNotFound = errors.New("configuration: orbital not found")

	// ErrIndexOutOfRange indicates a positional access outside the configuration.
	ErrIndexOutOfRange = errors.New("configuration: index out of range")
)

// State marks how a subshell takes part in a calculation.
type State uint8

const (
	// Open subshells are active: electrons may be excited out of them.
	Open State = iota
	// Closed subshells form the core.
	Closed
	// Inactive subshells are part of the peel but frozen.
	Inactive
)

// Valid reports whether s is one of the three states.
func (s State) Valid() bool { return s <= Inactive }

// Suffix returns the canonical string suffix: "", "c" or "i".
func (s State) Suffix() string {
	switch s {
	case Closed:
		return "c"
	case Inactive:
		return "i"
	}
	return ""
}

// String returns "open", "closed" or "inactive".
func (s State) String() string {
	switch s {
	case Open:
		return "open"
	case Closed:
		return "closed"
	case Inactive:
		return "inactive"
	}
	return fmt.Sprintf("State(%d)", uint8(s))
}

// Entry is one (orbital, occupancy, state) triple of a configuration.
type Entry[O orbital.Subshell[O]] struct {
	Orbital   O
	Occupancy int
	State     State
}

// String renders the canonical "<orbital><occupancy><suffix>" form, with the
// occupancy omitted when it is 1.
func (e Entry[O]) String() string {
	s := e.Orbital.String()
	if e.Occupancy != 1 {
		s += fmt.Sprintf("%d", e.Occupancy)
	}
	return s + e.State.Suffix()
}

// Option configures construction of a Configuration.
type Option func(*options)

type options struct {
	sorted bool
}

// Unsorted keeps subshells in insertion order instead of sorting them.
func Unsorted() Option {
	return func(o *options) { o.sorted = false }
}

// Sorted requests canonical ordering (the default).
func Sorted() Option {
	return func(o *options) { o.sorted = true }
}

func newOptions(opts []Option) options {
	o := options{sorted: true}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
