// Package configuration models electron configurations: ordered lists of
// distinct subshells, each with an occupancy and a state (open, closed or
// inactive), and the combinatorial generators built on them.
//
// A Configuration is generic over the orbital variant (orbital.Orbital,
// orbital.RelativisticOrbital or orbital.SpinOrbital[...]). By default the
// subshells are kept canonically sorted by the orbital order; pass
// Unsorted() to keep insertion order instead.
//
// Most operations return a new Configuration. The in-place mutators are
// CloseAll, FillAll and Delete; they modify the receiver, which the caller
// must own exclusively. Their pure counterparts are Closed and Filled.
//
// Generators:
//
//	Juxtapose(as, bs)            - every a+b, the ⊗ product of two lists
//	SpinConfigurations(c)        - every assignment of electrons to spin-orbitals
//	Excited(c, targets, opts...) - single, double, ... substitutions
//	RelativisticExpansion(o, N)  - every jj split of a nonrelativistic subshell
//	Substitutions(a, b)          - the orbital moves between two configurations
//
// Noble-gas cores: NobleGas and RelativisticNobleGas build the closed cores
// He through Rn; NobleCoreName and SplitNobleCore recognise them.
//
// Errors:
//
//	ErrDuplicateOrbital  - an orbital listed twice at construction.
//	ErrInvalidOccupancy  - occupancy outside [0, degeneracy] or invalid bounds.
//	ErrInvalidState      - a State other than Open, Closed or Inactive.
//	ErrStateConflict     - merging the same orbital with different states.
//	ErrOrbitalNotFound   - the referenced orbital (or noble gas) is unknown.
//	ErrIndexOutOfRange   - positional access outside [0, Len()).
package configuration
