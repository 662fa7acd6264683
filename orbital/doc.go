// Package orbital defines the single-particle labels that configurations are
// built from.
//
// Three variants share one capability set, expressed as the Subshell
// constraint:
//
//	Orbital             - n and ℓ; a nonrelativistic subshell of 2(2ℓ+1) states.
//	RelativisticOrbital - n and κ; a jj subshell of 2j+1 states, j = ℓ ± 1/2.
//	SpinOrbital[O]      - an Orbital or RelativisticOrbital with every
//	                      projection quantum number fixed (mℓ, ms or mj).
//
// The principal quantum number is either a positive integer (bound orbital)
// or an opaque continuum label such as "k"; continuum orbitals sort after
// every bound one.
//
// Ordering (Compare) follows the order subshells appear in a configuration:
// n first, then ℓ, then j for relativistic orbitals, so 2p- < 2p < 3s.
//
// Errors:
//
//	ErrInvalidOrbital - n <= 0, ℓ < 0, ℓ >= n, κ == 0, j != ℓ ± 1/2, or a
//	                    projection outside the orbital's range.
package orbital
