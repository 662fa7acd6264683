// Package term enumerates the angular-momentum terms that a subshell of
// equivalent electrons gives rise to.
//
// 🚀 What is a term?
//
//	An LS term ²ˢ⁺¹L (with parity) labels a group of states with well-defined
//	total orbital angular momentum L and total spin S. For N equivalent
//	electrons the Pauli principle removes many (L, S) pairs, and some pairs
//	occur more than once. In jj coupling a subshell of equivalent electrons
//	gives a list of total J values instead.
//
// ✨ Key features:
//   - exact multiplicity of every LS term via Xu's recursive counting of
//     Slater determinants (Engine.X), without listing determinants
//   - jj terms of N equivalent particles by projection counting
//   - seniority labels for repeated terms (IntermediateTerm)
//   - an explicit, concurrency-safe memo cache owned by each Engine,
//     optionally bounded (WithCacheSize)
//
// ⚙️ Usage:
//
//	e := term.NewEngine()
//	ts, err := e.Terms(d, 3) // ²P ²D ²D ²F ²G ²H ⁴P ⁴F
//
// The package-level helpers (Terms, CountTerms, ...) build a fresh Engine
// per call; keep an Engine around when enumerating many subshells.
//
// Errors:
//
//	ErrInvalidOccupancy - N outside [0, degeneracy].
//	ErrInvalidTerm      - negative L or S, invalid parity; wraps halfint.ErrDomain.
package term
