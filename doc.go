// Package atomlevels models atomic electron configurations and computes the
// term symbols they give rise to.
//
// 🚀 What is atomlevels?
//
//	An exact, allocation-light toolkit for the angular-momentum bookkeeping
//	of atomic structure:
//		• Half-integers, parities and orbitals (nℓ, nℓ±, spin-orbitals)
//		• Configurations with open, closed and inactive subshells
//		• LS terms of equivalent electrons via Xu's counting recursion
//		• jj terms, seniority labels and coupling chains
//		• Excited and spin configurations
//		• A text notation for all of the above
//
// ✨ Why atomlevels?
//
//   - Exact – counts come from integer recursion, never from floating point
//   - Generic – one Configuration type for every orbital variant
//   - Explicit caching – each term.Engine owns its memo, optionally bounded
//   - Small dependency surface for library users
//
// Packages, leaves first:
//
//	halfint/       - integers and half-odd-integers, ranges, triangle rule
//	parity/        - the {even, odd} group
//	orbital/       - Orbital, RelativisticOrbital, SpinOrbital and κ helpers
//	term/          - Term, JTerm, IntermediateTerm and the multiplicity Engine
//	configuration/ - Configuration, noble-gas cores, excitations, spin expansion
//	coupling/      - vector coupling, final terms and coupling chains
//	notation/      - parsing and formatting of the textual forms
//
// The atomlevels command (cmd/atomlevels) exposes the same operations on the
// command line.
package atomlevels
