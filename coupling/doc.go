// Package coupling combines subshell terms into the terms of a whole
// configuration.
//
// 🚀 What is coupling?
//
//	Electrons in different subshells are not equivalent, so their terms
//	combine by the vector model: L and S (or J) run over every value allowed
//	by the triangle rule and parities multiply. Coupling the subshells of a
//	configuration one after another, left to right, yields its final terms;
//	recording every intermediate result yields the coupling chains from which
//	configuration state functions are built.
//
// ✨ Key features:
//   - CoupleAll: the vector product of two term lists, duplicates kept
//   - FinalTerms: left fold of CoupleAll over per-subshell term lists
//   - IntermediateCouplings: every coupling chain, one per path through the
//     subshell intermediate terms and their coupled results
//   - Terms, JTerms, IntermediateTerms, Chains, ...: the same for
//     configurations, with per-subshell terms from a term.Engine
//
// Everything is generic over term.Coupled, so LS (term.Term) and jj
// (term.JTerm) coupling share one implementation.
//
// ⚙️ Usage:
//
//	ts, err := coupling.Terms(cfg)                        // fresh engine
//	ts, err = coupling.Terms(cfg, coupling.WithEngine(e)) // shared memo
//
// Ordering: FinalTerms lists the results of the first term of the left list
// before those of the second, and within one pair follows the pair's Couple
// order. A chain list is ordered the same way at every step.
package coupling
