package coupling

import (
	"strings"

	"github.com/katalvlaran/atomlevels/term"
)

// Couple returns a ⊗ b. It is a.Couple(b), spelled as a function.
func Couple[T term.Coupled[T]](a, b T) []T {
	return a.Couple(b)
}

// CoupleAll couples every element of as with every element of bs, as-major,
// concatenating the results. A term reached from two parent pairs is listed
// twice.
func CoupleAll[T term.Coupled[T]](as, bs []T) []T {
	var out []T
	for _, a := range as {
		for _, b := range bs {
			out = append(out, a.Couple(b)...)
		}
	}
	return out
}

// FinalTerms folds CoupleAll over lists from the left, starting with the
// first list. It returns nil for no lists.
func FinalTerms[T term.Coupled[T]](lists [][]T) []T {
	if len(lists) == 0 {
		return nil
	}
	acc := append([]T(nil), lists[0]...)
	for _, l := range lists[1:] {
		acc = CoupleAll(acc, l)
	}
	return acc
}

// Chain is one coupling path through a configuration. Terms[0] is the
// starting term and Terms[i+1] the result of coupling Terms[i] with
// Intermediate[i], the intermediate term chosen for subshell i.
type Chain[T term.Coupled[T]] struct {
	Terms        []T
	Intermediate []term.IntermediateTerm[T]
}

// Final returns the last term of the chain.
func (c Chain[T]) Final() T { return c.Terms[len(c.Terms)-1] }

// String renders e.g. "1S -[3P_2]-> 3P -[2S_1]-> 2P".
func (c Chain[T]) String() string {
	var b strings.Builder
	b.WriteString(c.Terms[0].String())
	for i, it := range c.Intermediate {
		b.WriteString(" -[")
		b.WriteString(it.String())
		b.WriteString("]-> ")
		b.WriteString(c.Terms[i+1].String())
	}
	return b.String()
}

// IntermediateCouplings enumerates every coupling chain that starts at t0
// and couples, left to right, one intermediate term of each subshell.
// Chains that differ in any chosen intermediate term or any intermediate
// result are kept apart even when their final terms agree. With no
// subshells the single chain [t0] is returned.
func IntermediateCouplings[T term.Coupled[T]](its [][]term.IntermediateTerm[T], t0 T) []Chain[T] {
	chains := []Chain[T]{{Terms: []T{t0}}}
	for _, shell := range its {
		var next []Chain[T]
		for _, c := range chains {
			last := c.Final()
			for _, it := range shell {
				for _, t := range last.Couple(it.Term) {
					next = append(next, c.extend(it, t))
				}
			}
		}
		chains = next
	}
	return chains
}

func (c Chain[T]) extend(it term.IntermediateTerm[T], t T) Chain[T] {
	terms := make([]T, len(c.Terms)+1)
	copy(terms, c.Terms)
	terms[len(c.Terms)] = t
	ints := make([]term.IntermediateTerm[T], len(c.Intermediate)+1)
	copy(ints, c.Intermediate)
	ints[len(c.Intermediate)] = it
	return Chain[T]{Terms: terms, Intermediate: ints}
}
