package term

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/atomlevels/halfint"
	"github.com/katalvlaran/atomlevels/orbital"
	"github.com/katalvlaran/atomlevels/parity"
)

// Sentinel errors for term construction and enumeration.
var (
	// ErrInvalidOccupancy indicates N outside [0, subshell capacity].
	ErrInvalidOccupancy = errors.New("term: occupancy outside subshell capacity")

	// ErrInvalidTerm indicates quantum numbers that do not form a term.
	ErrInvalidTerm = fmt.Errorf("term: invalid term (%w)", halfint.ErrDomain)
)

// Coupled is implemented by every kind of term that can be coupled to
// another of its kind: LS Terms and jj JTerms.
type Coupled[T any] interface {
	comparable
	fmt.Stringer

	// Couple returns every term allowed by the vector model when the two
	// terms belong to non-equivalent electrons.
	Couple(other T) []T
	// Compare gives the listing order.
	Compare(other T) int
}

// Term is an LS term ²ˢ⁺¹L with parity.
type Term struct {
	L      halfint.HalfInt
	S      halfint.HalfInt
	Parity parity.Parity
}

// New validates and returns a Term.
func New(l, s halfint.HalfInt, p parity.Parity) (Term, error) {
	if l.Twice() < 0 || s.Twice() < 0 {
		return Term{}, fmt.Errorf("%w: L=%s S=%s must be non-negative", ErrInvalidTerm, l, s)
	}
	if !p.Valid() {
		return Term{}, fmt.Errorf("%w: parity %d", ErrInvalidTerm, int(p))
	}
	return Term{L: l, S: s, Parity: p}, nil
}

// Singlet returns ¹S (even), the identity of LS coupling.
func Singlet() Term { return Term{Parity: parity.Even} }

// Multiplicity returns 2S+1.
func (t Term) Multiplicity() int { return t.S.Twice() + 1 }

// JValues returns |L-S|..L+S.
func (t Term) JValues() []halfint.HalfInt { return halfint.Triangle(t.L, t.S) }

// Couple returns the terms of t ⊗ o, L-major and S-minor, with parity
// t.Parity·o.Parity.
func (t Term) Couple(o Term) []Term {
	ls := halfint.Triangle(t.L, o.L)
	ss := halfint.Triangle(t.S, o.S)
	p := t.Parity.Mul(o.Parity)
	out := make([]Term, 0, len(ls)*len(ss))
	for _, l := range ls {
		for _, s := range ss {
			out = append(out, Term{L: l, S: s, Parity: p})
		}
	}
	return out
}

// Compare orders by S, then L, then parity (odd before even).
func (t Term) Compare(o Term) int {
	if c := t.S.Cmp(o.S); c != 0 {
		return c
	}
	if c := t.L.Cmp(o.L); c != 0 {
		return c
	}
	return t.Parity.Compare(o.Parity)
}

// String renders the canonical "<2S+1><L><o?>" form, e.g. "2Po" or "1S".
func (t Term) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d", t.Multiplicity())
	if n, ok := t.L.Integer(); ok {
		b.WriteString(strings.ToUpper(orbital.Letter(n)))
	} else {
		fmt.Fprintf(&b, "[%s]", t.L)
	}
	if t.Parity == parity.Odd {
		b.WriteByte('o')
	}
	return b.String()
}

// JTerm is a jj-coupled term: only the total J is tracked and parity is
// treated as trivial.
type JTerm struct {
	J halfint.HalfInt
}

// Couple returns |J1-J2|..J1+J2.
func (t JTerm) Couple(o JTerm) []JTerm {
	js := halfint.Triangle(t.J, o.J)
	out := make([]JTerm, len(js))
	for i, j := range js {
		out[i] = JTerm{J: j}
	}
	return out
}

// Compare orders by J.
func (t JTerm) Compare(o JTerm) int { return t.J.Cmp(o.J) }

// String renders J, e.g. "3/2".
func (t JTerm) String() string { return t.J.String() }

// IntermediateTerm is a subshell term together with its seniority ν, the
// lowest occupancy at which that term first appears. Repeated terms of one
// subshell are told apart by ν.
type IntermediateTerm[T Coupled[T]] struct {
	Term      T
	Seniority int
}

// Compare orders by seniority, then by term.
func (it IntermediateTerm[T]) Compare(o IntermediateTerm[T]) int {
	switch {
	case it.Seniority < o.Seniority:
		return -1
	case it.Seniority > o.Seniority:
		return 1
	}
	return it.Term.Compare(o.Term)
}

// String renders the term followed by "_ν", e.g. "2D_3".
func (it IntermediateTerm[T]) String() string {
	return fmt.Sprintf("%s_%d", it.Term, it.Seniority)
}
