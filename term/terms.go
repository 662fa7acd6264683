package term

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/atomlevels/halfint"
	"github.com/katalvlaran/atomlevels/orbital"
	"github.com/katalvlaran/atomlevels/parity"
)

// ShellTerms returns the LS terms of ℓᴺ, each repeated as often as it
// occurs, ordered by S then L. Empty and filled shells give only ¹S.
// Returns ErrInvalidOccupancy for N outside [0, 2(2ℓ+1)].
func (e *Engine) ShellTerms(l, n int) ([]Term, error) {
	if l < 0 {
		return nil, fmt.Errorf("%w: ℓ=%d is negative", ErrInvalidTerm, l)
	}
	g := 2 * (2*l + 1)
	if n < 0 || n > g {
		return nil, fmt.Errorf("%w: %d electrons in ℓ=%d (capacity %d)", ErrInvalidOccupancy, n, l, g)
	}
	p := parity.Of(l).Pow(n)
	if n == 0 || n == g {
		return []Term{{Parity: p}}, nil
	}
	// ℓᴺ and ℓ^(g-N) have the same terms.
	k := min(n, g-n)
	// Highest M_L: ⌈k/2⌉ spin-up and ⌊k/2⌋ spin-down electrons, each group
	// filling the top mℓ values.
	maxL := xuF((k+1)/2-1, l) + xuF(k/2-1, l)
	var out []Term
	for twoS := k % 2; twoS <= k; twoS += 2 {
		for L := 0; L <= maxL; L++ {
			x := e.X(k, l, twoS, L)
			for i := 0; i < x; i++ {
				out = append(out, Term{L: halfint.Int(L), S: halfint.Half(twoS), Parity: p})
			}
		}
	}
	return out, nil
}

// Terms returns the LS terms of N electrons in orbital o.
func (e *Engine) Terms(o orbital.Orbital, n int) ([]Term, error) {
	return e.ShellTerms(o.L(), n)
}

// CountTerms returns how many times t occurs among the terms of N electrons
// in o. Terms of the wrong parity or with half-integer L count zero.
func (e *Engine) CountTerms(o orbital.Orbital, n int, t Term) (int, error) {
	l := o.L()
	g := o.Degeneracy()
	if n < 0 || n > g {
		return 0, fmt.Errorf("%w: %d electrons in %s", ErrInvalidOccupancy, n, o)
	}
	if t.Parity != parity.Of(l).Pow(n) {
		return 0, nil
	}
	L, ok := t.L.Integer()
	if !ok {
		return 0, nil
	}
	if n == 0 || n == g {
		if t.L.Twice() == 0 && t.S.Twice() == 0 {
			return 1, nil
		}
		return 0, nil
	}
	k := min(n, g-n)
	if t.S.Twice()%2 != k%2 {
		return 0, nil
	}
	return e.X(k, l, t.S.Twice(), L), nil
}

// JTerms returns the total J values of N equivalent particles in the jj
// subshell o, ascending with repeats.
func (e *Engine) JTerms(o orbital.RelativisticOrbital, n int) ([]JTerm, error) {
	return jjTerms(o.J(), n)
}

// jjTerms counts determinants of N particles among the 2j+1 projections by
// total M, then peels off one multiplet per surplus at each J = M.
func jjTerms(j halfint.HalfInt, n int) ([]JTerm, error) {
	g := j.Twice() + 1
	if n < 0 || n > g {
		return nil, fmt.Errorf("%w: %d particles in j=%s (capacity %d)", ErrInvalidOccupancy, n, j, g)
	}
	k := min(n, g-n)
	if k == 0 {
		return []JTerm{{}}, nil
	}
	// counts[c][M2+off] = ways to pick c distinct projections with doubled sum M2.
	maxM2 := k * (j.Twice() - k + 1)
	off := maxM2
	width := 2*maxM2 + 1
	counts := make([][]int, k+1)
	for c := range counts {
		counts[c] = make([]int, width)
	}
	counts[0][off] = 1
	for m2 := -j.Twice(); m2 <= j.Twice(); m2 += 2 {
		for c := k; c >= 1; c-- {
			for s := 0; s < width; s++ {
				if prev := s - m2; prev >= 0 && prev < width {
					counts[c][s] += counts[c-1][prev]
				}
			}
		}
	}
	at := func(m2 int) int {
		if m2 > maxM2 {
			return 0
		}
		return counts[k][m2+off]
	}
	var out []JTerm
	for m2 := k % 2; m2 <= maxM2; m2 += 2 {
		x := at(m2) - at(m2+2)
		for i := 0; i < x; i++ {
			out = append(out, JTerm{J: halfint.Half(m2)})
		}
	}
	return out, nil
}

// IntermediateTerms returns the terms of N electrons in o with seniority,
// ordered by seniority then term.
//
// A term of multiplicity X_N at occupancy N is split by seniority ν = N mod 2,
// ..., N (same parity as N, and ν <= 2(2ℓ+1)-N): X_ν - X_{ν-2} copies carry
// seniority ν.
func (e *Engine) IntermediateTerms(o orbital.Orbital, n int) ([]IntermediateTerm[Term], error) {
	return withSeniority(n, o.Degeneracy(), func(k int) ([]Term, error) {
		return e.ShellTerms(o.L(), k)
	})
}

// JIntermediateTerms is IntermediateTerms for a jj subshell.
func (e *Engine) JIntermediateTerms(o orbital.RelativisticOrbital, n int) ([]IntermediateTerm[JTerm], error) {
	return withSeniority(n, o.Degeneracy(), func(k int) ([]JTerm, error) {
		return jjTerms(o.J(), k)
	})
}

func withSeniority[T Coupled[T]](n, g int, termsAt func(int) ([]T, error)) ([]IntermediateTerm[T], error) {
	if n < 0 || n > g {
		return nil, fmt.Errorf("%w: %d electrons (capacity %d)", ErrInvalidOccupancy, n, g)
	}
	k := min(n, g-n)
	var out []IntermediateTerm[T]
	seen := map[T]int{}
	for nu := k % 2; nu <= k; nu += 2 {
		ts, err := termsAt(nu)
		if err != nil {
			return nil, err
		}
		counts := map[T]int{}
		var order []T
		for _, t := range ts {
			if counts[t] == 0 {
				order = append(order, t)
			}
			counts[t]++
		}
		for _, t := range order {
			for i := seen[t]; i < counts[t]; i++ {
				out = append(out, IntermediateTerm[T]{Term: t, Seniority: nu})
			}
			seen[t] = counts[t]
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Compare(out[j]) < 0 })
	return out, nil
}

// Terms returns the LS terms of N electrons in o using a fresh Engine.
func Terms(o orbital.Orbital, n int) ([]Term, error) {
	return NewEngine().Terms(o, n)
}

// CountTerms counts t among the terms of N electrons in o using a fresh Engine.
func CountTerms(o orbital.Orbital, n int, t Term) (int, error) {
	return NewEngine().CountTerms(o, n, t)
}

// JTerms returns the J values of N particles in the jj subshell o.
func JTerms(o orbital.RelativisticOrbital, n int) ([]JTerm, error) {
	return jjTerms(o.J(), n)
}

// IntermediateTerms returns the seniority-labelled terms of N electrons in o
// using a fresh Engine.
func IntermediateTerms(o orbital.Orbital, n int) ([]IntermediateTerm[Term], error) {
	return NewEngine().IntermediateTerms(o, n)
}

// JIntermediateTerms returns the seniority-labelled J values of N particles
// in the jj subshell o.
func JIntermediateTerms(o orbital.RelativisticOrbital, n int) ([]IntermediateTerm[JTerm], error) {
	return NewEngine().JIntermediateTerms(o, n)
}
