package term_test

import (
	"github.com/katalvlaran/atomlevels/halfint"
	"github.com/katalvlaran/atomlevels/orbital"
	"github.com/katalvlaran/atomlevels/parity"
	"github.com/katalvlaran/atomlevels/term"
)

func orb(n, l int) orbital.Orbital { return orbital.Must(orbital.New(orbital.N(n), l)) }

func rorb(n, kappa int) orbital.RelativisticOrbital {
	return orbital.Must(orbital.NewRelativistic(orbital.N(n), kappa))
}

// lsTerm builds ²ˢ⁺¹L from a doubled spin.
func lsTerm(L, twoS int, p parity.Parity) term.Term {
	return orbital.Must(term.New(halfint.Int(L), halfint.Half(twoS), p))
}

func names[T interface{ String() string }](xs []T) []string {
	out := make([]string, len(xs))
	for i, x := range xs {
		out[i] = x.String()
	}
	return out
}
