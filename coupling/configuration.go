package coupling

import (
	"github.com/katalvlaran/atomlevels/configuration"
	"github.com/katalvlaran/atomlevels/orbital"
	"github.com/katalvlaran/atomlevels/term"
)

// SubshellTerms returns the LS terms of every subshell of c, in
// configuration order.
func SubshellTerms(c *configuration.Configuration[orbital.Orbital], opts ...Option) ([][]term.Term, error) {
	e := engineFor(opts)
	out := make([][]term.Term, 0, c.Len())
	for _, en := range c.Entries() {
		ts, err := e.Terms(en.Orbital, en.Occupancy)
		if err != nil {
			return nil, err
		}
		out = append(out, ts)
	}
	return out, nil
}

// Terms returns the final LS terms of c, duplicates kept. A configuration
// without subshells gives ¹S.
func Terms(c *configuration.Configuration[orbital.Orbital], opts ...Option) ([]term.Term, error) {
	lists, err := SubshellTerms(c, opts...)
	if err != nil {
		return nil, err
	}
	if len(lists) == 0 {
		return []term.Term{term.Singlet()}, nil
	}
	return FinalTerms(lists), nil
}

// IntermediateTerms returns, per subshell of c in configuration order, the
// subshell's terms with seniority.
func IntermediateTerms(c *configuration.Configuration[orbital.Orbital], opts ...Option) ([][]term.IntermediateTerm[term.Term], error) {
	e := engineFor(opts)
	out := make([][]term.IntermediateTerm[term.Term], 0, c.Len())
	for _, en := range c.Entries() {
		its, err := e.IntermediateTerms(en.Orbital, en.Occupancy)
		if err != nil {
			return nil, err
		}
		out = append(out, its)
	}
	return out, nil
}

// Chains returns every LS coupling chain of c starting from ¹S.
func Chains(c *configuration.Configuration[orbital.Orbital], opts ...Option) ([]Chain[term.Term], error) {
	its, err := IntermediateTerms(c, opts...)
	if err != nil {
		return nil, err
	}
	return IntermediateCouplings(its, term.Singlet()), nil
}

// SubshellJTerms returns the J values of every subshell of c, in
// configuration order.
func SubshellJTerms(c *configuration.Configuration[orbital.RelativisticOrbital], opts ...Option) ([][]term.JTerm, error) {
	e := engineFor(opts)
	out := make([][]term.JTerm, 0, c.Len())
	for _, en := range c.Entries() {
		ts, err := e.JTerms(en.Orbital, en.Occupancy)
		if err != nil {
			return nil, err
		}
		out = append(out, ts)
	}
	return out, nil
}

// JTerms returns the final J values of c, duplicates kept. A configuration
// without subshells gives J=0.
func JTerms(c *configuration.Configuration[orbital.RelativisticOrbital], opts ...Option) ([]term.JTerm, error) {
	lists, err := SubshellJTerms(c, opts...)
	if err != nil {
		return nil, err
	}
	if len(lists) == 0 {
		return []term.JTerm{{}}, nil
	}
	return FinalTerms(lists), nil
}

// JIntermediateTerms returns, per subshell of c, the J values with
// seniority.
func JIntermediateTerms(c *configuration.Configuration[orbital.RelativisticOrbital], opts ...Option) ([][]term.IntermediateTerm[term.JTerm], error) {
	e := engineFor(opts)
	out := make([][]term.IntermediateTerm[term.JTerm], 0, c.Len())
	for _, en := range c.Entries() {
		its, err := e.JIntermediateTerms(en.Orbital, en.Occupancy)
		if err != nil {
			return nil, err
		}
		out = append(out, its)
	}
	return out, nil
}

// JChains returns every jj coupling chain of c starting from J=0.
func JChains(c *configuration.Configuration[orbital.RelativisticOrbital], opts ...Option) ([]Chain[term.JTerm], error) {
	its, err := JIntermediateTerms(c, opts...)
	if err != nil {
		return nil, err
	}
	return IntermediateCouplings(its, term.JTerm{}), nil
}
