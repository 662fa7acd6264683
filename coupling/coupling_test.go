package coupling_test

import (
	"testing"

	"github.com/katalvlaran/atomlevels/configuration"
	"github.com/katalvlaran/atomlevels/coupling"
	"github.com/katalvlaran/atomlevels/halfint"
	"github.com/katalvlaran/atomlevels/orbital"
	"github.com/katalvlaran/atomlevels/parity"
	"github.com/katalvlaran/atomlevels/term"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func orb(n, l int) orbital.Orbital { return orbital.Must(orbital.New(orbital.N(n), l)) }

func rorb(n, kappa int) orbital.RelativisticOrbital {
	return orbital.Must(orbital.NewRelativistic(orbital.N(n), kappa))
}

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

func lsConfig(t *testing.T, pairs ...int) *configuration.Configuration[orbital.Orbital] {
	t.Helper()
	var es []configuration.Entry[orbital.Orbital]
	for i := 0; i < len(pairs); i += 3 {
		es = append(es, configuration.Entry[orbital.Orbital]{Orbital: orb(pairs[i], pairs[i+1]), Occupancy: pairs[i+2]})
	}
	c, err := configuration.New(es)
	require.NoError(t, err)
	return c
}

func TestCouple_TripletPWithDoubletS(t *testing.T) {
	got := coupling.Couple(lsTerm(1, 2, parity.Odd), lsTerm(0, 1, parity.Even))
	assert.Equal(t, []string{"2Po", "4Po"}, names(got))
}

func TestCoupleAll_KeepsDuplicates(t *testing.T) {
	s := lsTerm(0, 1, parity.Even)
	got := coupling.CoupleAll([]term.Term{s, s}, []term.Term{s})
	assert.Equal(t, []string{"1S", "3S", "1S", "3S"}, names(got))
}

func TestFinalTerms(t *testing.T) {
	assert.Nil(t, coupling.FinalTerms[term.Term](nil))

	one := []term.Term{lsTerm(2, 0, parity.Even)}
	assert.Equal(t, []string{"1D"}, names(coupling.FinalTerms([][]term.Term{one})))

	p2 := []term.Term{lsTerm(0, 0, parity.Even), lsTerm(2, 0, parity.Even), lsTerm(1, 2, parity.Even)}
	p1 := []term.Term{lsTerm(1, 1, parity.Odd)}
	assert.Equal(t, []string{
		"2Po",
		"2Po", "2Do", "2Fo",
		"2So", "4So", "2Po", "4Po", "2Do", "4Do",
	}, names(coupling.FinalTerms([][]term.Term{p2, p1})))
}

func TestTerms_Configuration(t *testing.T) {
	ts, err := coupling.Terms(lsConfig(t, 1, 0, 2, 2, 0, 1, 2, 1, 1))
	require.NoError(t, err)
	assert.Equal(t, []string{"1Po", "3Po"}, names(ts))

	ts, err = coupling.Terms(lsConfig(t, 2, 1, 2, 3, 1, 1))
	require.NoError(t, err)
	assert.Len(t, ts, 10)

	ts, err = coupling.Terms(configuration.Empty[orbital.Orbital]())
	require.NoError(t, err)
	assert.Equal(t, []string{"1S"}, names(ts))
}

func TestChains(t *testing.T) {
	chains, err := coupling.Chains(lsConfig(t, 1, 0, 1, 2, 1, 1))
	require.NoError(t, err)
	assert.Equal(t, []string{
		"1S -[2S_1]-> 2S -[2Po_1]-> 1Po",
		"1S -[2S_1]-> 2S -[2Po_1]-> 3Po",
	}, names(chains))
	assert.Equal(t, "3Po", chains[1].Final().String())

	chains, err = coupling.Chains(configuration.Empty[orbital.Orbital]())
	require.NoError(t, err)
	require.Len(t, chains, 1)
	assert.Equal(t, "1S", chains[0].String())
}

func TestChains_MatchFinalTerms(t *testing.T) {
	e := term.NewEngine()
	for _, c := range []*configuration.Configuration[orbital.Orbital]{
		lsConfig(t, 2, 1, 2, 3, 1, 1),
		lsConfig(t, 3, 2, 3, 4, 0, 1),
		lsConfig(t, 2, 1, 3, 3, 2, 2),
	} {
		ts, err := coupling.Terms(c, coupling.WithEngine(e))
		require.NoError(t, err)
		chains, err := coupling.Chains(c, coupling.WithEngine(e))
		require.NoError(t, err)
		require.Len(t, chains, len(ts), c.String())

		// Same multiset of final terms.
		count := map[term.Term]int{}
		for _, x := range ts {
			count[x]++
		}
		for _, ch := range chains {
			count[ch.Final()]--
			assert.Len(t, ch.Terms, c.Len()+1)
			assert.Len(t, ch.Intermediate, c.Len())
		}
		for x, n := range count {
			assert.Zero(t, n, "%s in %s", x, c)
		}
	}
	assert.Positive(t, e.CacheLen())
}

func TestIntermediateCouplings_KeepsDistinctParents(t *testing.T) {
	// Two ²D of d³ couple with ²S into the same final terms along two chains.
	its, err := term.IntermediateTerms(orb(3, 2), 3)
	require.NoError(t, err)
	s, err := term.IntermediateTerms(orb(4, 0), 1)
	require.NoError(t, err)

	chains := coupling.IntermediateCouplings([][]term.IntermediateTerm[term.Term]{its, s}, term.Singlet())
	var viaD []string
	for _, ch := range chains {
		if ch.Final() == lsTerm(2, 0, parity.Even) {
			viaD = append(viaD, ch.String())
		}
	}
	assert.Equal(t, []string{
		"1S -[2D_1]-> 2D -[2S_1]-> 1D",
		"1S -[2D_3]-> 2D -[2S_1]-> 1D",
	}, viaD)
}

func TestJTerms(t *testing.T) {
	c, err := configuration.New([]configuration.Entry[orbital.RelativisticOrbital]{
		{Orbital: rorb(2, 1), Occupancy: 1},
		{Orbital: rorb(2, -2), Occupancy: 1},
	})
	require.NoError(t, err)
	js, err := coupling.JTerms(c)
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2"}, names(js))

	chains, err := coupling.JChains(c)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"0 -[1/2_1]-> 1/2 -[3/2_1]-> 1",
		"0 -[1/2_1]-> 1/2 -[3/2_1]-> 2",
	}, names(chains))

	js, err = coupling.JTerms(configuration.Empty[orbital.RelativisticOrbital]())
	require.NoError(t, err)
	assert.Equal(t, []string{"0"}, names(js))
}

func TestWithEngine_Nil(t *testing.T) {
	assert.Panics(t, func() { coupling.WithEngine(nil) })
}
