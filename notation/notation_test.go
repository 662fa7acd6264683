package notation_test

import (
	"testing"

	"github.com/katalvlaran/atomlevels/configuration"
	"github.com/katalvlaran/atomlevels/notation"
	"github.com/katalvlaran/atomlevels/orbital"
	"github.com/katalvlaran/atomlevels/parity"
	"github.com/katalvlaran/atomlevels/term"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func names[T interface{ String() string }](xs []T) []string {
	out := make([]string, len(xs))
	for i, x := range xs {
		out[i] = x.String()
	}
	return out
}

func TestParseOrbital(t *testing.T) {
	for _, s := range []string{"1s", "2p", "10d", "5g", "ks", "lp", "30[21]"} {
		o, err := notation.ParseOrbital(s)
		require.NoError(t, err, s)
		assert.Equal(t, s, o.String())
	}

	o, err := notation.ParseOrbital("3d")
	require.NoError(t, err)
	assert.Equal(t, 2, o.L())
	assert.Equal(t, 10, o.Degeneracy())

	for _, s := range []string{"", "2", "2j", "2p-", "2p3", "[3]s", "2[x]"} {
		_, err := notation.ParseOrbital(s)
		assert.ErrorIs(t, err, notation.ErrSyntax, s)
	}
	_, err = notation.ParseOrbital("2d")
	assert.ErrorIs(t, err, orbital.ErrInvalidOrbital)
	_, err = notation.ParseOrbital("0s")
	assert.ErrorIs(t, err, orbital.ErrInvalidOrbital)
}

func TestParseRelativisticOrbital(t *testing.T) {
	for _, s := range []string{"1s", "2p-", "2p", "4f-", "kd-"} {
		o, err := notation.ParseRelativisticOrbital(s)
		require.NoError(t, err, s)
		assert.Equal(t, s, o.String())
	}
	o, err := notation.ParseRelativisticOrbital("2p-")
	require.NoError(t, err)
	assert.Equal(t, 1, o.Kappa())
	assert.Equal(t, 2, o.Degeneracy())

	_, err = notation.ParseRelativisticOrbital("2s-")
	assert.ErrorIs(t, err, orbital.ErrInvalidOrbital)
	_, err = notation.ParseRelativisticOrbital("2p--")
	assert.ErrorIs(t, err, notation.ErrSyntax)
}

func TestParseKappa(t *testing.T) {
	for s, want := range map[string]int{"s": -1, "p-": 1, "p": -2, "d-": 2, "d": -3, "f": -4} {
		k, err := notation.ParseKappa(s)
		require.NoError(t, err, s)
		assert.Equal(t, want, k, s)
	}
	_, err := notation.ParseKappa("s-")
	assert.ErrorIs(t, err, orbital.ErrInvalidOrbital)
	_, err = notation.ParseKappa("j")
	assert.ErrorIs(t, err, notation.ErrSyntax)
}

func TestParseOrbitals(t *testing.T) {
	os, err := notation.ParseOrbitals("6[s-p] 5[d]")
	require.NoError(t, err)
	assert.Equal(t, []string{"5d", "6s", "6p"}, names(os))

	os, err = notation.ParseOrbitals("k[0,2-3]")
	require.NoError(t, err)
	assert.Equal(t, []string{"ks", "kd", "kf"}, names(os))

	os, err = notation.ParseOrbitals("1-3[s-d] 2p")
	require.NoError(t, err)
	assert.Equal(t, []string{"1s", "2s", "2p", "3s", "3p", "3d"}, names(os))

	_, err = notation.ParseOrbitals("2[d]")
	assert.ErrorIs(t, err, orbital.ErrInvalidOrbital)
	_, err = notation.ParseOrbitals("3-1[s]")
	assert.ErrorIs(t, err, notation.ErrSyntax)
	_, err = notation.ParseOrbitals("5[d-s]")
	assert.ErrorIs(t, err, notation.ErrSyntax)
	_, err = notation.ParseOrbitals("")
	assert.ErrorIs(t, err, notation.ErrSyntax)

	rs, err := notation.ParseRelativisticOrbitals("2[s-p] 3d-")
	require.NoError(t, err)
	assert.Equal(t, []string{"2s", "2p-", "2p", "3d-"}, names(rs))
}

func TestParseConfiguration(t *testing.T) {
	c, err := notation.ParseConfiguration("1s2 2s2 2p6 3s")
	require.NoError(t, err)
	assert.Equal(t, 11, c.NumElectrons())

	c, err = notation.ParseConfiguration("[Ne] 3s2 3p")
	require.NoError(t, err)
	assert.Equal(t, "1s2c 2s2c 2p6c 3s2 3p", c.String())
	assert.Equal(t, parity.Odd, c.Parity())

	c, err = notation.ParseConfiguration("2p⁶ 1s² 2s²i")
	require.NoError(t, err)
	assert.Equal(t, "1s2 2s2i 2p6", c.String())

	c, err = notation.ParseConfiguration("2p 1s", configuration.Unsorted())
	require.NoError(t, err)
	assert.Equal(t, "2p 1s", c.String())

	c, err = notation.ParseConfiguration("∅")
	require.NoError(t, err)
	assert.Zero(t, c.Len())

	_, err = notation.ParseConfiguration("1s3")
	assert.ErrorIs(t, err, configuration.ErrInvalidOccupancy)
	_, err = notation.ParseConfiguration("1s 1s")
	assert.ErrorIs(t, err, configuration.ErrDuplicateOrbital)
	_, err = notation.ParseConfiguration("1s2x")
	assert.ErrorIs(t, err, notation.ErrSyntax)
	_, err = notation.ParseConfiguration("[Og]")
	assert.ErrorIs(t, err, configuration.ErrOrbitalNotFound)

	r, err := notation.ParseRelativisticConfiguration("[Ne] 3s2 3p-2 3p")
	require.NoError(t, err)
	assert.Equal(t, "1s2c 2s2c 2p-2c 2p4c 3s2 3p-2 3p", r.String())
}

func TestRoundTrip(t *testing.T) {
	for _, s := range []string{
		"1s2 2s2 2p6",
		"1sc 2s 2p",
		"1s2i 2p3 ks",
		"[Ar] 3d10 4s2 4p",
		"[Xe] 4f14 5d 6s2",
		"[He]",
		"∅",
	} {
		c, err := notation.ParseConfiguration(s)
		require.NoError(t, err, s)
		assert.Equal(t, s, notation.FormatConfiguration(c), s)
	}

	for _, s := range []string{"[Kr] 4d-4 4d6 5s2 5p-2 5p3", "1s 2p-"} {
		c, err := notation.ParseRelativisticConfiguration(s)
		require.NoError(t, err, s)
		assert.Equal(t, s, notation.FormatConfiguration(c), s)
	}

	for _, s := range []string{"1S", "2Po", "3P", "4F", "2Do", "3[3/2]o", "10K"} {
		tm, err := notation.ParseTerm(s)
		require.NoError(t, err, s)
		assert.Equal(t, s, tm.String(), s)
	}
}

func TestParseTerm(t *testing.T) {
	tm, err := notation.ParseTerm("4Fo")
	require.NoError(t, err)
	assert.Equal(t, 3, tm.L.Twice()/2)
	assert.Equal(t, 3, tm.S.Twice())
	assert.Equal(t, parity.Odd, tm.Parity)
	assert.Equal(t, 4, tm.Multiplicity())

	for _, s := range []string{"", "P", "2p", "2Px", "0S", "2[1/3]", "2[1"} {
		_, err := notation.ParseTerm(s)
		assert.ErrorIs(t, err, notation.ErrSyntax, s)
	}
	_, err = notation.ParseTerm("2[-1]")
	assert.ErrorIs(t, err, term.ErrInvalidTerm)

	j, err := notation.ParseJTerm("5/2")
	require.NoError(t, err)
	assert.Equal(t, "5/2", j.String())
	_, err = notation.ParseJTerm("-1/2")
	assert.ErrorIs(t, err, notation.ErrSyntax)

	p, err := notation.ParseParity("odd")
	require.NoError(t, err)
	assert.Equal(t, parity.Odd, p)
	_, err = notation.ParseParity("up")
	assert.ErrorIs(t, err, parity.ErrInvalidParity)
}
