package configuration_test

import (
	"testing"

	"github.com/katalvlaran/atomlevels/configuration"
	"github.com/katalvlaran/atomlevels/orbital"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mixedStates(t *testing.T) *configuration.Configuration[orbital.Orbital] {
	t.Helper()
	c, err := configuration.New([]configuration.Entry[orbital.Orbital]{
		{Orbital: orb(1, 0), Occupancy: 2, State: configuration.Closed},
		{Orbital: orb(2, 0), Occupancy: 2, State: configuration.Inactive},
		{Orbital: orb(2, 1), Occupancy: 4},
		{Orbital: orbital.Must(orbital.New(orbital.Continuum("k"), 1)), Occupancy: 1},
	})
	require.NoError(t, err)
	return c
}

func TestPartitions(t *testing.T) {
	c := mixedStates(t)
	assert.Equal(t, "1s2c", c.Core().String())
	assert.Equal(t, "2s2i 2p4 kp", c.Peel().String())
	assert.Equal(t, "2p4 kp", c.Active().String())
	assert.Equal(t, "2s2i", c.Inactive().String())
	assert.Equal(t, "1s2c 2s2i 2p4", c.Bound().String())
	assert.Equal(t, "kp", c.Continuum().String())

	sum, err := c.Core().Add(c.Peel())
	require.NoError(t, err)
	assert.True(t, sum.Similar(c))
}

func TestCloseFill_Idempotent(t *testing.T) {
	c := mixedStates(t)

	closed := c.Closed()
	assert.True(t, closed.Closed().Equal(closed))
	assert.Equal(t, "2p4", c.Active().Entries()[0].String(), "Closed must not mutate the receiver")

	filled := c.Filled()
	assert.True(t, filled.Filled().Equal(filled))
	assert.Equal(t, "1s2c 2s2i 2p6 kp6", filled.String())

	d := c.Clone()
	d.CloseAll()
	assert.True(t, d.Equal(closed))
	d.FillAll()
	d.FillAll()
	assert.Equal(t, "1s2c 2s2c 2p6c kp6c", d.String())
}

func TestDelete(t *testing.T) {
	c := cfg(t, orb(1, 0), 2, orb(2, 0), 1)
	c.Delete(orb(1, 0))
	assert.Equal(t, "2s", c.String())
	c.Delete(orb(3, 0))
	assert.Equal(t, "2s", c.String())
}

func TestAdd(t *testing.T) {
	a := cfg(t, orb(1, 0), 1, orb(2, 1), 2)
	b := cfg(t, orb(1, 0), 1, orb(2, 0), 2)
	sum, err := a.Add(b)
	require.NoError(t, err)
	assert.Equal(t, "1s2 2s2 2p2", sum.String())

	_, err = sum.Add(b)
	assert.ErrorIs(t, err, configuration.ErrInvalidOccupancy)

	closed := a.Closed()
	_, err = closed.Add(b)
	assert.ErrorIs(t, err, configuration.ErrStateConflict)
}

func TestRemove(t *testing.T) {
	c, err := configuration.New([]configuration.Entry[orbital.Orbital]{
		{Orbital: orb(1, 0), Occupancy: 2, State: configuration.Closed},
		{Orbital: orb(2, 0), Occupancy: 1},
	})
	require.NoError(t, err)

	d, err := c.Remove(orb(1, 0), 1)
	require.NoError(t, err)
	assert.Equal(t, "1s 2s", d.String())

	d, err = d.Remove(orb(2, 0), 1)
	require.NoError(t, err)
	assert.Equal(t, "1s", d.String())

	_, err = c.Remove(orb(1, 0), 3)
	assert.ErrorIs(t, err, configuration.ErrInvalidOccupancy)
	_, err = c.Remove(orb(3, 0), 1)
	assert.ErrorIs(t, err, configuration.ErrOrbitalNotFound)
}

func TestReplace(t *testing.T) {
	c := cfg(t, orb(1, 0), 2, orb(2, 0), 1)

	d, err := c.Replace(orb(2, 0), orb(2, 1))
	require.NoError(t, err)
	assert.Equal(t, "1s2 2p", d.String())

	d, err = cfg(t, orb(1, 0), 1, orb(2, 0), 1).Replace(orb(1, 0), orb(2, 0))
	require.NoError(t, err)
	assert.Equal(t, "2s2", d.String())

	same, err := c.Replace(orb(2, 0), orb(2, 0))
	require.NoError(t, err)
	assert.True(t, same.Equal(c))

	_, err = cfg(t, orb(1, 0), 2, orb(2, 0), 2).Replace(orb(1, 0), orb(2, 0))
	assert.ErrorIs(t, err, configuration.ErrInvalidOccupancy)
	_, err = c.Replace(orb(3, 0), orb(2, 0))
	assert.ErrorIs(t, err, configuration.ErrOrbitalNotFound)
}

func TestReplace_Unsorted(t *testing.T) {
	c, err := configuration.New([]configuration.Entry[orbital.Orbital]{
		{Orbital: orb(2, 0), Occupancy: 1},
		{Orbital: orb(1, 0), Occupancy: 2},
	}, configuration.Unsorted())
	require.NoError(t, err)

	inPlace, err := c.Replace(orb(2, 0), orb(3, 2))
	require.NoError(t, err)
	assert.Equal(t, "3d 1s2", inPlace.String())

	appended, err := c.Replace(orb(2, 0), orb(3, 2), configuration.AppendReplacement())
	require.NoError(t, err)
	assert.Equal(t, "1s2 3d", appended.String())
}

func TestJuxtapose(t *testing.T) {
	as := []*configuration.Configuration[orbital.Orbital]{
		cfg(t, orb(1, 0), 2),
		cfg(t, orb(1, 0), 1),
	}
	bs := []*configuration.Configuration[orbital.Orbital]{
		cfg(t, orb(2, 0), 1),
		cfg(t, orb(2, 1), 1),
	}
	out, err := configuration.Juxtapose(as, bs)
	require.NoError(t, err)
	assert.Equal(t, []string{"1s2 2s", "1s2 2p", "1s 2s", "1s 2p"}, strs(out))

	_, err = configuration.Juxtapose(as, as)
	assert.ErrorIs(t, err, configuration.ErrInvalidOccupancy)
}
