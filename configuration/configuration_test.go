package configuration_test

import (
	"testing"

	"github.com/katalvlaran/atomlevels/configuration"
	"github.com/katalvlaran/atomlevels/orbital"
	"github.com/katalvlaran/atomlevels/parity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Validation(t *testing.T) {
	_, err := configuration.New([]configuration.Entry[orbital.Orbital]{
		{Orbital: orb(1, 0), Occupancy: 2},
		{Orbital: orb(1, 0), Occupancy: 1},
	})
	assert.ErrorIs(t, err, configuration.ErrDuplicateOrbital)

	_, err = configuration.New([]configuration.Entry[orbital.Orbital]{{Orbital: orb(2, 1), Occupancy: 7}})
	assert.ErrorIs(t, err, configuration.ErrInvalidOccupancy)

	_, err = configuration.New([]configuration.Entry[orbital.Orbital]{{Orbital: orb(2, 1), Occupancy: -1}})
	assert.ErrorIs(t, err, configuration.ErrInvalidOccupancy)

	_, err = configuration.New([]configuration.Entry[orbital.Orbital]{{Orbital: orb(2, 1), Occupancy: 1, State: 9}})
	assert.ErrorIs(t, err, configuration.ErrInvalidState)

	_, err = configuration.FromLists([]orbital.Orbital{orb(1, 0)}, []int{1, 2}, nil)
	assert.ErrorIs(t, err, configuration.ErrInvalidOccupancy)
}

func TestNew_SortedAndUnsorted(t *testing.T) {
	es := []configuration.Entry[orbital.Orbital]{
		{Orbital: orb(2, 1), Occupancy: 6},
		{Orbital: orb(1, 0), Occupancy: 2, State: configuration.Closed},
		{Orbital: orb(2, 0), Occupancy: 2},
	}
	sorted, err := configuration.New(es)
	require.NoError(t, err)
	assert.True(t, sorted.IsSorted())
	assert.Equal(t, "1s2c 2s2 2p6", sorted.String())

	unsorted, err := configuration.New(es, configuration.Unsorted())
	require.NoError(t, err)
	assert.False(t, unsorted.IsSorted())
	assert.Equal(t, "2p6 1s2c 2s2", unsorted.String())

	assert.False(t, sorted.Equal(unsorted))
	assert.True(t, sorted.Similar(unsorted))
}

func TestConfiguration_Accessors(t *testing.T) {
	c := cfg(t, orb(1, 0), 2, orb(2, 0), 2, orb(2, 1), 3)
	assert.Equal(t, 3, c.Len())
	assert.Equal(t, 7, c.NumElectrons())
	assert.Equal(t, 3, c.Count(orb(2, 1)))
	assert.Equal(t, 0, c.Count(orb(3, 0)))
	assert.True(t, c.Contains(orb(2, 0)))
	assert.False(t, c.Contains(orb(3, 2)))
	assert.Equal(t, parity.Odd, c.Parity())
	assert.Equal(t, []string{"1s", "2s", "2p"}, strs(c.Orbitals()))

	e, err := c.At(2)
	require.NoError(t, err)
	assert.Equal(t, "2p3", e.String())
	_, err = c.At(3)
	assert.ErrorIs(t, err, configuration.ErrIndexOutOfRange)

	s, err := c.Slice(1, 3)
	require.NoError(t, err)
	assert.Equal(t, "2s2 2p3", s.String())
	_, err = c.Slice(2, 1)
	assert.ErrorIs(t, err, configuration.ErrIndexOutOfRange)

	sel, err := c.Select(2, 0)
	require.NoError(t, err)
	assert.Equal(t, "1s2 2p3", sel.String())
	_, err = c.Select(0, 0)
	assert.ErrorIs(t, err, configuration.ErrDuplicateOrbital)
}

func TestConfiguration_EmptyAndSingle(t *testing.T) {
	e := configuration.Empty[orbital.Orbital]()
	assert.Equal(t, "∅", e.String())
	assert.Equal(t, 0, e.NumElectrons())
	assert.Equal(t, parity.Even, e.Parity())

	s := configuration.Single(orb(3, 2), 1)
	assert.Equal(t, "3d", s.String())
	assert.Panics(t, func() { configuration.Single(orb(3, 2), 11) })
}

func TestConfiguration_NumElectronsIsSum(t *testing.T) {
	cs := []*configuration.Configuration[orbital.Orbital]{
		cfg(t),
		cfg(t, orb(1, 0), 1),
		cfg(t, orb(1, 0), 2, orb(2, 0), 2, orb(2, 1), 6, orb(3, 2), 4),
	}
	for _, c := range cs {
		sum := 0
		for _, e := range c.Entries() {
			sum += e.Occupancy
		}
		assert.Equal(t, sum, c.NumElectrons(), c.String())
	}
}
