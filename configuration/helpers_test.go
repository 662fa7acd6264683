package configuration_test

import (
	"testing"

	"github.com/katalvlaran/atomlevels/configuration"
	"github.com/katalvlaran/atomlevels/orbital"
	"github.com/stretchr/testify/require"
)

func orb(n, l int) orbital.Orbital { return orbital.Must(orbital.New(orbital.N(n), l)) }

func rorb(n, kappa int) orbital.RelativisticOrbital {
	return orbital.Must(orbital.NewRelativistic(orbital.N(n), kappa))
}

// cfg builds an open configuration from alternating orbital/occupancy pairs.
func cfg(t *testing.T, pairs ...any) *configuration.Configuration[orbital.Orbital] {
	t.Helper()
	var es []configuration.Entry[orbital.Orbital]
	for i := 0; i < len(pairs); i += 2 {
		es = append(es, configuration.Entry[orbital.Orbital]{
			Orbital:   pairs[i].(orbital.Orbital),
			Occupancy: pairs[i+1].(int),
		})
	}
	c, err := configuration.New(es)
	require.NoError(t, err)
	return c
}

func strs[T interface{ String() string }](xs []T) []string {
	out := make([]string, len(xs))
	for i, x := range xs {
		out[i] = x.String()
	}
	return out
}
