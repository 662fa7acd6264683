package notation

import (
	"strings"

	"github.com/katalvlaran/atomlevels/configuration"
	"github.com/katalvlaran/atomlevels/orbital"
)

// ParseConfiguration reads a nonrelativistic configuration such as
// "[Ne] 3s2 3p" or "1s2c 2s 2p⁶". "" and "∅" give the empty
// configuration. opts are passed to configuration.New.
func ParseConfiguration(s string, opts ...configuration.Option) (*configuration.Configuration[orbital.Orbital], error) {
	return parseConfiguration(s, configuration.NobleGas, func(tok string) (orbital.Orbital, string, error) {
		lab, rest, err := scanOrbital(tok, false)
		if err != nil {
			return orbital.Orbital{}, "", err
		}
		o, err := lab.orbital()
		return o, rest, err
	}, opts)
}

// ParseRelativisticConfiguration reads a jj configuration such as
// "[Ne] 3s2 3p-2 3p".
func ParseRelativisticConfiguration(s string, opts ...configuration.Option) (*configuration.Configuration[orbital.RelativisticOrbital], error) {
	return parseConfiguration(s, configuration.RelativisticNobleGas, func(tok string) (orbital.RelativisticOrbital, string, error) {
		lab, rest, err := scanOrbital(tok, true)
		if err != nil {
			return orbital.RelativisticOrbital{}, "", err
		}
		o, err := lab.relativistic()
		return o, rest, err
	}, opts)
}

func parseConfiguration[O orbital.Subshell[O]](
	s string,
	noble func(string) (*configuration.Configuration[O], error),
	scan func(string) (O, string, error),
	opts []configuration.Option,
) (*configuration.Configuration[O], error) {
	var entries []configuration.Entry[O]
	for _, tok := range strings.Fields(s) {
		if tok == "∅" {
			continue
		}
		if strings.HasPrefix(tok, "[") && strings.HasSuffix(tok, "]") {
			core, err := noble(tok[1 : len(tok)-1])
			if err != nil {
				return nil, err
			}
			entries = append(entries, core.Entries()...)
			continue
		}
		o, rest, err := scan(tok)
		if err != nil {
			return nil, err
		}
		occ, rest, err := scanOccupancy(rest)
		if err != nil {
			return nil, err
		}
		e := configuration.Entry[O]{Orbital: o, Occupancy: occ}
		switch rest {
		case "":
		case "c":
			e.State = configuration.Closed
		case "i":
			e.State = configuration.Inactive
		default:
			return nil, syntaxErr("configuration entry", tok, "unknown suffix "+rest)
		}
		entries = append(entries, e)
	}
	return configuration.New(entries, opts...)
}

// FormatConfiguration renders c like c.String() but abbreviates a leading
// noble-gas core as "[X]".
func FormatConfiguration[O orbital.Subshell[O]](c *configuration.Configuration[O]) string {
	name, rest := configuration.SplitNobleCore(c)
	if name == "" {
		return c.String()
	}
	if rest.Len() == 0 {
		return "[" + name + "]"
	}
	return "[" + name + "] " + rest.String()
}
