package notation

import (
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/atomlevels/halfint"
	"github.com/katalvlaran/atomlevels/orbital"
)

// ParseOrbital reads a nonrelativistic orbital such as "2p" or "ks".
func ParseOrbital(s string) (orbital.Orbital, error) {
	lab, rest, err := scanOrbital(s, false)
	if err != nil {
		return orbital.Orbital{}, err
	}
	if rest != "" {
		return orbital.Orbital{}, syntaxErr("orbital", s, "trailing "+strconv.Quote(rest))
	}
	return lab.orbital()
}

// ParseRelativisticOrbital reads a jj orbital such as "2p-" or "3d".
func ParseRelativisticOrbital(s string) (orbital.RelativisticOrbital, error) {
	lab, rest, err := scanOrbital(s, true)
	if err != nil {
		return orbital.RelativisticOrbital{}, err
	}
	if rest != "" {
		return orbital.RelativisticOrbital{}, syntaxErr("orbital", s, "trailing "+strconv.Quote(rest))
	}
	return lab.relativistic()
}

// ParseKappa reads an ℓ letter with optional "-" and returns κ:
// "s" → -1, "p-" → 1, "p" → -2.
func ParseKappa(s string) (int, error) {
	minus := strings.HasSuffix(s, "-")
	letter := strings.TrimSuffix(s, "-")
	l, ok := orbital.LetterValue(letter)
	if !ok {
		return 0, syntaxErr("kappa", s, "unknown ℓ letter")
	}
	j := halfint.Half(2*l + 1)
	if minus {
		j = halfint.Half(2*l - 1)
	}
	return orbital.LJToKappa(l, j)
}

// ParseOrbitals expands an orbital list such as "5[d] 6[s-p] k[7-10]" into
// canonically sorted orbitals. Plain orbitals ("2p") are accepted too.
// Within an n range, combinations with ℓ >= n are skipped.
func ParseOrbitals(s string) ([]orbital.Orbital, error) {
	var out []orbital.Orbital
	err := expandOrbitalList(s, func(n orbital.Principal, l int, strict bool) error {
		o, err := orbital.New(n, l)
		if err != nil {
			if strict {
				return err
			}
			return nil
		}
		out = append(out, o)
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Compare(out[j]) < 0 })
	return dedupe(out), nil
}

// ParseRelativisticOrbitals is ParseOrbitals for jj orbitals: every ℓ
// yields both nℓ- and nℓ, and single orbitals may carry "-".
func ParseRelativisticOrbitals(s string) ([]orbital.RelativisticOrbital, error) {
	var out []orbital.RelativisticOrbital
	for _, tok := range strings.Fields(s) {
		if !strings.Contains(tok, "[") || strings.HasSuffix(tok, "-") {
			if r, err := ParseRelativisticOrbital(tok); err == nil {
				out = append(out, r)
				continue
			}
		}
		err := expandOrbitalList(tok, func(n orbital.Principal, l int, strict bool) error {
			o, err := orbital.New(n, l)
			if err != nil {
				if strict {
					return err
				}
				return nil
			}
			out = append(out, o.Relativistic()...)
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Compare(out[j]) < 0 })
	return dedupe(out), nil
}

func dedupe[O orbital.Subshell[O]](xs []O) []O {
	out := xs[:0]
	for i, x := range xs {
		if i == 0 || x != xs[i-1] {
			out = append(out, x)
		}
	}
	return out
}

// expandOrbitalList calls emit for every (n, ℓ) pair named by s. strict is
// false for pairs that come from an n range.
func expandOrbitalList(s string, emit func(n orbital.Principal, l int, strict bool) error) error {
	toks := strings.Fields(s)
	if len(toks) == 0 {
		return syntaxErr("orbital list", s, "empty")
	}
	for _, tok := range toks {
		open := strings.IndexByte(tok, '[')
		if open < 0 || !strings.HasSuffix(tok, "]") {
			lab, rest, err := scanOrbital(tok, false)
			if err != nil {
				return err
			}
			if rest != "" {
				return syntaxErr("orbital list", tok, "trailing "+strconv.Quote(rest))
			}
			if err := emit(lab.n, lab.l, true); err != nil {
				return err
			}
			continue
		}
		ns, err := parsePrincipals(tok[:open])
		if err != nil {
			return err
		}
		ls, err := parseLs(tok[open+1 : len(tok)-1])
		if err != nil {
			return err
		}
		strict := len(ns) == 1
		for _, n := range ns {
			for _, l := range ls {
				if err := emit(n, l, strict); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// parsePrincipals reads "5", "1-3" or a continuum label "k".
func parsePrincipals(s string) ([]orbital.Principal, error) {
	if s == "" {
		return nil, syntaxErr("orbital list", s, "missing n")
	}
	if lo, hi, ok := strings.Cut(s, "-"); ok {
		a, errA := strconv.Atoi(lo)
		b, errB := strconv.Atoi(hi)
		if errA != nil || errB != nil || a > b {
			return nil, syntaxErr("orbital list", s, "bad n range")
		}
		out := make([]orbital.Principal, 0, b-a+1)
		for n := a; n <= b; n++ {
			out = append(out, orbital.N(n))
		}
		return out, nil
	}
	if n, err := strconv.Atoi(s); err == nil {
		return []orbital.Principal{orbital.N(n)}, nil
	}
	if _, rest, err := scanOrbital(s+"s", false); err != nil || rest != "" {
		return nil, syntaxErr("orbital list", s, "bad n")
	}
	return []orbital.Principal{orbital.Continuum(s)}, nil
}

// parseLs reads comma-separated ℓ items: "d", "7", "s-p", "7-10".
func parseLs(s string) ([]int, error) {
	var out []int
	for _, item := range strings.Split(s, ",") {
		lo, hi, isRange := strings.Cut(item, "-")
		a, err := parseL(lo)
		if err != nil {
			return nil, err
		}
		b := a
		if isRange {
			if b, err = parseL(hi); err != nil {
				return nil, err
			}
		}
		if a > b {
			return nil, syntaxErr("orbital list", item, "empty ℓ range")
		}
		for l := a; l <= b; l++ {
			out = append(out, l)
		}
	}
	return out, nil
}

func parseL(s string) (int, error) {
	if l, ok := orbital.LetterValue(s); ok {
		return l, nil
	}
	l, err := strconv.Atoi(s)
	if err != nil || l < 0 {
		return 0, syntaxErr("orbital list", s, "bad ℓ")
	}
	return l, nil
}
