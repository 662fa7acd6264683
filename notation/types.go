package notation

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/katalvlaran/atomlevels/halfint"
	"github.com/katalvlaran/atomlevels/orbital"
)

// ErrSyntax indicates text that does not follow the grammar.
var ErrSyntax = errors.New("notation: syntax error")

func syntaxErr(kind, s, why string) error {
	return fmt.Errorf("%w: %s %q: %s", ErrSyntax, kind, s, why)
}

// superscripts maps ⁰..⁹ to 0..9.
var superscripts = map[rune]rune{
	'⁰': '0', '¹': '1', '²': '2', '³': '3', '⁴': '4',
	'⁵': '5', '⁶': '6', '⁷': '7', '⁸': '8', '⁹': '9',
}

// orbitalLabel is the scanned form of "<n><ℓ>[-]".
type orbitalLabel struct {
	n     orbital.Principal
	l     int
	minus bool
}

// scanOrbital reads an orbital label from the front of s and returns the
// remainder. The ℓ-1/2 marker is consumed only when allowMinus is set.
func scanOrbital(s string, allowMinus bool) (orbitalLabel, string, error) {
	var lab orbitalLabel
	rest := s
	switch {
	case rest == "":
		return lab, "", syntaxErr("orbital", s, "empty")
	case rest[0] >= '0' && rest[0] <= '9':
		i := 0
		for i < len(rest) && rest[i] >= '0' && rest[i] <= '9' {
			i++
		}
		n, err := strconv.Atoi(rest[:i])
		if err != nil {
			return lab, "", syntaxErr("orbital", s, "bad principal quantum number")
		}
		lab.n, rest = orbital.N(n), rest[i:]
	default:
		r, size := utf8.DecodeRuneInString(rest)
		if !unicode.IsLetter(r) {
			return lab, "", syntaxErr("orbital", s, "expected n or a continuum label")
		}
		lab.n, rest = orbital.Continuum(rest[:size]), rest[size:]
	}

	switch {
	case rest == "":
		return lab, "", syntaxErr("orbital", s, "missing ℓ")
	case rest[0] == '[':
		end := strings.IndexByte(rest, ']')
		if end < 0 {
			return lab, "", syntaxErr("orbital", s, "unclosed [ℓ]")
		}
		l, err := strconv.Atoi(rest[1:end])
		if err != nil || l < 0 {
			return lab, "", syntaxErr("orbital", s, "bad ℓ in brackets")
		}
		lab.l, rest = l, rest[end+1:]
	default:
		l, ok := orbital.LetterValue(rest[:1])
		if !ok {
			return lab, "", syntaxErr("orbital", s, "unknown ℓ letter")
		}
		lab.l, rest = l, rest[1:]
	}

	if allowMinus && strings.HasPrefix(rest, "-") {
		lab.minus, rest = true, rest[1:]
	}
	return lab, rest, nil
}

func (lab orbitalLabel) orbital() (orbital.Orbital, error) {
	return orbital.New(lab.n, lab.l)
}

func (lab orbitalLabel) relativistic() (orbital.RelativisticOrbital, error) {
	j := halfint.Half(2*lab.l + 1)
	if lab.minus {
		j = halfint.Half(2*lab.l - 1)
	}
	return orbital.NewRelativisticLJ(lab.n, lab.l, j)
}

// scanOccupancy reads ASCII or superscript digits; no digits means 1.
func scanOccupancy(s string) (int, string, error) {
	var b strings.Builder
	i := 0
	for i < len(s) {
		r, size := utf8.DecodeRuneInString(s[i:])
		if d, ok := superscripts[r]; ok {
			r = d
		}
		if r < '0' || r > '9' {
			break
		}
		b.WriteRune(r)
		i += size
	}
	if b.Len() == 0 {
		return 1, s, nil
	}
	n, err := strconv.Atoi(b.String())
	if err != nil {
		return 0, "", syntaxErr("occupancy", s, err.Error())
	}
	return n, s[i:], nil
}

// parseHalfInt reads "3", "-1", "3/2" or "-1/2".
func parseHalfInt(s string) (halfint.HalfInt, error) {
	num, den, frac := strings.Cut(s, "/")
	n, err := strconv.Atoi(num)
	if err != nil {
		return halfint.HalfInt{}, syntaxErr("half-integer", s, "bad numerator")
	}
	if !frac {
		return halfint.Int(n), nil
	}
	if den != "2" {
		return halfint.HalfInt{}, syntaxErr("half-integer", s, "denominator must be 2")
	}
	return halfint.Half(n), nil
}
