package notation

import (
	"strconv"
	"strings"

	"github.com/katalvlaran/atomlevels/halfint"
	"github.com/katalvlaran/atomlevels/orbital"
	"github.com/katalvlaran/atomlevels/parity"
	"github.com/katalvlaran/atomlevels/term"
)

// ParseTerm reads an LS term "<2S+1><L>[o]": "1S", "2Po", "4F", "2[3/2]".
func ParseTerm(s string) (term.Term, error) {
	rest := s
	i := 0
	for i < len(rest) && rest[i] >= '0' && rest[i] <= '9' {
		i++
	}
	if i == 0 {
		return term.Term{}, syntaxErr("term", s, "missing multiplicity")
	}
	mult, err := strconv.Atoi(rest[:i])
	if err != nil || mult < 1 {
		return term.Term{}, syntaxErr("term", s, "bad multiplicity")
	}
	rest = rest[i:]

	var L halfint.HalfInt
	switch {
	case rest == "":
		return term.Term{}, syntaxErr("term", s, "missing L")
	case rest[0] == '[':
		end := strings.IndexByte(rest, ']')
		if end < 0 {
			return term.Term{}, syntaxErr("term", s, "unclosed [L]")
		}
		if L, err = parseHalfInt(rest[1:end]); err != nil {
			return term.Term{}, err
		}
		rest = rest[end+1:]
	default:
		if rest[0] < 'A' || rest[0] > 'Z' {
			return term.Term{}, syntaxErr("term", s, "L letter must be upper case")
		}
		l, ok := orbital.LetterValue(rest[:1])
		if !ok {
			return term.Term{}, syntaxErr("term", s, "unknown L letter")
		}
		L, rest = halfint.Int(l), rest[1:]
	}

	p := parity.Even
	switch rest {
	case "":
	case "o":
		p = parity.Odd
	default:
		return term.Term{}, syntaxErr("term", s, "trailing "+strconv.Quote(rest))
	}
	return term.New(L, halfint.Half(mult-1), p)
}

// ParseJTerm reads a J value such as "2" or "5/2".
func ParseJTerm(s string) (term.JTerm, error) {
	j, err := parseHalfInt(s)
	if err != nil {
		return term.JTerm{}, err
	}
	if j.Twice() < 0 {
		return term.JTerm{}, syntaxErr("J", s, "negative")
	}
	return term.JTerm{J: j}, nil
}

// ParseParity reads "even" or "odd".
func ParseParity(s string) (parity.Parity, error) {
	return parity.Parse(s)
}
