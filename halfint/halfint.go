package halfint

import (
	"errors"
	"fmt"
)

// ErrDomain indicates a value or range that cannot be represented as
// half-integers stepping by one.
var ErrDomain = errors.New("halfint: value outside half-integer domain")

// HalfInt is an integer or half-odd-integer. The zero value is 0.
type HalfInt struct {
	twice int
}

// Int returns the integer n as a HalfInt.
func Int(n int) HalfInt { return HalfInt{twice: 2 * n} }

// Half returns n/2.
func Half(n int) HalfInt { return HalfInt{twice: n} }

// New returns num/den. den must be 1 or 2; anything else panics, since a
// literal with another denominator is a programmer error.
func New(num, den int) HalfInt {
	h, err := FromRational(num, den)
	if err != nil {
		panic(err.Error())
	}
	return h
}

// FromRational returns num/den when it is exactly a half-integer.
// A denominator of ±1, ±2 or any multiple reducing to those is accepted.
func FromRational(num, den int) (HalfInt, error) {
	if den == 0 {
		return HalfInt{}, fmt.Errorf("%w: zero denominator", ErrDomain)
	}
	if (2*num)%den != 0 {
		return HalfInt{}, fmt.Errorf("%w: %d/%d", ErrDomain, num, den)
	}
	return HalfInt{twice: 2 * num / den}, nil
}

// Twice returns 2h, always an integer.
func (h HalfInt) Twice() int { return h.twice }

// IsInteger reports whether h has no half-odd part.
func (h HalfInt) IsInteger() bool { return h.twice%2 == 0 }

// Integer returns h as an int and whether the conversion was exact.
func (h HalfInt) Integer() (int, bool) {
	if !h.IsInteger() {
		return 0, false
	}
	return h.twice / 2, true
}

// Float64 returns h as a float.
func (h HalfInt) Float64() float64 { return float64(h.twice) / 2 }

// Add returns h+o.
func (h HalfInt) Add(o HalfInt) HalfInt { return HalfInt{twice: h.twice + o.twice} }

// Sub returns h-o.
func (h HalfInt) Sub(o HalfInt) HalfInt { return HalfInt{twice: h.twice - o.twice} }

// Neg returns -h.
func (h HalfInt) Neg() HalfInt { return HalfInt{twice: -h.twice} }

// Abs returns |h|.
func (h HalfInt) Abs() HalfInt {
	if h.twice < 0 {
		return h.Neg()
	}
	return h
}

// Cmp returns -1, 0 or +1 as h is less than, equal to or greater than o.
func (h HalfInt) Cmp(o HalfInt) int {
	switch {
	case h.twice < o.twice:
		return -1
	case h.twice > o.twice:
		return 1
	default:
		return 0
	}
}

// Less reports h < o.
func (h HalfInt) Less(o HalfInt) bool { return h.twice < o.twice }

// String renders integers plainly and half-odd values as "n/2".
func (h HalfInt) String() string {
	if h.IsInteger() {
		return fmt.Sprintf("%d", h.twice/2)
	}
	return fmt.Sprintf("%d/2", h.twice)
}

// Min returns the smaller of a and b.
func Min(a, b HalfInt) HalfInt {
	if a.Less(b) {
		return a
	}
	return b
}

// Max returns the larger of a and b.
func Max(a, b HalfInt) HalfInt {
	if a.Less(b) {
		return b
	}
	return a
}

// Range returns a, a+1, ..., b inclusive. The result is empty when a > b.
// Returns ErrDomain if b-a is not an integer.
// Complexity: O(b-a).
func Range(a, b HalfInt) ([]HalfInt, error) {
	span := b.twice - a.twice
	if span%2 != 0 {
		return nil, fmt.Errorf("%w: range %s..%s has non-integer span", ErrDomain, a, b)
	}
	if span < 0 {
		return []HalfInt{}, nil
	}
	out := make([]HalfInt, 0, span/2+1)
	for t := a.twice; t <= b.twice; t += 2 {
		out = append(out, HalfInt{twice: t})
	}
	return out, nil
}

// Projections returns -j, -j+1, ..., j, the projection range of an angular
// momentum j. It is empty for negative j.
func Projections(j HalfInt) []HalfInt {
	// -j..j always has integer span.
	r, _ := Range(j.Neg(), j)
	return r
}

// Triangle returns |a-b|, ..., a+b: every value allowed when coupling two
// angular momenta a and b.
func Triangle(a, b HalfInt) []HalfInt {
	// a+b-|a-b| = 2min(a,b), an integer whenever both are non-negative.
	r, err := Range(a.Sub(b).Abs(), a.Add(b))
	if err != nil {
		return []HalfInt{}
	}
	return r
}
