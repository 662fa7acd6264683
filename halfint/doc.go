// Package halfint provides exact arithmetic on half-integers: numbers of the
// form n or n/2 that appear as spin, total angular momentum and their
// projections.
//
// A HalfInt stores twice its value, so every operation is an integer
// operation and no rounding ever occurs.
//
//	j := halfint.New(3, 2)                // 3/2
//	js, err := halfint.Range(j.Neg(), j)  // -3/2, -1/2, 1/2, 3/2
//
// Errors:
//
//	ErrDomain - a denominator other than 1 or 2, or a range whose bounds
//	            differ by a non-integer amount.
package halfint
