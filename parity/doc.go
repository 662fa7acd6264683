// Package parity implements the two-element parity group {even, odd}.
//
// Even is the identity (+1), odd is -1. Parities multiply like signs and are
// totally ordered with Odd < Even, the order in which configuration and term
// lists group their members.
//
//	p := parity.Odd.Mul(parity.Odd)   // even
//	q := parity.Odd.Pow(3)            // odd
//	r := parity.Odd.Neg()             // even
package parity
