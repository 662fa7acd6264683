package orbital

import (
	"fmt"
	"strings"
)

// spectroscopic lists the ℓ letters in order; "j" is skipped by convention.
const spectroscopic = "spdfghiklmnoqrtuvwxyz"

// Letter returns the lower-case spectroscopic letter for ℓ, or "[ℓ]" past
// the end of the alphabet.
func Letter(l int) string {
	if l >= 0 && l < len(spectroscopic) {
		return spectroscopic[l : l+1]
	}
	return fmt.Sprintf("[%d]", l)
}

// LetterValue is the inverse of Letter. It accepts either case and reports
// false for unknown letters.
func LetterValue(s string) (int, bool) {
	if len(s) != 1 {
		return 0, false
	}
	i := strings.Index(spectroscopic, strings.ToLower(s))
	return i, i >= 0
}
