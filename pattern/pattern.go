package pattern

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/strand/symbol"
)

// Operation names used in wrapped errors.
const (
	opParse       = "Parse"
	opAlternating = "Alternating"
	opShots       = "ValidateShots"
)

// Parse converts a raw marker string into a Pattern.
//
// Markers are case-insensitive: 'D'/'d' map to symbol.Digit, 'L'/'l' to
// symbol.Letter. Empty input or any other character fails with
// ErrInvalidPattern; the wrapped message names the offending rune and its
// index. Parse is pure and never touches an entropy source.
func Parse(raw string) (Pattern, error) {
	if raw == "" {
		return nil, fmt.Errorf("%s: empty pattern: %w", opParse, ErrInvalidPattern)
	}
	p := make(Pattern, 0, len(raw))
	for i, r := range raw {
		switch r {
		case 'D', 'd':
			p = append(p, symbol.Digit)
		case 'L', 'l':
			p = append(p, symbol.Letter)
		default:
			return nil, fmt.Errorf("%s: marker %q at position %d: %w", opParse, r, i, ErrInvalidPattern)
		}
	}
	return p, nil
}

// Alternating builds the implicit "DLDL…" pattern of the given length:
// digits at even positions, letters at odd ones. The length must be a
// positive even integer so the string ends on a complete digit/letter pair.
func Alternating(length int) (Pattern, error) {
	if length <= 0 {
		return nil, fmt.Errorf("%s: length=%d, want positive even: %w", opAlternating, length, ErrInvalidPattern)
	}
	if length%2 != 0 {
		return nil, fmt.Errorf("%s: length=%d is odd, want even: %w", opAlternating, length, ErrInvalidPattern)
	}
	p := make(Pattern, length)
	for i := range p {
		if i%2 == 0 {
			p[i] = symbol.Digit
		} else {
			p[i] = symbol.Letter
		}
	}
	return p, nil
}

// ValidateShots checks that a requested shot count is a positive integer.
func ValidateShots(n int) error {
	if n < 1 {
		return fmt.Errorf("%s: shots=%d, want >= 1: %w", opShots, n, ErrInvalidShots)
	}
	return nil
}

// String renders the canonical upper-case marker form of p; positions
// holding an undeclared class render as '?'.
func (p Pattern) String() string {
	var sb strings.Builder
	sb.Grow(len(p))
	for _, c := range p {
		switch c {
		case symbol.Digit:
			sb.WriteByte(MarkerDigit)
		case symbol.Letter:
			sb.WriteByte(MarkerLetter)
		default:
			sb.WriteByte('?')
		}
	}
	return sb.String()
}

// TotalBits returns the summed bit width of all positions: the exact number
// of random bits one generated string consumes.
func (p Pattern) TotalBits() int {
	total := 0
	for _, c := range p {
		total += c.BitWidth()
	}
	return total
}
