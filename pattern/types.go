package pattern

import (
	"errors"

	"github.com/katalvlaran/strand/symbol"
)

// Marker characters accepted by Parse (case-insensitive).
const (
	MarkerDigit  byte = 'D'
	MarkerLetter byte = 'L'
)

// Sentinel errors for pattern validation.
var (
	// ErrInvalidPattern is returned when a pattern is empty, contains a
	// character other than the D/L markers, or has an invalid shape
	// (such as an odd length requested from Alternating).
	ErrInvalidPattern = errors.New("pattern: invalid pattern")

	// ErrInvalidShots is returned when a shot count is not a positive
	// integer.
	ErrInvalidShots = errors.New("pattern: invalid shot count")
)

// Pattern is an ordered, non-empty sequence of character classes, one per
// output string position.
type Pattern []symbol.Class
