// SPDX-License-Identifier: MIT
// Package: strand/symbol
//
// errors.go - sentinel errors and the typed bit-length mismatch error.
//
// Error policy (explicit and strict):
//   • Only sentinel variables plus one typed error are exposed.
//   • Callers MUST use errors.Is / errors.As to branch on semantics.
//   • Sentinels are NEVER wrapped with formatted strings at definition site.
//   • Mapping functions attach context via %w; they never panic.

package symbol

import (
	"errors"
	"fmt"
)

// ErrUnknownClass indicates a Class value outside the declared enumeration.
// Classification: Validation error (parameters).
// Usage: if errors.Is(err, ErrUnknownClass) { /* reject the class */ }.
var ErrUnknownClass = errors.New("symbol: unknown character class")

// ErrBitLength indicates a bit sample whose length differs from the width the
// class requires. The concrete widths travel in *BitLengthError.
// Classification: Contract violation (provider output).
// Usage: errors.Is(err, ErrBitLength) for the kind, errors.As for the widths.
var ErrBitLength = errors.New("symbol: bit sample width mismatch")

// ErrNotBinary indicates a bit sample containing a character other than
// '0' or '1'.
// Classification: Contract violation (provider output).
// Usage: if errors.Is(err, ErrNotBinary) { /* provider broke the contract */ }.
var ErrNotBinary = errors.New("symbol: bit sample is not binary")

// BitLengthError reports the expected vs. actual width of one bit sample and
// the pattern position it was drawn for. It unwraps to ErrBitLength so that
// errors.Is(err, ErrBitLength) holds wherever the struct travels.
type BitLengthError struct {
	Pos  int // pattern position the sample was drawn for
	Want int // width required by the class
	Got  int // width actually received
}

// Error implements the error interface.
func (e *BitLengthError) Error() string {
	return fmt.Sprintf("symbol: expected %d bits, got %d at position %d", e.Want, e.Got, e.Pos)
}

// Unwrap ties the struct to the ErrBitLength sentinel.
func (e *BitLengthError) Unwrap() error { return ErrBitLength }
