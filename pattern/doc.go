// Package pattern parses and validates structural string patterns.
//
// A pattern describes one output character per marker: 'D' draws a decimal
// digit, 'L' draws a lowercase Latin letter. Parsing is case-insensitive
// and strict; anything else fails with ErrInvalidPattern before a single
// random bit is consumed.
//
// The package also owns the shot-count rule (ValidateShots) and the
// alternating digit/letter convenience form (Alternating) used by
// synth.Synthesizer.Alternating.
package pattern
