// SPDX-License-Identifier: MIT
// Package: strand/symbol
//
// map.go - fixed-width bit samples to symbols (modulo and rejection variants).
//
// Contract:
//   • Map interprets the sample as an unsigned base-2 integer v and returns
//     Alphabet()[v mod Modulus()]. The reduction is deliberately biased when
//     1<<BitWidth() is not an exact multiple of Modulus(): with 16 four-bit
//     values over 10 digits, indices 0..5 occur twice as often as 6..9, and
//     the same tail effect applies to letters (32 over 26).
//   • MapUniform rejects v >= RejectionBound(c) instead of reducing it, so
//     every accepted draw is uniform; callers redraw on ok == false.
//   • Both variants validate class, width and binary content; neither panics.
//
// Determinism:
//   - Pure functions of their inputs; no shared state, no allocation beyond
//     the wrapped error path.
//
// Complexity: O(width) time, O(1) space per call.

package symbol

import "fmt"

// Operation name constants for unified error wrapping.
const (
	opMap        = "Map"
	opMapUniform = "MapUniform"
)

// Map converts one fixed-width bit sample into a symbol of class c.
// pos is the pattern position the sample was drawn for and appears in
// diagnostics only.
//
// The modulo reduction is biased (see file header); use MapUniform when the
// symbol distribution must be uniform.
func Map(bits string, c Class, pos int) (byte, error) {
	v, err := parseSample(bits, c, pos, opMap)
	if err != nil {
		return 0, err
	}
	spec := &specs[c]
	return spec.alphabet[v%uint64(spec.modulus)], nil
}

// MapUniform converts one bit sample into a symbol via rejection sampling.
// ok == false with a nil error signals a rejected sample: v landed in the
// truncated tail at or above RejectionBound(c), and the caller must redraw.
// Accepted samples reduce exactly like Map but carry no bias.
func MapUniform(bits string, c Class, pos int) (sym byte, ok bool, err error) {
	v, err := parseSample(bits, c, pos, opMapUniform)
	if err != nil {
		return 0, false, err
	}
	spec := &specs[c]
	if v >= RejectionBound(c) {
		return 0, false, nil
	}
	return spec.alphabet[v%uint64(spec.modulus)], true, nil
}

// RejectionBound returns modulus * floor(2^width / modulus) for c: the least
// value rejected by MapUniform, i.e. the top of the zone where modulo
// reduction stays uniform. For the shipped classes this is 10 (Digit) and
// 26 (Letter). Unknown classes return 0.
func RejectionBound(c Class) uint64 {
	if !c.Valid() {
		return 0
	}
	spec := &specs[c]
	space := uint64(1) << uint(spec.width)
	return uint64(spec.modulus) * (space / uint64(spec.modulus))
}

// parseSample validates (class, width, binary content) and decodes the sample
// as an unsigned base-2 integer, MSB first.
func parseSample(bits string, c Class, pos int, op string) (uint64, error) {
	// 1) Class must be a declared enumeration member.
	if !c.Valid() {
		return 0, fmt.Errorf("%s: class=%d: %w", op, c, ErrUnknownClass)
	}
	// 2) Width must match the class exactly; report both widths and position.
	if want := specs[c].width; len(bits) != want {
		return 0, fmt.Errorf("%s: %w", op, &BitLengthError{Pos: pos, Want: want, Got: len(bits)})
	}
	// 3) Decode, rejecting any non-binary character.
	var v uint64
	for i := 0; i < len(bits); i++ {
		switch bits[i] {
		case '0':
			v <<= 1
		case '1':
			v = v<<1 | 1
		default:
			return 0, fmt.Errorf("%s: byte %q at offset %d: %w", op, bits[i], i, ErrNotBinary)
		}
	}
	return v, nil
}
