// Package symbol defines the character classes a pattern can request and
// the kernel that turns fixed-width bit samples into symbols.
//
// Each class (Digit, Letter) owns an ordered alphabet, the minimal bit
// width covering it, and the modulus used for reduction. Widths derive
// from the alphabets at initialization, so they stay correct if an
// alphabet ever changes.
//
// Two mapping variants exist:
//   - Map: interpret the sample as an unsigned base-2 integer v and pick
//     Alphabet()[v mod Modulus()]. Fast, but biased whenever 2^width is
//     not an exact multiple of the modulus (true for both classes:
//     16 mod 10 = 6, 32 mod 26 = 6), so low symbols occur more often.
//   - MapUniform: rejection sampling; samples at or above RejectionBound
//     are rejected and must be redrawn, making accepted draws uniform.
//
// The bias of Map is a documented, tested property, not an accident; use
// MapUniform when uniformity matters more than draw count.
package symbol
