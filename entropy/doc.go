// Package entropy scores the statistical quality of generated batches.
//
// Estimate computes Shannon entropy (bits) over the character-frequency
// distribution of a batch; Frequencies exposes the underlying ordered
// table. Both are pure functions of their input: nothing is cached or
// shared between calls.
package entropy
