// Package synth orchestrates pattern-driven random string synthesis.
//
// A Synthesizer couples a structural pattern (see pattern) with an entropy
// source (see bitsource) and produces batches of matching strings plus the
// Shannon entropy of each batch (see entropy).
//
// Two generation modes exist:
//   - Sequential: every draw happens on the calling goroutine, one position
//     at a time, string-major then position-minor.
//   - Batch: one combined draw per string, issued in request order, then
//     concurrent per-string decoding on a bounded worker pool; results are
//     reassembled in request order regardless of completion order.
//
// Both modes consume the identical bit stream, so a deterministic source
// yields the identical batch in either mode. Validation always precedes the
// first draw, and any failure aborts the whole batch: no partial results.
//
// Mapping policy: by default bit groups reduce modulo the alphabet size,
// which overrepresents low symbols (16 mod 10 = 6, 32 mod 26 = 6); see
// symbol.Map. WithUniform switches to rejection sampling for uniform output
// at the cost of occasional redraws.
package synth
