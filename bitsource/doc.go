// Package bitsource supplies the entropy sources consumed by synth.
//
// A Source yields raw random bits as '0'/'1' strings of an exact requested
// width. The package ships:
//   - Crypto: operating-system entropy (crypto/rand), buffered.
//   - Blake2: deterministic Blake2b-512 stream for a given seed.
//   - PCG: deterministic math/rand/v2 stream, SplitMix64-seeded.
//   - Script: verbatim sample replay for fault-injection tests.
//   - Stream: endless cyclic bit pattern for property tests.
//
// All shipped sources serve one continuous bit stream: successive draws
// consume consecutive bits regardless of the widths requested, so a batch
// of combined draws sees exactly the bits a position-by-position sequence
// would. They honor context cancellation and are safe for concurrent use.
package bitsource
