// Package strand turns raw random bits into structured random strings
// and tells you how random the result actually is.
//
// 🚀 What is strand?
//
//	A small, dependency-injected synthesis engine that brings together:
//		• Patterns: describe string shape as character-class markers ("DLL")
//		• Symbols: fixed alphabets with derived bit widths and moduli
//		• Mapping: modulo reduction (documented bias) or rejection sampling
//		• Synthesis: strictly sequential or concurrent batch generation
//		• Scoring: Shannon entropy over each produced batch
//
// ✨ Why choose strand?
//
//   - Pluggable entropy: crypto, seeded Blake2b, seeded PCG, scripted stubs
//   - Reproducible: deterministic sources yield bit-identical batches
//   - Honest errors: typed sentinels, no silent fallbacks, no panics
//   - Concurrent: batch mode decodes on a bounded worker pool
//
// Everything is organized under five subpackages:
//
//	pattern/   - "D"/"L" marker parsing, shot-count rules, alternating form
//	symbol/    - character classes, alphabets, bit-to-symbol mapping
//	bitsource/ - entropy sources implementing the Source interface
//	synth/     - the synthesizer: sequential and batch modes, options
//	entropy/   - Shannon entropy and character-frequency tables
//
// Quick example:
//
//	src := bitsource.NewBlake2([]byte("seed"))
//	s, err := synth.New(src, synth.WithMode(synth.Batch))
//	if err != nil {
//		log.Fatal(err)
//	}
//	batch, score, err := s.Synthesize(ctx, "DDLL", 32)
//
// produces 32 strings of two digits and two lowercase letters each, plus
// the entropy (in bits) of the whole batch.
//
// Dive into the subpackage docs for contracts, determinism notes and the
// mapping-bias discussion.
//
//	go get github.com/katalvlaran/strand
package strand
