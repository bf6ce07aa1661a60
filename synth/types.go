// SPDX-License-Identifier: MIT
// Package: strand/synth
//
// types.go - mode enumeration, sentinel errors, operation names.
//
// Error policy (explicit and strict):
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Mapping diagnostics pass through intact: after synthesizer wrapping,
//     errors.As(&(*symbol.BitLengthError)) and errors.Is(symbol.ErrBitLength)
//     both still hold.
//   • Source failures wrap BOTH ErrSourceFailure and the source's own error,
//     so either chain can be branched on.

package synth

import "errors"

// Mode selects how a batch of strings is generated.
type Mode uint8

const (
	// Sequential draws and maps every position of every string on the
	// calling goroutine, in strict string-major, position-minor order.
	Sequential Mode = iota
	// Batch draws one combined sample per string in request order, then
	// decodes the strings concurrently on a bounded worker pool.
	Batch
)

// String implements fmt.Stringer.
func (m Mode) String() string {
	switch m {
	case Sequential:
		return "sequential"
	case Batch:
		return "batch"
	default:
		return "unknown"
	}
}

// valid reports whether m is a declared mode.
func (m Mode) valid() bool { return m == Sequential || m == Batch }

var (
	// ErrNilSource is returned by New when the entropy source is nil.
	// Classification: Validation error (construction).
	// Usage: if errors.Is(err, ErrNilSource) { /* wire a source */ }.
	ErrNilSource = errors.New("synth: entropy source is nil")

	// ErrSourceFailure marks failures originating at the entropy source: a
	// failed draw, non-binary output, an overlong combined draw, or a
	// rejection-sampling redraw budget running out.
	// Classification: Runtime error (external collaborator).
	// Usage: if errors.Is(err, ErrSourceFailure) { /* source broke */ }.
	ErrSourceFailure = errors.New("synth: entropy source failure")
)

// Operation name constants for unified error wrapping.
const (
	opNew         = "New"
	opSynthesize  = "Synthesize"
	opAlternating = "Alternating"
)
