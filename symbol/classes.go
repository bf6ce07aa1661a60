// SPDX-License-Identifier: MIT
// Package: strand/symbol
//
// classes.go - canonical per-class alphabet specifications (data-only).
//
// Purpose:
//   - This file is the single source of truth for class metadata: the ordered
//     alphabet of each class, the minimal bit width covering it, and the
//     modulus applied during reduction.
//   - Alphabets are declared as plain string constants; width and modulus are
//     DERIVED from them at initialization (smallest w with 1<<w >= size), so
//     a future alphabet change re-derives both without manual edits.
//
// Contract (for consumers such as map.go and strand/pattern):
//   - Alphabet() is ordered; the symbol of index i is Alphabet()[i].
//   - BitWidth() is the exact sample width Map/MapUniform accept for a class.
//   - Modulus() == len(Alphabet()); both are immutable after init.
//   - Unknown Class values yield zero values ("", 0, 0), never a panic.
//
// Determinism:
//   - All metadata is computed once, before main, from constants; no
//     environment, locale or runtime state is consulted.

package symbol

import (
	"math/bits"
	"strconv"
)

// Class enumerates the character classes a pattern position may request.
type Class uint8

const (
	// Digit draws from the decimal alphabet "0".."9".
	Digit Class = iota
	// Letter draws from the lowercase Latin alphabet "a".."z".
	Letter
)

// Ordered alphabets, one per class. Single source of truth.
const (
	digitAlphabet  = "0123456789"
	letterAlphabet = "abcdefghijklmnopqrstuvwxyz"
)

// classSpec bundles the derived static metadata of one character class.
type classSpec struct {
	name     string // human-readable class name (fmt.Stringer)
	alphabet string // ordered alphabet; index = symbol rank
	width    int    // minimal bit width with 1<<width >= modulus
	modulus  int    // alphabet size used for reduction
}

// specs is indexed by Class and built once at init from the alphabets above.
var specs = [...]classSpec{
	Digit:  makeSpec("Digit", digitAlphabet),
	Letter: makeSpec("Letter", letterAlphabet),
}

// makeSpec derives width and modulus from the alphabet.
func makeSpec(name, alphabet string) classSpec {
	return classSpec{
		name:     name,
		alphabet: alphabet,
		width:    widthFor(len(alphabet)),
		modulus:  len(alphabet),
	}
}

// widthFor returns the smallest w with 1<<w >= size.
func widthFor(size int) int {
	return bits.Len(uint(size - 1))
}

// Valid reports whether c is a declared character class.
func (c Class) Valid() bool {
	return int(c) < len(specs)
}

// String implements fmt.Stringer; unknown classes render as "Class(n)".
func (c Class) String() string {
	if !c.Valid() {
		return "Class(" + strconv.Itoa(int(c)) + ")"
	}
	return specs[c].name
}

// Alphabet returns the ordered alphabet of c ("" for unknown classes).
func (c Class) Alphabet() string {
	if !c.Valid() {
		return ""
	}
	return specs[c].alphabet
}

// BitWidth returns the exact number of random bits one sample of c consumes
// (0 for unknown classes). Digit needs 4 bits, Letter needs 5.
func (c Class) BitWidth() int {
	if !c.Valid() {
		return 0
	}
	return specs[c].width
}

// Modulus returns the alphabet size used for reduction (0 for unknown
// classes).
func (c Class) Modulus() int {
	if !c.Valid() {
		return 0
	}
	return specs[c].modulus
}
