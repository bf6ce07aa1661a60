// SPDX-License-Identifier: MIT
// Package: strand/entropy
//
// Purpose:
//   - Quantify the dispersion of generated batches: Shannon entropy (bits)
//     over the character-frequency distribution, plus the ordered frequency
//     table itself.
//
// Exposed API:
//   - Frequencies(batch) -> []Frequency // ascending by character
//   - Estimate(batch)    -> float64     // -Σ p·log2(p); 0.0 for empty input
//
// Determinism & Precision:
//   - Frequencies orders rows by code point, so Estimate accumulates terms
//     in a fixed order and returns bit-identical results across runs.
//   - math.Log2 resolves exact powers of two exactly, so two equally likely
//     characters score exactly 1.0.

package entropy

import (
	"math"
	"sort"
)

// Frequency is one row of the character-frequency table of a batch.
type Frequency struct {
	Char  rune // character (code point)
	Count int  // occurrences across every string of the batch
}

// Frequencies flattens all characters across the batch into an ordered
// frequency table (ascending by Char). The table is rebuilt on every call;
// no accumulator survives between calls. A batch with no characters yields
// nil.
func Frequencies(batch []string) []Frequency {
	if len(batch) == 0 {
		return nil
	}
	// 1) Count code points across the whole batch.
	counts := make(map[rune]int)
	for _, s := range batch {
		for _, r := range s {
			counts[r]++
		}
	}
	if len(counts) == 0 {
		return nil
	}
	// 2) Flatten and order by code point for deterministic consumers.
	table := make([]Frequency, 0, len(counts))
	for r, n := range counts {
		table = append(table, Frequency{Char: r, Count: n})
	}
	sort.Slice(table, func(i, j int) bool { return table[i].Char < table[j].Char })
	return table
}

// Estimate returns the Shannon entropy, in bits, of the character
// distribution across the batch: -Σ p·log2(p) over every distinct character
// with empirical probability p = count/total. An empty batch, or one holding
// only empty strings, scores 0.0.
//
// This measures character dispersion across the whole batch, not per-string
// uniqueness; callers wanting the latter must compute it separately.
func Estimate(batch []string) float64 {
	table := Frequencies(batch)
	if len(table) == 0 {
		return 0.0
	}
	total := 0
	for _, row := range table {
		total += row.Count
	}
	// Accumulate in table order so the float sum is reproducible.
	score := 0.0
	for _, row := range table {
		p := float64(row.Count) / float64(total)
		score -= p * math.Log2(p)
	}
	return score
}
