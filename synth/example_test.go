// File: example_test.go
// Runnable examples for the synth package. Every example feeds a scripted
// or cyclic source, so the printed output is fixed.
package synth_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/strand/bitsource"
	"github.com/katalvlaran/strand/synth"
)

// ExampleSynthesizer_Synthesize maps one digit draw and one letter draw
// into the string "0b": 0000 is 0 -> '0', 00001 is 1 -> 'b'.
func ExampleSynthesizer_Synthesize() {
	src := bitsource.NewScript("0000", "00001")
	s, _ := synth.New(src)

	batch, score, err := s.Synthesize(context.Background(), "DL", 1)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(batch[0], score)
	// Output:
	// 0b 1
}

// ExampleSynthesizer_Alternating builds the implicit DLDL pattern for an
// even length and scripts one sample per position.
func ExampleSynthesizer_Alternating() {
	src := bitsource.NewScript("0011", "00001", "1001", "11001")
	s, _ := synth.New(src)

	batch, score, err := s.Alternating(context.Background(), 4, 1)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(batch[0], score)
	// Output:
	// 3b9z 2
}

// ExampleWithMode runs the same request in Batch mode; a cyclic source
// makes the combined draws predictable.
func ExampleWithMode() {
	src := bitsource.NewStream("00010010")
	s, _ := synth.New(src, synth.WithMode(synth.Batch))

	batch, score, err := s.Synthesize(context.Background(), "DD", 2)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(batch, score)
	// Output:
	// [12 12] 1
}

// ExampleWithUniform rejects tail values and redraws: 1010 (10) and 1111
// (15) fall outside the digit bound, 0111 (7) is accepted.
func ExampleWithUniform() {
	src := bitsource.NewScript("1010", "1111", "0111")
	s, _ := synth.New(src, synth.WithUniform())

	batch, _, err := s.Synthesize(context.Background(), "D", 1)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(batch[0], "after", src.Draws(), "draws")
	// Output:
	// 7 after 3 draws
}
