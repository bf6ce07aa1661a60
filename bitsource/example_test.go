package bitsource_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/strand/bitsource"
)

// ExampleNewStream cycles a two-bit pattern across draw boundaries.
func ExampleNewStream() {
	src := bitsource.NewStream("01")

	a, _ := src.DrawBits(context.Background(), 3)
	b, _ := src.DrawBits(context.Background(), 3)
	fmt.Println(a, b)
	// Output:
	// 010 101
}

// ExampleNewScript replays scripted samples verbatim, then reports
// exhaustion.
func ExampleNewScript() {
	src := bitsource.NewScript("0000", "00001")

	a, _ := src.DrawBits(context.Background(), 4)
	b, _ := src.DrawBits(context.Background(), 5)
	fmt.Println(a, b)

	_, err := src.DrawBits(context.Background(), 4)
	fmt.Println(err)
	// Output:
	// 0000 00001
	// DrawBits: draw 3 of 2 scripted: bitsource: scripted samples exhausted
}

// ExampleNewBlake2 shows seed-for-seed reproducibility without pinning the
// stream itself.
func ExampleNewBlake2() {
	a, _ := bitsource.NewBlake2([]byte("seed")).DrawBits(context.Background(), 32)
	b, _ := bitsource.NewBlake2([]byte("seed")).DrawBits(context.Background(), 32)
	fmt.Println(a == b)
	// Output:
	// true
}
