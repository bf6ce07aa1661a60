package bitsource

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// Source supplies raw random bits to the synthesizer.
//
// DrawBits returns a bit string of exactly width characters, each '0' or
// '1', and must fail explicitly when it cannot satisfy the width; it must
// never return malformed output silently. Implementations plugged into
// batch synthesis with rejection sampling enabled must additionally be safe
// for concurrent use; every source in this package is.
type Source interface {
	DrawBits(ctx context.Context, width int) (string, error)
}

// Sentinel errors shared by the shipped sources.
var (
	// ErrWidth is returned when a requested width is not a positive integer.
	ErrWidth = errors.New("bitsource: width must be positive")

	// ErrExhausted is returned by Script once every scripted sample has been
	// replayed.
	ErrExhausted = errors.New("bitsource: scripted samples exhausted")
)

// feed adapts a byte-producing closure into bit-granular, lock-protected
// draws. Crypto, Blake2 and PCG differ only in how the next stream byte is
// produced.
type feed struct {
	mu   sync.Mutex
	next func() (byte, error) // produces the next byte of the stream
	cur  byte                 // byte currently being consumed
	rem  int                  // unconsumed bits left in cur
}

// DrawBits implements Source: it serves width bits MSB-first from the
// underlying byte stream.
func (f *feed) DrawBits(ctx context.Context, width int) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if width < 1 {
		return "", fmt.Errorf("DrawBits: width=%d: %w", width, ErrWidth)
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	out := make([]byte, width)
	for i := 0; i < width; i++ {
		if f.rem == 0 {
			b, err := f.next()
			if err != nil {
				return "", err
			}
			f.cur, f.rem = b, 8
		}
		out[i] = '0' + (f.cur >> 7)
		f.cur <<= 1
		f.rem--
	}
	return string(out), nil
}
