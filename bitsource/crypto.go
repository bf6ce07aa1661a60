package bitsource

import (
	"crypto/rand"
	"fmt"
	"io"
)

// cryptoBufBytes is the refill chunk read from the system entropy pool;
// one read serves 2048 bits before the next syscall.
const cryptoBufBytes = 256

// Crypto draws from the operating-system entropy pool (crypto/rand),
// buffered in fixed-size chunks to amortize reads. Not reproducible by
// design; use Blake2 or PCG when determinism is needed.
type Crypto struct {
	feed
}

// NewCrypto returns a Source backed by crypto/rand.
func NewCrypto() *Crypto {
	buf := make([]byte, cryptoBufBytes)
	pos := len(buf) // force a refill on the first draw
	c := &Crypto{}
	c.next = func() (byte, error) {
		if pos == len(buf) {
			if _, err := io.ReadFull(rand.Reader, buf); err != nil {
				return 0, fmt.Errorf("bitsource: crypto refill: %w", err)
			}
			pos = 0
		}
		b := buf[pos]
		pos++
		return b, nil
	}
	return c
}
