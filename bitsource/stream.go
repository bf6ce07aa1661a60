package bitsource

import (
	"context"
	"fmt"
	"sync"
)

// Stream serves an endless cyclic bit stream: draw after draw consumes
// consecutive characters of the cycle, wrapping at the end. Deterministic
// and allocation-light, it is the stub of choice for property tests that
// compare sequential and batch synthesis over one shared bit stream.
type Stream struct {
	mu    sync.Mutex
	cycle string
	pos   int
}

// NewStream returns a Source cycling over the given bit pattern.
// Panics if cycle is empty or contains a character other than '0'/'1'
// (programmer error, same fail-fast policy as option constructors).
func NewStream(cycle string) *Stream {
	if cycle == "" {
		panic("bitsource: NewStream(empty cycle)")
	}
	for i := 0; i < len(cycle); i++ {
		if cycle[i] != '0' && cycle[i] != '1' {
			panic("bitsource: NewStream: cycle must be binary")
		}
	}
	return &Stream{cycle: cycle}
}

// DrawBits implements Source.
func (s *Stream) DrawBits(ctx context.Context, width int) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if width < 1 {
		return "", fmt.Errorf("DrawBits: width=%d: %w", width, ErrWidth)
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]byte, width)
	for i := 0; i < width; i++ {
		out[i] = s.cycle[s.pos]
		s.pos++
		if s.pos == len(s.cycle) {
			s.pos = 0
		}
	}
	return string(out), nil
}
