package bitsource

import (
	"context"
	"fmt"
	"sync"
)

// Script replays a fixed list of samples verbatim, one per draw, regardless
// of the requested width. That is deliberate: a sample of the wrong length
// or with non-binary characters reaches the consumer exactly as scripted,
// which makes provider faults reproducible in tests. Draws beyond the
// script fail with ErrExhausted.
type Script struct {
	mu      sync.Mutex
	samples []string
	draws   int
}

// NewScript returns a Source replaying the given samples in order.
func NewScript(samples ...string) *Script {
	return &Script{samples: samples}
}

// DrawBits implements Source. The requested width is intentionally ignored;
// the next scripted sample is returned as-is.
func (s *Script) DrawBits(ctx context.Context, width int) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.draws == len(s.samples) {
		return "", fmt.Errorf("DrawBits: draw %d of %d scripted: %w", s.draws+1, len(s.samples), ErrExhausted)
	}
	out := s.samples[s.draws]
	s.draws++
	return out, nil
}

// Draws reports how many samples have been served so far.
func (s *Script) Draws() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.draws
}
