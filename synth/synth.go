// SPDX-License-Identifier: MIT
// Package: strand/synth
//
// synth.go - the pattern-driven string synthesizer.
//
// Contract:
//   • Validation first: pattern and shot count are checked before any source
//     call; invalid input consumes no entropy.
//   • Sequential mode calls the source string-major, position-minor.
//   • Batch mode draws one combined sample per string in request order, then
//     decodes strings concurrently and reassembles them in request order;
//     the consumed bit stream is identical to Sequential mode.
//   • Any failure aborts the whole batch; no partial results are returned.
//
// Determinism:
//   - Given a deterministic source, both modes return identical batches.
//   - Rejection sampling (WithUniform) is the one exception in Batch mode:
//     redraw order depends on task scheduling.
//
// Complexity: O(shots · TotalBits) draw work; Batch decoding runs on at most
// `workers` goroutines.

package synth

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/strand/bitsource"
	"github.com/katalvlaran/strand/entropy"
	"github.com/katalvlaran/strand/pattern"
	"github.com/katalvlaran/strand/symbol"
)

// maxRedraws caps rejection-sampling attempts per position so a misbehaving
// source cannot spin the synthesizer forever. A draw is rejected with
// probability at most 6/16, so 64 attempts put the failure odds below
// 2^-85 for honest sources.
const maxRedraws = 64

// Synthesizer produces random strings matching a structural pattern, drawing
// raw bits from an injected bitsource.Source.
//
// A Synthesizer is immutable after New and safe for concurrent use as long
// as its source is.
type Synthesizer struct {
	src bitsource.Source
	cfg config
}

// New builds a Synthesizer around src. The source must be non-nil
// (ErrNilSource otherwise); option values are validated by the option
// constructors themselves.
func New(src bitsource.Source, opts ...Option) (*Synthesizer, error) {
	if src == nil {
		return nil, fmt.Errorf("%s: %w", opNew, ErrNilSource)
	}
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Synthesizer{src: src, cfg: cfg}, nil
}

// Synthesize produces shots independent strings matching the D/L marker
// pattern raw, together with the Shannon entropy (bits) of the produced
// batch.
//
// Validation failures (pattern.ErrInvalidPattern, pattern.ErrInvalidShots)
// abort before the first source call. Mid-batch failures abort the whole
// batch; callers needing partial results should synthesize size-1 batches
// and assemble externally.
func (s *Synthesizer) Synthesize(ctx context.Context, raw string, shots int) ([]string, float64, error) {
	// 1) Validate caller input before touching the entropy source.
	p, err := pattern.Parse(raw)
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", opSynthesize, err)
	}
	return s.run(ctx, opSynthesize, p, shots)
}

// Alternating produces shots strings of the implicit alternating pattern
// "DLDL…" of the given length: digits at even positions, letters at odd
// ones. The length must be positive and even.
func (s *Synthesizer) Alternating(ctx context.Context, length, shots int) ([]string, float64, error) {
	p, err := pattern.Alternating(length)
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", opAlternating, err)
	}
	return s.run(ctx, opAlternating, p, shots)
}

// run validates the shot count, dispatches the configured mode and scores
// the finished batch.
func (s *Synthesizer) run(ctx context.Context, op string, p pattern.Pattern, shots int) ([]string, float64, error) {
	if err := pattern.ValidateShots(shots); err != nil {
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}

	var (
		batch []string
		err   error
	)
	switch s.cfg.mode {
	case Batch:
		batch, err = s.runBatch(ctx, op, p, shots)
	default:
		batch, err = s.runSequential(ctx, op, p, shots)
	}
	if err != nil {
		return nil, 0, err
	}
	// The entropy of the whole batch is part of the result contract.
	return batch, entropy.Estimate(batch), nil
}

// runSequential generates every string on the calling goroutine, one sample
// per position, in string-major, position-minor order.
func (s *Synthesizer) runSequential(ctx context.Context, op string, p pattern.Pattern, shots int) ([]string, error) {
	batch := make([]string, shots)
	buf := make([]byte, len(p))
	for shot := 0; shot < shots; shot++ {
		for pos, class := range p {
			sym, err := s.sampleSymbol(ctx, op, class, shot, pos)
			if err != nil {
				return nil, err
			}
			buf[pos] = sym
		}
		batch[shot] = string(buf)
	}
	return batch, nil
}

// runBatch draws one combined sample per string in request order, then
// decodes the strings concurrently and reassembles them in request order.
func (s *Synthesizer) runBatch(ctx context.Context, op string, p pattern.Pattern, shots int) ([]string, error) {
	// 1) Combined draws, serialized in request order: the source sees the
	//    exact bit stream Sequential mode would consume.
	total := p.TotalBits()
	combined := make([]string, shots)
	for shot := 0; shot < shots; shot++ {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("%s: shot %d: %w", op, shot, err)
		}
		bits, err := s.src.DrawBits(ctx, total)
		if err != nil {
			return nil, fmt.Errorf("%s: shot %d: combined draw (width %d): %w: %w",
				op, shot, total, ErrSourceFailure, err)
		}
		combined[shot] = bits
	}

	// 2) Decode concurrently; each result lands in its request-order slot,
	//    and the first failure cancels the remaining tasks.
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.cfg.workers)
	batch := make([]string, shots)
	for shot := 0; shot < shots; shot++ {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return fmt.Errorf("%s: shot %d: %w", op, shot, err)
			}
			str, err := s.decode(gctx, op, p, combined[shot], shot)
			if err != nil {
				return err
			}
			batch[shot] = str
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return batch, nil
}

// decode slices one combined sample per pattern position and maps every
// slice to its symbol. A slice shorter than its position width surfaces as
// *symbol.BitLengthError; surplus bits mean the source overshot the
// requested combined width and surface as ErrSourceFailure.
func (s *Synthesizer) decode(ctx context.Context, op string, p pattern.Pattern, combined string, shot int) (string, error) {
	buf := make([]byte, len(p))
	offset := 0
	for pos, class := range p {
		width := class.BitWidth()
		if remain := len(combined) - offset; remain < width {
			blErr := &symbol.BitLengthError{Pos: pos, Want: width, Got: remain}
			return "", fmt.Errorf("%s: shot %d: combined draw too short: %w", op, shot, blErr)
		}
		slice := combined[offset : offset+width]
		offset += width

		var (
			sym byte
			err error
		)
		if s.cfg.uniform {
			sym, err = s.mapUniform(ctx, op, class, shot, pos, slice)
		} else {
			sym, err = symbol.Map(slice, class, pos)
			if err != nil {
				err = wrapMapErr(op, shot, err)
			}
		}
		if err != nil {
			return "", err
		}
		buf[pos] = sym
	}
	if offset != len(combined) {
		return "", fmt.Errorf("%s: shot %d: combined draw returned %d bits, want %d: %w",
			op, shot, len(combined), offset, ErrSourceFailure)
	}
	return string(buf), nil
}

// sampleSymbol draws one sample of the class width and maps it under the
// configured policy.
func (s *Synthesizer) sampleSymbol(ctx context.Context, op string, class symbol.Class, shot, pos int) (byte, error) {
	bits, err := s.draw(ctx, op, class.BitWidth(), shot, pos)
	if err != nil {
		return 0, err
	}
	if !s.cfg.uniform {
		sym, err := symbol.Map(bits, class, pos)
		if err != nil {
			return 0, wrapMapErr(op, shot, err)
		}
		return sym, nil
	}
	return s.mapUniform(ctx, op, class, shot, pos, bits)
}

// mapUniform maps bits under the rejection policy, redrawing rejected
// samples up to maxRedraws attempts in total.
func (s *Synthesizer) mapUniform(ctx context.Context, op string, class symbol.Class, shot, pos int, bits string) (byte, error) {
	for attempt := 0; ; attempt++ {
		sym, ok, err := symbol.MapUniform(bits, class, pos)
		if err != nil {
			return 0, wrapMapErr(op, shot, err)
		}
		if ok {
			return sym, nil
		}
		if attempt+1 == maxRedraws {
			break
		}
		// Rejected tail value; redraw for uniformity.
		bits, err = s.draw(ctx, op, class.BitWidth(), shot, pos)
		if err != nil {
			return 0, err
		}
	}
	return 0, fmt.Errorf("%s: shot %d, position %d: %d draws rejected: %w",
		op, shot, pos, maxRedraws, ErrSourceFailure)
}

// draw requests width bits from the source, wrapping failures with full
// shot/position diagnostics and both error chains (ErrSourceFailure plus
// the source's own error).
func (s *Synthesizer) draw(ctx context.Context, op string, width, shot, pos int) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("%s: shot %d: %w", op, shot, err)
	}
	bits, err := s.src.DrawBits(ctx, width)
	if err != nil {
		return "", fmt.Errorf("%s: shot %d, position %d (width %d): %w: %w",
			op, shot, pos, width, ErrSourceFailure, err)
	}
	return bits, nil
}

// wrapMapErr adds shot context to a mapping error; non-binary samples are
// additionally marked as source failures, since the source broke its output
// contract to produce them.
func wrapMapErr(op string, shot int, err error) error {
	if errors.Is(err, symbol.ErrNotBinary) {
		return fmt.Errorf("%s: shot %d: %w: %w", op, shot, ErrSourceFailure, err)
	}
	return fmt.Errorf("%s: shot %d: %w", op, shot, err)
}
