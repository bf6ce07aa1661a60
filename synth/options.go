// SPDX-License-Identifier: MIT
// Package: strand/synth
//
// options.go - functional options for the synthesizer.
//
// Contract (strict):
//   • Options are functional (type Option func(*config)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs;
//     the synthesizer itself never panics at runtime.
//   • Concurrency is explicit: the worker bound defaults to the available
//     hardware parallelism and only WithWorkers changes it.
//   • No hidden globals; everything flows through config.

package synth

import "runtime"

// Option customizes a Synthesizer at construction time.
type Option func(*config)

// config carries the resolved synthesis policy.
type config struct {
	mode    Mode // Sequential or Batch
	uniform bool // rejection-sampling mapping instead of biased modulo
	workers int  // bounded pool size for Batch decode tasks
}

// defaultConfig returns the baseline policy: sequential mode, the biased
// modulo mapping (the documented default), one worker per available CPU.
func defaultConfig() config {
	return config{
		mode:    Sequential,
		uniform: false,
		workers: runtime.GOMAXPROCS(0),
	}
}

// WithMode selects the generation mode. Panics on an undeclared mode.
func WithMode(m Mode) Option {
	if !m.valid() {
		// Fail fast: option constructors validate and panic.
		panic("synth: WithMode(unknown mode)")
	}
	return func(c *config) {
		c.mode = m
	}
}

// WithUniform switches the bit-to-symbol mapping to the rejection-sampling
// variant: samples landing in the truncated tail are redrawn, so every
// symbol of a class becomes equally likely. Costs a small, bounded number
// of extra draws per affected position. In Batch mode redraws happen inside
// decode tasks, so the source must be safe for concurrent use (every
// bitsource implementation is).
func WithUniform() Option {
	return func(c *config) {
		c.uniform = true
	}
}

// WithWorkers bounds the Batch decode pool. Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		// Fail fast to keep the errgroup limit meaningful.
		panic("synth: WithWorkers(n < 1)")
	}
	return func(c *config) {
		c.workers = n
	}
}
