// SPDX-License-Identifier: MIT
// Package: standwave/wave
//
// options.go - functional options for Evaluate.
//
// Contract:
//   • Options are functional (type Option func(*evalConfig)).
//   • Option constructors validate and PANIC on meaningless inputs;
//     Evaluate itself never panics.
//   • Defaults come from newEvalConfig; no hidden globals.

package wave

import (
	"context"
	"runtime"
)

// Option customizes a single Evaluate call.
type Option func(*evalConfig)

type evalConfig struct {
	ctx     context.Context
	workers int
}

// newEvalConfig resolves defaults then applies opts in order.
func newEvalConfig(opts ...Option) evalConfig {
	cfg := evalConfig{
		ctx:     context.Background(),
		workers: runtime.GOMAXPROCS(0),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithWorkers bounds the number of goroutines evaluating slice ranges.
// WithWorkers(1) evaluates sequentially on the calling goroutine.
// Panics if k < 1.
func WithWorkers(k int) Option {
	if k < 1 {
		panic("wave: WithWorkers(k<1)")
	}
	return func(c *evalConfig) {
		c.workers = k
	}
}

// WithContext lets the caller abandon a long evaluation; Evaluate checks
// the context between slices. Panics on nil.
func WithContext(ctx context.Context) Option {
	if ctx == nil {
		panic("wave: WithContext(nil)")
	}
	return func(c *evalConfig) {
		c.ctx = ctx
	}
}
