// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the parallel engine. This file
// defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that resolves defaults in one place.
//
// Design goals:
//   - Deterministic behavior: no global state; routing is a pure function of idx.
//   - No dead switches: each option impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package matrix

import (
	"log/slog"
	"runtime"

	"github.com/katalvlaran/parmul/workerpool"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultWorkers is the number of workers a pool spawns.
	DefaultWorkers = 4

	// DefaultQueueSize is the buffer of each worker queue.
	DefaultQueueSize = workerpool.DefaultQueueSize

	// DefaultSharedQueue selects per-worker (pinned) queues.
	DefaultSharedQueue = false
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicWorkersInvalid   = "matrix: WithWorkers: n must be > 0"
	panicQueueSizeInvalid = "matrix: WithQueueSize: n must be >= 0"
	panicRouterNil        = "matrix: WithRouter: router must not be nil"
)

// Router picks the worker for destination index idx out of workers.
// The result must lie in [0, workers).
type Router func(idx, workers int) int

// RoundRobin pins idx to worker idx % workers. Cells land on the same worker
// on every run regardless of timing; there is no rebalancing, which is fine
// while every cell costs one dot product of the same length.
func RoundRobin(idx, workers int) int { return idx % workers }

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option.
type Options struct {
	workers     int
	queueSize   int
	sharedQueue bool
	router      Router
	logger      *slog.Logger
	onCollect   func(idx, worker int)
}

// Workers reports the resolved worker count.
func (o Options) Workers() int { return o.workers }

// Logger reports the resolved logger; never nil.
func (o Options) Logger() *slog.Logger { return o.logger }

// WithWorkers sets the number of workers. Panics if n <= 0.
func WithWorkers(n int) Option {
	if n <= 0 {
		panic(panicWorkersInvalid)
	}

	return func(o *Options) { o.workers = n }
}

// WithAutoWorkers sizes the pool to runtime.GOMAXPROCS(0).
func WithAutoWorkers() Option {
	return func(o *Options) { o.workers = runtime.GOMAXPROCS(0) }
}

// WithQueueSize sets the buffer of each worker queue; 0 means unbuffered.
// Panics if n < 0.
func WithQueueSize(n int) Option {
	if n < 0 {
		panic(panicQueueSizeInvalid)
	}

	return func(o *Options) { o.queueSize = n }
}

// WithRouter replaces RoundRobin with a custom static routing rule.
// Ignored under WithSharedQueue. Panics on nil.
func WithRouter(r Router) Option {
	if r == nil {
		panic(panicRouterNil)
	}

	return func(o *Options) { o.router = r }
}

// WithSharedQueue makes all workers consume one queue: idle workers pick up
// the next cell, trading deterministic placement for load balancing.
// Output order is unaffected.
func WithSharedQueue() Option {
	return func(o *Options) { o.sharedQueue = true }
}

// WithLogger sets the structured logger. A nil logger keeps the default,
// which discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithOnCollect installs a hook called once per collected cell, on the
// calling goroutine, in row-major order. Useful for instrumentation.
func WithOnCollect(fn func(idx, worker int)) Option {
	return func(o *Options) { o.onCollect = fn }
}

// NewOptions resolves option setters against documented defaults.
func NewOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// gatherOptions applies user setters on top of defaults (last-writer-wins)
// and fills in any hooks left nil.
func gatherOptions(user ...Option) Options {
	o := Options{
		workers:     DefaultWorkers,
		queueSize:   DefaultQueueSize,
		sharedQueue: DefaultSharedQueue,
		router:      RoundRobin,
	}
	for _, set := range user {
		set(&o)
	}
	if o.logger == nil {
		o.logger = slog.New(slog.DiscardHandler)
	}
	if o.onCollect == nil {
		o.onCollect = func(int, int) {}
	}

	return o
}
