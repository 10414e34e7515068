// SPDX-License-Identifier: MIT

// Package matrix - persistent worker pool for cell computation.
//
// A Pool is created once, reused by any number of Multiply calls, and shut
// down with Close. Each worker owns a private queue (pinned mode) unless
// WithSharedQueue is set. The per-call facades in api.go build a throwaway
// Pool around a single multiplication.

package matrix

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/parmul/workerpool"
)

// Pool computes cells on a fixed set of long-lived workers.
type Pool[T Number] struct {
	opts Options
	log  *slog.Logger
	wp   *workerpool.Pool[Task[T]]
}

// NewPool spawns the workers described by opts. They live until Close.
func NewPool[T Number](opts ...Option) *Pool[T] {
	o := gatherOptions(opts...)
	log := o.logger
	mode := workerpool.Pinned
	if o.sharedQueue {
		mode = workerpool.Shared
	}
	p := &Pool[T]{opts: o, log: log}
	p.wp = workerpool.New[Task[T]](o.workers, func(worker int, task Task[T]) {
		runTask(log, worker, task)
	}, workerpool.WithMode(mode), workerpool.WithQueueSize(o.queueSize))
	log.Debug("pool started",
		slog.Int("workers", o.workers), slog.Bool("shared_queue", o.sharedQueue))

	return p
}

// Workers returns the number of workers.
func (p *Pool[T]) Workers() int { return p.wp.Workers() }

// Processed returns, per worker, how many tasks it has started.
func (p *Pool[T]) Processed() []uint64 { return p.wp.Processed() }

// Submit routes one task to its worker and returns the reply handle.
// The future always resolves, with either a value or an error.
//
// Errors:
//   - ErrPoolClosed after Close.
//   - ErrOutOfRange when a custom Router returns a worker outside the pool.
func (p *Pool[T]) Submit(in TaskInput[T]) (*Future[T], error) {
	task, f := newTask(in)
	worker := p.opts.router(in.Idx, p.wp.Workers())
	if err := p.wp.Submit(worker, task); err != nil {
		switch {
		case errors.Is(err, workerpool.ErrClosed):
			return nil, ErrPoolClosed
		case errors.Is(err, workerpool.ErrNoSuchWorker):
			return nil, fmt.Errorf("route idx %d to worker %d: %w", in.Idx, worker, ErrOutOfRange)
		default:
			return nil, err
		}
	}

	return f, nil
}

// Close stops the workers after they drain their queues and waits for them
// to exit. Later Submit and Multiply calls fail with ErrPoolClosed.
// Safe to call more than once.
func (p *Pool[T]) Close() error {
	err := p.wp.Close()
	p.log.Debug("pool closed", slog.Int("workers", p.wp.Workers()))

	return err
}
