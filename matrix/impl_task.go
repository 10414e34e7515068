// SPDX-License-Identifier: MIT

// Package matrix - task envelope and single-use reply handle.
//
// Every Task carries its own Future. The worker always delivers exactly one
// TaskOutput into it, either a value or an error, so a receiver can never
// block on a cell whose computation failed.

package matrix

import (
	"fmt"
	"log/slog"
	"sync/atomic"
)

// Future is the receiving half of a task's reply. It holds at most one
// TaskOutput; Result blocks until that output has been delivered.
type Future[T Number] struct {
	ch        chan TaskOutput[T] // cap 1: delivery never blocks the worker
	sent      atomic.Bool
	abandoned atomic.Bool
}

func newFuture[T Number]() *Future[T] {
	return &Future[T]{ch: make(chan TaskOutput[T], 1)}
}

// newTask builds the envelope for one cell together with its reply handle.
func newTask[T Number](in TaskInput[T]) (Task[T], *Future[T]) {
	f := newFuture[T]()

	return Task[T]{Input: in, reply: f}, f
}

// deliver hands out to the receiver. It fails with ErrReplyAbandoned when
// the receiver is gone and with ErrReplyDelivered on a second call.
func (f *Future[T]) deliver(out TaskOutput[T]) error {
	if !f.sent.CompareAndSwap(false, true) {
		return ErrReplyDelivered
	}
	if f.abandoned.Load() {
		return ErrReplyAbandoned
	}
	f.ch <- out

	return nil
}

// Result blocks until the reply arrives and returns it. Calling Result more
// than once returns the same output.
func (f *Future[T]) Result() TaskOutput[T] {
	out := <-f.ch
	f.ch <- out // keep it available for later callers; cap 1 never blocks here

	return out
}

// Wait is Result split into the usual (value, error) pair.
func (f *Future[T]) Wait() (T, error) {
	out := f.Result()

	return out.Val, out.Err
}

// Abandon tells the sender nobody will read the reply. A later delivery is
// dropped and reported as ErrReplyAbandoned.
func (f *Future[T]) Abandon() { f.abandoned.Store(true) }

// computeCell runs the dot product for one task and never panics: a panic
// in the kernel is turned into ErrWorkerPanic.
func computeCell[T Number](worker int, in TaskInput[T]) (out TaskOutput[T]) {
	out = TaskOutput[T]{Idx: in.Idx, Worker: worker}
	defer func() {
		if r := recover(); r != nil {
			out.Err = fmt.Errorf("cell %d: %v: %w", in.Idx, r, ErrWorkerPanic)
		}
	}()
	out.Val, out.Err = Dot(in.Row, in.Col)

	return out
}

// runTask is the worker-side handler: compute, then reply. A failed delivery
// is logged and the worker moves on to its next task.
func runTask[T Number](log *slog.Logger, worker int, task Task[T]) {
	out := computeCell(worker, task.Input)
	if out.Err != nil {
		log.Error("cell computation failed",
			slog.Int("idx", out.Idx), slog.Int("worker", worker), slog.Any("err", out.Err))
	}
	if err := task.reply.deliver(out); err != nil {
		log.Warn("reply not delivered",
			slog.Int("idx", out.Idx), slog.Int("worker", worker), slog.Any("err", err))
	}
}
