// SPDX-License-Identifier: MIT

// Package matrix - parallel multiplication: dispatcher and collector.
//
// Implementation:
//   - Stage 1 (Validate): a.Cols == b.Rows, before any task exists.
//   - Stage 2 (Dispatch): one task per output cell in row-major order; the
//     futures are kept in the same order.
//   - Stage 3 (Collect): drain futures in submission order into a fresh
//     buffer; the first failed cell aborts the call with an error.
//
// Determinism:
//   - Completion order across workers is racy, but every cell has its own
//     reply handle, so the assembled output never depends on timing.

package matrix

import (
	"fmt"
	"log/slog"
)

// Operation name constants for unified error wrapping.
const (
	opMultiply      = "Multiply"
	opMulSequential = "MulSequential"
	opMustMul       = "MustMul"
)

// matrixErrorf wraps err with an operation tag, preserving it for errors.Is.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Multiply computes a × b on the pool's workers and blocks until every cell
// is collected.
//
// Errors:
//   - ErrNilMatrix / ErrDimensionMismatch before anything is dispatched.
//   - ErrPoolClosed if the pool was closed.
//   - Any per-cell failure (e.g. ErrLengthMismatch, ErrWorkerPanic), wrapped
//     with the failing index.
//
// Complexity:
//   - Time O(r*c*k) spread over the workers; Space O(r*c*(k+1)) for the
//     owned operand copies plus the result.
func (p *Pool[T]) Multiply(a, b *Dense[T]) (*Dense[T], error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMultiply, err)
	}
	futures, err := p.dispatch(a, b)
	if err != nil {
		return nil, matrixErrorf(opMultiply, err)
	}
	out, err := p.collect(futures, a.r, b.c)
	if err != nil {
		return nil, matrixErrorf(opMultiply, err)
	}

	return out, nil
}

// dispatch submits one task per destination cell, i-major then j, and
// returns the futures indexed by idx. On a submit failure the futures
// already handed out are abandoned.
func (p *Pool[T]) dispatch(a, b *Dense[T]) ([]*Future[T], error) {
	futures := make([]*Future[T], 0, a.r*b.c)
	var i, j int
	for i = 0; i < a.r; i++ {
		for j = 0; j < b.c; j++ {
			// Each task gets its own copies; nothing is shared with workers.
			in := TaskInput[T]{
				Idx: i*b.c + j,
				Row: a.row(i),
				Col: b.column(j),
			}
			f, err := p.Submit(in)
			if err != nil {
				abandonAll(futures)
				return nil, err
			}
			futures = append(futures, f)
		}
	}

	return futures, nil
}

// collect drains futures strictly in idx order into a rows×cols matrix.
func (p *Pool[T]) collect(futures []*Future[T], rows, cols int) (*Dense[T], error) {
	data := make([]T, rows*cols)
	for idx, f := range futures {
		out := f.Result()
		if out.Err != nil {
			abandonAll(futures[idx+1:])
			p.log.Error("multiply aborted",
				slog.Int("idx", out.Idx), slog.Int("worker", out.Worker), slog.Any("err", out.Err))
			return nil, fmt.Errorf("cell %d: %w", out.Idx, out.Err)
		}
		data[out.Idx] = out.Val
		p.opts.onCollect(out.Idx, out.Worker)
	}

	return newDenseOwned(data, rows, cols), nil
}

func abandonAll[T Number](futures []*Future[T]) {
	for _, f := range futures {
		f.Abandon()
	}
}

// MulSequential is the single-threaded reference: the same row/column
// extraction and the same Dot kernel as the parallel engine, without any
// workers. Intended for tests and benchmarks.
func MulSequential[T Number](a, b *Dense[T]) (*Dense[T], error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMulSequential, err)
	}
	data := make([]T, a.r*b.c)
	cols := make([]Vector[T], b.c)
	for j := range cols {
		cols[j] = b.column(j)
	}
	var (
		i, j int
		err  error
	)
	for i = 0; i < a.r; i++ {
		row := a.row(i)
		for j = 0; j < b.c; j++ {
			if data[i*b.c+j], err = Dot(row, cols[j]); err != nil {
				return nil, matrixErrorf(opMulSequential, fmt.Errorf("cell %d: %w", i*b.c+j, err))
			}
		}
	}

	return newDenseOwned(data, a.r, b.c), nil
}
