// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All operations MUST return these sentinels (optionally wrapped with
// %w) and tests MUST check them via errors.Is. No operation panics on
// user-triggered error conditions, except MustMul, whose contract is to panic.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Facades wrap with fmt.Errorf("<Op>: %w", ErrX)
// through matrixErrorf; callers still match with errors.Is.
//
// ERROR PRIORITY (enforced in tests):
// nil -> shape -> dimension mismatch -> per-cell failures.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrBadShape is returned when the backing data length differs from rows*cols.
	ErrBadShape = errors.New("matrix: data length does not match shape")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible operands, i.e. a.Cols != b.Rows.
	// It is detected before any task is dispatched.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrLengthMismatch is returned by Dot when the operand lengths differ.
	ErrLengthMismatch = errors.New("matrix: vector length mismatch")

	// ErrNilMatrix indicates that a nil matrix was passed as an operand.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrPoolClosed is returned when work is submitted to a closed Pool.
	ErrPoolClosed = errors.New("matrix: pool is closed")

	// ErrWorkerPanic is carried in a TaskOutput when computing a cell panicked.
	ErrWorkerPanic = errors.New("matrix: worker panicked")

	// ErrReplyAbandoned is returned on delivery when the receiver gave up on
	// the reply (see Future.Abandon).
	ErrReplyAbandoned = errors.New("matrix: reply receiver abandoned")

	// ErrReplyDelivered is returned when a single-use reply is delivered twice.
	ErrReplyDelivered = errors.New("matrix: reply already delivered")
)
