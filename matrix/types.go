// SPDX-License-Identifier: MIT

// Package matrix: domain types shared by storage, the dot-product kernel and
// the parallel engine. Errors and options live in dedicated files
// (errors.go, options.go).
package matrix

// Floats is a constraint for floating-point element types.
type Floats interface {
	~float32 | ~float64
}

// SignedInts is a constraint for signed integer element types.
type SignedInts interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// UnsignedInts is a constraint for unsigned integer element types.
type UnsignedInts interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Integers is a constraint for all integer element types.
type Integers interface {
	SignedInts | UnsignedInts
}

// Number is any element type the engine can multiply: it has a zero value,
// supports + and *, and is a plain value safe to copy across goroutines.
//
// Exact equality of results is only meaningful for Integers. Float sums are
// accumulated left to right in a fixed order, but callers should still
// compare floating-point results with a tolerance.
type Number interface {
	Integers | Floats
}

// Vector is an owned, ordered sequence of elements used as one dot-product
// operand. Row and Column always return fresh copies, never views.
type Vector[T Number] []T

// Len returns the number of elements.
func (v Vector[T]) Len() int { return len(v) }

// TaskInput is one unit of work: the operands of a single output cell.
// Idx is the flat row-major destination index (i*other.Cols() + j).
type TaskInput[T Number] struct {
	Idx int
	Row Vector[T]
	Col Vector[T]
}

// TaskOutput is the reply for a single cell. Exactly one of Val or Err is
// meaningful: a non-nil Err means the cell could not be computed.
// Worker records which worker produced the reply.
type TaskOutput[T Number] struct {
	Idx    int
	Worker int
	Val    T
	Err    error
}

// Task pairs a TaskInput with its single-use reply handle.
type Task[T Number] struct {
	Input TaskInput[T]
	reply *Future[T]
}
