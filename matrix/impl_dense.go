// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Row/Column return errors instead of panicking.
//   - Hand out owned copies (Row, Column, Data) so operands can cross goroutines without aliasing.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) copy; At: O(1); Row: O(c); Column: O(r); String: O(r*c).

package matrix

import (
	"fmt"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxNew    = "NewDense"
	ctxAt     = "At"
	ctxRow    = "Row"
	ctxColumn = "Column"
)

// ---------- Formatting literals ----------
const (
	_fmtOpen     = "{"
	_fmtClose    = "}"
	_fmtElemSep  = " "
	_fmtRowSep   = ", "
	_fmtGoString = "Matrix(rows=%d, columns=%d, %s)"
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is an immutable row-major matrix.
//   - r,c hold dimensions (rows, cols).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//
// A Dense exclusively owns data; nothing outside the package can reach it.
type Dense[T Number] struct {
	r, c int // row and column counts (> 0)
	data []T // contiguous row-major storage (len == r*c)
}

// Compile-time assertion for fmt.Stringer / fmt.GoStringer conformance.
var (
	_ fmt.Stringer   = (*Dense[int])(nil)
	_ fmt.GoStringer = (*Dense[float64])(nil)
)

// NewDense wraps a copy of data as a rows×cols matrix.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrInvalidDimensions.
//   - Stage 2: validate len(data) == rows*cols; else ErrBadShape.
//   - Stage 3: copy data so the caller keeps no alias into the matrix.
//
// Errors:
//   - ErrInvalidDimensions, ErrBadShape (both wrapped with call context).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense[T Number](data []T, rows, cols int) (*Dense[T], error) {
	if err := ValidateShape(len(data), rows, cols); err != nil {
		return nil, denseErrorf(ctxNew, rows, cols, err)
	}
	buf := make([]T, len(data))
	copy(buf, data)

	return &Dense[T]{r: rows, c: cols, data: buf}, nil
}

// newDenseOwned adopts buf without copying. Internal: the caller guarantees
// len(buf) == rows*cols and that no one else holds buf.
func newDenseOwned[T Number](buf []T, rows, cols int) *Dense[T] {
	return &Dense[T]{r: rows, c: cols, data: buf}
}

// Rows returns the row count. No side effects.
func (m *Dense[T]) Rows() int { return m.r }

// Cols returns the column count. No side effects.
func (m *Dense[T]) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
func (m *Dense[T]) Shape() (rows, cols int) { return m.r, m.c }

// At returns the value at (row, col) or ErrOutOfRange.
func (m *Dense[T]) At(row, col int) (T, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		var zero T
		return zero, denseErrorf(ctxAt, row, col, ErrOutOfRange)
	}

	return m.data[row*m.c+col], nil
}

// Data returns a copy of the row-major backing buffer.
func (m *Dense[T]) Data() []T {
	out := make([]T, len(m.data))
	copy(out, m.data)

	return out
}

// Row returns an owned copy of row i: data[i*c : (i+1)*c].
// Errors: ErrOutOfRange when i is outside [0, Rows()).
// Complexity: O(c).
func (m *Dense[T]) Row(i int) (Vector[T], error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf(ctxRow, i, 0, ErrOutOfRange)
	}

	return m.row(i), nil
}

// Column returns an owned copy of column j gathered with stride c:
// data[j], data[j+c], data[j+2c], ... for Rows() elements.
// Errors: ErrOutOfRange when j is outside [0, Cols()).
// Complexity: O(r).
func (m *Dense[T]) Column(j int) (Vector[T], error) {
	if j < 0 || j >= m.c {
		return nil, denseErrorf(ctxColumn, 0, j, ErrOutOfRange)
	}

	return m.column(j), nil
}

// row is Row without the bounds check, for the dispatcher's hot loop.
func (m *Dense[T]) row(i int) Vector[T] {
	out := make(Vector[T], m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out
}

// column is Column without the bounds check.
func (m *Dense[T]) column(j int) Vector[T] {
	out := make(Vector[T], m.r)
	for i, off := 0, j; i < m.r; i, off = i+1, off+m.c {
		out[i] = m.data[off]
	}

	return out
}

// String renders the matrix as {e00  e01 , e10  e11 }: every element is
// followed by one space, columns inside a row get one extra space between
// them, and rows are joined by ", ". Debug and log consumers rely on this
// exact layout.
func (m *Dense[T]) String() string {
	var sb strings.Builder
	sb.WriteString(_fmtOpen)
	for i := 0; i < m.r; i++ {
		for j := 0; j < m.c; j++ {
			fmt.Fprintf(&sb, "%v", m.data[i*m.c+j])
			sb.WriteString(_fmtElemSep)
			if j != m.c-1 {
				sb.WriteString(_fmtElemSep)
			}
		}
		if i != m.r-1 {
			sb.WriteString(_fmtRowSep)
		}
	}
	sb.WriteString(_fmtClose)

	return sb.String()
}

// GoString renders the shape alongside String, e.g.
// Matrix(rows=2, columns=2, {22  28 , 49  64 }). Used by %#v.
func (m *Dense[T]) GoString() string {
	return fmt.Sprintf(_fmtGoString, m.r, m.c, m.String())
}
