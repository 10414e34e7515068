// SPDX-License-Identifier: MIT
// Package matrix — public API facades.
//
// Purpose:
//   - Provide thin entry points for one-shot multiplication.
//   - Avoid any logic duplication — each facade delegates to Pool.Multiply.
//
// Strategy:
//   - Multiply and Dense.Multiply spawn a pool per call and tear it down
//     before returning. This is the minimal variant; code that multiplies
//     repeatedly should keep one NewPool around and call Pool.Multiply.
//   - MustMul is the operator-style alias: same semantics, but any error
//     aborts the calling goroutine with a panic. Use Multiply when errors
//     must be handled.

package matrix

// Multiply computes a × b on a pool created for this call only.
// Dimension errors are reported before any worker is spawned.
func Multiply[T Number](a, b *Dense[T], opts ...Option) (*Dense[T], error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMultiply, err)
	}
	p := NewPool[T](opts...)
	out, err := p.Multiply(a, b)
	if cerr := p.Close(); err == nil && cerr != nil {
		return nil, matrixErrorf(opMultiply, cerr)
	}

	return out, err
}

// Multiply computes m × other with the default options on a per-call pool.
func (m *Dense[T]) Multiply(other *Dense[T]) (*Dense[T], error) {
	return Multiply(m, other)
}

// MustMul is Multiply that panics instead of returning an error, e.g. on
// ErrDimensionMismatch.
func MustMul[T Number](a, b *Dense[T], opts ...Option) *Dense[T] {
	out, err := Multiply(a, b, opts...)
	if err != nil {
		panic(matrixErrorf(opMustMul, err))
	}

	return out
}
