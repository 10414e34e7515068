// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for shape and compatibility checks.
//  - Keep kernels/facades minimal by delegating nil/shape/length checks here.
//  - Return tagged sentinel errors so call sites can still match via errors.Is.
//
// Determinism & Performance:
//  - All checks are pure, O(1) and allocate nothing on the success path.

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateShape ensures rows and cols are positive and that n elements fill
// exactly rows*cols cells. A shape whose cell count does not fit in an int
// is rejected before multiplying.
//
// Errors: ErrInvalidDimensions, ErrBadShape.
func ValidateShape(n, rows, cols int) error {
	if rows <= 0 || cols <= 0 {
		return validatorErrorf("ValidateShape", ErrInvalidDimensions)
	}
	if cols > math.MaxInt/rows {
		return validatorErrorf("ValidateShape",
			fmt.Errorf("%dx%d overflows int: %w", rows, cols, ErrBadShape))
	}
	if n != rows*cols {
		return validatorErrorf("ValidateShape", ErrBadShape)
	}

	return nil
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Use as the first step in composite validations.
func ValidateNotNil[T Number](m *Dense[T]) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateMulCompatible ensures a and b are non-nil and a.Cols == b.Rows.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(1).
func ValidateMulCompatible[T Number](a, b *Dense[T]) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if a.c != b.r {
		return validatorErrorf("ValidateMulCompatible",
			fmt.Errorf("%dx%d * %dx%d: %w", a.r, a.c, b.r, b.c, ErrDimensionMismatch))
	}

	return nil
}

// ValidateVecLen ensures two dot-product operands have the same length.
// Errors: ErrLengthMismatch.
func ValidateVecLen[T Number](a, b Vector[T]) error {
	if len(a) != len(b) {
		return validatorErrorf("ValidateVecLen",
			fmt.Errorf("%d != %d: %w", len(a), len(b), ErrLengthMismatch))
	}

	return nil
}
