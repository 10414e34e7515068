// SPDX-License-Identifier: MIT

package matrix

// Dot returns Σ a[k]*b[k], accumulated left to right starting from the zero
// value of T. Fails with ErrLengthMismatch when len(a) != len(b).
//
// The fixed accumulation order makes the parallel engine and MulSequential
// produce bit-identical results, floats included.
func Dot[T Number](a, b Vector[T]) (T, error) {
	var sum T
	if err := ValidateVecLen(a, b); err != nil {
		return sum, err
	}
	for k := range a {
		sum += a[k] * b[k]
	}

	return sum, nil
}
