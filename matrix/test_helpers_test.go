// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic test fixtures for storage and the engine.
//   • Keep random data seeded so every run sees the same matrices.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/parmul/matrix"
)

// MustDense wraps data as an r×c *Dense or fails the test.
func MustDense[T matrix.Number](t testing.TB, data []T, r, c int) *matrix.Dense[T] {
	t.Helper()
	m, err := matrix.NewDense(data, r, c)
	if err != nil {
		t.Fatalf("NewDense(%d,%d): %v", r, c, err)
	}

	return m
}

// RandIntDense returns an r×c matrix of ints in [-50, 50) from a fixed seed.
func RandIntDense(t testing.TB, r, c int, seed int64) *matrix.Dense[int] {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	data := make([]int, r*c)
	for i := range data {
		data[i] = rng.Intn(100) - 50
	}

	return MustDense(t, data, r, c)
}

// RandFloatDense returns an r×c matrix of floats in [-1, 1) from a fixed seed.
func RandFloatDense(t testing.TB, r, c int, seed int64) *matrix.Dense[float64] {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	data := make([]float64, r*c)
	for i := range data {
		data[i] = rng.Float64()*2 - 1
	}

	return MustDense(t, data, r, c)
}

// NaiveProduct computes a×b straight from the dot-product definition using
// only the public accessors.
func NaiveProduct[T matrix.Number](t testing.TB, a, b *matrix.Dense[T]) []T {
	t.Helper()
	out := make([]T, a.Rows()*b.Cols())
	for i := 0; i < a.Rows(); i++ {
		for j := 0; j < b.Cols(); j++ {
			var sum T
			for k := 0; k < a.Cols(); k++ {
				av, err := a.At(i, k)
				if err != nil {
					t.Fatalf("At(%d,%d): %v", i, k, err)
				}
				bv, err := b.At(k, j)
				if err != nil {
					t.Fatalf("At(%d,%d): %v", k, j, err)
				}
				sum += av * bv
			}
			out[i*b.Cols()+j] = sum
		}
	}

	return out
}

// scenarioA and scenarioB are the 2×3 and 3×2 matrices whose product is
// {{22,28},{49,64}}.
func scenarioA(t testing.TB) *matrix.Dense[int] {
	return MustDense(t, []int{1, 2, 3, 4, 5, 6}, 2, 3)
}

func scenarioB(t testing.TB) *matrix.Dense[int] {
	return MustDense(t, []int{1, 2, 3, 4, 5, 6}, 3, 2)
}
