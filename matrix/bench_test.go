// Package matrix_test provides benchmarks comparing the per-call pool, the
// persistent pool and the sequential reference, using seeded random data.
package matrix_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/parmul/matrix"
)

// benchSizes are the square matrix sizes to benchmark.
var benchSizes = []int{16, 64, 128}

// sink to defeat dead-code elimination
var sinkM *matrix.Dense[float64]

func BenchmarkMultiplyPerCall(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := RandFloatDense(b, n, n, 1337)
			B := RandFloatDense(b, n, n, 4242)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := matrix.Multiply(A, B)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkMultiplyPersistent(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := RandFloatDense(b, n, n, 11)
			B := RandFloatDense(b, n, n, 22)
			pool := matrix.NewPool[float64](matrix.WithAutoWorkers())
			defer pool.Close()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := pool.Multiply(A, B)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkMultiplySharedQueue(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := RandFloatDense(b, n, n, 5)
			B := RandFloatDense(b, n, n, 6)
			pool := matrix.NewPool[float64](matrix.WithAutoWorkers(), matrix.WithSharedQueue())
			defer pool.Close()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := pool.Multiply(A, B)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkMulSequential(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := RandFloatDense(b, n, n, 1)
			B := RandFloatDense(b, n, n, 2)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := matrix.MulSequential(A, B)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}
