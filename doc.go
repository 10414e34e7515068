// Package parmul is a parallel dense-matrix multiplication engine.
//
// What is parmul?
//
//	A small library that multiplies two dense matrices by spreading the
//	output cells over a fixed set of worker goroutines:
//		• one task per output cell (row copy + column copy + destination index)
//		• static round-robin routing (idx % N) or a shared load-balanced queue
//		• a dedicated single-use reply per task, carrying a value or an error
//		• collection in row-major order, so output never depends on timing
//
// Under the hood, everything is organized under two subpackages:
//
//	matrix/     — Dense[T], Dot, Pool, Multiply / MustMul facades
//	workerpool/ — generic long-lived workers with pinned or shared queues
//
// Quick example:
//
//	a, _ := matrix.NewDense([]int{1, 2, 3, 4, 5, 6}, 2, 3)
//	b, _ := matrix.NewDense([]int{1, 2, 3, 4, 5, 6}, 3, 2)
//	c, _ := a.Multiply(b)
//	fmt.Println(c) // {22  28 , 49  64 }
//
// Not a general linear-algebra library: no inversion, decomposition or
// sparse formats.
//
//	go get github.com/katalvlaran/parmul/matrix
package parmul
