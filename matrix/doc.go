// Package matrix multiplies dense matrices in parallel.
//
// The matrix package provides:
//
//   - Dense[T], an immutable row-major matrix over any Number element type,
//     with owned-copy Row/Column extraction.
//   - Dot, the dot-product kernel used for every output cell.
//   - Pool[T], a persistent set of workers. Pool.Multiply builds one task per
//     output cell, routes it to worker idx % N (or to a shared queue), and
//     collects replies in row-major order.
//   - Multiply / Dense.Multiply / MustMul, one-shot facades that spawn a pool
//     for a single call.
//
// Every task has its own single-use reply carrying either a value or an
// error, so a failing cell surfaces as an error return instead of a hang.
//
// Matrices render as {22  28 , 49  64 } via String and as
// Matrix(rows=2, columns=2, {22  28 , 49  64 }) via %#v.
//
// Results for integer types are exact and reproducible. Float sums are
// accumulated in a fixed order, but compare them with a tolerance.
package matrix
