// Package linden is a dense linear-algebra core: a column-major float64
// matrix kernel plus the factorization, norm and random-distribution
// consumers built strictly on top of it.
//
// 🚀 What is linden?
//
//	A small, deterministic numeric library organized as one storage core
//	and thin consumers of its contract:
//		• dense/    — column-major Dense matrix: arithmetic, matrix &
//		  Kronecker products, transpose, symmetrize, submatrix regions,
//		  flat-array interop, identity/diagonal constructors, random fill
//		• decomp/   — LU, Cholesky, QR, RQ and Jacobi SVD factorizations
//		• norm/     — Frobenius/One/Infinity matrix norms & vector norms
//		• randdist/ — uniform/Gaussian samplers, multivariate Gaussian
//
// ✨ Design rules
//
//   - Sentinel errors matched via errors.Is; every precondition validated
//     before the first element write — a failed operation never leaves a
//     half-mutated matrix behind
//   - Three call shapes per arithmetic operation (into-result, return-new,
//     in-place) all funneled through one canonical kernel
//   - Aliasing-sensitive operations (matrix product, Kronecker, transpose)
//     compute into scratch and commit atomically
//   - Pure Go, no cgo, no hidden deps; no internal locking — callers own
//     the concurrency story
//
// Quick example:
//
//	a, _ := dense.New(2, 2)
//	_ = a.FromSlice([]float64{1, 3, 2, 4}, dense.ColMajor) // [[1,2],[3,4]]
//	b, _ := dense.Identity(2, 2)
//	c, _ := a.Mul(b)
//	fmt.Print(c) // [1, 2]\n[3, 4]
package linden
