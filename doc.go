// Copyright ©2026 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package lcp solves dense boxed linear complementarity problems.
//
// A boxed LCP asks for vectors x and w satisfying
//
//	A·x = b + w,  lo ≤ x ≤ hi,
//
// where A is symmetric positive (semi-)definite and for every index
// exactly one of the complementarity conditions
//
//	x = lo and w ≥ 0
//	x = hi and w ≤ 0
//	lo < x < hi and w = 0
//
// holds. Solve handles the general boxed problem with an unbounded
// leading block and optional friction coupling; SolveBasic handles the
// classical non-negativity problem (lo = 0, hi = +∞).
//
// Both drivers use Dantzig's principal pivoting method: variables are
// introduced one at a time and driven into a valid complementarity
// region while all previously introduced variables are kept valid. The
// indices already introduced are partitioned into a clamped set C
// (w = 0) and a non-clamped set N (x pinned at a bound), and an LDLᵀ
// factorization of the clamped submatrix A[C,C] is maintained
// incrementally across set transitions rather than recomputed.
//
// Matrices are passed as row-major []float64 with leading dimension
// Pad(n). Only the lower triangle of A is meaningful; the strict upper
// triangle is scratch and is neither read nor preserved. The drivers
// permute A and the problem vectors in place, so callers that need the
// inputs afterwards must keep copies; x and w are always returned in
// the original index order.
//
// The solvers are single-threaded and draw their floating point and
// index scratch from an internal workspace pool; the per-index state
// flags are allocated per solve. Distinct solves on disjoint inputs may
// run concurrently.
package lcp // import "gonum.org/v1/lcp"
