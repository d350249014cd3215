// Copyright ©2026 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lcp

import "gonum.org/v1/gonum/blas/blas64"

// swapRowsAndCols applies the symmetric transposition P of positions i1
// and i2 (i1 < i2) to the lower triangle of a, so that the result is
// the lower triangle of P·A·Pᵀ. Only the lower triangle is read or
// written.
//
// Rows are exchanged by copying. Exchanging row pointers instead would
// make swaps O(1) but breaks the contiguity the factorization and the
// dot kernels rely on.
func swapRowsAndCols(a []float64, n, i1, i2, nskip int) {
	r1 := a[i1*nskip:]
	r2 := a[i2*nskip:]
	if i1 > 0 {
		blas64.Implementation().Dswap(i1, r1, 1, r2, 1)
	}
	// The column below i1 between the pivots maps to row i2's interior.
	for i := i1 + 1; i < i2; i++ {
		a[i*nskip+i1], r2[i] = r2[i], a[i*nskip+i1]
	}
	r1[i1], r2[i2] = r2[i2], r1[i1]
	// A[i2,i1] is fixed by the transposition.
	for i := i2 + 1; i < n; i++ {
		ri := a[i*nskip:]
		ri[i1], ri[i2] = ri[i2], ri[i1]
	}
}

// swapProblem exchanges positions i1 and i2 across the matrix and every
// parallel problem vector so that the permuted views stay aligned. It
// is a no-op when i1 == i2; the caller must pass i1 <= i2.
func swapProblem(a, x, b, w, lo, hi []float64, p []int, state []bool, findex []int, n, i1, i2, nskip int) {
	if i1 == i2 {
		return
	}
	swapRowsAndCols(a, n, i1, i2, nskip)
	x[i1], x[i2] = x[i2], x[i1]
	b[i1], b[i2] = b[i2], b[i1]
	w[i1], w[i2] = w[i2], w[i1]
	lo[i1], lo[i2] = lo[i2], lo[i1]
	hi[i1], hi[i2] = hi[i2], hi[i1]
	p[i1], p[i2] = p[i2], p[i1]
	state[i1], state[i2] = state[i2], state[i1]
	if findex != nil {
		findex[i1], findex[i2] = findex[i2], findex[i1]
	}
}
