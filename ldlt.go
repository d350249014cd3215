// Copyright ©2026 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lcp

import (
	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/floats"
)

// factorLDLT computes the LDLᵀ factorization of the n×n matrix whose
// lower triangle is stored in a with leading dimension nskip, in place.
// On return the strict lower triangle of a holds L (the unit diagonal
// is implicit) and d[i] holds the reciprocal of D[i,i]. The strict
// upper triangle is neither read nor written.
//
// factorLDLT panics with notSPD if a pivot is not positive.
func factorLDLT(a, d []float64, n, nskip int) {
	// e accumulates L[i,k]·D[k] for the current row so that each
	// column entry and the pivot reduce to contiguous dot products.
	e := getFloats(n, false)
	for i := 0; i < n; i++ {
		ri := a[i*nskip : i*nskip+i+1]
		for j := 0; j < i; j++ {
			v := ri[j] - floats.Dot(e[:j], a[j*nskip:j*nskip+j])
			e[j] = v
			ri[j] = v * d[j]
		}
		v := ri[i] - floats.Dot(e[:i], ri[:i])
		if v <= 0 {
			panic(notSPD)
		}
		d[i] = 1 / v
	}
	putFloats(e)
}

// solveL1 solves L·x = b in place, where L is the n×n unit
// lower-triangular matrix held in the strict lower triangle of l.
func solveL1(l, b []float64, n, nskip int) {
	for i := 1; i < n; i++ {
		b[i] -= floats.Dot(l[i*nskip:i*nskip+i], b[:i])
	}
}

// solveL1T solves Lᵀ·x = b in place, where L is the n×n unit
// lower-triangular matrix held in the strict lower triangle of l.
func solveL1T(l, b []float64, n, nskip int) {
	bi := blas64.Implementation()
	for i := n - 2; i >= 0; i-- {
		b[i] -= bi.Ddot(n-i-1, l[(i+1)*nskip+i:], nskip, b[i+1:], 1)
	}
}

// solveLDLT solves (L·D·Lᵀ)·x = b in place, where l and d hold a
// factorization produced by factorLDLT.
func solveLDLT(l, d, b []float64, n, nskip int) {
	solveL1(l, b, n, nskip)
	floats.Mul(b[:n], d[:n])
	solveL1T(l, b, n, nskip)
}

// geta returns element (i, j) of the symmetric matrix whose lower
// triangle is stored in a.
func geta(a []float64, i, j, nskip int) float64 {
	if i > j {
		return a[i*nskip+j]
	}
	return a[j*nskip+i]
}
