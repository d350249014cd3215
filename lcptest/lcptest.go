// Copyright ©2026 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package lcptest provides random problem generation and solution
// validation for the lcp package's boxed linear complementarity
// solvers.
package lcptest // import "gonum.org/v1/lcp/lcptest"

import (
	"fmt"
	"io"
	"math"
	"time"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas64"

	"gonum.org/v1/lcp"
)

// RandomMatrix fills the n×n matrix a, stored with leading dimension
// nskip, with uniform random entries in (−1,1).
func RandomMatrix(rnd *rand.Rand, a []float64, n, nskip int) {
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			a[i*nskip+j] = 2*rnd.Float64() - 1
		}
	}
}

// Mul computes dst = a·b for n×n matrices with leading dimension nskip.
func Mul(dst, a, b []float64, n, nskip int) {
	blas64.Implementation().Dgemm(blas.NoTrans, blas.NoTrans,
		n, n, n, 1, a, nskip, b, nskip, 0, dst, nskip)
}

// MulT computes dst = a·bᵀ for n×n matrices with leading dimension
// nskip.
func MulT(dst, a, b []float64, n, nskip int) {
	blas64.Implementation().Dgemm(blas.NoTrans, blas.Trans,
		n, n, n, 1, a, nskip, b, nskip, 0, dst, nskip)
}

// RandomSPD returns a random n×n symmetric positive definite matrix
// M·Mᵀ with M uniform in (−1,1), stored with leading dimension nskip.
func RandomSPD(rnd *rand.Rand, n, nskip int) []float64 {
	m := make([]float64, n*nskip)
	a := make([]float64, n*nskip)
	RandomMatrix(rnd, m, n, nskip)
	MulT(a, m, m, n, nskip)
	return a
}

// SymMulVec computes dst = A·x where only the lower triangle of the
// symmetric n×n matrix a is stored.
func SymMulVec(dst, a, x []float64, n, nskip int) {
	for i := 0; i < n; i++ {
		var sum float64
		for j := 0; j <= i; j++ {
			sum += a[i*nskip+j] * x[j]
		}
		for j := i + 1; j < n; j++ {
			sum += a[j*nskip+i] * x[j]
		}
		dst[i] = sum
	}
}

// ClearUpper zeroes the strict upper triangle of the n×n matrix a.
func ClearUpper(a []float64, n, nskip int) {
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			a[i*nskip+j] = 0
		}
	}
}

// MaxDifference returns the largest absolute element-wise difference
// between the n×n matrices a and b.
func MaxDifference(a, b []float64, n, nskip int) float64 {
	var max float64
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			d := math.Abs(a[i*nskip+j] - b[i*nskip+j])
			if d > max {
				max = d
			}
		}
	}
	return max
}

// CheckSolution validates a solve of the boxed LCP defined by the
// original, unpermuted inputs a, b, lo and hi against the returned x
// and w: the residual ‖A·x − b − w‖∞ must not exceed tol, and every
// index must lie on one of the three complementarity segments. It
// returns the number of indices at their lower bound, at their upper
// bound, and clamped, and a non-nil error describing the first
// violation found.
//
// The bound comparisons are exact: the solver pins x to a bound by
// assignment, and permutation moves values without arithmetic.
func CheckSolution(n, nskip int, a, x, b, w, lo, hi []float64, tol float64) (nlo, nhi, nc int, err error) {
	res := make([]float64, n)
	SymMulVec(res, a, x, n, nskip)
	for i := 0; i < n; i++ {
		if diff := math.Abs(res[i] - b[i] - w[i]); diff > tol {
			return nlo, nhi, nc, fmt.Errorf("lcptest: residual %.6e at index %d exceeds %.1e", diff, i, tol)
		}
	}
	for i := 0; i < n; i++ {
		switch {
		case x[i] == lo[i] && w[i] >= 0:
			nlo++
		case x[i] == hi[i] && w[i] <= 0:
			nhi++
		case lo[i] <= x[i] && x[i] <= hi[i] && math.Abs(w[i]) <= tol:
			nc++
		default:
			return nlo, nhi, nc, fmt.Errorf("lcptest: index %d (x=%v w=%v lo=%v hi=%v) on no complementarity segment",
				i, x[i], w[i], lo[i], hi[i])
		}
	}
	return nlo, nhi, nc, nil
}

// SelfTest generates trials random positive definite boxed problems of
// size n with an unbounded prefix of nub, solves each with lcp.Solve,
// and validates the result with CheckSolution at tolerance 1e-9. One
// line per trial with the complementarity class counts is written to
// out, followed by a summary with the wall-clock time. It returns the
// number of failed trials.
//
// Each problem is built as A = M·Mᵀ with M uniform, a uniform feasible
// x with b = A·x plus a small perturbation, and bounds lo = −u, hi = v
// with u, v uniform in (0,1) outside the unbounded prefix.
func SelfTest(out io.Writer, trials, n, nub int, rnd *rand.Rand) (failures int) {
	const tol = 1e-9

	nskip := lcp.Pad(n)
	start := time.Now()
	for trial := 0; trial < trials; trial++ {
		a := RandomSPD(rnd, n, nskip)
		aCopy := make([]float64, len(a))
		copy(aCopy, a)

		x0 := make([]float64, n)
		for i := range x0 {
			x0[i] = 2*rnd.Float64() - 1
		}
		ClearUpper(a, n, nskip)
		b := make([]float64, n)
		SymMulVec(b, a, x0, n, nskip)
		for i := range b {
			b[i] += rnd.Float64()*0.2 - 0.1
		}
		bCopy := make([]float64, n)
		copy(bCopy, b)

		lo := make([]float64, n)
		hi := make([]float64, n)
		for i := 0; i < nub; i++ {
			lo[i] = math.Inf(-1)
			hi[i] = math.Inf(1)
		}
		for i := nub; i < n; i++ {
			lo[i] = -rnd.Float64()
			hi[i] = rnd.Float64()
		}
		loCopy := make([]float64, n)
		hiCopy := make([]float64, n)
		copy(loCopy, lo)
		copy(hiCopy, hi)

		x := make([]float64, n)
		w := make([]float64, n)
		lcp.Solve(n, a, x, b, w, nub, lo, hi, nil)

		nlo, nhi, nc, err := CheckSolution(n, nskip, aCopy, x, bCopy, w, loCopy, hiCopy, tol)
		if err != nil {
			failures++
			fmt.Fprintf(out, "FAIL trial %d: %v\n", trial, err)
			continue
		}
		fmt.Fprintf(out, "passed: lo=%d hi=%d clamped=%d\n", nlo, nhi, nc)
	}
	fmt.Fprintf(out, "%d/%d trials passed in %v\n", trials-failures, trials, time.Since(start))
	return failures
}
