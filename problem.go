// Copyright ©2026 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lcp

import (
	"math"

	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/floats"
)

// A problem is the permuted view of an LCP being solved: the matrix and
// the parallel problem vectors with the permutation applied, the
// partition of the already driven prefix into the clamped set C and the
// non-clamped set N, and the incrementally maintained LDLᵀ
// factorization of A[C,C].
//
// Positions [0,nC) hold C and positions [nC,nC+nN) hold N, so the
// restricted products over either set are contiguous dot products.
// p maps permuted positions back to original indices. c is a second
// permutation mapping factorization rows to positions; it makes the
// bookkeeping of a removal O(nC) on top of the O(nC²) numeric work.
// Positions below nub are never swapped after construction, so the
// first nub entries of any gathered row can be loaded without going
// through c.
type problem struct {
	n     int
	nskip int
	nub   int

	a         []float64
	x, b, w   []float64
	lo, hi    []float64
	l, d      []float64
	dell, ell []float64
	state     []bool
	findex    []int
	p, c      []int
	nC, nN    int
}

// newProblem builds the permuted problem state over the caller's
// arrays: it zeroes x, absorbs fully unbounded variables into the
// leading block, moves friction rows to the tail, and installs the
// factorization of the unbounded block, solving for its x and zeroing
// its w. The possibly grown unbounded count is left in the nub field.
func newProblem(n, nskip, nub int, a, x, b, w, lo, hi, l, d, dell, ell []float64, state []bool, findex []int, p, c []int) *problem {
	prb := &problem{
		n:      n,
		nskip:  nskip,
		nub:    nub,
		a:      a,
		x:      x,
		b:      b,
		w:      w,
		lo:     lo,
		hi:     hi,
		l:      l,
		d:      d,
		dell:   dell,
		ell:    ell,
		state:  state,
		findex: findex,
		p:      p,
		c:      c,
	}

	zero(x[:n])
	for k := 0; k < n; k++ {
		p[k] = k
	}

	// Variables with infinite bounds and no friction linkage behave
	// exactly like the unbounded prefix; absorbing them enlarges the
	// block that is factored once and never pivoted.
	for k := prb.nub; k < n; k++ {
		if findex != nil && findex[k] >= 0 {
			continue
		}
		if lo[k] == math.Inf(-1) && hi[k] == math.Inf(1) {
			prb.swap(prb.nub, k)
			prb.nub++
		}
	}

	// Friction rows are finalized lazily against the solved normal
	// forces, so they must be driven last.
	if findex != nil {
		atEnd := 0
		for k := n - 1; k >= prb.nub; k-- {
			if findex[k] >= 0 {
				prb.swap(k, n-1-atEnd)
				atEnd++
			}
		}
	}

	if nub := prb.nub; nub > 0 {
		for k := 0; k < nub; k++ {
			copy(l[k*nskip:k*nskip+nub], a[k*nskip:k*nskip+nub])
		}
		factorLDLT(l, d, nub, nskip)
		copy(x[:nub], b[:nub])
		solveLDLT(l, d, x, nub, nskip)
		zero(w[:nub])
		for k := 0; k < nub; k++ {
			c[k] = k
		}
		prb.nC = nub
	}

	return prb
}

func (prb *problem) swap(i1, i2 int) {
	swapProblem(prb.a, prb.x, prb.b, prb.w, prb.lo, prb.hi, prb.p, prb.state, prb.findex, prb.n, i1, i2, prb.nskip)
}

// aii returns A[i,i].
func (prb *problem) aii(i int) float64 { return prb.a[i*prb.nskip+i] }

// aDotC returns A[i,C]·q restricted to the clamped block.
func (prb *problem) aDotC(i int, q []float64) float64 {
	return floats.Dot(prb.a[i*prb.nskip:i*prb.nskip+prb.nC], q[:prb.nC])
}

// aDotN returns A[i,N]·q restricted to the non-clamped block.
func (prb *problem) aDotN(i int, q []float64) float64 {
	off := i * prb.nskip
	return floats.Dot(prb.a[off+prb.nC:off+prb.nC+prb.nN], q[prb.nC:prb.nC+prb.nN])
}

// mulANC sets dst over the N block to A[N,C]·q over the C block.
func (prb *problem) mulANC(dst, q []float64) {
	if prb.nN == 0 {
		return
	}
	if prb.nC == 0 {
		zero(dst[0:prb.nN])
		return
	}
	blas64.Implementation().Dgemv(blas.NoTrans,
		prb.nN, prb.nC,
		1, prb.a[prb.nC*prb.nskip:], prb.nskip,
		q, 1,
		0, dst[prb.nC:], 1)
}

// addAColN adds sign times column i of A, restricted to the N block,
// to dst.
func (prb *problem) addAColN(dst []float64, i int, sign float64) {
	ai := prb.a[i*prb.nskip:]
	floats.AddScaled(dst[prb.nC:prb.nC+prb.nN], sign, ai[prb.nC:prb.nC+prb.nN])
}

// factorRow gathers row i against the clamped block through both
// permutations and runs the forward substitution, leaving
// dell = L⁻¹·A[C,i] and ell = D⁻¹·dell for use by solve1 and the
// factorization append.
func (prb *problem) factorRow(i int) {
	ai := prb.a[i*prb.nskip:]
	for j := 0; j < prb.nub; j++ {
		prb.dell[j] = ai[j]
	}
	for j := prb.nub; j < prb.nC; j++ {
		prb.dell[j] = ai[prb.c[j]]
	}
	solveL1(prb.l, prb.dell, prb.nC, prb.nskip)
	for j := 0; j < prb.nC; j++ {
		prb.ell[j] = prb.dell[j] * prb.d[j]
	}
}

// solve1 computes the search direction on the clamped block,
//
//	delta[C] = −dir·A[C,C]⁻¹·A[C,i],
//
// through the current factorization, scattering the result to the C
// positions of delta. The forward substitution products remain in dell
// and ell so that a following transferToC appends row i without
// repeating the solve. With onlyTransfer set the back substitution is
// skipped and only dell and ell are produced.
func (prb *problem) solve1(delta []float64, i, dir int, onlyTransfer bool) {
	if prb.nC == 0 {
		return
	}
	prb.factorRow(i)
	if onlyTransfer {
		return
	}
	tmp := getFloats(prb.nC, false)
	copy(tmp, prb.ell[:prb.nC])
	solveL1T(prb.l, tmp, prb.nC, prb.nskip)
	if dir > 0 {
		for j := 0; j < prb.nC; j++ {
			delta[prb.c[j]] = -tmp[j]
		}
	} else {
		for j := 0; j < prb.nC; j++ {
			delta[prb.c[j]] = tmp[j]
		}
	}
	putFloats(tmp)
}

// transferToC moves the driven position i into the clamped set,
// appending it to the factorization as row nC and swapping it to the
// tail of the C block. dell and ell must hold the products for row i
// from a preceding solve1 or factorRow.
func (prb *problem) transferToC(i int) {
	if prb.nC > 0 {
		copy(prb.l[prb.nC*prb.nskip:prb.nC*prb.nskip+prb.nC], prb.ell[:prb.nC])
		prb.d[prb.nC] = 1 / (prb.aii(i) - floats.Dot(prb.ell[:prb.nC], prb.dell[:prb.nC]))
	} else {
		prb.d[0] = 1 / prb.aii(i)
	}
	prb.swap(prb.nC, i)
	prb.c[prb.nC] = prb.nC
	prb.nC++
}

// transferToN moves the driven position i into the non-clamped set.
// The driven position already sits at nC+nN, so only the count grows.
func (prb *problem) transferToN(i int) {
	prb.nN++
}

// transferNToC moves position i from N to C, appending it to the
// factorization.
func (prb *problem) transferNToC(i int) {
	if prb.nC > 0 {
		prb.factorRow(i)
	}
	prb.transferToC(i)
	prb.nN--
}

// transferCToN moves position i from C to N, removing it from the
// factorization, compacting c, and swapping i with the tail of the C
// block.
func (prb *problem) transferCToN(i int) {
	// The variable at position nC−1 is about to move to position i, so
	// the factor row that referenced nC−1 must be redirected before c
	// is compacted.
	lastIdx := -1
	for j := 0; j < prb.nC; j++ {
		if prb.c[j] == prb.nC-1 {
			lastIdx = j
		}
		if prb.c[j] == i {
			ldltRemove(prb.a, prb.c, prb.l, prb.d, prb.n, prb.nC, j, prb.nskip)
			k := lastIdx
			if k == -1 {
				for k = j + 1; prb.c[k] != prb.nC-1; k++ {
				}
			}
			prb.c[k] = prb.c[j]
			copy(prb.c[j:prb.nC-1], prb.c[j+1:prb.nC])
			break
		}
	}
	prb.swap(i, prb.nC-1)
	prb.nC--
	prb.nN++
}

// unpermute writes x and w back in the original index order.
func (prb *problem) unpermute() {
	tmp := getFloats(prb.n, false)
	copy(tmp, prb.x[:prb.n])
	for j := 0; j < prb.n; j++ {
		prb.x[prb.p[j]] = tmp[j]
	}
	copy(tmp, prb.w[:prb.n])
	for j := 0; j < prb.n; j++ {
		prb.w[prb.p[j]] = tmp[j]
	}
	putFloats(tmp)
}
