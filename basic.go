// Copyright ©2026 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lcp

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// SolveBasic solves the non-negativity linear complementarity problem
//
//	A·x = b + w,  x ≥ 0,  w ≥ 0,  xᵀ·w = 0,
//
// the lo = 0, hi = +∞ special case of Solve with no unbounded prefix
// and no friction coupling. It exists for validation and for callers
// whose constraints are pure contacts; Solve subsumes it.
//
// a, x, b and w are as for Solve. lo and hi are length n scratch that
// hold the bounds during the solve; their contents on entry are
// ignored.
func SolveBasic(n int, a, x, b, w, lo, hi []float64) {
	nskip := Pad(n)
	switch {
	case n < 1:
		panic(nLT1)
	case len(a) < (n-1)*nskip+n:
		panic(shortA)
	case len(x) < n:
		panic(shortX)
	case len(b) < n:
		panic(shortB)
	case len(w) < n:
		panic(shortW)
	case len(lo) < n:
		panic(shortLo)
	case len(hi) < n:
		panic(shortHi)
	}

	zero(lo[:n])
	for i := 0; i < n; i++ {
		hi[i] = math.Inf(1)
	}

	l := getFloats(n*nskip, false)
	d := getFloats(n, false)
	deltaX := getFloats(n, false)
	deltaW := getFloats(n, false)
	dell := getFloats(n, false)
	ell := getFloats(n, false)
	p := getInts(n, false)
	c := getInts(n, false)
	state := make([]bool, n)
	defer func() {
		putInts(c)
		putInts(p)
		putFloats(ell)
		putFloats(dell)
		putFloats(deltaW)
		putFloats(deltaX)
		putFloats(d)
		putFloats(l)
	}()

	prb := newProblem(n, nskip, 0, a, x, b, w, lo, hi, l, d, dell, ell, state, nil, p, c)

	for i := 0; i < n; i++ {
		// x over N is identically zero here, so only the clamped block
		// contributes to w.
		w[i] = prb.aDotC(i, x) - b[i]
		if w[i] >= 0 {
			prb.transferToN(i)
			continue
		}
		if !driveBasic(prb, i, deltaX, deltaW) {
			break
		}
	}

	// Un-permute on the breakdown path too, so that x and w always
	// come back in the original index order.
	prb.unpermute()
}

// driveBasic is drive for the non-negativity problem: dir is always
// positive, and the only boundaries are w = 0 for the driven and
// non-clamped indices and x = 0 for the clamped ones.
func driveBasic(prb *problem, i int, deltaX, deltaW []float64) bool {
	n := prb.n
	x, w := prb.x, prb.w
	for {
		prb.solve1(deltaX, i, 1, false)
		prb.mulANC(deltaW, deltaX)
		prb.addAColN(deltaW, i, 1)
		deltaW[i] = prb.aDotC(i, deltaX) + prb.aii(i)

		si := i
		siInN := false
		s := -w[i] / deltaW[i]
		for k := 0; k < prb.nN; k++ {
			kn := prb.nC + k
			if deltaW[kn] < 0 {
				s2 := -w[kn] / deltaW[kn]
				if s2 < s {
					s = s2
					si = kn
					siInN = true
				}
			}
		}
		for k := 0; k < prb.nC; k++ {
			if deltaX[k] < 0 {
				s2 := -x[k] / deltaX[k]
				if s2 < s {
					s = s2
					si = k
					siInN = false
				}
			}
		}

		if s <= 0 {
			errlog("LCP internal error, s <= 0 (s=%.4e)", s)
			zero(x[i:n])
			zero(w[i:n])
			return false
		}

		floats.AddScaled(x[:prb.nC], s, deltaX[:prb.nC])
		x[i] += s
		floats.AddScaled(w[prb.nC:prb.nC+prb.nN], s, deltaW[prb.nC:prb.nC+prb.nN])
		w[i] += s * deltaW[i]

		switch {
		case si == i:
			w[i] = 0
			prb.transferToC(i)
			return true
		case siInN:
			w[si] = 0
			prb.transferNToC(si)
		default:
			x[si] = 0
			prb.transferCToN(si)
		}
	}
}
