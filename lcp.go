// Copyright ©2026 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lcp

import (
	"log"
	"math"
	"os"

	"gonum.org/v1/gonum/floats"
)

// Pad returns the leading dimension used for an n×n problem matrix:
// n rounded up to an even value, with n ≤ 1 returned unchanged. The
// matrices passed to Solve and SolveBasic must be laid out with this
// leading dimension.
func Pad(n int) int {
	if n <= 1 {
		return n
	}
	return (n + 1) &^ 1
}

var logger = log.New(os.Stderr, "lcp: ", 0)

// SetLogger sets the destination for the solvers' numerical breakdown
// diagnostics. A nil logger silences them. The default logger writes
// to standard error.
func SetLogger(l *log.Logger) { logger = l }

func errlog(format string, args ...interface{}) {
	if logger != nil {
		logger.Printf(format, args...)
	}
}

// Solve solves the boxed linear complementarity problem
//
//	A·x = b + w,  lo ≤ x ≤ hi,
//
// where for every index exactly one of x = lo and w ≥ 0, x = hi and
// w ≤ 0, or lo < x < hi and w = 0 holds, using Dantzig's principal
// pivoting method with an incrementally maintained LDLᵀ factorization
// of the clamped block.
//
// a is the n×n problem matrix, stored row-major with leading dimension
// Pad(n); only its lower triangle is read and it is overwritten by the
// solve. On return x holds the solution and w the residual A·x − b, in
// the original index order. b, lo, hi and a non-nil findex are
// permuted in place.
//
// The first nub indices are unbounded (their lo and hi are ±∞ and are
// not read); they always end up clamped. The remaining bounds must
// satisfy lo ≤ 0 ≤ hi, with infinities permitted.
//
// findex, which may be nil, couples friction rows to normal rows: for
// every i with findex[i] ≥ 0 the bounds of row i are finalized during
// the solve as hi = |hi·x[findex[i]]| and lo = −hi, using the solved
// normal force x[findex[i]]; a zero normal force pins both bounds to
// zero. The first nub entries of findex must be negative.
//
// If the pivoting breaks down numerically, Solve emits a diagnostic
// through the package logger, zeroes the not yet driven tail of x and
// w, and returns with a partially solved system.
func Solve(n int, a, x, b, w []float64, nub int, lo, hi []float64, findex []int) {
	nskip := Pad(n)
	switch {
	case n < 1:
		panic(nLT1)
	case nub < 0 || nub > n:
		panic(badNub)
	}
	switch {
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
	case findex != nil && len(findex) < n:
		panic(shortFindex)
	}
	for i := nub; i < n; i++ {
		if lo[i] > 0 || hi[i] < 0 {
			panic(badBounds)
		}
	}
	if findex != nil {
		for i, fi := range findex[:n] {
			if fi >= n || (i < nub && fi >= 0) {
				panic(badFindex)
			}
		}
	}

	if nub >= n {
		// Every variable is clamped: the problem degenerates to a
		// linear solve, with w doubling as the reciprocal diagonal
		// scratch until it is zeroed.
		factorLDLT(a, w, n, nskip)
		copy(x[:n], b[:n])
		solveLDLT(a, w, x, n, nskip)
		zero(w[:n])
		return
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

	prb := newProblem(n, nskip, nub, a, x, b, w, lo, hi, l, d, dell, ell, state, findex, p, c)
	nub = prb.nub

	hitFirstFriction := false
	for i := nub; i < n; i++ {
		if !hitFirstFriction && findex != nil && prb.findex[i] >= 0 {
			// Finalize the friction bounds against the solved normal
			// forces in original index order, exactly once. deltaW is
			// not yet live and serves as the unpermuted view of x.
			for j := 0; j < n; j++ {
				deltaW[prb.p[j]] = x[j]
			}
			for k := i; k < n; k++ {
				fn := deltaW[prb.findex[k]]
				if fn == 0 {
					hi[k] = 0
					lo[k] = 0
				} else {
					hi[k] = math.Abs(hi[k] * fn)
					lo[k] = -hi[k]
				}
			}
			hitFirstFriction = true
		}

		// w has not been maintained beyond the driven prefix; compute
		// it for the driven index now. x over N sits at the bounds,
		// x over C is current, and x[i] itself is still zero.
		w[i] = prb.aDotC(i, x) + prb.aDotN(i, x) - b[i]

		if lo[i] == 0 && w[i] >= 0 {
			prb.transferToN(i)
			state[i] = false
		} else if hi[i] == 0 && w[i] <= 0 {
			prb.transferToN(i)
			state[i] = true
		} else if w[i] == 0 {
			// Degenerate but valid with lo < 0 < hi: clamp directly.
			// The factor row still has to be primed for the append.
			prb.solve1(deltaX, i, 0, true)
			prb.transferToC(i)
		} else {
			if !drive(prb, i, deltaX, deltaW) {
				break
			}
		}
	}

	prb.unpermute()
}

// drive pushes the driven index i to a valid complementarity region,
// pivoting other indices between the clamped and non-clamped sets as
// their boundaries are hit on the way. It reports whether the push
// succeeded; on numerical breakdown the not yet driven parts of x and
// w are zeroed and drive returns false.
func drive(prb *problem, i int, deltaX, deltaW []float64) bool {
	n := prb.n
	x, w, lo, hi := prb.x, prb.w, prb.lo, prb.hi
	for {
		dir := 1
		dirf := 1.0
		if w[i] > 0 {
			dir = -1
			dirf = -1
		}

		// deltaX on C solves A[C,C]·deltaX = −dir·A[C,i]; the driven
		// component is dirf and is applied separately. deltaW is only
		// needed over N and at i, where deltaX over N is zero.
		prb.solve1(deltaX, i, dir, false)
		prb.mulANC(deltaW, deltaX)
		prb.addAColN(deltaW, i, dirf)
		deltaW[i] = prb.aDotC(i, deltaX) + prb.aii(i)*dirf

		// Find the smallest positive step along (x,w) + s·(deltaX,deltaW)
		// that hits a boundary. Ties resolve to the earliest candidate
		// class: the driven index reaching w = 0 (into C) or one of its
		// bounds (into N), an N index whose w would cross zero, or a C
		// index reaching a bound.
		cmd := 1
		si := 0
		s := -w[i] / deltaW[i]
		if dir > 0 {
			if hi[i] < math.Inf(1) {
				s2 := hi[i] - x[i]
				if s2 < s {
					s = s2
					cmd = 3
				}
			}
		} else {
			if lo[i] > math.Inf(-1) {
				s2 := x[i] - lo[i]
				if s2 < s {
					s = s2
					cmd = 2
				}
			}
		}
		for k := 0; k < prb.nN; k++ {
			kn := prb.nC + k
			if (!prb.state[kn] && deltaW[kn] < 0) ||
				(prb.state[kn] && deltaW[kn] > 0) {
				// Rows with lo = hi = 0 never change sets.
				if lo[kn] == 0 && hi[kn] == 0 {
					continue
				}
				s2 := -w[kn] / deltaW[kn]
				if s2 < s {
					s = s2
					cmd = 4
					si = kn
				}
			}
		}
		for k := prb.nub; k < prb.nC; k++ {
			// The clamped block is the leading block of positions, and
			// deltaX, x and the bounds are all indexed by position.
			if deltaX[k] < 0 && lo[k] > math.Inf(-1) {
				s2 := (lo[k] - x[k]) / deltaX[k]
				if s2 < s {
					s = s2
					cmd = 5
					si = k
				}
			}
			if deltaX[k] > 0 && hi[k] < math.Inf(1) {
				s2 := (hi[k] - x[k]) / deltaX[k]
				if s2 < s {
					s = s2
					cmd = 6
					si = k
				}
			}
		}

		// A non-positive step cannot make progress and would cycle
		// forever; freeze the solution instead.
		if s <= 0 {
			errlog("LCP internal error, s <= 0 (s=%.4e)", s)
			zero(x[i:n])
			zero(w[i:n])
			return false
		}

		floats.AddScaled(x[:prb.nC], s, deltaX[:prb.nC])
		x[i] += s * dirf
		floats.AddScaled(w[prb.nC:prb.nC+prb.nN], s, deltaW[prb.nC:prb.nC+prb.nN])
		w[i] += s * deltaW[i]

		switch cmd {
		case 1:
			w[i] = 0
			prb.transferToC(i)
			return true
		case 2:
			x[i] = lo[i]
			prb.state[i] = false
			prb.transferToN(i)
			return true
		case 3:
			x[i] = hi[i]
			prb.state[i] = true
			prb.transferToN(i)
			return true
		case 4:
			w[si] = 0
			prb.transferNToC(si)
		case 5:
			x[si] = lo[si]
			prb.state[si] = false
			prb.transferCToN(si)
		case 6:
			x[si] = hi[si]
			prb.state[si] = true
			prb.transferCToN(si)
		}
	}
}
