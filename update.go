// Copyright ©2026 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lcp

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// ldltAddTL updates the factorization held in l and d of an n×n matrix
// M so that it factors M + a·e₁ᵀ + e₁·aᵀ, where e₁ is the first basis
// vector. d holds reciprocal diagonal entries throughout.
//
// The symmetric rank-two modification is split as W₁·W₁ᵀ − W₂·W₂ᵀ with
// W₁ = (a+e₁)/√2 and W₂ = (a−e₁)/√2, and applied as an interleaved
// rank-one update and downdate in O(n²).
func ldltAddTL(l, d, a []float64, n, nskip int) {
	const sqrt12 = 1 / math.Sqrt2

	w1 := getFloats(n, false)
	w2 := getFloats(n, false)

	w1[0] = (a[0] + 1) * sqrt12
	w2[0] = (a[0] - 1) * sqrt12
	for j := 1; j < n; j++ {
		w1[j] = a[j] * sqrt12
		w2[j] = w1[j]
	}

	t1 := 1.0
	t2 := 1.0
	for j := 0; j < n; j++ {
		dj := d[j]

		p1 := w1[j]
		t1new := t1 + p1*p1*dj
		dj /= t1new
		gamma1 := p1 * dj
		dj *= t1
		t1 = t1new

		p2 := w2[j]
		t2new := t2 - p2*p2*dj
		dj /= t2new
		gamma2 := p2 * dj
		dj *= t2
		t2 = t2new

		d[j] = dj
		for r := j + 1; r < n; r++ {
			ell := l[r*nskip+j]
			w1[r] -= p1 * ell
			ell += gamma1 * w1[r]
			w2[r] -= p2 * ell
			ell -= gamma2 * w2[r]
			l[r*nskip+j] = ell
		}
	}

	putFloats(w2)
	putFloats(w1)
}

// ldltRemove updates the factorization held in l and d of the nC×nC
// clamped block so that the row and column at factorization position r
// are removed, in O(nC²) without refactoring. Block entries are
// gathered from the full matrix a through the position map c. On return
// the factorization has order nC−1; the caller remains responsible for
// compacting c.
func ldltRemove(a []float64, c []int, l, d []float64, n, nC, r, nskip int) {
	if r == nC-1 {
		return // Deleting the last row and column is free.
	}

	// Adding a·e₁ᵀ + e₁·aᵀ to the trailing block turns its leading row
	// and column into e₁, detaching position r from the rest of the
	// factorization; the detached row is then snipped out.
	if r == 0 {
		q := getFloats(nC, false)
		for i := 0; i < nC; i++ {
			q[i] = -geta(a, c[i], c[0], nskip)
		}
		q[0] = 0.5 * (1 + q[0])
		ldltAddTL(l, d, q, nC, nskip)
		putFloats(q)
	} else {
		t := getFloats(r, false)
		q := getFloats(nC-r, false)
		for k := 0; k < r; k++ {
			t[k] = l[r*nskip+k] / d[k]
		}
		for i := 0; i < nC-r; i++ {
			q[i] = floats.Dot(l[(r+i)*nskip:(r+i)*nskip+r], t) - geta(a, c[r+i], c[r], nskip)
		}
		q[0] = 0.5 * (1 + q[0])
		ldltAddTL(l[r*nskip+r:], d[r:], q, nC-r, nskip)
		putFloats(q)
		putFloats(t)
	}

	removeRowCol(l, nC, nskip, r)
	if r < nC-1 {
		copy(d[r:nC-1], d[r+1:nC])
	}
}

// removeRowCol deletes row and column r from the n×n lower triangle of
// a, shifting later rows up and later columns left in place.
func removeRowCol(a []float64, n, nskip, r int) {
	for i := r; i < n-1; i++ {
		dst := a[i*nskip:]
		src := a[(i+1)*nskip:]
		copy(dst[:r], src[:r])
		for j := r; j <= i; j++ {
			dst[j] = src[j+1]
		}
	}
}
