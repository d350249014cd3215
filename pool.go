// Copyright ©2026 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lcp

import (
	"math/bits"
	"sync"
)

// poolFor returns the ceiling of base 2 log of size. It provides an index
// into a pool array to a sync.Pool that will return values able to hold
// size elements.
func poolFor(size uint) int {
	if size == 0 {
		return 0
	}
	return bits.Len(size - 1)
}

var (
	// poolFloats contains size stratified []float64 pools.
	// Each pool element i returns slices with a cap of 1<<i.
	poolFloats [63]sync.Pool

	// poolInts is the []int equivalent of poolFloats.
	poolInts [63]sync.Pool
)

func init() {
	for i := range poolFloats {
		l := 1 << uint(i)
		poolFloats[i].New = func() interface{} {
			s := make([]float64, l)
			return &s
		}
		poolInts[i].New = func() interface{} {
			s := make([]int, l)
			return &s
		}
	}
}

// getFloats returns a []float64 of length l. If clear is true, the
// elements of the returned slice are set to zero.
func getFloats(l int, clear bool) []float64 {
	w := *poolFloats[poolFor(uint(l))].Get().(*[]float64)
	w = w[:l]
	if clear {
		zero(w)
	}
	return w
}

// putFloats replaces a used []float64 into the appropriate size
// workspace pool. putFloats must not be called with a slice where
// references to the underlying data have been kept.
func putFloats(w []float64) {
	poolFloats[poolFor(uint(cap(w)))].Put(&w)
}

// getInts returns a []int of length l. If clear is true, the elements
// of the returned slice are set to zero.
func getInts(l int, clear bool) []int {
	w := *poolInts[poolFor(uint(l))].Get().(*[]int)
	w = w[:l]
	if clear {
		for i := range w {
			w[i] = 0
		}
	}
	return w
}

// putInts replaces a used []int into the appropriate size workspace
// pool.
func putInts(w []int) {
	poolInts[poolFor(uint(cap(w)))].Put(&w)
}

// zero zeros the given slice's elements.
func zero(f []float64) {
	for i := range f {
		f[i] = 0
	}
}
