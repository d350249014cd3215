// Copyright ©2026 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lcp_test

import (
	"fmt"

	"gonum.org/v1/lcp"
)

func ExampleSolve() {
	// A diagonal system with the first two variables capped well below
	// their unconstrained solution: they pin to their upper bounds and
	// the third solves freely.
	n := 3
	nskip := lcp.Pad(n)
	a := make([]float64, n*nskip)
	for i := 0; i < n; i++ {
		a[i*nskip+i] = 2
	}
	b := []float64{1, 1, 1}
	lo := []float64{-1, -1, -1}
	hi := []float64{0.25, 0.25, 1}
	x := make([]float64, n)
	w := make([]float64, n)

	lcp.Solve(n, a, x, b, w, 0, lo, hi, nil)

	fmt.Printf("x = %.2f\n", x)
	fmt.Printf("w = %.2f\n", w)
	// Output:
	// x = [0.25 0.25 0.50]
	// w = [-0.50 -0.50 0.00]
}

func ExampleSolveBasic() {
	// A one-dimensional contact: the unconstrained solution would be
	// negative, so the variable pins to zero with a positive residual.
	a := []float64{2}
	b := []float64{-3}
	x := make([]float64, 1)
	w := make([]float64, 1)

	lcp.SolveBasic(1, a, x, b, w, make([]float64, 1), make([]float64, 1))

	fmt.Printf("x = %.1f, w = %.1f\n", x[0], w[0])
	// Output:
	// x = 0.0, w = 3.0
}
