// Copyright ©2026 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lcptest

import (
	"bytes"
	"testing"

	"golang.org/x/exp/rand"

	"gonum.org/v1/lcp"
)

func TestSelfTest(t *testing.T) {
	// The unbounded count is fixed rather than randomized per trial so
	// that failures reproduce.
	const (
		n   = 100
		nub = 50
	)
	trials := 1000
	if testing.Short() {
		trials = 100
	}
	rnd := rand.New(rand.NewSource(1))
	var buf bytes.Buffer
	if failures := SelfTest(&buf, trials, n, nub, rnd); failures != 0 {
		t.Errorf("self-test reported %d failures:\n%s", failures, &buf)
	}
}

func TestCheckSolutionRejectsBadResidual(t *testing.T) {
	t.Parallel()
	const n = 2
	nskip := lcp.Pad(n)
	a := make([]float64, n*nskip)
	a[0], a[nskip+1] = 1, 1
	x := []float64{1, 1}
	b := []float64{0, 0}
	w := []float64{1, 0} // w[1] should be 1.
	lo := []float64{-2, -2}
	hi := []float64{2, 2}
	if _, _, _, err := CheckSolution(n, nskip, a, x, b, w, lo, hi, 1e-9); err == nil {
		t.Error("expected residual error")
	}
}

func TestCheckSolutionClassifies(t *testing.T) {
	t.Parallel()
	const n = 3
	nskip := lcp.Pad(n)
	a := make([]float64, n*nskip)
	for i := 0; i < n; i++ {
		a[i*nskip+i] = 1
	}
	x := []float64{-1, 2, 0.5}
	b := []float64{-3, 3, 0.5}
	w := []float64{2, -1, 0}
	lo := []float64{-1, -1, -1}
	hi := []float64{2, 2, 2}
	nlo, nhi, nc, err := CheckSolution(n, nskip, a, x, b, w, lo, hi, 1e-9)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if nlo != 1 || nhi != 1 || nc != 1 {
		t.Errorf("unexpected classification: lo=%d hi=%d clamped=%d", nlo, nhi, nc)
	}
}

func TestMaxDifferenceAndClearUpper(t *testing.T) {
	t.Parallel()
	const n, nskip = 3, 4
	a := make([]float64, n*nskip)
	b := make([]float64, n*nskip)
	for i := range a {
		a[i] = float64(i)
		b[i] = float64(i)
	}
	b[nskip+2] += 0.5 // upper triangle
	b[2*nskip] -= 2
	if got := MaxDifference(a, b, n, nskip); got != 2 {
		t.Errorf("unexpected maximum difference: got %v want 2", got)
	}
	ClearUpper(b, n, nskip)
	if b[nskip+2] != 0 || b[2] != 0 {
		t.Error("upper triangle not cleared")
	}
	if b[2*nskip] != float64(2*nskip)-2 {
		t.Error("lower triangle disturbed")
	}
}
