// Copyright ©2026 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lcp

const (
	nLT1        = "lcp: n < 1"
	badNub      = "lcp: nub out of range"
	badBounds   = "lcp: bounds do not satisfy lo <= 0 <= hi"
	badFindex   = "lcp: bad friction index"
	notSPD      = "lcp: matrix not positive definite"
	shortA      = "lcp: insufficient length of a"
	shortB      = "lcp: insufficient length of b"
	shortX      = "lcp: insufficient length of x"
	shortW      = "lcp: insufficient length of w"
	shortLo     = "lcp: insufficient length of lo"
	shortHi     = "lcp: insufficient length of hi"
	shortFindex = "lcp: insufficient length of findex"
)
