// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// mhgTieTolerance is the relative slack allowed when comparing the
// right tail of a cell of the dynamic program against the observed
// mHG score. The score and the cell tails are computed by different
// sums, so an arrangement that attains exactly the observed score may
// otherwise be lost to rounding.
const mhgTieTolerance = 1e-9

// MHGPValue returns the probability that a ranked list of N objects,
// B of which are successes, attains an mHG score of at most minHG
// within its first maxSize positions, when all arrangements of the
// successes are equally likely.
//
// This runs in O(min(N, maxSize) * min(B, maxSize)) time and
// O(min(N, maxSize)) space. If maxSize <= 0, DefaultMHGMaxSize is
// used. MHGPValue panics if B < 0 or B > N.
//
// The result is a sum of positive terms, so it keeps its relative
// precision for very small minHG. It is 0 only if those terms
// underflow, and MinimumHypergeometric substitutes a bound in that
// case.
func MHGPValue(B, N, maxSize int, minHG float64) float64 {
	if B < 0 || B > N {
		panic("MHGPValue: need 0 <= B <= N")
	}
	if maxSize <= 0 {
		maxSize = DefaultMHGMaxSize
	}
	maxN, maxB := minint(N, maxSize), minint(B, maxSize)
	thresh := minHG * (1 + mhgTieTolerance)

	// This is a forward dynamic program over the lattice of
	// (n, b) = (positions seen, successes seen). Every path from
	// (0, 0) is one arrangement of the list, and the probability of
	// stepping from (n-1, b') to (n, b) is the probability that
	// position n is a success (b = b'+1) or a failure (b = b')
	// given that b' of the B successes were used up in the first
	// n-1 positions:
	//
	//   Pr[success] = (B - b') / (N - n + 1)
	//   Pr[failure] = (N - B - n + 1 + b') / (N - n + 1)
	//
	// Cell (n, b) holds the probability of reaching it without
	// ever passing through a cell whose right tail
	// Pr[X >= b | n, B, N] is at most minHG. Such critical cells
	// are set to 0, and the mass flowing into them is the
	// probability of attaining the score for the first time at
	// position n. The p-value is the sum of those flows.
	//
	// Each column depends only on the previous one, so we only
	// keep two of them.
	//
	// The right tails of column n are accumulated from the top
	// (the largest possible b) down, starting from the point
	// probability of the top cell and stepping with the ratio
	//
	//   Pr[X = b-1] / Pr[X = b] = b (N-B-n+b) / ((n-b+1) (B-b+1)).
	//
	// These are kept as logarithms, since for large N the top
	// cells underflow long before the tail reaches minHG.
	prev := make([]float64, maxB+1)
	cur := make([]float64, maxB+1)
	absorbed := make([]float64, maxN)
	prev[0] = 1

	logBase := 0.0 // ln Pr[X = top] in column n
	for n := 1; n <= maxN; n++ {
		var top int
		if B >= n {
			top = n
			logBase += math.Log(float64(B-n+1)) - math.Log(float64(N-n+1))
		} else {
			top = B
			logBase += math.Log(float64(n)) - math.Log(float64(n-B))
		}

		// Cells crit..top attain the score.
		crit, b := top+1, top
		logHG, tail := logBase, math.Exp(logBase)
		for tail <= thresh {
			crit = b
			if b == 0 {
				break
			}
			num := float64(b) * float64(N-B-n+b)
			if num <= 0 {
				logHG = math.Inf(-1)
			} else {
				logHG += math.Log(num) - math.Log(float64(n-b+1)) - math.Log(float64(B-b+1))
			}
			tail += math.Exp(logHG)
			b--
		}

		denom := float64(N - n + 1)
		for i := range cur {
			cur[i] = 0
		}
		for b = 0; b <= top; b++ {
			in := prev[b] * float64(N-B-n+b+1) / denom
			if b > 0 {
				in += prev[b-1] * float64(B-b+1) / denom
			}
			if b >= crit {
				absorbed[n-1] += in
			} else {
				cur[b] = in
			}
		}

		prev, cur = cur, prev
	}

	return math.Min(floats.Sum(absorbed), 1)
}
