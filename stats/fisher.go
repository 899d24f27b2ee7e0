// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import "math"

// A FisherExactTestResult is the result of Fisher's exact test.
type FisherExactTestResult struct {
	// Table is the contingency table that was tested.
	Table ContingencyTable

	// Left is the probability of observing Table.Hits or fewer
	// hits. A small value indicates depletion of the attribute
	// in the sample.
	Left float64

	// Right is the probability of observing Table.Hits or more
	// hits. A small value indicates enrichment.
	Right float64

	// TwoTailed is the total probability of all outcomes that are
	// no more likely than the observed one, including the observed
	// one and any outcome exactly as likely.
	TwoTailed float64
}

// FisherExactTest performs Fisher's exact test of whether b hits in a
// sample of n objects drawn without replacement from a population of
// N objects, B of which carry the attribute, is unexpectedly low or
// high.
//
// It fails with an error wrapping ErrInvalidContingencyTable unless
// 0 <= b <= n <= N, b <= B and B <= N.
//
// If only one outcome is possible (for example, if the sample is the
// whole population) all three p-values are 1.
//
// Adapted from the FishersExactTest of the WordHoard project
// (http://wordhoard.northwestern.edu).
func FisherExactTest(b, n, B, N int) (*FisherExactTestResult, error) {
	table := ContingencyTable{Hits: b, Draws: n, Successes: B, N: N}
	if err := table.Validate(); err != nil {
		return nil, err
	}
	res := &FisherExactTestResult{Table: table, Left: 1, Right: 1, TwoTailed: 1}

	dist := table.dist()
	lm, um := dist.bounds()
	if lm == um {
		return res, nil
	}

	cutoff := dist.pmf(b)
	var left, right, two float64
	for i := lm; i <= um; i++ {
		p := dist.pmf(i)
		if i <= b {
			left += p
		}
		if i >= b {
			right += p
		}
		if p <= cutoff {
			two += p
		}
	}
	res.Left = math.Min(left, 1)
	res.Right = math.Min(right, 1)
	res.TwoTailed = math.Min(two, 1)
	return res, nil
}

// rightTail returns the Right p-value of FisherExactTest(b, n, B, N)
// for a valid table. It sums the same terms in the same order, so the
// results are identical.
func rightTail(b, n, B, N int) float64 {
	dist := HypergeometricDist{N: N, K: B, Draws: n}
	lm, um := dist.bounds()
	if lm == um {
		return 1
	}
	right := 0.0
	for i := maxint(lm, b); i <= um; i++ {
		right += dist.pmf(i)
	}
	return math.Min(right, 1)
}
