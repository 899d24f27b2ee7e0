// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"fmt"
	"math"

	"gopkg.in/guregu/null.v3"
)

// DefaultMHGMaxSize is the truncation bound used by
// MinimumHypergeometric when MHGOptions.MaxSize is zero.
const DefaultMHGMaxSize = 1000

// MHGOptions are optional parameters of MinimumHypergeometric. The
// zero value of each field selects its default.
type MHGOptions struct {
	// B is the number of objects with the attribute in the whole
	// population. If unset, it is the number of true entries in
	// the occurrence vector.
	B null.Int

	// N is the size of the population. If unset, it is the length
	// of the occurrence vector.
	N null.Int

	// MaxSize bounds the number of ranked positions that are
	// scanned and the size of the dynamic program used to compute
	// the p-value, whose cost is O(MaxSize²). If 0,
	// DefaultMHGMaxSize is used.
	MaxSize int
}

// An MHGResult is the result of a minimum-hypergeometric test.
type MHGResult struct {
	// P is the probability, under the null hypothesis that all
	// arrangements of the B successes among N ranked positions are
	// equally likely, of an mHG score at most MinHG.
	//
	// P is null if there was no evidence to evaluate, that is, if
	// the scanned part of the occurrence vector or the population
	// contains no success.
	P null.Float

	// Pivot is the length of the top of the list at which MinHG was
	// first attained. It is null exactly when P is.
	Pivot null.Int

	// MinHG is the mHG score: the smallest right-tail Fisher
	// p-value over all scanned prefixes of the list. It is 1 if
	// nothing was scanned.
	MinHG float64

	// Scanned is the number of prefixes that were scanned.
	Scanned int
}

// Evaluated reports whether the test had any evidence to evaluate.
func (r *MHGResult) Evaluated() bool {
	return r.P.Valid
}

// MinimumHypergeometric performs a minimum-hypergeometric (mHG) test
// of whether the objects flagged in occurrences cluster at the top of
// the ranked list occurrences describes [1].
//
// For each prefix of the list of length n, the score is the
// right-tail p-value of Fisher's exact test of the number of
// successes in that prefix. The mHG statistic is the minimum score,
// and its p-value is computed exactly by MHGPValue.
//
// Only the first opts.MaxSize positions are scanned. This fails with
// an error wrapping ErrInvalidContingencyTable unless b <= B <= N,
// where b is the number of successes among the scanned positions.
//
// [1] Eden, E.; Lipson, D.; Yogev, S.; Yakhini, Z. (2007). "Discovering
// Motifs in Ranked Lists of DNA Sequences". PLoS Computational
// Biology 3 (3): e39.
func MinimumHypergeometric(occurrences []bool, opts *MHGOptions) (*MHGResult, error) {
	if opts == nil {
		opts = &MHGOptions{}
	}
	maxSize := opts.MaxSize
	if maxSize <= 0 {
		maxSize = DefaultMHGMaxSize
	}

	B := int(opts.B.Int64)
	if !opts.B.Valid {
		B = countTrue(occurrences)
	}
	N := len(occurrences)
	if opts.N.Valid {
		N = int(opts.N.Int64)
	}
	scanLen := minint(minint(N, len(occurrences)), maxSize)
	if scanLen < 0 {
		scanLen = 0
	}

	b := countTrue(occurrences[:scanLen])
	if !(0 <= b && b <= B && B <= N) {
		return nil, fmt.Errorf("%w: b is %d, B is %d, N is %d", ErrInvalidContingencyTable, b, B, N)
	}

	res := &MHGResult{MinHG: 1}
	if b == 0 || B == 0 {
		return res, nil
	}

	pivot, hits := 0, 0
	for n := 1; n < scanLen; n++ {
		if occurrences[n-1] {
			hits++
		}
		if p := rightTail(hits, n, B, N); p < res.MinHG {
			res.MinHG, pivot = p, n
		}
		res.Scanned = n
	}

	p := MHGPValue(B, N, maxSize, res.MinHG)
	if p <= 0 {
		// The dynamic program underflowed. Fall back to a
		// Bonferroni-style bound over the scanned prefixes.
		p = math.Min(res.MinHG*float64(res.Scanned), 1)
	}
	res.P = null.FloatFrom(p)
	res.Pivot = null.IntFrom(int64(pivot))
	return res, nil
}

func countTrue(xs []bool) int {
	n := 0
	for _, x := range xs {
		if x {
			n++
		}
	}
	return n
}
