// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"
	"sort"

	"gopkg.in/guregu/null.v3"
)

// The functions in this file adjust a family of p-values for multiple
// testing, like R's p.adjust. Missing p-values (null entries) stand
// for hypotheses that were not tested: they are not counted in the
// family and are returned unchanged at their original positions.

// Bonferroni adjusts ps using the Bonferroni correction, which
// controls the family-wise error rate. Each p-value is multiplied by
// the number of non-missing p-values and capped at 1.
func Bonferroni(ps []null.Float) []null.Float {
	n := float64(countValid(ps))
	out := make([]null.Float, len(ps))
	for i, p := range ps {
		if p.Valid {
			out[i] = null.FloatFrom(math.Min(p.Float64*n, 1))
		}
	}
	return out
}

// Holm adjusts ps using the Holm-Bonferroni step-down method, which
// controls the family-wise error rate and is uniformly more powerful
// than Bonferroni.
//
// The k'th smallest of n p-values (counting from 0) is multiplied by
// n-k, capped at 1, and raised to the largest adjusted value of any
// smaller p-value, so adjusted values never decrease with rank.
func Holm(ps []null.Float) []null.Float {
	ranked := rankValid(ps, false)
	n := len(ranked)
	out := make([]null.Float, len(ps))
	hi := 0.0
	for k, i := range ranked {
		if q := math.Min(ps[i].Float64*float64(n-k), 1); q > hi {
			hi = q
		}
		out[i] = null.FloatFrom(hi)
	}
	return out
}

// BenjaminiHochberg adjusts ps using the Benjamini-Hochberg
// procedure, which controls the false discovery rate when the tests
// are independent or positively correlated. The adjusted values are
// often called q-values.
//
// The p-value of rank r among n (the smallest has rank 1) is
// multiplied by n/r, capped at 1, and lowered to the smallest
// adjusted value of any larger p-value, so adjusted values never
// increase as p-values decrease.
func BenjaminiHochberg(ps []null.Float) []null.Float {
	out := make([]null.Float, len(ps))
	for _, r := range benjaminiHochberg(ps) {
		out[r.Index] = null.FloatFrom(r.Q)
	}
	return out
}

// An FDRRank is one entry of the ranking produced by
// BenjaminiHochbergRanking.
type FDRRank struct {
	// Index is the position of this p-value in the input.
	Index int

	// Q is the adjusted p-value, the estimated false discovery
	// rate when this hypothesis and all better-ranked ones are
	// accepted.
	Q float64

	// FalsePositives is the expected number of false positives
	// among this hypothesis and all better-ranked ones, that is,
	// Q times the rank, rounded to the nearest integer.
	FalsePositives int
}

// BenjaminiHochbergRanking adjusts ps like BenjaminiHochberg, but
// returns the non-missing entries ranked by increasing p-value, so
// element r-1 of the result describes the hypothesis of rank r.
// Ties are ranked by their position in ps.
func BenjaminiHochbergRanking(ps []null.Float) []FDRRank {
	ranks := benjaminiHochberg(ps)
	for r := range ranks {
		ranks[r].FalsePositives = int(math.Round(ranks[r].Q * float64(r+1)))
	}
	return ranks
}

// benjaminiHochberg returns the q-values of the non-missing entries
// of ps in order of increasing p-value.
func benjaminiHochberg(ps []null.Float) []FDRRank {
	ranked := rankValid(ps, true)
	n := len(ranked)
	ranks := make([]FDRRank, n)
	lo := 1.0
	for c, i := range ranked {
		if q := math.Min(ps[i].Float64*float64(n)/float64(n-c), 1); q < lo {
			lo = q
		}
		ranks[n-1-c] = FDRRank{Index: i, Q: lo}
	}
	return ranks
}

// rankValid returns the indexes of the non-missing entries of ps,
// sorted by increasing p-value with ties in index order. If
// descending, the whole order is reversed.
func rankValid(ps []null.Float, descending bool) []int {
	idx := make([]int, 0, len(ps))
	for i, p := range ps {
		if p.Valid {
			idx = append(idx, i)
		}
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return ps[idx[a]].Float64 < ps[idx[b]].Float64
	})
	if descending {
		for a, b := 0, len(idx)-1; a < b; a, b = a+1, b-1 {
			idx[a], idx[b] = idx[b], idx[a]
		}
	}
	return idx
}

func countValid(ps []null.Float) int {
	n := 0
	for _, p := range ps {
		if p.Valid {
			n++
		}
	}
	return n
}
