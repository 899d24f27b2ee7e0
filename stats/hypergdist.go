// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"

	"github.com/xstats/enrichment/mathx"
)

// HypergeometricDist is a hypergeometric distribution: the number of
// successes in Draws draws without replacement from a population of
// N objects that contains exactly K successes.
type HypergeometricDist struct {
	// N is the size of the population. N >= 0.
	N int

	// K is the number of successes in the population. 0 <= K <= N.
	K int

	// Draws is the number of draws from the population. This is
	// usually written "n", but is called Draws here because of
	// limitations on Go identifier naming. 0 <= Draws <= N.
	Draws int
}

// PMF is the probability of getting exactly int(k) successes in
// d.Draws draws without replacement from a population of size d.N
// that contains exactly d.K successes.
func (d HypergeometricDist) PMF(k float64) float64 {
	return d.pmf(int(math.Floor(k)))
}

// pmf is exactly 0 outside the support, so Lchoose is never asked
// for a negative count.
func (d HypergeometricDist) pmf(k int) float64 {
	l, h := d.bounds()
	if k < l || k > h {
		return 0
	}
	p := math.Exp(mathx.Lchoose(d.K, k) + mathx.Lchoose(d.N-d.K, d.Draws-k) - mathx.Lchoose(d.N, d.Draws))
	if p < 0 {
		return 0
	}
	return p
}

// CDF is the probability of getting int(k) or fewer successes in
// d.Draws draws without replacement from a population of size d.N
// that contains exactly d.K successes.
func (d HypergeometricDist) CDF(k float64) float64 {
	ki := int(math.Floor(k))
	l, h := d.bounds()
	if ki < l {
		return 0
	} else if ki >= h {
		return 1
	}
	p := 0.0
	for i := l; i <= ki; i++ {
		p += d.pmf(i)
	}
	return math.Min(p, 1)
}

func (d HypergeometricDist) bounds() (int, int) {
	return maxint(0, d.Draws+d.K-d.N), minint(d.Draws, d.K)
}

func (d HypergeometricDist) Bounds() (float64, float64) {
	l, h := d.bounds()
	return float64(l), float64(h)
}

func (d HypergeometricDist) Step() float64 {
	return 1
}

func (d HypergeometricDist) Mean() float64 {
	return float64(d.Draws) * float64(d.K) / float64(d.N)
}

func (d HypergeometricDist) Variance() float64 {
	n, k, draws := float64(d.N), float64(d.K), float64(d.Draws)
	return draws * k * (n - k) * (n - draws) / (n * n * (n - 1))
}
