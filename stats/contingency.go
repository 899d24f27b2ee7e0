// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import "fmt"

// A ContingencyTable describes a sample of Draws objects taken
// without replacement from a population of N objects, of which
// Successes carry some attribute. Hits of the sampled objects carry
// the attribute.
//
// In the usual notation this is (b, n, B, N):
//
//	       attribute   other       |
//	sample   b         n-b         | n
//	rest     B-b       N-B-n+b     | N-n
//	       ------------------------+----
//	         B         N-B         | N
type ContingencyTable struct {
	// Hits is b, the number of sampled objects with the attribute.
	Hits int

	// Draws is n, the size of the sample.
	Draws int

	// Successes is B, the number of objects in the population
	// with the attribute.
	Successes int

	// N is the size of the population.
	N int
}

// Validate returns an error wrapping ErrInvalidContingencyTable if t
// is not a possible outcome of sampling from the population.
func (t ContingencyTable) Validate() error {
	if t.Hits < 0 || t.Draws < 0 || t.Successes < 0 || t.N < 0 ||
		t.Hits > t.Draws || t.Draws > t.N || t.Successes > t.N || t.Hits > t.Successes {
		return fmt.Errorf("%w: b is %d, n is %d, B is %d, N is %d",
			ErrInvalidContingencyTable, t.Hits, t.Draws, t.Successes, t.N)
	}
	return nil
}

// Support returns the smallest and largest number of hits that a
// sample of t.Draws objects can contain.
func (t ContingencyTable) Support() (lo, hi int) {
	return t.dist().bounds()
}

// Ratio returns the enrichment ratio (b/n) / (B/N): how much more
// frequent the attribute is in the sample than in the population.
// It is NaN or ±Inf when the sample or the attribute is empty.
func (t ContingencyTable) Ratio() float64 {
	return (float64(t.Hits) / float64(t.Draws)) / (float64(t.Successes) / float64(t.N))
}

// FisherExactTest performs Fisher's exact test on t. See the
// FisherExactTest function.
func (t ContingencyTable) FisherExactTest() (*FisherExactTestResult, error) {
	return FisherExactTest(t.Hits, t.Draws, t.Successes, t.N)
}

func (t ContingencyTable) dist() HypergeometricDist {
	return HypergeometricDist{N: t.N, K: t.Successes, Draws: t.Draws}
}
