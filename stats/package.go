// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package stats implements exact enrichment statistics: the
// hypergeometric distribution, Fisher's exact test, the
// minimum-hypergeometric (mHG) test for ranked lists, and
// multiple-testing corrections for the p-values they produce.
//
// Everything in this package is a pure function of its arguments and
// is safe to call from concurrent goroutines.
package stats // import "github.com/xstats/enrichment/stats"

import "errors"

// ErrInvalidContingencyTable is returned when the counts passed to a
// test cannot describe a sample drawn from a population. Errors
// returned by this package wrap it with the offending counts, so
// match it with errors.Is.
var ErrInvalidContingencyTable = errors.New("malformed contingency table")

func minint(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxint(a, b int) int {
	if a > b {
		return a
	}
	return b
}
