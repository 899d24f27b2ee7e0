// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"
	"sort"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

func aeq(expect, got float64) bool {
	return math.Abs(expect-got) < 0.00001
}

// req reports whether got is within a relative tolerance tol of
// expect.
func req(expect, got, tol float64) bool {
	return scalar.EqualWithinRel(expect, got, tol)
}

// testFunc checks f against a table of expected values.
func testFunc(t *testing.T, name string, f func(float64) float64, vals map[float64]float64) {
	t.Helper()
	xs := make([]float64, 0, len(vals))
	for x := range vals {
		xs = append(xs, x)
	}
	sort.Float64s(xs)

	for _, x := range xs {
		want, got := vals[x], f(x)
		if math.IsNaN(want) && math.IsNaN(got) || aeq(want, got) {
			continue
		}
		t.Errorf("want %s(%v)=%v, got %v", name, x, want, got)
	}
}

// testDiscreteCDF checks that dist.CDF agrees with the running sum of
// dist.PMF, including between the defined points.
func testDiscreteCDF(t *testing.T, name string, dist DiscreteDist) {
	t.Helper()
	l, h := dist.Bounds()
	s := dist.Step()
	want := map[float64]float64{l - 0.1: 0, h: 1, h + 10: 1}
	sum := 0.0
	for x := l; x < h; x += s {
		sum += dist.PMF(x)
		want[x] = sum
		want[x+s/2] = sum
	}
	testFunc(t, name, dist.CDF, want)
}
