// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mathx

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

func TestLgamma(t *testing.T) {
	for _, z := range []float64{0.5, 1, 1.5, 2, 3, 7.25, 10, 101, 1000.5, 12345} {
		want, _ := math.Lgamma(z)
		if got := Lgamma(z); !scalar.EqualWithinAbsOrRel(got, want, 1e-9, 1e-12) {
			t.Errorf("Lgamma(%v) = %v, want %v", z, got, want)
		}
	}
}

func TestLogFactorial(t *testing.T) {
	for _, n := range []int{-3, 0, 1} {
		if got := LogFactorial(n); got != 0 {
			t.Errorf("LogFactorial(%d) = %v, want exactly 0", n, got)
		}
	}

	fact := 1.0
	for n := 2; n <= 20; n++ {
		fact *= float64(n)
		if got, want := LogFactorial(n), math.Log(fact); !scalar.EqualWithinAbsOrRel(got, want, 1e-10, 1e-12) {
			t.Errorf("LogFactorial(%d) = %v, want %v", n, got, want)
		}
	}
}
