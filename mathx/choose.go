// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mathx

// Lchoose returns ln(n choose k), the logarithm of the number of
// ways of choosing k elements from a set of n.
//
// Lchoose does not check that 0 <= k <= n; callers that can be
// outside that range must handle it themselves.
func Lchoose(n, k int) float64 {
	return LogFactorial(n) - LogFactorial(k) - LogFactorial(n-k)
}
