// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math/rand"
	"sort"
	"testing"

	"gopkg.in/guregu/null.v3"
)

var na = null.Float{}

func pv(p float64) null.Float {
	return null.FloatFrom(p)
}

func checkAdjusted(t *testing.T, name string, want, got []null.Float) {
	t.Helper()
	if len(want) != len(got) {
		t.Fatalf("%s: want %d values, got %d", name, len(want), len(got))
	}
	for i := range want {
		if want[i].Valid != got[i].Valid || want[i].Valid && !req(want[i].Float64, got[i].Float64, 1e-12) {
			t.Errorf("%s: at %d want %v, got %v", name, i, want[i], got[i])
		}
	}
}

// Expected values agree with R's p.adjust on the non-missing entries.
var padjustInput = []null.Float{pv(0.01), na, pv(0.04), pv(0.03), na, pv(0.005), pv(0.2)}

func TestBonferroni(t *testing.T) {
	checkAdjusted(t, "Bonferroni",
		[]null.Float{pv(0.05), na, pv(0.2), pv(0.15), na, pv(0.025), pv(1)},
		Bonferroni(padjustInput))

	// A single test needs no correction.
	checkAdjusted(t, "Bonferroni", []null.Float{na, pv(0.3), na}, Bonferroni([]null.Float{na, pv(0.3), na}))
	if got := Bonferroni([]null.Float{pv(0.3)}); got[0].Float64 != 0.3 {
		t.Errorf("Bonferroni of one p-value: want 0.3 exactly, got %v", got[0])
	}

	if got := Bonferroni(nil); len(got) != 0 {
		t.Errorf("Bonferroni(nil) = %v, want empty", got)
	}
}

func TestHolm(t *testing.T) {
	checkAdjusted(t, "Holm",
		[]null.Float{pv(0.04), na, pv(0.09), pv(0.09), na, pv(0.025), pv(0.2)},
		Holm(padjustInput))
}

func TestBenjaminiHochberg(t *testing.T) {
	checkAdjusted(t, "BenjaminiHochberg",
		[]null.Float{pv(0.025), na, pv(0.05), pv(0.05), na, pv(0.025), pv(0.2)},
		BenjaminiHochberg(padjustInput))
}

func TestBenjaminiHochbergRanking(t *testing.T) {
	want := []FDRRank{
		{Index: 5, Q: 0.025, FalsePositives: 0},
		{Index: 0, Q: 0.025, FalsePositives: 0},
		{Index: 3, Q: 0.05, FalsePositives: 0},
		{Index: 2, Q: 0.05, FalsePositives: 0},
		{Index: 6, Q: 0.2, FalsePositives: 1},
	}
	got := BenjaminiHochbergRanking(padjustInput)
	if len(got) != len(want) {
		t.Fatalf("want %d ranks, got %+v", len(want), got)
	}
	for i := range want {
		if got[i].Index != want[i].Index || !req(want[i].Q, got[i].Q, 1e-12) || got[i].FalsePositives != want[i].FalsePositives {
			t.Errorf("rank %d: want %+v, got %+v", i+1, want[i], got[i])
		}
	}

	// Ties are ranked by position.
	got = BenjaminiHochbergRanking([]null.Float{pv(0.5), pv(0.1), pv(0.1), na, pv(0.1)})
	for i, idx := range []int{1, 2, 4, 0} {
		if got[i].Index != idx {
			t.Errorf("ties: want rank %d at index %d, got %+v", i+1, idx, got)
		}
	}
}

func TestAdjustmentsMonotone(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	ps := make([]null.Float, 200)
	for i := range ps {
		if r.Intn(10) == 0 {
			continue
		}
		ps[i] = pv(r.Float64() * r.Float64())
	}

	idx := rankValid(ps, false)
	if !sort.SliceIsSorted(idx, func(a, b int) bool { return ps[idx[a]].Float64 < ps[idx[b]].Float64 }) {
		t.Fatal("rankValid did not sort by p-value")
	}

	for name, adjust := range map[string]func([]null.Float) []null.Float{
		"Bonferroni":        Bonferroni,
		"Holm":              Holm,
		"BenjaminiHochberg": BenjaminiHochberg,
	} {
		adj := adjust(ps)
		for i := range ps {
			if ps[i].Valid != adj[i].Valid {
				t.Fatalf("%s: missing value at %d not preserved", name, i)
			}
			if adj[i].Valid && (adj[i].Float64 < ps[i].Float64 || adj[i].Float64 > 1) {
				t.Errorf("%s: p-value %v adjusted to %v", name, ps[i].Float64, adj[i].Float64)
			}
		}
		for k := 1; k < len(idx); k++ {
			if adj[idx[k]].Float64 < adj[idx[k-1]].Float64 {
				t.Errorf("%s: adjusted values decrease from rank %d (%v) to %d (%v)",
					name, k, adj[idx[k-1]].Float64, k+1, adj[idx[k]].Float64)
			}
		}
	}
}
