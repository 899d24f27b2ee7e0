// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package attributes finds the categories of a population that are
// over-represented in a query, the way an annotation enrichment
// analysis (for example, of Gene Ontology terms in a gene list) does.
package attributes

import (
	"fmt"
	"sort"
	"strings"

	"github.com/BenLubar/memoize"
	"gopkg.in/guregu/null.v3"

	"github.com/xstats/enrichment/stats"
)

// newFisherTest returns a memoized right-tailed Fisher's exact test.
// Many categories share the same counts (most hold a handful of
// entities), so each evaluation keeps its own cache.
func newFisherTest() func(b, n, B, N int) (stats.FisherExactTestResult, error) {
	f := memoize.Memoize(func(b, n, B, N int) (stats.FisherExactTestResult, error) {
		res, err := stats.FisherExactTest(b, n, B, N)
		if err != nil {
			return stats.FisherExactTestResult{}, err
		}
		return *res, nil
	})
	return f.(func(int, int, int, int) (stats.FisherExactTestResult, error))
}

// A Correction is a multiple-testing correction applied to the
// p-values of all categories.
type Correction string

const (
	CorrectionNone       Correction = "none"
	CorrectionBonferroni Correction = "bonferroni"
	CorrectionHolm       Correction = "holm"
	CorrectionFDR        Correction = "fdr"
)

// ParseCorrection returns the correction named s.
func ParseCorrection(s string) (Correction, error) {
	switch c := Correction(strings.ToLower(s)); c {
	case CorrectionNone, CorrectionBonferroni, CorrectionHolm, CorrectionFDR:
		return c, nil
	case "bh", "benjamini-hochberg":
		return CorrectionFDR, nil
	}
	return "", fmt.Errorf("unknown correction %q (want none, bonferroni, holm or fdr)", s)
}

// Adjust applies c to ps.
func (c Correction) Adjust(ps []null.Float) []null.Float {
	switch c {
	case CorrectionBonferroni:
		return stats.Bonferroni(ps)
	case CorrectionHolm:
		return stats.Holm(ps)
	case CorrectionFDR:
		return stats.BenjaminiHochberg(ps)
	}
	return append([]null.Float(nil), ps...)
}

// A Result is the enrichment of one category in a query.
type Result struct {
	Category   string
	Annotation string

	// Table holds the counts: Hits query entities carry the
	// category, out of Draws in the query; Successes of the N
	// entities of the population carry it.
	Table stats.ContingencyTable

	// Ratio is the enrichment ratio of the category in the query.
	Ratio float64

	// P is the right-tail p-value of Fisher's exact test, the
	// probability of at least Table.Hits hits by chance.
	P float64

	// Adjusted is P after the multiple-testing correction.
	Adjusted float64

	// Entities are the query entities carrying the category,
	// sorted by name.
	Entities []QueryEntity
}

// Evaluate tests every category carried by at least one query entity
// for enrichment in the query, and returns the results sorted by
// category.
func Evaluate(pop *Population, query []QueryEntity, annotations map[string]string, correction Correction) ([]Result, error) {
	hits := make(map[string]map[string]QueryEntity)
	for _, e := range query {
		for _, c := range pop.Categories[e.Name] {
			if hits[c] == nil {
				hits[c] = make(map[string]QueryEntity)
			}
			hits[c][e.Name] = e
		}
	}

	fisherExactTest := newFisherTest()
	results := make([]Result, 0, len(hits))
	for c, entities := range hits {
		res := Result{
			Category:   c,
			Annotation: annotations[c],
			Table: stats.ContingencyTable{
				Hits:      len(entities),
				Draws:     len(query),
				Successes: pop.CategorySize[c],
				N:         pop.Size,
			},
		}
		for _, e := range entities {
			res.Entities = append(res.Entities, e)
		}
		sort.Slice(res.Entities, func(i, j int) bool { return res.Entities[i].Name < res.Entities[j].Name })

		t := res.Table
		fisher, err := fisherExactTest(t.Hits, t.Draws, t.Successes, t.N)
		if err != nil {
			return nil, fmt.Errorf("category %s: %w", c, err)
		}
		res.P = fisher.Right
		res.Ratio = t.Ratio()
		results = append(results, res)
	}
	sort.Slice(results, func(i, j int) bool { return results[i].Category < results[j].Category })

	ps := make([]null.Float, len(results))
	for i, r := range results {
		ps[i] = null.FloatFrom(r.P)
	}
	for i, q := range correction.Adjust(ps) {
		results[i].Adjusted = q.Float64
	}
	return results, nil
}
