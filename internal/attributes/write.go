// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package attributes

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"

	"github.com/gocarina/gocsv"
)

// prob formats probabilities with six significant digits.
type prob float64

func (p prob) MarshalCSV() (string, error) {
	return strconv.FormatFloat(float64(p), 'g', 6, 64), nil
}

type ratio float64

func (r ratio) MarshalCSV() (string, error) {
	return strconv.FormatFloat(float64(r), 'f', 5, 64), nil
}

type tableRow struct {
	Category   string `csv:"attribute"`
	Annotation string `csv:"annotation"`
	Ratio      ratio  `csv:"enrichment"`
	P          prob   `csv:"p_value"`
	Adjusted   prob   `csv:"adjusted_p_value"`
	Hits       int    `csv:"k"`
	Draws      int    `csv:"n"`
	Successes  int    `csv:"C"`
	N          int    `csv:"G"`
	Entities   string `csv:"entities"`
}

// WriteTable writes results to w as a tab-separated table with a
// header. Entities are listed in one column, separated by commas,
// with their annotations in brackets.
func WriteTable(w io.Writer, results []Result) error {
	rows := make([]*tableRow, len(results))
	for i, r := range results {
		entities := make([]string, len(r.Entities))
		for j, e := range r.Entities {
			entities[j] = e.Name
			if e.Annotation != "" {
				entities[j] += " [" + e.Annotation + "]"
			}
		}
		rows[i] = &tableRow{
			Category:   r.Category,
			Annotation: r.Annotation,
			Ratio:      ratio(r.Ratio),
			P:          prob(r.P),
			Adjusted:   prob(r.Adjusted),
			Hits:       r.Table.Hits,
			Draws:      r.Table.Draws,
			Successes:  r.Table.Successes,
			N:          r.Table.N,
			Entities:   strings.Join(entities, ","),
		}
	}

	cw := csv.NewWriter(w)
	cw.Comma = '\t'
	if err := gocsv.MarshalCSV(rows, gocsv.NewSafeCSVWriter(cw)); err != nil {
		return err
	}
	cw.Flush()
	return cw.Error()
}
