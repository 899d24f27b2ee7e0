// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package attributes

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/csimplestring/go-csv/detector"
)

// DetectDelimiter returns the most likely field delimiter of data,
// or a tab if none stands out.
func DetectDelimiter(data []byte) rune {
	d := detector.New()
	delimiters := d.DetectDelimiter(bytes.NewReader(data), '"')

	if len(delimiters) > 0 && len(delimiters[0]) > 0 {
		return rune(delimiters[0][0])
	}

	return '\t'
}

// readRecords calls fn with the fields of each record of r, trimmed
// of surrounding space. Blank lines and lines starting with '#' are
// skipped, and records may have any number of fields.
func readRecords(r io.Reader, delim rune, fn func(line int, fields []string) error) error {
	cr := csv.NewReader(r)
	cr.Comma = delim
	cr.Comment = '#'
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	for {
		fields, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return nil
		} else if err != nil {
			return err
		}
		line, _ := cr.FieldPos(0)
		for i := range fields {
			fields[i] = strings.TrimSpace(fields[i])
		}
		if len(fields) == 0 || fields[0] == "" {
			continue
		}
		if err := fn(line, fields); err != nil {
			return err
		}
	}
}

// A Population maps every entity of a reference population to the
// categories (attribute values) it carries.
type Population struct {
	// Size is the number of entities in the population. It is at
	// least the number of entities listed, and may be larger if
	// the mapping declared a larger size.
	Size int

	// Categories maps each entity to its categories.
	Categories map[string][]string

	// CategorySize is the number of entities carrying each
	// category.
	CategorySize map[string]int
}

// ReadPopulation reads a population mapping. Each record is an
// entity followed by the categories it carries. A record whose first
// field is "@" followed by an integer declares the size of the
// population, for populations that include entities without any
// category.
func ReadPopulation(r io.Reader, delim rune) (*Population, error) {
	pop := &Population{
		Categories:   make(map[string][]string),
		CategorySize: make(map[string]int),
	}
	declared, listed := 0, 0
	err := readRecords(r, delim, func(line int, fields []string) error {
		if strings.HasPrefix(fields[0], "@") {
			size, err := strconv.Atoi(strings.TrimSpace(fields[0][1:]))
			if err != nil || size < 0 {
				return fmt.Errorf("line %d: bad population size %q", line, fields[0])
			}
			declared = size
			return nil
		}

		entity, categories := fields[0], uniqueNonEmpty(fields[1:])
		listed++
		for _, c := range categories {
			pop.CategorySize[c]++
		}
		if len(categories) > 0 {
			pop.Categories[entity] = append(pop.Categories[entity], categories...)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	pop.Size = listed
	if declared > pop.Size {
		pop.Size = declared
	}
	return pop, nil
}

// A QueryEntity is one entity of a query, with an optional free-text
// annotation.
type QueryEntity struct {
	Name       string
	Annotation string
}

// ReadQuery reads a query: one entity per record, optionally followed
// by an annotation. Every record counts towards the size of the
// query, including entities absent from the population.
func ReadQuery(r io.Reader, delim rune) ([]QueryEntity, error) {
	var query []QueryEntity
	err := readRecords(r, delim, func(line int, fields []string) error {
		e := QueryEntity{Name: fields[0]}
		if len(fields) > 1 {
			e.Annotation = fields[1]
		}
		query = append(query, e)
		return nil
	})
	return query, err
}

// ReadAnnotations reads category annotations: a category followed by
// its annotation.
func ReadAnnotations(r io.Reader, delim rune) (map[string]string, error) {
	annotations := make(map[string]string)
	err := readRecords(r, delim, func(line int, fields []string) error {
		if len(fields) < 2 {
			return fmt.Errorf("line %d: category %q has no annotation", line, fields[0])
		}
		annotations[fields[0]] = fields[1]
		return nil
	})
	return annotations, err
}

func uniqueNonEmpty(xs []string) []string {
	seen := make(map[string]bool, len(xs))
	out := make([]string, 0, len(xs))
	for _, x := range xs {
		if x != "" && !seen[x] {
			seen[x] = true
			out = append(out, x)
		}
	}
	sort.Strings(out)
	return out
}
