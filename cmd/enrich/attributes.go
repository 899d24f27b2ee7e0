// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"github.com/xstats/enrichment/internal/attributes"
)

func newAttributesCmd() *cobra.Command {
	var mappingFile, queryFile, annotationFile string
	var correction, delimiter string

	cmd := &cobra.Command{
		Use:   "attributes",
		Short: "Find population categories enriched in a query",
		Long: `Find the categories of a population that are over-represented in a
query, by Fisher's exact test on each category carried by at least one
query entity.

The mapping lists one entity per line followed by its categories. A
line "@G" declares a population of G entities, for populations that
include entities without categories. The query lists one entity per
line, optionally followed by an annotation. The optional annotation
file lists one category per line followed by its description.

Example: enrich attributes -m go.tsv -q genes.txt -a terms.tsv --correction fdr`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := attributes.ParseCorrection(correction)
			if err != nil {
				return err
			}

			mapping, err := os.ReadFile(mappingFile)
			if err != nil {
				return err
			}
			delim, err := parseDelimiter(delimiter, mapping)
			if err != nil {
				return err
			}
			logger.Debug("delimiter", "rune", string(delim))

			pop, err := attributes.ReadPopulation(bytes.NewReader(mapping), delim)
			if err != nil {
				return fmt.Errorf("%s: %w", mappingFile, err)
			}
			logger.Debug("read population", "file", mappingFile, "size", pop.Size, "categories", len(pop.CategorySize))

			query, err := readFile(queryFile, delim, attributes.ReadQuery)
			if err != nil {
				return err
			}
			logger.Debug("read query", "file", queryFile, "size", len(query))

			var annotations map[string]string
			if annotationFile != "" {
				annotations, err = readFile(annotationFile, delim, attributes.ReadAnnotations)
				if err != nil {
					return err
				}
				logger.Debug("read annotations", "file", annotationFile, "categories", len(annotations))
			}

			results, err := attributes.Evaluate(pop, query, annotations, c)
			if err != nil {
				return err
			}
			logger.Info("evaluated categories", "count", len(results), "correction", string(c))
			return attributes.WriteTable(cmd.OutOrStdout(), results)
		},
	}

	cmd.Flags().StringVarP(&mappingFile, "mapping", "m", "", "Population mapping file")
	cmd.Flags().StringVarP(&queryFile, "query", "q", "", "Query file")
	cmd.Flags().StringVarP(&annotationFile, "annotations", "a", "", "Category annotation file")
	cmd.Flags().StringVarP(&correction, "correction", "c", string(attributes.CorrectionFDR), "Correction: none, bonferroni, holm or fdr")
	cmd.Flags().StringVarP(&delimiter, "delimiter", "d", "auto", `Field delimiter: "auto", "tab" or a single character`)
	cmd.MarkFlagRequired("mapping")
	cmd.MarkFlagRequired("query")

	return cmd
}

// parseDelimiter returns the delimiter named by s. "auto" detects it
// from sample.
func parseDelimiter(s string, sample []byte) (rune, error) {
	switch s {
	case "auto":
		return attributes.DetectDelimiter(sample), nil
	case "tab", `\t`:
		return '\t', nil
	case "comma":
		return ',', nil
	case "space":
		return ' ', nil
	}
	if utf8.RuneCountInString(s) != 1 {
		return 0, fmt.Errorf("bad delimiter %q", s)
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r, nil
}

func readFile[T any](name string, delim rune, read func(io.Reader, rune) (T, error)) (T, error) {
	f, err := os.Open(name)
	if err != nil {
		var zero T
		return zero, err
	}
	defer f.Close()

	x, err := read(f, delim)
	if err != nil {
		return x, fmt.Errorf("%s: %w", name, err)
	}
	return x, nil
}
