// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/guregu/null.v3"

	"github.com/xstats/enrichment/stats"
)

func newMHGCmd() *cobra.Command {
	var successes, population, maxSize int

	cmd := &cobra.Command{
		Use:   "mhg FILE|-",
		Short: "Minimum-hypergeometric test on a ranked occurrence list",
		Long: `Minimum-hypergeometric test on a ranked list read one element per line,
best first. Each line is 1, true or yes if the element carries the
attribute and 0, false or no otherwise.

Prints the p-value and the pivot, the prefix length at which the
attribute is most enriched, or NA if there is no evidence of
enrichment.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var occurrences []bool
			err := readLines(cmd, args[0], func(line int, text string) error {
				if text == "" {
					return nil
				}
				x, err := parseOccurrence(text)
				if err != nil {
					return err
				}
				occurrences = append(occurrences, x)
				return nil
			})
			if err != nil {
				return err
			}

			opts := &stats.MHGOptions{MaxSize: maxSize}
			if cmd.Flags().Changed("successes") {
				opts.B = null.IntFrom(int64(successes))
			}
			if cmd.Flags().Changed("population") {
				opts.N = null.IntFrom(int64(population))
			}
			res, err := stats.MinimumHypergeometric(occurrences, opts)
			if err != nil {
				return err
			}
			logger.Debug("mhg scan", "elements", len(occurrences), "scanned", res.Scanned, "min_hg", res.MinHG)

			w := cmd.OutOrStdout()
			if !res.Evaluated() {
				fmt.Fprintln(w, "p-value NA")
				fmt.Fprintln(w, "pivot   NA")
				return nil
			}
			fmt.Fprintf(w, "p-value %.6g\n", res.P.Float64)
			fmt.Fprintf(w, "pivot   %d\n", res.Pivot.Int64)
			return nil
		},
	}

	cmd.Flags().IntVarP(&successes, "successes", "B", 0, "Objects carrying the attribute in the population (default: count of the list)")
	cmd.Flags().IntVarP(&population, "population", "N", 0, "Population size (default: length of the list)")
	cmd.Flags().IntVar(&maxSize, "max-size", stats.DefaultMHGMaxSize, "Longest prefix scanned")

	return cmd
}

func parseOccurrence(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "1", "true", "yes":
		return true, nil
	case "0", "false", "no":
		return false, nil
	}
	return false, fmt.Errorf("bad occurrence %q", s)
}
