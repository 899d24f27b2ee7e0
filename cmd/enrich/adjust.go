// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/guregu/null.v3"

	"github.com/xstats/enrichment/internal/attributes"
	"github.com/xstats/enrichment/stats"
)

func newAdjustCmd() *cobra.Command {
	var method string
	var ranking bool

	cmd := &cobra.Command{
		Use:   "adjust FILE|-",
		Short: "Correct a list of p-values for multiple testing",
		Long: `Correct a list of p-values, read one per line, for multiple testing.
Empty lines and NA are missing values; they are kept in place and
excluded from the correction.

With --ranking, prints the Benjamini-Hochberg ranking of the
non-missing p-values instead: rank, input line, q-value and the
expected number of false positives.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			correction, err := attributes.ParseCorrection(method)
			if err != nil {
				return err
			}

			var ps []null.Float
			err = readLines(cmd, args[0], func(line int, text string) error {
				p, err := parsePValue(text)
				if err != nil {
					return err
				}
				ps = append(ps, p)
				return nil
			})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if ranking {
				fmt.Fprintf(w, "rank\tline\tq\tfalse_positives\n")
				for r, rank := range stats.BenjaminiHochbergRanking(ps) {
					fmt.Fprintf(w, "%d\t%d\t%.6g\t%d\n", r+1, rank.Index+1, rank.Q, rank.FalsePositives)
				}
				return nil
			}
			for _, q := range correction.Adjust(ps) {
				if !q.Valid {
					fmt.Fprintln(w, "NA")
					continue
				}
				fmt.Fprintf(w, "%.6g\n", q.Float64)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&method, "method", "m", string(attributes.CorrectionFDR), "Correction: none, bonferroni, holm or fdr")
	cmd.Flags().BoolVar(&ranking, "ranking", false, "Print the Benjamini-Hochberg ranking")

	return cmd
}

func parsePValue(s string) (null.Float, error) {
	if s == "" || strings.EqualFold(s, "NA") {
		return null.Float{}, nil
	}
	p, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return null.Float{}, err
	}
	if !(p >= 0 && p <= 1) {
		return null.Float{}, fmt.Errorf("p-value %v out of range", p)
	}
	return null.FloatFrom(p), nil
}
