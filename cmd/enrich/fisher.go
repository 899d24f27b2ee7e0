// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/xstats/enrichment/stats"
)

func newFisherCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fisher b n B N",
		Short: "Fisher's exact test on a contingency table",
		Long: `Fisher's exact test of b hits in a sample of n objects drawn from a
population of N objects, B of which carry the attribute.

Example: enrich fisher 3 4 4 8`,
		Args: cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			var xs [4]int
			for i, arg := range args {
				x, err := strconv.Atoi(arg)
				if err != nil {
					return fmt.Errorf("bad count %q: %w", arg, err)
				}
				xs[i] = x
			}
			res, err := stats.FisherExactTest(xs[0], xs[1], xs[2], xs[3])
			if err != nil {
				return err
			}
			printFisher(cmd.OutOrStdout(), res)
			return nil
		},
	}
}

func printFisher(w io.Writer, res *stats.FisherExactTestResult) {
	t := res.Table
	b, n, B, N := t.Hits, t.Draws, t.Successes, t.N

	fmt.Fprintf(w, "%8s %8s %8s | %8s\n", "", "attr", "other", "total")
	fmt.Fprintf(w, "%8s %8d %8d | %8d\n", "sample", b, n-b, n)
	fmt.Fprintf(w, "%8s %8d %8d | %8d\n", "rest", B-b, N-B-n+b, N-n)
	fmt.Fprintf(w, "%8s %8d %8d | %8d\n", "total", B, N-B, N)
	fmt.Fprintln(w)
	fmt.Fprintf(w, "%-10s %.6g\n", "ratio", t.Ratio())
	fmt.Fprintf(w, "%-10s %.6g\n", "left", res.Left)
	fmt.Fprintf(w, "%-10s %.6g\n", "right", res.Right)
	fmt.Fprintf(w, "%-10s %.6g\n", "two-tailed", res.TwoTailed)
}
