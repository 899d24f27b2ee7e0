// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command enrich computes exact enrichment statistics: Fisher's exact
// test on a contingency table, the minimum-hypergeometric test on a
// ranked occurrence list, multiple-testing corrections of p-value
// lists, and the enrichment of population categories in a query.
package main

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var logger = slog.New(slog.NewTextHandler(os.Stderr, nil))

func main() {
	if err := newRootCmd().Execute(); err != nil {
		logger.Error("enrich failed", "error", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var verbose bool

	rootCmd := &cobra.Command{
		Use:           "enrich",
		Short:         "Exact enrichment statistics",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelInfo
			if verbose {
				level = slog.LevelDebug
			}
			logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log debugging details")

	rootCmd.AddCommand(
		newFisherCmd(),
		newMHGCmd(),
		newAdjustCmd(),
		newAttributesCmd(),
	)
	return rootCmd
}

// openInput opens the named file, or cmd's standard input if name is
// "-".
func openInput(cmd *cobra.Command, name string) (io.ReadCloser, error) {
	if name == "-" {
		return io.NopCloser(cmd.InOrStdin()), nil
	}
	return os.Open(name)
}

// readLines calls fn with each line of the named input, trimmed of
// surrounding space. Blank lines are passed to fn.
func readLines(cmd *cobra.Command, name string, fn func(line int, text string) error) error {
	f, err := openInput(cmd, name)
	if err != nil {
		return err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	line := 0
	for scanner.Scan() {
		line++
		if err := fn(line, strings.TrimSpace(scanner.Text())); err != nil {
			return fmt.Errorf("%s:%d: %w", name, line, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	logger.Debug("read input", "file", name, "lines", line)
	return nil
}
