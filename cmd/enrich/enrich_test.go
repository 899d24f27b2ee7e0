// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xstats/enrichment/stats"
)

func runEnrich(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	err := cmd.Execute()
	return out.String(), err
}

func TestFisher(t *testing.T) {
	out, err := runEnrich(t, "", "fisher", "3", "4", "4", "8")
	require.NoError(t, err)

	assert.Contains(t, out, "  sample        3        1 |        4\n")
	assert.Contains(t, out, "    rest        1        3 |        4\n")
	assert.Contains(t, out, "ratio      1.5\n")
	assert.Contains(t, out, "left       0.985714\n")
	assert.Contains(t, out, "right      0.242857\n")
	assert.Contains(t, out, "two-tailed 0.485714\n")
}

func TestFisherInvalid(t *testing.T) {
	_, err := runEnrich(t, "", "fisher", "5", "4", "4", "8")
	assert.ErrorIs(t, err, stats.ErrInvalidContingencyTable)

	_, err = runEnrich(t, "", "fisher", "a", "4", "4", "8")
	assert.ErrorContains(t, err, `bad count "a"`)

	_, err = runEnrich(t, "", "fisher", "1", "2")
	assert.Error(t, err)
}

func TestMHG(t *testing.T) {
	out, err := runEnrich(t, "1\ntrue\nyes\n\n0\nfalse\nNo\n", "mhg", "-")
	require.NoError(t, err)
	assert.Equal(t, "p-value 0.05\npivot   3\n", out)

	out, err = runEnrich(t, "0\n0\n0\n", "mhg", "-")
	require.NoError(t, err)
	assert.Equal(t, "p-value NA\npivot   NA\n", out)

	_, err = runEnrich(t, "1\nmaybe\n", "mhg", "-")
	assert.ErrorContains(t, err, "-:2")
}

func TestMHGPopulation(t *testing.T) {
	// A longer population makes the same prefix more significant.
	out, err := runEnrich(t, "1\n1\n1\n0\n0\n0\n", "mhg", "-B", "3", "-N", "60", "-")
	require.NoError(t, err)
	assert.Contains(t, out, "pivot   3\n")
	assert.NotContains(t, out, "p-value 0.05\n")
}

const testPValues = ".01\nNA\n.04\n.03\n\n.005\n.2\n"

func TestAdjust(t *testing.T) {
	out, err := runEnrich(t, testPValues, "adjust", "--method", "bonferroni", "-")
	require.NoError(t, err)
	assert.Equal(t, "0.05\nNA\n0.2\n0.15\nNA\n0.025\n1\n", out)

	out, err = runEnrich(t, testPValues, "adjust", "-m", "none", "-")
	require.NoError(t, err)
	assert.Equal(t, "0.01\nNA\n0.04\n0.03\nNA\n0.005\n0.2\n", out)

	_, err = runEnrich(t, "0.5\n1.5\n", "adjust", "-")
	assert.ErrorContains(t, err, "out of range")

	_, err = runEnrich(t, testPValues, "adjust", "-m", "sidak", "-")
	assert.Error(t, err)
}

func TestAdjustRanking(t *testing.T) {
	out, err := runEnrich(t, testPValues, "adjust", "--ranking", "-")
	require.NoError(t, err)
	assert.Equal(t, "rank\tline\tq\tfalse_positives\n"+
		"1\t6\t0.025\t0\n"+
		"2\t1\t0.025\t0\n"+
		"3\t4\t0.05\t0\n"+
		"4\t3\t0.05\t0\n"+
		"5\t7\t0.2\t1\n", out)
}

func TestAttributes(t *testing.T) {
	dir := t.TempDir()
	write := func(name, data string) string {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte(data), 0o644))
		return path
	}
	mapping := write("mapping.tsv", "@20\ng1\tA\tB\ng2\tA\ng3\tA\ng4\tB\ng5\tC\n")
	query := write("query.tsv", "g1\ng2\tnote\ng3\ngX\n")
	annotations := write("terms.tsv", "A\tfirst\nC\tthird\n")

	out, err := runEnrich(t, "", "attributes", "-m", mapping, "-q", query, "-a", annotations,
		"--correction", "bonferroni", "--delimiter", "tab")
	require.NoError(t, err)
	assert.Equal(t, "attribute\tannotation\tenrichment\tp_value\tadjusted_p_value\tk\tn\tC\tG\tentities\n"+
		"A\tfirst\t5.00000\t0.00350877\t0.00701754\t3\t4\t3\t20\tg1,g2 [note],g3\n"+
		"B\t\t2.50000\t0.368421\t0.736842\t1\t4\t2\t20\tg1\n", out)

	_, err = runEnrich(t, "", "attributes", "-m", filepath.Join(dir, "missing.tsv"), "-q", query)
	assert.Error(t, err)

	_, err = runEnrich(t, "", "attributes", "-q", query)
	assert.Error(t, err)
}

func TestParseDelimiter(t *testing.T) {
	for in, want := range map[string]rune{
		"tab":   '\t',
		`\t`:    '\t',
		"comma": ',',
		"space": ' ',
		";":     ';',
		"|":     '|',
	} {
		got, err := parseDelimiter(in, nil)
		if assert.NoError(t, err, in) {
			assert.Equal(t, want, got, in)
		}
	}
	_, err := parseDelimiter("::", nil)
	assert.Error(t, err)
}
