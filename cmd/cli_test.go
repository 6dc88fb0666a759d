package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/HairyFotr/umap/core"
	"github.com/HairyFotr/umap/matrix"
	"github.com/HairyFotr/umap/pairwise"
	"github.com/stretchr/testify/require"
)

func TestRun_RandomSymmetricVerify(t *testing.T) {
	t.Setenv("UMAP_SEED", "7")
	var out bytes.Buffer
	err := Run(context.Background(), []string{
		"-random", "20x4", "-metric", "hellinger", "-chunk", "3", "-verify", "-show", "2",
	}, &out)
	require.NoError(t, err)

	report := out.String()
	require.Contains(t, report, "Random 20x4 input, seed 7 (from UMAP_SEED)")
	require.Contains(t, report, "Computed 20x20 symmetric distance matrix (metric=hellinger, chunk=3")
	require.Contains(t, report, "Distances over 380 pairs")
	require.Contains(t, report, "row 0: 0.000")
	require.Contains(t, report, "Naive reference: max abs diff = 0")
}

func TestRun_CSVAsymmetric(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "x.csv")
	other := filepath.Join(dir, "y.csv")
	require.NoError(t, os.WriteFile(input, []byte("0,0\n3,4\n"), 0o644))
	require.NoError(t, os.WriteFile(other, []byte("0,0\n6,8\n3,4\n"), 0o644))

	var out bytes.Buffer
	err := Run(context.Background(), []string{"-input", input, "-other", other, "-verify"}, &out)
	require.NoError(t, err)
	require.Contains(t, out.String(), "Computed 2x3 asymmetric distance matrix")
	require.Contains(t, out.String(), "row 0: 0.000 10.000 5.000")
	require.Contains(t, out.String(), "row 1: 5.000 5.000 0.000")
}

func TestRun_Normalize(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "x.csv")
	require.NoError(t, os.WriteFile(input, []byte("2,0\n0,5\n"), 0o644))

	var out bytes.Buffer
	err := Run(context.Background(), []string{"-input", input, "-normalize", "-metric", "manhattan"}, &out)
	require.NoError(t, err)
	require.Contains(t, out.String(), "row 0: 0.000 2.000")
}

func TestRun_L1(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "x.csv")
	require.NoError(t, os.WriteFile(input, []byte("1,3\n2,2\n"), 0o644))

	var out bytes.Buffer
	err := Run(context.Background(), []string{"-input", input, "-l1", "-metric", "manhattan"}, &out)
	require.NoError(t, err)
	// (0.25, 0.75) vs (0.5, 0.5)
	require.Contains(t, out.String(), "row 0: 0.000 0.500")
}

func TestRun_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		is   error
	}{
		{"no input", []string{}, nil},
		{"both inputs", []string{"-input", "a.csv", "-random", "2x2"}, nil},
		{"bad shape", []string{"-random", "2by2"}, nil},
		{"zero shape", []string{"-random", "0x2"}, nil},
		{"unknown metric", []string{"-random", "2x2", "-metric", "nope"}, core.ErrUnknownMetric},
		{"bad chunk", []string{"-random", "2x2", "-chunk", "0"}, pairwise.ErrInvalidArgument},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Run(context.Background(), tt.args, &bytes.Buffer{})
			require.Error(t, err)
			if tt.is != nil {
				require.ErrorIs(t, err, tt.is)
			}
		})
	}
}

func TestRun_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := Run(ctx, []string{"-random", "10x3"}, &bytes.Buffer{})
	require.ErrorIs(t, err, context.Canceled)
}

func TestParseShape(t *testing.T) {
	rows, cols, err := parseShape("12X8")
	require.NoError(t, err)
	require.Equal(t, 12, rows)
	require.Equal(t, 8, cols)

	for _, bad := range []string{"", "12", "ax8", "12x", "-1x3", "1x2x3"} {
		_, _, err := parseShape(bad)
		require.Error(t, err, bad)
	}
}

func TestSummarize(t *testing.T) {
	m, err := matrix.FromRows([][]float32{{0, 1, 4}, {1, 0, 2}, {4, 2, 0}})
	require.NoError(t, err)

	s := summarize(m, true)
	require.Equal(t, 6, s.count)
	require.Equal(t, 1.0, s.min)
	require.Equal(t, 4.0, s.max)
	require.InDelta(t, 7.0/3.0, s.mean, 1e-9)

	all := summarize(m, false)
	require.Equal(t, 9, all.count)
	require.Equal(t, 0.0, all.min)
}

func TestFormatRows(t *testing.T) {
	m, err := matrix.FromRows([][]float32{{0, 1.5, 2}, {1.5, 0, 3}})
	require.NoError(t, err)
	require.Equal(t, "row 0: 0.000 1.500\nrow 1: 1.500 0.000\n", FormatRows(m, 2))
	require.Equal(t, "", FormatRows(m, 0))
}
