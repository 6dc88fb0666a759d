package dataset

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/HairyFotr/umap/matrix"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadCSV(t *testing.T) {
	path := writeFile(t, "vectors.csv", "1,2,3\n4, 5 ,6\n")
	m, err := LoadCSV(path, false)
	require.NoError(t, err)
	require.Equal(t, 2, m.Rows())
	require.Equal(t, 3, m.Cols())
	require.Equal(t, []float32{4, 5, 6}, m.Row(1))
}

func TestLoadCSV_SkipHeader(t *testing.T) {
	path := writeFile(t, "vectors.csv", "a,b\n1,2\n")
	m, err := LoadCSV(path, true)
	require.NoError(t, err)
	require.Equal(t, 1, m.Rows())
	require.Equal(t, []float32{1, 2}, m.Row(0))
}

func TestLoadCSV_Errors(t *testing.T) {
	_, err := LoadCSV(filepath.Join(t.TempDir(), "missing.csv"), false)
	require.Error(t, err)

	bad := writeFile(t, "bad.csv", "1,x\n")
	_, err = LoadCSV(bad, false)
	require.ErrorContains(t, err, "parse error")

	ragged := writeFile(t, "ragged.csv", "1,2\n3\n")
	_, err = LoadCSV(ragged, false)
	require.ErrorIs(t, err, matrix.ErrShapeMismatch)
}

func TestReadCSVGeneric(t *testing.T) {
	ints, err := readCSV[int](strings.NewReader("1,2\n3,4\n"), false)
	require.NoError(t, err)
	require.Equal(t, [][]int{{1, 2}, {3, 4}}, ints)

	floats, err := readCSV[float64](strings.NewReader("0.5\n"), false)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{0.5}}, floats)
}

func TestParquetRoundTrip(t *testing.T) {
	src, err := Random(5, 4, 7)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "vectors.parquet")
	require.NoError(t, WriteParquet(path, src))

	got, err := Load(path)
	require.NoError(t, err)
	require.True(t, matrix.Equal(src, got))

	require.ErrorIs(t, WriteParquet(path, nil), matrix.ErrNilMatrix)
}

func TestLoad_UnsupportedFormat(t *testing.T) {
	_, err := Load("vectors.json")
	require.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestRandom(t *testing.T) {
	a, err := Random(10, 3, 42)
	require.NoError(t, err)
	b, err := Random(10, 3, 42)
	require.NoError(t, err)
	require.True(t, matrix.Equal(a, b), "same seed must give the same matrix")

	for _, v := range a.Data() {
		require.GreaterOrEqual(t, v, float32(0))
	}

	c, err := Random(10, 3, 43)
	require.NoError(t, err)
	require.False(t, matrix.Equal(a, c))

	_, err = Random(-1, 3, 1)
	require.ErrorIs(t, err, matrix.ErrBadShape)
}
