// Package dataset loads input matrices for pairwise distance computation.
package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/HairyFotr/umap/matrix"
	"github.com/rs/zerolog/log"
)

// ErrUnsupportedFormat is returned by Load for file extensions it cannot read.
var ErrUnsupportedFormat = errors.New("dataset: unsupported file format")

// Load reads a matrix from path, choosing the reader by file extension:
// .csv for CSV without a header, .parquet for Parquet.
func Load(path string) (*matrix.Dense, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return LoadCSV(path, false)
	case ".parquet":
		return LoadParquet(path)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
}

// LoadCSV reads float32 vectors, one per line, from a CSV file.
func LoadCSV(path string, skipHeader bool) (*matrix.Dense, error) {
	log.Info().Msgf("Loading CSV file: %s", path)
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer file.Close()

	vectors, err := readCSV[float32](file, skipHeader)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	m, err := matrix.FromRows(vectors)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	log.Info().Msgf("Loaded %d vectors (%d dimensions) from %s", m.Rows(), m.Cols(), path)
	return m, nil
}

// readCSV is a generic CSV reader for types: int, float32, and float64.
func readCSV[T int | float32 | float64](r io.Reader, skipHeader bool) ([][]T, error) {
	reader := csv.NewReader(r)
	// Ragged rows are reported by matrix.FromRows with a clearer message.
	reader.FieldsPerRecord = -1
	var result [][]T

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read error: %w", err)
		}
		if skipHeader {
			skipHeader = false
			continue
		}
		row := make([]T, len(record))
		for i, val := range record {
			parsed, err := parseValue[T](val)
			if err != nil {
				return nil, fmt.Errorf("parse error at line %d col %d: %w", len(result)+1, i, err)
			}
			row[i] = parsed
		}
		result = append(result, row)
	}

	log.Debug().Msgf("Parsed %d rows", len(result))
	return result, nil
}

// parseValue converts a string to T (int, float32, or float64).
func parseValue[T int | float32 | float64](s string) (T, error) {
	s = strings.TrimSpace(s)
	var zero T
	switch any(zero).(type) {
	case int:
		v, err := strconv.Atoi(s)
		return any(v).(T), err
	case float32:
		v, err := strconv.ParseFloat(s, 32)
		return any(float32(v)).(T), err
	case float64:
		v, err := strconv.ParseFloat(s, 64)
		return any(v).(T), err
	default:
		return zero, fmt.Errorf("unsupported type %T", zero)
	}
}
