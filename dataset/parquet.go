package dataset

import (
	"fmt"

	"github.com/HairyFotr/umap/matrix"
	"github.com/parquet-go/parquet-go"
	"github.com/rs/zerolog/log"
)

// Record is the Parquet row layout: one vector per row in a list column.
type Record struct {
	Vector []float32 `parquet:"vector"`
}

// LoadParquet reads every row of the "vector" column of a Parquet file.
func LoadParquet(path string) (*matrix.Dense, error) {
	log.Info().Msgf("Loading Parquet file: %s", path)
	records, err := parquet.ReadFile[Record](path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	vectors := make([][]float32, len(records))
	for i := range records {
		vectors[i] = records[i].Vector
	}
	m, err := matrix.FromRows(vectors)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	log.Info().Msgf("Loaded %d vectors (%d dimensions) from %s", m.Rows(), m.Cols(), path)
	return m, nil
}

// WriteParquet stores the rows of m in a Parquet file readable by LoadParquet.
func WriteParquet(path string, m *matrix.Dense) error {
	if m == nil {
		return matrix.ErrNilMatrix
	}
	records := make([]Record, m.Rows())
	for i := range records {
		records[i].Vector = append([]float32(nil), m.Row(i)...)
	}
	if err := parquet.WriteFile(path, records); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
