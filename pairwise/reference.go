package pairwise

import (
	"fmt"

	"github.com/HairyFotr/umap/core"
	"github.com/HairyFotr/umap/matrix"
)

// Naive computes the same matrix as Compute with a plain sequential double
// loop: the upper triangle mirrored when y is nil, the full grid otherwise.
// It is O(rows*cols) metric calls on one goroutine and exists to validate
// Compute and custom metrics against it.
func Naive(x, y *matrix.Dense, metric core.Metric) (*matrix.Dense, error) {
	if x == nil || metric == nil {
		return nil, fmt.Errorf("%w: nil input matrix or metric", ErrInvalidArgument)
	}
	other := x
	if y != nil {
		if x.Rows() > 0 && y.Rows() > 0 && x.Cols() != y.Cols() {
			return nil, fmt.Errorf("pairwise: x has %d columns, y has %d: %w", x.Cols(), y.Cols(), ErrShapeMismatch)
		}
		other = y
	}
	rows, cols := x.Rows(), other.Rows()
	out, err := matrix.NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	data := out.Data()

	for i := 0; i < rows; i++ {
		j := 0
		if y == nil {
			j = i + 1
		}
		for ; j < cols; j++ {
			d, err := metric.Distance(x.Row(i), other.Row(j))
			if err != nil {
				return nil, fmt.Errorf("%w at (%d,%d): %w", ErrMetric, i, j, err)
			}
			data[i*cols+j] = float32(d)
			if y == nil {
				data[j*cols+i] = float32(d)
			}
		}
	}
	return out, nil
}
