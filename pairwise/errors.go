package pairwise

import (
	"errors"

	"github.com/HairyFotr/umap/matrix"
)

var (
	// ErrInvalidArgument is returned before any work starts when an argument
	// is unusable: a non-positive chunk size, a negative worker count, a nil
	// input matrix or a nil metric.
	ErrInvalidArgument = errors.New("pairwise: invalid argument")

	// ErrShapeMismatch is returned when X and Y have different column counts.
	ErrShapeMismatch = matrix.ErrShapeMismatch

	// ErrMetric wraps a failure raised by the metric, either a returned error
	// or a panic. The whole computation is abandoned.
	ErrMetric = errors.New("pairwise: metric failed")

	// ErrWriteAudit is returned in audit mode when an output cell was written
	// a number of times other than expected.
	ErrWriteAudit = errors.New("pairwise: write audit failed")
)
