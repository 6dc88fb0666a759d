package matrix

import "errors"

// Every message is prefixed with "matrix: ". Callers match with errors.Is;
// context is added at the call site with fmt.Errorf("...: %w", ErrX).
var (
	// ErrBadShape is returned when a requested shape has a negative side.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrShapeMismatch indicates operands whose dimensions are incompatible,
	// e.g. ragged rows, a backing slice of the wrong length, or two matrices
	// with different column counts.
	ErrShapeMismatch = errors.New("matrix: shape mismatch")

	// ErrOutOfRange indicates a row or column index outside the matrix.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNilMatrix indicates a nil *Dense was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")
)
