// Package matrix provides the dense float32 matrix used for pairwise
// distance inputs and results.
package matrix

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/blas/blas32"
)

// Dense is a row-major matrix of float32 values stored as a compact
// blas32.General: Stride always equals Cols, so Data holds Rows*Cols elements.
type Dense struct {
	g blas32.General
}

func newDense(rows, cols int, data []float32) *Dense {
	return &Dense{g: blas32.General{Rows: rows, Cols: cols, Stride: cols, Data: data}}
}

// denseErrorf wraps err with the method name and the offending index.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// NewDense creates a rows×cols matrix initialized to zeros.
// Zero-sized shapes are valid and produce an empty matrix.
func NewDense(rows, cols int) (*Dense, error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("NewDense(%d,%d): %w", rows, cols, ErrBadShape)
	}
	return newDense(rows, cols, make([]float32, rows*cols)), nil
}

// FromRows copies a slice of equally sized vectors into a new matrix.
// An empty slice yields a 0×0 matrix.
func FromRows(vectors [][]float32) (*Dense, error) {
	if len(vectors) == 0 {
		return newDense(0, 0, nil), nil
	}
	cols := len(vectors[0])
	data := make([]float32, 0, len(vectors)*cols)
	for i, vec := range vectors {
		if len(vec) != cols {
			return nil, fmt.Errorf("FromRows: row %d has %d columns, want %d: %w",
				i, len(vec), cols, ErrShapeMismatch)
		}
		data = append(data, vec...)
	}
	return newDense(len(vectors), cols, data), nil
}

// Wrap builds a matrix over an existing row-major slice without copying.
func Wrap(rows, cols int, data []float32) (*Dense, error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("Wrap(%d,%d): %w", rows, cols, ErrBadShape)
	}
	if len(data) != rows*cols {
		return nil, fmt.Errorf("Wrap(%d,%d): backing slice has %d elements: %w",
			rows, cols, len(data), ErrShapeMismatch)
	}
	return newDense(rows, cols, data), nil
}

// FromGeneral copies g into a new compact matrix. Padding between rows of a
// strided g is dropped.
func FromGeneral(g blas32.General) (*Dense, error) {
	if g.Rows < 0 || g.Cols < 0 {
		return nil, fmt.Errorf("FromGeneral(%d,%d): %w", g.Rows, g.Cols, ErrBadShape)
	}
	if g.Rows > 0 && (g.Stride < g.Cols || len(g.Data) < (g.Rows-1)*g.Stride+g.Cols) {
		return nil, fmt.Errorf("FromGeneral(%d,%d): stride %d over %d elements: %w",
			g.Rows, g.Cols, g.Stride, len(g.Data), ErrShapeMismatch)
	}
	m := newDense(g.Rows, g.Cols, make([]float32, g.Rows*g.Cols))
	for i := 0; i < g.Rows; i++ {
		copy(m.Row(i), g.Data[i*g.Stride:i*g.Stride+g.Cols])
	}
	return m, nil
}

// Rows returns the number of rows.
func (m *Dense) Rows() int { return m.g.Rows }

// Cols returns the number of columns.
func (m *Dense) Cols() int { return m.g.Cols }

// Data exposes the row-major backing slice. Writes through it are visible in m.
func (m *Dense) Data() []float32 { return m.g.Data }

// General returns m as a blas32.General sharing storage with m, for use with
// the blas32 routines.
func (m *Dense) General() blas32.General { return m.g }

// Row returns row i as a slice sharing storage with m.
// It panics if i is out of range, like a slice index would.
func (m *Dense) Row(i int) []float32 {
	start := i * m.g.Stride
	return m.g.Data[start : start+m.g.Cols : start+m.g.Cols]
}

// indexOf computes the flat offset of (row, col).
func (m *Dense) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.g.Rows || col < 0 || col >= m.g.Cols {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}
	return row*m.g.Stride + col, nil
}

// At returns the element at (row, col).
func (m *Dense) At(row, col int) (float32, error) {
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		return 0, err
	}
	return m.g.Data[idx], nil
}

// Set assigns v at (row, col).
func (m *Dense) Set(row, col int, v float32) error {
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	m.g.Data[idx] = v
	return nil
}

// Clone returns a deep copy of m.
func (m *Dense) Clone() *Dense {
	data := make([]float32, len(m.g.Data))
	copy(data, m.g.Data)
	return newDense(m.g.Rows, m.g.Cols, data)
}

// Equal reports whether a and b have the same shape and bitwise equal elements.
// NaN never equals NaN, matching float comparison.
func Equal(a, b *Dense) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.g.Rows != b.g.Rows || a.g.Cols != b.g.Cols {
		return false
	}
	for i := range a.g.Data {
		if a.g.Data[i] != b.g.Data[i] {
			return false
		}
	}
	return true
}

// MaxAbsDiff returns the largest elementwise absolute difference of a and b.
func MaxAbsDiff(a, b *Dense) (float64, error) {
	if a == nil || b == nil {
		return 0, ErrNilMatrix
	}
	if a.g.Rows != b.g.Rows || a.g.Cols != b.g.Cols {
		return 0, fmt.Errorf("MaxAbsDiff: %dx%d vs %dx%d: %w",
			a.g.Rows, a.g.Cols, b.g.Rows, b.g.Cols, ErrShapeMismatch)
	}
	var worst float64
	for i := range a.g.Data {
		if d := math.Abs(float64(a.g.Data[i]) - float64(b.g.Data[i])); d > worst {
			worst = d
		}
	}
	return worst, nil
}

// IsSymmetric reports whether m is square and m[i][j] == m[j][i] for all i, j.
func (m *Dense) IsSymmetric() bool {
	if m.g.Rows != m.g.Cols {
		return false
	}
	n := m.g.Rows
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if m.g.Data[i*n+j] != m.g.Data[j*n+i] {
				return false
			}
		}
	}
	return true
}

// String implements fmt.Stringer for debugging.
func (m *Dense) String() string {
	var sb strings.Builder
	for i := 0; i < m.g.Rows; i++ {
		sb.WriteString("[")
		for j, v := range m.Row(i) {
			if j > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%g", v)
		}
		sb.WriteString("]\n")
	}
	return sb.String()
}
