package dataset

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/HairyFotr/umap/matrix"
)

// Random returns a rows×cols matrix of absolute standard normal samples drawn
// from a generator seeded with seed. Values are non-negative, so the result
// is valid input for distribution metrics such as hellinger.
func Random(rows, cols int, seed int64) (*matrix.Dense, error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("Random(%d,%d): %w", rows, cols, matrix.ErrBadShape)
	}
	rng := rand.New(rand.NewSource(seed))
	data := make([]float32, rows*cols)
	for i := range data {
		data[i] = float32(math.Abs(rng.NormFloat64()))
	}
	return matrix.Wrap(rows, cols, data)
}
