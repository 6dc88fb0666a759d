package example

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/HairyFotr/umap/matrix"
)

// OffDiagonalDiff returns the largest absolute difference between a and b,
// ignoring diagonal cells.
func OffDiagonalDiff(a, b *matrix.Dense) (float64, error) {
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return 0, fmt.Errorf("%dx%d vs %dx%d: %w", a.Rows(), a.Cols(), b.Rows(), b.Cols(), matrix.ErrShapeMismatch)
	}
	var worst float64
	for i := 0; i < a.Rows(); i++ {
		ra, rb := a.Row(i), b.Row(i)
		for j := range ra {
			if i == j {
				continue
			}
			if d := math.Abs(float64(ra[j]) - float64(rb[j])); d > worst {
				worst = d
			}
		}
	}
	return worst, nil
}

// FormatSummary returns the average duration per mode and chunk size.
func FormatSummary(results []RunResult) string {
	type key struct {
		mode  string
		chunk int
	}
	totals := make(map[key]time.Duration)
	counts := make(map[key]int)
	var keys []key
	for _, r := range results {
		k := key{r.Mode, r.ChunkSize}
		if counts[k] == 0 {
			keys = append(keys, k)
		}
		totals[k] += r.Duration
		counts[k]++
	}
	sort.SliceStable(keys, func(i, j int) bool {
		if keys[i].mode != keys[j].mode {
			return keys[i].mode > keys[j].mode
		}
		return keys[i].chunk < keys[j].chunk
	})

	var sb strings.Builder
	for _, k := range keys {
		fmt.Fprintf(&sb, "Average %s time (chunk=%d, %d runs): %v\n",
			k.mode, k.chunk, counts[k], totals[k]/time.Duration(counts[k]))
	}
	return sb.String()
}
