package pairwise

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBlocks(t *testing.T) {
	tests := []struct {
		rows, chunk int
		want        []Block
	}{
		{0, 4, []Block{}},
		{4, 0, []Block{}},
		{3, 16, []Block{{0, 0, 3}}},
		{8, 4, []Block{{0, 0, 4}, {1, 4, 8}}},
		{10, 4, []Block{{0, 0, 4}, {1, 4, 8}, {2, 8, 10}}},
		{3, 1, []Block{{0, 0, 1}, {1, 1, 2}, {2, 2, 3}}},
	}
	for _, tt := range tests {
		got := Blocks(tt.rows, tt.chunk)
		require.Equal(t, tt.want, got, "rows=%d chunk=%d", tt.rows, tt.chunk)
		require.Len(t, got, BlockCount(tt.rows, tt.chunk))
	}
}

func TestBlocksCoverRangeOnce(t *testing.T) {
	for rows := 1; rows <= 40; rows++ {
		for chunk := 1; chunk <= 45; chunk += 4 {
			seen := make([]int, rows)
			for _, b := range Blocks(rows, chunk) {
				require.Positive(t, b.Len())
				for i := b.Start; i < b.End; i++ {
					seen[i]++
				}
			}
			for i, n := range seen {
				require.Equal(t, 1, n, "rows=%d chunk=%d row=%d", rows, chunk, i)
			}
		}
	}
}
