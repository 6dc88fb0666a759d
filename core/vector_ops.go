package core

import (
	"sync"

	"github.com/viterin/vek/vek32"
)

// NormalizeVector scales vec in place to unit L2 norm. Zero vectors are left unchanged.
func NormalizeVector(vec []float32) {
	if len(vec) == 0 {
		return
	}
	norm := vek32.Norm(vec)
	if norm == 0 {
		return
	}
	vek32.DivNumber_Inplace(vec, norm)
}

// L1Normalize scales vec in place so its components sum to 1.
// Vectors summing to zero are left unchanged.
func L1Normalize(vec []float32) {
	if len(vec) == 0 {
		return
	}
	sum := vek32.Sum(vec)
	if sum == 0 {
		return
	}
	vek32.DivNumber_Inplace(vec, sum)
}

// NormalizeBatch L2-normalizes multiple vectors in place using goroutines.
// The batch is split into one contiguous chunk per worker.
func NormalizeBatch(vecs [][]float32, workers int) {
	if len(vecs) == 0 {
		return
	}
	if workers < 1 {
		workers = 1
	}
	chunk := (len(vecs) + workers - 1) / workers

	var wg sync.WaitGroup
	for start := 0; start < len(vecs); start += chunk {
		end := min(start+chunk, len(vecs))
		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			for i := start; i < end; i++ {
				NormalizeVector(vecs[i])
			}
		}(start, end)
	}
	wg.Wait()
}
