package example

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/HairyFotr/umap/core"
	"github.com/HairyFotr/umap/dataset"
	"github.com/HairyFotr/umap/matrix"
	"github.com/HairyFotr/umap/pairwise"
	"github.com/rs/zerolog/log"
	"github.com/schollz/progressbar/v3"
)

// RunResult holds the timing of one Compute call.
type RunResult struct {
	Mode      string
	ChunkSize int
	Duration  time.Duration
}

// RunDataset loads the dataset at path and computes its distance matrix once
// per chunk size, in both the symmetric (Y absent) and asymmetric (Y = X)
// modes, repeating each run rounds times. Every run must reproduce the first
// symmetric matrix; the asymmetric runs must match it off the diagonal.
// When benchmark is true a progress bar is shown instead of per-run lines.
// The number of workers is read from the UMAP_BENCH_NTRD environment variable.
func RunDataset(path, metricName string, chunkSizes []int, rounds int, benchmark bool) ([]RunResult, error) {
	fmt.Printf("Loading dataset: %s\n", path)
	x, err := dataset.Load(path)
	if err != nil {
		return nil, err
	}
	return RunMatrix(x, metricName, chunkSizes, rounds, benchmark)
}

// RunMatrix is RunDataset for an in-memory matrix.
func RunMatrix(x *matrix.Dense, metricName string, chunkSizes []int, rounds int, benchmark bool) ([]RunResult, error) {
	metric, err := core.LookupDistance(metricName)
	if err != nil {
		return nil, err
	}
	if rounds < 1 {
		rounds = 1
	}

	workers := 0
	if env := os.Getenv("UMAP_BENCH_NTRD"); env != "" {
		if t, err := strconv.Atoi(env); err == nil && t > 0 {
			workers = t
			log.Info().Msgf("Using %d workers for benchmarking", workers)
		}
	}

	fmt.Printf("Computing %s distances for %d vectors (%d dimensions), chunk sizes %v\n",
		metricName, x.Rows(), x.Cols(), chunkSizes)

	var bar *progressbar.ProgressBar
	if benchmark {
		bar = progressbar.Default(int64(2*len(chunkSizes)*rounds), "runs")
	}

	var reference *matrix.Dense
	results := make([]RunResult, 0, 2*len(chunkSizes)*rounds)
	for _, chunk := range chunkSizes {
		engine, err := pairwise.New(pairwise.WithChunkSize(chunk), pairwise.WithWorkers(workers))
		if err != nil {
			return nil, err
		}
		for _, y := range []*matrix.Dense{nil, x} {
			mode := "symmetric"
			if y != nil {
				mode = "asymmetric"
			}
			for r := 0; r < rounds; r++ {
				start := time.Now()
				got, err := engine.Compute(context.Background(), x, y, metric)
				if err != nil {
					return nil, fmt.Errorf("%s chunk=%d: %w", mode, chunk, err)
				}
				res := RunResult{Mode: mode, ChunkSize: chunk, Duration: time.Since(start)}
				results = append(results, res)

				if reference == nil {
					reference = got
				}
				diff, err := OffDiagonalDiff(reference, got)
				if err != nil {
					return nil, err
				}
				if diff != 0 {
					return nil, fmt.Errorf("%s chunk=%d differs from reference by %g", mode, chunk, diff)
				}

				if bar != nil {
					if err := bar.Add(1); err != nil {
						return nil, err
					}
				} else {
					fmt.Printf(" -> %-10s chunk=%-5d %v\n", res.Mode, res.ChunkSize, res.Duration)
				}
			}
		}
	}

	fmt.Print(FormatSummary(results))
	return results, nil
}
