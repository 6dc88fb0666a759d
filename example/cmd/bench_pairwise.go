//go:build ignore
// +build ignore

package main

import (
	"net/http"
	_ "net/http/pprof"
	"os"

	"github.com/HairyFotr/umap/core"
	"github.com/HairyFotr/umap/dataset"
	"github.com/HairyFotr/umap/example"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	// Set the logger to output to the console.
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	// Start the pprof HTTP server on port 6060.
	go func() {
		log.Info().Msg("Starting pprof server on :6060")
		if err := http.ListenAndServe("localhost:6060", nil); err != nil {
			log.Error().Err(err).Msg("pprof server failed")
		}
	}()

	// Same shapes as the square benchmark grid: 10*s rows and columns.
	for _, n := range []int{10, 110, 510, 1010} {
		seed, _ := core.GetSeed()
		log.Info().Int64("seed", seed).Msgf("Generating %dx%d input", n, n)
		x, err := dataset.Random(n, n, seed)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to generate data")
		}
		if _, err := example.RunMatrix(x, "hellinger", []int{1, 16, 64}, 5, true); err != nil {
			log.Fatal().Err(err).Msg("Benchmark failed")
		}
	}
}
