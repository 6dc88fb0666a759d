//go:build ignore
// +build ignore

package main

import (
	"os"

	"github.com/HairyFotr/umap/example"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	// Set the logger to output to the console.
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	// Runs on the training split of the nearest-neighbor datasets.
	for _, ds := range []struct{ path, metric string }{
		{"example/data/nearest-neighbors-datasets/fashion-mnist-784-euclidean/train.csv", "euclidean"},
		{"example/data/nearest-neighbors-datasets/glove-25-angular/train.csv", "cosine"},
	} {
		if _, err := example.RunDataset(ds.path, ds.metric, []int{16, 64}, 1, false); err != nil {
			log.Fatal().Err(err).Msgf("Run failed for %s", ds.path)
		}
	}
}
