package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds the CLI defaults read from UMAP_* environment variables.
// Command-line flags override every field.
type Config struct {
	Metric      string `envconfig:"METRIC" default:"euclidean"`
	ChunkSize   int    `envconfig:"CHUNK_SIZE" default:"16"`
	Workers     int    `envconfig:"WORKERS" default:"0"` // 0 means GOMAXPROCS
	MetricsAddr string `envconfig:"METRICS_ADDR" default:""`
	Progress    bool   `envconfig:"PROGRESS" default:"false"`
}

// LoadConfig loads variables from the given .env files, skipping missing ones,
// and then reads Config from the environment. Variables already set in the
// environment win over .env entries.
func LoadConfig(envFiles ...string) (Config, error) {
	for _, path := range envFiles {
		if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			return Config{}, fmt.Errorf("load %s: %w", path, err)
		}
	}

	var cfg Config
	if err := envconfig.Process("UMAP", &cfg); err != nil {
		return Config{}, fmt.Errorf("read environment: %w", err)
	}
	return cfg, nil
}
