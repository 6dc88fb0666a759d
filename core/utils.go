package core

import (
	"os"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"
)

// SeedEnv names the environment variable that fixes the random seed.
const SeedEnv = "UMAP_SEED"

// GetSeed returns the seed to use for generated data and whether it came from
// SeedEnv. An unset or unparsable value falls back to the current time.
func GetSeed() (int64, bool) {
	raw, ok := os.LookupEnv(SeedEnv)
	if ok && raw != "" {
		seed, err := strconv.ParseInt(raw, 10, 64)
		if err == nil {
			return seed, true
		}
		log.Warn().Err(err).Str("value", raw).Msg("Ignoring " + SeedEnv)
	}
	seed := time.Now().UnixNano()
	log.Debug().Int64("seed", seed).Msg("Seeding from clock")
	return seed, false
}
