package core

import (
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// LogLevelFromEnv maps a DEBUG_UMAP value to a zerolog level.
// "off" or "0" disables logging, "full" enables debug output, anything else is info.
func LogLevelFromEnv(value string) zerolog.Level {
	switch strings.TrimSpace(strings.ToLower(value)) {
	case "off", "0":
		return zerolog.Disabled
	case "full":
		return zerolog.DebugLevel
	default:
		return zerolog.InfoLevel
	}
}

// init sets the global logging level from the DEBUG_UMAP environment variable.
func init() {
	zerolog.SetGlobalLevel(LogLevelFromEnv(os.Getenv("DEBUG_UMAP")))
}
