package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/HairyFotr/umap/cmd"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// main is the entry point of the application.
// Logging goes to the console; its level comes from DEBUG_UMAP (see core).
// An interrupt cancels the computation between row blocks.
func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cmd.Execute(ctx)
}
