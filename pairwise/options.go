package pairwise

import (
	"github.com/rs/zerolog"
)

// DefaultChunkSize is the row and column block width used when none is given.
const DefaultChunkSize = 16

// Option configures an Engine.
type Option func(*Engine)

// WithChunkSize sets the block width. It must be positive; New reports
// ErrInvalidArgument otherwise. The value affects speed only, never results.
func WithChunkSize(n int) Option {
	return func(e *Engine) { e.chunkSize = n }
}

// WithWorkers bounds the number of row blocks processed concurrently.
// Zero selects runtime.GOMAXPROCS(0); negative values are rejected by New.
func WithWorkers(n int) Option {
	return func(e *Engine) { e.workers = n }
}

// WithLogger sets the logger used for debug output.
func WithLogger(l zerolog.Logger) Option {
	return func(e *Engine) { e.logger = l }
}

// WithBlockDone registers fn to be called after each row block completes.
// fn is called from worker goroutines and must be safe for concurrent use.
func WithBlockDone(fn func(Block)) Option {
	return func(e *Engine) { e.blockDone = fn }
}

// WithWriteAudit makes Compute count writes per output cell and fail with
// ErrWriteAudit unless every computed cell was written exactly once and no
// symmetric diagonal cell was written at all. Meant for tests; it allocates
// a counter per cell.
func WithWriteAudit() Option {
	return func(e *Engine) { e.audit = true }
}
