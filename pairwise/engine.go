// Package pairwise computes dense pairwise distance matrices with a blocked,
// parallel kernel.
//
// Rows of X are split into blocks of DefaultChunkSize (or WithChunkSize) rows
// and every block runs as an independent task on a bounded worker pool. When
// Y is nil the result is the symmetric self-distance matrix: column blocks
// left of the diagonal are never visited, the diagonal block evaluates its
// strict upper triangle only, and each value is mirrored by the task that
// computed it. Every cell therefore has exactly one writer and no locking is
// needed.
package pairwise

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/HairyFotr/umap/core"
	"github.com/HairyFotr/umap/internal/metrics"
	"github.com/HairyFotr/umap/matrix"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// Engine computes distance matrices. It holds configuration only, so one
// Engine can serve concurrent Compute calls.
type Engine struct {
	chunkSize int
	workers   int
	logger    zerolog.Logger
	blockDone func(Block)
	audit     bool
}

// New creates an Engine from opts.
func New(opts ...Option) (*Engine, error) {
	e := &Engine{
		chunkSize: DefaultChunkSize,
		logger:    log.Logger,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.chunkSize <= 0 {
		return nil, fmt.Errorf("%w: chunk size must be positive, got %d", ErrInvalidArgument, e.chunkSize)
	}
	if e.workers < 0 {
		return nil, fmt.Errorf("%w: worker count must not be negative, got %d", ErrInvalidArgument, e.workers)
	}
	if e.workers == 0 {
		e.workers = runtime.GOMAXPROCS(0)
	}
	return e, nil
}

// ChunkSize returns the configured block width.
func (e *Engine) ChunkSize() int { return e.chunkSize }

// Workers returns the configured concurrency bound.
func (e *Engine) Workers() int { return e.workers }

// Compute is a convenience wrapper around New and Engine.Compute.
func Compute(ctx context.Context, x, y *matrix.Dense, metric core.Metric, opts ...Option) (*matrix.Dense, error) {
	e, err := New(opts...)
	if err != nil {
		return nil, err
	}
	return e.Compute(ctx, x, y, metric)
}

// Compute returns R with R[i][j] = metric(X[i], Y[j]) as float32.
//
// A nil y requests the symmetric self-distance matrix of x; the metric must
// then be commutative and the diagonal is left at 0 without calling it. A
// non-nil y is always treated as a distinct matrix, even if it aliases x.
//
// The call is all or nothing: on any error, including a metric error or
// panic and context cancellation, no matrix is returned. Cancellation is
// observed between blocks; a block that has started runs to completion.
func (e *Engine) Compute(ctx context.Context, x, y *matrix.Dense, metric core.Metric) (*matrix.Dense, error) {
	if x == nil {
		return nil, fmt.Errorf("%w: nil input matrix", ErrInvalidArgument)
	}
	if metric == nil {
		return nil, fmt.Errorf("%w: nil metric", ErrInvalidArgument)
	}

	symmetric := y == nil
	other := x
	if !symmetric {
		if x.Rows() > 0 && y.Rows() > 0 && x.Cols() != y.Cols() {
			return nil, fmt.Errorf("pairwise: x has %d columns, y has %d: %w", x.Cols(), y.Cols(), ErrShapeMismatch)
		}
		other = y
	}
	rows, cols := x.Rows(), other.Rows()
	mode := metrics.Mode(symmetric)

	out, err := matrix.NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	if rows == 0 || cols == 0 {
		metrics.ComputeTotal.WithLabelValues(mode, metrics.StatusOK).Inc()
		return out, nil
	}

	e.logger.Debug().Msgf("Computing %s distances: %dx%d, chunk=%d, workers=%d",
		mode, rows, cols, e.chunkSize, e.workers)
	start := time.Now()

	k := &kernel{
		x:         x,
		other:     other,
		out:       out.Data(),
		cols:      cols,
		chunk:     e.chunkSize,
		symmetric: symmetric,
		metric:    metric,
	}
	if e.audit {
		k.writes = make([]atomic.Uint32, rows*cols)
	}

	var evaluations atomic.Int64
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.workers)
	for _, b := range Blocks(rows, e.chunkSize) {
		b := b
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			n, err := k.run(b)
			evaluations.Add(n)
			if err != nil {
				return err
			}
			metrics.BlocksTotal.WithLabelValues(mode).Inc()
			if e.blockDone != nil {
				e.blockDone(b)
			}
			return nil
		})
	}
	err = g.Wait()
	metrics.MetricEvaluationsTotal.WithLabelValues(mode).Add(float64(evaluations.Load()))

	if err == nil && k.writes != nil {
		err = k.verify()
	}
	if err != nil {
		status := metrics.StatusError
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			status = metrics.StatusCancelled
		}
		metrics.ComputeTotal.WithLabelValues(mode, status).Inc()
		e.logger.Debug().Err(err).Msgf("Abandoned %s distance computation", mode)
		return nil, err
	}

	elapsed := time.Since(start)
	metrics.ComputeTotal.WithLabelValues(mode, metrics.StatusOK).Inc()
	metrics.ComputeDurationSeconds.WithLabelValues(mode).Observe(elapsed.Seconds())
	e.logger.Debug().Msgf("Computed %dx%d distances with %d metric calls in %v",
		rows, cols, evaluations.Load(), elapsed)
	return out, nil
}

// kernel is the per-call state shared read-only by all blocks, except for
// out and writes, whose cells each block touches disjointly.
type kernel struct {
	x, other  *matrix.Dense
	out       []float32
	cols      int
	chunk     int
	symmetric bool
	metric    core.Metric
	writes    []atomic.Uint32 // nil unless auditing
}

// run fills every cell owned by block b and returns the number of metric calls.
//
// Asymmetric: columns [0, cols) for every row of the block.
// Symmetric: column blocks start at b.Start and row i starts at column
// max(m, i+1), so only pairs j > i are evaluated; each is mirrored to (j, i).
// Rows after the block receive mirror writes only in columns [b.Start, b.End),
// which no other block writes.
func (k *kernel) run(b Block) (evals int64, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: panic in rows [%d,%d): %v", ErrMetric, b.Start, b.End, r)
		}
	}()

	first := 0
	if k.symmetric {
		first = b.Start
	}
	for m := first; m < k.cols; m += k.chunk {
		mEnd := min(m+k.chunk, k.cols)
		for i := b.Start; i < b.End; i++ {
			u := k.x.Row(i)
			j := m
			if k.symmetric {
				j = max(m, i+1)
			}
			for ; j < mEnd; j++ {
				d, err := k.metric.Distance(u, k.other.Row(j))
				evals++
				if err != nil {
					return evals, fmt.Errorf("%w at (%d,%d): %w", ErrMetric, i, j, err)
				}
				k.set(i, j, d)
				if k.symmetric {
					k.set(j, i, d)
				}
			}
		}
	}
	return evals, nil
}

func (k *kernel) set(i, j int, d float64) {
	idx := i*k.cols + j
	k.out[idx] = float32(d)
	if k.writes != nil {
		k.writes[idx].Add(1)
	}
}

// verify checks the audit counters once all blocks are done.
func (k *kernel) verify() error {
	for idx := range k.writes {
		i, j := idx/k.cols, idx%k.cols
		want := uint32(1)
		if k.symmetric && i == j {
			want = 0
		}
		if got := k.writes[idx].Load(); got != want {
			return fmt.Errorf("%w: cell (%d,%d) written %d times, want %d", ErrWriteAudit, i, j, got, want)
		}
	}
	return nil
}
