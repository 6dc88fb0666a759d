package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/HairyFotr/umap/core"
	"github.com/HairyFotr/umap/dataset"
	"github.com/HairyFotr/umap/matrix"
	"github.com/HairyFotr/umap/pairwise"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
	"github.com/schollz/progressbar/v3"
)

// ErrVerifyFailed is returned by Run when -verify finds a difference from the naive reference.
var ErrVerifyFailed = errors.New("blocked result differs from naive reference")

// Execute runs the CLI code.
func Execute(ctx context.Context) {
	if err := Run(ctx, os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		log.Fatal().Err(err).Msg("Pairwise distance computation failed")
	}
}

// options are the resolved command-line settings.
type options struct {
	input, other, random string
	metric               string
	chunk, workers       int
	normalize, verify    bool
	l1                   bool
	progress             bool
	show                 int
	metricsAddr          string
}

func parseFlags(args []string, cfg Config) (options, error) {
	var o options
	fs := flag.NewFlagSet("umap-pairwise", flag.ContinueOnError)
	fs.StringVar(&o.input, "input", "", "CSV or Parquet file with one vector per row")
	fs.StringVar(&o.other, "other", "", "optional second matrix; computes input×other distances")
	fs.StringVar(&o.random, "random", "", "use random non-negative input of shape NxD instead of -input")
	fs.StringVar(&o.metric, "metric", cfg.Metric, "distance metric: "+strings.Join(core.DistanceNames(), ", "))
	fs.IntVar(&o.chunk, "chunk", cfg.ChunkSize, "row block size")
	fs.IntVar(&o.workers, "workers", cfg.Workers, "concurrent row blocks (0 = GOMAXPROCS)")
	fs.BoolVar(&o.normalize, "normalize", false, "L2-normalize rows before computing")
	fs.BoolVar(&o.l1, "l1", false, "scale rows to sum 1 before computing (applied after -normalize)")
	fs.BoolVar(&o.verify, "verify", false, "compare against the unblocked reference loop")
	fs.BoolVar(&o.progress, "progress", cfg.Progress, "show a progress bar over row blocks")
	fs.IntVar(&o.show, "show", 5, "rows and columns of the result to print")
	fs.StringVar(&o.metricsAddr, "metrics-addr", cfg.MetricsAddr, "serve Prometheus metrics on this address")
	if err := fs.Parse(args); err != nil {
		return o, err
	}
	if (o.input == "") == (o.random == "") {
		return o, errors.New("exactly one of -input or -random is required")
	}
	return o, nil
}

// parseShape parses "NxD" into its two positive sides.
func parseShape(s string) (int, int, error) {
	parts := strings.Split(strings.ToLower(s), "x")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("shape %q: want NxD", s)
	}
	rows, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("shape %q: %w", s, err)
	}
	cols, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("shape %q: %w", s, err)
	}
	if rows <= 0 || cols <= 0 {
		return 0, 0, fmt.Errorf("shape %q: sides must be positive", s)
	}
	return rows, cols, nil
}

// loadInputs reads or generates X and reads the optional Y. Generated data
// reports its seed on stdout so the run can be repeated via UMAP_SEED.
func loadInputs(o options, stdout io.Writer) (x, y *matrix.Dense, err error) {
	if o.random != "" {
		rows, cols, err := parseShape(o.random)
		if err != nil {
			return nil, nil, err
		}
		seed, fromEnv := core.GetSeed()
		source := "clock"
		if fromEnv {
			source = core.SeedEnv
		}
		fmt.Fprintf(stdout, "Random %dx%d input, seed %d (from %s)\n", rows, cols, seed, source)
		x, err = dataset.Random(rows, cols, seed)
		if err != nil {
			return nil, nil, err
		}
	} else if x, err = dataset.Load(o.input); err != nil {
		return nil, nil, err
	}
	if o.other != "" {
		if y, err = dataset.Load(o.other); err != nil {
			return nil, nil, err
		}
	}
	return x, y, nil
}

// normalizeRows L2-normalizes every row of m in place.
func normalizeRows(m *matrix.Dense, workers int) {
	vecs := make([][]float32, m.Rows())
	for i := range vecs {
		vecs[i] = m.Row(i)
	}
	core.NormalizeBatch(vecs, max(workers, 1))
}

// l1Rows scales every row of m in place to sum 1.
func l1Rows(m *matrix.Dense) {
	for i := 0; i < m.Rows(); i++ {
		core.L1Normalize(m.Row(i))
	}
}

// Run executes the CLI with args and writes the report to stdout.
func Run(ctx context.Context, args []string, stdout io.Writer) error {
	cfg, err := LoadConfig(".env")
	if err != nil {
		return err
	}
	o, err := parseFlags(args, cfg)
	if err != nil {
		return err
	}
	metric, err := core.LookupDistance(o.metric)
	if err != nil {
		return err
	}

	if o.metricsAddr != "" {
		srv := serveMetrics(o.metricsAddr)
		defer srv.Shutdown(context.Background())
	}

	x, y, err := loadInputs(o, stdout)
	if err != nil {
		return err
	}
	if o.normalize {
		normalizeRows(x, o.workers)
		if y != nil {
			normalizeRows(y, o.workers)
		}
	}
	if o.l1 {
		l1Rows(x)
		if y != nil {
			l1Rows(y)
		}
	}

	opts := []pairwise.Option{
		pairwise.WithChunkSize(o.chunk),
		pairwise.WithWorkers(o.workers),
		pairwise.WithLogger(log.Logger),
	}
	var bar *progressbar.ProgressBar
	if o.progress {
		bar = progressbar.Default(int64(pairwise.BlockCount(x.Rows(), o.chunk)), "row blocks")
		opts = append(opts, pairwise.WithBlockDone(func(pairwise.Block) {
			_ = bar.Add(1)
		}))
	}
	engine, err := pairwise.New(opts...)
	if err != nil {
		return err
	}

	log.Debug().Msgf("CPU vector extension: %s", core.SIMDLevel())
	start := time.Now()
	result, err := engine.Compute(ctx, x, y, metric)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)
	if bar != nil {
		_ = bar.Finish()
	}

	mode := "symmetric"
	if y != nil {
		mode = "asymmetric"
	}
	fmt.Fprintf(stdout, "Computed %dx%d %s distance matrix (metric=%s, chunk=%d, workers=%d) in %v\n",
		result.Rows(), result.Cols(), mode, o.metric, engine.ChunkSize(), engine.Workers(), elapsed)
	s := summarize(result, y == nil)
	fmt.Fprintf(stdout, "Distances over %d pairs: min=%.4f max=%.4f mean=%.4f\n", s.count, s.min, s.max, s.mean)
	fmt.Fprint(stdout, FormatRows(result, o.show))

	if o.verify {
		want, err := pairwise.Naive(x, y, metric)
		if err != nil {
			return err
		}
		diff, err := matrix.MaxAbsDiff(want, result)
		if err != nil {
			return err
		}
		fmt.Fprintf(stdout, "Naive reference: max abs diff = %g\n", diff)
		if !matrix.Equal(want, result) {
			return ErrVerifyFailed
		}
	}
	return nil
}

func serveMetrics(addr string) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	go func() {
		log.Info().Msgf("Serving metrics on %s/metrics", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("Metrics server failed")
		}
	}()
	return srv
}

type summary struct {
	count          int
	min, max, mean float64
}

// summarize reports statistics over the computed cells, skipping the
// diagonal of a symmetric matrix.
func summarize(m *matrix.Dense, symmetric bool) summary {
	var s summary
	var total float64
	for i := 0; i < m.Rows(); i++ {
		for j, v := range m.Row(i) {
			if symmetric && i == j {
				continue
			}
			d := float64(v)
			if s.count == 0 || d < s.min {
				s.min = d
			}
			if s.count == 0 || d > s.max {
				s.max = d
			}
			total += d
			s.count++
		}
	}
	if s.count > 0 {
		s.mean = total / float64(s.count)
	}
	return s
}

// FormatRows returns the top-left limit×limit corner of m, one row per line.
func FormatRows(m *matrix.Dense, limit int) string {
	var sb strings.Builder
	for i := 0; i < min(limit, m.Rows()); i++ {
		fmt.Fprintf(&sb, "row %d:", i)
		for _, v := range m.Row(i)[:min(limit, m.Cols())] {
			fmt.Fprintf(&sb, " %.3f", v)
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
