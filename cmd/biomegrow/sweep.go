package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"runtime"
	"sort"
	"strings"
	"sync"
	"time"

	"biomegrow/internal/app"
	"biomegrow/internal/core"
	"biomegrow/internal/gen"

	"github.com/spf13/cobra"
)

type sweepResult struct {
	seed    uint64
	w, h    int
	counts  map[int32]int
	churn   int
	elapsed time.Duration
	err     error
}

func newSweepCmd(root *rootOptions) *cobra.Command {
	cfg := app.NewConfig()
	var seeds, jobs int
	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Run many seeds through a worker pool and report biome coverage",
		RunE: func(cmd *cobra.Command, _ []string) error {
			log, err := root.setup(cfg, cmd.Flags())
			if err != nil {
				return err
			}
			if seeds <= 0 {
				return fmt.Errorf("seeds must be > 0, got %d", seeds)
			}
			if jobs <= 0 {
				jobs = runtime.NumCPU()
			}
			m, err := cfg.LoadSeedMap(cmd.Context())
			if err != nil {
				log.Error("seed map", "err", err)
				return err
			}
			warnUnused(m, log)
			initial, err := m.Grid()
			if err != nil {
				return err
			}
			labels := make([]string, len(m.Biomes))
			for i, b := range m.Biomes {
				labels[i] = b.Label
			}
			base := cfg.Gen(time.Now())
			// Each sequence runs on one goroutine; the pool supplies the parallelism.
			base.Workers = 1
			results, err := runSweep(cmd.Context(), base, initial, seeds, jobs, log)
			if err != nil {
				log.Error("sweep failed", "err", err)
				return err
			}
			printSweep(cmd.OutOrStdout(), results, labels)
			return nil
		},
	}
	cfg.Bind(cmd.Flags())
	cmd.Flags().IntVar(&seeds, "seeds", 16, "number of consecutive seeds starting at --seed")
	cmd.Flags().IntVar(&jobs, "jobs", runtime.NumCPU(), "number of worker goroutines")
	return cmd
}

// runSweep grows initial once per seed in [base.Seed, base.Seed+n) and
// returns the results ordered by seed. The first failing seed aborts.
func runSweep(ctx context.Context, base gen.Config, initial *core.Grid, n, workers int, log *slog.Logger) ([]sweepResult, error) {
	log.Info("sweeping", "seeds", n, "workers", workers, "generations", base.Generations, "smooths", base.Smooths)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	jobs := make(chan uint64)
	results := make(chan sweepResult)
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for seed := range jobs {
				results <- runSeed(ctx, base, initial, seed, log)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		defer close(jobs)
		for i := 0; i < n; i++ {
			select {
			case jobs <- base.Seed + uint64(i):
			case <-ctx.Done():
				return
			}
		}
	}()

	var all []sweepResult
	var firstErr error
	for res := range results {
		if res.err != nil {
			if firstErr == nil {
				firstErr = fmt.Errorf("seed %d: %w", res.seed, res.err)
				cancel()
			}
			continue
		}
		all = append(all, res)
	}
	if firstErr != nil {
		return nil, firstErr
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	sort.Slice(all, func(i, j int) bool { return all[i].seed < all[j].seed })
	return all, nil
}

func runSeed(ctx context.Context, base gen.Config, initial *core.Grid, seed uint64, log *slog.Logger) sweepResult {
	cfg := base
	cfg.Seed = seed
	res := sweepResult{seed: seed}
	start := time.Now()
	var prev *core.Grid
	final, err := gen.New(cfg, log).Run(ctx, initial, func(step gen.Step) error {
		if step.Kind == gen.StepSmooth && prev != nil {
			mask, err := gen.Changed(prev, step.Grid)
			if err != nil {
				return err
			}
			res.churn += gen.CountTrue(mask)
		}
		prev = step.Grid
		return nil
	})
	if err != nil {
		res.err = err
		return res
	}
	res.w, res.h = final.W, final.H
	res.counts = gen.Histogram(final)
	res.elapsed = time.Since(start)
	return res
}

func printSweep(w io.Writer, results []sweepResult, labels []string) {
	if len(results) == 0 {
		return
	}
	fmt.Fprintf(w, "%-20s %-11s %6s", "seed", "size", "churn")
	for _, l := range labels {
		fmt.Fprintf(w, " %10s", truncate(l, 10))
	}
	fmt.Fprintf(w, " %9s\n", "elapsed")
	for _, r := range results {
		total := r.w * r.h
		fmt.Fprintf(w, "%-20d %-11s %6d", r.seed, fmt.Sprintf("%dx%d", r.w, r.h), r.churn)
		for i := range labels {
			pct := 0.0
			if total > 0 {
				pct = 100 * float64(r.counts[int32(i)]) / float64(total)
			}
			fmt.Fprintf(w, " %9.1f%%", pct)
		}
		fmt.Fprintf(w, " %9s\n", r.elapsed.Round(time.Millisecond))
	}
}

func truncate(s string, n int) string {
	s = strings.TrimSpace(s)
	if len(s) <= n {
		return s
	}
	return s[:n]
}
