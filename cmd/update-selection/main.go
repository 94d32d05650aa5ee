// Command update-selection runs the scoring and selection pipeline once:
// it loads a store snapshot, recomputes curator weights and submission
// scores, and replaces the selection outputs wholesale.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Public-Shorts/curation/internal/adapters/repository"
	"github.com/Public-Shorts/curation/internal/app"
	"github.com/Public-Shorts/curation/internal/config"
	"github.com/Public-Shorts/curation/pkg/logger"
	"github.com/Public-Shorts/curation/pkg/metrics"
)

const metricsReadHeaderTimeout = 5 * time.Second

func main() {
	if err := run(); err != nil {
		os.Stderr.WriteString("update-selection failed: " + err.Error() + "\n")
		os.Exit(1)
	}
}

func run() error {
	if err := logger.Init(); err != nil {
		return err
	}
	log := logger.Get()

	// Root context with cancel on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Load configuration (defaults -> optional file -> env)
	cfg, err := config.Load(ctx)
	if err != nil {
		return err
	}

	// Apply configured log level (fallback to info on invalid input)
	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		log.Warn(ctx, "invalid log_level; falling back to info", logger.String("log_level", cfg.LogLevel), logger.Error(err))
		_ = logger.SetLevelString("info")
	}

	// Optionally expose /metrics while the run executes.
	if cfg.MetricsAddr != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.HandlerFor(metrics.GetRegistry(), promhttp.HandlerOpts{}))
		srv := &http.Server{
			Addr:              cfg.MetricsAddr,
			Handler:           mux,
			ReadHeaderTimeout: metricsReadHeaderTimeout,
		}
		go func() {
			log.Info(ctx, "serving metrics", logger.String("addr", cfg.MetricsAddr))
			if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				log.Error(ctx, "metrics listener failed", logger.Error(err))
			}
		}()
		defer srv.Close() //nolint:errcheck // best-effort teardown at process exit
	}

	store := repository.NewFileStore(cfg.SnapshotPath,
		repository.WithSelectionPath(cfg.SelectionPath),
		repository.WithFestivalSelectionPath(cfg.FestivalSelectionPath),
	)

	snap, err := store.Snapshot(ctx)
	if err != nil {
		return err
	}
	log.Info(ctx, "snapshot loaded",
		logger.Int("curators", len(snap.Curators)),
		logger.Int("submissions", len(snap.Submissions)),
		logger.Int("reviews", len(snap.Reviews)),
	)

	engineOpts := []app.Option{
		app.WithLogger(log.Named("engine")),
		app.WithWorkers(cfg.Workers),
		app.WithExcludeJury(cfg.ExcludeJury),
	}
	if cfg.SymmetricTendency {
		log.Warn(ctx, "running with deprecated symmetric tendency weights")
		engineOpts = append(engineOpts, app.WithSymmetricTendency())
	}

	out, err := app.New(engineOpts...).Run(ctx, app.Input{
		Curators:    snap.Curators,
		Submissions: snap.Submissions,
		Reviews:     snap.Reviews,
		Settings:    snap.Settings,
	})
	if err != nil {
		return err
	}

	if err := store.WriteSelection(ctx, out.Snapshot); err != nil {
		return err
	}
	if err := store.WriteFestivalSelection(ctx, out.Selection); err != nil {
		return err
	}

	log.Info(ctx, "selection written",
		logger.String("selection", cfg.SelectionPath),
		logger.String("festivalSelection", cfg.FestivalSelectionPath),
		logger.Int("films", out.Selection.TotalCount),
	)
	return nil
}
