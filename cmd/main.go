package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/okian/pundit/internal/adapters/fetch"
	"github.com/okian/pundit/internal/adapters/http/api"
	"github.com/okian/pundit/internal/adapters/refresh"
	"github.com/okian/pundit/internal/adapters/repository"
	"github.com/okian/pundit/internal/app"
	"github.com/okian/pundit/internal/config"
	"github.com/okian/pundit/internal/domain/rank"
	"github.com/okian/pundit/internal/domain/schema"
	"github.com/okian/pundit/pkg/logger"
	"github.com/okian/pundit/pkg/metrics"
)

// HTTP server timeout constants.
const (
	readTimeout       = 10 * time.Second
	writeTimeout      = 30 * time.Second
	idleTimeout       = 60 * time.Second
	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 30 * time.Second
)

func main() {
	// Initialize logging
	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		return
	}

	log := logger.Get()

	// Root context with cancel on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Load configuration (defaults -> optional file -> env)
	cfg, err := config.Load(ctx)
	if err != nil {
		os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
		return
	}

	// Apply configured log level (fallback to info on invalid input)
	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		log.Warn(ctx, "invalid log_level; falling back to info", logger.String("log_level", cfg.LogLevel), logger.Error(err))
		_ = logger.SetLevelString("info")
	}

	store := repository.NewStore(baselineOptions(ctx, cfg, log)...)

	fetcher := fetch.New(cfg.PrimaryEndpoint, cfg.SecondaryEndpoint,
		fetch.WithRateLimit(cfg.FetchRatePerMinute, cfg.FetchBurst),
		fetch.WithBreakerSettings(uint32(cfg.BreakerFailureThreshold), time.Duration(cfg.BreakerCooldownSeconds)*time.Second),
	)

	opts := []app.Option{
		app.WithLogger(log.Named("app")),
		app.WithFetcher(fetcher),
		app.WithStore(store),
		app.WithBoardSizes(rank.Sizes{
			Leaderboard: cfg.LeaderboardSize,
			Interval:    cfg.IntervalSize,
			Assets:      cfg.AssetLimit,
		}),
	}
	if cfg.OpenPredictionsEndpoint != "" {
		opts = append(opts, app.WithPredictionsFetcher(fetch.New(cfg.OpenPredictionsEndpoint, "",
			fetch.WithRateLimit(cfg.FetchRatePerMinute, cfg.FetchBurst),
			fetch.WithBreakerSettings(uint32(cfg.BreakerFailureThreshold), time.Duration(cfg.BreakerCooldownSeconds)*time.Second),
		)))
	}
	svc := app.New(opts...)

	// Background refresh loop; the first run happens immediately so the
	// process serves live data as soon as the sheet answers.
	scheduler := refresh.NewScheduler(svc,
		refresh.WithInterval(time.Duration(cfg.RefreshIntervalMinutes)*time.Minute),
	)
	scheduler.Start(ctx)

	// Start snapshot age metric updater
	go startSnapshotAgeUpdater(ctx, store)

	// HTTP mux and routes.
	mux := http.NewServeMux()
	apiServer := api.NewServer(svc, svc, cfg.MaxAssetLimit)
	apiServer.Register(ctx, mux)

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           mux,
		ReadTimeout:       readTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       idleTimeout,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	// Start the HTTP server
	go func() {
		log.Info(ctx, "starting HTTP server", logger.String("addr", cfg.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			os.Stderr.WriteString("HTTP server failed: " + err.Error() + "\n")
			return
		}
	}()

	// Wait for shutdown signal
	<-ctx.Done()
	log.Info(ctx, "shutting down server...")

	// Graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := scheduler.Shutdown(shutdownCtx); err != nil {
		log.Error(ctx, "scheduler shutdown failed", logger.Error(err))
	}
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error(ctx, "server shutdown failed", logger.Error(err))
	}

	log.Info(ctx, "server stopped")
}

// baselineOptions loads the optional on-disk baseline CSV through the same
// pipeline live fetches go through. A broken baseline is a warning, not a
// startup failure: the process can still serve once the first fetch lands.
func baselineOptions(ctx context.Context, cfg *config.Config, log logger.Logger) []repository.Option {
	if cfg.BaselinePath == "" {
		return nil
	}

	raw, err := os.ReadFile(cfg.BaselinePath)
	if err != nil {
		log.Warn(ctx, "baseline file unreadable; starting without fallback",
			logger.String("path", cfg.BaselinePath),
			logger.Error(err),
		)
		return nil
	}

	info, err := os.Stat(cfg.BaselinePath)
	fetchedAt := time.Now()
	if err == nil {
		fetchedAt = info.ModTime()
	}

	snap, rep, err := app.Ingest(string(raw), "baseline", fetchedAt, schema.PerformanceAliases())
	if err != nil {
		log.Warn(ctx, "baseline rejected by validation gate; starting without fallback",
			logger.String("path", cfg.BaselinePath),
			logger.Int("rows", rep.Rows),
			logger.Error(err),
		)
		return nil
	}

	log.Info(ctx, "baseline loaded",
		logger.String("path", cfg.BaselinePath),
		logger.Int("creators", snap.Count()),
	)
	return []repository.Option{repository.WithBaseline(snap)}
}

// startSnapshotAgeUpdater keeps the last-snapshot gauge current even between
// refreshes.
func startSnapshotAgeUpdater(ctx context.Context, store *repository.Store) {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if snap := store.Latest(); snap != nil {
				metrics.UpdateSnapshotLastUnix(snap.FetchedAt.Unix())
			}
		}
	}
}
