package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	httpadapter "ads-reconciler/internal/adapter/http"
	"ads-reconciler/internal/adapter/memory"
	"ads-reconciler/internal/adapter/postgres"
	"ads-reconciler/internal/adapter/scheduler"
	"ads-reconciler/internal/adapter/sqlite"
	"ads-reconciler/internal/adapter/usecase"
	"ads-reconciler/internal/config"
	"ads-reconciler/internal/config/configs"
	"ads-reconciler/internal/core/domain"
	"ads-reconciler/internal/core/port"
	"ads-reconciler/internal/db"
)

const shutdownTimeout = 10 * time.Second

// main is the entry point of the reconciler. It loads configuration, opens
// the selected storage backend, optionally runs migrations and seeds demo
// accounts, then serves HTTP and runs the directory scheduler until a
// termination signal arrives.
//
// Invoked as "import FILE..." it reconciles the given files once and exits.
func main() {
	exitCode := 1
	defer func() {
		if r := recover(); r != nil {
			panic(r)
		} else {
			os.Exit(exitCode)
		}
	}()

	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		return
	}

	// Initialise structured logger based on configuration.
	logger := slog.New(cfg.Log.Handler(os.Stdout)).With(slog.String("env", cfg.Env))
	slog.SetDefault(logger)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	repos, closeStore, err := openStore(ctx, cfg, logger)
	if err != nil {
		logger.Error("storage error", slog.Any("error", err))
		return
	}
	defer closeStore()

	if cfg.SeedDemo {
		n, err := db.Seed(ctx, repos.Accounts)
		if err != nil {
			logger.Error("seed error", slog.Any("error", err))
			return
		}
		if n > 0 {
			logger.Info("demo accounts seeded", slog.Int("count", n))
		}
	}

	ledger := usecase.NewLedger(repos.Batches)
	engine := usecase.NewEngine(repos.Accounts, repos.Campaigns, ledger, logger.With(slog.String("component", "engine")))
	imports := usecase.NewImportService(engine, ledger, logger.With(slog.String("component", "imports")))
	reports := usecase.NewReportService(repos.Campaigns, repos.Reports)

	if len(os.Args) > 1 && os.Args[1] == "import" {
		if err := importFiles(ctx, imports, cfg.Ingest, os.Args[2:], logger); err != nil {
			logger.Error("import error", slog.Any("error", err))
			return
		}
		exitCode = 0
		return
	}

	var sched *scheduler.Scheduler
	if cfg.Scheduler.Enabled {
		overrides := cfg.Ingest.Overrides()
		overrides.AllowSpreadsheets = true
		opts, err := overrides.Resolve(cfg.Scheduler.Profile)
		if err != nil {
			logger.Error("scheduler profile error", slog.Any("error", err))
			return
		}
		sched = scheduler.New(imports, scheduler.Config{
			Dir:        cfg.Scheduler.Dir,
			Interval:   cfg.Scheduler.Interval,
			Options:    opts,
			RunOnStart: cfg.Scheduler.RunOnStart,
		}, logger.With(slog.String("component", "scheduler")))
	}

	var controller port.SchedulerController
	if sched != nil {
		controller = sched
	}
	handler := httpadapter.NewHandler(imports, reports, controller, repos.Accounts, httpadapter.Config{
		UploadDir:      cfg.HTTP.UploadDir,
		MaxUploadBytes: cfg.HTTP.MaxUploadBytes(),
		Profile:        cfg.Ingest.Profile,
		Overrides:      cfg.Ingest.Overrides(),
	}, logger.With(slog.String("component", "http")))
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:           handler.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	if sched != nil {
		if err := sched.Start(gctx); err != nil {
			logger.Error("scheduler start error", slog.Any("error", err))
			return
		}
	}
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if sched != nil {
			if err := sched.Stop(shutdownCtx); err != nil && !errors.Is(err, scheduler.ErrNotRunning) {
				logger.Error("scheduler shutdown error", slog.Any("error", err))
			}
		}
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown: %w", err)
		}
		logger.Info("server gracefully stopped")
		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Error("shutdown with error", slog.Any("error", err))
		return
	}
	exitCode = 0
}

// openStore builds the repositories of the configured backend. The returned
// func releases its resources.
func openStore(ctx context.Context, cfg config.Config, logger *slog.Logger) (port.Repositories, func(), error) {
	switch cfg.Storage.Backend() {
	case configs.DriverMemory:
		logger.Warn("using in-memory storage; data is lost on exit")
		return memory.NewStore().Repositories(), func() {}, nil

	case configs.DriverSQLite:
		conn, err := db.OpenSQLite(cfg.Storage.SQLitePath)
		if err != nil {
			return port.Repositories{}, nil, err
		}
		logger.Info("sqlite storage opened", slog.String("path", cfg.Storage.SQLitePath))
		return sqlite.NewRepositories(conn), func() { conn.Close() }, nil

	default:
		// Optionally run migrations if configured. We use the Psql sub-config.
		if cfg.Psql.RunMigrations {
			if err := db.Migrate(cfg.Psql.Addr.String()); err != nil {
				return port.Repositories{}, nil, fmt.Errorf("migrate: %w", err)
			}
			logger.Info("migrations applied successfully")
		}
		pool, err := db.NewPostgresPool(ctx, cfg.Psql)
		if err != nil {
			return port.Repositories{}, nil, fmt.Errorf("database connection: %w", err)
		}
		return postgres.NewRepositories(pool, cfg.Psql.MaxRetries), pool.Close, nil
	}
}

// importFiles reconciles each path once with the configured upload profile.
// Every file is attempted; the first hard error is returned at the end.
func importFiles(ctx context.Context, imports port.ImportUseCase, cfg configs.Ingest, paths []string, logger *slog.Logger) error {
	if len(paths) == 0 {
		return errors.New("usage: import FILE...")
	}
	overrides := cfg.Overrides()
	overrides.AllowSpreadsheets = true
	opts, err := overrides.Resolve(cfg.Profile)
	if err != nil {
		return err
	}

	var firstErr error
	for _, path := range paths {
		res, err := imports.ImportFile(ctx, path, opts, domain.SourceCLI)
		if err != nil {
			logger.Error("file import failed", slog.String("file", path), slog.Any("error", err))
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		attrs := []any{
			slog.String("file", path),
			slog.String("batch", res.BatchID),
			slog.Bool("success", res.Success),
			slog.Int("processed", res.RowsProcessed),
			slog.Int("failed", res.RowsFailed),
		}
		if res.Error != "" {
			attrs = append(attrs, slog.String("error", res.Error))
		}
		logger.Info("file imported", attrs...)
	}
	return firstErr
}
