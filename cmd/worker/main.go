package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"sprintsync.app/retro/common/logger"
	"sprintsync.app/retro/common/otel"
	"sprintsync.app/retro/core/config"
	"sprintsync.app/retro/core/db"
	"sprintsync.app/retro/internal/store"
	"sprintsync.app/retro/internal/worker"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load(config.ServiceTypeWorker)
	if err != nil {
		slog.ErrorContext(ctx, "failed to load config", "error", err)
		os.Exit(1)
	}

	fmt.Printf("%s\n", banner)

	telemetry, err := otel.Setup(ctx, cfg)
	if err != nil {
		os.Stderr.WriteString("failed to initialize otel: " + err.Error() + "\n")
		os.Exit(1)
	}

	logger.Setup(cfg)

	slog.InfoContext(ctx, "retro worker starting",
		"env", cfg.Env,
		"reconcile_interval", cfg.Worker.ReconcileInterval)

	// The server owns migrations; the worker only needs the tables to exist.
	dbCfg := cfg.DB
	dbCfg.AutoMigrate = false
	database, err := db.New(ctx, dbCfg)
	if err != nil {
		slog.ErrorContext(ctx, "failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer database.Close()
	slog.InfoContext(ctx, "database connected")

	stores := store.NewStores(database.Queries())

	reconciler := worker.NewReconciler(stores.Counters(), worker.ReconcilerConfig{
		Interval:   cfg.Worker.ReconcileInterval,
		RunOnStart: true,
	})

	doneCh := make(chan struct{})
	go func() {
		reconciler.Run(ctx)
		close(doneCh)
	}()

	slog.InfoContext(ctx, "worker initialized and running")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.InfoContext(ctx, "shutting down worker...")

	shutdownCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	stopped := make(chan struct{})
	go func() {
		reconciler.Stop()
		close(stopped)
	}()

	select {
	case <-shutdownCtx.Done():
		slog.WarnContext(ctx, "shutdown timeout exceeded")
	case <-stopped:
		<-doneCh
	}

	if err := telemetry.Shutdown(shutdownCtx); err != nil {
		slog.ErrorContext(shutdownCtx, "otel shutdown error", "error", err)
	}

	slog.InfoContext(ctx, "worker shutdown complete")
}

const banner = `
 ____      _               __        __         _
|  _ \ ___| |_ _ __ ___    \ \      / /__  _ __| | _____ _ __
| |_) / _ \ __| '__/ _ \    \ \ /\ / / _ \| '__| |/ / _ \ '__|
|  _ <  __/ |_| | | (_) |    \ V  V / (_) | |  |   <  __/ |
|_| \_\___|\__|_|  \___/      \_/\_/ \___/|_|  |_|\_\___|_|
`
