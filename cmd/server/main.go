package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"sprintsync.app/retro/common/id"
	"sprintsync.app/retro/common/logger"
	"sprintsync.app/retro/common/metrics"
	"sprintsync.app/retro/common/otel"
	"sprintsync.app/retro/core/config"
	"sprintsync.app/retro/core/db"
	"sprintsync.app/retro/internal/events"
	"sprintsync.app/retro/internal/http/dto"
	"sprintsync.app/retro/internal/http/handler"
	"sprintsync.app/retro/internal/http/middleware"
	httprouter "sprintsync.app/retro/internal/http/router"
	"sprintsync.app/retro/internal/service"
	"sprintsync.app/retro/internal/store"
)

func main() {
	fmt.Printf("%s\n", banner)
	ctx := context.Background()

	cfg, err := config.Load(config.ServiceTypeServer)
	if err != nil {
		slog.ErrorContext(ctx, "failed to load config", "error", err)
		os.Exit(1)
	}

	// OTel must init before logger (logger uses OTel provider in production)
	telemetry, err := otel.Setup(ctx, cfg)
	if err != nil {
		os.Stderr.WriteString("failed to initialize otel: " + err.Error() + "\n")
		os.Exit(1)
	}

	logger.Setup(cfg)

	if telemetry != nil {
		slog.InfoContext(ctx, "otel initialized", "endpoint", cfg.OTel.Endpoint)
	} else {
		slog.InfoContext(ctx, "otel disabled (no endpoint configured)")
	}

	slog.InfoContext(ctx, "retro server starting", "env", cfg.Env, "service", cfg.OTel.ServiceName)
	if err := id.Init(1); err != nil {
		slog.ErrorContext(ctx, "failed to initialize snowflake id generator", "error", err)
		os.Exit(1)
	}

	if err := dto.RegisterValidators(); err != nil {
		slog.ErrorContext(ctx, "failed to register request validators", "error", err)
		os.Exit(1)
	}

	database, err := db.New(ctx, cfg.DB)
	if err != nil {
		slog.ErrorContext(ctx, "failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer database.Close()
	slog.InfoContext(ctx, "database connected", "auto_migrate", cfg.DB.AutoMigrate)

	healthChecks := []handler.HealthCheck{{Name: "postgres", Ping: database.Ping}}

	var (
		publisher  service.EventPublisher = events.NopPublisher{}
		subscriber events.Subscriber
	)
	if cfg.Redis.Enabled() {
		redisOpts, err := redis.ParseURL(cfg.Redis.URL)
		if err != nil {
			slog.ErrorContext(ctx, "failed to parse redis url", "error", err)
			os.Exit(1)
		}

		redisClient := redis.NewClient(redisOpts)
		if err := redisClient.Ping(ctx).Err(); err != nil {
			slog.ErrorContext(ctx, "failed to connect to redis", "error", err)
			os.Exit(1)
		}
		defer redisClient.Close()
		slog.InfoContext(ctx, "redis connected", "stream_max_len", cfg.Redis.StreamMaxLen)

		publisher = events.NewRedisPublisher(redisClient, cfg.Redis.StreamMaxLen, slog.Default())
		subscriber = events.NewRedisSubscriber(redisClient)
		healthChecks = append(healthChecks, handler.HealthCheck{
			Name: "redis",
			Ping: func(ctx context.Context) error { return redisClient.Ping(ctx).Err() },
		})
	} else {
		slog.InfoContext(ctx, "redis disabled, board streaming off")
	}

	stores := store.NewStores(database.Queries())
	services := service.NewServices(stores, service.NewTxRunner(database), publisher, cfg.Board)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := setupRouter(cfg, services, httprouter.RouterConfig{
		Subscriber:   subscriber,
		HealthChecks: healthChecks,
	})
	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           httprouter.CORS(cfg.HTTP.CORSOrigins)(router),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		// No WriteTimeout: board streams stay open for the life of the page.
		IdleTimeout: 120 * time.Second,
	}

	go func() {
		slog.InfoContext(ctx, "http server starting", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.ErrorContext(ctx, "http server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.InfoContext(ctx, "shutting down...")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.ErrorContext(shutdownCtx, "http server shutdown error", "error", err)
	}

	if err := telemetry.Shutdown(shutdownCtx); err != nil {
		slog.ErrorContext(shutdownCtx, "otel shutdown error", "error", err)
	}

	slog.InfoContext(shutdownCtx, "shutdown complete")
}

func setupRouter(cfg config.Config, services *service.Services, routerCfg httprouter.RouterConfig) *gin.Engine {
	router := gin.New()

	// Order matters: OTel creates span → Recovery catches panics → Logger logs with trace context
	if cfg.OTel.Enabled() {
		router.Use(otelgin.Middleware(cfg.OTel.ServiceName))
	}
	router.Use(middleware.Recovery())
	router.Use(middleware.Logger("/health", "/metrics"))
	router.Use(metrics.Middleware())

	httprouter.SetupRoutes(router, services, routerCfg)

	return router
}

const banner = `
 ____            _       _   ____                     ____      _
/ ___| _ __  _ __(_)_ __ | |_/ ___| _   _ _ __   ___  |  _ \ ___| |_ _ __ ___
\___ \| '_ \| '__| | '_ \| __\___ \| | | | '_ \ / __| | |_) / _ \ __| '__/ _ \
 ___) | |_) | |  | | | | | |_ ___) | |_| | | | | (__  |  _ <  __/ |_| | | (_) |
|____/| .__/|_|  |_|_| |_|\__|____/ \__, |_| |_|\___| |_| \_\___|\__|_|  \___/
      |_|                           |___/
`
