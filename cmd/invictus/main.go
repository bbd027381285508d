package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/CGAmico/Invictus-Fitness/internal/accounts"
	"github.com/CGAmico/Invictus-Fitness/internal/catalog"
	"github.com/CGAmico/Invictus-Fitness/internal/config"
	"github.com/CGAmico/Invictus-Fitness/internal/logging"
	"github.com/CGAmico/Invictus-Fitness/internal/mcp"
	"github.com/CGAmico/Invictus-Fitness/internal/programs"
	"github.com/CGAmico/Invictus-Fitness/internal/server"
	"github.com/CGAmico/Invictus-Fitness/internal/storage"
	"github.com/CGAmico/Invictus-Fitness/internal/telemetry"
	"github.com/CGAmico/Invictus-Fitness/internal/training"
	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redis_rate/v9"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"tailscale.com/tsnet"
)

// Version is set at build time via -ldflags.
var Version = "dev"

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	migrateOnly := flag.Bool("migrate-only", false, "run migrations and exit")
	flag.Parse()

	// Load config
	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, logCloser := logging.New(cfg.Logging)
	defer logCloser.Close()
	log.Info("Invictus starting", "version", Version)

	// Run migrations
	dsn := cfg.Database.DSN()
	if err := storage.RunMigrations(dsn, "migrations"); err != nil {
		log.Error("migration failed", "error", err)
		os.Exit(1)
	}
	log.Info("migrations applied")

	if *migrateOnly {
		log.Info("migrate-only: exiting")
		return
	}

	// Connect database
	ctx := context.Background()
	db, err := storage.New(ctx, dsn, storage.Options{Tracing: cfg.Tracing.Enabled})
	if err != nil {
		log.Error("failed to connect database", "error", err)
		os.Exit(1)
	}
	defer db.Close()
	log.Info("database connected", "tracing", cfg.Tracing.Enabled)

	// Metrics
	promRegistry := prometheus.NewRegistry()
	promRegistry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metrics := telemetry.NewManager("invictus", "server", promRegistry)

	// Redis-backed write rate limiting
	var (
		rdb     *redis.Client
		limiter server.RequestRateLimiter
	)
	if cfg.Redis.Enabled {
		rdb = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer rdb.Close()
		if err := rdb.Ping(ctx).Err(); err != nil {
			log.Warn("failed to ping redis", "addr", cfg.Redis.Addr, "error", err)
		}
		limiter = redis_rate.NewLimiter(rdb)
		log.Info("write rate limiting enabled", "per_minute", cfg.Redis.WritesPerMinute)
	}

	// Services
	accountSvc := accounts.NewService(db, cfg.Auth.IsOwnerLogin, log)
	catalogSvc := catalog.NewService(db, cfg.Cache.SizeMB, time.Duration(cfg.Cache.TTLSeconds)*time.Second, log)
	programSvc := programs.NewService(db, metrics, log)
	programSvc.OnExerciseCreated(catalogSvc.ExercisesChanged)
	trainingSvc := training.NewService(db, metrics, log)

	mcpServer := mcp.New(mcp.NewLocal(programSvc, trainingSvc), Version, log)

	// Create server
	srv := server.New(server.Params{
		Programs:        programSvc,
		Catalog:         catalogSvc,
		Training:        trainingSvc,
		Accounts:        accountSvc,
		DB:              db,
		Redis:           rdb,
		Limiter:         limiter,
		WritesPerMinute: cfg.Redis.WritesPerMinute,
		Metrics:         metrics,
		Gatherer:        promRegistry,
		MCP:             mcp.HTTPHandler(mcpServer),
		APIKey:          cfg.Auth.APIKey,
		DevLogin:        cfg.Auth.DevLogin,
		Log:             log,
	})

	// Start server: tsnet or plain HTTP
	var listener net.Listener

	if cfg.Tailscale.Enabled {
		tsServer := &tsnet.Server{
			Hostname: cfg.Tailscale.Hostname,
			Dir:      cfg.Tailscale.StateDir,
		}
		if err := tsServer.Start(); err != nil {
			log.Error("tsnet start failed", "error", err)
			os.Exit(1)
		}
		defer tsServer.Close()

		lc, err := tsServer.LocalClient()
		if err != nil {
			log.Error("tsnet local client failed", "error", err)
			os.Exit(1)
		}
		srv.SetTailscale(lc)

		listener, err = tsServer.Listen("tcp", ":80")
		if err != nil {
			log.Error("tsnet listen failed", "error", err)
			os.Exit(1)
		}
		log.Info("tsnet server starting", "hostname", cfg.Tailscale.Hostname)
	} else {
		addr := net.JoinHostPort(cfg.Server.Host, fmt.Sprint(cfg.Server.Port))
		listener, err = net.Listen("tcp", addr)
		if err != nil {
			log.Error("listen failed", "addr", addr, "error", err)
			os.Exit(1)
		}
		log.Info("server starting", "addr", addr, "mode", "dev (no tailscale)", "dev_login", cfg.Auth.DevLogin)
	}

	httpSrv := &http.Server{
		Handler:           srv,
		ReadHeaderTimeout: 10 * time.Second,
		ErrorLog:          slog.NewLogLogger(log.Handler(), slog.LevelWarn),
	}

	go func() {
		if err := httpSrv.Serve(listener); err != nil && err != http.ErrServerClosed {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	log.Info("shutting down", "signal", sig)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		log.Error("shutdown error", "error", err)
	}
	log.Info("server stopped")
}
