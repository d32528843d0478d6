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

	"tailscale.com/tsnet"

	"github.com/meltforce/healthsink/internal/config"
	"github.com/meltforce/healthsink/internal/influx"
	"github.com/meltforce/healthsink/internal/ingest"
	"github.com/meltforce/healthsink/internal/normalize"
	"github.com/meltforce/healthsink/internal/server"
	"github.com/meltforce/healthsink/internal/storage"
)

// Version is set at build time via -ldflags.
var Version = "dev"

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	migrateOnly := flag.Bool("migrate-only", false, "run migrations and exit")
	flag.Parse()

	// Bootstrap logger at info; replaced once config is loaded.
	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	log.Info("healthsink starting", "version", Version)

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	log = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.Logging.SlogLevel()}))
	cfg.LogSummary(log)

	if err := storage.RunMigrations(cfg.Storage.Path); err != nil {
		log.Error("migration failed", "error", err)
		os.Exit(1)
	}
	log.Info("migrations applied")

	if *migrateOnly {
		log.Info("migrate-only: exiting")
		return
	}

	ctx := context.Background()
	db, err := storage.Open(ctx, cfg.Storage.Path)
	if err != nil {
		log.Error("failed to open import history", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	sink, err := influx.Connect(cfg.Influx)
	if err != nil {
		log.Error("failed to connect to InfluxDB", "url", cfg.Influx.URL, "error", err)
		os.Exit(1)
	}
	defer sink.Close()
	log.Info("influxdb connected", "url", cfg.Influx.URL, "bucket", cfg.Influx.Bucket)

	engine := normalize.New(log)
	provider := ingest.NewProvider(engine, sink, db, sink.Bucket(), sink.Org(), log)
	srv := server.New(provider, sink, db, cfg.Auth.APIKey, Version, log)

	// Start server — tsnet or plain HTTP
	var listener net.Listener
	var tsServer *tsnet.Server

	if cfg.Tailscale.Enabled {
		tsServer = &tsnet.Server{
			Hostname: cfg.Tailscale.Hostname,
			Dir:      cfg.Tailscale.StateDir,
		}
		if err := tsServer.Start(); err != nil {
			log.Error("tsnet start failed", "error", err)
			os.Exit(1)
		}
		defer tsServer.Close()

		listener, err = tsServer.Listen("tcp", ":80")
		if err != nil {
			log.Error("tsnet listen failed", "error", err)
			os.Exit(1)
		}
		log.Info("tsnet server starting", "hostname", cfg.Tailscale.Hostname)
	} else {
		addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
		listener, err = net.Listen("tcp", addr)
		if err != nil {
			log.Error("listen failed", "addr", addr, "error", err)
			os.Exit(1)
		}
		log.Info("server starting", "addr", addr, "mode", "plain http (no tailscale)")
	}

	httpSrv := &http.Server{Handler: srv}

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
