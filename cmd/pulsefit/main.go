// Package main PulseFit API
//
// @title           PulseFit API
// @version         1.0
// @description     API фитнес-клуба: участники, подписки, посещения и журнал упражнений

// @host      localhost:8080
// @BasePath  /api
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/magabrotheeeer/pulsefit/internal/app/pulsefit"
	"github.com/magabrotheeeer/pulsefit/internal/config"
	"github.com/magabrotheeeer/pulsefit/internal/lib/sl"
	"github.com/magabrotheeeer/pulsefit/internal/storage"
)

func main() {
	initOnly := flag.Bool("init", false, "create schema and demo data, then exit")
	flag.Parse()

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		slog.Warn("failed to load .env", sl.Err(err))
	}

	cfg := config.MustLoad()
	logger := setupLogger(cfg.Env)

	logger.Info("starting pulsefit", slog.String("env", cfg.Env))
	logger.Debug("debug messages are enabled")
	logger.Debug("config loaded", slog.String("config", cfg.String()))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if *initOnly {
		if err := initDatabase(ctx, cfg, logger); err != nil {
			logger.Error("database initialization failed", sl.Err(err))
			os.Exit(1)
		}
		return
	}

	app, err := pulsefit.New(ctx, cfg, logger)
	if err != nil {
		logger.Error("failed to initialize app", sl.Err(err))
		os.Exit(1)
	}

	if err := app.Run(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("app stopped with error", sl.Err(err))
		os.Exit(1)
	}

	logger.Info("pulsefit stopped gracefully")
}

func initDatabase(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	db, err := storage.New(ctx, cfg.Database, logger)
	if err != nil {
		return err
	}
	defer db.Close()

	res, err := db.Initialize(ctx)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(res)
}

func setupLogger(env string) *slog.Logger {
	switch env {
	case config.EnvProd:
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	case config.EnvDev:
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	default:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
}
