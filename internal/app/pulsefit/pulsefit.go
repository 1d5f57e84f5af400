// Package pulsefit собирает HTTP-сервис клуба: хранилище, сервисы, маршруты и сервер.
package pulsefit

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"

	"github.com/magabrotheeeer/pulsefit/internal/config"
	"github.com/magabrotheeeer/pulsefit/internal/lib/jwt"
	attendanceservice "github.com/magabrotheeeer/pulsefit/internal/services/attendance"
	authservice "github.com/magabrotheeeer/pulsefit/internal/services/auth"
	memberservice "github.com/magabrotheeeer/pulsefit/internal/services/member"
	workoutservice "github.com/magabrotheeeer/pulsefit/internal/services/workout"
	"github.com/magabrotheeeer/pulsefit/internal/storage"
)

const shutdownTimeout = 15 * time.Second

type App struct {
	server *http.Server
	logger *slog.Logger
	db     *storage.Storage
}

// New подключается к базе и собирает сервер. Схему не трогает:
// для этого есть /init-database и флаг -init.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	const op = "pulsefit.New"

	db, err := storage.New(ctx, cfg.Database, logger)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	router := chi.NewRouter()
	RegisterRoutes(router, logger, NewServices(db, cfg, logger))

	srv := &http.Server{
		Addr:         cfg.AddressHTTP,
		Handler:      router,
		ReadTimeout:  cfg.TimeoutHTTP,
		WriteTimeout: cfg.TimeoutHTTP,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	return &App{
		server: srv,
		logger: logger,
		db:     db,
	}, nil
}

// NewServices связывает сервисы с хранилищем.
func NewServices(db *storage.Storage, cfg *config.Config, logger *slog.Logger) Services {
	return Services{
		Auth:       authservice.NewService(db, db, jwt.NewJWTMaker(cfg.JWTSecretKey, cfg.TokenTTL), logger),
		Attendance: attendanceservice.NewService(db, logger),
		Member:     memberservice.NewService(db),
		Workout:    workoutservice.NewService(db),
		Storage:    db,
	}
}

// Run обслуживает запросы до отмены ctx, затем останавливает сервер и закрывает пул.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		if cerr := a.db.Close(); cerr != nil {
			a.logger.Error("failed to close database", slog.Any("err", cerr))
		}
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		err := a.server.Shutdown(timeoutCtx)
		if cerr := a.db.Close(); cerr != nil {
			a.logger.Error("failed to close database", slog.Any("err", cerr))
		}
		return err
	}
}
