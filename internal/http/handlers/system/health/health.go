// Package health реализует проверку доступности сервиса и базы данных.
package health

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/middleware"

	"github.com/magabrotheeeer/pulsefit/internal/http/response"
	"github.com/magabrotheeeer/pulsefit/internal/lib/sl"
	"github.com/magabrotheeeer/pulsefit/internal/models"
)

// Probe опрашивается health-проверкой.
type Probe interface {
	Ping(ctx context.Context) error
	ServerInfo(ctx context.Context) (*models.ServerInfo, error)
	TableCounts(ctx context.Context) (*models.TableCounts, error)
}

// Report описывает тело успешного ответа.
type Report struct {
	Status    string              `json:"status"`
	Database  string              `json:"database"`
	Info      *models.ServerInfo  `json:"info"`
	Tables    *models.TableCounts `json:"tables"`
	Timestamp time.Time           `json:"timestamp"`
}

type Handler struct {
	log   *slog.Logger
	probe Probe
	now   func() time.Time
}

func New(log *slog.Logger, probe Probe) *Handler {
	return &Handler{
		log:   log,
		probe: probe,
		now:   time.Now,
	}
}

// ServeHTTP godoc
// @Summary Проверка состояния
// @Description Пингует базу, возвращает сведения о сервере и число строк в таблицах.
// @Tags System
// @Produce json
// @Success 200 {object} response.Response
// @Failure 503 {object} response.ErrorResponse "База данных недоступна"
// @Router /health [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.system.health"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	ctx := r.Context()
	if err := h.probe.Ping(ctx); err != nil {
		log.Error("database is unreachable", sl.Err(err))
		response.JSON(w, r, http.StatusServiceUnavailable, response.Error("database unavailable"))
		return
	}

	info, err := h.probe.ServerInfo(ctx)
	if err != nil {
		log.Error("failed to read server info", sl.Err(err))
		response.JSON(w, r, http.StatusServiceUnavailable, response.Error("database unavailable"))
		return
	}
	tables, err := h.probe.TableCounts(ctx)
	if err != nil {
		log.Error("failed to count rows", sl.Err(err))
		response.JSON(w, r, http.StatusServiceUnavailable, response.Error("database unavailable"))
		return
	}

	response.JSON(w, r, http.StatusOK, response.StatusOKWithData(Report{
		Status:    "healthy",
		Database:  "connected",
		Info:      info,
		Tables:    tables,
		Timestamp: h.now().UTC(),
	}))
}
