// Package stats реализует HTTP-обработчик статистики участника.
package stats

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"

	"github.com/magabrotheeeer/pulsefit/internal/http/params"
	"github.com/magabrotheeeer/pulsefit/internal/http/response"
	"github.com/magabrotheeeer/pulsefit/internal/lib/sl"
	"github.com/magabrotheeeer/pulsefit/internal/models"
	"github.com/magabrotheeeer/pulsefit/internal/storage"
)

// Service описывает получение статистики.
type Service interface {
	Stats(ctx context.Context, id int64) (*models.UserStats, error)
}

// Handler обрабатывает GET /users/{id}/stats.
type Handler struct {
	log     *slog.Logger
	service Service
}

// New создаёт обработчик.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Статистика участника
// @Description Завершённые посещения и минуты, записи журнала и дни с тренировками.
// @Tags Users
// @Produce json
// @Param id path int true "ID участника"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.ErrorResponse "Некорректный id"
// @Failure 404 {object} response.ErrorResponse "Участник не найден"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /users/{id}/stats [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.user.stats"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id, err := params.URLID(r, "id")
	if err != nil {
		response.JSON(w, r, http.StatusBadRequest, response.Error("invalid user ID"))
		return
	}

	st, err := h.service.Stats(r.Context(), id)
	if errors.Is(err, storage.ErrNotFound) {
		response.JSON(w, r, http.StatusNotFound, response.Error("user not found"))
		return
	}
	if err != nil {
		log.Error("failed to compute stats", sl.Err(err))
		response.JSON(w, r, http.StatusInternalServerError, response.Error("failed to fetch stats"))
		return
	}
	response.JSON(w, r, http.StatusOK, response.StatusOKWithData(st))
}
