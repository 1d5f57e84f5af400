// Package read реализует HTTP-обработчик чтения посещений участника:
// одно посещение за день или последние посещения списком.
package read

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/middleware"

	"github.com/magabrotheeeer/pulsefit/internal/http/params"
	"github.com/magabrotheeeer/pulsefit/internal/http/response"
	"github.com/magabrotheeeer/pulsefit/internal/lib/sl"
	"github.com/magabrotheeeer/pulsefit/internal/models"
	"github.com/magabrotheeeer/pulsefit/internal/storage"
)

// Service описывает чтение посещений.
type Service interface {
	History(ctx context.Context, userID int64, limit int) ([]models.Attendance, error)
	ForDate(ctx context.Context, userID int64, date time.Time) (*models.Attendance, error)
}

// Handler обрабатывает GET /attendance.
type Handler struct {
	log     *slog.Logger
	service Service
}

// New создаёт обработчик.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Посещения участника
// @Description С параметром date возвращает посещение за этот день, без него список последних посещений.
// @Tags Attendance
// @Produce json
// @Param userId query int true "ID участника"
// @Param date query string false "День в формате 2006-01-02"
// @Param limit query int false "Размер списка, по умолчанию 10"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.ErrorResponse "Некорректные параметры"
// @Failure 404 {object} response.ErrorResponse "Посещение не найдено"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /attendance [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.attendance.read"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	userID, err := params.QueryID(r, "userId")
	if err != nil {
		log.Info("bad user id", sl.Err(err))
		response.JSON(w, r, http.StatusBadRequest, response.Error("user ID is required"))
		return
	}

	if raw := r.URL.Query().Get("date"); raw != "" {
		date, err := params.ParseDate("date", raw)
		if err != nil {
			response.JSON(w, r, http.StatusBadRequest, response.Error("date must be in format 2006-01-02"))
			return
		}
		a, err := h.service.ForDate(r.Context(), userID, date)
		if errors.Is(err, storage.ErrNotFound) {
			response.JSON(w, r, http.StatusNotFound, response.Error("attendance not found"))
			return
		}
		if err != nil {
			log.Error("failed to read attendance", sl.Err(err))
			response.JSON(w, r, http.StatusInternalServerError, response.Error("failed to fetch attendance"))
			return
		}
		response.JSON(w, r, http.StatusOK, response.StatusOKWithData(a))
		return
	}

	limit, err := params.QueryLimit(r)
	if err != nil {
		response.JSON(w, r, http.StatusBadRequest, response.Error("limit must be a non-negative integer"))
		return
	}
	list, err := h.service.History(r.Context(), userID, limit)
	if err != nil {
		log.Error("failed to list attendance", sl.Err(err))
		response.JSON(w, r, http.StatusInternalServerError, response.Error("failed to fetch attendance"))
		return
	}
	log.Debug("attendance listed", slog.Int("count", len(list)))
	response.JSON(w, r, http.StatusOK, response.StatusOKWithData(list))
}
