// Package list реализует HTTP-обработчик журнала упражнений участника.
package list

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"

	"github.com/magabrotheeeer/pulsefit/internal/http/params"
	"github.com/magabrotheeeer/pulsefit/internal/http/response"
	"github.com/magabrotheeeer/pulsefit/internal/lib/sl"
	"github.com/magabrotheeeer/pulsefit/internal/models"
)

// Service описывает чтение журнала.
type Service interface {
	List(ctx context.Context, userID int64, limit int) ([]models.Exercise, error)
}

// Handler обрабатывает GET /exercises.
type Handler struct {
	log     *slog.Logger
	service Service
}

// New создаёт обработчик.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Журнал упражнений
// @Tags Exercises
// @Produce json
// @Param userId query int true "ID участника"
// @Param limit query int false "Размер списка, по умолчанию 50"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.ErrorResponse "Некорректные параметры"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /exercises [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.exercise.list"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	userID, err := params.QueryID(r, "userId")
	if err != nil {
		response.JSON(w, r, http.StatusBadRequest, response.Error("user ID is required"))
		return
	}
	limit, err := params.QueryLimit(r)
	if err != nil {
		response.JSON(w, r, http.StatusBadRequest, response.Error("limit must be a non-negative integer"))
		return
	}

	list, err := h.service.List(r.Context(), userID, limit)
	if err != nil {
		log.Error("failed to list exercises", sl.Err(err))
		response.JSON(w, r, http.StatusInternalServerError, response.Error("failed to fetch exercises"))
		return
	}
	response.JSON(w, r, http.StatusOK, response.StatusOKWithData(list))
}
