// Package remove реализует HTTP-обработчик удаления упражнения из журнала.
package remove

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

// Service описывает удаление из журнала.
type Service interface {
	Remove(ctx context.Context, id, userID int64) (*models.Exercise, error)
}

// Handler обрабатывает DELETE /exercises.
type Handler struct {
	log     *slog.Logger
	service Service
}

// New создаёт обработчик.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Удалить упражнение
// @Description Удаляет запись, только если она принадлежит userId.
// @Tags Exercises
// @Produce json
// @Param id query int true "ID упражнения"
// @Param userId query int true "ID участника"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.ErrorResponse "Некорректные параметры"
// @Failure 404 {object} response.ErrorResponse "Упражнение не найдено"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /exercises [delete]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.exercise.remove"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id, err := params.QueryID(r, "id")
	if err != nil {
		response.JSON(w, r, http.StatusBadRequest, response.Error("exercise ID and user ID are required"))
		return
	}
	userID, err := params.QueryID(r, "userId")
	if err != nil {
		response.JSON(w, r, http.StatusBadRequest, response.Error("exercise ID and user ID are required"))
		return
	}

	e, err := h.service.Remove(r.Context(), id, userID)
	if errors.Is(err, storage.ErrNotFound) {
		log.Info("exercise not found", slog.Int64("id", id), slog.Int64("user_id", userID))
		response.JSON(w, r, http.StatusNotFound, response.Error("exercise not found"))
		return
	}
	if err != nil {
		log.Error("failed to delete exercise", sl.Err(err))
		response.JSON(w, r, http.StatusInternalServerError, response.Error("failed to delete exercise"))
		return
	}

	log.Info("exercise deleted", slog.Int64("id", id))
	response.JSON(w, r, http.StatusOK, response.StatusOKWithData(e))
}
