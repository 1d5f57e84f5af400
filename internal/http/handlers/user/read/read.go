// Package read реализует HTTP-обработчик профиля участника.
package read

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

// Service описывает чтение профиля.
type Service interface {
	Profile(ctx context.Context, id int64) (*models.User, error)
}

// Handler обрабатывает GET /users/{id}.
type Handler struct {
	log     *slog.Logger
	service Service
}

// New создаёт обработчик.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Профиль участника
// @Tags Users
// @Produce json
// @Param id path int true "ID участника"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.ErrorResponse "Некорректный id"
// @Failure 404 {object} response.ErrorResponse "Участник не найден"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /users/{id} [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.user.read"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id, err := params.URLID(r, "id")
	if err != nil {
		response.JSON(w, r, http.StatusBadRequest, response.Error("invalid user ID"))
		return
	}

	u, err := h.service.Profile(r.Context(), id)
	if errors.Is(err, storage.ErrNotFound) {
		response.JSON(w, r, http.StatusNotFound, response.Error("user not found"))
		return
	}
	if err != nil {
		log.Error("failed to read user", sl.Err(err))
		response.JSON(w, r, http.StatusInternalServerError, response.Error("failed to fetch user"))
		return
	}
	response.JSON(w, r, http.StatusOK, response.StatusOKWithData(u))
}
