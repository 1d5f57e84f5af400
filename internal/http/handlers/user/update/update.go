// Package update реализует HTTP-обработчик частичного обновления профиля.
package update

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/pulsefit/internal/http/params"
	"github.com/magabrotheeeer/pulsefit/internal/http/response"
	"github.com/magabrotheeeer/pulsefit/internal/lib/sl"
	"github.com/magabrotheeeer/pulsefit/internal/models"
	"github.com/magabrotheeeer/pulsefit/internal/storage"
)

// Service описывает обновление профиля.
type Service interface {
	UpdateProfile(ctx context.Context, id int64, upd models.UserUpdate) (*models.User, error)
}

// Handler обрабатывает PUT /users/{id}.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// New создаёт обработчик.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
	}
}

// ServeHTTP godoc
// @Summary Обновить профиль
// @Description Меняет только переданные поля. Пустое тело даёт 400.
// @Tags Users
// @Accept json
// @Produce json
// @Param id path int true "ID участника"
// @Param request body models.UserUpdate true "Изменяемые поля"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.ErrorResponse "Нет полей для обновления"
// @Failure 404 {object} response.ErrorResponse "Участник не найден"
// @Failure 409 {object} response.ErrorResponse "Email уже занят"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /users/{id} [put]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.user.update"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id, err := params.URLID(r, "id")
	if err != nil {
		response.JSON(w, r, http.StatusBadRequest, response.Error("invalid user ID"))
		return
	}

	var req models.UserUpdate
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		response.JSON(w, r, http.StatusBadRequest, response.Error("invalid request body"))
		return
	}
	if err := h.validate.Struct(req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			response.JSON(w, r, http.StatusUnprocessableEntity, response.ValidationError(verrs))
			return
		}
		response.JSON(w, r, http.StatusBadRequest, response.Error("invalid request"))
		return
	}

	u, err := h.service.UpdateProfile(r.Context(), id, req)
	switch {
	case errors.Is(err, storage.ErrEmptyUpdate):
		response.JSON(w, r, http.StatusBadRequest, response.Error("no fields to update"))
		return
	case errors.Is(err, storage.ErrNotFound):
		response.JSON(w, r, http.StatusNotFound, response.Error("user not found"))
		return
	case errors.Is(err, storage.ErrEmailTaken):
		response.JSON(w, r, http.StatusConflict, response.Error("email already registered"))
		return
	case err != nil:
		log.Error("failed to update user", sl.Err(err))
		response.JSON(w, r, http.StatusInternalServerError, response.Error("failed to update user"))
		return
	}

	log.Info("user updated", slog.Int64("user_id", id))
	response.JSON(w, r, http.StatusOK, response.StatusOKWithData(u))
}
