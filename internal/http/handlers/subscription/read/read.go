// Package read реализует HTTP-обработчик текущей подписки участника.
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

// Service описывает чтение подписки.
type Service interface {
	Subscription(ctx context.Context, userID int64) (*models.Subscription, error)
}

type Handler struct {
	log     *slog.Logger
	service Service
}

func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Текущая подписка участника
// @Tags Subscriptions
// @Produce json
// @Param id path int true "ID участника"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.ErrorResponse "Некорректный id"
// @Failure 404 {object} response.ErrorResponse "Подписка не найдена"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /users/{id}/subscription [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.subscription.read"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	userID, err := params.URLID(r, "id")
	if err != nil {
		response.JSON(w, r, http.StatusBadRequest, response.Error("invalid user ID"))
		return
	}

	sub, err := h.service.Subscription(r.Context(), userID)
	if errors.Is(err, storage.ErrNotFound) {
		response.JSON(w, r, http.StatusNotFound, response.Error("subscription not found"))
		return
	}
	if err != nil {
		log.Error("failed to read subscription", sl.Err(err))
		response.JSON(w, r, http.StatusInternalServerError, response.Error("failed to fetch subscription"))
		return
	}
	response.JSON(w, r, http.StatusOK, response.StatusOKWithData(sub))
}
