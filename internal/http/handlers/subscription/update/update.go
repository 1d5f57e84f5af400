// Package update реализует HTTP-обработчик частичного обновления подписки.
package update

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/pulsefit/internal/http/params"
	"github.com/magabrotheeeer/pulsefit/internal/http/response"
	"github.com/magabrotheeeer/pulsefit/internal/lib/sl"
	"github.com/magabrotheeeer/pulsefit/internal/models"
	"github.com/magabrotheeeer/pulsefit/internal/storage"
)

type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// Service описывает обновление текущей подписки участника.
type Service interface {
	UpdateSubscription(ctx context.Context, userID int64, upd models.SubscriptionUpdate) (*models.Subscription, error)
}

func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
	}
}

// ServeHTTP godoc
// @Summary Обновить подписку
// @Description Меняет переданные поля последней подписки участника.
// @Tags Subscriptions
// @Accept json
// @Produce json
// @Param id path int true "ID участника"
// @Param request body models.DummySubscriptionUpdate true "Изменяемые поля"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.ErrorResponse "Нет полей или некорректная дата"
// @Failure 404 {object} response.ErrorResponse "Подписка не найдена"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /users/{id}/subscription [put]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.subscription.update"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	userID, err := params.URLID(r, "id")
	if err != nil {
		response.JSON(w, r, http.StatusBadRequest, response.Error("invalid user ID"))
		return
	}

	var req models.DummySubscriptionUpdate
	if err = render.DecodeJSON(r.Body, &req); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		response.JSON(w, r, http.StatusBadRequest, response.Error("invalid request body"))
		return
	}

	if err = h.validate.Struct(req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			response.JSON(w, r, http.StatusUnprocessableEntity, response.ValidationError(verrs))
			return
		}
		response.JSON(w, r, http.StatusBadRequest, response.Error("invalid request"))
		return
	}

	upd, err := toUpdate(req)
	if err != nil {
		response.JSON(w, r, http.StatusBadRequest, response.Error("dates must be in format 2006-01-02"))
		return
	}

	sub, err := h.service.UpdateSubscription(r.Context(), userID, upd)
	switch {
	case errors.Is(err, storage.ErrEmptyUpdate):
		response.JSON(w, r, http.StatusBadRequest, response.Error("no fields to update"))
		return
	case errors.Is(err, storage.ErrNotFound):
		response.JSON(w, r, http.StatusNotFound, response.Error("subscription not found"))
		return
	case err != nil:
		log.Error("failed to update subscription", sl.Err(err))
		response.JSON(w, r, http.StatusInternalServerError, response.Error("could not update subscription"))
		return
	}

	log.Info("subscription updated", slog.Int64("user_id", userID), slog.Int64("subscription_id", sub.ID))
	response.JSON(w, r, http.StatusOK, response.StatusOKWithData(sub))
}

func toUpdate(req models.DummySubscriptionUpdate) (models.SubscriptionUpdate, error) {
	upd := models.SubscriptionUpdate{
		Category: req.Category,
		Price:    req.Price,
		Status:   req.Status,
	}
	var err error
	if upd.StartDate, err = optionalDate("startDate", req.StartDate); err != nil {
		return upd, err
	}
	if upd.EndDate, err = optionalDate("endDate", req.EndDate); err != nil {
		return upd, err
	}
	return upd, nil
}

func optionalDate(name string, raw *string) (*time.Time, error) {
	if raw == nil {
		return nil, nil
	}
	t, err := params.ParseDate(name, *raw)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
