// Package list реализует HTTP-обработчик списка участников для администратора.
package list

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"

	"github.com/magabrotheeeer/pulsefit/internal/http/response"
	"github.com/magabrotheeeer/pulsefit/internal/lib/sl"
	"github.com/magabrotheeeer/pulsefit/internal/services/member"
)

// Service описывает получение списка участников.
type Service interface {
	Directory(ctx context.Context) (*member.Directory, error)
}

// Handler обрабатывает GET /users.
type Handler struct {
	log     *slog.Logger
	service Service
}

// New создаёт обработчик.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Участники клуба
// @Description Участники с последними подписками и сводная статистика клуба.
// @Tags Users
// @Produce json
// @Success 200 {object} response.Response
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /users [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.user.list"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	dir, err := h.service.Directory(r.Context())
	if err != nil {
		log.Error("failed to list members", sl.Err(err))
		response.JSON(w, r, http.StatusInternalServerError, response.Error("failed to fetch users"))
		return
	}
	log.Debug("members listed", slog.Int("count", len(dir.Users)))
	response.JSON(w, r, http.StatusOK, response.StatusOKWithData(dir))
}
