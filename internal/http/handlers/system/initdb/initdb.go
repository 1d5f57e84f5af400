// Package initdb реализует HTTP-запуск инициализации схемы и демо-данных.
package initdb

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"

	"github.com/magabrotheeeer/pulsefit/internal/http/response"
	"github.com/magabrotheeeer/pulsefit/internal/lib/sl"
	"github.com/magabrotheeeer/pulsefit/internal/models"
)

// Initializer создаёт схему и демо-данные. Повторный вызов ничего не дублирует.
type Initializer interface {
	Initialize(ctx context.Context) (*models.InitResult, error)
}

type Handler struct {
	log         *slog.Logger
	initializer Initializer
}

func New(log *slog.Logger, initializer Initializer) *Handler {
	return &Handler{log: log, initializer: initializer}
}

// ServeHTTP godoc
// @Summary Инициализация базы
// @Description Создаёт таблицы и индексы, добавляет демо-аккаунты. Повторный вызов безопасен.
// @Tags System
// @Produce json
// @Success 200 {object} response.Response
// @Failure 500 {object} response.ErrorResponse "Инициализация не удалась"
// @Router /init-database [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.system.initdb"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	res, err := h.initializer.Initialize(r.Context())
	if err != nil {
		log.Error("database initialization failed", sl.Err(err))
		response.JSON(w, r, http.StatusInternalServerError, response.Error("database initialization failed"))
		return
	}

	log.Info("database initialized",
		slog.Int64("users", res.Stats.Users),
		slog.Int64("attendance", res.Stats.Attendance),
	)
	response.JSON(w, r, http.StatusOK, response.StatusOKWithData(res))
}
