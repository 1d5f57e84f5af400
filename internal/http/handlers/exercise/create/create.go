// Package create реализует HTTP-обработчик новой записи в журнале упражнений.
package create

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

// Service описывает запись в журнал.
type Service interface {
	Log(ctx context.Context, userID int64, in models.ExerciseInput) (*models.Exercise, error)
}

// Handler обрабатывает POST /exercises.
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
// @Summary Добавить упражнение
// @Tags Exercises
// @Accept json
// @Produce json
// @Param request body models.DummyExercise true "Упражнение"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON или дата"
// @Failure 404 {object} response.ErrorResponse "Участник не найден"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /exercises [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.exercise.create"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.DummyExercise
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		response.JSON(w, r, http.StatusBadRequest, response.Error("invalid request body"))
		return
	}

	if err := h.validate.Struct(req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			log.Info("validation failed", sl.Err(err))
			response.JSON(w, r, http.StatusUnprocessableEntity, response.ValidationError(verrs))
			return
		}
		response.JSON(w, r, http.StatusBadRequest, response.Error("invalid request"))
		return
	}

	date, err := params.ParseDate("date", req.Date)
	if err != nil {
		response.JSON(w, r, http.StatusBadRequest, response.Error("date must be in format 2006-01-02"))
		return
	}

	e, err := h.service.Log(r.Context(), req.UserID, models.ExerciseInput{
		ExerciseName: req.ExerciseName,
		Category:     req.Category,
		Sets:         req.Sets,
		Reps:         req.Reps,
		Weight:       req.Weight,
		Duration:     req.Duration,
		Notes:        req.Notes,
		Date:         date,
	})
	if errors.Is(err, storage.ErrNotFound) {
		response.JSON(w, r, http.StatusNotFound, response.Error("user not found"))
		return
	}
	if err != nil {
		log.Error("failed to create exercise", sl.Err(err))
		response.JSON(w, r, http.StatusInternalServerError, response.Error("failed to create exercise"))
		return
	}

	log.Info("exercise logged", slog.Int64("exercise_id", e.ID))
	response.JSON(w, r, http.StatusOK, response.StatusOKWithData(e))
}
