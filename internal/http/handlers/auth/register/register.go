// Package register реализует HTTP-обработчик регистрации участника.
package register

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/pulsefit/internal/http/response"
	"github.com/magabrotheeeer/pulsefit/internal/lib/password"
	"github.com/magabrotheeeer/pulsefit/internal/lib/sl"
	"github.com/magabrotheeeer/pulsefit/internal/models"
	authservice "github.com/magabrotheeeer/pulsefit/internal/services/auth"
	"github.com/magabrotheeeer/pulsefit/internal/storage"
)

// Request — входные данные для регистрации
type Request struct {
	Name         string `json:"name" validate:"required,max=255"`
	Email        string `json:"email" validate:"required,email,max=255"`
	Password     string `json:"password" validate:"required,min=6,max=72"`
	Subscription string `json:"subscription" validate:"required,max=100"`
}

// RegisteredUser — профиль без хеша пароля вместе с созданным абонементом.
type RegisteredUser struct {
	*models.User
	Subscription models.SubscriptionSummary `json:"subscription"`
}

// Handler обрабатывает регистрацию.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// New создаёт обработчик регистрации.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
	}
}

// ServeHTTP godoc
// @Summary Регистрация нового участника
// @Description Создаёт участника с ролью user и годовой абонемент. "Strength Training" стоит 800, остальные категории 1000.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body Request true "Данные участника"
// @Success 200 {object} response.Response "Участник зарегистрирован"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON"
// @Failure 409 {object} response.ErrorResponse "Email уже зарегистрирован"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /auth/register [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.register"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req Request
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
		log.Error("failed to validate request", sl.Err(err))
		response.JSON(w, r, http.StatusBadRequest, response.Error("invalid request"))
		return
	}

	reg, err := h.service.Register(r.Context(), authservice.RegisterInput{
		Name:         req.Name,
		Email:        req.Email,
		Password:     req.Password,
		Subscription: req.Subscription,
	})
	if errors.Is(err, storage.ErrEmailTaken) {
		log.Info("email already registered", slog.String("email", req.Email))
		response.JSON(w, r, http.StatusConflict, response.Error("email already registered"))
		return
	}
	if errors.Is(err, password.ErrTooLong) {
		log.Info("password is too long")
		response.JSON(w, r, http.StatusUnprocessableEntity, response.Error("field Password must be at most 72 bytes"))
		return
	}
	if err != nil {
		log.Error("registration failed", sl.Err(err))
		response.JSON(w, r, http.StatusInternalServerError, response.Error("registration failed"))
		return
	}

	log.Info("user registered", slog.Int64("user_id", reg.User.ID))
	response.JSON(w, r, http.StatusOK, response.StatusOKWithData(map[string]any{
		"success": true,
		"user": RegisteredUser{
			User:         reg.User,
			Subscription: reg.Subscription,
		},
	}))
}
