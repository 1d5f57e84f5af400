// Package login реализует HTTP-обработчик входа по email и паролю.
package login

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/pulsefit/internal/http/response"
	"github.com/magabrotheeeer/pulsefit/internal/lib/sl"
	authservice "github.com/magabrotheeeer/pulsefit/internal/services/auth"
)

// Request — учётные данные пользователя.
type Request struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Handler обрабатывает вход.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// New создаёт обработчик входа.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
	}
}

// ServeHTTP godoc
// @Summary Авторизация пользователя
// @Description Проверяет email и пароль. Возвращает профиль без хеша пароля и JWT.
// @Tags Auth
// @Accept  json
// @Produce  json
// @Param request body Request true "Учетные данные пользователя"
// @Success 200 {object} response.Response "Успешная авторизация"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 401 {object} response.ErrorResponse "Неверные учетные данные"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /auth/login [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.login"

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
		response.JSON(w, r, http.StatusBadRequest, response.Error("invalid request"))
		return
	}

	res, err := h.service.Login(r.Context(), req.Email, req.Password)
	if errors.Is(err, authservice.ErrInvalidCredentials) {
		log.Info("login rejected")
		response.JSON(w, r, http.StatusUnauthorized, response.Error("invalid credentials"))
		return
	}
	if err != nil {
		log.Error("login failed", sl.Err(err))
		response.JSON(w, r, http.StatusInternalServerError, response.Error("internal server error"))
		return
	}

	log.Info("user logged in", slog.Int64("user_id", res.User.ID))
	response.JSON(w, r, http.StatusOK, response.StatusOKWithData(map[string]any{
		"success": true,
		"user":    res.User,
		"token":   res.Token,
	}))
}
