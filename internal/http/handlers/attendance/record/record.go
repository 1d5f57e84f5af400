// Package record реализует HTTP-обработчик входа в зал и выхода из него.
package record

import (
	"context"
	"errors"
	"io"
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
	attendanceservice "github.com/magabrotheeeer/pulsefit/internal/services/attendance"
	"github.com/magabrotheeeer/pulsefit/internal/storage"
)

const (
	actionCheckIn  = "checkin"
	actionCheckOut = "checkout"
)

// Service описывает вход и выход.
type Service interface {
	CheckIn(ctx context.Context, userID int64, checkIn, date time.Time) (*models.Attendance, error)
	CheckOut(ctx context.Context, id int64, checkOut time.Time, duration *int) (*models.Attendance, error)
}

// Request — тело POST /attendance. Набор полей зависит от action.
type Request struct {
	Action string `json:"action"`

	UserID      int64      `json:"userId"`
	CheckInTime *time.Time `json:"checkInTime"`
	Date        string     `json:"date"`

	AttendanceID int64      `json:"attendanceId"`
	CheckOutTime *time.Time `json:"checkOutTime"`
	Duration     *int       `json:"duration"`
}

type checkInRequest struct {
	UserID int64 `validate:"required,gt=0"`
}

type checkOutRequest struct {
	AttendanceID int64 `validate:"required,gt=0"`
	Duration     *int  `validate:"omitempty,gte=0"`
}

// Handler обрабатывает POST /attendance.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
	now      func() time.Time
}

// New создаёт обработчик.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
		now:      time.Now,
	}
}

// ServeHTTP godoc
// @Summary Вход в зал или выход
// @Description action=checkin открывает посещение (userId, checkInTime, date). action=checkout закрывает его (attendanceId, checkOutTime, duration). Без duration длительность считается в минутах.
// @Tags Attendance
// @Accept json
// @Produce json
// @Param request body Request true "Действие"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.ErrorResponse "Некорректный запрос"
// @Failure 404 {object} response.ErrorResponse "Участник или посещение не найдены"
// @Failure 409 {object} response.ErrorResponse "Посещение уже открыто или закрыто"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /attendance [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.attendance.record"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req Request
	if err := render.DecodeJSON(r.Body, &req); err != nil && !errors.Is(err, io.EOF) {
		log.Error("failed to decode request body", sl.Err(err))
		response.JSON(w, r, http.StatusBadRequest, response.Error("invalid request body"))
		return
	}

	switch req.Action {
	case actionCheckIn:
		h.checkIn(w, r, log, req)
	case actionCheckOut:
		h.checkOut(w, r, log, req)
	default:
		log.Info("unknown action", slog.String("action", req.Action))
		response.JSON(w, r, http.StatusBadRequest, response.Error("action must be checkin or checkout"))
	}
}

func (h *Handler) checkIn(w http.ResponseWriter, r *http.Request, log *slog.Logger, req Request) {
	if err := h.validate.Struct(checkInRequest{UserID: req.UserID}); err != nil {
		response.JSON(w, r, http.StatusBadRequest, response.Error("user ID is required"))
		return
	}

	checkIn := h.now().UTC()
	if req.CheckInTime != nil {
		checkIn = *req.CheckInTime
	}
	var date time.Time
	if req.Date != "" {
		d, err := params.ParseDate("date", req.Date)
		if err != nil {
			response.JSON(w, r, http.StatusBadRequest, response.Error("date must be in format 2006-01-02"))
			return
		}
		date = d
	}

	a, err := h.service.CheckIn(r.Context(), req.UserID, checkIn, date)
	switch {
	case errors.Is(err, storage.ErrOpenSession):
		response.JSON(w, r, http.StatusConflict, response.Error("member is already checked in"))
		return
	case errors.Is(err, storage.ErrNotFound):
		response.JSON(w, r, http.StatusNotFound, response.Error("user not found"))
		return
	case err != nil:
		log.Error("failed to check in", sl.Err(err))
		response.JSON(w, r, http.StatusInternalServerError, response.Error("failed to process attendance"))
		return
	}
	response.JSON(w, r, http.StatusOK, response.StatusOKWithData(a))
}

func (h *Handler) checkOut(w http.ResponseWriter, r *http.Request, log *slog.Logger, req Request) {
	if err := h.validate.Struct(checkOutRequest{AttendanceID: req.AttendanceID, Duration: req.Duration}); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			log.Info("invalid checkout request", sl.Err(err))
			response.JSON(w, r, http.StatusUnprocessableEntity, response.ValidationError(verrs))
			return
		}
		response.JSON(w, r, http.StatusBadRequest, response.Error("invalid request"))
		return
	}

	checkOut := h.now().UTC()
	if req.CheckOutTime != nil {
		checkOut = *req.CheckOutTime
	}

	a, err := h.service.CheckOut(r.Context(), req.AttendanceID, checkOut, req.Duration)
	switch {
	case errors.Is(err, storage.ErrNotFound):
		response.JSON(w, r, http.StatusNotFound, response.Error("attendance not found"))
		return
	case errors.Is(err, attendanceservice.ErrAlreadyClosed):
		response.JSON(w, r, http.StatusConflict, response.Error("attendance already closed"))
		return
	case errors.Is(err, attendanceservice.ErrInvalidCheckout):
		response.JSON(w, r, http.StatusBadRequest, response.Error("check-out must not be earlier than check-in"))
		return
	case err != nil:
		log.Error("failed to check out", sl.Err(err))
		response.JSON(w, r, http.StatusInternalServerError, response.Error("failed to process attendance"))
		return
	}
	response.JSON(w, r, http.StatusOK, response.StatusOKWithData(a))
}
