// Package attendance ведёт учёт посещений зала: вход, выход и история.
package attendance

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/magabrotheeeer/pulsefit/internal/models"
	"github.com/magabrotheeeer/pulsefit/internal/storage"
)

var (
	// ErrAlreadyClosed — посещение уже закрыто.
	ErrAlreadyClosed = errors.New("attendance already closed")
	// ErrInvalidCheckout — время выхода раньше входа или длительность отрицательна.
	ErrInvalidCheckout = errors.New("invalid checkout")
)

// Repository описывает хранилище посещений.
type Repository interface {
	CreateAttendance(ctx context.Context, userID int64, checkIn, date time.Time) (*models.Attendance, error)
	CloseAttendance(ctx context.Context, id int64, checkOut time.Time, duration int) (*models.Attendance, error)
	GetAttendance(ctx context.Context, id int64) (*models.Attendance, error)
	ListAttendance(ctx context.Context, userID int64, limit int) ([]models.Attendance, error)
	GetAttendanceByDate(ctx context.Context, userID int64, date time.Time) (*models.Attendance, error)
}

// Service реализует правила входа и выхода.
type Service struct {
	repo Repository
	log  *slog.Logger
}

// NewService создаёт сервис посещений.
func NewService(repo Repository, log *slog.Logger) *Service {
	return &Service{repo: repo, log: log}
}

// CheckIn открывает посещение. Если date нулевая, день берётся из checkIn.
// Второе открытое посещение того же участника даёт storage.ErrOpenSession.
func (s *Service) CheckIn(ctx context.Context, userID int64, checkIn, date time.Time) (*models.Attendance, error) {
	const op = "attendance.CheckIn"

	if date.IsZero() {
		y, m, d := checkIn.Date()
		date = time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	}
	a, err := s.repo.CreateAttendance(ctx, userID, checkIn, date)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	s.log.InfoContext(ctx, "member checked in", slog.Int64("user_id", userID), slog.Int64("attendance_id", a.ID))
	return a, nil
}

// CheckOut закрывает посещение. Если duration не задана, она считается
// в целых минутах от входа до выхода.
func (s *Service) CheckOut(ctx context.Context, id int64, checkOut time.Time, duration *int) (*models.Attendance, error) {
	const op = "attendance.CheckOut"

	a, err := s.repo.GetAttendance(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if !a.IsOpen() {
		return nil, fmt.Errorf("%s: %w", op, ErrAlreadyClosed)
	}
	if checkOut.Before(a.CheckInTime) {
		return nil, fmt.Errorf("%s: %w: check-out before check-in", op, ErrInvalidCheckout)
	}

	minutes := int(checkOut.Sub(a.CheckInTime) / time.Minute)
	if duration != nil {
		if *duration < 0 {
			return nil, fmt.Errorf("%s: %w: negative duration", op, ErrInvalidCheckout)
		}
		minutes = *duration
	}

	closed, err := s.repo.CloseAttendance(ctx, id, checkOut, minutes)
	if errors.Is(err, storage.ErrNotFound) {
		// закрыто параллельным запросом между чтением и обновлением
		return nil, fmt.Errorf("%s: %w", op, ErrAlreadyClosed)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	s.log.InfoContext(ctx, "member checked out", slog.Int64("attendance_id", id), slog.Int("duration", minutes))
	return closed, nil
}

// History возвращает последние посещения участника.
func (s *Service) History(ctx context.Context, userID int64, limit int) ([]models.Attendance, error) {
	const op = "attendance.History"

	list, err := s.repo.ListAttendance(ctx, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return list, nil
}

// ForDate возвращает посещение участника за день.
func (s *Service) ForDate(ctx context.Context, userID int64, date time.Time) (*models.Attendance, error) {
	const op = "attendance.ForDate"

	a, err := s.repo.GetAttendanceByDate(ctx, userID, date)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return a, nil
}
