package storage

import (
	"context"
	"time"

	"github.com/magabrotheeeer/pulsefit/internal/models"
)

const (
	attendanceColumns = `id, user_id, check_in_time, check_out_time, duration, date, created_at`

	defaultAttendanceLimit = 10
)

// CreateAttendance открывает посещение. Если у участника уже есть
// незакрытое посещение, возвращается ErrOpenSession.
func (s *Storage) CreateAttendance(ctx context.Context, userID int64, checkIn, date time.Time) (*models.Attendance, error) {
	const op = "storage.CreateAttendance"

	var a models.Attendance
	query := `INSERT INTO attendance (user_id, check_in_time, date)
			  VALUES ($1, $2, $3)
			  RETURNING ` + attendanceColumns
	if err := s.get(ctx, op, &a, query, userID, checkIn, date); err != nil {
		return nil, classify(err)
	}
	return &a, nil
}

// CloseAttendance записывает время выхода и длительность в минутах.
// Уже закрытое или отсутствующее посещение даёт ErrNotFound.
func (s *Storage) CloseAttendance(ctx context.Context, id int64, checkOut time.Time, duration int) (*models.Attendance, error) {
	const op = "storage.CloseAttendance"

	var a models.Attendance
	query := `UPDATE attendance
			  SET check_out_time = $2, duration = $3
			  WHERE id = $1 AND check_out_time IS NULL
			  RETURNING ` + attendanceColumns
	if err := s.get(ctx, op, &a, query, id, checkOut, duration); err != nil {
		return nil, classify(err)
	}
	return &a, nil
}

// GetAttendance возвращает посещение по id.
func (s *Storage) GetAttendance(ctx context.Context, id int64) (*models.Attendance, error) {
	const op = "storage.GetAttendance"

	var a models.Attendance
	query := `SELECT ` + attendanceColumns + ` FROM attendance WHERE id = $1`
	if err := s.get(ctx, op, &a, query, id); err != nil {
		return nil, classify(err)
	}
	return &a, nil
}

// ListAttendance возвращает последние посещения участника.
// limit <= 0 заменяется на 10.
func (s *Storage) ListAttendance(ctx context.Context, userID int64, limit int) ([]models.Attendance, error) {
	const op = "storage.ListAttendance"

	if limit <= 0 {
		limit = defaultAttendanceLimit
	}
	query := `SELECT ` + attendanceColumns + `
			  FROM attendance
			  WHERE user_id = $1
			  ORDER BY date DESC, check_in_time DESC
			  LIMIT $2`
	list := []models.Attendance{}
	if err := s.selectRows(ctx, op, &list, query, userID, limit); err != nil {
		return nil, err
	}
	return list, nil
}

// GetAttendanceByDate возвращает посещение участника за день.
// Если посещений несколько, берётся самое позднее.
func (s *Storage) GetAttendanceByDate(ctx context.Context, userID int64, date time.Time) (*models.Attendance, error) {
	const op = "storage.GetAttendanceByDate"

	var a models.Attendance
	query := `SELECT ` + attendanceColumns + `
			  FROM attendance
			  WHERE user_id = $1 AND date = $2
			  ORDER BY check_in_time DESC
			  LIMIT 1`
	if err := s.get(ctx, op, &a, query, userID, date); err != nil {
		return nil, classify(err)
	}
	return &a, nil
}
