package storage

import (
	"context"

	"github.com/magabrotheeeer/pulsefit/internal/models"
)

// UserStats считает завершённые посещения участника и его записи в журнале.
func (s *Storage) UserStats(ctx context.Context, userID int64) (*models.UserStats, error) {
	const op = "storage.UserStats"

	var row struct {
		models.AttendanceStats
		models.ExerciseStats
	}
	query := `SELECT
				(SELECT COUNT(*) FROM attendance
				 WHERE user_id = $1 AND check_out_time IS NOT NULL) AS total_sessions,
				(SELECT COALESCE(SUM(duration), 0) FROM attendance
				 WHERE user_id = $1 AND check_out_time IS NOT NULL) AS total_minutes,
				(SELECT COUNT(*) FROM exercises WHERE user_id = $1) AS total_exercises,
				(SELECT COUNT(DISTINCT date) FROM exercises WHERE user_id = $1) AS workout_days`
	if err := s.get(ctx, op, &row, query, userID); err != nil {
		return nil, err
	}
	return &models.UserStats{
		Attendance: row.AttendanceStats,
		Exercises:  row.ExerciseStats,
	}, nil
}

// AdminStats считает пользователей и подписки по всему клубу.
func (s *Storage) AdminStats(ctx context.Context) (*models.AdminStats, error) {
	const op = "storage.AdminStats"

	var stats models.AdminStats
	usersQuery := `SELECT
					COUNT(*) AS total_users,
					COUNT(CASE WHEN role = 'user' THEN 1 END) AS regular_users,
					COUNT(CASE WHEN created_at >= CURRENT_DATE - INTERVAL '30 days' THEN 1 END) AS new_users_month
				   FROM users`
	if err := s.get(ctx, op, &stats.Users, usersQuery); err != nil {
		return nil, err
	}

	subsQuery := `SELECT
					COUNT(*) AS total_subscriptions,
					COUNT(CASE WHEN status = 'active' THEN 1 END) AS active_subscriptions,
					COUNT(CASE WHEN end_date <= CURRENT_DATE + INTERVAL '3 days'
						AND end_date > CURRENT_DATE THEN 1 END) AS expiring_soon,
					COUNT(CASE WHEN end_date <= CURRENT_DATE THEN 1 END) AS expired,
					COALESCE(SUM(CASE WHEN status = 'active' THEN price ELSE 0 END), 0) AS monthly_revenue
				  FROM subscriptions`
	if err := s.get(ctx, op, &stats.Subscriptions, subsQuery); err != nil {
		return nil, err
	}
	return &stats, nil
}

// TableCounts возвращает число строк в основных таблицах.
func (s *Storage) TableCounts(ctx context.Context) (*models.TableCounts, error) {
	const op = "storage.TableCounts"

	var counts models.TableCounts
	query := `SELECT
				(SELECT COUNT(*) FROM users) AS users,
				(SELECT COUNT(*) FROM subscriptions) AS subscriptions,
				(SELECT COUNT(*) FROM attendance) AS attendance,
				(SELECT COUNT(*) FROM exercises) AS exercises`
	if err := s.get(ctx, op, &counts, query); err != nil {
		return nil, err
	}
	return &counts, nil
}

// ServerInfo возвращает имя базы, пользователя, версию сервера и его время.
func (s *Storage) ServerInfo(ctx context.Context) (*models.ServerInfo, error) {
	const op = "storage.ServerInfo"

	var info models.ServerInfo
	query := `SELECT
				current_database() AS database_name,
				current_user AS database_user,
				version() AS postgres_version,
				NOW() AS server_time`
	if err := s.get(ctx, op, &info, query); err != nil {
		return nil, err
	}
	return &info, nil
}
